package color

import "slices"

// Slot names one of the semantic theme colors.
type Slot string

const (
	SlotForeground Slot = "foreground"
	SlotBackground Slot = "background"
	SlotPrimary    Slot = "primary"
	SlotSecondary  Slot = "secondary"
	SlotTertiary   Slot = "tertiary"
	SlotSuccess    Slot = "success"
	SlotInfo       Slot = "info"
	SlotWarning    Slot = "warning"
	SlotDanger     Slot = "danger"
	SlotLight      Slot = "light"
	SlotDark       Slot = "dark"
)

// Slots lists every theme slot in document order.
var Slots = []Slot{
	SlotForeground,
	SlotBackground,
	SlotPrimary,
	SlotSecondary,
	SlotTertiary,
	SlotSuccess,
	SlotInfo,
	SlotWarning,
	SlotDanger,
	SlotLight,
	SlotDark,
}

// IsSlot returns true if name is a theme slot name.
func IsSlot(name string) bool {
	return slices.Contains(Slots, Slot(name))
}

// String returns the slot name.
func (s Slot) String() string {
	return string(s)
}
