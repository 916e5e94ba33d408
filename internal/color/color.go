package color

import (
	"fmt"
	"maps"

	"brand-yml/internal/common"
	"brand-yml/internal/refs"
)

// Color is the validated color record of a brand. Palette and the slot
// fields always hold resolved values; the authored values are kept aside
// and are the input of every re-validation.
type Color struct {
	// Palette maps color names to resolved color values. Nil when the
	// document has no palette.
	Palette *refs.Table

	Foreground *string
	Background *string
	Primary    *string
	Secondary  *string
	Tertiary   *string
	Success    *string
	Info       *string
	Warning    *string
	Danger     *string
	Light      *string
	Dark       *string

	authored authored
}

// authored holds the values exactly as written in the document.
type authored struct {
	palette *refs.Table
	slots   map[Slot]string
}

// New builds and validates a Color from an authored palette and slot values.
// The inputs are copied; later changes to them have no effect.
func New(palette *refs.Table, slots map[Slot]string) (*Color, error) {
	c := &Color{
		authored: authored{
			palette: palette.Clone(),
			slots:   maps.Clone(slots),
		},
	}

	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Validate re-resolves the record from its authored values. Resolution works
// on private copies; on error the published fields are left as they were.
//
// Validation runs in two phases:
//  1. the palette alone: cycle check, then resolution against itself;
//  2. the whole record: the resolved palette overlaid by the authored slot
//     values forms the namespace, which is cycle checked and used to resolve
//     every slot. The palette field is excluded from this second pass.
func (c *Color) Validate() error {
	for slot := range c.authored.slots {
		if !IsSlot(string(slot)) {
			return fmt.Errorf("color: unknown theme slot %q", slot)
		}
	}

	palette := c.authored.palette.Clone()
	if palette != nil {
		err := refs.DetectCycle("palette", palette)
		if err != nil {
			return err
		}

		err = refs.Replace(palette, palette)
		if err != nil {
			return fmt.Errorf("color.palette: %w", err)
		}
	}

	work := &Color{Palette: palette}
	for slot, value := range c.authored.slots {
		*work.slotField(slot) = common.Ptr(value)
	}

	defs := overlay(palette, c.authored.slots)

	err := refs.DetectCycle("color", defs)
	if err != nil {
		return err
	}

	err = refs.Replace(work, defs, "palette")
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}

	c.publish(work)

	return nil
}

// publish copies the resolved fields of work into c.
func (c *Color) publish(work *Color) {
	c.Palette = work.Palette
	for _, slot := range Slots {
		*c.slotField(slot) = *work.slotField(slot)
	}
}

// overlay builds a namespace from palette with the slot values written over
// it. A slot whose value is its own name while the palette defines that name
// points at the palette entry, so the palette entry is kept.
func overlay(palette *refs.Table, slots map[Slot]string) *refs.Table {
	defs := palette.Clone()
	if defs == nil {
		defs = refs.NewTable()
	}

	for _, slot := range Slots {
		value, ok := slots[slot]
		if !ok {
			continue
		}

		if value == string(slot) && palette.Has(value) {
			continue
		}

		defs.SetString(string(slot), value)
	}

	return defs
}

// Namespace returns the flat lookup table of palette entries overlaid by the
// theme slots. With resolved set every value is a literal; otherwise values
// are returned as authored.
func (c *Color) Namespace(resolved bool) *refs.Table {
	if c == nil {
		return refs.NewTable()
	}

	if !resolved {
		return overlay(c.authored.palette, c.authored.slots)
	}

	defs := overlay(c.Palette, c.setSlots())

	res, err := refs.Resolved(defs)
	if err != nil {
		// Published values are literals, so resolution cannot fail.
		return defs
	}

	return res
}

// Slot returns the resolved value of a theme slot, or nil if it is unset.
func (c *Color) Slot(slot Slot) *string {
	if c == nil || !IsSlot(string(slot)) {
		return nil
	}

	return *c.slotField(slot)
}

// Authored returns the slot value as written in the document.
func (c *Color) Authored(slot Slot) (string, bool) {
	if c == nil {
		return "", false
	}

	v, ok := c.authored.slots[slot]

	return v, ok
}

// AuthoredPalette returns a copy of the palette as written in the document.
func (c *Color) AuthoredPalette() *refs.Table {
	if c == nil {
		return nil
	}

	return c.authored.palette.Clone()
}

// SetPalette replaces the palette and re-validates the whole record. On error
// the record keeps its previous palette and values.
func (c *Color) SetPalette(palette *refs.Table) error {
	prev := c.authored.palette
	c.authored.palette = palette.Clone()

	err := c.Validate()
	if err != nil {
		c.authored.palette = prev
		return err
	}

	return nil
}

// SetSlot assigns a theme slot and re-validates the whole record. A nil value
// clears the slot. On error the record is left unchanged.
func (c *Color) SetSlot(slot Slot, value *string) error {
	if !IsSlot(string(slot)) {
		return fmt.Errorf("color: unknown theme slot %q", slot)
	}

	prev := maps.Clone(c.authored.slots)

	if c.authored.slots == nil {
		c.authored.slots = make(map[Slot]string)
	}

	if value == nil {
		delete(c.authored.slots, slot)
	} else {
		c.authored.slots[slot] = *value
	}

	err := c.Validate()
	if err != nil {
		c.authored.slots = prev
		return err
	}

	return nil
}

// setSlots returns the resolved slot values that are set.
func (c *Color) setSlots() map[Slot]string {
	res := make(map[Slot]string)

	for _, slot := range Slots {
		if v := *c.slotField(slot); v != nil {
			res[slot] = *v
		}
	}

	return res
}

// slotField returns the address of the field backing slot.
func (c *Color) slotField(slot Slot) **string {
	switch slot {
	case SlotForeground:
		return &c.Foreground
	case SlotBackground:
		return &c.Background
	case SlotPrimary:
		return &c.Primary
	case SlotSecondary:
		return &c.Secondary
	case SlotTertiary:
		return &c.Tertiary
	case SlotSuccess:
		return &c.Success
	case SlotInfo:
		return &c.Info
	case SlotWarning:
		return &c.Warning
	case SlotDanger:
		return &c.Danger
	case SlotLight:
		return &c.Light
	case SlotDark:
		return &c.Dark
	default:
		panic(fmt.Sprintf("color: unknown theme slot %q", slot))
	}
}

// Kind implements refs.Node.
func (c *Color) Kind() refs.Kind { return refs.KindRecord }

// Fields implements refs.Record. The palette comes first, followed by the
// slots in document order.
func (c *Color) Fields() []refs.Field {
	if c == nil {
		return nil
	}

	fields := make([]refs.Field, 0, len(Slots)+1)
	fields = append(fields, refs.Field{Name: "palette", Node: c.Palette})

	for _, slot := range Slots {
		fields = append(fields, refs.Field{Name: string(slot), Node: refs.Scalar{Value: *c.slotField(slot)}})
	}

	return fields
}
