package brand

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
	"brand-yml/internal/color"
	"brand-yml/internal/common"
	"brand-yml/internal/match"
	"brand-yml/internal/refs"
	"brand-yml/internal/typography"
)

// suggestDistance is the largest edit distance offered as a "did you mean"
// suggestion.
const suggestDistance = 2

// Brand is a validated brand document. Color values are literals, typography
// colors are projected from the color namespace and the monospace cascade is
// applied.
type Brand struct {
	Meta       *Meta                  `yaml:"meta,omitempty"`
	Logo       *Logo                  `yaml:"logo,omitempty"`
	Color      *color.Color           `yaml:"color,omitempty"`
	Typography *typography.Typography `yaml:"typography,omitempty"`
	Defaults   map[string]any         `yaml:"defaults,omitempty"`

	// Path is the file the brand was loaded from, if any.
	Path string `yaml:"-"`

	// Extra holds the top-level keys the document defines beyond the known
	// sections. They are kept for diagnostics and never written back.
	Extra map[string]any `yaml:",inline"`

	// typographyColors holds the typography color values as written, keyed by
	// their document path.
	typographyColors map[string]string
}

// New builds a brand from already validated sections and projects the color
// namespace onto the typography colors. The typography colors currently set
// are taken as the authored values.
func New(c *color.Color, t *typography.Typography) (*Brand, error) {
	b := &Brand{Color: c, Typography: t}

	err := b.resolve()
	if err != nil {
		return nil, err
	}

	return b, nil
}

// resolve applies the monospace cascade, records the authored typography
// colors and projects the color namespace onto them.
func (b *Brand) resolve() error {
	b.Typography.Cascade()

	b.typographyColors = make(map[string]string)

	for _, cf := range b.Typography.ColorFields() {
		if *cf.Value != nil {
			b.typographyColors[cf.Path()] = **cf.Value
		}
	}

	return b.projectColors(b.Color)
}

// projectColors resets every typography color to its authored value, then
// replaces the values naming an entry of the resolved namespace of c by that
// entry's literal. A value naming a theme slot that c leaves undefined is an
// error. Values naming nothing are literals and pass through unchanged.
//
// On error the typography colors are restored to what they were on entry.
func (b *Brand) projectColors(c *color.Color) error {
	fields := b.Typography.ColorFields()
	if len(fields) == 0 {
		return nil
	}

	prev := make([]*string, len(fields))
	for i, cf := range fields {
		prev[i] = *cf.Value
	}

	restore := func() {
		for i, cf := range fields {
			*cf.Value = prev[i]
		}
	}

	ns := c.Namespace(true)

	for _, cf := range fields {
		authored, ok := b.typographyColors[cf.Path()]
		if !ok {
			*cf.Value = nil
			continue
		}

		*cf.Value = common.Ptr(authored)

		if color.IsSlot(authored) && !ns.Has(authored) {
			restore()
			return undefinedSlotError(cf, authored, ns)
		}
	}

	err := refs.Replace(b.Typography, ns)
	if err != nil {
		restore()
		return fmt.Errorf("typography: %w", err)
	}

	return nil
}

func undefinedSlotError(cf typography.ColorField, slot string, ns *refs.Table) error {
	builder := errUtils.Build(&errUtils.UndefinedThemeReferenceError{
		Group: cf.Group,
		Field: cf.Field,
		Slot:  slot,
	}).WithHintf("define color.%s, or use a color value or palette name in %s", slot, cf.Path())

	if suggestions := match.Suggest(slot, ns.Keys(), suggestDistance); len(suggestions) > 0 {
		builder = builder.WithHintf("did you mean %s?", strings.Join(suggestions, ", "))
	}

	return builder.Err()
}

// SetColor replaces the color record and re-projects the typography colors
// from their authored values. On error the brand is left unchanged.
func (b *Brand) SetColor(c *color.Color) error {
	err := b.projectColors(c)
	if err != nil {
		return err
	}

	b.Color = c

	return nil
}

// TypographyColor returns the authored value of a typography color field,
// addressed by its document path (typography.link.color).
func (b *Brand) TypographyColor(path string) (string, bool) {
	v, ok := b.typographyColors[path]

	return v, ok
}

// ColorNamespace returns the resolved color namespace. It is empty when the
// brand has no color section.
func (b *Brand) ColorNamespace() *refs.Table {
	return b.Color.Namespace(true)
}

// --- YAML methods ---

type brandYAML Brand

// UnmarshalYAML implements custom YAML unmarshaling for Brand.
// Sections are decoded, then the typography colors are resolved.
func (b *Brand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errUtils.Wrapf(errUtils.ErrInvalidDocument, "line %d: expected a mapping", node.Line)
	}

	var raw brandYAML

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	res := Brand(raw)

	err = res.resolve()
	if err != nil {
		return err
	}

	*b = res

	return nil
}

// MarshalYAML implements custom YAML marshaling for Brand. Ignored top-level
// keys and the source path are left out.
func (b *Brand) MarshalYAML() (any, error) {
	out := brandYAML(*b)
	out.Extra = nil

	return &out, nil
}
