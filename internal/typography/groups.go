package typography

import (
	"gopkg.in/yaml.v3"

	"brand-yml/internal/refs"
)

// Group names as they appear in the document.
const (
	GroupBase            = "base"
	GroupHeadings        = "headings"
	GroupMonospace       = "monospace"
	GroupMonospaceInline = "monospace-inline"
	GroupMonospaceBlock  = "monospace-block"
	GroupLink            = "link"
)

// Color-bearing field names.
const (
	FieldColor           = "color"
	FieldBackgroundColor = "background-color"
)

// Base is the default text style of the document.
type Base struct {
	Family          *string   `yaml:"family,omitempty"`
	Style           StyleList `yaml:"style,omitempty"`
	Weight          *Weight   `yaml:"weight,omitempty"`
	Size            *string   `yaml:"size,omitempty"`
	LineHeight      *float64  `yaml:"line-height,omitempty"`
	Color           *string   `yaml:"color,omitempty"`
	BackgroundColor *string   `yaml:"background-color,omitempty"`
}

// Headings styles every heading level.
type Headings struct {
	Family          *string   `yaml:"family,omitempty"`
	Style           StyleList `yaml:"style,omitempty"`
	Weight          *Weight   `yaml:"weight,omitempty"`
	LineHeight      *float64  `yaml:"line-height,omitempty"`
	Color           *string   `yaml:"color,omitempty"`
	BackgroundColor *string   `yaml:"background-color,omitempty"`
}

// Monospace holds the shared settings of inline and block code.
type Monospace struct {
	Family *string   `yaml:"family,omitempty"`
	Style  StyleList `yaml:"style,omitempty"`
	Weight *Weight   `yaml:"weight,omitempty"`
	Size   *string   `yaml:"size,omitempty"`
}

// MonospaceInline styles inline code.
type MonospaceInline struct {
	Family          *string   `yaml:"family,omitempty"`
	Style           StyleList `yaml:"style,omitempty"`
	Weight          *Weight   `yaml:"weight,omitempty"`
	Size            *string   `yaml:"size,omitempty"`
	Color           *string   `yaml:"color,omitempty"`
	BackgroundColor *string   `yaml:"background-color,omitempty"`
}

// MonospaceBlock styles code blocks.
type MonospaceBlock struct {
	Family          *string   `yaml:"family,omitempty"`
	Style           StyleList `yaml:"style,omitempty"`
	Weight          *Weight   `yaml:"weight,omitempty"`
	Size            *string   `yaml:"size,omitempty"`
	LineHeight      *float64  `yaml:"line-height,omitempty"`
	Color           *string   `yaml:"color,omitempty"`
	BackgroundColor *string   `yaml:"background-color,omitempty"`
}

// Link styles hyperlinks.
type Link struct {
	Weight          *Weight `yaml:"weight,omitempty"`
	Color           *string `yaml:"color,omitempty"`
	BackgroundColor *string `yaml:"background-color,omitempty"`
	Decoration      *string `yaml:"decoration,omitempty"`
}

// Accepted keys per group.
var (
	baseFields            = []string{"family", "style", "weight", "size", "line-height", FieldColor, FieldBackgroundColor}
	headingsFields        = []string{"family", "style", "weight", "line-height", FieldColor, FieldBackgroundColor}
	monospaceFields       = []string{"family", "style", "weight", "size"}
	monospaceInlineFields = []string{"family", "style", "weight", "size", FieldColor, FieldBackgroundColor}
	monospaceBlockFields  = []string{"family", "style", "weight", "size", "line-height", FieldColor, FieldBackgroundColor}
	linkFields            = []string{"weight", FieldColor, FieldBackgroundColor, "decoration"}
)

// --- YAML methods ---

// UnmarshalYAML implements strict YAML unmarshaling for Base.
func (g *Base) UnmarshalYAML(node *yaml.Node) error {
	type plain Base
	return decodeStrict(node, "typography."+GroupBase, (*plain)(g), baseFields)
}

// UnmarshalYAML implements strict YAML unmarshaling for Headings.
func (g *Headings) UnmarshalYAML(node *yaml.Node) error {
	type plain Headings
	return decodeStrict(node, "typography."+GroupHeadings, (*plain)(g), headingsFields)
}

// UnmarshalYAML implements strict YAML unmarshaling for Monospace.
func (g *Monospace) UnmarshalYAML(node *yaml.Node) error {
	type plain Monospace
	return decodeStrict(node, "typography."+GroupMonospace, (*plain)(g), monospaceFields)
}

// UnmarshalYAML implements strict YAML unmarshaling for MonospaceInline.
func (g *MonospaceInline) UnmarshalYAML(node *yaml.Node) error {
	type plain MonospaceInline
	return decodeStrict(node, "typography."+GroupMonospaceInline, (*plain)(g), monospaceInlineFields)
}

// UnmarshalYAML implements strict YAML unmarshaling for MonospaceBlock.
func (g *MonospaceBlock) UnmarshalYAML(node *yaml.Node) error {
	type plain MonospaceBlock
	return decodeStrict(node, "typography."+GroupMonospaceBlock, (*plain)(g), monospaceBlockFields)
}

// UnmarshalYAML implements strict YAML unmarshaling for Link.
func (g *Link) UnmarshalYAML(node *yaml.Node) error {
	type plain Link
	return decodeStrict(node, "typography."+GroupLink, (*plain)(g), linkFields)
}

// --- color fields ---

// ColorField is one color-bearing field of a group. Value addresses the field
// itself, so assigning through it updates the group.
type ColorField struct {
	Group string
	Field string
	Value **string
}

// Path returns the dotted document path of the field.
func (f ColorField) Path() string {
	return "typography." + f.Group + "." + f.Field
}

// ColorFields lists the color and background-color fields of every present
// group, in document order. Unset fields are included with a nil value.
func (t *Typography) ColorFields() []ColorField {
	if t == nil {
		return nil
	}

	var res []ColorField

	add := func(group string, color, background **string) {
		res = append(res,
			ColorField{Group: group, Field: FieldColor, Value: color},
			ColorField{Group: group, Field: FieldBackgroundColor, Value: background},
		)
	}

	if g := t.Base; g != nil {
		add(GroupBase, &g.Color, &g.BackgroundColor)
	}

	if g := t.Headings; g != nil {
		add(GroupHeadings, &g.Color, &g.BackgroundColor)
	}

	if g := t.MonospaceInline; g != nil {
		add(GroupMonospaceInline, &g.Color, &g.BackgroundColor)
	}

	if g := t.MonospaceBlock; g != nil {
		add(GroupMonospaceBlock, &g.Color, &g.BackgroundColor)
	}

	if g := t.Link; g != nil {
		add(GroupLink, &g.Color, &g.BackgroundColor)
	}

	return res
}

// fieldList adapts a slice of fields to refs.Record.
type fieldList []refs.Field

func (fieldList) Kind() refs.Kind { return refs.KindRecord }

func (l fieldList) Fields() []refs.Field { return l }

// Kind implements refs.Node.
func (t *Typography) Kind() refs.Kind { return refs.KindRecord }

// Fields implements refs.Record. Only the color-bearing fields are exposed,
// grouped under their group name.
func (t *Typography) Fields() []refs.Field {
	var (
		res    []refs.Field
		groups = make(map[string]int)
	)

	for _, cf := range t.ColorFields() {
		idx, ok := groups[cf.Group]
		if !ok {
			idx = len(res)
			groups[cf.Group] = idx
			res = append(res, refs.Field{Name: cf.Group, Node: fieldList{}})
		}

		res[idx].Node = append(res[idx].Node.(fieldList), refs.Field{Name: cf.Field, Node: refs.Scalar{Value: *cf.Value}})
	}

	return res
}
