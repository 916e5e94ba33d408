package typography

import (
	"slices"

	"gopkg.in/yaml.v3"

	"brand-yml/internal/common"
)

// Typography is the typography section of a brand document.
type Typography struct {
	Fonts           []Font           `yaml:"fonts,omitempty"`
	Base            *Base            `yaml:"base,omitempty"`
	Headings        *Headings        `yaml:"headings,omitempty"`
	Monospace       *Monospace       `yaml:"monospace,omitempty"`
	MonospaceInline *MonospaceInline `yaml:"monospace-inline,omitempty"`
	MonospaceBlock  *MonospaceBlock  `yaml:"monospace-block,omitempty"`
	Link            *Link            `yaml:"link,omitempty"`
}

var typographyFields = []string{
	"fonts",
	GroupBase,
	GroupHeadings,
	GroupMonospace,
	GroupMonospaceInline,
	GroupMonospaceBlock,
	GroupLink,
}

// UnmarshalYAML implements strict YAML unmarshaling for Typography.
// The monospace cascade is applied once decoding succeeds.
func (t *Typography) UnmarshalYAML(node *yaml.Node) error {
	type plain Typography

	var res plain

	err := decodeStrict(node, "typography", &res, typographyFields)
	if err != nil {
		return err
	}

	*t = Typography(res)
	t.Cascade()

	return nil
}

// Cascade copies family, style, weight and size from monospace into
// monospace-inline and monospace-block wherever those leave them unset.
// Nothing happens unless both the parent and the child group are present.
// Inherited values are copied, so every group owns its storage. Cascading
// twice has no further effect.
func (t *Typography) Cascade() {
	if t == nil || t.Monospace == nil {
		return
	}

	parent := t.Monospace

	if g := t.MonospaceInline; g != nil {
		inherit(&g.Family, &g.Style, &g.Weight, &g.Size, parent)
	}

	if g := t.MonospaceBlock; g != nil {
		inherit(&g.Family, &g.Style, &g.Weight, &g.Size, parent)
	}
}

func inherit(family **string, style *StyleList, weight **Weight, size **string, parent *Monospace) {
	if *family == nil && parent.Family != nil {
		*family = common.Ptr(*parent.Family)
	}

	if *style == nil && parent.Style != nil {
		*style = slices.Clone(parent.Style)
	}

	if *weight == nil && parent.Weight != nil {
		*weight = common.Ptr(*parent.Weight)
	}

	if *size == nil && parent.Size != nil {
		*size = common.Ptr(*parent.Size)
	}
}

// HostedFonts returns the hosted font declarations in document order.
func (t *Typography) HostedFonts() []*HostedFont {
	if t == nil {
		return nil
	}

	var res []*HostedFont

	for _, f := range t.Fonts {
		if f.Hosted != nil {
			res = append(res, f.Hosted)
		}
	}

	return res
}

// FileFonts returns the file font declarations in document order.
func (t *Typography) FileFonts() []*FileFont {
	if t == nil {
		return nil
	}

	var res []*FileFont

	for _, f := range t.Fonts {
		if f.File != nil {
			res = append(res, f.File)
		}
	}

	return res
}
