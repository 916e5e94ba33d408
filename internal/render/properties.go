package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"brand-yml/internal/brand"
	"brand-yml/internal/color"
	"brand-yml/internal/match"
	"brand-yml/internal/typography"
)

// property is one CSS custom property.
type property struct {
	Name  string
	Value string
}

// section is a commented block of custom properties.
type section struct {
	Comment    string
	Properties []property
}

// groupStyle flattens a typography group. Fields a group does not have stay
// unset.
type groupStyle struct {
	name       string
	family     *string
	style      typography.StyleList
	weight     *typography.Weight
	size       *string
	lineHeight *float64
	color      *string
	background *string
	decoration *string
}

// groupStyles lists the present typography groups in document order.
func groupStyles(t *typography.Typography) []groupStyle {
	if t == nil {
		return nil
	}

	var res []groupStyle

	if g := t.Base; g != nil {
		res = append(res, groupStyle{
			name: typography.GroupBase, family: g.Family, style: g.Style, weight: g.Weight, size: g.Size,
			lineHeight: g.LineHeight, color: g.Color, background: g.BackgroundColor,
		})
	}

	if g := t.Headings; g != nil {
		res = append(res, groupStyle{
			name: typography.GroupHeadings, family: g.Family, style: g.Style, weight: g.Weight,
			lineHeight: g.LineHeight, color: g.Color, background: g.BackgroundColor,
		})
	}

	if g := t.Monospace; g != nil {
		res = append(res, groupStyle{
			name: typography.GroupMonospace, family: g.Family, style: g.Style, weight: g.Weight, size: g.Size,
		})
	}

	if g := t.MonospaceInline; g != nil {
		res = append(res, groupStyle{
			name: typography.GroupMonospaceInline, family: g.Family, style: g.Style, weight: g.Weight, size: g.Size,
			color: g.Color, background: g.BackgroundColor,
		})
	}

	if g := t.MonospaceBlock; g != nil {
		res = append(res, groupStyle{
			name: typography.GroupMonospaceBlock, family: g.Family, style: g.Style, weight: g.Weight, size: g.Size,
			lineHeight: g.LineHeight, color: g.Color, background: g.BackgroundColor,
		})
	}

	if g := t.Link; g != nil {
		res = append(res, groupStyle{
			name: typography.GroupLink, weight: g.Weight, color: g.Color, background: g.BackgroundColor,
			decoration: g.Decoration,
		})
	}

	return res
}

// declarations returns the CSS property names and values set on the group.
func (g groupStyle) declarations() []property {
	var res []property

	add := func(name string, v *string) {
		if v != nil {
			res = append(res, property{Name: name, Value: *v})
		}
	}

	if g.family != nil {
		res = append(res, property{Name: "font-family", Value: quote(*g.family)})
	}

	if len(g.style) > 0 {
		res = append(res, property{Name: "font-style", Value: strings.Join(lo.Map(g.style, func(s typography.Style, _ int) string {
			return s.String()
		}), " ")})
	}

	if g.weight != nil && !g.weight.IsZero() {
		res = append(res, property{Name: "font-weight", Value: g.weight.String()})
	}

	add("font-size", g.size)

	if g.lineHeight != nil {
		res = append(res, property{Name: "line-height", Value: strconv.FormatFloat(*g.lineHeight, 'f', -1, 64)})
	}

	add("color", g.color)
	add("background-color", g.background)
	add("text-decoration", g.decoration)

	return res
}

// colorSections returns the palette and the theme colors as custom properties.
func colorSections(c *color.Color, prefix string) []section {
	if c == nil {
		return nil
	}

	var res []section

	if c.Palette.Len() > 0 {
		s := section{Comment: "palette"}

		for _, name := range c.Palette.Keys() {
			if v, ok := c.Palette.Lookup(name); ok {
				s.Properties = append(s.Properties, property{Name: varName(prefix, name), Value: v})
			}
		}

		res = append(res, s)
	}

	theme := section{Comment: "theme"}

	for _, slot := range color.Slots {
		if v := c.Slot(slot); v != nil {
			theme.Properties = append(theme.Properties, property{Name: varName(prefix, slot.String()), Value: *v})
		}
	}

	if len(theme.Properties) > 0 {
		res = append(res, theme)
	}

	return res
}

// typographySections returns one section per typography group.
func typographySections(t *typography.Typography, prefix string) []section {
	var res []section

	for _, g := range groupStyles(t) {
		s := section{Comment: "typography " + g.name}

		for _, p := range g.declarations() {
			s.Properties = append(s.Properties, property{Name: varName(prefix, g.name, p.Name), Value: p.Value})
		}

		if len(s.Properties) > 0 {
			res = append(res, s)
		}
	}

	return res
}

// sections returns every custom property section of b.
func sections(b *brand.Brand, prefix string) []section {
	return append(colorSections(b.Color, prefix), typographySections(b.Typography, prefix)...)
}

// varName builds a custom property name from the prefix and name parts, each
// split into lowercase words: varName("brand", "darkBlue") is --brand-dark-blue.
func varName(prefix string, parts ...string) string {
	words := match.Tokens(prefix)
	for _, p := range parts {
		words = append(words, match.Tokens(p)...)
	}

	return "--" + strings.Join(words, "-")
}

var cssStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\a `,
	"\r", `\d `,
	"\f", `\c `,
)

// quote returns s as a double-quoted CSS string. Quotes and line breaks are
// escaped along with backslashes, so s cannot end the string early.
func quote(s string) string {
	return `"` + cssStringEscaper.Replace(s) + `"`
}
