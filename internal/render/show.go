package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"brand-yml/internal/brand"
	"brand-yml/internal/typography"
)

const swatchWidth = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Width(20)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Show renders a terminal preview of b: color swatches for the palette and
// theme, the font declarations and the typography groups.
func Show(b *brand.Brand) string {
	var sb strings.Builder

	title := "brand"
	if b.Meta != nil && b.Meta.Name != nil {
		title = b.Meta.Name.String()
	}

	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	for _, s := range colorSections(b.Color, "") {
		writeHeader(&sb, s.Comment)

		for _, p := range s.Properties {
			fmt.Fprintf(&sb, "  %s %s %s\n", swatch(p.Value), nameStyle.Render(strings.TrimPrefix(p.Name, "--")),
				valueStyle.Render(p.Value))
		}
	}

	if fonts := b.Typography; fonts != nil && len(fonts.Fonts) > 0 {
		writeHeader(&sb, "fonts")

		for _, f := range fonts.Fonts {
			fmt.Fprintf(&sb, "  %s %s\n", nameStyle.Render(f.Family()), valueStyle.Render(fontSummary(f)))
		}
	}

	for _, g := range groupStyles(b.Typography) {
		decls := g.declarations()
		if len(decls) == 0 {
			continue
		}

		writeHeader(&sb, g.name)

		for _, p := range decls {
			line := fmt.Sprintf("  %s %s", nameStyle.Render(p.Name), valueStyle.Render(p.Value))
			if p.Name == "color" || p.Name == "background-color" {
				line = fmt.Sprintf("  %s %s %s", swatch(p.Value), nameStyle.Render(p.Name), valueStyle.Render(p.Value))
			}

			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeHeader(sb *strings.Builder, name string) {
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render(name))
	sb.WriteString("\n")
}

// swatch renders a block filled with value when it is a hex color. Other
// values get a placeholder of the same width.
func swatch(value string) string {
	hex, ok := expandHex(value)
	if !ok {
		return missingStyle.Render(strings.Repeat("·", swatchWidth))
	}

	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
}

// expandHex normalizes #rgb and #rrggbb colors to #rrggbb.
func expandHex(value string) (string, bool) {
	if !strings.HasPrefix(value, "#") {
		return "", false
	}

	digits := value[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}

	switch len(digits) {
	case 6:
		return value, true
	case 3:
		var sb strings.Builder

		sb.WriteByte('#')

		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}

		return sb.String(), true
	default:
		return "", false
	}
}

// fontSummary describes where a font comes from.
func fontSummary(f typography.Font) string {
	switch {
	case f.Hosted != nil:
		url, err := f.Hosted.ImportURL()
		if err != nil {
			return err.Error()
		}

		return url
	case f.File != nil:
		format, err := f.File.Format()
		if err != nil {
			return f.File.Source + " (not loadable by browsers)"
		}

		return fmt.Sprintf("%s (%s)", f.File.Source, format)
	default:
		return ""
	}
}
