package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/charmbracelet/log"

	"brand-yml/internal/brand"
)

// Options configures stylesheet rendering.
type Options struct {
	// Prefix starts every custom property name.
	Prefix string
	// Filename is the name of the stylesheet returned by Files.
	Filename string
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Prefix:   "brand",
		Filename: "brand.css",
	}
}

// File represents a rendered output file.
type File struct {
	// Filename is the name of the file (e.g., "brand.css").
	Filename string
	// Content is the rendered text.
	Content []byte
}

// fontFace is one @font-face rule.
type fontFace struct {
	Family string
	Src    string // quoted
	Format string
	Weight string
	Style  string
}

// stylesheetData holds all data needed for the stylesheet template.
type stylesheetData struct {
	Source    string
	Imports   []string // quoted URLs
	FontFaces []fontFace
	Sections  []section
}

// CSS renders the stylesheet of b.
func CSS(b *brand.Brand, opts Options) ([]byte, error) {
	data, err := buildStylesheetData(b, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := stylesheetTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// Files renders every output file of b.
func Files(b *brand.Brand, opts Options) ([]File, error) {
	css, err := CSS(b, opts)
	if err != nil {
		return nil, err
	}

	return []File{{Filename: opts.Filename, Content: css}}, nil
}

// buildStylesheetData collects the font rules and custom properties of b.
// Font files browsers cannot load are left out with a warning.
func buildStylesheetData(b *brand.Brand, opts Options) (*stylesheetData, error) {
	data := &stylesheetData{
		Sections: sections(b, opts.Prefix),
	}

	if b.Path != "" {
		data.Source = filepath.Base(b.Path)
	}

	for _, f := range b.Typography.HostedFonts() {
		url, err := f.ImportURL()
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", f.Family, err)
		}

		data.Imports = append(data.Imports, quote(url))
	}

	for _, f := range b.Typography.FileFonts() {
		format, err := f.Format()
		if err != nil {
			log.Warn("Skipping font file", "family", f.Family, "source", f.Source, "error", err)
			continue
		}

		face := fontFace{
			Family: quote(f.Family),
			Src:    quote(f.Source),
			Format: format,
			Style:  f.Style.String(),
		}

		if !f.Weight.IsZero() {
			face.Weight = f.Weight.String()
		}

		data.FontFaces = append(data.FontFaces, face)
	}

	return data, nil
}

var stylesheetTemplate = template.Must(template.New("stylesheet").Parse(`/* Code generated by brand-yml{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT. */
{{range .Imports}}
@import url({{.}});
{{- end}}
{{range .FontFaces}}
@font-face {
  font-family: {{.Family}};
  src: url({{.Src}}) format("{{.Format}}");
{{- if .Weight}}
  font-weight: {{.Weight}};
{{- end}}
{{- if .Style}}
  font-style: {{.Style}};
{{- end}}
}
{{end}}
:root {
{{- range .Sections}}
  /* {{.Comment}} */
{{- range .Properties}}
  {{.Name}}: {{.Value}};
{{- end}}
{{- end}}
}
`))
