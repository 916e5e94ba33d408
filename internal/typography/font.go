package typography

import (
	"fmt"
	"net/url"
	"path"
	"slices"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
	"brand-yml/internal/common"
)

//go:generate go tool stringer -type=FontKind -linecomment -output=fontkind_string.go

// FontKind is the source of a font declaration.
type FontKind int

const (
	_ FontKind = iota // zero value is not a valid kind

	FontKindGoogle // google
	FontKindBunny  // bunny
	FontKindFile   // file
)

// IsHosted returns true for fonts served by a web font service.
func (k FontKind) IsHosted() bool {
	return k == FontKindGoogle || k == FontKindBunny
}

// Hosted service defaults.
const (
	GoogleFontsURL = "https://fonts.googleapis.com/"
	BunnyFontsURL  = "https://fonts.bunny.net/"

	googleVersion = 2
	bunnyVersion  = 1
)

// fontFormats maps font file extensions to their CSS format names.
var fontFormats = map[string]string{
	".otc":   "collection",
	".ttc":   "collection",
	".eot":   "embedded-opentype",
	".otf":   "opentype",
	".ttf":   "truetype",
	".svg":   "svg",
	".svgz":  "svg",
	".woff":  "woff",
	".woff2": "woff2",
}

// webFormats are the font file formats browsers load through @font-face.
var webFormats = []string{"opentype", "truetype", "woff", "woff2"}

// Font is one entry of typography.fonts. Exactly one of Hosted and File is
// set, matching Kind.
type Font struct {
	Kind   FontKind
	Hosted *HostedFont
	File   *FileFont
}

// Family returns the font family of the declaration.
func (f Font) Family() string {
	switch {
	case f.Hosted != nil:
		return f.Hosted.Family
	case f.File != nil:
		return f.File.Family
	default:
		return ""
	}
}

// HostedFont is a family served by Google Fonts or Bunny Fonts.
type HostedFont struct {
	// Source is FontKindGoogle or FontKindBunny.
	Source  FontKind
	Family  string
	Weight  WeightList
	Style   StyleList
	Display Display
	Version int
	URL     string
}

// NewHostedFont returns a hosted font of the given service with every
// optional field at its default.
func NewHostedFont(source FontKind, family string) *HostedFont {
	f := &HostedFont{
		Source:  source,
		Family:  family,
		Weight:  WeightList{400, 700},
		Style:   StyleList{StyleNormal, StyleItalic},
		Display: DisplayAuto,
		Version: googleVersion,
		URL:     GoogleFontsURL,
	}

	if source == FontKindBunny {
		f.Version = bunnyVersion
		f.URL = BunnyFontsURL
	}

	return f
}

// FileFont is a font loaded from a font file.
type FileFont struct {
	Source string
	Family string
	Weight Weight
	Style  Style
}

// Format returns the CSS format of the font file. Only formats browsers can
// load are accepted.
func (f *FileFont) Format() (string, error) {
	format, ok := fontFormats[path.Ext(f.Source)]
	if !ok {
		return "", &errUtils.UnsupportedFontFileFormatError{Source: f.Source}
	}

	if !slices.Contains(webFormats, format) {
		return "", &errUtils.UnsupportedFontFileFormatError{Source: f.Source, Format: format}
	}

	return format, nil
}

// --- YAML methods ---

var (
	hostedFontFields = []string{"source", "family", "weight", "style", "display", "version", "url"}
	fileFontFields   = []string{"source", "family", "weight", "style"}
)

type hostedFontYAML struct {
	Source  string      `yaml:"source"`
	Family  string      `yaml:"family"`
	Weight  *WeightList `yaml:"weight"`
	Style   *StyleList  `yaml:"style"`
	Display *Display    `yaml:"display"`
	Version *int        `yaml:"version"`
	URL     *string     `yaml:"url"`
}

type fileFontYAML struct {
	Source string  `yaml:"source"`
	Family string  `yaml:"family"`
	Weight *Weight `yaml:"weight"`
	Style  *Style  `yaml:"style"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Font.
// The entry is classified by its source, then decoded strictly into the
// matching variant with defaults applied.
func (f *Font) UnmarshalYAML(node *yaml.Node) error {
	kind, err := Classify(node)
	if err != nil {
		return err
	}

	if kind == FontKindFile {
		var raw fileFontYAML

		err = decodeStrict(node, "font", &raw, fileFontFields)
		if err != nil {
			return err
		}

		file, err := raw.build()
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*f = Font{Kind: kind, File: file}

		return nil
	}

	var raw hostedFontYAML

	err = decodeStrict(node, "font", &raw, hostedFontFields)
	if err != nil {
		return err
	}

	hosted, err := raw.build(kind)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*f = Font{Kind: kind, Hosted: hosted}

	return nil
}

func (raw *hostedFontYAML) build(kind FontKind) (*HostedFont, error) {
	if raw.Family == "" {
		return nil, errUtils.Wrapf(errUtils.ErrMissingFontFamily, "%s font", kind)
	}

	f := NewHostedFont(kind, raw.Family)

	if raw.Weight != nil {
		f.Weight = *raw.Weight
	}

	if raw.Style != nil {
		f.Style = *raw.Style
	}

	if raw.Display != nil {
		f.Display = *raw.Display
	}

	if raw.Version != nil {
		if *raw.Version < 1 {
			return nil, errUtils.Wrapf(errUtils.ErrInvalidFontVersion, "%d: must be a positive integer", *raw.Version)
		}

		f.Version = *raw.Version
	}

	if raw.URL != nil {
		err := validateServiceURL(*raw.URL)
		if err != nil {
			return nil, err
		}

		f.URL = *raw.URL
	}

	return f, nil
}

func (raw *fileFontYAML) build() (*FileFont, error) {
	if raw.Family == "" {
		return nil, errUtils.Wrapf(errUtils.ErrMissingFontFamily, "font file %q", raw.Source)
	}

	f := &FileFont{
		Source: raw.Source,
		Family: raw.Family,
		Weight: WeightNormal,
		Style:  StyleNormal,
	}

	if raw.Weight != nil {
		f.Weight = *raw.Weight
	}

	if raw.Style != nil {
		f.Style = *raw.Style
	}

	return f, nil
}

// validateServiceURL accepts absolute http and https URLs.
func validateServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errUtils.Wrapf(errUtils.ErrInvalidFontURL, "%q: %v", raw, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errUtils.Wrapf(errUtils.ErrInvalidFontURL, "%q: expected an absolute http(s) URL", raw)
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Font.
// Hosted fonts are written with every field explicit.
func (f Font) MarshalYAML() (any, error) {
	switch {
	case f.Hosted != nil:
		return hostedFontYAML{
			Source:  f.Hosted.Source.String(),
			Family:  f.Hosted.Family,
			Weight:  common.Ptr(f.Hosted.Weight),
			Style:   common.Ptr(f.Hosted.Style),
			Display: common.Ptr(f.Hosted.Display),
			Version: common.Ptr(f.Hosted.Version),
			URL:     common.Ptr(f.Hosted.URL),
		}, nil
	case f.File != nil:
		return fileFontYAML{
			Source: f.File.Source,
			Family: f.File.Family,
			Weight: common.Ptr(f.File.Weight),
			Style:  common.Ptr(f.File.Style),
		}, nil
	default:
		return nil, fmt.Errorf("font has no %s declaration", f.Kind)
	}
}
