package brand

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
	"brand-yml/internal/refs"
)

// Logo sizes.
const (
	LogoSmall  = "small"
	LogoMedium = "medium"
	LogoLarge  = "large"
)

// Logo is the logo section of a brand document. It is either a single image
// path (Source) or a set of named images plus per-size choices. A size may
// name an entry of Images; it then resolves to that entry's path.
type Logo struct {
	Source string

	Images *refs.Table
	Small  *string
	Medium *string
	Large  *string

	// authored holds the size values as written.
	authored map[string]string
}

var logoFields = []string{"images", LogoSmall, LogoMedium, LogoLarge}

// Sizes returns the size name and resolved path of each size that is set.
func (l *Logo) Sizes() []refs.Field {
	if l == nil {
		return nil
	}

	var res []refs.Field

	for _, f := range l.Fields() {
		if f.Name == "images" {
			continue
		}

		if s, ok := f.Node.(refs.Scalar); ok && s.IsSet() {
			res = append(res, f)
		}
	}

	return res
}

// Authored returns a size value as written in the document.
func (l *Logo) Authored(size string) (string, bool) {
	if l == nil {
		return "", false
	}

	v, ok := l.authored[size]

	return v, ok
}

// resolve checks the images for reference cycles, resolves them against
// themselves, then resolves every size against the images.
func (l *Logo) resolve() error {
	if l.Images == nil {
		return nil
	}

	err := refs.DetectCycle("logo.images", l.Images)
	if err != nil {
		return err
	}

	err = refs.Replace(l.Images, l.Images)
	if err != nil {
		return fmt.Errorf("logo.images: %w", err)
	}

	err = refs.Replace(l, l.Images, "images")
	if err != nil {
		return fmt.Errorf("logo: %w", err)
	}

	return nil
}

// Kind implements refs.Node.
func (l *Logo) Kind() refs.Kind { return refs.KindRecord }

// Fields implements refs.Record.
func (l *Logo) Fields() []refs.Field {
	return []refs.Field{
		{Name: "images", Node: l.Images},
		{Name: LogoSmall, Node: refs.Scalar{Value: l.Small}},
		{Name: LogoMedium, Node: refs.Scalar{Value: l.Medium}},
		{Name: LogoLarge, Node: refs.Scalar{Value: l.Large}},
	}
}

// --- YAML methods ---

type logoYAML struct {
	Images *refs.Table `yaml:"images,omitempty"`
	Small  *string     `yaml:"small,omitempty"`
	Medium *string     `yaml:"medium,omitempty"`
	Large  *string     `yaml:"large,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Logo.
// Accepts either a single path or a mapping of images and sizes.
func (l *Logo) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = Logo{Source: node.Value}

		return nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !slices.Contains(logoFields, key.Value) {
				return fmt.Errorf("line %d: logo.%s: %w", key.Line, key.Value, errUtils.ErrUnknownField)
			}
		}

		var raw logoYAML

		err := node.Decode(&raw)
		if err != nil {
			return fmt.Errorf("logo: %w", err)
		}

		res := Logo{Images: raw.Images, Small: raw.Small, Medium: raw.Medium, Large: raw.Large}
		res.authored = make(map[string]string)

		for _, f := range res.Sizes() {
			res.authored[f.Name] = f.Node.(refs.Scalar).Get()
		}

		err = res.resolve()
		if err != nil {
			return err
		}

		*l = res

		return nil

	default:
		return fmt.Errorf("line %d: logo must be a path or a mapping", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for Logo.
func (l *Logo) MarshalYAML() (any, error) {
	if l.Images == nil && l.Small == nil && l.Medium == nil && l.Large == nil {
		return l.Source, nil
	}

	return logoYAML{Images: l.Images, Small: l.Small, Medium: l.Medium, Large: l.Large}, nil
}
