package color

import (
	"fmt"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
	"brand-yml/internal/refs"
)

// UnmarshalYAML implements custom YAML unmarshaling for Color.
// Accepts a mapping with an optional palette and any of the theme slots;
// other keys are rejected. The decoded record is validated immediately.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: color must be a mapping", node.Line)
	}

	var (
		palette *refs.Table
		slots   = make(map[Slot]string)
		seen    = make(map[string]bool)
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value

		if seen[key] {
			return fmt.Errorf("line %d: color: duplicate key %q", keyNode.Line, key)
		}

		seen[key] = true

		if valueNode.ShortTag() == "!!null" {
			continue
		}

		switch {
		case key == "palette":
			palette = refs.NewTable()

			err := valueNode.Decode(palette)
			if err != nil {
				return fmt.Errorf("color.palette: %w", err)
			}

		case IsSlot(key):
			var value string

			err := valueNode.Decode(&value)
			if err != nil {
				return fmt.Errorf("color.%s: %w", key, err)
			}

			slots[Slot(key)] = value

		default:
			return fmt.Errorf("line %d: color.%s: %w", keyNode.Line, key, errUtils.ErrUnknownField)
		}
	}

	res := Color{authored: authored{palette: palette, slots: slots}}

	err := res.Validate()
	if err != nil {
		return err
	}

	*c = res

	return nil
}

// MarshalYAML implements custom YAML marshaling for Color.
// Outputs the resolved palette followed by the slots that are set.
func (c *Color) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	if c.Palette != nil {
		var palette yaml.Node

		err := palette.Encode(c.Palette)
		if err != nil {
			return nil, err
		}

		out.Content = append(out.Content, keyNode("palette"), &palette)
	}

	for _, slot := range Slots {
		v := c.Slot(slot)
		if v == nil {
			continue
		}

		out.Content = append(out.Content, keyNode(string(slot)), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *v})
	}

	return out, nil
}

func keyNode(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}
