package brand

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"brand-yml/internal/refs"
)

// Meta describes the brand owner.
type Meta struct {
	Name *Name       `yaml:"name,omitempty"`
	Link *refs.Table `yaml:"link,omitempty"`
}

// Name is the brand name, optionally with a short form.
type Name struct {
	Short string `yaml:"short,omitempty"`
	Full  string `yaml:"full,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Meta.
// link may be a single URL, which is stored under "home".
func (m *Meta) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: meta must be a mapping", node.Line)
	}

	var raw struct {
		Name *Name     `yaml:"name"`
		Link yaml.Node `yaml:"link"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return fmt.Errorf("meta: %w", err)
	}

	res := Meta{Name: raw.Name}

	switch raw.Link.Kind {
	case 0:
	case yaml.ScalarNode:
		if raw.Link.ShortTag() != "!!null" {
			res.Link = refs.TableOf("home", raw.Link.Value)
		}
	default:
		res.Link = refs.NewTable()

		err = raw.Link.Decode(res.Link)
		if err != nil {
			return fmt.Errorf("meta.link: %w", err)
		}
	}

	*m = res

	return nil
}

// MarshalYAML implements custom YAML marshaling for Meta.
func (m *Meta) MarshalYAML() (any, error) {
	if home, ok := m.Link.Lookup("home"); ok && m.Link.Len() == 1 {
		return struct {
			Name *Name  `yaml:"name,omitempty"`
			Link string `yaml:"link"`
		}{Name: m.Name, Link: home}, nil
	}

	type plain Meta

	return plain(*m), nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Name.
// Accepts either a single name or a mapping with short and full.
func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*n = Name{Full: node.Value}

		return nil

	case yaml.MappingNode:
		type plain Name

		var res plain

		err := node.Decode(&res)
		if err != nil {
			return err
		}

		*n = Name(res)

		return nil

	default:
		return fmt.Errorf("line %d: meta.name must be a string or a mapping", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for Name.
// Outputs a single string when there is no short form.
func (n Name) MarshalYAML() (any, error) {
	if n.Short == "" {
		return n.Full, nil
	}

	type plain Name

	return plain(n), nil
}

// String returns the full name, falling back to the short one.
func (n *Name) String() string {
	if n == nil {
		return ""
	}

	if n.Full != "" {
		return n.Full
	}

	return n.Short
}
