package typography

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

// decodeStrict decodes a mapping node into out after checking that every key
// is one of allowed. Custom unmarshalers do not inherit the decoder's
// KnownFields setting, so the check is done here.
func decodeStrict(node *yaml.Node, section string, out any, allowed []string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %s must be a mapping, got %s", node.Line, section, kindName(node.Kind))
	}

	err := checkKeys(node, section, allowed)
	if err != nil {
		return err
	}

	err = node.Decode(out)
	if err != nil {
		return fmt.Errorf("%s: %w", section, err)
	}

	return nil
}

// checkKeys reports the first key of a mapping node that is not allowed.
func checkKeys(node *yaml.Node, section string, allowed []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: %s.%s: %w", key.Line, section, key.Value, errUtils.ErrUnknownField)
		}
	}

	return nil
}

// mappingValue returns the value node stored under key in a mapping node.
func mappingValue(node *yaml.Node, key string) (*yaml.Node, bool) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, false
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1], true
		}
	}

	return nil, false
}

// decodeScalar decodes a scalar node into its natural Go value (string, int,
// float64, bool).
func decodeScalar(node *yaml.Node, field string) (any, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: %s must be a scalar, got %s", node.Line, field, kindName(node.Kind))
	}

	var v any

	err := node.Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", node.Line, field, err)
	}

	return v, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
