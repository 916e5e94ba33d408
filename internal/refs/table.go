package refs

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	errUtils "brand-yml/errors"
)

// Table is an insertion-ordered mapping from names to nodes. It is both a
// definitions namespace and a resolvable target.
type Table struct {
	keys    []string
	entries map[string]Node
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Node)}
}

// TableOf builds a table of scalar entries from alternating name/value pairs.
// A trailing name without a value is ignored.
func TableOf(pairs ...string) *Table {
	t := NewTable()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.SetString(pairs[i], pairs[i+1])
	}

	return t
}

// Kind implements Node.
func (*Table) Kind() Kind { return KindMapping }

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the entry names in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.keys)
}

// Has returns true if name is an entry of the table.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}

	_, ok := t.entries[name]

	return ok
}

// Get returns the node stored under name.
func (t *Table) Get(name string) (Node, bool) {
	if t == nil {
		return nil, false
	}

	n, ok := t.entries[name]

	return n, ok
}

// Lookup returns the string stored under name. Container entries and unset
// scalars report false.
func (t *Table) Lookup(name string) (string, bool) {
	n, ok := t.Get(name)
	if !ok {
		return "", false
	}

	s, ok := n.(Scalar)
	if !ok || !s.IsSet() {
		return "", false
	}

	return *s.Value, true
}

// Set stores n under name. New names are appended; existing names keep their
// position.
func (t *Table) Set(name string, n Node) {
	if t.entries == nil {
		t.entries = make(map[string]Node)
	}

	if _, ok := t.entries[name]; !ok {
		t.keys = append(t.keys, name)
	}

	t.entries[name] = n
}

// SetString stores a scalar copy of value under name.
func (t *Table) SetString(name, value string) {
	t.Set(name, String(value))
}

// Delete removes name from the table.
func (t *Table) Delete(name string) {
	if !t.Has(name) {
		return
	}

	delete(t.entries, name)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == name })
}

// Overlay copies every entry of other into t, replacing entries of the same
// name.
func (t *Table) Overlay(other *Table) {
	if other == nil {
		return
	}

	for _, key := range other.keys {
		t.Set(key, cloneNode(other.entries[key]))
	}
}

// Clone returns a deep copy of the table. Scalars in the copy own their
// storage, so resolving the copy leaves t untouched.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	c := &Table{
		keys:    slices.Clone(t.keys),
		entries: make(map[string]Node, len(t.entries)),
	}

	for key, n := range t.entries {
		c.entries[key] = cloneNode(n)
	}

	return c
}

// Strings returns the scalar entries as a plain map. Container entries are
// omitted.
func (t *Table) Strings() map[string]string {
	res := make(map[string]string, t.Len())

	for _, key := range t.Keys() {
		if v, ok := t.Lookup(key); ok {
			res[key] = v
		}
	}

	return res
}

// Resolve follows the reference chain starting at value. It returns the final
// literal and true when value names an entry, or value and false when value
// is already a literal. Chains are capped at Len()+1 steps; running into the
// cap means a cycle slipped past DetectCycle and is reported as
// ErrUnresolvedReference.
func (t *Table) Resolve(value string) (string, bool, error) {
	if !t.Has(value) {
		return value, false, nil
	}

	current := value

	for range t.Len() + 1 {
		next, ok := t.Lookup(current)
		if !ok {
			// Names a container entry; there is no literal to substitute.
			return value, false, nil
		}

		if !t.Has(next) {
			return next, true, nil
		}

		current = next
	}

	return "", false, errUtils.Wrapf(errUtils.ErrUnresolvedReference, "resolving %q", value)
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case Scalar:
		if !n.IsSet() {
			return Scalar{}
		}

		return String(*n.Value)
	case *Table:
		return n.Clone()
	case Sequence:
		c := make(Sequence, len(n))
		for i, item := range n {
			c[i] = cloneNode(item)
		}

		return c
	default:
		// Records are owned by their enclosing structure and are not copied.
		return n
	}
}

// --- YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Table.
// Accepts a mapping whose values are strings, nested mappings, or sequences.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node.Kind))
	}

	res := NewTable()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var key string

		err := keyNode.Decode(&key)
		if err != nil {
			return fmt.Errorf("line %d: invalid key: %w", keyNode.Line, err)
		}

		if res.Has(key) {
			return fmt.Errorf("line %d: duplicate key %q", keyNode.Line, key)
		}

		value, err := decodeNode(valueNode)
		if err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}

		res.Set(key, value)
	}

	*t = *res

	return nil
}

func decodeNode(node *yaml.Node) (Node, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, fmt.Errorf("line %d: expected a string, got null", node.Line)
		}

		return String(node.Value), nil

	case yaml.MappingNode:
		var nested Table

		err := nested.UnmarshalYAML(node)
		if err != nil {
			return nil, err
		}

		return &nested, nil

	case yaml.SequenceNode:
		seq := make(Sequence, 0, len(node.Content))

		for _, item := range node.Content {
			n, err := decodeNode(item)
			if err != nil {
				return nil, err
			}

			seq = append(seq, n)
		}

		return seq, nil

	case yaml.AliasNode:
		return decodeNode(node.Alias)

	default:
		return nil, fmt.Errorf("line %d: unexpected %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for Table, keeping insertion
// order.
func (t *Table) MarshalYAML() (any, error) {
	return encodeNode(t)
}

func encodeNode(n Node) (*yaml.Node, error) {
	switch n := n.(type) {
	case Scalar:
		out := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Get()}
		if !n.IsSet() {
			out.Tag, out.Value = "!!null", "null"
		}

		return out, nil

	case *Table:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, key := range n.Keys() {
			value, err := encodeNode(n.entries[key])
			if err != nil {
				return nil, err
			}

			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				value,
			)
		}

		return out, nil

	case Sequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, item := range n {
			value, err := encodeNode(item)
			if err != nil {
				return nil, err
			}

			out.Content = append(out.Content, value)
		}

		return out, nil

	default:
		var out yaml.Node

		err := out.Encode(n)
		if err != nil {
			return nil, err
		}

		return &out, nil
	}
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
