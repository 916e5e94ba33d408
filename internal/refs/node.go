package refs

import (
	"fmt"

	"brand-yml/internal/common"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	_ Kind = iota

	KindScalar
	KindMapping
	KindSequence
	KindRecord
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return common.UnknownStr
	}
}

// Node is one vertex of a resolvable tree.
type Node interface {
	Kind() Kind
}

// Scalar is a string leaf. Value points at the storage owned by the enclosing
// structure, so rewriting *Value updates that structure in place.
type Scalar struct {
	Value *string
}

// String returns a Scalar holding its own copy of v.
func String(v string) Scalar {
	return Scalar{Value: &v}
}

// Kind implements Node.
func (Scalar) Kind() Kind { return KindScalar }

// IsSet returns true if the leaf holds a value.
func (s Scalar) IsSet() bool {
	return s.Value != nil
}

// Get returns the leaf value, or the empty string when unset.
func (s Scalar) Get() string {
	return common.Deref(s.Value)
}

// Sequence is an ordered list of nodes.
type Sequence []Node

// Kind implements Node.
func (Sequence) Kind() Kind { return KindSequence }

// Field is a named child of a Record.
type Field struct {
	Name string
	Node Node
}

// Record is implemented by typed structures whose string leaves take part in
// resolution. Fields returns the children in declaration order; scalar
// fields must point into the record so rewrites are visible to it.
type Record interface {
	Node
	Fields() []Field
}

// Walk calls fn for every scalar leaf under n, depth first, in declaration
// order. The path holds the field names and keys leading to the leaf
// (sequence items contribute no path element). Unset leaves are skipped.
func Walk(n Node, fn func(path []string, leaf Scalar) error) error {
	return walk(n, nil, nil, fn)
}

func walk(n Node, path []string, skip map[string]struct{}, fn func([]string, Scalar) error) error {
	switch n := n.(type) {
	case nil:
		return nil

	case Scalar:
		if !n.IsSet() {
			return nil
		}

		return fn(path, n)

	case *Table:
		if n == nil {
			return nil
		}

		for _, key := range n.keys {
			if _, ok := skip[key]; ok {
				continue
			}

			err := walk(n.entries[key], appendPath(path, key), nil, fn)
			if err != nil {
				return err
			}
		}

		return nil

	case Sequence:
		for _, item := range n {
			err := walk(item, path, nil, fn)
			if err != nil {
				return err
			}
		}

		return nil

	case Record:
		for _, f := range n.Fields() {
			if _, ok := skip[f.Name]; ok {
				continue
			}

			err := walk(f.Node, appendPath(path, f.Name), nil, fn)
			if err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("unsupported node type %T", n)
	}
}

func appendPath(path []string, name string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), name)
}
