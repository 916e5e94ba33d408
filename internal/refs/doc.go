// Package refs detects and resolves symbolic references inside a flat
// namespace of definitions.
//
// A definition table maps names to values. A value that is itself the name of
// another entry is a reference; anything else is a literal. Resolution follows
// the reference chain until it reaches a literal.
//
// # Node kinds
//
// The resolver walks a declared shape instead of an arbitrary object graph.
// Exactly four kinds of node exist:
//
//   - Scalar: a rewritable string leaf (nil leaves are unset and skipped)
//   - *Table: an insertion-ordered mapping of names to nodes
//   - Sequence: an ordered list of nodes
//   - Record: a typed structure exposing its named fields as nodes
//
// # Usage
//
//	palette := refs.TableOf("purple", "#6339E0", "accent", "purple")
//	if err := refs.DetectCycle("palette", palette); err != nil {
//		return err
//	}
//	if err := refs.Replace(palette, palette); err != nil {
//		return err
//	}
//
// DetectCycle must run before Replace: Replace mutates its target in place and
// only guards against cycles with an iteration cap.
package refs
