package refs

import (
	"fmt"
	"strings"
)

// Replace rewrites, in place, every scalar leaf of target whose value names an
// entry of defs with the literal that entry resolves to. Leaves that name
// nothing in defs are literals and stay as they are. Records, mappings and
// sequences are descended into; exclude lists top-level field or key names of
// target that are neither visited nor rewritten.
//
// target and defs may be the same table. Cycles must have been rejected with
// DetectCycle beforehand; Replace only caps each chain and reports
// ErrUnresolvedReference if the cap is hit.
func Replace(target Node, defs *Table, exclude ...string) error {
	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	return walk(target, nil, skip, func(path []string, leaf Scalar) error {
		resolved, ok, err := defs.Resolve(*leaf.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", pathString(path), err)
		}

		if ok {
			*leaf.Value = resolved
		}

		return nil
	})
}

// Resolved returns a resolved deep copy of t, resolving it against itself.
func Resolved(t *Table) (*Table, error) {
	c := t.Clone()
	if c == nil {
		return NewTable(), nil
	}

	err := Replace(c, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}

	return strings.Join(path, ".")
}
