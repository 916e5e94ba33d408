package refs

import (
	"slices"

	errUtils "brand-yml/errors"
)

// Visit states for the depth-first traversal.
const (
	unvisited = iota
	inProgress
	done
)

// DetectCycle reports whether following references from any entry of t leads
// back to that entry. An edge k -> v exists when a scalar leaf of entry k
// (container entries are walked down to their leaves) equals the name v of
// another entry. A self-reference is a cycle.
//
// Entries are visited in insertion order, so the reported path is stable for
// a given document. The returned error is a *errors.CircularReferenceError
// naming the namespace and the cycle path.
func DetectCycle(namespace string, t *Table) error {
	if t.Len() == 0 {
		return nil
	}

	state := make(map[string]int, t.Len())

	var stack []string

	var visit func(key string) error

	visit = func(key string) error {
		switch state[key] {
		case done:
			return nil
		case inProgress:
			start := slices.Index(stack, key)
			path := append(slices.Clone(stack[start:]), key)

			return &errUtils.CircularReferenceError{Namespace: namespace, Path: path}
		}

		state[key] = inProgress
		stack = append(stack, key)

		for _, ref := range References(t, key) {
			err := visit(ref)
			if err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[key] = done

		return nil
	}

	for _, key := range t.keys {
		if state[key] != unvisited {
			continue
		}

		err := visit(key)
		if err != nil {
			return err
		}
	}

	return nil
}

// References returns the entry names referenced by the leaves of entry key,
// in leaf order and without duplicates.
func References(t *Table, key string) []string {
	n, ok := t.Get(key)
	if !ok {
		return nil
	}

	var refs []string

	_ = Walk(n, func(_ []string, leaf Scalar) error {
		v := *leaf.Value
		if t.Has(v) && !slices.Contains(refs, v) {
			refs = append(refs, v)
		}

		return nil
	})

	return refs
}
