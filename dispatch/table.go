// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/iterlat/concept"
)

// Impl describes one implementation of an operation.
type Impl[K comparable] struct {
	// Key identifies the implementation to the caller's switch.
	Key K

	// Name is a human-readable label, reported by hooks and logs.
	Name string

	// Requires holds one capability set per position argument.
	Requires []concept.Caps
}

// Accepts reports whether have meets every per-argument requirement.
func (im Impl[K]) Accepts(have []concept.Caps) bool {
	if len(have) != len(im.Requires) {
		return false
	}
	for i, req := range im.Requires {
		if !have[i].Has(req) {
			return false
		}
	}

	return true
}

// Table holds the implementations of one operation ordered from the most to
// the least specialized.
type Table[K comparable] struct {
	op    string
	arity int
	impls []Impl[K]
}

// New validates impls and returns a Table. See the package documentation
// for the registration rules.
func New[K comparable](op string, impls ...Impl[K]) (*Table[K], error) {
	if len(impls) == 0 {
		return nil, fmt.Errorf("dispatch %s: %w", op, ErrEmptyTable)
	}

	arity := len(impls[0].Requires)
	for i, a := range impls {
		if len(a.Requires) != arity {
			return nil, fmt.Errorf("dispatch %s: %q has %d requirements, want %d: %w",
				op, a.Name, len(a.Requires), arity, ErrArity)
		}
		for _, b := range impls[:i] {
			if a.Key == b.Key || a.Name == b.Name {
				return nil, fmt.Errorf("dispatch %s: %q and %q: %w", op, b.Name, a.Name, ErrDuplicate)
			}
			// exactly one direction must hold
			if subsumes(a.Requires, b.Requires) == subsumes(b.Requires, a.Requires) {
				return nil, fmt.Errorf("dispatch %s: %q %v vs %q %v: %w",
					op, b.Name, b.Requires, a.Name, a.Requires, ErrAmbiguous)
			}
		}
	}

	sorted := slices.Clone(impls)
	slices.SortStableFunc(sorted, func(a, b Impl[K]) int {
		if subsumes(a.Requires, b.Requires) {
			return -1
		}
		return 1
	})

	return &Table[K]{op: op, arity: arity, impls: sorted}, nil
}

// MustNew is like New but panics on a registration error.
func MustNew[K comparable](op string, impls ...Impl[K]) *Table[K] {
	t, err := New(op, impls...)
	if err != nil {
		panic(err)
	}

	return t
}

// Op returns the operation name.
func (t *Table[K]) Op() string { return t.op }

// Arity returns the number of position arguments each implementation takes.
func (t *Table[K]) Arity() int { return t.arity }

// Base returns the least specialized implementation: the one every other
// implementation refines.
func (t *Table[K]) Base() Impl[K] { return t.impls[len(t.impls)-1] }

// Impls returns the implementations, most specialized first.
func (t *Table[K]) Impls() []Impl[K] { return slices.Clone(t.impls) }

// Select returns the most specialized implementation accepting have, one
// capability set per position argument.
func (t *Table[K]) Select(have ...concept.Caps) (Impl[K], error) {
	if len(have) != t.arity {
		return Impl[K]{}, fmt.Errorf("dispatch %s: got %d capability sets, want %d: %w",
			t.op, len(have), t.arity, ErrArity)
	}
	// eligible entries form a chain; the first hit is its maximum
	for _, im := range t.impls {
		if im.Accepts(have) {
			return im, nil
		}
	}

	return Impl[K]{}, fmt.Errorf("dispatch %s: %v: %w", t.op, have, ErrNoMatch)
}

// subsumes reports whether a requires at least everything b requires,
// argument by argument.
func subsumes(a, b []concept.Caps) bool {
	for i := range a {
		if !a[i].Has(b[i]) {
			return false
		}
	}

	return true
}
