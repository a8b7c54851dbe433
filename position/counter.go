// SPDX-License-Identifier: MIT

package position

import "golang.org/x/exp/constraints"

// Counter is a read-only forward position over consecutive integers. Its
// element type is known only through Read.
type Counter[N constraints.Integer] struct {
	v N
}

// Count returns positions over [lo, hi). When hi < lo the range is empty.
func Count[N constraints.Integer](lo, hi N) (first, last Counter[N]) {
	if hi < lo {
		hi = lo
	}

	return Counter[N]{v: lo}, Counter[N]{v: hi}
}

// Next returns the position of the following integer.
func (c Counter[N]) Next() Counter[N] { return Counter[N]{v: c.v + 1} }

// Multipass marks Counter as a forward position.
func (Counter[N]) Multipass() {}

// Read returns the integer at c.
func (c Counter[N]) Read() N { return c.v }

var _ = requireForwardInput[Counter[int], int]
