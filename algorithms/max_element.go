// SPDX-License-Identifier: MIT

package algorithms

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/iterlat/concept"
)

// MaxElement returns the position of the greatest element of [it, itEnd),
// or itEnd if the range is empty. Elements are compared with a strict >, so
// among equal maxima the first one wins.
//
// Time: O(n) comparisons, one pass. Memory: O(1).
func MaxElement[P concept.ForwardInput[P, T], T constraints.Ordered](it, itEnd P) P {
	return MaxElementFunc(it, itEnd, func(a, b T) bool { return a < b })
}

// MaxElementFunc is MaxElement with an explicit strict ordering: the current
// maximum m is replaced by v only when less(m, v).
func MaxElementFunc[P concept.ForwardInput[P, T], T any](it, itEnd P, less func(a, b T) bool) P {
	if it == itEnd {
		return itEnd
	}

	best, bestVal := it, it.Read()
	for it = it.Next(); it != itEnd; it = it.Next() {
		if v := it.Read(); less(bestVal, v) {
			best, bestVal = it, v
		}
	}

	return best
}
