// SPDX-License-Identifier: MIT

package algorithms

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/iterlat/concept"
)

// UpperBound returns the first position in [it, itEnd) whose element is
// strictly greater than x, or itEnd if there is none. The range must be
// sorted non-decreasingly; this is not checked.
//
// Every element before the result is <= x and every element from the result
// on is > x.
//
// Time: O(log n) comparisons. Memory: O(log n) stack.
func UpperBound[P concept.RandomAccessInput[P, T], T constraints.Ordered](it, itEnd P, x T) P {
	return UpperBoundFunc(it, itEnd, x, func(a, b T) bool { return a < b })
}

// UpperBoundFunc is UpperBound with an explicit strict ordering; the range
// must be sorted by less.
func UpperBoundFunc[P concept.RandomAccessInput[P, T], T any](it, itEnd P, x T, less func(a, b T) bool) P {
	// 1. Base case.
	if it == itEnd {
		return itEnd
	}

	// 2. Midpoint by truncating division, so mid < itEnd.
	mid := it.Add(itEnd.Sub(it) / 2)

	// 3. Reduce: mid <= x moves right past mid; otherwise the answer lies in
	//    [it, mid], which is the search over [it, mid) with mid as its end.
	if !less(x, mid.Read()) {
		return UpperBoundFunc(mid.Next(), itEnd, x, less)
	}

	return UpperBoundFunc(it, mid, x, less)
}
