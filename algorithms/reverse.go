// SPDX-License-Identifier: MIT

package algorithms

import "github.com/katalvlaran/iterlat/concept"

// Reverse reverses [first, last) in place by swapping elements from both
// ends inward. For odd lengths the center element is left untouched; empty
// and single-element ranges are no-ops.
//
// Time: O(n), n/2 swaps. Memory: O(1).
func Reverse[P concept.BidirectionalMutable[P, T], T any](first, last P) {
	for first != last {
		last = last.Prev()
		if first == last {
			break
		}
		a, b := first.Read(), last.Read()
		first.Write(b)
		last.Write(a)
		first = first.Next()
	}
}
