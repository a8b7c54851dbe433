// SPDX-License-Identifier: MIT

package algorithms

import "github.com/katalvlaran/iterlat/concept"

// Fill writes v at every position of [it, itEnd). An empty range is a no-op.
//
// Time: O(n). Memory: O(1).
func Fill[P concept.Output[P, T], T any](it, itEnd P, v T) {
	for ; it != itEnd; it = it.Next() {
		it.Write(v)
	}
}
