// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/iterlat/concept"
	"github.com/katalvlaran/iterlat/dispatch"
)

type distanceKind uint8

const (
	distanceWalk distanceKind = iota
	distanceDifference
)

var distanceImpls = dispatch.MustNew("distance",
	dispatch.Impl[distanceKind]{
		Key:      distanceWalk,
		Name:     "walk",
		Requires: []concept.Caps{concept.IteratorCaps},
	},
	dispatch.Impl[distanceKind]{
		Key:      distanceDifference,
		Name:     "difference",
		Requires: []concept.Caps{concept.RandomAccessCaps},
	},
)

// Distance returns the number of steps from first to last; last must be
// reachable from first. Random-access positions answer in O(1), all others
// are walked.
func Distance[P concept.Iterator[P]](first, last P, opts ...Option) int {
	o := gatherOptions(opts)
	impl := pick(distanceImpls, o, concept.CapsOf[P]())

	if impl.Key == distanceDifference {
		if ra, ok := any(last).(interface{ Sub(j P) int }); ok {
			o.report(distanceImpls.Op(), impl.Name)
			return ra.Sub(first)
		}
		impl = distanceImpls.Base()
	}
	o.report(distanceImpls.Op(), impl.Name)

	n := 0
	for ; first != last; first = first.Next() {
		n++
	}

	return n
}
