// SPDX-License-Identifier: MIT

package position

import "github.com/katalvlaran/iterlat/concept"

// Read returns the element at p.
func Read[P concept.Readable[T], T any](p P) T {
	return p.Read()
}

// Write replaces the element at p with v.
func Write[P concept.Writable[T], T any](p P, v T) {
	p.Write(v)
}

// Advance returns the position immediately after p.
func Advance[P concept.Iterator[P]](p P) P {
	return p.Next()
}

// Retreat returns the position immediately before p. Positions without a
// predecessor (Link) do not satisfy the constraint and fail to compile.
func Retreat[P concept.Bidirectional[P]](p P) P {
	return p.Prev()
}

// AdvanceBy advances p by n steps. n <= 0 returns p unchanged; use Add on
// random-access positions for negative or O(1) offsets.
func AdvanceBy[P concept.Iterator[P]](p P, n int) P {
	for ; n > 0; n-- {
		p = p.Next()
	}

	return p
}

// compile-time capability assertions for the representations in this package.

func requireContiguous[P interface {
	concept.ContiguousInput[P, T]
	concept.ContiguousOutput[P, T]
}, T any]() {
}

func requireForwardMutable[P interface {
	concept.ForwardInput[P, T]
	concept.Output[P, T]
}, T any]() {
}

func requireForwardInput[P concept.ForwardInput[P, T], T any]() {}
