// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"github.com/katalvlaran/iterlat/algorithms"
	"github.com/katalvlaran/iterlat/position"
)

// fwd wraps an Array and exposes only the forward, readable and writable
// methods. It masks contiguity so that dispatch must take the element loop.
type fwd[T any] struct{ a position.Array[T] }

func (p fwd[T]) Next() fwd[T] { return fwd[T]{a: p.a.Next()} }
func (fwd[T]) Multipass()     {}
func (p fwd[T]) Read() T      { return p.a.Read() }
func (p fwd[T]) Write(v T)    { p.a.Write(v) }
func (p fwd[T]) Index() int   { return p.a.Index() }

// hide converts an Array range into a fwd range.
func hide[T any](first, last position.Array[T]) (fwd[T], fwd[T]) {
	return fwd[T]{a: first}, fwd[T]{a: last}
}

// bidi wraps an Array and exposes bidirectional access but no offsets.
type bidi[T any] struct{ a position.Array[T] }

func (p bidi[T]) Next() bidi[T] { return bidi[T]{a: p.a.Next()} }
func (p bidi[T]) Prev() bidi[T] { return bidi[T]{a: p.a.Prev()} }
func (bidi[T]) Multipass()      {}
func (p bidi[T]) Read() T       { return p.a.Read() }
func (p bidi[T]) Write(v T)     { p.a.Write(v) }

// recorder returns a dispatch hook that appends "op:impl" to the returned slice.
func recorder() (*[]string, algorithms.Option) {
	var got []string

	return &got, algorithms.WithOnDispatch(func(op, impl string) {
		got = append(got, op+":"+impl)
	})
}

// zeros returns a slice of n zero ints.
func zeros(n int) []int { return make([]int, n) }
