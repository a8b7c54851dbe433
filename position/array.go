// SPDX-License-Identifier: MIT

package position

// block owns the slice header so that Array stays comparable.
type block[T any] struct {
	data []T
}

// Array is a position into a contiguous block of T. The zero value is not
// usable; obtain positions from Range.
type Array[T any] struct {
	blk *block[T]
	i   int
}

// Range returns the first and past-the-end positions over s. Positions from
// two different Range calls never compare equal, even over the same slice.
func Range[T any](s []T) (first, last Array[T]) {
	b := &block[T]{data: s}

	return Array[T]{blk: b, i: 0}, Array[T]{blk: b, i: len(s)}
}

// Next returns the position of the following element.
func (p Array[T]) Next() Array[T] { return Array[T]{blk: p.blk, i: p.i + 1} }

// Prev returns the position of the preceding element.
func (p Array[T]) Prev() Array[T] { return Array[T]{blk: p.blk, i: p.i - 1} }

// Multipass marks Array as a forward position.
func (Array[T]) Multipass() {}

// Add offsets p by n elements; n may be negative.
func (p Array[T]) Add(n int) Array[T] { return Array[T]{blk: p.blk, i: p.i + n} }

// Sub returns the signed number of elements from j to p.
func (p Array[T]) Sub(j Array[T]) int { return p.i - j.i }

// Less orders positions of the same block by index.
func (p Array[T]) Less(j Array[T]) bool { return p.i < j.i }

// Addr returns the address of the element at p. p must be dereferenceable.
func (p Array[T]) Addr() *T { return &p.blk.data[p.i] }

// Read returns the element at p.
func (p Array[T]) Read() T { return p.blk.data[p.i] }

// Write replaces the element at p with v.
func (p Array[T]) Write(v T) { p.blk.data[p.i] = v }

// Index returns the offset of p from the start of its block.
func (p Array[T]) Index() int { return p.i }

var _ = requireContiguous[Array[int], int]
