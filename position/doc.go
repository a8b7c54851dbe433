// SPDX-License-Identifier: MIT

// Package position provides the two canonical position representations and
// the primitive operations every iterlat algorithm is written in terms of.
//
// What:
//
//   - Array[T]: a position into one contiguous block of T (a slice).
//     Capabilities: Contiguous (and everything below it), Readable, Writable.
//   - Link[T]: a position on a singly-linked chain of Node[T].
//     Capabilities: Forward, Readable, Writable. Link has no Prev method, so
//     Retreat(link) is rejected by the compiler rather than failing at run time.
//   - Counter[N]: a read-only forward position over an integer range; a small
//     illustration of a position whose element type is declared only by its
//     Read method.
//   - Primitives: Read, Write, Advance, Retreat and AdvanceBy.
//     Each is resolved statically through its type parameter.
//
// Sequences are the owners; positions are pure views that never allocate or
// free element storage:
//
//	first, last := position.Range(s)   // over a slice
//	l := position.NewList(9, 8, 7)     // sentinel-terminated list
//	first, last := l.Begin(), l.End()
//
// Comparing positions taken from different sequences is meaningless; the
// result is unspecified.
//
// Complexity: every primitive is O(1) except AdvanceBy, which is O(n).
// algorithms.Distance measures a range.
package position
