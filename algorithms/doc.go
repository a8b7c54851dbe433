// SPDX-License-Identifier: MIT

// Package algorithms implements sequence algorithms over positions, each
// declared against the minimal capability it needs.
//
// What:
//
//   - Copy(in, inEnd, out, outEnd)   Input → Output; stops when either side is
//     exhausted and returns the destination position after the last write.
//     A block-transfer body replaces the element loop when both sides are
//     Contiguous over the same bitwise-movable element type.
//   - CopyBlock(...)                 the block transfer as a statically
//     constrained entry point (Contiguous, T concept.Plain).
//   - Fill(it, itEnd, v)             Output.
//   - MaxElement(it, itEnd)          ForwardInput; strict >, first maximum wins.
//   - Reverse(first, last)           BidirectionalMutable; in-place two-ended swap.
//   - UpperBound(it, itEnd, x)       RandomAccessInput over a sorted range.
//   - Distance(first, last)          Iterator; O(1) on RandomAccess.
//   - MaxElementFunc, UpperBoundFunc take an explicit strict ordering.
//
// Capability checks are done by the compiler: calling Reverse on a
// position.Link, or UpperBound on anything weaker than RandomAccess, does not
// build. When several bodies are legal for one call (Copy, Distance), the
// dispatch table picks the one with the strongest requirements; see package
// dispatch.
//
// Options:
//
//   - WithElementwise()     force the least specialized body (useful to compare paths).
//   - WithOnDispatch(fn)    observe which body ran, as fn(op, impl).
//
// Preconditions (documented, not checked):
//
//   - both positions of a range come from the same sequence;
//   - UpperBound input is sorted non-decreasingly by the same order.
//
// Violations yield unspecified results, not errors.
//
// Complexity:
//
//   - Copy, Fill, MaxElement, Reverse:  O(n)
//   - UpperBound:                       O(log n) comparisons, O(log n) recursion depth
//   - Distance:                         O(n), O(1) on RandomAccess
//
// Single-threaded and synchronous: every call runs to completion in the
// calling goroutine. Callers must not run two mutating algorithms over
// overlapping ranges concurrently.
package algorithms
