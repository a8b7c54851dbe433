// SPDX-License-Identifier: MIT

// Package iterlat is a library of sequence algorithms written once against
// the minimal capability each one needs, with the compiler rejecting calls
// on positions that lack it.
//
// What is iterlat?
//
//	A position is any comparable value with a few methods. Which methods it has
//	places it on a lattice of capabilities:
//		• Iterator:      Next()
//		• Forward:       + Multipass() (advancing a copy leaves the original alone)
//		• Bidirectional: + Prev()
//		• RandomAccess:  + Less, Add, Sub
//		• Contiguous:    + Addr() *T (elements are adjacent in memory)
//	Readable (Read() T) and Writable (Write(T)) are orthogonal to the chain.
//
// Under the hood, everything is organized under four subpackages:
//
//	concept/     the capability constraints, run-time capability sets, element-type
//	             resolution and law checkers
//	position/    Array (contiguous), Link and List (forward), Counter (read-only)
//	             and the primitives Read, Write, Advance, Retreat, AdvanceBy
//	dispatch/    most-constrained-wins selection among several legal bodies
//	algorithms/  Copy, CopyBlock, Fill, MaxElement, Reverse, UpperBound, Distance
//
// Quick example:
//
//	l := position.NewList(9, 8, 7)
//	dst := make([]int, 7)
//	out, outEnd := position.Range(dst)
//	algorithms.Copy(l.Begin(), l.End(), out, outEnd) // dst = [9 8 7 0 0 0 0]
//
//	algorithms.Reverse(l.Begin(), l.End()) // does not compile: Link has no Prev
//
// Copy between two Array ranges of a pointer-free element type runs as one
// block transfer; everything else runs the element loop. Both return the
// destination position after the last element written.
//
// The cmd/iterlat command exposes the algorithms and YAML scenarios from
// the shell.
package iterlat
