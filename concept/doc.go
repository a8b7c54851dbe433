// SPDX-License-Identifier: MIT

// Package concept defines the capability lattice of positions: the
// compile-time constraints that every algorithm in iterlat is declared
// against, and a run-time mirror of the same lattice used by the
// dispatcher to pick the most specialized implementation.
//
// What:
//
//   - Constraints (checked by the compiler, structural):
//     Regular ⊆ Iterator ⊆ Forward ⊆ Bidirectional ⊆ RandomAccess ⊆ Contiguous,
//     plus the orthogonal Readable and Writable.
//   - Bundles used in algorithm signatures: Input, Output, ForwardInput,
//     BidirectionalMutable, RandomAccessInput, ContiguousInput, ContiguousOutput.
//   - Plain: the type set of scalar element types that may be duplicated by a
//     raw memory move.
//   - Caps: a bitmask describing the same lattice at run time. CapsOf derives
//     it from method shapes exactly as the constraints do.
//   - ElemOf: element-type resolution with a fixed priority
//     (node-backed → address-backed → declared by Read/Write).
//   - Law checkers: CheckMultipass, CheckBidirectional, CheckRandomAccess and
//     CheckContiguous verify the semantic half of a capability over a range.
//
// Method shapes a position type P exposes to qualify:
//
//	Iterator       Next() P
//	Forward        Multipass()
//	Bidirectional  Prev() P
//	RandomAccess   Add(n int) P, Sub(j P) int, Less(j P) bool
//	Contiguous     Addr() *T
//	Readable       Read() T
//	Writable       Write(v T)
//
// A missing method is a build error at the call site of any algorithm that
// needs it; there is no run-time fault for an unsupported capability.
//
// Errors:
//
//   - ErrLawViolated  a law checker found a counterexample.
package concept
