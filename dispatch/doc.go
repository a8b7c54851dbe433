// SPDX-License-Identifier: MIT

// Package dispatch selects, among several legal implementations of one
// operation, the most specialized one: the implementation whose required
// capabilities subsume those of every other eligible implementation.
//
// Go has no overloading, so the "most constrained wins" rule is encoded as a
// Table built once per operation:
//
//	var copyImpls = dispatch.MustNew("copy",
//		dispatch.Impl[kind]{Key: elementwise, Name: "elementwise",
//			Requires: []concept.Caps{concept.IteratorCaps | concept.CapReadable,
//				concept.IteratorCaps | concept.CapWritable}},
//		dispatch.Impl[kind]{Key: block, Name: "block",
//			Requires: []concept.Caps{concept.ContiguousCaps | concept.CapReadable | concept.CapBitwise,
//				concept.ContiguousCaps | concept.CapWritable | concept.CapBitwise}},
//	)
//
// Requires holds one capability set per position argument of the operation.
// Requirement sets are compared argument-wise.
//
// Registration rules (enforced by New):
//
//   - every implementation has the same arity,
//   - keys and names are unique,
//   - every pair of implementations is comparable: one requirement vector
//     must strictly subsume the other. Incomparable or identical vectors could
//     both be eligible for one call with no winner, so they are rejected with
//     ErrAmbiguous.
//
// Because of the last rule the eligible implementations of any call form a
// chain, and Select always has a unique answer. Tables are meant to be built
// in package-level variable initializers with MustNew, so an ambiguous
// registration stops every program and test binary before main runs.
//
// Complexity: New is O(k²·a), Select is O(k·a) for k implementations of arity a.
//
// Errors:
//
//   - ErrEmptyTable   no implementations registered.
//   - ErrArity        requirement vectors or Select arguments of the wrong length.
//   - ErrDuplicate    repeated key or name.
//   - ErrAmbiguous    two implementations with incomparable or identical requirements.
//   - ErrNoMatch      Select found no eligible implementation.
package dispatch
