// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/iterlat/algorithms"
	"github.com/katalvlaran/iterlat/position"
)

// ExampleCopy copies a sentinel-terminated list into a larger array. Node
// positions are only Forward, so the element loop runs.
func ExampleCopy() {
	l := position.NewList(9, 8, 7)
	dst := make([]int, 7)
	out, outEnd := position.Range(dst)

	res := algorithms.Copy(l.Begin(), l.End(), out, outEnd,
		algorithms.WithOnDispatch(func(op, impl string) { fmt.Println(op, "via", impl) }))

	fmt.Println(dst, "next write at", res.Index())
	// Output:
	// copy via elementwise
	// [9 8 7 0 0 0 0] next write at 3
}

// ExampleCopy_block copies between two int slices; both sides are contiguous
// and ints are bitwise-movable, so one block transfer replaces the loop.
func ExampleCopy_block() {
	src := []int{1, 2, 3, 4, 5}
	dst := make([]int, 7)
	in, inEnd := position.Range(src)
	out, outEnd := position.Range(dst)

	res := algorithms.Copy(in, inEnd, out, outEnd,
		algorithms.WithOnDispatch(func(op, impl string) { fmt.Println(op, "via", impl) }))

	fmt.Println(dst, "next write at", res.Index())
	// Output:
	// copy via block
	// [1 2 3 4 5 0 0] next write at 5
}

// ExampleMaxElement shows the first-maximum rule.
func ExampleMaxElement() {
	first, last := position.Range([]int{5, 3, 5, 1})
	fmt.Println(algorithms.MaxElement(first, last).Index())
	// Output: 0
}

// ExampleReverse reverses an odd-length range; the center stays put.
func ExampleReverse() {
	s := []int{1, 2, 3, 4, 5}
	first, last := position.Range(s)
	algorithms.Reverse(first, last)
	fmt.Println(s)
	// Output: [5 4 3 2 1]
}

// ExampleUpperBound finds the first element greater than 3.
func ExampleUpperBound() {
	s := []int{1, 3, 3, 5, 7}
	first, last := position.Range(s)
	p := algorithms.UpperBound(first, last, 3)
	fmt.Println(p.Index(), p.Read())
	// Output: 3 5
}

// ExampleFill overwrites a list in place.
func ExampleFill() {
	l := position.NewList(1, 2, 3)
	algorithms.Fill(l.Begin(), l.End(), 0)
	fmt.Println(l.Values())
	// Output: [0 0 0]
}
