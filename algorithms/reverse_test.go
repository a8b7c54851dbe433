// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/iterlat/algorithms"
	"github.com/katalvlaran/iterlat/position"
)

// TestReverse_Lengths covers odd, even, empty and single-element ranges.
func TestReverse_Lengths(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"odd", []int{1, 2, 3, 4, 5}, []int{5, 4, 3, 2, 1}},
		{"even", []int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
		{"pair", []int{1, 2}, []int{2, 1}},
		{"single", []int{7}, []int{7}},
		{"empty", []int{}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := position.Range(tc.in)
			algorithms.Reverse(first, last)
			assert.Equal(t, tc.want, tc.in)
		})
	}
}

// TestReverse_Twice restores the input.
func TestReverse_Twice(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e", "f"}
	first, last := position.Range(s)
	algorithms.Reverse(first, last)
	algorithms.Reverse(first, last)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, s)
}

// TestReverse_Bidirectional needs no random access.
func TestReverse_Bidirectional(t *testing.T) {
	s := []int{1, 2, 3}
	first, last := position.Range(s)
	algorithms.Reverse(bidi[int]{a: first}, bidi[int]{a: last})
	assert.Equal(t, []int{3, 2, 1}, s)
}

// TestReverse_SubRange leaves the rest untouched.
func TestReverse_SubRange(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	first, _ := position.Range(s)
	algorithms.Reverse(first.Add(1), first.Add(4))
	assert.Equal(t, []int{1, 4, 3, 2, 5, 6}, s)
}
