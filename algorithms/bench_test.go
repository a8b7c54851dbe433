// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/iterlat/algorithms"
	"github.com/katalvlaran/iterlat/position"
)

const benchLen = 1 << 16

// BenchmarkCopy_Block measures the dispatched block transfer on 64Ki ints.
func BenchmarkCopy_Block(b *testing.B) {
	src, dst := make([]int, benchLen), make([]int, benchLen)
	in, inEnd := position.Range(src)
	out, outEnd := position.Range(dst)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algorithms.Copy(in, inEnd, out, outEnd)
	}
}

// BenchmarkCopy_Elementwise measures the element loop on the same data.
func BenchmarkCopy_Elementwise(b *testing.B) {
	src, dst := make([]int, benchLen), make([]int, benchLen)
	in, inEnd := position.Range(src)
	out, outEnd := position.Range(dst)
	opt := algorithms.WithElementwise()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algorithms.Copy(in, inEnd, out, outEnd, opt)
	}
}

// BenchmarkCopy_List measures copying from node positions.
func BenchmarkCopy_List(b *testing.B) {
	l := position.NewList(make([]int, benchLen)...)
	dst := make([]int, benchLen)
	out, outEnd := position.Range(dst)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algorithms.Copy(l.Begin(), l.End(), out, outEnd)
	}
}

// BenchmarkUpperBound measures the recursive search on 64Ki sorted ints.
func BenchmarkUpperBound(b *testing.B) {
	s := make([]int, benchLen)
	for i := range s {
		s[i] = i
	}
	first, last := position.Range(s)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algorithms.UpperBound(first, last, i%benchLen)
	}
}
