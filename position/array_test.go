// SPDX-License-Identifier: MIT

package position_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/iterlat/concept"
	"github.com/katalvlaran/iterlat/position"
)

func TestRange_Bounds(t *testing.T) {
	s := []int{10, 20, 30}
	first, last := position.Range(s)

	assert.Equal(t, 0, first.Index())
	assert.Equal(t, 3, last.Index())
	assert.Equal(t, 3, last.Sub(first))
	assert.True(t, first.Add(3) == last)

	e, eEnd := position.Range([]int(nil))
	assert.True(t, e == eEnd, "empty range has first == last")
}

func TestArray_Navigation(t *testing.T) {
	first, last := position.Range([]string{"a", "b", "c", "d"})

	p := first.Next().Next()
	assert.Equal(t, "c", p.Read())
	assert.Equal(t, "b", p.Prev().Read())
	assert.Equal(t, "d", p.Add(1).Read())
	assert.Equal(t, "a", p.Add(-2).Read())
	assert.True(t, p.Next().Prev() == p)
	assert.Equal(t, -2, first.Sub(p))
	assert.True(t, first.Less(p))
	assert.False(t, p.Less(p))
	assert.True(t, p.Less(last))
}

func TestArray_ReadWriteAddr(t *testing.T) {
	s := []int{1, 2, 3}
	first, _ := position.Range(s)

	p := first.Add(1)
	p.Write(42)
	assert.Equal(t, []int{1, 42, 3}, s, "writes go through to the slice")
	assert.Same(t, &s[1], p.Addr())

	*p.Next().Addr() = 7
	assert.Equal(t, 7, s[2])
}

func TestArray_SeparateRangesDiffer(t *testing.T) {
	s := []int{1, 2}
	a, _ := position.Range(s)
	b, _ := position.Range(s)

	assert.False(t, a == b, "positions from different Range calls are distinct")
	assert.Same(t, a.Addr(), b.Addr(), "but they address the same storage")
}

func TestArray_Laws(t *testing.T) {
	first, last := position.Range([]float64{3, 1, 4, 1, 5, 9})

	require.NoError(t, concept.CheckMultipass(first, last))
	require.NoError(t, concept.CheckBidirectional(first, last))
	require.NoError(t, concept.CheckRandomAccess(first, last))
	require.NoError(t, concept.CheckContiguous[position.Array[float64], float64](first, last))

	assert.Equal(t, uintptr(8), unsafe.Sizeof(first.Read()))
}
