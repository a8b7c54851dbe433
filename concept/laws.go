// SPDX-License-Identifier: MIT

package concept

import (
	"fmt"
	"unsafe"
)

// CheckMultipass verifies over [first, last) that advancing a copy of a
// position neither changes the original nor diverges from advancing
// another copy.
// Time: O(n).
func CheckMultipass[P Forward[P]](first, last P) error {
	step := 0
	for p := first; p != last; p = p.Next() {
		orig := p
		a, b := p, p
		a, b = a.Next(), b.Next()
		if a != b {
			return fmt.Errorf("%w: multipass: copies diverged after step %d", ErrLawViolated, step)
		}
		if p != orig {
			return fmt.Errorf("%w: multipass: advancing a copy moved the original at step %d", ErrLawViolated, step)
		}
		step++
	}

	return nil
}

// CheckBidirectional verifies p.Next().Prev() == p for every p in
// [first, last).
// Time: O(n).
func CheckBidirectional[P Bidirectional[P]](first, last P) error {
	step := 0
	for p := first; p != last; p = p.Next() {
		if p.Next().Prev() != p {
			return fmt.Errorf("%w: bidirectional: Prev(Next(p)) != p at step %d", ErrLawViolated, step)
		}
		step++
	}

	return nil
}

// CheckRandomAccess verifies the offset, difference and order laws for
// every pair of positions in [first, last], end included.
// Time: O(n²); intended for tests on small ranges.
func CheckRandomAccess[P RandomAccess[P]](first, last P) error {
	ps := []P{first}
	for p := first; p != last; {
		p = p.Next()
		ps = append(ps, p)
	}

	for i, pi := range ps {
		if pi.Add(0) != pi {
			return fmt.Errorf("%w: random access: p.Add(0) != p at %d", ErrLawViolated, i)
		}
		for j, pj := range ps {
			if pi.Add(j-i) != pj {
				return fmt.Errorf("%w: random access: p[%d].Add(%d) != p[%d]", ErrLawViolated, i, j-i, j)
			}
			if d := pj.Sub(pi); d != j-i {
				return fmt.Errorf("%w: random access: p[%d].Sub(p[%d]) = %d, want %d", ErrLawViolated, j, i, d, j-i)
			}
			if pi.Add(pj.Sub(pi)) != pj {
				return fmt.Errorf("%w: random access: i.Add(j.Sub(i)) != j for %d,%d", ErrLawViolated, i, j)
			}
			if pi.Less(pj) != (i < j) {
				return fmt.Errorf("%w: random access: Less(p[%d], p[%d]) = %t", ErrLawViolated, i, j, pi.Less(pj))
			}
		}
		// negative offsets must agree with repeated retreats
		q := pi
		for k := 1; k <= i; k++ {
			q = q.Prev()
			if pi.Add(-k) != q {
				return fmt.Errorf("%w: random access: p[%d].Add(%d) != %d×Prev", ErrLawViolated, i, -k, k)
			}
		}
	}

	return nil
}

// CheckContiguous verifies that consecutive dereferenceable positions in
// [first, last) map to consecutive element addresses.
// Time: O(n).
func CheckContiguous[P Contiguous[P, T], T any](first, last P) error {
	var zero T
	size := unsafe.Sizeof(zero)
	step := 0
	for p := first; p != last; p = p.Next() {
		q := p.Next()
		if q == last {
			break
		}
		gap := uintptr(unsafe.Pointer(q.Addr())) - uintptr(unsafe.Pointer(p.Addr()))
		if gap != size {
			return fmt.Errorf("%w: contiguous: address gap %d at step %d, want %d", ErrLawViolated, gap, step, size)
		}
		step++
	}

	return nil
}
