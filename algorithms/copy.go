// SPDX-License-Identifier: MIT

package algorithms

import (
	"unsafe"

	"github.com/katalvlaran/iterlat/concept"
	"github.com/katalvlaran/iterlat/dispatch"
)

type copyKind uint8

const (
	copyElementwise copyKind = iota
	copyBlock
)

var copyImpls = dispatch.MustNew("copy",
	dispatch.Impl[copyKind]{
		Key:  copyElementwise,
		Name: "elementwise",
		Requires: []concept.Caps{
			concept.IteratorCaps | concept.CapReadable,
			concept.IteratorCaps | concept.CapWritable,
		},
	},
	dispatch.Impl[copyKind]{
		Key:  copyBlock,
		Name: "block",
		Requires: []concept.Caps{
			concept.ContiguousCaps | concept.CapReadable | concept.CapBitwise,
			concept.ContiguousCaps | concept.CapWritable | concept.CapBitwise,
		},
	},
)

// Copy copies elements from [in, inEnd) to [out, outEnd) until either range
// is exhausted and returns the destination position immediately after the
// last element written.
//
// When both position types are Contiguous and T is bitwise-movable, the
// element loop is replaced by one block transfer of
// n = min(inEnd-in, outEnd-out) elements, and the result is out.Add(n).
// The block transfer behaves as if copying through a temporary buffer, so it
// is correct for overlapping ranges in either direction; the element loop
// reads and writes front to back.
//
// Time: O(n). Memory: O(1).
func Copy[I concept.Input[I, T], O concept.Output[O, T], T any](in, inEnd I, out, outEnd O, opts ...Option) O {
	o := gatherOptions(opts)
	impl := pick(copyImpls, o, concept.CapsOf[I](), concept.CapsOf[O]())

	if impl.Key == copyBlock {
		if res, ok := copyBlockDynamic[I, O, T](in, inEnd, out, outEnd); ok {
			o.report(copyImpls.Op(), impl.Name)
			return res
		}
		impl = copyImpls.Base()
	}
	o.report(copyImpls.Op(), impl.Name)

	return copyElements[I, O, T](in, inEnd, out, outEnd)
}

// CopyBlock is the block-transfer body of Copy for callers that want the
// capability check at build time: both sides must be Contiguous and T a
// Plain scalar. It returns out.Add(n) with n = min(inEnd-in, outEnd-out).
//
// Time: O(n) bytes moved, one call. Memory: O(1).
func CopyBlock[I concept.ContiguousInput[I, T], O concept.ContiguousOutput[O, T], T concept.Plain](in, inEnd I, out, outEnd O) O {
	n := max(min(inEnd.Sub(in), outEnd.Sub(out)), 0)
	if n > 0 {
		move(out.Addr(), in.Addr(), n)
	}

	return out.Add(n)
}

// copyElements is the generic body: read, write, advance both.
func copyElements[I concept.Input[I, T], O concept.Output[O, T], T any](in, inEnd I, out, outEnd O) O {
	for in != inEnd && out != outEnd {
		out.Write(in.Read())
		out = out.Next()
		in = in.Next()
	}

	return out
}

// copyBlockDynamic runs the block transfer on positions whose contiguity was
// established by dispatch rather than by the signature.
func copyBlockDynamic[I, O, T any](in, inEnd I, out, outEnd O) (O, bool) {
	src, okSrc := any(in).(concept.Addressable[I, T])
	srcEnd, okSrcEnd := any(inEnd).(concept.Addressable[I, T])
	dst, okDst := any(out).(concept.Addressable[O, T])
	dstEnd, okDstEnd := any(outEnd).(concept.Addressable[O, T])
	if !okSrc || !okSrcEnd || !okDst || !okDstEnd {
		return out, false
	}

	n := max(min(srcEnd.Sub(in), dstEnd.Sub(out)), 0)
	if n > 0 {
		move(dst.Addr(), src.Addr(), n)
	}

	return dst.Add(n), true
}

// move transfers n elements starting at src to dst; the regions may overlap.
func move[T any](dst, src *T, n int) {
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}
