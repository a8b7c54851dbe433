// SPDX-License-Identifier: MIT

package concept

import (
	"reflect"
	"strings"
	"sync"
)

// Caps is a set of capabilities a position type supports. It mirrors the
// compile-time constraints so that a dispatcher can compare requirement
// sets; it never widens what the compiler accepts.
type Caps uint16

// Individual capabilities. The first six form a chain; each one is only
// reported when all previous ones hold.
const (
	CapRegular Caps = 1 << iota
	CapIterator
	CapForward
	CapBidirectional
	CapRandomAccess
	CapContiguous
	CapReadable
	CapWritable
	CapBitwise // element type is bitwise-movable
)

// Named capability sets, each a superset of the previous one.
const (
	RegularCaps       = CapRegular
	IteratorCaps      = RegularCaps | CapIterator
	ForwardCaps       = IteratorCaps | CapForward
	BidirectionalCaps = ForwardCaps | CapBidirectional
	RandomAccessCaps  = BidirectionalCaps | CapRandomAccess
	ContiguousCaps    = RandomAccessCaps | CapContiguous
)

var capNames = [...]struct {
	c    Caps
	name string
}{
	{CapRegular, "regular"},
	{CapIterator, "iterator"},
	{CapForward, "forward"},
	{CapBidirectional, "bidirectional"},
	{CapRandomAccess, "random-access"},
	{CapContiguous, "contiguous"},
	{CapReadable, "readable"},
	{CapWritable, "writable"},
	{CapBitwise, "bitwise"},
}

// Has reports whether c contains every capability in req.
func (c Caps) Has(req Caps) bool {
	return c&req == req
}

// Category returns the strongest named capability set contained in c,
// ignoring the orthogonal bits.
func (c Caps) Category() Caps {
	for _, set := range [...]Caps{ContiguousCaps, RandomAccessCaps, BidirectionalCaps, ForwardCaps, IteratorCaps, RegularCaps} {
		if c.Has(set) {
			return set
		}
	}

	return 0
}

// String lists the capabilities joined by "|", or "none".
func (c Caps) String() string {
	if c == 0 {
		return "none"
	}
	parts := make([]string, 0, len(capNames))
	for _, cn := range capNames {
		if c&cn.c != 0 {
			parts = append(parts, cn.name)
		}
	}

	return strings.Join(parts, "|")
}

var capsCache sync.Map // reflect.Type -> Caps

// CapsOf returns the capability set of position type P.
func CapsOf[P any]() Caps {
	return CapsOfType(reflect.TypeFor[P]())
}

// CapsOfType returns the capability set of t, derived from its method set
// the same way the constraints in this package are satisfied. Results are
// cached per type.
func CapsOfType(t reflect.Type) Caps {
	if t == nil {
		return 0
	}
	if c, ok := capsCache.Load(t); ok {
		return c.(Caps)
	}
	c := deriveCaps(t)
	capsCache.Store(t, c)

	return c
}

func deriveCaps(t reflect.Type) Caps {
	elem, hasElem := ElemOf(t)
	c := ladder(t, elem, hasElem)
	if !hasElem {
		return c
	}
	if hasMethod(t, "Read", nil, []reflect.Type{elem}) {
		c |= CapReadable
	}
	if hasMethod(t, "Write", []reflect.Type{elem}, nil) {
		c |= CapWritable
	}
	if IsBitwise(elem) {
		c |= CapBitwise
	}

	return c
}

// ladder walks the capability chain and stops at the first missing rung.
func ladder(t reflect.Type, elem reflect.Type, hasElem bool) Caps {
	self := []reflect.Type{t}
	ints := []reflect.Type{reflect.TypeFor[int]()}
	bools := []reflect.Type{reflect.TypeFor[bool]()}

	if !t.Comparable() {
		return 0
	}
	c := CapRegular
	if !hasMethod(t, "Next", nil, self) {
		return c
	}
	c |= CapIterator
	if !hasMethod(t, "Multipass", nil, nil) {
		return c
	}
	c |= CapForward
	if !hasMethod(t, "Prev", nil, self) {
		return c
	}
	c |= CapBidirectional
	if !hasMethod(t, "Less", self, bools) ||
		!hasMethod(t, "Add", ints, self) ||
		!hasMethod(t, "Sub", self, ints) {
		return c
	}
	c |= CapRandomAccess
	if !hasElem || !hasMethod(t, "Addr", nil, []reflect.Type{reflect.PointerTo(elem)}) {
		return c
	}

	return c | CapContiguous
}

// signature returns the parameter and result types of method name on t,
// without the receiver.
func signature(t reflect.Type, name string) (in, out []reflect.Type, ok bool) {
	m, found := t.MethodByName(name)
	if !found || m.Type.IsVariadic() {
		return nil, nil, false
	}
	ft := m.Type
	skip := 1 // receiver
	if t.Kind() == reflect.Interface {
		skip = 0
	}
	for i := skip; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}

	return in, out, true
}

// hasMethod reports whether t has method name with exactly the given
// parameter and result types.
func hasMethod(t reflect.Type, name string, in, out []reflect.Type) bool {
	gotIn, gotOut, ok := signature(t, name)
	if !ok || len(gotIn) != len(in) || len(gotOut) != len(out) {
		return false
	}
	for i := range in {
		if gotIn[i] != in[i] {
			return false
		}
	}
	for i := range out {
		if gotOut[i] != out[i] {
			return false
		}
	}

	return true
}
