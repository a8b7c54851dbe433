// SPDX-License-Identifier: MIT

package concept

// Regular positions can be copied, assigned, zero-initialized and compared
// with ==, which must be an equivalence relation.
type Regular interface {
	comparable
}

// Iterator positions advance in O(1).
type Iterator[P any] interface {
	Regular
	Next() P
}

// Forward positions honor the multipass guarantee: advancing one copy never
// disturbs another. Multipass is a marker; it is never called.
type Forward[P any] interface {
	Iterator[P]
	Multipass()
}

// Bidirectional positions also retreat in O(1), and Next().Prev() == p.
type Bidirectional[P any] interface {
	Forward[P]
	Prev() P
}

// RandomAccess positions support a total order, O(1) signed offset and
// O(1) difference.
//
// Laws:
//
//	p.Add(0) == p
//	p.Add(n) == n × Next, for n > 0
//	p.Add(n) == |n| × Prev, for n < 0
//	j.Add(i.Sub(j)) == i
type RandomAccess[P any] interface {
	Bidirectional[P]
	Less(j P) bool
	Add(n int) P
	Sub(j P) int
}

// Contiguous positions map to addresses of one unbroken block of T:
// p.Next().Addr() is the element right after p.Addr().
type Contiguous[P, T any] interface {
	RandomAccess[P]
	Addr() *T
}

// Readable positions yield the element they denote.
type Readable[T any] interface {
	Read() T
}

// Writable positions replace the element they denote.
type Writable[T any] interface {
	Write(v T)
}

// Input is a readable iterator.
type Input[P, T any] interface {
	Iterator[P]
	Readable[T]
}

// Output is a writable iterator.
type Output[P, T any] interface {
	Iterator[P]
	Writable[T]
}

// ForwardInput is a readable forward position.
type ForwardInput[P, T any] interface {
	Forward[P]
	Readable[T]
}

// BidirectionalMutable is a readable and writable bidirectional position.
type BidirectionalMutable[P, T any] interface {
	Bidirectional[P]
	Readable[T]
	Writable[T]
}

// RandomAccessInput is a readable random-access position.
type RandomAccessInput[P, T any] interface {
	RandomAccess[P]
	Readable[T]
}

// ContiguousInput is a readable contiguous position.
type ContiguousInput[P, T any] interface {
	Contiguous[P, T]
	Readable[T]
}

// ContiguousOutput is a writable contiguous position.
type ContiguousOutput[P, T any] interface {
	Contiguous[P, T]
	Writable[T]
}

// Addressable is the method set the block transfer needs. Unlike the
// constraints above it carries no comparable term, so it can be the target
// of a type assertion.
type Addressable[P, T any] interface {
	Add(n int) P
	Sub(j P) int
	Addr() *T
}

// Plain is the type set of scalar element types whose values hold no
// pointers and may therefore be duplicated by a raw memory move. Composite
// pointer-free types qualify at run time through Bitwise, but cannot be
// named in a type set.
type Plain interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}
