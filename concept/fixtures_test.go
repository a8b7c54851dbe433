// SPDX-License-Identifier: MIT

package concept_test

// Position types with deliberately partial or broken method sets.

// seqIt is not comparable, so it is not even Regular.
type seqIt struct{ s []int }

func (p seqIt) Next() seqIt { return seqIt{s: p.s[1:]} }
func (p seqIt) Read() int   { return p.s[0] }

// stepper is a single-pass iterator: no Multipass marker.
type stepper struct{ i int }

func (p stepper) Next() stepper { return stepper{i: p.i + 1} }
func (p stepper) Read() int     { return p.i }

// jumper has offsets but cannot retreat, so the chain stops at Forward.
type jumper struct{ i int }

func (p jumper) Next() jumper       { return jumper{i: p.i + 1} }
func (jumper) Multipass()           {}
func (p jumper) Add(n int) jumper   { return jumper{i: p.i + n} }
func (p jumper) Sub(j jumper) int   { return p.i - j.i }
func (p jumper) Less(j jumper) bool { return p.i < j.i }
func (p jumper) Read() int          { return p.i }

// funcIt reads functions, which never count as an element type.
type funcIt struct{ i int }

func (p funcIt) Next() funcIt     { return funcIt{i: p.i + 1} }
func (funcIt) Multipass()         {}
func (p funcIt) Read() func() int { return func() int { return p.i } }

// sink is a write-only iterator over bytes.
type sink struct{ dst *[]byte }

func (p sink) Next() sink   { return p }
func (p sink) Write(b byte) { *p.dst = append(*p.dst, b) }

// cell is a node shape: Value plus Next of the same pointer type.
type cell struct {
	Value int16
	Next  *cell
}

// cellPos exposes three candidate element types; the node rule wins.
type cellPos struct{ c *cell }

func (p cellPos) Node() *cell    { return p.c }
func (p cellPos) Addr() *float64 { return nil }
func (p cellPos) Read() string   { return "" }

// badCell has a Next field of the wrong type, so it is not a node.
type badCell struct {
	Value int
	Next  *cell
}

// addrPos falls through the node rule to the address rule.
type addrPos struct{ c *badCell }

func (p addrPos) Node() *badCell { return p.c }
func (p addrPos) Addr() *float32 { return nil }
func (p addrPos) Read() int      { return 0 }

// ticket pretends to be forward but every Next consumes a shared counter.
type ticket struct {
	c  *int
	id int
}

func (p ticket) Next() ticket {
	*p.c++
	return ticket{c: p.c, id: *p.c}
}
func (ticket) Multipass() {}

// skew retreats by two.
type skew struct{ i int }

func (p skew) Next() skew { return skew{i: p.i + 1} }
func (p skew) Prev() skew { return skew{i: p.i - 2} }
func (skew) Multipass()   {}

// lossy ignores negative offsets.
type lossy struct{ i int }

func (p lossy) Next() lossy { return lossy{i: p.i + 1} }
func (p lossy) Prev() lossy { return lossy{i: p.i - 1} }
func (lossy) Multipass()    {}
func (p lossy) Add(n int) lossy {
	if n < 0 {
		return p
	}
	return lossy{i: p.i + n}
}
func (p lossy) Sub(j lossy) int   { return p.i - j.i }
func (p lossy) Less(j lossy) bool { return p.i < j.i }

// strided is random access over every other element of a block.
type strided struct {
	s *[]int64
	i int
}

func (p strided) Next() strided       { return strided{s: p.s, i: p.i + 1} }
func (p strided) Prev() strided       { return strided{s: p.s, i: p.i - 1} }
func (strided) Multipass()            {}
func (p strided) Add(n int) strided   { return strided{s: p.s, i: p.i + n} }
func (p strided) Sub(j strided) int   { return p.i - j.i }
func (p strided) Less(j strided) bool { return p.i < j.i }
func (p strided) Addr() *int64        { return &(*p.s)[2*p.i] }
