// SPDX-License-Identifier: MIT

package position

// Node is one cell of a singly-linked chain.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// Link is a position on a chain of Node. It advances by following Next and
// cannot retreat: there is no Prev method, so Link never satisfies
// concept.Bidirectional.
type Link[T any] struct {
	n *Node[T]
}

// At returns the position of n. A nil n is a valid end position for chains
// terminated by a nil Next.
func At[T any](n *Node[T]) Link[T] { return Link[T]{n: n} }

// Next returns the position of the following node.
func (p Link[T]) Next() Link[T] { return Link[T]{n: p.n.Next} }

// Multipass marks Link as a forward position: advancing one Link never
// touches the chain or other Links.
func (Link[T]) Multipass() {}

// Read returns the value of the node at p.
func (p Link[T]) Read() T { return p.n.Value }

// Write replaces the value of the node at p.
func (p Link[T]) Write(v T) { p.n.Value = v }

// Node returns the node p refers to.
func (p Link[T]) Node() *Node[T] { return p.n }

// List is a singly-linked list terminated by a sentinel node. End() is the
// sentinel, so [Begin(), End()) covers every value.
type List[T any] struct {
	head     *Node[T]
	sentinel *Node[T]
	n        int
}

// NewList builds a list holding vals in order.
func NewList[T any](vals ...T) *List[T] {
	l := &List[T]{sentinel: &Node[T]{}}
	l.head = l.sentinel
	for i := len(vals) - 1; i >= 0; i-- {
		l.head = &Node[T]{Value: vals[i], Next: l.head}
	}
	l.n = len(vals)

	return l
}

// PushFront prepends v. Positions already taken stay valid.
func (l *List[T]) PushFront(v T) {
	l.head = &Node[T]{Value: v, Next: l.head}
	l.n++
}

// Begin returns the position of the first value (End() if empty).
func (l *List[T]) Begin() Link[T] { return Link[T]{n: l.head} }

// End returns the sentinel position.
func (l *List[T]) End() Link[T] { return Link[T]{n: l.sentinel} }

// Len returns the number of values.
func (l *List[T]) Len() int { return l.n }

// Values returns the values in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.n)
	for n := l.head; n != l.sentinel; n = n.Next {
		out = append(out, n.Value)
	}

	return out
}

var _ = requireForwardMutable[Link[int], int]
