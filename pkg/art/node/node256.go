package node

import (
	"github.com/flier/radixart/internal/debug"
	"github.com/flier/radixart/pkg/arena"
)

// Node256 is the largest inner-node class, holding 49 to 256 children
// behind a direct 256-entry array indexed by key byte. There is no larger
// class to grow into; Grow on a Node256 is a programmer error.
type Node256[T any] struct {
	Base

	Children [256]Ref[T]
}

var _ Node[any] = (*Node256[any])(nil)

func (n *Node256[T]) Type() Type { return TypeNode256 }

// Full reports whether n already holds all 256 children.
func (n *Node256[T]) Full() bool { return n.NumChildren == 256 }

// Ref returns a tagged reference to n.
func (n *Node256[T]) Ref() Ref[T] { return NewRef[T](TypeNode256, n) }

func (n *Node256[T]) Minimum() *Leaf[T] {
	for i := 0; i < 256; i++ {
		if !n.Children[i].Empty() {
			return n.Children[i].AsNode().Minimum()
		}
	}

	return nil
}

func (n *Node256[T]) Maximum() *Leaf[T] {
	for i := 255; i >= 0; i-- {
		if !n.Children[i].Empty() {
			return n.Children[i].AsNode().Maximum()
		}
	}

	return nil
}

// FindChild indexes Children directly by b.
func (n *Node256[T]) FindChild(b byte) *Ref[T] {
	if n.Children[b].Empty() {
		return nil
	}

	return &n.Children[b]
}

// AddChild writes child directly into Children[b], overwriting any
// existing child for b.
func (n *Node256[T]) AddChild(b byte, child AsRef[T]) {
	if n.Children[b].Empty() {
		debug.Assert(!n.Full(), "node256: AddChild called on a full node")

		n.NumChildren++
	}

	n.Children[b] = child.Ref()
}

// RemoveChild clears the association for key byte b.
func (n *Node256[T]) RemoveChild(b byte) {
	if n.Children[b].Empty() {
		return
	}

	n.Children[b] = 0
	n.NumChildren--
}

// Grow is a programmer error: Node256 is the largest class.
func (n *Node256[T]) Grow(arena.Allocator) Node[T] {
	panic("node256: cannot grow past Node256")
}

// Shrink converts n to a Node48 once its population has dropped below the
// class minimum of 49, i.e. once NumChildren has fallen to 48.
func (n *Node256[T]) Shrink(a arena.AllocatorExt) Node[T] {
	if n.NumChildren > 48 {
		return n
	}

	newNode := arena.New(a, Node48[T]{Base: n.Base})
	for i := range newNode.Keys {
		newNode.Keys[i] = Index48Empty
	}

	var slot byte
	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			idx, err := NewIndex48(int(slot))
			debug.Assert(err == nil, "node256: shrink produced an out-of-range index: %v", err)

			newNode.Keys[b] = idx
			newNode.Children[slot] = n.Children[b]
			slot++
		}
	}

	arena.Free[Node256[T]](a, n)

	return newNode
}

// Release returns n's memory to a.
func (n *Node256[T]) Release(a arena.AllocatorExt) {
	arena.Free[Node256[T]](a, n)
}
