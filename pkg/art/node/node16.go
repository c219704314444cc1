package node

import (
	"github.com/flier/radixart/internal/debug"
	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/simd"
)

// Node16 holds 5 to 16 children in two parallel arrays, same shape as
// Node4 but wider: Keys[0..NumChildren] sorted ascending with matching
// Children entries.
type Node16[T any] struct {
	Base

	Keys     [16]byte
	Children [16]Ref[T]
}

var _ Node[any] = (*Node16[any])(nil)

func (n *Node16[T]) Type() Type { return TypeNode16 }

// Full reports whether n already holds 16 children.
func (n *Node16[T]) Full() bool { return n.NumChildren == 16 }

// Ref returns a tagged reference to n.
func (n *Node16[T]) Ref() Ref[T] { return NewRef[T](TypeNode16, n) }

func (n *Node16[T]) Minimum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

func (n *Node16[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

// FindChild scans the sorted Keys array for b.
func (n *Node16[T]) FindChild(b byte) *Ref[T] {
	if i := simd.FindKeyIndex(&n.Keys, n.NumChildren, b); i >= 0 {
		return &n.Children[i]
	}

	return nil
}

// AddChild inserts child at the position that keeps Keys ascending, or
// overwrites an existing entry for b.
func (n *Node16[T]) AddChild(b byte, child AsRef[T]) {
	if i := simd.FindKeyIndex(&n.Keys, n.NumChildren, b); i >= 0 {
		n.Children[i] = child.Ref()
		return
	}

	debug.Assert(!n.Full(), "node16: AddChild called on a full node")

	i := simd.FindInsertPosition(&n.Keys, n.NumChildren, b)

	copy(n.Keys[i+1:], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// RemoveChild deletes the association for key byte b, shifting the tail
// down to keep Keys contiguous and sorted.
func (n *Node16[T]) RemoveChild(b byte) {
	i := simd.FindKeyIndex(&n.Keys, n.NumChildren, b)
	if i < 0 {
		return
	}

	copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
	copy(n.Children[i:], n.Children[i+1:n.NumChildren])
	n.NumChildren--
}

// Grow copies every (byte, child) pair into a fresh Node48, per the bit-
// exact N16→N48 mapping: for each (i, k) in keys[0..n], child_index[k] = i.
// n itself is released back to a, same as Shrink.
func (n *Node16[T]) Grow(a arena.Allocator) Node[T] {
	newNode := arena.New(a, Node48[T]{Base: n.Base})
	for i := range newNode.Keys {
		newNode.Keys[i] = Index48Empty
	}

	copy(newNode.Children[:], n.Children[:n.NumChildren])

	for i := 0; i < n.NumChildren; i++ {
		idx, err := NewIndex48(i)
		debug.Assert(err == nil, "node16: grow produced an out-of-range index: %v", err)

		newNode.Keys[n.Keys[i]] = idx
	}

	arena.Free[Node16[T]](a, n)

	return newNode
}

// Shrink converts n to a Node4 once its population has dropped below the
// class minimum of 5, i.e. once NumChildren has fallen to 4.
func (n *Node16[T]) Shrink(a arena.AllocatorExt) Node[T] {
	if n.NumChildren > 4 {
		return n
	}

	newNode := arena.New(a, Node4[T]{Base: n.Base})

	copy(newNode.Keys[:], n.Keys[:n.NumChildren])
	copy(newNode.Children[:], n.Children[:n.NumChildren])

	arena.Free[Node16[T]](a, n)

	return newNode
}

// Release returns n's memory to a.
func (n *Node16[T]) Release(a arena.AllocatorExt) {
	arena.Free[Node16[T]](a, n)
}
