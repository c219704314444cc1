package node

import (
	"github.com/flier/radixart/internal/debug"
	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/simd"
)

// Node48 holds 17 to 48 children behind a 256-entry restricted index:
// Keys[b] gives the slot in Children holding the child for key byte b, or
// Index48Empty if none. This uses the 0-based/48=EMPTY scheme of
// RestrictedNodeIndex from the Rust original, not the teacher's own
// Node48's 1-based/0=EMPTY scheme (see DESIGN.md).
type Node48[T any] struct {
	Base

	Keys     [256]Index48
	Children [48]Ref[T]
}

var _ Node[any] = (*Node48[any])(nil)

func (n *Node48[T]) Type() Type { return TypeNode48 }

// Full reports whether n already holds 48 children.
func (n *Node48[T]) Full() bool { return n.NumChildren == 48 }

// Ref returns a tagged reference to n.
func (n *Node48[T]) Ref() Ref[T] { return NewRef[T](TypeNode48, n) }

func (n *Node48[T]) Minimum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}

	if i := simd.FindFirstOccupied(&n.Keys, Index48Empty); i >= 0 {
		return n.Children[n.Keys[i]].AsNode().Minimum()
	}

	return nil
}

func (n *Node48[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}

	if i := simd.FindLastOccupied(&n.Keys, Index48Empty); i >= 0 {
		return n.Children[n.Keys[i]].AsNode().Maximum()
	}

	return nil
}

// FindChild indexes Keys once to find the slot, then Children once.
func (n *Node48[T]) FindChild(b byte) *Ref[T] {
	if idx := n.Keys[b]; !idx.Empty() {
		return &n.Children[idx]
	}

	return nil
}

// AddChild finds the first free slot in Children and records it in Keys,
// or overwrites the existing slot if b already has a child.
func (n *Node48[T]) AddChild(b byte, child AsRef[T]) {
	if idx := n.Keys[b]; !idx.Empty() {
		n.Children[idx] = child.Ref()
		return
	}

	debug.Assert(!n.Full(), "node48: AddChild called on a full node")

	var slot byte
	for ; slot < 48; slot++ {
		if n.Children[slot].Empty() {
			break
		}
	}

	idx, err := NewIndex48(int(slot))
	if err != nil {
		panic("node48: AddChild called on a full node")
	}

	n.Keys[b] = idx
	n.Children[idx] = child.Ref()
	n.NumChildren++
}

// RemoveChild clears the association for key byte b.
func (n *Node48[T]) RemoveChild(b byte) {
	idx := n.Keys[b]
	if idx.Empty() {
		return
	}

	n.Keys[b] = Index48Empty
	n.Children[idx] = 0
	n.NumChildren--
}

// Grow copies every (byte, child) pair into a fresh Node256, per the bit-
// exact N48→N256 mapping. n itself is released back to a, same as Shrink.
func (n *Node48[T]) Grow(a arena.Allocator) Node[T] {
	newNode := arena.New(a, Node256[T]{Base: n.Base})

	for b := 0; b < 256; b++ {
		if idx := n.Keys[b]; !idx.Empty() {
			newNode.Children[b] = n.Children[idx]
		}
	}

	arena.Free[Node48[T]](a, n)

	return newNode
}

// Shrink converts n to a Node16 once its population has dropped below the
// class minimum of 17, i.e. once NumChildren has fallen to 16.
func (n *Node48[T]) Shrink(a arena.AllocatorExt) Node[T] {
	if n.NumChildren > 16 {
		return n
	}

	newNode := arena.New(a, Node16[T]{Base: n.Base})

	var child byte
	for b := 0; b < 256; b++ {
		if idx := n.Keys[b]; !idx.Empty() {
			newNode.Keys[child] = byte(b)
			newNode.Children[child] = n.Children[idx]
			child++
		}
	}

	arena.Free[Node48[T]](a, n)

	return newNode
}

// Release returns n's memory to a.
func (n *Node48[T]) Release(a arena.AllocatorExt) {
	arena.Free[Node48[T]](a, n)
}
