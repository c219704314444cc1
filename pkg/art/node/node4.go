package node

import (
	"github.com/flier/radixart/internal/debug"
	"github.com/flier/radixart/pkg/arena"
)

// Node4 is the smallest inner-node class, holding 2 to 4 children in two
// parallel arrays: Keys[0..NumChildren] sorted ascending, and the matching
// Children entries.
type Node4[T any] struct {
	Base

	Keys     [4]byte
	Children [4]Ref[T]
}

var _ Node[any] = (*Node4[any])(nil)

// NewNode4 allocates an empty Node4 with the given prefix.
func NewNode4[T any](a arena.Allocator, prefix Prefix) *Node4[T] {
	return arena.New(a, Node4[T]{Base: Base{partial: prefix}})
}

func (n *Node4[T]) Type() Type { return TypeNode4 }

// Full reports whether n already holds 4 children.
func (n *Node4[T]) Full() bool { return n.NumChildren == 4 }

// Ref returns a tagged reference to n.
func (n *Node4[T]) Ref() Ref[T] { return NewRef[T](TypeNode4, n) }

// Minimum descends into the first (smallest-keyed) child.
func (n *Node4[T]) Minimum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

// Maximum descends into the last (largest-keyed) child.
func (n *Node4[T]) Maximum() *Leaf[T] {
	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

// FindChild linearly scans the (small, sorted) Keys array.
func (n *Node4[T]) FindChild(b byte) *Ref[T] {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			return &n.Children[i]
		}
	}

	return nil
}

// AddChild inserts child at the position that keeps Keys ascending,
// shifting the tail to make room, or overwrites an existing entry for b.
func (n *Node4[T]) AddChild(b byte, child AsRef[T]) {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			n.Children[i] = child.Ref()
			return
		}
	}

	debug.Assert(!n.Full(), "node4: AddChild called on a full node")

	var i int
	for ; i < n.NumChildren; i++ {
		if b < n.Keys[i] {
			break
		}
	}

	copy(n.Keys[i+1:], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// RemoveChild deletes the association for key byte b, shifting the tail
// down to keep Keys contiguous and sorted.
func (n *Node4[T]) RemoveChild(b byte) {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] != b {
			continue
		}

		copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
		copy(n.Children[i:], n.Children[i+1:n.NumChildren])
		n.NumChildren--

		return
	}
}

// Grow copies every (byte, child) pair into a fresh Node16 and releases n,
// mirroring Shrink's own free-the-old-node convention so a grow never
// leaks the node class it outgrew.
func (n *Node4[T]) Grow(a arena.Allocator) Node[T] {
	newNode := arena.New(a, Node16[T]{Base: n.Base})

	copy(newNode.Keys[:], n.Keys[:n.NumChildren])
	copy(newNode.Children[:], n.Children[:n.NumChildren])

	arena.Free[Node4[T]](a, n)

	return newNode
}

// Shrink implements the collapse policy (I6): Node4 is the smallest class,
// so it never shrinks into anything smaller; instead, once it is down to a
// single child, it is replaced by that child directly, with n's prefix and
// connecting key byte prepended onto the child's own prefix (Concat),
// never discarding the child's existing prefix bytes.
func (n *Node4[T]) Shrink(a arena.AllocatorExt) Node[T] {
	if n.NumChildren > 1 {
		return n
	}

	child := n.Children[0].AsNode()
	child.SetPrefix(Concat(n.Prefix(), n.Keys[0], child.Prefix()))

	arena.Free[Node4[T]](a, n)

	return child
}

// Release returns n's memory to a.
func (n *Node4[T]) Release(a arena.AllocatorExt) {
	arena.Free[Node4[T]](a, n)
}
