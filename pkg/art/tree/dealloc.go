package tree

import (
	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
)

// DeallocateTree releases every node reachable from root back to a,
// leaves first and their owning inner nodes after, and zeroes root so the
// caller is left holding an empty tree rather than a dangling reference.
//
// This is a post-order walk for the same reason a destructor visits
// children before itself: a node's Release only frees its own (and any
// auxiliary) memory, never its children's, so the children must already
// be gone by the time their parent is freed.
func DeallocateTree[T any](a arena.AllocatorExt, root *node.Ref[T]) {
	deallocate(a, *root)
	*root = 0
}

func deallocate[T any](a arena.AllocatorExt, ref node.Ref[T]) {
	if ref.Empty() {
		return
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		leaf.Release(a)

		return
	}

	inner := ref.AsNode()

	switch n := inner.(type) {
	case *node.Node4[T]:
		for i := 0; i < n.NumChildren; i++ {
			deallocate(a, n.Children[i])
		}

	case *node.Node16[T]:
		for i := 0; i < n.NumChildren; i++ {
			deallocate(a, n.Children[i])
		}

	case *node.Node48[T]:
		for b := 0; b < 256; b++ {
			idx := n.Keys[b]
			if idx.Empty() {
				continue
			}

			deallocate(a, n.Children[idx])
		}

	case *node.Node256[T]:
		for b := 0; b < 256; b++ {
			deallocate(a, n.Children[b])
		}
	}

	inner.Release(a)
}
