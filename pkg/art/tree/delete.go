package tree

import (
	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
)

// Delete removes key from the tree rooted at *ref, returning the removed
// leaf (still holding its key and value) or nil if key was absent.
//
// Unlike Search, Delete must also restore the node-class and no-single-
// child invariants once a child is gone: a removal that takes an inner
// node below its class minimum shrinks it to the next smaller class (I2),
// and removing Node4's second child collapses it into its sole remaining
// child, merging prefixes (I6).
func Delete[T any](a arena.AllocatorExt, ref *node.Ref[T], key []byte) *node.Leaf[T] {
	return deleteAt(a, ref, key, 0)
}

func deleteAt[T any](a arena.AllocatorExt, ref *node.Ref[T], key []byte, depth int) *node.Leaf[T] {
	if ref.Empty() {
		return nil
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		if leaf.Matches(key) {
			ref.Replace(nil)
			leaf.Release(a)

			return leaf
		}

		return nil
	}

	inner := ref.AsNode()

	if trueLen := truePrefixLen(inner, depth); trueLen > 0 {
		m := matchLen(inner, key, depth)
		if m < trueLen {
			return nil
		}

		depth += trueLen
	}

	// A key that ends here was attached under byte 0 by insert (see
	// splitLeaf).
	var b byte
	if depth < len(key) {
		b = key[depth]
	} else if depth > len(key) {
		return nil
	}

	child := inner.FindChild(b)
	if child == nil {
		return nil
	}

	if leaf := child.AsLeaf(); leaf != nil {
		if !leaf.Matches(key) {
			return nil
		}

		removeChild(a, ref, inner, b)
		leaf.Release(a)

		return leaf
	}

	return deleteAt(a, child, key, depth+1)
}

// removeChild clears b's association on inner and shrinks it into the
// next smaller node class once its population has fallen to that class's
// threshold, splicing the (possibly different) resulting node back into
// ref.
func removeChild[T any](a arena.AllocatorExt, ref *node.Ref[T], inner node.Node[T], b byte) {
	inner.RemoveChild(b)

	if shrunk := inner.Shrink(a); shrunk != inner {
		ref.Replace(shrunk)
	}
}
