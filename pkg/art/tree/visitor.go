package tree

import "github.com/flier/radixart/pkg/art/node"

// Visitor is the traversal callback interface spec.md §6 reserves for
// external tooling (printers, dumpers, serializers) that this repository
// does not itself provide (those are explicit non-goals). VisitInner is
// called on every inner node before its children, in node-class order
// (which, because every node class keeps its children sorted by key
// byte, is also key order); VisitLeaf is called on every leaf reached.
// Either method returning true stops the traversal immediately, without
// visiting anything else.
type Visitor[T any] interface {
	VisitInner(n node.Node[T], depth int) (stop bool)
	VisitLeaf(leaf *node.Leaf[T], depth int) (stop bool)
}

// Traverse walks the tree rooted at root in ascending key order, calling
// v's methods along the way. It returns true if the traversal was
// stopped early by v.
func Traverse[T any](root node.Ref[T], v Visitor[T]) bool {
	return traverse(root, v, 0)
}

func traverse[T any](ref node.Ref[T], v Visitor[T], depth int) bool {
	if ref.Empty() {
		return false
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		return v.VisitLeaf(leaf, depth)
	}

	inner := ref.AsNode()

	if v.VisitInner(inner, depth) {
		return true
	}

	return visitChildren(inner, v, depth+1)
}

func visitChildren[T any](inner node.Node[T], v Visitor[T], depth int) bool {
	switch n := inner.(type) {
	case *node.Node4[T]:
		for i := 0; i < n.NumChildren; i++ {
			if traverse(n.Children[i], v, depth) {
				return true
			}
		}

	case *node.Node16[T]:
		for i := 0; i < n.NumChildren; i++ {
			if traverse(n.Children[i], v, depth) {
				return true
			}
		}

	case *node.Node48[T]:
		for b := 0; b < 256; b++ {
			idx := n.Keys[b]
			if idx.Empty() {
				continue
			}

			if traverse(n.Children[idx], v, depth) {
				return true
			}
		}

	case *node.Node256[T]:
		for b := 0; b < 256; b++ {
			if traverse(n.Children[b], v, depth) {
				return true
			}
		}
	}

	return false
}

// CollectFunc adapts a plain (key, value) callback into a Visitor that
// ignores inner nodes, for the common case of wanting only the ordered
// key/value sequence.
type CollectFunc[T any] func(key []byte, value *T) (stop bool)

// VisitInner always continues: CollectFunc only cares about leaves.
func (CollectFunc[T]) VisitInner(node.Node[T], int) bool { return false }

// VisitLeaf forwards to the wrapped function.
func (f CollectFunc[T]) VisitLeaf(leaf *node.Leaf[T], _ int) bool {
	return f(leaf.Key, &leaf.Value)
}

var _ Visitor[any] = CollectFunc[any](nil)
