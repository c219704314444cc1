package tree

import "github.com/flier/radixart/pkg/art/node"

// Range calls cb, in ascending key order, for every key k in the tree
// rooted at root with lo <= k <= hi (byte-lexicographic comparison). It
// stops early if cb returns true.
//
// spec.md §4.5.4 sketches a range query as a seek to a least-upper-bound
// leaf followed by an in-order walk; this is the concrete realization
// (see SPEC_FULL.md Part D.5). Rather than implement a standalone seek
// cursor, Range reuses Traverse's ordered-descent shape and prunes
// subtrees whose entire key range falls outside [lo, hi]: every leaf
// reachable from a node is known, by (I5), to share that node's
// compressed prefix, so comparing lo/hi against the node's Minimum and
// Maximum keys is enough to decide whether the whole subtree can be
// skipped or must be walked.
func Range[T any](root node.Ref[T], lo, hi []byte, cb func(key []byte, value *T) (stop bool)) bool {
	return rangeWalk(root, lo, hi, cb)
}

func rangeWalk[T any](ref node.Ref[T], lo, hi []byte, cb func(key []byte, value *T) bool) bool {
	if ref.Empty() {
		return false
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		if inRange(leaf.Key, lo, hi) {
			return cb(leaf.Key, &leaf.Value)
		}

		return false
	}

	inner := ref.AsNode()

	if min := inner.Minimum(); min == nil || compareBytes(min.Key, hi) > 0 {
		return false
	}
	if max := inner.Maximum(); max == nil || compareBytes(max.Key, lo) < 0 {
		return false
	}

	switch n := inner.(type) {
	case *node.Node4[T]:
		for i := 0; i < n.NumChildren; i++ {
			if rangeWalk(n.Children[i], lo, hi, cb) {
				return true
			}
		}

	case *node.Node16[T]:
		for i := 0; i < n.NumChildren; i++ {
			if rangeWalk(n.Children[i], lo, hi, cb) {
				return true
			}
		}

	case *node.Node48[T]:
		for b := 0; b < 256; b++ {
			idx := n.Keys[b]
			if idx.Empty() {
				continue
			}

			if rangeWalk(n.Children[idx], lo, hi, cb) {
				return true
			}
		}

	case *node.Node256[T]:
		for b := 0; b < 256; b++ {
			if rangeWalk(n.Children[b], lo, hi, cb) {
				return true
			}
		}
	}

	return false
}

func inRange(key, lo, hi []byte) bool {
	return compareBytes(key, lo) >= 0 && compareBytes(key, hi) <= 0
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
