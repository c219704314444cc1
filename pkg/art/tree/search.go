package tree

import "github.com/flier/radixart/pkg/art/node"

// Search descends from root looking for key, returning the leaf that
// holds it or nil if key is absent.
//
// The descent consumes key one compressed-prefix-and-dispatch-byte step
// at a time: at each inner node, truePrefixLen gives the length of the
// node's true compressed prefix and matchLen compares the key against it,
// checking the (possibly truncated) stored bytes first and continuing
// through the node's Minimum/Maximum leaves when the true shared prefix
// runs longer than what the node physically stores.
// Any divergence — within the stored bytes or found via the extension —
// is conclusive: no other leaf under this node could match key past that
// point, so the search reports a miss immediately rather than keep
// walking.
func Search[T any](root node.Ref[T], key []byte) *node.Leaf[T] {
	cur := root
	depth := 0

	for !cur.Empty() {
		if leaf := cur.AsLeaf(); leaf != nil {
			if leaf.Matches(key) {
				return leaf
			}

			return nil
		}

		inner := cur.AsNode()

		if trueLen := truePrefixLen(inner, depth); trueLen > 0 {
			m := matchLen(inner, key, depth)
			if m < trueLen {
				return nil
			}

			depth += trueLen
		}

		// A key that ends here was attached under byte 0 by insert (see
		// splitLeaf); the leaf's full-key comparison rejects any other key.
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

		cur = *child
		depth++
	}

	return nil
}
