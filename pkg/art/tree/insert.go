package tree

import (
	"github.com/flier/radixart/internal/debug"
	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
)

// Insert associates value with key under the tree rooted at *ref,
// allocating through a. If key was already present, its previous value is
// returned with replaced set to true and the leaf's value is overwritten;
// otherwise a new leaf is spliced in and replaced is false.
//
// Insert is the one operation that must keep every node-class population
// bound and prefix invariant intact while the tree's shape changes: a
// full node grows into the next class before a child is added to it (I2),
// and a diverging prefix is split into a fresh N4 exactly at the offset
// where the mismatch was found (I5).
func Insert[T any](a arena.Allocator, ref *node.Ref[T], key []byte, value T) (previous T, replaced bool) {
	return insert(a, ref, key, value, 0)
}

func insert[T any](a arena.Allocator, ref *node.Ref[T], key []byte, value T, depth int) (previous T, replaced bool) {
	if ref.Empty() {
		*ref = node.NewLeaf(a, key, value).Ref()

		return previous, false
	}

	if leaf := ref.AsLeaf(); leaf != nil {
		if leaf.Matches(key) {
			previous, replaced = leaf.Value, true
			leaf.Value = value

			return previous, replaced
		}

		splitLeaf(a, ref, leaf, key, value, depth)

		return previous, false
	}

	inner := ref.AsNode()

	if trueLen := truePrefixLen(inner, depth); trueLen > 0 {
		d := matchLen(inner, key, depth)

		if d < trueLen {
			splitPrefix(a, ref, inner, key, value, depth, d, trueLen)

			return previous, false
		}

		depth += trueLen
	}

	var b byte
	if depth < len(key) {
		b = key[depth]
	}

	if child := inner.FindChild(b); child != nil {
		return insert(a, child, key, value, depth+1)
	}

	if inner.Full() {
		grown := inner.Grow(a)
		*ref = grown.Ref()
		inner = grown
	}

	inner.AddChild(b, node.NewLeaf(a, key, value))

	return previous, false
}

// splitLeaf handles descent reaching an existing leaf whose full key
// differs from key: the two keys' longest common prefix, computed over
// their entire (unbounded) length rather than the node.PrefixLen-bounded
// stored prefix, becomes the new N4's compressed prefix, and the two
// leaves are attached at their first differing byte.
//
// When one key is a strict prefix of the other, the shorter key has no
// byte left to dispatch on at the split point; it is attached under key
// byte 0, matching spec.md's N4 layout (which has no dedicated
// out-of-band "key ends here" slot). This is a documented limitation: a
// key ending exactly where another key also happens to hold a literal
// 0x00 byte collides (see DESIGN.md).
func splitLeaf[T any](a arena.Allocator, ref *node.Ref[T], leaf *node.Leaf[T], key []byte, value T, depth int) {
	lcp := longestCommonPrefix(leaf.Key, key, depth)

	splitNode := node.NewNode4[T](a, node.NewPrefix(key[depth:lcp]))

	var existingByte, newByte byte
	if lcp < len(leaf.Key) {
		existingByte = leaf.Key[lcp]
	}
	if lcp < len(key) {
		newByte = key[lcp]
	}

	splitNode.AddChild(existingByte, leaf)
	splitNode.AddChild(newByte, node.NewLeaf(a, key, value))

	*ref = splitNode.Ref()
}

// splitPrefix handles a divergence discovered at offset d inside inner's
// true compressed prefix (d < trueLen, inner's actual prefix length from
// truePrefixLen — which may exceed what node.Prefix physically stores, so
// d is necessarily a true divergence and not merely the end of the stored
// bytes; it also covers key running out before trueLen, which is the same
// situation: nothing past d can match). A fresh N4 is spliced in above
// inner, holding the shared prefix up to d; inner, with the divergence
// byte and everything before it stripped off its own prefix, and a new
// leaf for key become its two children.
//
// Because d may be larger than node.PrefixLen, none of this can be read
// out of inner.Prefix() directly (it only ever holds the first
// node.PrefixLen bytes): every byte involved is instead read off inner's
// Minimum leaf, which by construction of trueLen agrees with every one of
// inner's descendants for the first trueLen bytes past depth.
func splitPrefix[T any](a arena.Allocator, ref *node.Ref[T], inner node.Node[T], key []byte, value T, depth, d, trueLen int) {
	min := inner.Minimum()

	splitNode := node.NewNode4[T](a, node.NewPrefix(key[depth:depth+d]))

	oldByte := min.Key[depth+d]
	inner.SetPrefix(node.NewPrefix(min.Key[depth+d+1 : depth+trueLen]))
	splitNode.AddChild(oldByte, inner)

	var newByte byte
	if depth+d < len(key) {
		newByte = key[depth+d]
	}

	splitNode.AddChild(newByte, node.NewLeaf(a, key, value))

	*ref = splitNode.Ref()

	debug.Log(nil, "tree.splitPrefix", "depth=%d d=%d old=%#x new=%#x", depth, d, oldByte, newByte)
}
