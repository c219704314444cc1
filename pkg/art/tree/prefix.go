// Package tree implements the four mutating primitives of an Adaptive
// Radix Tree — search, insert, delete, and ordered traversal — as free
// functions operating directly on a node.Ref[T], the tree's root. There is
// no wrapping map type here: embedders own the root reference and the
// arena it was built from.
package tree

import "github.com/flier/radixart/pkg/art/node"

// matchLen returns the number of leading bytes of key[depth:] that agree
// with inner's compressed prefix.
//
// inner's stored node.Prefix holds at most node.PrefixLen bytes of what
// may be a longer true compressed path (spec §4.2's "design rationale":
// the prefix buffer is a best-effort fast path, not the source of
// truth). matchLen first compares those stored bytes directly; if every
// one of them agrees, the true prefix may still extend further than
// what's stored, so the comparison continues past them.
//
// That extension cannot simply walk one arbitrary descendant leaf's key
// until it runs out or mismatches the query: if the query happens to be
// exactly that leaf's key, the comparison would run straight through the
// node's real dispatch-byte boundary and into the leaf's private suffix,
// overstating how much of the node's actual shared prefix the query
// matches. The node's true boundary — the offset at which its children
// actually start to diverge — is instead found once, structurally, as
// the longest common prefix between its Minimum and Maximum leaves: by
// (I5) every descendant agrees with both of them up to that point, and
// by definition of Minimum/Maximum nothing past it is shared by every
// child. The query is then compared only within that bound.
func matchLen[T any](inner node.Node[T], key []byte, depth int) int {
	prefix := inner.Prefix()

	bound := prefix.Len()
	if rem := len(key) - depth; rem < bound {
		bound = rem
	}

	i := 0
	for i < bound && prefix.At(i) == key[depth+i] {
		i++
	}

	if i < prefix.Len() {
		return i
	}

	min := inner.Minimum()
	max := inner.Maximum()
	if min == nil || max == nil {
		return i
	}

	pos := depth + i

	limit := len(min.Key)
	if len(max.Key) < limit {
		limit = len(max.Key)
	}
	if len(key) < limit {
		limit = len(key)
	}

	for pos < limit && min.Key[pos] == max.Key[pos] && min.Key[pos] == key[pos] {
		pos++
	}

	return pos - depth
}

// truePrefixLen returns inner's actual compressed-prefix length, counted
// from depth, independent of any query key's length.
//
// When the stored prefix is shorter than node.PrefixLen it cannot have
// been truncated at construction (NewPrefix only truncates at exactly
// PrefixLen bytes), so the stored length already is the true length. Only
// a stored prefix at the PrefixLen cap might be hiding additional shared
// bytes beyond it; in that case the true length is recovered the same way
// matchLen recovers it past the stored bytes: as the longest common
// prefix of inner's Minimum and Maximum leaves, which by (I5) bounds
// exactly how far every descendant agrees.
func truePrefixLen[T any](inner node.Node[T], depth int) int {
	prefix := inner.Prefix()
	if prefix.Len() < node.PrefixLen {
		return prefix.Len()
	}

	min := inner.Minimum()
	max := inner.Maximum()
	if min == nil || max == nil {
		return prefix.Len()
	}

	limit := len(min.Key)
	if len(max.Key) < limit {
		limit = len(max.Key)
	}

	i := depth
	for i < limit && min.Key[i] == max.Key[i] {
		i++
	}

	return i - depth
}

// longestCommonPrefix returns the offset, starting from depth, at which a
// and b first differ (or the length of the shorter of the two, if one is
// a prefix of the other).
func longestCommonPrefix(a, b []byte, depth int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := depth
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}
