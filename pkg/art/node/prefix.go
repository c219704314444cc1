package node

// PrefixLen is the number of bytes of a node's compressed key prefix kept
// inline on the node itself. A true compressed path may be longer; bytes
// beyond PrefixLen are simply not stored, since the full key is always
// recoverable by descending to any leaf in the subtree (spec §4.2).
const PrefixLen = 8

// Prefix is the inline, possibly-truncated compressed prefix stored on
// every inner node. It is a value type (no allocation) deliberately, since
// PrefixLen bytes plus an int length take 16 bytes — smaller than the
// 24-byte pointer-length-capacity slice header the teacher's slice.Slice[byte] used for
// the same field, and with no arena interaction needed at all (see
// DESIGN.md).
type Prefix struct {
	bytes [PrefixLen]byte
	len   int
}

// NewPrefix builds a Prefix from b, truncating to PrefixLen bytes if b is
// longer. The untruncated length is not retained: anything beyond
// PrefixLen is, by construction, unrecoverable from the prefix alone and
// must be re-derived by descending to a leaf.
func NewPrefix(b []byte) Prefix {
	var p Prefix

	n := len(b)
	if n > PrefixLen {
		n = PrefixLen
	}

	copy(p.bytes[:], b[:n])
	p.len = n

	return p
}

// Len returns the number of stored prefix bytes (at most PrefixLen).
func (p Prefix) Len() int { return p.len }

// Bytes returns the stored prefix bytes. The slice is backed by the copy
// of the Prefix the method received, so it does not alias the caller's
// Prefix.
func (p Prefix) Bytes() []byte { return p.bytes[:p.len] }

// At returns the byte at index i, which must be < Len().
func (p Prefix) At(i int) byte { return p.bytes[i] }

// LTrim removes the first k bytes of the stored prefix, shifting the
// remainder down. k must not exceed Len().
func (p Prefix) LTrim(k int) Prefix {
	if k >= p.len {
		return Prefix{}
	}

	var out Prefix

	out.len = p.len - k
	copy(out.bytes[:out.len], p.bytes[k:p.len])

	return out
}

// MatchLen returns the count of leading bytes shared between the stored
// prefix and candidate.
func (p Prefix) MatchLen(candidate []byte) int {
	n := p.len
	if len(candidate) < n {
		n = len(candidate)
	}

	i := 0
	for i < n && p.bytes[i] == candidate[i] {
		i++
	}

	return i
}

// Concat prepends b (the connecting byte, if any) and then the receiver's
// bytes onto the front of tail, truncating the combined prefix to
// PrefixLen. This implements the collapse policy's prefix-merge step: the
// removed node's prefix and connecting byte are prepended to the surviving
// child's prefix.
func Concat(removed Prefix, connecting byte, tail Prefix) Prefix {
	var buf [PrefixLen*2 + 1]byte

	n := copy(buf[:], removed.Bytes())
	if n < len(buf) {
		buf[n] = connecting
		n++
	}
	if n < len(buf) {
		n += copy(buf[n:], tail.Bytes())
	}

	return NewPrefix(buf[:n])
}
