package node

import (
	"bytes"

	"github.com/flier/radixart/internal/debug"
	"github.com/flier/radixart/pkg/arena"
)

// Leaf is the terminal node of the tree: it stores the complete original
// key, not just the portion consumed by the path from the root, plus the
// value associated with it.
//
// Leaf's child-mutating methods all panic: a leaf never has children, so
// any call into one indicates the tree walked somewhere it should have
// stopped.
type Leaf[T any] struct {
	Key   []byte
	Value T
}

var _ Node[any] = (*Leaf[any])(nil)

// NewLeaf allocates a new leaf for key and value out of a.
//
// Key and Value are the only fields in this package that can themselves
// hold real Go pointers (Key's backing array is always one; Value may be,
// depending on T) underneath an allocation that may live in unscanned
// arena memory. When a implements arena.Retainer, both are handed to it
// so the garbage collector keeps tracing them regardless of where the
// copy stored in the leaf itself lives (see arena.Retainer).
func NewLeaf[T any](a arena.Allocator, key []byte, value T) *Leaf[T] {
	k := make([]byte, len(key))
	copy(k, key)

	leaf := arena.New(a, Leaf[T]{Key: k, Value: value})

	if r, ok := a.(arena.Retainer); ok {
		r.Retain(k)
		r.Retain(value)
	}

	return leaf
}

// Ref returns a tagged reference to l.
func (l *Leaf[T]) Ref() Ref[T] { return NewRef[T](TypeLeaf, l) }

// Type always reports TypeLeaf.
func (l *Leaf[T]) Type() Type { return TypeLeaf }

// Full always reports true: a leaf can never accept a child.
func (l *Leaf[T]) Full() bool { return true }

// Prefix returns the leaf's key truncated to PrefixLen bytes. This is the
// auxiliary prefix buffer spec.md §4.4 mentions; per Open Question 3 it
// does not participate in key equality (Matches compares the full Key
// instead). It exists so a Leaf satisfies Node: Node4.Shrink reads it when
// collapsing onto a leaf child, and insert's split logic does not use it
// (splitLeaf compares full keys).
func (l *Leaf[T]) Prefix() Prefix { return NewPrefix(l.Key) }

// SetPrefix is a no-op for leaves: a leaf's prefix is derived from Key, not
// stored separately.
func (l *Leaf[T]) SetPrefix(Prefix) {}

// Minimum returns l itself.
func (l *Leaf[T]) Minimum() *Leaf[T] { return l }

// Maximum returns l itself.
func (l *Leaf[T]) Maximum() *Leaf[T] { return l }

// FindChild panics: leaves have no children.
func (l *Leaf[T]) FindChild(byte) *Ref[T] { panic("node: leaf has no children") }

// AddChild panics: leaves have no children.
func (l *Leaf[T]) AddChild(byte, AsRef[T]) { panic("node: leaf has no children") }

// RemoveChild panics: leaves have no children.
func (l *Leaf[T]) RemoveChild(byte) { panic("node: leaf has no children") }

// Grow panics: leaves have no children to grow into a larger class.
func (l *Leaf[T]) Grow(arena.Allocator) Node[T] { panic("node: leaf cannot grow") }

// Shrink panics: leaves have no children to shrink.
func (l *Leaf[T]) Shrink(arena.AllocatorExt) Node[T] { panic("node: leaf cannot shrink") }

// Release returns l's memory to a.
func (l *Leaf[T]) Release(a arena.AllocatorExt) {
	debug.Log(nil, "leaf.release", "key=%x", l.Key)

	arena.Free[Leaf[T]](a, l)
}

// Matches reports whether l's full key equals key exactly. This is the
// byte-exact equality spec.md §4.4 calls for, independent of Prefix.
func (l *Leaf[T]) Matches(key []byte) bool {
	return bytes.Equal(l.Key, key)
}
