package node

import (
	"unsafe"

	"github.com/flier/radixart/pkg/arena"
)

// AsRef is satisfied by anything that can hand back a Ref to itself: every
// concrete node type, and Ref itself.
type AsRef[T any] interface {
	Ref() Ref[T]
}

// Ref is a tagged pointer to one of the five node classes: the low 3 bits
// (nodeTypeMask, which equals arena.Align-1) carry the Type, and the
// remaining bits carry the node's address with those low bits masked off.
// Because arena.Align is 8, every allocation leaves exactly those 3 bits
// free, satisfying (I1) and (I8).
//
// A zero Ref is the empty reference: no node, no type.
type Ref[T any] uintptr

const (
	nodeTypeMask = uintptr(arena.Align - 1)
	nodePtrMask  = ^nodeTypeMask
)

// NewRef tags p, a pointer to a node of type t, into a Ref.
func NewRef[T, N any](t Type, p *N) Ref[T] {
	addr := uintptr(unsafe.Pointer(p))

	return Ref[T]((addr & nodePtrMask) | (uintptr(t) & nodeTypeMask))
}

// Ref returns r itself, so that a Ref satisfies AsRef.
func (r Ref[T]) Ref() Ref[T] { return r }

// Type reports the class tag carried by r.
func (r Ref[T]) Type() Type { return Type(uintptr(r) & nodeTypeMask) }

// Empty reports whether r references no node.
func (r Ref[T]) Empty() bool { return r == 0 }

// IsLeaf reports whether r is tagged as a leaf.
func (r Ref[T]) IsLeaf() bool { return r.Type() == TypeLeaf }

// IsInner reports whether r is tagged as one of the four inner-node
// classes.
func (r Ref[T]) IsInner() bool { return !r.Empty() && !r.IsLeaf() }

// AsLeaf returns r's pointee as a *Leaf[T], or nil if r does not carry
// TypeLeaf.
func (r Ref[T]) AsLeaf() *Leaf[T] {
	if r.IsLeaf() {
		return (*Leaf[T])(r.ptr())
	}

	return nil
}

// AsNode4 returns r's pointee as a *Node4[T], or nil if r does not carry
// TypeNode4.
func (r Ref[T]) AsNode4() *Node4[T] {
	if r.Type() == TypeNode4 {
		return (*Node4[T])(r.ptr())
	}

	return nil
}

// AsNode16 returns r's pointee as a *Node16[T], or nil if r does not carry
// TypeNode16.
func (r Ref[T]) AsNode16() *Node16[T] {
	if r.Type() == TypeNode16 {
		return (*Node16[T])(r.ptr())
	}

	return nil
}

// AsNode48 returns r's pointee as a *Node48[T], or nil if r does not carry
// TypeNode48.
func (r Ref[T]) AsNode48() *Node48[T] {
	if r.Type() == TypeNode48 {
		return (*Node48[T])(r.ptr())
	}

	return nil
}

// AsNode256 returns r's pointee as a *Node256[T], or nil if r does not
// carry TypeNode256.
func (r Ref[T]) AsNode256() *Node256[T] {
	if r.Type() == TypeNode256 {
		return (*Node256[T])(r.ptr())
	}

	return nil
}

// AsNode decodes r into the Node[T] interface satisfied by its concrete
// pointee, or nil if r is empty.
//
//go:nosplit
func (r Ref[T]) AsNode() Node[T] {
	if r.Empty() {
		return nil
	}

	p := r.ptr()

	switch r.Type() {
	case TypeLeaf:
		return (*Leaf[T])(p)
	case TypeNode4:
		return (*Node4[T])(p)
	case TypeNode16:
		return (*Node16[T])(p)
	case TypeNode48:
		return (*Node48[T])(p)
	case TypeNode256:
		return (*Node256[T])(p)
	default:
		panic("node: tag mismatch decoding Ref")
	}
}

// Replace overwrites *r with new.Ref() (or the empty Ref, if new is nil)
// and returns the node r previously referenced, decoded.
func (r *Ref[T]) Replace(new AsRef[T]) (previous Node[T]) {
	previous = r.AsNode()

	if new == nil {
		*r = 0
	} else {
		*r = new.Ref()
	}

	return previous
}

func (r Ref[T]) ptr() unsafe.Pointer {
	return unsafe.Pointer(uintptr(r) & nodePtrMask)
}
