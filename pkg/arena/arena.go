// Package arena implements a bump allocator used by the radix tree core.
//
// Every inner node and leaf in package node is allocated through an
// Allocator so that node memory itself does not come from individual
// garbage-collected allocations (a leaf's copy of its key is still an
// ordinary Go slice): nodes are carved out of large slabs and, when
// an AllocatorExt is used, freed nodes are recycled into a per-size free
// list instead of being abandoned to the GC.
//
// All allocations are rounded up to Align so that the low 3 bits of any
// returned address are free for package node's tagged pointer (node.Ref).
package arena

import (
	"unsafe"
)

// Align is the minimum alignment, in bytes, of every allocation made
// through this package. It must be a power of two and leave at least 3 low
// bits free for node.Ref's class tag.
const Align = 8

// Allocator carves raw, zeroed, Align-aligned memory out of some backing
// store and hands ownership of it to the caller.
type Allocator interface {
	// Alloc returns size bytes of zeroed memory aligned to at least Align.
	Alloc(size uintptr) unsafe.Pointer
}

// AllocatorExt is an Allocator that also accepts memory back for reuse.
// Nodes release themselves through Free when a mutation frees the last
// reference to them; a recycling allocator may hand that same memory back
// out of a later Alloc call of the same size class.
type AllocatorExt interface {
	Allocator

	// Free returns a previously allocated block of the given size to the
	// allocator. The pointer must have come from a matching Alloc call on
	// the same allocator (or one of its Recycled wrappers) and must not be
	// used again afterwards.
	Free(ptr unsafe.Pointer, size uintptr)
}

// New allocates space for one T out of a and returns a pointer to a copy
// of v.
//
// New is the sole construction path for every node type in package node,
// mirroring how the tree's allocate_node primitive is expected to be the
// only way nodes come into existence.
func New[T any](a Allocator, v T) *T {
	p := (*T)(a.Alloc(unsafe.Sizeof(v)))
	*p = v

	return p
}

// Free returns the memory backing p to a, mirroring the tree's
// deallocate_node primitive. p must not be used again after Free returns.
//
// Free is a no-op convenience when a does not implement AllocatorExt (the
// memory is simply abandoned to the garbage collector, which remains
// correct, only less efficient).
func Free[T any](a Allocator, p *T) {
	ext, ok := a.(AllocatorExt)
	if !ok || p == nil {
		return
	}

	var zero T

	ext.Free(unsafe.Pointer(p), unsafe.Sizeof(zero))
}

// Retainer is implemented by an Allocator whose backing storage, like
// Arena's, is plain []byte and therefore allocated noscan: the Go runtime
// never scans it for outgoing pointers. Copying a value that itself holds
// real pointers — a []byte header's backing array, or a T containing
// pointers — into such memory hides that pointer from the garbage
// collector, which can then free the referent out from under the still-
// live copy. Retain keeps v ordinarily reachable (by holding it in normal,
// scanned Go memory) for as long as the Retainer is, so the collector
// keeps tracing through it regardless of where the copy inside the arena
// lives.
type Retainer interface {
	Retain(v any)
}

// Arena is a simple bump allocator: allocations are carved sequentially out
// of growing slabs and are never reused individually. Use Recycled when
// nodes are expected to be freed and reallocated frequently, as they are
// during insert/delete churn.
//
// An Arena's slabs are ordinary Go byte slices, kept alive for the
// lifetime of the Arena by the blocks field below, which is a deliberate
// simplification of the teacher's reflection-driven allocTraceable scheme
// (see DESIGN.md). That simplification only keeps the slab itself
// reachable, which is not the same problem allocTraceable solves: a
// []byte slab is allocated noscan, so the collector never looks inside it
// for pointers a stored value might itself be holding (package node's
// Leaf.Key, or a value type carrying pointers). Arena implements Retainer
// to cover that gap; see retained below.
type Arena struct {
	blocks    [][]byte
	off       int
	slabSize  int
	allocated int

	// retained holds ordinary Go references to values copied into this
	// Arena's noscan slabs, purely so the garbage collector keeps tracing
	// through them. It is append-only: entries are never removed, even
	// once the arena allocation that prompted them is freed, trading
	// some unreclaimed memory over the Arena's lifetime for a guarantee
	// that no retained pointer is ever collected early.
	retained []any
}

var _ Retainer = (*Arena)(nil)

// Retain keeps v reachable for as long as a is. See Retainer.
func (a *Arena) Retain(v any) {
	a.retained = append(a.retained, v)
}

// Options configures a new Arena.
type Options struct {
	// SlabSize is the size, in bytes, of each backing slab. It is rounded
	// up to the next power of two no smaller than 4096. Zero selects a
	// default of 64KiB.
	SlabSize int
}

// NewArena creates an Arena ready for use.
func NewArena(opts Options) *Arena {
	size := opts.SlabSize
	if size <= 0 {
		size = 64 << 10
	}

	return &Arena{slabSize: suggestSize(size)}
}

func suggestSize(n int) int {
	size := 4096
	for size < n {
		size <<= 1
	}

	return size
}

// Alloc implements Allocator.
func (a *Arena) Alloc(size uintptr) unsafe.Pointer {
	n := int(alignUp(size, Align))

	if len(a.blocks) == 0 || a.off+n > len(a.blocks[len(a.blocks)-1]) {
		slabSize := a.slabSize
		if n > slabSize {
			slabSize = int(alignUp(uintptr(n), Align))
		}

		a.blocks = append(a.blocks, make([]byte, slabSize))
		a.off = 0
	}

	slab := a.blocks[len(a.blocks)-1]
	p := unsafe.Pointer(&slab[a.off])
	a.off += n
	a.allocated += n

	return p
}

// Allocated reports the total number of bytes handed out by Alloc so far,
// including any that have since been passed to Free on a Recycled wrapper
// (an Arena by itself never reclaims space).
func (a *Arena) Allocated() int { return a.allocated }

func alignUp(n uintptr, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
