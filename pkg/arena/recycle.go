package arena

import "unsafe"

// Recycled wraps an Allocator with a per-size free list, so that a node
// freed by a delete or a shrink can be handed straight back out on the next
// Alloc of the same size instead of bump-allocating fresh memory forever.
//
// This is the allocator the tree should use in practice: ART workloads
// alternate grow/shrink and insert/delete, which means nodes of a given
// class are constantly being freed and re-requested.
type Recycled struct {
	under Allocator
	free  map[uintptr][]unsafe.Pointer
	live  int
}

var (
	_ AllocatorExt = (*Recycled)(nil)
	_ Retainer     = (*Recycled)(nil)
)

// NewRecycled wraps under with a free list. under must not be nil.
func NewRecycled(under Allocator) *Recycled {
	return &Recycled{under: under, free: make(map[uintptr][]unsafe.Pointer)}
}

// Alloc implements Allocator. It first tries to satisfy the request from
// the free list for the requested size, falling back to the wrapped
// allocator when the free list is empty.
func (r *Recycled) Alloc(size uintptr) unsafe.Pointer {
	if list := r.free[size]; len(list) > 0 {
		p := list[len(list)-1]
		r.free[size] = list[:len(list)-1]
		r.live++

		zero(p, size)

		return p
	}

	r.live++

	return r.under.Alloc(size)
}

// Free implements AllocatorExt by returning ptr to the size-keyed free
// list for reuse by a later Alloc of the same size.
func (r *Recycled) Free(ptr unsafe.Pointer, size uintptr) {
	if ptr == nil {
		return
	}

	r.free[size] = append(r.free[size], ptr)
	r.live--
}

// Live returns the number of outstanding allocations: Alloc calls not yet
// matched by a Free. This is the basis for the allocation-balance property
// the test suite checks after building and fully deleting a key set.
func (r *Recycled) Live() int { return r.live }

// Retain forwards to the wrapped allocator when it is itself a Retainer
// (true for *Arena, Recycled's usual target), so recycling a node's
// memory doesn't bypass the pointer-keepalive Arena relies on.
func (r *Recycled) Retain(v any) {
	if ret, ok := r.under.(Retainer); ok {
		ret.Retain(v)
	}
}

func zero(p unsafe.Pointer, size uintptr) {
	b := unsafe.Slice((*byte)(p), size)
	for i := range b {
		b[i] = 0
	}
}
