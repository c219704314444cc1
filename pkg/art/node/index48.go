package node

import "fmt"

// Index48Limit is the number of valid slots in a Node48's children array.
const Index48Limit = 48

// Index48Empty is the sentinel index48 value meaning "no child for this
// key byte", stored as child_index[b] for every byte b without a child.
const Index48Empty = Index48(Index48Limit)

// Index48 is a restricted integer in 0..=48: values 0..47 select a slot in
// a Node48's children array, and the single reserved value Index48Empty
// (48) marks the absence of a child. It is modeled, not as a plain byte,
// after the Rust original's RestrictedNodeIndex<LIMIT>, which is the
// authoritative source for the 0-based/48=EMPTY scheme spec.md describes
// (see DESIGN.md).
type Index48 uint8

// NewIndex48 converts v into an Index48, failing for any v >= Index48Limit
// (the only valid occupied slots are 0..47; 48 is reserved for Empty).
func NewIndex48(v int) (Index48, error) {
	if v < 0 || v >= Index48Limit {
		return 0, &RangeError{Value: v, Limit: Index48Limit}
	}

	return Index48(v), nil
}

// Empty reports whether idx is the EMPTY sentinel.
func (idx Index48) Empty() bool { return idx == Index48Empty }

// RangeError is returned when constructing a restricted index (Index48)
// with a value outside its valid range. It is a recoverable error, per the
// "Out-of-range conversion" kind in the error taxonomy: no invariant has
// been broken, the caller simply supplied a value this type cannot
// represent.
type RangeError struct {
	Value int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("node: value %d out of range [0, %d)", e.Value, e.Limit)
}
