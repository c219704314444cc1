package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
)

func newFullNode48(t *testing.T, a arena.Allocator, n int) *node.Node48[int] {
	t.Helper()

	n16 := node.NewNode4[int](a, node.Prefix{}).Grow(a).(*node.Node16[int])
	for i := 0; i < 5; i++ {
		b := byte(i)
		n16.AddChild(b, node.NewLeaf(a, []byte{b}, i))
	}

	n48 := n16.Grow(a).(*node.Node48[int])
	for i := 5; i < n; i++ {
		b := byte(i)
		n48.AddChild(b, node.NewLeaf(a, []byte{b}, i))
	}

	return n48
}

func TestNode48AddFindRemove(t *testing.T) {
	a := new(arena.Arena)
	n48 := newFullNode48(t, a, 48)

	assert.True(t, n48.Full())
	assert.Equal(t, 48, n48.NumChildren)
	assert.Panics(t, func() { n48.AddChild(200, node.NewLeaf(a, []byte{200}, 0)) })

	assert.NotNil(t, n48.FindChild(10))
	n48.RemoveChild(10)
	assert.Equal(t, 47, n48.NumChildren)
	assert.Nil(t, n48.FindChild(10))
}

func TestNode48MinimumMaximum(t *testing.T) {
	a := new(arena.Arena)
	n48 := newFullNode48(t, a, 20)

	assert.Equal(t, []byte{0}, n48.Minimum().Key)
	assert.Equal(t, []byte{19}, n48.Maximum().Key)
}

func TestNode48GrowToNode256(t *testing.T) {
	a := new(arena.Arena)
	n48 := newFullNode48(t, a, 48)

	grown := n48.Grow(a)
	n256, ok := grown.(*node.Node256[int])
	assert.True(t, ok)
	assert.Equal(t, 48, n256.NumChildren)

	for i := 0; i < 48; i++ {
		assert.False(t, n256.Children[i].Empty())
	}
}

func TestNode48ShrinkToNode16(t *testing.T) {
	a := new(arena.Arena)
	rec := arena.NewRecycled(a)

	n48 := newFullNode48(t, rec, 17)
	n48.RemoveChild(16)

	shrunk := n48.Shrink(rec)
	n16, ok := shrunk.(*node.Node16[int])
	assert.True(t, ok)
	assert.Equal(t, 16, n16.NumChildren)

	for i := 0; i < 16; i++ {
		assert.NotNil(t, n16.FindChild(byte(i)))
	}
}
