package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
)

func TestRefEmpty(t *testing.T) {
	var r node.Ref[int]

	assert.True(t, r.Empty())
	assert.False(t, r.IsLeaf())
	assert.False(t, r.IsInner())
	assert.Nil(t, r.AsLeaf())
	assert.Nil(t, r.AsNode4())
	assert.Nil(t, r.AsNode())
}

func TestRefTagging(t *testing.T) {
	a := new(arena.Arena)

	leaf := node.NewLeaf(a, []byte("k"), 1)
	n4 := node.NewNode4[int](a, node.Prefix{})

	leafRef := leaf.Ref()
	assert.True(t, leafRef.IsLeaf())
	assert.Equal(t, node.TypeLeaf, leafRef.Type())
	assert.Same(t, leaf, leafRef.AsLeaf())
	assert.Nil(t, leafRef.AsNode4())

	n4Ref := n4.Ref()
	assert.True(t, n4Ref.IsInner())
	assert.Equal(t, node.TypeNode4, n4Ref.Type())
	assert.Same(t, n4, n4Ref.AsNode4())
	assert.Nil(t, n4Ref.AsLeaf())

	decoded := n4Ref.AsNode()
	assert.Same(t, n4, decoded)
}

func TestRefReplace(t *testing.T) {
	a := new(arena.Arena)
	leaf1 := node.NewLeaf(a, []byte("a"), 1)
	leaf2 := node.NewLeaf(a, []byte("b"), 2)

	ref := leaf1.Ref()

	previous := ref.Replace(leaf2)
	assert.Same(t, leaf1, previous)
	assert.Same(t, leaf2, ref.AsLeaf())

	previous = ref.Replace(nil)
	assert.Same(t, leaf2, previous)
	assert.True(t, ref.Empty())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Node4", node.TypeNode4.String())
	assert.Equal(t, "Node16", node.TypeNode16.String())
	assert.Equal(t, "Node48", node.TypeNode48.String())
	assert.Equal(t, "Node256", node.TypeNode256.String())
	assert.Equal(t, "Leaf", node.TypeLeaf.String())
	assert.Equal(t, "Unknown", node.Type(0b111).String())
}
