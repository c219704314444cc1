package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/radixart/pkg/arena"
	"github.com/flier/radixart/pkg/art/node"
)

func TestLeafMatches(t *testing.T) {
	a := new(arena.Arena)

	l := node.NewLeaf(a, []byte("hello"), 42)

	assert.True(t, l.Matches([]byte("hello")))
	assert.False(t, l.Matches([]byte("world")))
	assert.False(t, l.Matches([]byte("hell")))
}

func TestLeafRefRoundTrips(t *testing.T) {
	a := new(arena.Arena)

	l := node.NewLeaf(a, []byte("key"), "value")
	ref := l.Ref()

	assert.True(t, ref.IsLeaf())
	assert.False(t, ref.IsInner())

	got := ref.AsLeaf()
	assert.Equal(t, l, got)
	assert.Equal(t, "value", got.Value)
}

func TestLeafPanicsOnChildOps(t *testing.T) {
	a := new(arena.Arena)
	l := node.NewLeaf(a, []byte("k"), 0)

	assert.Panics(t, func() { l.FindChild('a') })
	assert.Panics(t, func() { l.AddChild('a', l) })
	assert.Panics(t, func() { l.RemoveChild('a') })
	assert.Panics(t, func() { l.Grow(a) })
	assert.Panics(t, func() { l.Shrink(arena.NewRecycled(a)) })
}

func TestLeafMinimumMaximumAreSelf(t *testing.T) {
	a := new(arena.Arena)
	l := node.NewLeaf(a, []byte("k"), 0)

	assert.Same(t, l, l.Minimum())
	assert.Same(t, l, l.Maximum())
}
