package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/radixart/pkg/art/node"
)

func TestNewIndex48(t *testing.T) {
	idx, err := node.NewIndex48(0)
	require.NoError(t, err)
	assert.False(t, idx.Empty())

	idx, err = node.NewIndex48(47)
	require.NoError(t, err)
	assert.False(t, idx.Empty())

	_, err = node.NewIndex48(48)
	require.Error(t, err)

	var rangeErr *node.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 48, rangeErr.Value)
	assert.Equal(t, node.Index48Limit, rangeErr.Limit)

	_, err = node.NewIndex48(-1)
	require.Error(t, err)
}

func TestIndex48Empty(t *testing.T) {
	assert.True(t, node.Index48Empty.Empty())
}
