package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollData(t *testing.T) {
	d := NewScrollData()

	first := d.AddBlock("General")
	second := d.AddBlock("Customers")
	require.Equal(t, 0, first)
	require.Equal(t, 1, second)

	subBlockID, err := d.AddSubBlock(second)
	require.NoError(t, err)
	require.NoError(t, d.AddSubBlockData(second, subBlockID, "<div>customer</div>"))

	t.Log("unknown ids are rejected")
	{
		_, err := d.AddSubBlock(5)
		require.ErrorIs(t, err, ErrUnknownBlock)
		require.ErrorIs(t, d.AddSubBlockData(first, 0, "html"), ErrUnknownBlock)
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"dataBlocks":[
		{"title":"General","subblocks":[]},
		{"title":"Customers","subblocks":[{"data":["<div>customer</div>"]}]}
	]}`, string(raw))
}
