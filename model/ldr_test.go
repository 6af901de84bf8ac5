package model_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/model"
)

// TestToLDR_MultiBrickBlock_DistinctPositions: the bricks of one block
// share their block's WorldPos, so ToLDR must compose each brick's own
// within-block center through the block transform — two bricks of the
// same block may never collapse onto the same LDraw coordinate.
func TestToLDR_MultiBrickBlock_DistinctPositions(t *testing.T) {
	blk := catalog.Block{
		Size:  2,
		Index: 0,
		Bricks: []brick.Brick{
			brick.New(0, 0, 0, false),
			brick.New(8, 0, 0, false),
		},
	}
	m := model.Assemble([]catalog.Block{blk}, nil)
	require.Len(t, m.Bricks, 2)

	var buf bytes.Buffer
	require.NoError(t, m.ToLDR(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	f0 := strings.Fields(lines[0])
	f1 := strings.Fields(lines[1])
	require.GreaterOrEqual(t, len(f0), 5)
	require.GreaterOrEqual(t, len(f1), 5)

	// Field layout: "1 <color> <x> <y> <z> ...". The second brick sits 8
	// half-studs along x in block-local space, 80 LDU in world space.
	assert.Equal(t, "0.0000", f0[2])
	assert.Equal(t, "80.0000", f1[2])
	assert.Equal(t, f0[4], f1[4]) // same z: the block is a straight row
}

// TestToLDR_LineCountMatchesBricks checks one line is emitted per placed
// brick across multiple blocks.
func TestToLDR_LineCountMatchesBricks(t *testing.T) {
	a := catalog.Block{Size: 1, Index: 0, Bricks: []brick.Brick{brick.New(0, 0, 0, false)}}
	b := catalog.Block{Size: 1, Index: 1, Bricks: []brick.Brick{brick.New(0, 0, 0, false)}}
	cpa := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.SE, StudUp: true}
	cpb := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.NW, StudUp: false}
	conn, err := model.NewConnection(0, 1, cpa, cpb, 0, 1)
	require.NoError(t, err)

	m := model.Assemble([]catalog.Block{a, b}, []model.Connection{conn})

	var buf bytes.Buffer
	require.NoError(t, m.ToLDR(&buf))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), len(m.Bricks))
}
