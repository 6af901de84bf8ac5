package brick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/brickcount/brick"
)

// TestLevelShifted_RoundTrips verifies the on-disk packed byte format
// ((level << 1) | horizontalFlag) round-trips through FromLevelShifted.
func TestLevelShifted_RoundTrips(t *testing.T) {
	tests := []brick.Brick{
		brick.New(1, -2, 0, true),
		brick.New(-3, 4, 5, false),
		brick.New(0, 0, 0, true),
	}
	for _, b := range tests {
		packed := b.LevelShifted()
		got := brick.FromLevelShifted(b.X, b.Y, packed)
		assert.Equal(t, b, got)
	}
}

// TestIsOrigin checks the end-of-file sentinel / lex-min anchor
// definition.
func TestIsOrigin(t *testing.T) {
	assert.True(t, brick.New(0, 0, 0, false).IsOrigin())
	assert.False(t, brick.New(0, 0, 0, true).IsOrigin())
	assert.False(t, brick.New(1, 0, 0, true).IsOrigin())
}

// TestLess_LexicographicOrder checks the normalization ordering: Level,
// then Y, then X, then Horizontal.
func TestLess_LexicographicOrder(t *testing.T) {
	a := brick.New(0, 0, 0, true)
	b := brick.New(5, 0, 0, true)
	c := brick.New(0, 1, 0, true)
	d := brick.New(0, 0, 1, true)

	assert.True(t, a.Less(b))
	assert.True(t, a.Less(c))
	assert.True(t, a.Less(d))
	assert.False(t, b.Less(a))
}

// TestFootprint_HorizontalVsVertical checks the 2x4 footprint is
// centered on (X, Y) and oriented correctly along the long axis.
func TestFootprint_HorizontalVsVertical(t *testing.T) {
	h := brick.New(0, 0, 0, true)
	minX, minY, maxX, maxY := h.Footprint()
	assert.Equal(t, -4, minX)
	assert.Equal(t, -2, minY)
	assert.Equal(t, 4, maxX)
	assert.Equal(t, 2, maxY)

	v := brick.New(0, 0, 0, false)
	minX, minY, maxX, maxY = v.Footprint()
	assert.Equal(t, -2, minX)
	assert.Equal(t, -4, minY)
	assert.Equal(t, 2, maxX)
	assert.Equal(t, 4, maxY)
}

// TestStronglyConnected_RequiresAdjacentLevelsAndOverlap verifies the
// definition: adjacent levels and footprint overlap exceeding a single
// corner stud.
func TestStronglyConnected_RequiresAdjacentLevelsAndOverlap(t *testing.T) {
	base := brick.New(0, 0, 0, true) // footprint x[-4,4] y[-2,2]

	// Directly stacked above: full overlap, adjacent level.
	above := brick.New(0, 0, 1, true)
	assert.True(t, base.StronglyConnected(above))

	// Same level: never strongly connected regardless of overlap.
	sameLevel := brick.New(0, 0, 0, true)
	assert.False(t, base.StronglyConnected(sameLevel))

	// Two levels apart: never strongly connected.
	farLevel := brick.New(0, 0, 2, true)
	assert.False(t, base.StronglyConnected(farLevel))

	// Adjacent level but only touching at a single corner stud (overlap
	// area of 4 half-stud-squared cells, at the single-corner-stud
	// threshold): not strongly connected.
	cornerTouch := brick.New(7, 0, 1, true) // footprint x[3,11] y[-2,2]
	assert.False(t, base.StronglyConnected(cornerTouch))
}

// TestConnectionPoint_WorldOffset_MatchesCornerOrder checks each corner
// maps to the expected footprint extremum, in NW/NE/SE/SW order.
func TestConnectionPoint_WorldOffset_MatchesCornerOrder(t *testing.T) {
	owner := brick.New(0, 0, 0, true) // footprint x[-4,4] y[-2,2]
	tests := []struct {
		corner       brick.Corner
		wantX, wantY int
	}{
		{brick.NW, -4, 2},
		{brick.NE, 4, 2},
		{brick.SE, 4, -2},
		{brick.SW, -4, -2},
	}
	for _, tc := range tests {
		cp := brick.ConnectionPoint{BrickIndex: 0, Corner: tc.corner, StudUp: true}
		dx, dy := cp.WorldOffset(owner)
		assert.Equal(t, tc.wantX, dx, tc.corner.String())
		assert.Equal(t, tc.wantY, dy, tc.corner.String())
	}
}

// TestCornerOrder_IsDeterministic verifies the fixed enumeration order
// NW -> NE -> SE -> SW.
func TestCornerOrder_IsDeterministic(t *testing.T) {
	assert.Equal(t, [4]brick.Corner{brick.NW, brick.NE, brick.SE, brick.SW}, brick.CornerOrder())
}

// TestConnectionPoint_Less_TotalOrder sanity-checks the ordering used
// for deterministic iteration.
func TestConnectionPoint_Less_TotalOrder(t *testing.T) {
	a := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.NW, StudUp: false}
	b := brick.ConnectionPoint{BrickIndex: 0, Corner: brick.NW, StudUp: true}
	c := brick.ConnectionPoint{BrickIndex: 1, Corner: brick.NW, StudUp: false}

	assert.True(t, a.Less(b))
	assert.True(t, a.Less(c))
	assert.False(t, b.Less(a))
}
