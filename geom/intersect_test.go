package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/geom"
)

func horizontalAt(level int8, pos r2.Vec) geom.Placed {
	return geom.Placed{Origin: brick.New(0, 0, level, true), WorldPos: pos, WorldAngle: 0}
}

// TestIntersect_FarLevels_AlwaysDisjoint checks the early-exit: bricks
// more than one level apart never interact regardless of XY position.
func TestIntersect_FarLevels_AlwaysDisjoint(t *testing.T) {
	a := horizontalAt(0, r2.Vec{})
	b := horizontalAt(2, r2.Vec{})

	res := geom.Intersect(a, b, 0)
	assert.Equal(t, geom.Disjoint, res.Verdict)
}

// TestIntersect_SameLevel_IdenticalPosition_Overlaps checks the same-
// level branch catches two bricks placed exactly on top of each other via
// their interior characteristic points.
func TestIntersect_SameLevel_IdenticalPosition_Overlaps(t *testing.T) {
	a := horizontalAt(0, r2.Vec{})
	b := horizontalAt(0, r2.Vec{})

	res := geom.Intersect(a, b, 0)
	assert.Equal(t, geom.Overlap, res.Verdict)
}

// TestIntersect_SameLevel_FarApart_Disjoint checks two same-level bricks
// with no spatial overlap.
func TestIntersect_SameLevel_FarApart_Disjoint(t *testing.T) {
	a := horizontalAt(0, r2.Vec{})
	b := horizontalAt(0, r2.Vec{X: 100, Y: 100})

	res := geom.Intersect(a, b, 0)
	assert.Equal(t, geom.Disjoint, res.Verdict)
}

// TestIntersect_AdjacentLevels_ExactStudMatch_IsCornerConnected:
// a lower brick's NE outer stud landing exactly
// on an upper brick's SW outer stud, with no other stud pair in range,
// reports a single corner connection rather than an overlap.
//
// Lower is a horizontal brick centered at the origin: footprint x in
// [-4,4], y in [-2,2], NE outer stud at local (3.5, 1.5). Upper is
// shifted so its own SW outer stud (its local (-3.5,-1.5)) lands at
// world (3.5, 1.5): upper.WorldPos = (3.5-(-3.5), 1.5-(-1.5)) = (7, 3).
func TestIntersect_AdjacentLevels_ExactStudMatch_IsCornerConnected(t *testing.T) {
	lower := horizontalAt(0, r2.Vec{})
	upper := horizontalAt(1, r2.Vec{X: 7, Y: 3})

	res := geom.Intersect(lower, upper, 0)
	require := assert.New(t)
	require.Equal(geom.CornerConnected, res.Verdict)
	require.Equal(brick.NE, res.CPa.Corner)
	require.Equal(brick.SW, res.CPb.Corner)
}

// TestIntersect_AdjacentLevels_ExactOverlap_AllFourStudsMatch checks that
// when every outer stud of the lower brick coincides with the upper
// brick's (both placed at the same XY position), Overlap is reported
// rather than a single corner connection (the lower brick's inner studs
// already fall inside the upper brick's box).
func TestIntersect_AdjacentLevels_ExactOverlap_AllFourStudsMatch(t *testing.T) {
	lower := horizontalAt(0, r2.Vec{})
	upper := horizontalAt(1, r2.Vec{})

	res := geom.Intersect(lower, upper, 0)
	assert.Equal(t, geom.Overlap, res.Verdict)
}

// TestIntersect_AdjacentLevels_FarApart_Disjoint checks two adjacent-level
// bricks with no stud or body interaction at all.
func TestIntersect_AdjacentLevels_FarApart_Disjoint(t *testing.T) {
	lower := horizontalAt(0, r2.Vec{})
	upper := horizontalAt(1, r2.Vec{X: 1000, Y: 1000})

	res := geom.Intersect(lower, upper, 0)
	assert.Equal(t, geom.Disjoint, res.Verdict)
}
