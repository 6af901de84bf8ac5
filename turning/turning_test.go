package turning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
	"github.com/katalvlaran/brickcount/turning"
)

// TestBuild_IsClear_NoObstacles checks the trivial case: a rotating
// block with no stationary candidates at all is clear over its whole
// arc.
func TestBuild_IsClear_NoObstacles(t *testing.T) {
	br := brick.New(0, 0, 1, false)
	pivotWorld := r2.Vec{X: 0, Y: 0}
	pivotLocal := r2.Vec{X: 0, Y: 0}

	rb := turning.Build(pivotWorld, pivotLocal, 0, []brick.Brick{br}, -config.MaxAngleRadians, config.MaxAngleRadians)

	assert.True(t, turning.IsClear(rb, nil, 0))
	allowed := turning.AllowableAnglesForBricks(rb, nil, 0)
	assert.True(t, allowed.IsFullInterval(rb.Theta1, rb.Theta2))
}

// TestAllowableAnglesForBricks_ObstacleStudsUnderBrick_BlocksAllAngles
// covers the obstacle-below branch: an obstacle whose upper studs sit
// under the rotating brick's underside throughout the arc blocks every
// rotation angle, so the allowed interval is empty.
func TestAllowableAnglesForBricks_ObstacleStudsUnderBrick_BlocksAllAngles(t *testing.T) {
	rotating := brick.New(0, 0, 1, false) // rotating block's own brick, one level above
	pivotWorld := r2.Vec{X: 0, Y: 0}
	pivotLocal := r2.Vec{X: 0, Y: 0}
	rb := turning.Build(pivotWorld, pivotLocal, 0, []brick.Brick{rotating}, -config.MaxAngleRadians, config.MaxAngleRadians)

	// A stationary obstacle one level below, positioned so its top-edge
	// outer studs (at local (±1.5, -0.5), about 1.6 half-stud units from
	// the pivot) stay inside the rotating brick's footprint over the whole
	// sweep.
	obstacle := geom.Placed{Origin: brick.New(0, -4, 0, false), WorldPos: r2.Vec{X: 0, Y: 0}, WorldAngle: 0}

	allowed := turning.AllowableAnglesForBricks(rb, []geom.Placed{obstacle}, 0)
	assert.True(t, allowed.IsEmpty())
	assert.False(t, turning.IsClear(rb, []geom.Placed{obstacle}, 0))
}

// TestAllowableAnglesForBricks_FarObstacle_NeverCollides checks that an
// obstacle placed far outside the rotating block's swept radius never
// restricts the allowed angle interval.
func TestAllowableAnglesForBricks_FarObstacle_NeverCollides(t *testing.T) {
	rotating := brick.New(0, 0, 1, false)
	pivotWorld := r2.Vec{X: 0, Y: 0}
	pivotLocal := r2.Vec{X: 0, Y: 0}
	rb := turning.Build(pivotWorld, pivotLocal, 0, []brick.Brick{rotating}, -config.MaxAngleRadians, config.MaxAngleRadians)

	obstacle := geom.Placed{Origin: brick.New(0, 0, 0, false), WorldPos: r2.Vec{X: 10000, Y: 10000}, WorldAngle: 0}

	allowed := turning.AllowableAnglesForBricks(rb, []geom.Placed{obstacle}, 0)
	assert.True(t, allowed.IsFullInterval(rb.Theta1, rb.Theta2))
	assert.True(t, turning.IsClear(rb, []geom.Placed{obstacle}, 0))
}

// TestGetStudIntersectionWithMovingStud_NoObstacleStuds_NoClicks checks
// that an obstacle far away from every sampled angle reports no clicks.
func TestGetStudIntersectionWithMovingStud_NoObstacleStuds_NoClicks(t *testing.T) {
	rotating := brick.New(0, 0, 1, false)
	pivotWorld := r2.Vec{X: 0, Y: 0}
	pivotLocal := r2.Vec{X: 0, Y: 0}
	rb := turning.Build(pivotWorld, pivotLocal, 0, []brick.Brick{rotating}, -config.MaxAngleRadians, config.MaxAngleRadians)

	obstacle := geom.Placed{Origin: brick.New(0, 0, 0, false), WorldPos: r2.Vec{X: 10000, Y: 10000}, WorldAngle: 0}

	require.NotEmpty(t, rb.Features)
	studFeatureIdx := -1
	for i, f := range rb.Features {
		if f.IsStud && f.Outer {
			studFeatureIdx = i

			break
		}
	}
	require.GreaterOrEqual(t, studFeatureIdx, 0)

	clicks := turning.GetStudIntersectionWithMovingStud(rb, studFeatureIdx, obstacle)
	assert.Empty(t, clicks)
}
