package model

import (
	"errors"

	"github.com/katalvlaran/brickcount/brick"
)

// ErrAngleOutOfRange is returned by NewConnection when the requested
// step-angle numerator falls outside [-denominator, denominator].
var ErrAngleOutOfRange = errors.New("model: angle numerator out of range")

// NewConnection constructs a Connection between two blocks' connection
// points, enforcing the numerator/denominator range invariant.
// cpa is always the upper (stud-up) endpoint and cpb the lower, matching
// the orientation geom.Intersect's adjacentLevel branch already
// establishes when it reports a CornerConnected result.
func NewConnection(blockA, blockB int, cpa, cpb brick.ConnectionPoint, numerator, denominator int) (Connection, error) {
	if denominator == 0 {
		return Connection{}, ErrAngleOutOfRange
	}
	if numerator < -denominator || numerator > denominator {
		return Connection{}, ErrAngleOutOfRange
	}

	return Connection{
		BlockA: blockA, BlockB: blockB,
		CPA: cpa, CPB: cpb,
		AngleNumerator: numerator, AngleDenominator: denominator,
	}, nil
}
