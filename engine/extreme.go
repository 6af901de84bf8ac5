package engine

import (
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
	"github.com/katalvlaran/brickcount/interval"
)

// BuildExtreme is the extreme-angle mode: each discrete axis is sampled
// only at its two endpoints (or the single value 0 when its angle type
// is locked), instead of the full 2*STEPS+1 grid — trading resolution
// for speed when the full grid is infeasible. evalLastAxis still
// evaluates the analytic last axis exactly; the endpoints of intra-range
// intervals on that axis fall out of allowedAt's interval algebra.
func BuildExtreme(blocks []catalog.Block, edges []treeEdge, boost bool) (*evaluator, []int) {
	n := len(blocks)
	stepEdges := edges[:len(edges)-1]
	lastEdge := edges[len(edges)-1]

	stepSizes := make([]int, len(stepEdges))
	total := 1
	for i, e := range stepEdges {
		stepSizes[i] = stepCountExtreme(e.angleType, boost)
		total *= stepSizes[i]
	}

	ev := &evaluator{
		blocks:      blocks,
		stepEdges:   stepEdges,
		lastEdge:    lastEdge,
		boost:       boost,
		extreme:     true,
		poses:       make([]geom.Placed, n),
		levelOffset: make([]int, n),
		sVec:        interval.NewVector(total, 2),
		mVec:        interval.NewVector(total, 2),
		lVec:        interval.NewVector(total, 2),
	}
	ev.poses[0] = geom.Placed{WorldAngle: 0}
	ev.placed = placeBlockBricks(nil, blocks[0], ev.poses[0], 0)

	ev.recurse(0)

	return ev, stepSizes
}

// stepCountExtreme mirrors stepCount but collapses every non-locked
// angle type to its two endpoints.
func stepCountExtreme(angleType int, boost bool) int {
	s := config.Steps[angleType]
	if boost && angleType != 0 {
		s *= config.PrecisionBoostMultiplier
	}
	if s == 0 {
		return 1
	}

	return 2
}
