package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
	"github.com/katalvlaran/brickcount/interval"
	"github.com/katalvlaran/brickcount/model"
	"github.com/katalvlaran/brickcount/turning"
)

// evaluator carries the mutable recursion state of Phase 1: the partial
// model being assembled depth-first, and the three output vectors being
// filled one grid cell at a time.
//
// All three tolerances are evaluated at every leaf rather than carrying
// per-tolerance "disabled in this subtree" flags down the recursion
// (see DESIGN.md); every grid cell still receives its true S/M/L
// interval lists either way, only redundant leaf work is saved by such
// flags.
type evaluator struct {
	blocks    []catalog.Block
	stepEdges []treeEdge
	lastEdge  treeEdge
	boost     bool
	extreme   bool // extreme-angle mode: sample only axis endpoints
	poses     []geom.Placed
	// levelOffset[i] is the absolute level of block i's own
	// local-index-0 brick, mirroring model.Assemble's own levelOffset
	// tracking (see model.ConnectionLevelOffset): each block's catalog
	// Level values must be shifted by this amount before being compared
	// against any other block's bricks for level adjacency.
	levelOffset      []int
	placed           []geom.Placed // flattened bricks of blocks placed so far
	sVec, mVec, lVec *interval.Vector
}

// Build constructs the S/M/L interval-list vectors: edges must be in
// this package's BFS-order convention (edge i
// connects an already-placed block to block i+1). blocks[0] is placed at
// the origin.
func Build(blocks []catalog.Block, edges []treeEdge, boost bool) (*evaluator, []int) {
	n := len(blocks)
	stepEdges := edges[:len(edges)-1]
	lastEdge := edges[len(edges)-1]

	stepSizes := make([]int, len(stepEdges))
	total := 1
	for i, e := range stepEdges {
		stepSizes[i] = stepCount(e.angleType, boost)
		total *= stepSizes[i]
	}

	ev := &evaluator{
		blocks:      blocks,
		stepEdges:   stepEdges,
		lastEdge:    lastEdge,
		boost:       boost,
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

// recurse is the Phase 1 enumeration: at depth < len(stepEdges),
// iterate every discrete step of that edge's angle, placing the next
// block and recursing; at depth == len(stepEdges), evaluate the analytic
// last axis and append one grid cell's worth of S/M/L interval lists.
func (ev *evaluator) recurse(depth int) {
	if depth == len(ev.stepEdges) {
		ev.evalLastAxis()

		return
	}

	e := ev.stepEdges[depth]
	s := config.Steps[e.angleType]
	if ev.boost && e.angleType != 0 {
		s *= config.PrecisionBoostMultiplier
	}
	denom := s
	if denom == 0 {
		denom = 1
	}

	var nums []int
	switch {
	case ev.extreme && s == 0:
		nums = []int{0}
	case ev.extreme:
		nums = []int{-s, s}
	default:
		nums = make([]int, 0, 2*s+1)
		for num := -s; num <= s; num++ {
			nums = append(nums, num)
		}
	}

	for _, num := range nums {
		conn, err := model.NewConnection(e.blockA, e.blockB, e.cpa, e.cpb, num, denom)
		if err != nil {
			panic(err) // construction invariant: num is within [-denom, denom] by loop bounds
		}
		// By this package's tree-construction invariant, blockA is always
		// the already-placed parent and blockB the newly reached child.
		pose := placeOne(ev.poses[e.blockA], ev.blocks[e.blockA], ev.blocks[e.blockB], conn)
		ev.poses[e.blockB] = pose
		// The connection's angle never affects which bricks its two
		// connection points own or their StudUp direction, so the level
		// offset is the same at every discretized step of this axis.
		ev.levelOffset[e.blockB] = model.ConnectionLevelOffset(ev.levelOffset[e.blockA], ev.blocks[e.blockA], ev.blocks[e.blockB], e.cpa, e.cpb)
		newBricks := placeBlockBricks(nil, ev.blocks[e.blockB], pose, ev.levelOffset[e.blockB])
		saved := ev.placed
		ev.placed = append(append([]geom.Placed(nil), ev.placed...), newBricks...)

		ev.recurse(depth + 1)

		ev.placed = saved
	}
}

// evalLastAxis is Phase 1's deepest-recursion leaf: for the analytic
// last edge, compute the allowed-angle interval against every
// already-placed brick (the candidate set, not pruned to
// model.PossibleCollisions' level-adjacency filter — a conservative
// superset) at each of the S/M/L tolerances.
func (ev *evaluator) evalLastAxis() {
	e := ev.lastEdge
	parentPose := ev.poses[e.blockA]
	parentOwner := ev.blocks[e.blockA].Bricks[e.cpa.BrickIndex]
	dx, dy := e.cpa.StudOffset(parentOwner)
	pivotWorld := parentPose.LocalToWorld(r2.Vec{X: dx, Y: dy})

	childOwner := ev.blocks[e.blockB].Bricks[e.cpb.BrickIndex]
	cdx, cdy := e.cpb.StudOffset(childOwner)
	pivotLocal := r2.Vec{X: cdx, Y: cdy}

	// baseAngle is blockB's world orientation at connection-angle zero;
	// delegating to placeOne (rather than re-deriving the corner-quadrant
	// offset formula here) keeps that formula defined in exactly one
	// place, per placeOne's own doc comment.
	zeroConn, err := model.NewConnection(e.blockA, e.blockB, e.cpa, e.cpb, 0, 1)
	if err != nil {
		panic(err)
	}
	baseAngle := placeOne(parentPose, ev.blocks[e.blockA], ev.blocks[e.blockB], zeroConn).WorldAngle

	theta1, theta2 := -config.MaxAngleRadians, config.MaxAngleRadians
	if e.locked {
		theta1, theta2 = -config.Epsilon, config.Epsilon
	}
	// turning.Build takes raw catalog bricks and needs them in the same
	// absolute level space as ev.placed (see model.Assemble), so blockB's
	// bricks are shifted by its own level offset before being passed in.
	childLevelOffset := model.ConnectionLevelOffset(ev.levelOffset[e.blockA], ev.blocks[e.blockA], ev.blocks[e.blockB], e.cpa, e.cpb)
	shiftedBricks := make([]brick.Brick, len(ev.blocks[e.blockB].Bricks))
	for i, br := range ev.blocks[e.blockB].Bricks {
		br.Level += int8(childLevelOffset)
		shiftedBricks[i] = br
	}
	rb := turning.Build(pivotWorld, pivotLocal, baseAngle, shiftedBricks, theta1, theta2)

	ev.sVec.Append(ev.allowedAt(rb, config.SStrict))
	ev.mVec.Append(ev.allowedAt(rb, config.Nominal))
	ev.lVec.Append(ev.allowedAt(rb, config.LStrict))
}

func (ev *evaluator) allowedAt(rb turning.RotatingBlock, tol config.ToleranceMode) interval.List {
	// turning.IsClear itself runs the same sweep AllowableAnglesForBricks
	// does; returning the interval list directly (a clear arc already
	// comes back as the full interval) avoids running that sweep twice
	// per grid cell in the common (not fully clear) case.
	return turning.AllowableAnglesForBricks(rb, ev.placed, tol.AddXY())
}

// placeOne composes fromPose with the relative pose model.Assemble
// computes for a throwaway two-block sub-assembly, keeping the closed-
// form placement formula defined in exactly one place (model.placeBlock
// is unexported and only reachable through Assemble). This package's
// BFS-order convention guarantees c.BlockA is always the already-placed
// parent.
func placeOne(fromPose geom.Placed, fromBlock, toBlock catalog.Block, c model.Connection) geom.Placed {
	m := model.Assemble([]catalog.Block{fromBlock, toBlock}, []model.Connection{{
		BlockA: 0, BlockB: 1, CPA: c.CPA, CPB: c.CPB,
		AngleNumerator: c.AngleNumerator, AngleDenominator: c.AngleDenominator,
	}})
	rel := m.BlockPose[1]
	angle := fromPose.WorldAngle + rel.WorldAngle
	s, co := math.Sincos(fromPose.WorldAngle)
	rotated := r2.Vec{X: rel.WorldPos.X*co - rel.WorldPos.Y*s, Y: rel.WorldPos.X*s + rel.WorldPos.Y*co}

	return geom.Placed{WorldPos: r2.Add(fromPose.WorldPos, rotated), WorldAngle: angle}
}

func placeBlockBricks(into []geom.Placed, blk catalog.Block, pose geom.Placed, levelOffset int) []geom.Placed {
	out := into
	for li, br := range blk.Bricks {
		// See model.Assemble: Footprint() already carries each brick's
		// absolute block-local X,Y, so every brick in the block shares
		// the block's own WorldPos/WorldAngle unchanged. Level is
		// shifted from the catalog-local value to the absolute one
		// shared with every other already-placed block.
		br.Level += int8(levelOffset)
		out = append(out, geom.Placed{
			Origin:     br,
			LocalIndex: li,
			WorldPos:   pose.WorldPos,
			WorldAngle: pose.WorldAngle,
		})
	}

	return out
}
