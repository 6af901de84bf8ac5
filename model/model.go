// Package model implements the model assembler: given a catalog-ordered
// block list and a connection list, place every block's bricks in world
// space by BFS from block 0, and expose the realizability queries that
// operate over a whole assembled model.
//
// Blocks are reached breadth-first, each block's connections taken in
// connection-list order; a connection that reaches a not-yet-placed
// block places it, and one that reaches an already-placed block places
// nothing — the graph being walked is the connection graph itself, with
// a rigid-body transform carried along at each step.
package model

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
)

// Connection is an unordered pair of connection points (one from each
// of two distinct blocks) plus a rational step-angle. The invariant
// AngleNumerator in [-AngleDenominator, AngleDenominator] is enforced by
// NewConnection (see connection.go).
type Connection struct {
	BlockA, BlockB   int // local block indices within the model
	CPA, CPB         brick.ConnectionPoint
	AngleNumerator   int
	AngleDenominator int
}

// AngleRadians returns the connection's real angle value, in
// [-MaxAngleRadians, +MaxAngleRadians].
func (c Connection) AngleRadians() float64 {
	if c.AngleDenominator == 0 {
		return 0
	}

	return float64(c.AngleNumerator) / float64(c.AngleDenominator) * config.MaxAngleRadians
}

// Model is a list of placed bricks assembled from a block list and a
// connection list. Invariants:
//
//	(a) block local index 0 is placed at the origin, zero angle, level 0;
//	(b) every other block is placed by applying its connection's angle
//	    and position transform to its catalog form, in connection-graph
//	    (BFS) order;
//	(c) placement order is deterministic given a fixed connection order.
type Model struct {
	Blocks      []catalog.Block
	Connections []Connection
	Bricks      []geom.Placed
	// BlockOrigin[i] is the index into Bricks of block i's first brick.
	BlockOrigin []int
	// BlockPose[i] is the world position/angle applied to block i's
	// catalog-local origin brick.
	BlockPose []geom.Placed
	IsCyclic  bool
}

// Assemble builds the model: BFS from blocks[0], applying each
// connection's transform in turn. connections must form a connected
// graph reaching every block (a spanning tree plus, optionally,
// additional cycle-closing edges); extra edges beyond the first N-1 are
// accepted but are not used for placement (only the spanning subset
// reachable by BFS determines placement; any edge reached a second time
// to an already-placed block is a loop-closing edge and is skipped;
// IsCyclicAt is what detects the closed loop).
func Assemble(blocks []catalog.Block, connections []Connection) *Model {
	m := &Model{Blocks: blocks, Connections: connections}
	n := len(blocks)
	placed := make([]bool, n)
	pose := make([]geom.Placed, n)
	// levelOffset[i] is the absolute level of block i's own local-index-0
	// brick (always catalog Level 0 by the lex-min normalization), i.e.
	// the amount every one of block i's catalog Level values must be
	// shifted by to land in world-absolute level space. A corner
	// connection always joins vertically adjacent levels, so each block
	// but the root needs this shift applied — see ConnectionLevelOffset
	// for the formula.
	levelOffset := make([]int, n)
	m.BlockOrigin = make([]int, n)
	m.BlockPose = make([]geom.Placed, n)

	pose[0] = geom.Placed{WorldPos: r2.Vec{}, WorldAngle: 0}
	placed[0] = true

	// adjacency: for each block, the connections touching it, in the
	// fixed connection-list order, keeping placement deterministic.
	adj := make([][]int, n)
	for ci, c := range connections {
		adj[c.BlockA] = append(adj[c.BlockA], ci)
		adj[c.BlockB] = append(adj[c.BlockB], ci)
	}

	queue := []int{0}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, ci := range adj[cur] {
			c := connections[ci]
			other := c.BlockB
			from := cur
			if c.BlockB == cur {
				other, from = c.BlockA, cur
			}
			if placed[other] {
				continue // already placed via a different edge: loop-closing
			}
			pose[other] = placeBlock(pose[from], blocks[from], blocks[other], c, from == c.BlockA)
			levelOffset[other] = connectionLevelOffset(levelOffset[from], blocks[from], blocks[other], c, from == c.BlockA)
			placed[other] = true
			queue = append(queue, other)
		}
	}

	m.BlockPose = pose
	for i, blk := range blocks {
		m.BlockOrigin[i] = len(m.Bricks)
		for li, br := range blk.Bricks {
			// Every brick in a rigid block shares its block's raw world
			// pose: Origin.Footprint() already reports each brick's
			// footprint in absolute block-local coordinates (including
			// the brick's own catalog X,Y), so LocalToWorld must apply
			// the block transform exactly once, not once here plus once
			// again at every geom call site. Level is shifted from the
			// catalog-local value to the world-absolute one separately.
			br.Level += int8(levelOffset[i])
			m.Bricks = append(m.Bricks, geom.Placed{
				Origin:     br,
				BlockIndex: i,
				LocalIndex: li,
				WorldPos:   pose[i].WorldPos,
				WorldAngle: pose[i].WorldAngle,
			})
		}
	}

	return m
}

// connectionLevelOffset computes the absolute level offset of the newly
// placed block from a Connection and which side is the already-placed
// one, delegating the actual formula to ConnectionLevelOffset so every
// caller (this package's own BFS and the engine package's independent
// placement walk) shares one definition.
func connectionLevelOffset(fromLevelOffset int, fromBlock, toBlock catalog.Block, c Connection, fromIsA bool) int {
	fromCP, toCP := c.CPA, c.CPB
	if !fromIsA {
		fromCP, toCP = c.CPB, c.CPA
	}

	return ConnectionLevelOffset(fromLevelOffset, fromBlock, toBlock, fromCP, toCP)
}

// ConnectionLevelOffset computes the absolute level offset of a block
// reached via a single connection point pair:
// the already-placed side's connecting brick sits at
// fromLevelOffset+its own catalog level; the connection steps one
// level up or down depending on whether fromCP's stud points up; the
// newly reached side's connecting brick's own catalog level is then
// subtracted out so that block's local-index-0 brick (catalog level 0)
// lands at the returned absolute offset. Exported so engine's own
// placement walk can reuse this formula instead of re-deriving it.
func ConnectionLevelOffset(fromLevelOffset int, fromBlock, toBlock catalog.Block, fromCP, toCP brick.ConnectionPoint) int {
	fromOwner := fromBlock.Bricks[fromCP.BrickIndex]
	toOwner := toBlock.Bricks[toCP.BrickIndex]

	delta := -1
	if fromCP.StudUp {
		delta = 1
	}

	return fromLevelOffset + int(fromOwner.Level) + delta - int(toOwner.Level)
}

// placeBlock is the closed-form placement composition: the new block is
// positioned so that its own connection-point stud lands on the previous
// block's connection-point stud world position, rotated by
// (previous block angle + pi/2*(typeB - typeA - 2) + connection angle).
func placeBlock(fromPose geom.Placed, fromBlock, toBlock catalog.Block, c Connection, fromIsA bool) geom.Placed {
	var fromCP, toCP brick.ConnectionPoint
	if fromIsA {
		fromCP, toCP = c.CPA, c.CPB
	} else {
		fromCP, toCP = c.CPB, c.CPA
	}

	fromOwner := fromBlock.Bricks[fromCP.BrickIndex]
	dx, dy := fromCP.StudOffset(fromOwner)
	studLocal := r2.Vec{X: dx, Y: dy}
	studWorld := fromPose.LocalToWorld(studLocal)

	// typeA/typeB are the corner's quadrant index in NW,NE,SE,SW order
	// (brick.Corner is already defined in that enumeration order), used
	// by the closed-form angle composition.
	typeA := int(fromCP.Corner)
	typeB := int(toCP.Corner)
	angle := fromPose.WorldAngle + math.Pi/2*float64(typeB-typeA-2) + c.AngleRadians()

	toOwner := toBlock.Bricks[toCP.BrickIndex]
	tdx, tdy := toCP.StudOffset(toOwner)
	toStudLocal := r2.Vec{X: tdx, Y: tdy}
	// The new block's origin is placed so that toStudLocal, rotated by
	// angle and translated, lands exactly on studWorld.
	rotated := rotateVec(toStudLocal, angle)
	origin := r2.Sub(studWorld, rotated)

	return geom.Placed{WorldPos: origin, WorldAngle: angle}
}

func rotateVec(v r2.Vec, angle float64) r2.Vec {
	s, c := math.Sincos(angle)

	return r2.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
