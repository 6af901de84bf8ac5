// Package engine implements the angle-mapping core: given N blocks and
// a spanning-tree connection list, discretize the first N-2 free
// angles, keep the last analytic, evaluate realizability at three
// tolerance levels (S/M/L), run union-find to extract islands, and
// classify each as confirmed / rectilinear / problematic.
//
// The phases are distinct, sequentially-composed stages rather than one
// monolithic recursive function: setup.go is Phase 0, eval.go is Phase
// 1, islands.go is Phases 2-3, mapangles.go is the top-level driver
// plus Phase 4 and the re-boost retry.
package engine

import (
	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
)

// treeEdge is one spanning-tree connection with its angle not yet
// assigned: the endpoint connection points plus the derived angle
// type. Recursion depth i in [0, N-2) assigns
// treeEdges[i]'s angle by quantizing into one of stepCount(angleType)
// steps; the last treeEdge (index N-2) is the analytic axis.
//
// This engine assumes, as a simplifying convention documented in
// DESIGN.md, that the connection list is already in BFS order — edge i
// introduces block i+1 — matching model.Assemble's own placement order
// for the path/star-shaped trees this engine targets (N <= 6).
type treeEdge struct {
	blockA, blockB int
	cpa, cpb       brick.ConnectionPoint
	angleType      int
	locked         bool
}

// stepCount returns the number of discrete steps an angle type is
// quantized into: 2*Steps[type]+1, optionally boosted.
func stepCount(angleType int, boost bool) int {
	s := config.Steps[angleType]
	if boost && angleType != 0 {
		s *= config.PrecisionBoostMultiplier
	}

	return 2*s + 1
}
