package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/canon"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/connectivity"
	"github.com/katalvlaran/brickcount/dedup"
	"github.com/katalvlaran/brickcount/model"
	"github.com/katalvlaran/brickcount/unionfind"
)

// Edge is the structural half of one connection-graph edge, before any
// angle is assigned: which two blocks it joins and through which
// connection points. By
// this package's convention blockA must already be reachable from
// blocks[0] by the edges preceding it in the slice (BFS order), and
// blockB must be the block newly introduced by this edge — the outer
// combinatorial driver (out of scope here) is responsible for handing
// MapAngles a connection-pair list already in that order.
type Edge struct {
	BlockA, BlockB int
	CPA, CPB       brick.ConnectionPoint
}

// Result is the outcome of one MapAngles run: the counts reported per
// connection-pair set.
type Result struct {
	Confirmed   int
	Problematic int
	Cyclic      int
	Rectilinear bool
}

// MapAngles runs the angle mapping end to end: Phase 0 (angle types),
// Phase 1 (discretize and evaluate S/M/L), Phase 2 (union-find), Phase 3
// (island classification), and Phase 4 (canonical-encoding
// deduplication against the caller's shared sets) — including the
// re-boost retry when a problematic island is found and
// opts.StopEarlyIfAnyProblematic is set.
//
// edges must form a spanning tree over blocks (len(edges) ==
// len(blocks)-1); additional cycle-closing connections are not
// represented here, since a model's isCyclic tag is determined after
// placement (model.IsCyclicAt), not supplied up front.
func MapAngles(blocks []catalog.Block, edges []Edge, trees *dedup.TreeSet, cyclics *dedup.CyclicSet, opts config.EngineOptions) Result {
	if opts.Report == nil {
		// EngineOptions.Report's doc comment promises a nil Report silently
		// discards reports; Apply/DefaultOptions already set a no-op, but a
		// caller building EngineOptions{} directly (its zero value) would
		// otherwise panic the first time a problematic island is found.
		opts.Report = func(config.ProblematicReport) {}
	}
	tes := make([]treeEdge, len(edges))
	for i, e := range edges {
		// Catalog-level connection-point enumeration (catalog.Block's
		// connectionPoints) already excludes angle-locked corners from the
		// usable connection-point sets a caller can choose CPA/CPB from, so
		// a tree edge built from catalog-sourced connection points is never
		// itself angle-locked; locked stays false here.
		tes[i] = treeEdge{blockA: e.BlockA, blockB: e.BlockB, cpa: e.CPA, cpb: e.CPB}
	}

	// Structural sanity before the expensive phases: the connection list
	// must reach every block. A disconnected list violates this package's
	// spanning-tree contract — a driver bug, so it aborts rather than
	// returning a numerical outcome.
	if _, err := connectivity.BuildGraph(len(blocks), structuralConnections(tes)); err != nil {
		panic(err)
	}

	res, anyProblematic := runPhases(blocks, tes, opts.BoostPrecision, opts.FindExtremeAnglesOnly, trees, cyclics, opts)
	if anyProblematic && opts.StopEarlyIfAnyProblematic && !opts.BoostPrecision {
		res, _ = runPhases(blocks, tes, true, opts.FindExtremeAnglesOnly, trees, cyclics, opts)
	}

	return res
}

func runPhases(blocks []catalog.Block, edgesIn []treeEdge, boost, extreme bool, trees *dedup.TreeSet, cyclics *dedup.CyclicSet, opts config.EngineOptions) (Result, bool) {
	edges := assignAngleTypes(len(blocks), edgesIn)

	var ev *evaluator
	var stepSizes []int
	if extreme {
		ev, stepSizes = BuildExtreme(blocks, edges, boost)
	} else {
		ev, stepSizes = Build(blocks, edges, boost)
	}

	g := buildGrids(stepSizes, ev)
	rectRoot, hasRect := rectilinearMRoot(g, stepSizes, edges, boost, extreme)

	var res Result
	var anyProblematic bool
	for _, oc := range analyzeIslands(g) {
		if oc.MIslandCount == 0 {
			anyProblematic = true
			opts.Report(problematicReport(blocks, edges, oc))

			continue
		}
		if oc.Problematic {
			anyProblematic = true
			opts.Report(problematicReport(blocks, edges, oc))
		}

		counted, cyclic := emitAndCount(blocks, edges, oc.Representative, boost, extreme, trees, cyclics)
		if !counted {
			continue
		}
		res.Confirmed++
		if oc.Problematic {
			res.Problematic++
		}
		if cyclic {
			res.Cyclic++
		}
		if hasRect && oc.mRoot == rectRoot {
			res.Rectilinear = true
		}
	}

	return res, anyProblematic
}

// rectilinearMRoot finds the rectilinear (all-zero-angle) position's
// M-grid root, by evaluating the same
// grid cell every discrete axis reaches at numerator 0 and the last axis
// at radians 0. Returns false if no M-interval contains that position
// (the rectilinear configuration is not realizable at tolerance 0).
func rectilinearMRoot(g grids, stepSizes []int, edges []treeEdge, boost, extreme bool) (int, bool) {
	steps := make([]int, len(stepSizes))
	for i, e := range edges[:len(edges)-1] {
		s := config.Steps[e.angleType]
		if boost && e.angleType != 0 {
			s *= config.PrecisionBoostMultiplier
		}
		if extreme {
			// BuildExtreme samples only {-s, s} (index 0, 1), or the single
			// value 0 (index 0) when s == 0; neither endpoint is the
			// rectilinear (angle == 0) position unless s == 0.
			if s != 0 {
				return 0, false
			}
			steps[i] = 0
		} else {
			steps[i] = s // numerator 0 sits at index s within [-s, s]
		}
	}

	return g.m.GetRootForPosition(unionfind.MixedPosition{Steps: steps, LastAngle: 0})
}

// emitAndCount is Phase 4: assemble the
// representative model, determine whether placement closed a cycle, and
// check the canonical encoding against the shared deduplication sets,
// skipping (returning counted=false) an encoding already inserted by a
// different connection-list permutation.
func emitAndCount(blocks []catalog.Block, edges []treeEdge, pos unionfind.MixedPosition, boost, extreme bool, trees *dedup.TreeSet, cyclics *dedup.CyclicSet) (counted, cyclic bool) {
	conns := make([]model.Connection, len(edges))
	for i := 0; i < len(edges)-1; i++ {
		e := edges[i]
		s := config.Steps[e.angleType]
		if boost && e.angleType != 0 {
			s *= config.PrecisionBoostMultiplier
		}
		denom := s
		if denom == 0 {
			denom = 1
		}
		num := pos.Steps[i] - s
		if extreme && s != 0 {
			// BuildExtreme's grid holds only {-s, s}, at indices 0 and 1.
			num = 2*s*pos.Steps[i] - s
		}
		c, err := model.NewConnection(e.blockA, e.blockB, e.cpa, e.cpb, num, denom)
		if err != nil {
			panic(err) // construction invariant: pos.Steps[i] came from this same grid
		}
		conns[i] = c
	}
	last := edges[len(edges)-1]
	conns[len(edges)-1] = radiansToConnection(last.blockA, last.blockB, last.cpa, last.cpb, pos.LastAngle)

	m := model.Assemble(blocks, conns)
	cyclic = model.IsCyclicAt(m)
	m.IsCyclic = cyclic

	enc := canon.Encode(blocks, conns)
	if cyclic {
		return cyclics.Insert(enc), true
	}

	return trees.Insert(enc.Required), false
}

// radiansToConnection packs an analytic radian value into a
// model.Connection, at a fixed large denominator chosen for
// sub-arcsecond resolution — the last axis has no natural discretization
// of its own, so this is only used to hand a concrete representative
// angle to model.Assemble.
func radiansToConnection(blockA, blockB int, cpa, cpb brick.ConnectionPoint, radians float64) model.Connection {
	const denom = 1_000_000
	num := int(math.Round(radians / config.MaxAngleRadians * denom))
	if num > denom {
		num = denom
	}
	if num < -denom {
		num = -denom
	}
	c, err := model.NewConnection(blockA, blockB, cpa, cpb, num, denom)
	if err != nil {
		panic(err)
	}

	return c
}

// problematicReport builds one problematic-configuration log entry: a
// connection summary, the representative position, the containment
// counts, and the URL-safe visualization file name.
func problematicReport(blocks []catalog.Block, edges []treeEdge, oc IslandResult) config.ProblematicReport {
	enc := canon.Encode(blocks, structuralConnections(edges))

	totalBricks := 0
	sizeParts := make([]string, len(blocks))
	for i, b := range blocks {
		totalBricks += b.Size
		sizeParts[i] = strconv.Itoa(b.Size)
	}
	angleParts := make([]string, len(oc.Representative.Steps))
	for i, s := range oc.Representative.Steps {
		angleParts[i] = strconv.Itoa(s)
	}

	fileName := fmt.Sprintf("size%d_blocks%d_blocksizes_%s_cc%d_angles_%s",
		totalBricks, len(blocks), strings.Join(sizeParts, "_"), enc.Required, strings.Join(angleParts, "_"))

	return config.ProblematicReport{
		ConnectionSummary: summarizeEdges(edges),
		DiscreteIndices:   append([]int(nil), oc.Representative.Steps...),
		LastAngleRadians:  oc.Representative.LastAngle,
		MIslandCount:      oc.MIslandCount,
		LIslandCount:      oc.LIslandCount,
		FileName:          fileName,
	}
}

// structuralConnections builds a zero-angle connection list from edges,
// used wherever only the canonical encoder's structural input (block
// indices and connection points — canon.Encode never reads the angle
// fields) is needed.
func structuralConnections(edges []treeEdge) []model.Connection {
	conns := make([]model.Connection, len(edges))
	for i, e := range edges {
		c, err := model.NewConnection(e.blockA, e.blockB, e.cpa, e.cpb, 0, 1)
		if err != nil {
			panic(err)
		}
		conns[i] = c
	}

	return conns
}

func summarizeEdges(edges []treeEdge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("%d(%s)-%d(%s)", e.blockA, e.cpa.Corner, e.blockB, e.cpb.Corner)
	}

	return strings.Join(parts, ",")
}
