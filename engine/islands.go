package engine

import "github.com/katalvlaran/brickcount/unionfind"

// grids bundles the three tolerance-level union-find structures Phase 2
// builds over one evaluator's S/M/L interval vectors.
type grids struct {
	s, m, l *unionfind.IntervalUnionFind
}

// buildGrids implements Phase 2: one IntervalUnionFind per tolerance
// level, sharing the discrete step sizes every vector was built over.
func buildGrids(stepSizes []int, ev *evaluator) grids {
	return grids{
		s: unionfind.Build(stepSizes, ev.sVec),
		m: unionfind.Build(stepSizes, ev.mVec),
		l: unionfind.Build(stepSizes, ev.lVec),
	}
}

// IslandResult is one countable outcome of Phase 3's island analysis: a
// representative grid position at which to assemble the representative
// model, plus the containment counts that classify it.
type IslandResult struct {
	Representative unionfind.MixedPosition
	MIslandCount   int // M-islands found inside the containing S-island
	LIslandCount   int // L-islands found inside this result's M-island
	Problematic    bool
	mRoot          int // this result's M-island root, for the rectilinear-inclusion check
}

// analyzeIslands is Phase 3: walk every S-island, find the M-islands
// whose representative lies inside it, and for each M-island count the
// L-islands it in turn contains. A zero-M-island S-island contributes
// one Problematic IslandResult with MIslandCount 0, which MapAngles
// reports but does not count; every other combination
// contributes one IslandResult per M-island,
// flagged Problematic unless it is the unique M-island with a unique
// contained L-island.
func analyzeIslands(g grids) []IslandResult {
	var out []IslandResult
	mRoots, lRoots := g.m.Roots(), g.l.Roots()

	for _, sRoot := range g.s.Roots() {
		var contained []int
		for _, mRoot := range mRoots {
			rep := g.m.GetRepresentativeOfUnion(mRoot)
			if r, ok := g.s.GetRootForPosition(rep); ok && r == sRoot {
				contained = append(contained, mRoot)
			}
		}
		if len(contained) == 0 {
			out = append(out, IslandResult{Problematic: true})

			continue
		}

		for _, mRoot := range contained {
			var lCount int
			for _, lRoot := range lRoots {
				rep := g.l.GetRepresentativeOfUnion(lRoot)
				if r, ok := g.m.GetRootForPosition(rep); ok && r == mRoot {
					lCount++
				}
			}
			out = append(out, IslandResult{
				Representative: g.m.GetRepresentativeOfUnion(mRoot),
				MIslandCount:   len(contained),
				LIslandCount:   lCount,
				Problematic:    !(len(contained) == 1 && lCount == 1),
				mRoot:          mRoot,
			})
		}
	}

	return out
}
