package engine

import (
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
	"github.com/katalvlaran/brickcount/model"
)

// CountRectilinear is a direct, union-find-free check of whether the
// all-zero-angle (rectilinear) assembly of blocks joined by edges is
// realizable at tolerance zero — independent of the
// interval-vector/island machinery the rest of this package uses for
// the full angle sweep. Useful as a cheap sanity check and in tests
// that only care about the rectilinear case.
func CountRectilinear(blocks []catalog.Block, edges []Edge) bool {
	conns := make([]model.Connection, len(edges))
	for i, e := range edges {
		c, err := model.NewConnection(e.BlockA, e.BlockB, e.CPA, e.CPB, 0, 1)
		if err != nil {
			panic(err)
		}
		conns[i] = c
	}

	m := model.Assemble(blocks, conns)
	addXY := config.Nominal.AddXY()
	for i := 0; i < len(m.Bricks); i++ {
		for j := i + 1; j < len(m.Bricks); j++ {
			a, b := m.Bricks[i], m.Bricks[j]
			if a.BlockIndex == b.BlockIndex {
				continue
			}
			if geom.Intersect(a, b, addXY).Verdict == geom.Overlap {
				return false
			}
		}
	}

	return true
}
