package model

import (
	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
)

// PossibleCollisions returns the indices into m.Bricks of bricks whose
// vertical level is within 1 of any brick in newBricks (the newly placed
// block's bricks), the candidate set fed to IsRealizable.
func (m *Model) PossibleCollisions(newBricks []geom.Placed) []int {
	var out []int
	for i, existing := range m.Bricks {
		for _, nb := range newBricks {
			d := int(existing.Origin.Level) - int(nb.Origin.Level)
			if d < 0 {
				d = -d
			}
			if d <= 1 {
				out = append(out, i)

				break
			}
		}
	}

	return out
}

// CornerHit records one corner connection detected by IsRealizable: the
// two placed-brick indices and the connection points geom.Intersect
// reported.
type CornerHit struct {
	ExistingIdx int
	NewIdx      int
	CPExisting  brick.ConnectionPoint
	CPNew       brick.ConnectionPoint
}

// IsRealizable tests every (candidate existing brick) x (newly added
// block brick) pair with geom.Intersect at tolerance addXY. Returns
// false at the first Overlap; CornerConnected results are collected as a
// side effect (used after placement to detect cycle-closing connections)
// but never cause failure — they are pre-established by construction.
func (m *Model) IsRealizable(candidates []int, newBricks []geom.Placed, addXY float64) (ok bool, hits []CornerHit) {
	for _, ci := range candidates {
		existing := m.Bricks[ci]
		for ni, nb := range newBricks {
			if existing.BlockIndex == nb.BlockIndex {
				continue // a brick of the newly added block is not an existing brick
			}
			res := geom.Intersect(existing, nb, addXY)
			switch res.Verdict {
			case geom.Overlap:
				return false, hits
			case geom.CornerConnected:
				hits = append(hits, CornerHit{ExistingIdx: ci, NewIdx: ni, CPExisting: res.CPa, CPNew: res.CPb})
			}
		}
	}

	return true, hits
}

// IsCyclicAt is the cyclic detection: it re-tests every pair of bricks
// belonging to different
// blocks at tolerance -MTM (config.SStrict.AddXY()) and counts the
// corner connections reported. A model is cyclic iff that count exceeds
// N-1, where N is the block count — the spanning tree already accounts
// for exactly N-1 of them.
func IsCyclicAt(m *Model) bool {
	var hits int
	addXY := config.SStrict.AddXY()
	for i := 0; i < len(m.Bricks); i++ {
		for j := i + 1; j < len(m.Bricks); j++ {
			a, b := m.Bricks[i], m.Bricks[j]
			if a.BlockIndex == b.BlockIndex {
				continue
			}
			if geom.Intersect(a, b, addXY).Verdict == geom.CornerConnected {
				hits++
			}
		}
	}

	return hits > len(m.Blocks)-1
}
