// Package canon implements the canonical encoder: a 64-bit-pair
// (required, extra) identifier for a connection set, invariant under
// relabeling of interchangeable blocks and 180° rotation of
// rotationally-symmetric blocks.
//
// The BFS-with-relabeling walk is the same visit-once, push-frontier
// shape as model.Assemble's own BFS, generalized to also choose a base
// block and, for each rotationally-symmetric block reached, a rotation
// choice — then take the bitwise minimum over every such choice. Each
// walk owns its own slices; rotation is a pure function on them rather
// than an in-place mutation of shared state.
package canon

import (
	"sort"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/model"
)

// Encoding is the 128-bit (as a pair of uint64) canonical identifier:
// Required encodes the N-1 spanning-tree connections of the minimal
// canonical form, Extra encodes any additional loop-closing
// connections.
type Encoding struct {
	Required uint64
	Extra    uint64
}

// Less gives Encoding a total order, used by Encode's min-over-choices
// search and by dedup's ordered set.
func (e Encoding) Less(o Encoding) bool {
	if e.Required != o.Required {
		return e.Required < o.Required
	}

	return e.Extra < o.Extra
}

// edge is one encoded connection: an (above, below) pair of compressed
// model-global brick indices plus corners. Each endpoint packs as 4 bits
// of compressed brick index and 2 bits of corner, 12 bits per edge.
type edge struct {
	aboveBrick, aboveCorner int
	belowBrick, belowCorner int
}

func (e edge) pack() uint64 {
	return uint64(e.aboveBrick&0xF)<<8 | uint64(e.aboveCorner&0x3)<<6 | uint64(e.belowBrick&0xF)<<2 | uint64(e.belowCorner&0x3)
}

// rankOf orders blocks the way the catalog itself is ordered (first by
// size descending, then by index ascending); the minimum rank is
// therefore the first block in catalog order.
func rankOf(b catalog.Block) int { return -b.Size*1000 + b.Index }

// canonicalOrder returns the block indices sorted into catalog rank
// order (stable on equal rank), plus, for each rank class, the position
// of its first slot in that order. Interchangeable blocks of one class
// occupy a contiguous run of slots; a walk's permutation index within
// the class picks which slot a concrete block lands in.
func canonicalOrder(blocks []catalog.Block) (order []int, classStart map[int]int) {
	order = make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return rankOf(blocks[order[a]]) < rankOf(blocks[order[b]]) })

	classStart = make(map[int]int)
	for slot, bi := range order {
		r := rankOf(blocks[bi])
		if _, seen := classStart[r]; !seen {
			classStart[r] = slot
		}
	}

	return order, classStart
}

// compressedIndex computes the model-global compressed brick index of
// (canonical block slot, brick-in-block index): a running count of
// bricks over the canonical block order. All blocks in one rank class
// share a size, so the prefix sum depends only on the slot, never on
// which interchangeable block occupies it.
func compressedIndex(blocks []catalog.Block, order []int, slot, brickIdx int) int {
	idx := 0
	for s := 0; s < slot; s++ {
		idx += len(blocks[order[s]].Bricks)
	}

	return idx + brickIdx
}

// Encode returns the minimum, over every block of minimum catalog rank
// taken as the BFS base and (when that block is rotationally symmetric)
// the identity-vs-rotated choice, of the required/extra edge encoding
// produced by walking the connection graph.
func Encode(blocks []catalog.Block, connections []model.Connection) Encoding {
	minRank := rankOf(blocks[0])
	for _, b := range blocks {
		if r := rankOf(b); r < minRank {
			minRank = r
		}
	}

	order, classStart := canonicalOrder(blocks)

	best := Encoding{Required: ^uint64(0), Extra: ^uint64(0)}
	for base := range blocks {
		if rankOf(blocks[base]) != minRank {
			continue
		}
		choices := []bool{false}
		if blocks[base].Symmetric180 {
			choices = append(choices, true)
		}
		for _, rotated := range choices {
			enc := encodeFrom(blocks, connections, base, rotated, order, classStart)
			if enc.Less(best) {
				best = enc
			}
		}
	}

	return best
}

// encodeFrom walks the connection graph from base (optionally rotating
// base's own incident corners 180° first, when base is symmetric and the
// rotated choice is requested), assigning permutation slots to
// interchangeable blocks in first-reached order and emitting required
// (tree) then extra (cycle-closing) edges.
func encodeFrom(blocks []catalog.Block, connections []model.Connection, base int, rotateBase bool, order []int, classStart map[int]int) Encoding {
	n := len(blocks)
	adj := make([][]int, n)
	for ci, c := range connections {
		adj[c.BlockA] = append(adj[c.BlockA], ci)
		adj[c.BlockB] = append(adj[c.BlockB], ci)
	}

	visited := make([]bool, n)
	// slotOf[i] is block i's position in the canonical block order:
	// classStart of its rank class plus its within-class permutation
	// index, assigned in first-reached order — which is what makes
	// interchangeable blocks truly interchangeable in the output bits.
	slotOf := make([]int, n)
	for i := range slotOf {
		slotOf[i] = -1
	}
	rotatedBlock := make([]bool, n)
	slotOf[base] = classStart[rankOf(blocks[base])]
	visited[base] = true
	rotatedBlock[base] = rotateBase

	nextInClass := map[int]int{rankOf(blocks[base]): 1}

	// usedConn ensures each connection is classified exactly once: without
	// it, a tree edge would be reprocessed (and misfiled as a loop-closing
	// extra edge) when BFS reaches the edge's far endpoint and walks back
	// over it.
	usedConn := make([]bool, len(connections))

	var required, extra []edge
	queue := []int{base}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		ids := append([]int(nil), adj[cur]...)
		// Walk cur's connections in sorted connection-point order,
		// tie-broken by connection-list index.
		sort.SliceStable(ids, func(a, b int) bool {
			ca, cb := endpointOn(connections[ids[a]], cur), endpointOn(connections[ids[b]], cur)
			if !ca.Equal(cb) {
				return ca.Less(cb)
			}

			return ids[a] < ids[b]
		})
		for _, ci := range ids {
			if usedConn[ci] {
				continue
			}
			usedConn[ci] = true
			c := connections[ci]
			other, curIsA := otherEnd(c, cur)
			if visited[other] {
				// Already-visited pair: a loop-closing connection, emitted
				// as an extra edge.
				extra = append(extra, packEdge(blocks, order, slotOf, c, curIsA, rotatedBlock[cur], rotatedBlock[other]))

				continue
			}
			rank := rankOf(blocks[other])
			slotOf[other] = classStart[rank] + nextInClass[rank]
			nextInClass[rank]++
			rotatedBlock[other] = blocks[other].Symmetric180 && !isRotationMinimal(c, curIsA)
			visited[other] = true
			required = append(required, packEdge(blocks, order, slotOf, c, curIsA, rotatedBlock[cur], rotatedBlock[other]))
			queue = append(queue, other)
		}
	}

	return Encoding{Required: packEdges(required), Extra: packEdges(extra)}
}

func otherEnd(c model.Connection, cur int) (other int, curIsA bool) {
	if c.BlockA == cur {
		return c.BlockB, true
	}

	return c.BlockA, false
}

// endpointOn returns the connection point on cur's own side of c.
func endpointOn(c model.Connection, cur int) brick.ConnectionPoint {
	if c.BlockA == cur {
		return c.CPA
	}

	return c.CPB
}

// isRotationMinimal reports whether the connection point incident on the
// newly reached block is already its rotation-minimal image: the NW/NE
// corners are taken as minimal, SE/SW as their 180°-rotated
// counterparts.
func isRotationMinimal(c model.Connection, curIsA bool) bool {
	// The endpoint incident on "other" is the opposite of cur's side:
	// when cur is BlockA the newly reached block is BlockB, so its own
	// endpoint is CPB, and vice versa.
	cp := c.CPA
	if curIsA {
		cp = c.CPB
	}

	return cp.Corner == brick.NW || cp.Corner == brick.NE
}

func packEdge(blocks []catalog.Block, order []int, slotOf []int, c model.Connection, curIsA bool, rotatedCur, rotatedOther bool) edge {
	// "Above"/"below" follow the connection's StudUp flag on CPA; CPA is
	// always treated as the upper endpoint by construction (the convention
	// model.NewConnection's doc states: CPA upper-facing, CPB lower-facing
	// — see connection.go).
	a, b := c.CPA, c.CPB

	return edge{
		aboveBrick:  compressedIndex(blocks, order, slotOf[c.BlockA], a.BrickIndex),
		aboveCorner: int(mirrorIfRotated(a.Corner, rotatedCur && curIsA || rotatedOther && !curIsA)),
		belowBrick:  compressedIndex(blocks, order, slotOf[c.BlockB], b.BrickIndex),
		belowCorner: int(mirrorIfRotated(b.Corner, rotatedOther && curIsA || rotatedCur && !curIsA)),
	}
}

// mirrorIfRotated returns the 180°-rotated image of a corner (NW<->SE,
// NE<->SW) when rotated is true.
func mirrorIfRotated(c brick.Corner, rotated bool) brick.Corner {
	if !rotated {
		return c
	}
	switch c {
	case brick.NW:
		return brick.SE
	case brick.NE:
		return brick.SW
	case brick.SE:
		return brick.NW
	default:
		return brick.NE
	}
}

func packEdges(edges []edge) uint64 {
	var v uint64
	for _, e := range edges {
		v = v<<12 | e.pack()
	}

	return v<<4 | uint64(len(edges)&0xF)
}
