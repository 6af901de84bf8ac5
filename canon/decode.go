package canon

import (
	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/catalog"
	"github.com/katalvlaran/brickcount/model"
)

// brickIdentifier is one entry of the compressed-index decode table:
// the canonical block slot and brick-in-block index a compressed brick
// index maps back to, built per Decode call instead of held in a
// long-lived encoder object.
type brickIdentifier struct {
	slot     int
	brickIdx int
}

// decodeTable enumerates every (canonical slot, brick) pair in
// compressed-index order over the canonical block order.
func decodeTable(blocks []catalog.Block, order []int) []brickIdentifier {
	var table []brickIdentifier
	for slot, bi := range order {
		for j := range blocks[bi].Bricks {
			table = append(table, brickIdentifier{slot: slot, brickIdx: j})
		}
	}

	return table
}

// Decode reverses Encode's bit layout: it reconstructs the connection
// set from an Encoding, given the same block list the encoding was
// produced over. Required edges come first, then Extra
// (loop-closing) edges, in the order the encoder emitted them.
//
// Block indices in the returned connections refer to the canonical
// (catalog-rank-ordered) labeling Encode minimized over, mapped back
// into positions of the given blocks slice; within a class of
// interchangeable blocks the assignment is the deterministic stable
// order of the input. Angles are not part of an Encoding, so every
// returned connection carries the zero step-angle.
func Decode(blocks []catalog.Block, enc Encoding) []model.Connection {
	order, _ := canonicalOrder(blocks)
	table := decodeTable(blocks, order)

	conns := decodeWord(enc.Required, order, table)

	return append(conns, decodeWord(enc.Extra, order, table)...)
}

// decodeWord unpacks one 64-bit component: a 4-bit edge count in the low
// nibble, then 12 bits per edge with the first-emitted edge in the most
// significant position — so edges are read back lowest-first and
// reversed.
func decodeWord(v uint64, order []int, table []brickIdentifier) []model.Connection {
	count := int(v & 0xF)
	v >>= 4

	conns := make([]model.Connection, count)
	for i := count - 1; i >= 0; i-- {
		belowCorner := int(v & 0x3)
		v >>= 2
		belowBrick := int(v & 0xF)
		v >>= 4
		aboveCorner := int(v & 0x3)
		v >>= 2
		aboveBrick := int(v & 0xF)
		v >>= 4

		above, below := table[aboveBrick], table[belowBrick]
		c, err := model.NewConnection(
			order[above.slot], order[below.slot],
			connectionPoint(above.brickIdx, aboveCorner, true),
			connectionPoint(below.brickIdx, belowCorner, false),
			0, 1,
		)
		if err != nil {
			panic(err) // structurally impossible: the zero angle is always in range
		}
		conns[i] = c
	}

	return conns
}

func connectionPoint(brickIdx, corner int, studUp bool) brick.ConnectionPoint {
	return brick.ConnectionPoint{BrickIndex: brickIdx, Corner: brick.Corner(corner), StudUp: studUp}
}
