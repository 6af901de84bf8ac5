// Package catalog reads and represents the rigid-block catalog: the
// external, read-only input enumerating every canonical rigid block of a
// given size. Catalog construction itself (choosing which brick
// arrangements are valid rigid blocks) belongs to a separate builder —
// this package only loads the binary catalog format and exposes it as a
// validated, in-memory, read-only structure.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
)

// Sentinel errors for catalog loading.
var (
	// ErrTruncatedRecord indicates the file ended mid-record.
	ErrTruncatedRecord = errors.New("catalog: truncated record")
	// ErrEmptyCatalog indicates zero blocks were read.
	ErrEmptyCatalog = errors.New("catalog: no blocks read")
	// ErrBlockTooLarge indicates a block exceeds config.MaxBricksPerBlock.
	ErrBlockTooLarge = errors.New("catalog: block exceeds maximum brick count")
)

const recordSize = 3

// Block is one catalog entry: a normalized set of bricks forming a rigid
// block, plus the metadata needed to canonicalize and connect it.
//
// Bricks is normalized so Bricks[0] is the lexicographically minimal
// brick. Index is the block's serial position within its
// size's catalog file. Symmetric180 flags 180-degree rotational
// symmetry. RotationBrickPos is the (x,y) of the bottom-level non-origin
// brick used as the fulcrum when canonicalizing a symmetric block.
type Block struct {
	Size             int
	Index            int
	Bricks           []brick.Brick
	Symmetric180     bool
	RotationBrickPos [2]int8
}

// Catalog holds every Block of a single size (or combination type),
// ordered by Index as read from the file.
type Catalog struct {
	Size   int
	Blocks []Block
}

// Load reads a size-indexed catalog file in the binary format: a
// sequence of blocks, each block being (size-1) 3-byte
// records {x int8, y int8, levelShifted uint8}. A combination-type
// catalog (size given as a composite, e.g. "2_2_1") additionally
// terminates each block with a sentinel record equal to the origin
// brick; plain single-size catalogs rely on a fixed record count per
// block (size-1) and contain no sentinel.
//
// isCombination selects which framing to use: when true, Load keeps
// reading records for a block until it sees the sentinel, rather than
// stopping after a fixed count.
func Load(r io.Reader, size int, isCombination bool) (*Catalog, error) {
	br := bufio.NewReader(r)
	cat := &Catalog{Size: size}
	index := 0
	for {
		blk, ok, err := readBlock(br, size, isCombination, index)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		cat.Blocks = append(cat.Blocks, blk)
		index++
	}
	if len(cat.Blocks) == 0 {
		return nil, ErrEmptyCatalog
	}

	return cat, nil
}

// readBlock reads one block's worth of records. ok is false at clean
// end-of-file between blocks (no partial record consumed).
func readBlock(br *bufio.Reader, size int, isCombination bool, index int) (Block, bool, error) {
	blk := Block{Size: size, Index: index}
	wantRecords := size - 1
	if isCombination {
		// Combination-type blocks read until the sentinel; a negative
		// wantRecords disables the fixed record count.
		wantRecords = -1
	}

	for i := 0; wantRecords < 0 || i < wantRecords; i++ {
		rec, eof, err := readRecord(br)
		if err != nil {
			return Block{}, false, err
		}
		if eof {
			if i == 0 {
				return Block{}, false, nil
			}

			return Block{}, false, fmt.Errorf("%w: block %d ended after %d records", ErrTruncatedRecord, index, i)
		}
		b := brick.FromLevelShifted(int8(rec[0]), int8(rec[1]), rec[2])
		if isCombination && b.IsOrigin() {
			// Sentinel seen; block complete (origin brick itself is never
			// re-emitted as a non-origin record because Bricks[0] is
			// always the implicit origin, added below). This can fire on
			// the very first record of a block that has no extra bricks
			// at all.
			break
		}
		blk.Bricks = append(blk.Bricks, b)
		if len(blk.Bricks) > config.MaxBricksPerBlock-1 {
			return Block{}, false, ErrBlockTooLarge
		}
	}

	// Every block implicitly starts with the lex-minimum brick at the
	// origin; prepend it.
	origin := brick.New(0, 0, 0, false)
	blk.Bricks = append([]brick.Brick{origin}, blk.Bricks...)

	blk.Symmetric180, blk.RotationBrickPos = detectSymmetry(blk.Bricks)

	return blk, true, nil
}

func readRecord(br *bufio.Reader) (rec [recordSize]byte, eof bool, err error) {
	b0, err := br.ReadByte()
	if err == io.EOF {
		return rec, true, nil
	}
	if err != nil {
		return rec, false, err
	}
	rec[0] = b0
	for i := 1; i < recordSize; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return rec, false, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
		}
		rec[i] = b
	}

	return rec, false, nil
}

// detectSymmetry reports whether the block is invariant under 180-degree
// rotation about its own centroid, and if so returns the bottom-level
// non-origin brick's position as the rotation fulcrum.
//
// A block is 180-symmetric when rotating every brick's (x,y) by 180
// degrees about the block's centroid and re-normalizing reproduces the
// same multiset of bricks.
func detectSymmetry(bricks []brick.Brick) (bool, [2]int8) {
	var fulcrum [2]int8
	found := false
	for _, b := range bricks {
		if b.Level == 0 && !b.IsOrigin() {
			fulcrum = [2]int8{b.X, b.Y}
			found = true
			break
		}
	}
	if !found || len(bricks) < 2 {
		return false, fulcrum
	}

	twoCx, twoCy := doubledCentroid(bricks)
	rotated := make([]brick.Brick, len(bricks))
	for i, b := range bricks {
		rx := int8(twoCx) - b.X
		ry := int8(twoCy) - b.Y
		rotated[i] = brick.Brick{X: rx, Y: ry, Level: b.Level, Horizontal: b.Horizontal}
	}

	return sameMultiset(bricks, rotated), fulcrum
}

// doubledCentroid returns 2*(the block's centroid), i.e. (2*sum(X)/n,
// 2*sum(Y)/n) computed as a single integer division rather than dividing
// by n and then doubling: the true centroid may fall on a half-integer
// grid point (odd coordinate sum over an even brick count), and doubling
// after truncating would lose that half unit. A reflection of an actual
// lattice point is always itself a lattice point, so 2*sum/n divides
// evenly whenever the block truly is 180-symmetric.
func doubledCentroid(bricks []brick.Brick) (int, int) {
	sx, sy := 0, 0
	for _, b := range bricks {
		sx += int(b.X)
		sy += int(b.Y)
	}

	return 2 * sx / len(bricks), 2 * sy / len(bricks)
}

// sameMultiset reports whether a and b contain the same bricks (full
// X/Y/Level/Horizontal identity), ignoring order.
func sameMultiset(a, b []brick.Brick) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ab := range a {
		found := false
		for j, bb := range b {
			if used[j] {
				continue
			}
			if ab.Equal(bb) {
				found = true
				used[j] = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
