// Package brick defines the RectilinearBrick primitive and its corner
// connection points — the smallest unit of geometry in the engine.
//
// A brick is a single axis-aligned 2x4 rectangular brick at an integer
// grid position (half-stud units) and integer vertical level, oriented
// with its long axis along x or y: a plain, comparable, copyable value
// type.
package brick

import (
	"fmt"
	"math"

	"github.com/katalvlaran/brickcount/config"
)

// Brick is one axis-aligned 2x4 rectangular brick, positioned on an
// integer half-stud grid.
//
// X, Y are the brick's origin in half-stud units. Level is the integer
// vertical layer (0-based). Horizontal is true when the brick's long axis
// runs along X, false when it runs along Y.
type Brick struct {
	X, Y       int8
	Level      int8
	Horizontal bool
}

// New constructs a Brick at the given grid position, level, and
// orientation.
func New(x, y int8, level int8, horizontal bool) Brick {
	return Brick{X: x, Y: y, Level: level, Horizontal: horizontal}
}

// LevelShifted packs Level and Horizontal into the single byte used by
// the on-disk catalog format: (level << 1) | horizontalFlag.
func (b Brick) LevelShifted() uint8 {
	h := uint8(0)
	if b.Horizontal {
		h = 1
	}

	return uint8(b.Level)<<1 | h
}

// FromLevelShifted decodes the packed level/orientation byte produced by
// LevelShifted.
func FromLevelShifted(x, y int8, levelShifted uint8) Brick {
	return Brick{
		X:          x,
		Y:          y,
		Level:      int8(levelShifted >> 1),
		Horizontal: levelShifted&1 == 1,
	}
}

// Less is the lexicographic ordering used to normalize a block so its
// lex-minimum brick sits at the origin: compare by Level, then Y, then
// X, then Horizontal.
func (b Brick) Less(o Brick) bool {
	if b.Level != o.Level {
		return b.Level < o.Level
	}
	if b.Y != o.Y {
		return b.Y < o.Y
	}
	if b.X != o.X {
		return b.X < o.X
	}

	return !b.Horizontal && o.Horizontal
}

// Equal reports whether two bricks occupy the identical cell.
func (b Brick) Equal(o Brick) bool {
	return b.X == o.X && b.Y == o.Y && b.Level == o.Level && b.Horizontal == o.Horizontal
}

// IsOrigin reports whether b is the zero brick (0,0,level 0, vertical),
// used as the end-of-file sentinel in the catalog file format and as the
// lex-minimum normalization anchor.
func (b Brick) IsOrigin() bool {
	return b.X == 0 && b.Y == 0 && b.Level == 0 && !b.Horizontal
}

// HalfLength and HalfWidth are a standard 2x4 brick's half-length (along
// its long axis) and half-width, in half-stud units: 8 half-studs long
// (4 studs), 4 half-studs wide (2 studs). Derived from config's
// whole-stud physical constants (CenterToTop, VerticalBrickCenterToSide)
// rather than hand-picked literals, each doubled into the half-stud
// grid.
var (
	HalfLength = int(math.Round(config.CenterToTop)) * 2
	HalfWidth  = int(math.Round(config.VerticalBrickCenterToSide)) * 2
)

// Footprint returns the brick's axis-aligned bounding box in half-stud
// units, (minX, minY, maxX, maxY). (X, Y) is the brick's geometric
// center, symmetric on both axes; orientation only selects which axis
// carries the half-length.
func (b Brick) Footprint() (minX, minY, maxX, maxY int) {
	x, y := int(b.X), int(b.Y)
	if b.Horizontal {
		return x - HalfLength, y - HalfWidth, x + HalfLength, y + HalfWidth
	}

	return x - HalfWidth, y - HalfLength, x + HalfWidth, y + HalfLength
}

// StronglyConnected reports whether b and o lie on adjacent levels and
// their footprints overlap by more than a single corner stud — the
// relation whose transitive closure defines a rigid block.
func (b Brick) StronglyConnected(o Brick) bool {
	if abs8(b.Level-o.Level) != 1 {
		return false
	}
	bx0, by0, bx1, by1 := b.Footprint()
	ox0, oy0, ox1, oy1 := o.Footprint()
	overlapX := minInt(bx1, ox1) - maxInt(bx0, ox0)
	overlapY := minInt(by1, oy1) - maxInt(by0, oy0)
	if overlapX <= 0 || overlapY <= 0 {
		return false
	}
	// "more than a single corner stud" means the overlap area must
	// exceed one stud cell (2x2 half-stud units).
	return overlapX*overlapY > 4
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}

	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// String implements fmt.Stringer for diagnostics.
func (b Brick) String() string {
	orient := "V"
	if b.Horizontal {
		orient = "H"
	}

	return fmt.Sprintf("Brick(%d,%d,L%d,%s)", b.X, b.Y, b.Level, orient)
}
