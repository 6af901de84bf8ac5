package brick

// Corner identifies one of the four corners of a brick's footprint.
type Corner int

const (
	NW Corner = iota
	NE
	SE
	SW
)

// cornerOrder fixes the deterministic enumeration order every corner
// walk in this module uses: NW -> NE -> SE -> SW.
var cornerOrder = [4]Corner{NW, NE, SE, SW}

// CornerOrder returns the four corners in canonical enumeration order.
func CornerOrder() [4]Corner { return cornerOrder }

// String implements fmt.Stringer.
func (c Corner) String() string {
	switch c {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	default:
		return "?"
	}
}

// ConnectionPoint is a corner-stud location on a specific brick within a
// block, tagged with whether the stud points up or down.
//
// BrickIndex is the local index of the owning brick within its block
// (0-based, in the block's catalog-normalized brick order). Corner
// selects which of the four footprint corners. StudUp is true when the
// connection point's stud points toward the next level up.
type ConnectionPoint struct {
	BrickIndex int
	Corner     Corner
	StudUp     bool
}

// Less provides a total order over connection points for deterministic
// iteration: by BrickIndex, then Corner, then StudUp.
func (p ConnectionPoint) Less(o ConnectionPoint) bool {
	if p.BrickIndex != o.BrickIndex {
		return p.BrickIndex < o.BrickIndex
	}
	if p.Corner != o.Corner {
		return p.Corner < o.Corner
	}

	return !p.StudUp && o.StudUp
}

// Equal reports whether two connection points refer to the same stud.
func (p ConnectionPoint) Equal(o ConnectionPoint) bool {
	return p.BrickIndex == o.BrickIndex && p.Corner == o.Corner && p.StudUp == o.StudUp
}

// WorldOffset returns the (dx, dy) offset, in half-stud units, of this
// connection point's corner from its owning brick's origin, accounting
// for brick orientation and corner. This is the exact footprint corner
// (an integer grid point), used by catalog's isBlocked/isAngleLocked
// for exact-grid containment and boundary tests against a sibling
// brick's footprint — see StudOffset for the physical stud position
// placement math needs instead.
func (p ConnectionPoint) WorldOffset(owner Brick) (dx, dy int) {
	minX, minY, maxX, maxY := owner.Footprint()
	switch p.Corner {
	case NW:
		return minX, maxY
	case NE:
		return maxX, maxY
	case SE:
		return maxX, minY
	case SW:
		return minX, minY
	default:
		panic("brick: invalid corner")
	}
}

// StudOffset returns the position, in half-stud units, of this
// connection point's physical stud center relative to its owning
// brick's local frame: the footprint corner inset by half a stud
// toward the brick's own interior, matching geom.Placed's own
// outer-stud computation exactly (same corner order, same half-unit
// inset). Rigid-body placement (model.placeBlock) and rotation-pivot
// math (engine's evalLastAxis) must align connection points by this
// position, not by WorldOffset's raw corner: two bricks meet stud-to-
// stud, not corner-to-corner, and the corner-to-corner gap is a full
// stud-width away from the snap tolerance geom.Intersect applies.
func (p ConnectionPoint) StudOffset(owner Brick) (dx, dy float64) {
	minX, minY, maxX, maxY := owner.Footprint()
	const half = 0.5
	switch p.Corner {
	case NW:
		return float64(minX) + half, float64(maxY) - half
	case NE:
		return float64(maxX) - half, float64(maxY) - half
	case SE:
		return float64(maxX) - half, float64(minY) + half
	case SW:
		return float64(minX) + half, float64(minY) + half
	default:
		panic("brick: invalid corner")
	}
}
