// Package geom implements the rigid-block intersection kernel: given
// two placed bricks, decide disjoint / overlapping /
// corner-stud-connected.
//
// Points are gonum.org/v1/gonum/spatial/r2.Vec values throughout: every
// brick corner, stud position, and point-of-interest is a named 2-D
// vector rather than an ad-hoc (x, y float64) pair.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
)

// Placed is one brick after rigid-body placement into world space: its
// catalog shape (Origin, for footprint dimensions and level) plus a
// world position and rotation angle. BlockIndex/LocalIndex back-reference
// the owning block and the brick's position within it; placement
// recomputes brick poses every time, so no pointers into catalog storage
// are needed.
type Placed struct {
	Origin     brick.Brick
	BlockIndex int
	LocalIndex int
	WorldPos   r2.Vec
	WorldAngle float64
}

// rotate returns v rotated by angle radians about the origin.
func rotate(v r2.Vec, angle float64) r2.Vec {
	s, c := math.Sincos(angle)

	return r2.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// LocalToWorld maps a point expressed in a placed brick's local frame
// (before rotation/translation) into world space.
func (p Placed) LocalToWorld(local r2.Vec) r2.Vec {
	return r2.Add(p.WorldPos, rotate(local, p.WorldAngle))
}

// WorldToLocal maps a world-space point into p's local frame — the
// inverse of LocalToWorld.
func (p Placed) WorldToLocal(world r2.Vec) r2.Vec {
	return rotate(r2.Sub(world, p.WorldPos), -p.WorldAngle)
}

// Box is an axis-aligned bounding box in some local frame, in half-stud
// units, optionally inflated/deflated by a signed tolerance amount.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// LocalBox returns p's own axis-aligned footprint, in its local (pre-
// rotation) frame, inflated by addXY on every side.
func (p Placed) LocalBox(addXY float64) Box {
	minX, minY, maxX, maxY := p.Origin.Footprint()

	return Box{
		MinX: float64(minX) - addXY,
		MinY: float64(minY) - addXY,
		MaxX: float64(maxX) + addXY,
		MaxY: float64(maxY) + addXY,
	}
}

// Contains reports whether (x, y) lies strictly inside the box. A
// coordinate within config.Epsilon of a box edge is treated as on the
// boundary, not inside, so floating-point noise on a touching contact
// never flips it into an overlap.
func (b Box) Contains(v r2.Vec) bool {
	if scalar.EqualWithinAbs(v.X, b.MinX, config.Epsilon) || scalar.EqualWithinAbs(v.X, b.MaxX, config.Epsilon) ||
		scalar.EqualWithinAbs(v.Y, b.MinY, config.Epsilon) || scalar.EqualWithinAbs(v.Y, b.MaxY, config.Epsilon) {
		return false
	}

	return v.X > b.MinX && v.X < b.MaxX && v.Y > b.MinY && v.Y < b.MaxY
}

// interiorPointOffset is the fixed distance (in half-stud units) of the
// two interior characteristic points from a brick's center along its
// long axis — a constant 0.75 stud-units (1.5 on this half-stud grid),
// independent of brick length.
const interiorPointOffset = 1.5

// CharacteristicPoints returns the ten points the same-level overlap
// test samples: four corners, four side midpoints, and two interior
// points at a fixed 1.5 half-stud-unit offset along the long axis — all
// in p's own local frame.
func (p Placed) CharacteristicPoints() [10]r2.Vec {
	minX, minY, maxX, maxY := p.Origin.Footprint()
	cx, cy := (float64(minX)+float64(maxX))/2, (float64(minY)+float64(maxY))/2
	var pts [10]r2.Vec
	pts[0] = r2.Vec{X: float64(minX), Y: float64(minY)}
	pts[1] = r2.Vec{X: float64(maxX), Y: float64(minY)}
	pts[2] = r2.Vec{X: float64(maxX), Y: float64(maxY)}
	pts[3] = r2.Vec{X: float64(minX), Y: float64(maxY)}
	pts[4] = r2.Vec{X: cx, Y: float64(minY)}
	pts[5] = r2.Vec{X: cx, Y: float64(maxY)}
	pts[6] = r2.Vec{X: float64(minX), Y: cy}
	pts[7] = r2.Vec{X: float64(maxX), Y: cy}
	if p.Origin.Horizontal {
		pts[8] = r2.Vec{X: cx - interiorPointOffset, Y: cy}
		pts[9] = r2.Vec{X: cx + interiorPointOffset, Y: cy}
	} else {
		pts[8] = r2.Vec{X: cx, Y: cy - interiorPointOffset}
		pts[9] = r2.Vec{X: cx, Y: cy + interiorPointOffset}
	}

	return pts
}

// studCells returns the eight stud positions of p, in local frame: the
// four outer studs first, in corner enumeration order, then the four
// inner ("dead") studs.
func (p Placed) studCells() (outer, inner [4]r2.Vec) {
	minXi, minYi, maxXi, maxYi := p.Origin.Footprint()
	minX, minY, maxX, maxY := float64(minXi), float64(minYi), float64(maxXi), float64(maxYi)
	const half = 0.5 // half-stud distance in from the corner, in half-stud units
	outer = [4]r2.Vec{
		{X: minX + half, Y: maxY - half}, // NW
		{X: maxX - half, Y: maxY - half}, // NE
		{X: maxX - half, Y: minY + half}, // SE
		{X: minX + half, Y: minY + half}, // SW
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	inner = [4]r2.Vec{
		{X: cx - half, Y: cy + half},
		{X: cx + half, Y: cy + half},
		{X: cx + half, Y: cy - half},
		{X: cx - half, Y: cy - half},
	}

	return outer, inner
}
