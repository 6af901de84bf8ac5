package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
)

// dist returns the Euclidean distance between two r2.Vec points. gonum's
// spatial/r2 package deliberately keeps Vec minimal (Add/Sub/Scale); a
// norm is one line on top of Sub, so it is defined locally rather than
// searched for in the package.
func dist(p, q r2.Vec) float64 {
	d := r2.Sub(p, q)

	return math.Hypot(d.X, d.Y)
}

// Verdict is the three-way result of Intersect.
type Verdict int

const (
	// Disjoint means the two bricks do not interact at all.
	Disjoint Verdict = iota
	// Overlap means the two bricks collide.
	Overlap
	// CornerConnected means the two bricks meet at exactly one corner
	// stud, within SnapDistance, and may be joined with a rotating
	// connection.
	CornerConnected
)

// Result is the full return value of Intersect: the verdict, plus (when
// CornerConnected) the two connection points involved.
type Result struct {
	Verdict  Verdict
	CPa, CPb brick.ConnectionPoint
}

// Intersect decides disjoint / overlap / corner-stud-connected between
// two placed bricks, at the tolerance level addXY.
func Intersect(a, b Placed, addXY float64) Result {
	levelDiff := int(a.Origin.Level) - int(b.Origin.Level)
	if levelDiff < 0 {
		levelDiff = -levelDiff
	}
	if levelDiff > 1 {
		return Result{Verdict: Disjoint}
	}
	if levelDiff == 0 {
		return sameLevel(a, b, addXY)
	}

	// Adjacent levels: the brick with the smaller level is "lower".
	lower, upper := a, b
	if a.Origin.Level > b.Origin.Level {
		lower, upper = b, a
	}

	return adjacentLevel(lower, upper, addXY)
}

// sameLevel is the same-level branch: ten characteristic points of a,
// mapped into b's local frame, tested against b's (addXY-inflated) box.
func sameLevel(a, b Placed, addXY float64) Result {
	box := b.LocalBox(addXY)
	for _, local := range a.CharacteristicPoints() {
		world := a.LocalToWorld(local)
		inB := b.WorldToLocal(world)
		if box.Contains(inB) {
			return Result{Verdict: Overlap}
		}
	}
	// Check the symmetric direction too: a's box against b's points,
	// since same-level overlap is not guaranteed to be caught from one
	// direction alone when one brick is entirely inside the other's
	// convex hull but its own sample points miss the opposite box.
	boxA := a.LocalBox(addXY)
	for _, local := range b.CharacteristicPoints() {
		world := b.LocalToWorld(local)
		inA := a.WorldToLocal(world)
		if boxA.Contains(inA) {
			return Result{Verdict: Overlap}
		}
	}

	return Result{Verdict: Disjoint}
}

// adjacentLevel is the adjacent-level branch: enumerate lower's eight
// stud positions (four inner, four outer) and test each against upper's
// box, distinguishing overlap / corner-connection candidate / disjoint.
func adjacentLevel(lower, upper Placed, addXY float64) Result {
	box := upper.LocalBox(addXY)
	outer, inner := lower.studCells()

	for _, local := range inner {
		world := lower.LocalToWorld(local)
		if box.Contains(upper.WorldToLocal(world)) {
			return Result{Verdict: Overlap}
		}
	}

	type candidate struct {
		studIdx int
		cpLower brick.ConnectionPoint
		cpUpper brick.ConnectionPoint
	}
	var candidates []candidate
	upperOuter, _ := upper.studCells()

	for i, local := range outer {
		world := lower.LocalToWorld(local)
		inUpper := upper.WorldToLocal(world)

		// A stud that genuinely snaps onto one of upper's own outer studs
		// is the expected corner-connection case, not an overlap: it
		// necessarily lands inside upper's own footprint box (every outer
		// stud sits half a stud in from its brick's corner), so the
		// proximity check must run before — not after — the box/rounding
		// overlap checks below, or a legitimate touch would always be
		// misreported as Overlap.
		matched := false
		for j, uLocal := range upperOuter {
			worldU := upper.LocalToWorld(uLocal)
			d := dist(world, worldU)
			if d < config.SnapDistance || scalar.EqualWithinAbs(d, config.SnapDistance, config.Epsilon) {
				matched = true
				candidates = append(candidates, candidate{
					studIdx: i,
					cpLower: brick.ConnectionPoint{BrickIndex: lower.LocalIndex, Corner: brick.CornerOrder()[i], StudUp: true},
					cpUpper: brick.ConnectionPoint{BrickIndex: upper.LocalIndex, Corner: brick.CornerOrder()[j], StudUp: false},
				})
			}
		}
		if matched {
			continue
		}
		if box.Contains(inUpper) {
			return Result{Verdict: Overlap}
		}
		if cornerRounded(inUpper, upper.LocalBox(addXY)) {
			return Result{Verdict: Overlap}
		}
	}

	switch len(candidates) {
	case 0:
		return Result{Verdict: Disjoint}
	case 1:
		return Result{Verdict: CornerConnected, CPa: candidates[0].cpLower, CPb: candidates[0].cpUpper}
	default:
		// Two or more outer studs both report a candidate: corner
		// connections are exclusive, so this is an overlap.
		return Result{Verdict: Overlap}
	}
}

// cornerRounded reports whether a point lies within the stud-radius arc
// rounding one of box's corners.
func cornerRounded(p r2.Vec, box Box) bool {
	corners := [4]r2.Vec{
		{X: box.MinX, Y: box.MinY},
		{X: box.MaxX, Y: box.MinY},
		{X: box.MaxX, Y: box.MaxY},
		{X: box.MinX, Y: box.MaxY},
	}
	for _, c := range corners {
		if dist(p, c) <= config.StudRadius && !box.Contains(p) {
			return true
		}
	}

	return false
}
