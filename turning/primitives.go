// Package turning implements the turning-block engine: for a rigid
// block hinged at one corner-stud connection and sweeping through its
// +-MaxAngleRadians arc, compute the angle intervals at which it avoids
// collision with each stationary neighboring brick.
//
// The swept-shape decomposition (fans at box points-of-interest, moving
// studs, the zero-angle pose) is built on geom's rigid-placement
// primitives (Placed, Box); the per-feature angle interval is built on
// interval's radians algebra.
package turning

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
	"github.com/katalvlaran/brickcount/interval"
)

// cosGT returns the set of angles phi in [-pi, pi] for which
// r*cos(phi) > bound — one quarter of the four half-plane tests a
// rotating point must pass to lie inside an axis-aligned box.
func cosGT(r, bound float64) interval.List {
	if r <= config.Epsilon {
		// Degenerate: the point sits on the pivot. blockIntersectionWithRotatingPoint
		// handles this case directly; cosGT is never called with r~0 from
		// the feature-decomposition paths above.
		return interval.Empty()
	}
	c := bound / r
	if c <= -1 {
		return interval.Full(-math.Pi, math.Pi)
	}
	if c >= 1 {
		return interval.Empty()
	}
	a := math.Acos(c)

	return interval.List{Intervals: []interval.Endpoint{{Lo: -a, Hi: a}}}
}

// cosLT returns angles phi for which r*cos(phi) < bound: the complement
// of cosGT within [-pi, pi], expressed as the jumping pair
// [-pi,-a] U [a,pi] when 0 < a < pi.
func cosLT(r, bound float64) interval.List {
	if r <= config.Epsilon {
		return interval.Empty()
	}
	c := bound / r
	if c >= 1 {
		return interval.Full(-math.Pi, math.Pi)
	}
	if c <= -1 {
		return interval.Empty()
	}
	a := math.Acos(c)

	return interval.FromWrappingPair(a, -a, -math.Pi, math.Pi)
}

// shiftWrap adds shift to every endpoint of l and wraps the result back
// into [-pi, pi], splitting any interval that crosses the +-pi seam. Used
// to derive sinGT/sinLT from cosGT/cosLT via sin(phi) = cos(phi - pi/2).
func shiftWrap(l interval.List, shift float64) interval.List {
	var out []interval.Endpoint
	for _, e := range l.Intervals {
		lo, hi := e.Lo+shift, e.Hi+shift
		for hi > math.Pi {
			if lo >= math.Pi {
				lo -= 2 * math.Pi
				hi -= 2 * math.Pi
				continue
			}
			out = append(out, interval.Endpoint{Lo: lo, Hi: math.Pi})
			lo, hi = -math.Pi, hi-2*math.Pi
		}
		for lo < -math.Pi {
			lo += 2 * math.Pi
			hi += 2 * math.Pi
		}
		if hi > lo {
			out = append(out, interval.Endpoint{Lo: lo, Hi: hi})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })

	return interval.CollapseIntervals(interval.List{Intervals: out})
}

func sinGT(r, bound float64) interval.List { return shiftWrap(cosGT(r, bound), math.Pi/2) }
func sinLT(r, bound float64) interval.List { return shiftWrap(cosLT(r, bound), math.Pi/2) }

// boxMembership is the intersection of the four half-plane tests: the
// set of absolute angles phi at which a point circling the origin at
// radius r lies strictly inside box.
func boxMembership(r float64, box geom.Box) interval.List {
	return interval.AndAll(
		interval.Full(-math.Pi, math.Pi),
		cosGT(r, box.MinX), cosLT(r, box.MaxX),
		sinGT(r, box.MinY), sinLT(r, box.MaxY),
	)
}

// blockIntersectionWithMovingPoint computes the angle interval, within
// [theta1, theta2], over which a point at radius r (phase phi0 at
// theta=0) lies strictly inside box.
//
// phi0 is the point's absolute angle at theta=0; the rotating variable is
// theta = phi - phi0, so the box-membership interval (computed in phi)
// is shifted by -phi0 before intersecting with the sweep domain.
func blockIntersectionWithMovingPoint(r, phi0 float64, box geom.Box, theta1, theta2 float64) interval.List {
	inTheta := shiftWrap(boxMembership(r, box), -phi0)

	return interval.AndRadians(inTheta, interval.Full(theta1, theta2))
}

// blockIntersectionWithCounterMovingPoint is the reversed-direction
// variant used when the point belongs to the stationary side and the box
// to the rotating side: the relative motion runs against theta (the
// point's angle at sweep position theta is phi0 - theta), so the
// membership set is negated before intersecting the sweep domain. This
// is exactly what interval.Reverse exists for.
func blockIntersectionWithCounterMovingPoint(r, phi0 float64, box geom.Box, theta1, theta2 float64) interval.List {
	inTheta := interval.Reverse(shiftWrap(boxMembership(r, box), -phi0))

	return interval.AndRadians(inTheta, interval.Full(theta1, theta2))
}

// studInflate grows a box by the stud radius on every side — the
// rectangle part of the rectangle-Minkowski-disk sum. The four
// quarter-disk corners are approximated by the inflated box's square
// corners (geom.cornerRounded, at the snap-detection layer, tests the
// exact stud-radius arcs instead).
func studInflate(box geom.Box) geom.Box {
	return geom.Box{
		MinX: box.MinX - config.StudRadius,
		MinY: box.MinY - config.StudRadius,
		MaxX: box.MaxX + config.StudRadius,
		MaxY: box.MaxY + config.StudRadius,
	}
}

// blockIntersectionWithMovingStud is the Minkowski-sum primitive:
// rectangle (+) disk of radius StudRadius.
func blockIntersectionWithMovingStud(r, phi0 float64, box geom.Box, theta1, theta2 float64) interval.List {
	return blockIntersectionWithMovingPoint(r, phi0, studInflate(box), theta1, theta2)
}

// blockIntersectionWithCounterMovingStud is the reversed-direction stud
// variant, for obstacle studs sweeping relatively against the rotating
// brick's own box.
func blockIntersectionWithCounterMovingStud(r, phi0 float64, box geom.Box, theta1, theta2 float64) interval.List {
	return blockIntersectionWithCounterMovingPoint(r, phi0, studInflate(box), theta1, theta2)
}

// blockIntersectionWithRotatingPoint handles the degenerate r < epsilon
// case: the point never moves, so the result is either the full sweep
// domain (pivot sits inside the box) or empty.
func blockIntersectionWithRotatingPoint(box geom.Box, theta1, theta2 float64) interval.List {
	if box.Contains(r2.Vec{}) {
		return interval.Full(theta1, theta2)
	}

	return interval.Empty()
}

// blockIntersectionWithRotatingStud handles the degenerate
// r < SNAP_DISTANCE stud: the stud effectively sits on the pivot and
// never moves, so the result is the full sweep domain or empty. An outer
// (click-capable) stud that lands within SNAP_DISTANCE of one of the
// box's own outer-stud positions (outerStuds, expressed in the same
// pivot-centered frame as box) is the corner connection itself, not a
// collision — the exclusion that keeps a hinged block's own connecting
// stud from blocking the whole arc.
func blockIntersectionWithRotatingStud(box geom.Box, outerStuds [4]r2.Vec, outer bool, theta1, theta2 float64) interval.List {
	if outer {
		for _, s := range outerStuds {
			if math.Hypot(s.X, s.Y) <= config.SnapDistance {
				return interval.Empty()
			}
		}
	}
	if studContains(box, r2.Vec{}) {
		return interval.Full(theta1, theta2)
	}

	return interval.Empty()
}

// studContains reports whether a stud centered at p intersects box: p
// must lie inside the box inflated by STUD_RADIUS, excluding the four
// rounded-off corner regions beyond the stud-radius arc.
func studContains(box geom.Box, p r2.Vec) bool {
	inflated := studInflate(box)
	if !inflated.Contains(p) {
		return false
	}
	if p.X > box.MinX && p.X < box.MaxX || p.Y > box.MinY && p.Y < box.MaxY {
		return true
	}
	corners := [4]r2.Vec{
		{X: box.MinX, Y: box.MinY},
		{X: box.MaxX, Y: box.MinY},
		{X: box.MaxX, Y: box.MaxY},
		{X: box.MinX, Y: box.MaxY},
	}
	for _, c := range corners {
		if math.Hypot(p.X-c.X, p.Y-c.Y) < config.StudRadius {
			return true
		}
	}

	return false
}
