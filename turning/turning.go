package turning

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/brickcount/brick"
	"github.com/katalvlaran/brickcount/config"
	"github.com/katalvlaran/brickcount/geom"
	"github.com/katalvlaran/brickcount/interval"
)

// Feature is one swept point of interest of a rotating brick, tracing a
// circle of Radius about the pivot starting at phase Phi0 (the point's
// absolute world-frame angle at rotation theta=0). IsStud marks whether
// the feature is a stud (radius inflated by StudRadius at the obstacle)
// or a bare point (a fan's POI); Outer marks the four click-capable
// outer studs.
type Feature struct {
	Radius   float64
	Phi0     float64
	IsStud   bool
	Outer    bool
	StudIdx  int  // index into brick.CornerOrder() for outer studs, -1 otherwise
	BrickIdx int  // index into RotatingBlock.Bricks of the owning brick
	Level    int8 // absolute level of the brick this feature belongs to
}

// RotatingBlock is the swept-shape decomposition of one rigid block
// hinged at pivot and sweeping through [theta1, theta2]:
// the zero-angle pose, and the per-brick feature set (fans + moving
// studs). The bricks themselves are retained because the obstacle-below
// and same-level branches of the sweep need each brick's own box as the
// stationary side of a reversed collision test.
type RotatingBlock struct {
	Pivot       r2.Vec
	PivotLocal  r2.Vec
	BaseAngle   float64
	Theta1      float64
	Theta2      float64
	Bricks      []brick.Brick
	PoseAtTheta func(theta float64) []geom.Placed // every brick of the block, posed at theta
	Features    []Feature
}

// Build decomposes a block's bricks into the sweep's feature set: per
// brick, six fans (four footprint corners plus the two interior POIs)
// and eight moving studs (four inner, four outer).
// pivotWorld is the shared stud's world position (fixed regardless of
// theta); pivotLocal is that same stud's position in the rotating
// block's own local/catalog frame; baseAngle is the block's world
// orientation at theta=0 (the connection's placement formula already
// folds in the parent's orientation and the corner-quadrant offset —
// theta is purely the additional rotation on top of that). A feature at
// local radius r and local phase localPhi therefore has world angle
// baseAngle+localPhi+theta at sweep position theta, which is exactly
// Phi0+theta with Phi0 := baseAngle+localPhi.
func Build(pivotWorld, pivotLocal r2.Vec, baseAngle float64, bricks []brick.Brick, theta1, theta2 float64) RotatingBlock {
	var features []Feature
	for bi, br := range bricks {
		outerLocal, innerLocal := studLocalPositions(br)
		for _, local := range innerLocal {
			features = append(features, featureAt(local, pivotLocal, baseAngle, Feature{
				IsStud: true, Outer: false, StudIdx: -1, BrickIdx: bi, Level: br.Level,
			}))
		}
		for i, local := range outerLocal {
			features = append(features, featureAt(local, pivotLocal, baseAngle, Feature{
				IsStud: true, Outer: true, StudIdx: i, BrickIdx: bi, Level: br.Level,
			}))
		}
		for _, local := range boxPOIs(br) {
			features = append(features, featureAt(local, pivotLocal, baseAngle, Feature{
				IsStud: false, StudIdx: -1, BrickIdx: bi, Level: br.Level,
			}))
		}
	}

	poseAt := func(theta float64) []geom.Placed {
		angle := baseAngle + theta
		s, c := math.Sincos(angle)
		rotatedPivotLocal := r2.Vec{X: pivotLocal.X*c - pivotLocal.Y*s, Y: pivotLocal.X*s + pivotLocal.Y*c}
		blockWorldPos := r2.Sub(pivotWorld, rotatedPivotLocal)
		out := make([]geom.Placed, len(bricks))
		for i, br := range bricks {
			out[i] = geom.Placed{Origin: br, WorldPos: blockWorldPos, WorldAngle: angle}
		}

		return out
	}

	return RotatingBlock{
		Pivot:       pivotWorld,
		PivotLocal:  pivotLocal,
		BaseAngle:   baseAngle,
		Theta1:      theta1,
		Theta2:      theta2,
		Bricks:      bricks,
		PoseAtTheta: poseAt,
		Features:    features,
	}
}

// featureAt fills in the radius/phase of a feature at a block-local
// position, keeping the caller-supplied classification fields.
func featureAt(local, pivotLocal r2.Vec, baseAngle float64, f Feature) Feature {
	rel := r2.Sub(local, pivotLocal)
	f.Radius = math.Hypot(rel.X, rel.Y)
	f.Phi0 = baseAngle + math.Atan2(rel.Y, rel.X)

	return f
}

// studLocalPositions returns a brick's four outer and four inner stud
// positions as r2.Vec, in the same half-stud-unit local frame
// geom.Placed.studCells uses, outer in brick.CornerOrder() order.
func studLocalPositions(br brick.Brick) (outer, inner [4]r2.Vec) {
	minXi, minYi, maxXi, maxYi := br.Footprint()
	minX, minY, maxX, maxY := float64(minXi), float64(minYi), float64(maxXi), float64(maxYi)
	const half = 0.5
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

// boxPOIs returns the six fan POIs: the four footprint corners and the
// two interior points at a fixed offset from center along the long
// axis.
func boxPOIs(br brick.Brick) [6]r2.Vec {
	minXi, minYi, maxXi, maxYi := br.Footprint()
	minX, minY, maxX, maxY := float64(minXi), float64(minYi), float64(maxXi), float64(maxYi)
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	const interiorOffset = 1.5
	pois := [6]r2.Vec{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
	if br.Horizontal {
		pois[4] = r2.Vec{X: cx - interiorOffset, Y: cy}
		pois[5] = r2.Vec{X: cx + interiorOffset, Y: cy}
	} else {
		pois[4] = r2.Vec{X: cx, Y: cy - interiorOffset}
		pois[5] = r2.Vec{X: cx, Y: cy + interiorOffset}
	}

	return pois
}

// AllowableAnglesForBricks computes the set of rotation angles, within
// [rb.Theta1, rb.Theta2], at which rb collides with none of the
// stationary candidate bricks (each already placed in world space).
//
// Per obstacle and per rotating brick, the level dispatch is: a
// same-level obstacle is tested by fans in both directions (the
// rotating brick's POIs against the
// obstacle's box, and the obstacle's POIs against the rotating brick's
// zero-pose box with the resulting interval reversed); an obstacle one
// level above is tested by the rotating brick's own moving studs, the
// outer four allowing clicks; an obstacle one level below is tested by
// the obstacle's stud positions swept against the rotating brick's
// zero-pose box, again with the interval (and any clicks) reversed.
func AllowableAnglesForBricks(rb RotatingBlock, stationary []geom.Placed, addXY float64) interval.List {
	allowed := interval.Full(rb.Theta1, rb.Theta2)
	for _, obstacle := range stationary {
		allowed = interval.And(allowed, allowableForObstacle(rb, obstacle, addXY))
		if allowed.IsEmpty() {
			return allowed
		}
	}

	return interval.CollapseIntervals(allowed)
}

func allowableForObstacle(rb RotatingBlock, obstacle geom.Placed, addXY float64) interval.List {
	allowed := interval.Full(rb.Theta1, rb.Theta2)
	var clicks interval.List

	// The circle-vs-half-plane primitives assume the swept circle is
	// centered on the origin of whatever frame the box is expressed in;
	// shifting the obstacle's box by the pivot's position in the
	// obstacle's local frame re-centers it on the pivot.
	pivotInObs := obstacle.WorldToLocal(rb.Pivot)
	obsBox := shiftBox(obstacle.LocalBox(addXY), pivotInObs)
	obsOuterLocal, obsInnerLocal := studLocalPositions(obstacle.Origin)
	// Feature phases are world-frame; the obstacle's box is axis-aligned
	// in its own frame, rotated by WorldAngle from world.
	rel := -obstacle.WorldAngle

	for bi, b := range rb.Bricks {
		var branch, branchClicks interval.List
		switch int(b.Level) - int(obstacle.Origin.Level) {
		case 0:
			branch = sameLevelSweep(rb, bi, obsBox, obstacle, rel, addXY)
		case -1:
			// Obstacle one level above: the rotating brick's own studs
			// sweep against the obstacle's underside box.
			branch, branchClicks = studsAgainstObstacle(rb, bi, obsBox, obstacle, obsOuterLocal, pivotInObs, rel, addXY)
		case 1:
			// Obstacle one level below: its studs sweep, relatively, against
			// the rotating brick's zero-pose box; the relative motion runs
			// backwards, so the result is reversed.
			branch, branchClicks = obstacleStudsAgainstBrick(rb, bi, obstacle, obsOuterLocal, obsInnerLocal, addXY)
		default:
			continue
		}
		allowed = interval.And(allowed, branch)
		clicks = interval.Or(clicks, branchClicks)
	}

	// Clicks re-join after the whole obstacle's blocking pass: a click
	// position survives even when the general sweep excludes it.
	return interval.Or(allowed, clicks)
}

// sameLevelSweep tests fans both ways: the rotating brick's six POIs
// against the obstacle's box, then
// the obstacle's six POIs against the rotating brick's zero-pose box
// with the interval reversed.
func sameLevelSweep(rb RotatingBlock, brickIdx int, obsBox geom.Box, obstacle geom.Placed, rel float64, addXY float64) interval.List {
	allowed := interval.Full(rb.Theta1, rb.Theta2)
	for _, f := range rb.Features {
		if f.BrickIdx != brickIdx || f.IsStud {
			continue
		}
		var collide interval.List
		if f.Radius <= config.Epsilon {
			collide = blockIntersectionWithRotatingPoint(obsBox, rb.Theta1, rb.Theta2)
		} else {
			collide = blockIntersectionWithMovingPoint(f.Radius, f.Phi0+rel, obsBox, rb.Theta1, rb.Theta2)
		}
		allowed = interval.And(allowed, interval.InverseRadians(collide, interval.Full(rb.Theta1, rb.Theta2)))
		if allowed.IsEmpty() {
			return allowed
		}
	}

	brickBox := pivotFrameBox(rb.Bricks[brickIdx], rb.PivotLocal, addXY)
	for _, poiLocal := range boxPOIs(obstacle.Origin) {
		world := obstacle.LocalToWorld(poiLocal)
		r, phi := pivotFramePolar(rb, world)
		var collide interval.List
		if r <= config.Epsilon {
			collide = blockIntersectionWithRotatingPoint(brickBox, rb.Theta1, rb.Theta2)
		} else {
			collide = blockIntersectionWithCounterMovingPoint(r, phi, brickBox, rb.Theta1, rb.Theta2)
		}
		allowed = interval.And(allowed, interval.InverseRadians(collide, interval.Full(rb.Theta1, rb.Theta2)))
		if allowed.IsEmpty() {
			return allowed
		}
	}

	return allowed
}

// studsAgainstObstacle tests the rotating brick's eight studs against an
// obstacle one level above, outer studs allowing clicks. The second
// return value is the click-admitted interval list, joined in by the
// caller only after the obstacle's full blocking pass.
func studsAgainstObstacle(rb RotatingBlock, brickIdx int, obsBox geom.Box, obstacle geom.Placed, obsOuterLocal [4]r2.Vec, pivotInObs r2.Vec, rel float64, addXY float64) (interval.List, interval.List) {
	// Obstacle outer-stud positions in the pivot-centered obstacle frame,
	// for the connected-stud exclusion of the degenerate rotating stud.
	var obsOuterShifted [4]r2.Vec
	for i, s := range obsOuterLocal {
		obsOuterShifted[i] = r2.Sub(s, pivotInObs)
	}

	allowed := interval.Full(rb.Theta1, rb.Theta2)
	var clicks interval.List
	for fi, f := range rb.Features {
		if f.BrickIdx != brickIdx || !f.IsStud {
			continue
		}
		var collide interval.List
		if f.Radius < config.SnapDistance {
			collide = blockIntersectionWithRotatingStud(obsBox, obsOuterShifted, f.Outer, rb.Theta1, rb.Theta2)
		} else {
			collide = blockIntersectionWithMovingStud(f.Radius, f.Phi0+rel, obsBox, rb.Theta1, rb.Theta2)
		}
		allowed = interval.And(allowed, interval.InverseRadians(collide, interval.Full(rb.Theta1, rb.Theta2)))

		if f.Outer && f.Radius > config.SnapDistance {
			clicks = interval.Or(clicks, admissibleClicks(rb, GetStudIntersectionWithMovingStud(rb, fi, obstacle), f.Radius, obstacle, addXY))
		}
	}

	return allowed, clicks
}

// obstacleStudsAgainstBrick tests an obstacle one level below: each of
// its stud positions, expressed in the pivot frame, sweeps relatively
// against the rotating brick's zero-pose box. Relative motion runs
// opposite to theta, so the per-stud interval is computed in the
// counter-rotating variable; studClicks handles the direction flip for
// click detection directly.
func obstacleStudsAgainstBrick(rb RotatingBlock, brickIdx int, obstacle geom.Placed, obsOuterLocal, obsInnerLocal [4]r2.Vec, addXY float64) (interval.List, interval.List) {
	b := rb.Bricks[brickIdx]
	brickBox := pivotFrameBox(b, rb.PivotLocal, addXY)
	brickOuter, _ := studLocalPositions(b)
	var brickOuterShifted [4]r2.Vec
	for i, s := range brickOuter {
		brickOuterShifted[i] = r2.Sub(s, rb.PivotLocal)
	}

	allowed := interval.Full(rb.Theta1, rb.Theta2)
	var clicks interval.List
	studs := append(obsInnerLocal[:], obsOuterLocal[:]...)
	for si, studLocal := range studs {
		outer := si >= 4
		world := obstacle.LocalToWorld(studLocal)
		r, phi := pivotFramePolar(rb, world)

		var collide interval.List
		if r < config.SnapDistance {
			collide = blockIntersectionWithRotatingStud(brickBox, brickOuterShifted, outer, rb.Theta1, rb.Theta2)
		} else {
			collide = blockIntersectionWithCounterMovingStud(r, phi, brickBox, rb.Theta1, rb.Theta2)
		}
		allowed = interval.And(allowed, interval.InverseRadians(collide, interval.Full(rb.Theta1, rb.Theta2)))

		if outer && r > config.SnapDistance {
			found := studClicks(r, phi, rb.Theta1, rb.Theta2, brickOuterShifted, si-4, true)
			clicks = interval.Or(clicks, admissibleClicks(rb, found, r, obstacle, addXY))
		}
	}

	return allowed, clicks
}

// pivotFrameBox returns a rotating brick's own footprint box, in its
// zero-pose local frame re-centered on the pivot.
func pivotFrameBox(b brick.Brick, pivotLocal r2.Vec, addXY float64) geom.Box {
	zero := geom.Placed{Origin: b}

	return shiftBox(zero.LocalBox(addXY), pivotLocal)
}

func shiftBox(box geom.Box, by r2.Vec) geom.Box {
	return geom.Box{
		MinX: box.MinX - by.X,
		MinY: box.MinY - by.Y,
		MaxX: box.MaxX - by.X,
		MaxY: box.MaxY - by.Y,
	}
}

// pivotFramePolar expresses a world point in polar coordinates of the
// rotating block's zero-pose, pivot-centered frame.
func pivotFramePolar(rb RotatingBlock, world r2.Vec) (radius, phi float64) {
	d := r2.Sub(world, rb.Pivot)
	s, c := math.Sincos(-rb.BaseAngle)
	local := r2.Vec{X: d.X*c - d.Y*s, Y: d.X*s + d.Y*c}

	return math.Hypot(local.X, local.Y), math.Atan2(local.Y, local.X)
}

// admissibleClicks converts detected clicks into the click-admitted
// interval list: an interval of half-width given by the cosine rule
// over (stud radius, stationary stud distance, SnapDistance) around
// each click angle, kept only when placing the whole rotating block at
// that exact angle does not overlap the obstacle. The realizability
// check is the concrete collision test this package has available
// (geom.Intersect) rather than a reference back into the model package,
// which would invert this package's dependency direction.
func admissibleClicks(rb RotatingBlock, clicks []Click, movingRadius float64, obstacle geom.Placed, addXY float64) interval.List {
	var out interval.List
	for _, c := range clicks {
		theta := c.Theta
		if theta < rb.Theta1 || theta > rb.Theta2 {
			continue
		}
		realizable := true
		for _, pb := range rb.PoseAtTheta(theta) {
			if geom.Intersect(pb, obstacle, addXY).Verdict == geom.Overlap {
				realizable = false

				break
			}
		}
		if !realizable {
			continue
		}
		halfWidth := clickHalfWidth(movingRadius, c.Distance)
		lo, hi := theta-halfWidth, theta+halfWidth
		if lo < rb.Theta1 {
			lo = rb.Theta1
		}
		if hi > rb.Theta2 {
			hi = rb.Theta2
		}
		if hi > lo {
			out = interval.Or(out, interval.Full(lo, hi))
		}
	}

	return out
}

// clickHalfWidth is the cosine-rule half-width of a click interval: the
// angle at the pivot subtended by SNAP_DISTANCE between a moving stud at
// radius b and a stationary stud at distance c.
func clickHalfWidth(b, c float64) float64 {
	if b <= config.Epsilon || c <= config.Epsilon {
		return config.Epsilon
	}
	cosA := (b*b + c*c - config.SnapDistance*config.SnapDistance) / (2 * b * c)
	if cosA >= 1 {
		return config.Epsilon
	}
	if cosA <= -1 {
		return math.Pi
	}

	return math.Acos(cosA)
}

// IsClear is the fast predicate that reports whether no feature ever
// collides with any stationary candidate anywhere in the full arc.
func IsClear(rb RotatingBlock, stationary []geom.Placed, addXY float64) bool {
	allowed := AllowableAnglesForBricks(rb, stationary, addXY)

	return allowed.IsFullInterval(rb.Theta1, rb.Theta2)
}

// Click is an additional admissible angular position where a rotating
// outer stud lands within SnapDistance of a stationary outer stud,
// subject to a realizability check at that exact angle by the caller.
// Distance is the stationary
// stud's distance from the pivot, the c side of the cosine rule that
// sizes the click interval.
type Click struct {
	Theta       float64
	StudIdx     int
	ObstacleIdx int
	Distance    float64
}

// GetStudIntersectionWithMovingStud detects clicks for one of rb's own
// outer-stud features against an obstacle's outer studs: it scans
// sampled angles for stud proximity within SnapDistance.
func GetStudIntersectionWithMovingStud(rb RotatingBlock, featureIdx int, obstacle geom.Placed) []Click {
	f := rb.Features[featureIdx]
	if !f.IsStud || !f.Outer {
		return nil
	}
	obstacleOuter, _ := studLocalPositions(obstacle.Origin)
	var targets [4]r2.Vec
	for i, local := range obstacleOuter {
		world := obstacle.LocalToWorld(local)
		r, phi := pivotFramePolar(rb, world)
		targets[i] = r2.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}
	// The feature phase is world-frame; fold it into the same zero-pose
	// pivot frame the targets are expressed in.
	phi0 := f.Phi0 - rb.BaseAngle

	return studClicks(f.Radius, phi0, rb.Theta1, rb.Theta2, targets, f.StudIdx, false)
}

// studClicks samples a stud circling at (radius, phi0+theta) across the
// sweep and reports every angle at which it passes within SnapDistance
// of one of the target stud positions (expressed in the same frame).
// counterRotating flips the stud's direction of travel, for the
// obstacle-below branch where the relative motion runs against theta.
func studClicks(radius, phi0, theta1, theta2 float64, targets [4]r2.Vec, studIdx int, counterRotating bool) []Click {
	var clicks []Click
	const samples = 64
	for s := 0; s <= samples; s++ {
		theta := theta1 + (theta2-theta1)*float64(s)/float64(samples)
		phi := phi0 + theta
		if counterRotating {
			phi = phi0 - theta
		}
		pos := r2.Vec{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)}
		for ti, target := range targets {
			d := math.Hypot(pos.X-target.X, pos.Y-target.Y)
			if d <= config.SnapDistance {
				clicks = append(clicks, Click{
					Theta:       theta,
					StudIdx:     studIdx,
					ObstacleIdx: ti,
					Distance:    math.Hypot(target.X, target.Y),
				})
			}
		}
	}

	return clicks
}
