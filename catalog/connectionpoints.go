package catalog

import "github.com/katalvlaran/brickcount/brick"

// ConnectionPointsAbove enumerates the block's usable connection points
// whose stud points up (available to connect to a block placed one level
// above), in canonical corner order.
func (b Block) ConnectionPointsAbove() []brick.ConnectionPoint {
	return b.connectionPoints(true)
}

// ConnectionPointsBelow enumerates the block's usable connection points
// whose stud points down.
func (b Block) ConnectionPointsBelow() []brick.ConnectionPoint {
	return b.connectionPoints(false)
}

func (b Block) connectionPoints(studUp bool) []brick.ConnectionPoint {
	var out []brick.ConnectionPoint
	for i := range b.Bricks {
		for _, c := range brick.CornerOrder() {
			cp := brick.ConnectionPoint{BrickIndex: i, Corner: c, StudUp: studUp}
			if b.isBlocked(cp) || b.isAngleLocked(cp) {
				continue
			}
			out = append(out, cp)
		}
	}

	return out
}

// isBlocked reports whether a stud of some other brick in the block,
// one level up/down from cp's owner, would occupy the same cell as cp's
// stud — making cp unusable as an external connection point.
func (b Block) isBlocked(cp brick.ConnectionPoint) bool {
	owner := b.Bricks[cp.BrickIndex]
	dx, dy := cp.WorldOffset(owner)
	targetLevel := owner.Level + 1
	if !cp.StudUp {
		targetLevel = owner.Level - 1
	}
	for i, other := range b.Bricks {
		if i == cp.BrickIndex || other.Level != targetLevel {
			continue
		}
		minX, minY, maxX, maxY := other.Footprint()
		if dx > minX && dx < maxX && dy > minY && dy < maxY {
			return true
		}
	}

	return false
}

// isAngleLocked reports whether cp touches another brick of the same
// block at the connecting level in a way that pins the angle (any
// adjacent touching connection makes this a type-0 / locked connection
// point).
func (b Block) isAngleLocked(cp brick.ConnectionPoint) bool {
	owner := b.Bricks[cp.BrickIndex]
	dx, dy := cp.WorldOffset(owner)
	targetLevel := owner.Level + 1
	if !cp.StudUp {
		targetLevel = owner.Level - 1
	}
	for i, other := range b.Bricks {
		if i == cp.BrickIndex || other.Level != targetLevel {
			continue
		}
		minX, minY, maxX, maxY := other.Footprint()
		// Touching (on the boundary, not strictly inside) at the stud
		// cell pins rotation: the two bricks share an edge through this
		// stud, so no continuous rotation is possible here.
		onBoundary := (dx == minX || dx == maxX) && dy >= minY && dy <= maxY ||
			(dy == minY || dy == maxY) && dx >= minX && dx <= maxX
		if onBoundary {
			return true
		}
	}

	return false
}
