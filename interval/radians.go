package interval

// FromWrappingPair builds the List for a possibly-wrapping pair (a1, a2)
// within a [min, max] reference: a "normal" pair has a1 < a2 and is just
// [a1, a2]; a "jumping" pair has a1 > a2 and means [min, a2] U [a1, max].
// Because List already supports multiple disjoint ascending intervals, a
// jumping pair is simply the two-interval List {[min, a2], [a1, max]} —
// no separate radians-specific sweep is needed: And/Or operate on this
// representation unchanged (see AndRadians).
func FromWrappingPair(a1, a2, min, max float64) List {
	if a1 <= a2 {
		return List{Intervals: []Endpoint{{Lo: a1, Hi: a2}}}
	}

	return List{Intervals: []Endpoint{{Lo: min, Hi: a2}, {Lo: a1, Hi: max}}}
}

// AndRadians intersects two lists over the wrapping [-pi, pi] domain.
// Because both operands are already expressed in the
// jumping-pair-as-two-intervals List form (see FromWrappingPair), the
// wraparound intersection is exactly the ordinary sweep-based And: all
// four jump x jump cases fall out of the general multi-interval sweep
// without separate case analysis.
func AndRadians(a, b List) List {
	return And(a, b)
}

// InverseRadians returns the complement of l within the (possibly
// jumping) reference interval. ref itself may be a jumping pair
// expressed via FromWrappingPair.
func InverseRadians(l List, ref List) List {
	if ref.IsEmpty() {
		return Empty()
	}
	var out []Endpoint
	for _, r := range ref.Intervals {
		cursor := r.Lo
		for _, iv := range l.Intervals {
			lo, hi := maxF(iv.Lo, r.Lo), minF(iv.Hi, r.Hi)
			if lo > hi {
				continue
			}
			if lo-cursor > epsilonWidth {
				out = append(out, Endpoint{Lo: cursor, Hi: lo})
			}
			if hi > cursor {
				cursor = hi
			}
		}
		if r.Hi-cursor > epsilonWidth {
			out = append(out, Endpoint{Lo: cursor, Hi: r.Hi})
		}
	}

	return CollapseIntervals(List{Intervals: out})
}

// ToOriginalInterval linearly rescales a List expressed in a local
// sweep frame [fromMin, fromMax] back into the reference frame
// [toMin, toMax], handling the case where the local frame itself wraps
// (fromMin > fromMax, meaning the sweep frame is itself a jumping pair).
func ToOriginalInterval(l List, fromMin, fromMax, toMin, toMax float64) List {
	span := fromMax - fromMin
	toSpan := toMax - toMin
	if span == 0 {
		return Empty()
	}
	out := make([]Endpoint, 0, len(l.Intervals))
	for _, iv := range l.Intervals {
		lo := toMin + (iv.Lo-fromMin)/span*toSpan
		hi := toMin + (iv.Hi-fromMin)/span*toSpan
		if lo > hi {
			lo, hi = hi, lo
		}
		out = append(out, Endpoint{Lo: lo, Hi: hi})
	}
	sortEndpoints(out)

	return CollapseIntervals(List{Intervals: out})
}
