// Package interval implements the closed-interval algebra and the
// arena-backed interval-list vector the angle-mapping engine stores its
// per-grid-cell allowed-angle sets in.
//
// List represents an ordered sequence of disjoint closed intervals
// [a_i, b_i] with a_i <= b_i < a_i+1: a small, value-semantics type with
// operations implemented as free functions / methods rather than a deep
// class hierarchy.
package interval

import "github.com/katalvlaran/brickcount/config"

// Endpoint is a single closed-interval boundary pair.
type Endpoint struct {
	Lo, Hi float64
}

// Width returns Hi - Lo.
func (e Endpoint) Width() float64 { return e.Hi - e.Lo }

// List is a sorted, disjoint sequence of Endpoints. The zero value is the
// empty list.
type List struct {
	Intervals []Endpoint
}

// Full returns the singleton list containing exactly [lo, hi], used as
// a reference interval.
func Full(lo, hi float64) List {
	return List{Intervals: []Endpoint{{Lo: lo, Hi: hi}}}
}

// Empty returns the empty interval list.
func Empty() List { return List{} }

// IsEmpty reports whether l has no intervals.
func (l List) IsEmpty() bool { return len(l.Intervals) == 0 }

// Clone returns a deep copy of l.
func (l List) Clone() List {
	out := make([]Endpoint, len(l.Intervals))
	copy(out, l.Intervals)

	return List{Intervals: out}
}

// Contains reports whether x lies in some interval of l: a linear scan
// until the first interval whose upper endpoint is >= x, then a test
// whether its lower endpoint is <= x.
func (l List) Contains(x float64) bool {
	for _, iv := range l.Intervals {
		if iv.Hi >= x {
			return iv.Lo <= x
		}
	}

	return false
}

// IsFullInterval reports whether l consists of exactly one interval
// whose endpoints equal lo and hi within config.Epsilon.
func (l List) IsFullInterval(lo, hi float64) bool {
	if len(l.Intervals) != 1 {
		return false
	}
	iv := l.Intervals[0]

	return nearlyEqual(iv.Lo, lo) && nearlyEqual(iv.Hi, hi)
}

// Midpoint returns the midpoint of the interval containing x, or the
// midpoint of the first interval if the list is non-empty and x is not
// contained in any interval (fallback for
// unionfind.GetRepresentativeOfUnion).
func (l List) Midpoint(x float64) float64 {
	for _, iv := range l.Intervals {
		if x >= iv.Lo && x <= iv.Hi {
			return (iv.Lo + iv.Hi) / 2
		}
	}
	if len(l.Intervals) > 0 {
		iv := l.Intervals[0]

		return (iv.Lo + iv.Hi) / 2
	}

	return x
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= config.Epsilon
}

// CollapseIntervals merges intervals whose endpoints match within
// config.Epsilon. Intervals must already be sorted by Lo.
func CollapseIntervals(l List) List {
	if len(l.Intervals) == 0 {
		return l
	}
	out := make([]Endpoint, 0, len(l.Intervals))
	cur := l.Intervals[0]
	for _, iv := range l.Intervals[1:] {
		if nearlyEqual(cur.Hi, iv.Lo) || cur.Hi >= iv.Lo {
			if iv.Hi > cur.Hi {
				cur.Hi = iv.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	out = append(out, cur)

	return List{Intervals: out}
}

// Reverse returns {[-b, -a] : [a, b] in l}, re-sorted so the result
// stays ascending. It is its own inverse.
func Reverse(l List) List {
	n := len(l.Intervals)
	out := make([]Endpoint, n)
	for i, iv := range l.Intervals {
		out[n-1-i] = Endpoint{Lo: -iv.Hi, Hi: -iv.Lo}
	}

	return List{Intervals: out}
}
