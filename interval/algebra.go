package interval

// And returns the set-intersection of two
// interval lists via a parallel sweep. An output interval
// [max(a_i, b_j), min(A_i, B_j)] is emitted only when its width exceeds
// config.Epsilon.
func And(a, b List) List {
	var out []Endpoint
	i, j := 0, 0
	for i < len(a.Intervals) && j < len(b.Intervals) {
		ai, bj := a.Intervals[i], b.Intervals[j]
		lo := maxF(ai.Lo, bj.Lo)
		hi := minF(ai.Hi, bj.Hi)
		if hi-lo > epsilonWidth {
			out = append(out, Endpoint{Lo: lo, Hi: hi})
		}
		if ai.Hi < bj.Hi {
			i++
		} else {
			j++
		}
	}

	return List{Intervals: out}
}

// AndAll intersects every list in ls, short-circuiting to Empty() as
// soon as an empty intermediate result is reached.
func AndAll(ref List, ls ...List) List {
	acc := ref
	for _, l := range ls {
		acc = And(acc, l)
		if acc.IsEmpty() {
			return Empty()
		}
	}

	return acc
}

// Or returns the set-union of two interval lists, merging
// overlapping or touching intervals.
func Or(a, b List) List {
	merged := make([]Endpoint, 0, len(a.Intervals)+len(b.Intervals))
	merged = append(merged, a.Intervals...)
	merged = append(merged, b.Intervals...)
	sortEndpoints(merged)
	if len(merged) == 0 {
		return Empty()
	}

	out := []Endpoint{merged[0]}
	for _, iv := range merged[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi || nearlyEqual(iv.Lo, last.Hi) {
			if iv.Hi > last.Hi {
				last.Hi = iv.Hi
			}
			continue
		}
		out = append(out, iv)
	}

	return List{Intervals: out}
}

func sortEndpoints(e []Endpoint) {
	// Simple insertion sort: interval counts in this engine are always
	// small (a handful per grid cell), so an O(n^2) sort keeps this
	// dependency-free and allocation-free for the common sizes.
	for i := 1; i < len(e); i++ {
		for j := i; j > 0 && e[j].Lo < e[j-1].Lo; j-- {
			e[j], e[j-1] = e[j-1], e[j]
		}
	}
}

const epsilonWidth = 1e-9

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
