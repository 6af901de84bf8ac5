package interval_test

import (
	"testing"

	"github.com/katalvlaran/brickcount/interval"
)

// BenchmarkAnd measures the parallel-sweep intersection over two lists
// of the size the angle-mapping grid typically produces per cell.
// Complexity: O(|A| + |B|).
func BenchmarkAnd(b *testing.B) {
	a := interval.List{Intervals: make([]interval.Endpoint, 0, 8)}
	c := interval.List{Intervals: make([]interval.Endpoint, 0, 8)}
	for i := 0; i < 8; i++ {
		lo := float64(i)
		a.Intervals = append(a.Intervals, interval.Endpoint{Lo: lo, Hi: lo + 0.6})
		c.Intervals = append(c.Intervals, interval.Endpoint{Lo: lo + 0.3, Hi: lo + 0.9})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = interval.And(a, c)
	}
}

// BenchmarkVectorAppend measures filling one grid's worth of arena slots
// in a single append-only pass, the access pattern spec'd for the
// interval-list vector.
func BenchmarkVectorAppend(b *testing.B) {
	const slots = 1024
	full := interval.Full(-1, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := interval.NewVector(slots, 2)
		for j := 0; j < slots; j++ {
			v.Append(full)
		}
	}
}
