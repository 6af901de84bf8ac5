package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brickcount/interval"
)

// TestVector_AppendAndRead verifies the append-only (offset, count)
// indicator scheme: every logical slot is written once, in order, and
// At/IntervalCountAt/GlobalIntervalIndex recover it correctly.
func TestVector_AppendAndRead(t *testing.T) {
	v := interval.NewVector(3, 2)

	v.Append(interval.Empty())
	v.Append(interval.Full(0, 1))
	v.Append(interval.List{Intervals: []interval.Endpoint{{Lo: 0, Hi: 1}, {Lo: 2, Hi: 3}}})

	require.Equal(t, 3, v.Len())
	assert.Equal(t, 0, v.IntervalCountAt(0))
	assert.Equal(t, 1, v.IntervalCountAt(1))
	assert.Equal(t, 2, v.IntervalCountAt(2))

	assert.Equal(t, []interval.Endpoint{{Lo: 0, Hi: 1}}, v.At(1).Intervals)
	assert.Equal(t, 3, v.TotalIntervals())
}

// TestVector_GlobalIntervalIndex_IsContiguousAcrossSlots checks that
// global arena indices are assigned in append order, which
// unionfind.IntervalUnionFind relies on as its union-find element space.
func TestVector_GlobalIntervalIndex_IsContiguousAcrossSlots(t *testing.T) {
	v := interval.NewVector(2, 2)
	v.Append(interval.List{Intervals: []interval.Endpoint{{Lo: 0, Hi: 1}, {Lo: 2, Hi: 3}}})
	v.Append(interval.Full(5, 6))

	assert.Equal(t, 0, v.GlobalIntervalIndex(0, 0))
	assert.Equal(t, 1, v.GlobalIntervalIndex(0, 1))
	assert.Equal(t, 2, v.GlobalIntervalIndex(1, 0))
	assert.Equal(t, interval.Endpoint{Lo: 5, Hi: 6}, v.EndpointAt(2))
}

// TestVector_Append_PanicsOnOverflow: a Vector sized too small for its
// incoming load panics rather than silently reallocating.
func TestVector_Append_PanicsOnOverflow(t *testing.T) {
	v := interval.NewVector(1, 0) // capacity = 0*1 + 512

	huge := make([]interval.Endpoint, 600)
	assert.Panics(t, func() {
		v.Append(interval.List{Intervals: huge})
	})
}
