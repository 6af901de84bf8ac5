package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/brickcount/interval"
)

// TestFromWrappingPair_NormalAndJumping covers both cases: a1 < a2
// (normal) and a1 > a2 (jumping, wraps through +-pi).
func TestFromWrappingPair_NormalAndJumping(t *testing.T) {
	normal := interval.FromWrappingPair(-1, 1, -math.Pi, math.Pi)
	assert.Equal(t, []interval.Endpoint{{Lo: -1, Hi: 1}}, normal.Intervals)

	jumping := interval.FromWrappingPair(2, -2, -math.Pi, math.Pi)
	want := []interval.Endpoint{{Lo: -math.Pi, Hi: -2}, {Lo: 2, Hi: math.Pi}}
	assert.Equal(t, want, jumping.Intervals)
}

// TestInverseRadians_DeMorgan: the complement of the complement
// recovers the input, modulo endpoint merging.
func TestInverseRadians_DeMorgan(t *testing.T) {
	ref := interval.Full(-math.Pi, math.Pi)
	l := interval.List{Intervals: []interval.Endpoint{{Lo: -2, Hi: -1}, {Lo: 0.5, Hi: 2}}}

	once := interval.InverseRadians(l, ref)
	twice := interval.InverseRadians(once, ref)

	assert.InDeltaSlice(t, endpointFloats(l.Intervals), endpointFloats(twice.Intervals), 1e-9)
}

// TestInverseRadians_FullReferenceYieldsEmpty confirms the complement of
// the full reference interval within itself is empty.
func TestInverseRadians_FullReferenceYieldsEmpty(t *testing.T) {
	ref := interval.Full(-1, 1)
	got := interval.InverseRadians(ref, ref)
	assert.True(t, got.IsEmpty())
}

// TestInverseRadians_EmptyYieldsFull confirms the complement of the empty
// set within a reference is the reference itself.
func TestInverseRadians_EmptyYieldsFull(t *testing.T) {
	ref := interval.Full(-1, 1)
	got := interval.InverseRadians(interval.Empty(), ref)
	assert.True(t, got.IsFullInterval(-1, 1))
}

// TestToOriginalInterval_LinearRescale checks the affine rescale
// between a local sweep frame and the reference frame.
func TestToOriginalInterval_LinearRescale(t *testing.T) {
	local := interval.Full(0, 1) // local frame [0, 1]
	got := interval.ToOriginalInterval(local, 0, 1, -10, 10)

	assert.Equal(t, []interval.Endpoint{{Lo: -10, Hi: 10}}, got.Intervals)
}

// TestToOriginalInterval_Midpoint checks a sub-interval maps to the
// proportionally corresponding sub-interval of the target frame.
func TestToOriginalInterval_Midpoint(t *testing.T) {
	local := interval.List{Intervals: []interval.Endpoint{{Lo: 0.25, Hi: 0.75}}}
	got := interval.ToOriginalInterval(local, 0, 1, 0, 100)

	assert.Len(t, got.Intervals, 1)
	assert.InDelta(t, 25, got.Intervals[0].Lo, 1e-9)
	assert.InDelta(t, 75, got.Intervals[0].Hi, 1e-9)
}

func endpointFloats(es []interval.Endpoint) []float64 {
	out := make([]float64, 0, 2*len(es))
	for _, e := range es {
		out = append(out, e.Lo, e.Hi)
	}

	return out
}
