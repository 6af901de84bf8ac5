package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/brickcount/interval"
)

// TestList_Contains verifies the linear-scan semantics: the first
// interval whose upper endpoint is >= x decides, via its lower endpoint,
// whether x is contained.
func TestList_Contains(t *testing.T) {
	l := interval.List{Intervals: []interval.Endpoint{{Lo: -1, Hi: 1}, {Lo: 2, Hi: 3}}}

	assert.True(t, l.Contains(0))
	assert.True(t, l.Contains(-1))
	assert.True(t, l.Contains(1))
	assert.True(t, l.Contains(2.5))
	assert.False(t, l.Contains(1.5))
	assert.False(t, l.Contains(10))
}

// TestList_IsFullInterval verifies the definition: exactly one interval
// whose endpoints equal the reference within epsilon.
func TestList_IsFullInterval(t *testing.T) {
	assert.True(t, interval.Full(-1, 1).IsFullInterval(-1, 1))
	assert.False(t, interval.Full(-1, 1).IsFullInterval(-1, 2))

	two := interval.List{Intervals: []interval.Endpoint{{Lo: -1, Hi: 0}, {Lo: 0, Hi: 1}}}
	assert.False(t, two.IsFullInterval(-1, 1))
}

// TestList_Midpoint checks the representative-of-union helper used by
// unionfind.GetRepresentativeOfUnion.
func TestList_Midpoint(t *testing.T) {
	l := interval.List{Intervals: []interval.Endpoint{{Lo: 0, Hi: 2}, {Lo: 4, Hi: 10}}}

	assert.Equal(t, 1.0, l.Midpoint(0.5))
	assert.Equal(t, 7.0, l.Midpoint(5))
	// x outside any interval falls back to the first interval's midpoint.
	assert.Equal(t, 1.0, l.Midpoint(100))
}

// TestReverse_Involution: Reverse is its own inverse.
func TestReverse_Involution(t *testing.T) {
	l := interval.List{Intervals: []interval.Endpoint{{Lo: -3, Hi: -1}, {Lo: 0, Hi: 2}}}

	once := interval.Reverse(l)
	twice := interval.Reverse(once)

	assert.Equal(t, l.Intervals, twice.Intervals)
}

// TestReverse_Empty confirms reversing the empty list is still empty.
func TestReverse_Empty(t *testing.T) {
	assert.True(t, interval.Reverse(interval.Empty()).IsEmpty())
}

// TestCollapseIntervals_MergesTouching verifies adjacent or epsilon-close
// intervals merge into one.
func TestCollapseIntervals_MergesTouching(t *testing.T) {
	l := interval.List{Intervals: []interval.Endpoint{{Lo: 0, Hi: 1}, {Lo: 1, Hi: 2}, {Lo: 3, Hi: 4}}}

	out := interval.CollapseIntervals(l)

	want := []interval.Endpoint{{Lo: 0, Hi: 2}, {Lo: 3, Hi: 4}}
	assert.Equal(t, want, out.Intervals)
}

// TestClone_IsIndependent ensures Clone does not alias the backing slice.
func TestClone_IsIndependent(t *testing.T) {
	l := interval.Full(0, 1)
	c := l.Clone()
	c.Intervals[0].Hi = 99

	assert.Equal(t, 1.0, l.Intervals[0].Hi)
}
