package interval

import "fmt"

// indicator locates one logical slot's intervals inside Vector's flat
// backing array: Offset is the starting index into Vector.data, Count is
// the number of Endpoints belonging to that slot.
type indicator struct {
	Offset, Count int
}

// Vector is an arena-allocated "vector of interval lists": a flat array
// of intervals plus a parallel indicator array mapping logical index ->
// (offset, count). The grid is filled in a single pass and peak memory
// matters, so one backing allocation replaces a per-cell small-vector;
// the per-slot span is ragged (interval lists vary in length), which is
// why the indicator stores (offset, count) rather than deriving spans
// from a fixed row width.
//
// Insertion is strictly append-only: every logical index 0..N-1 must be
// written exactly once, in order. Capacity is pre-sized to
// indicatorSize * maxLoadFactor + 512; Append panics on overflow past
// that capacity — grid overflow is a bug, not a recoverable error.
type Vector struct {
	data       []Endpoint
	indicators []indicator
	written    int
	cap        int
}

// NewVector allocates a Vector for exactly indicatorSize logical slots,
// sized for an average of maxLoadFactor intervals per slot.
func NewVector(indicatorSize int, maxLoadFactor float64) *Vector {
	capacity := int(float64(indicatorSize)*maxLoadFactor) + 512
	return &Vector{
		data:       make([]Endpoint, 0, capacity),
		indicators: make([]indicator, 0, indicatorSize),
		cap:        capacity,
	}
}

// Append writes the next logical slot's interval list. It must be called
// exactly indicatorSize times, once per logical index in increasing
// order.
//
// Panics if the backing arena would overflow its preallocated capacity:
// the caller mis-sized the Vector or fed it a pathologically dense
// list.
func (v *Vector) Append(l List) {
	if len(v.data)+len(l.Intervals) > v.cap {
		panic(fmt.Sprintf("interval: Vector arena overflow: cap=%d used=%d incoming=%d", v.cap, len(v.data), len(l.Intervals)))
	}
	off := len(v.data)
	v.data = append(v.data, l.Intervals...)
	v.indicators = append(v.indicators, indicator{Offset: off, Count: len(l.Intervals)})
	v.written++
}

// Len returns the number of logical slots written so far.
func (v *Vector) Len() int { return len(v.indicators) }

// At returns the List stored at logical index i. Panics if i is out of
// range.
func (v *Vector) At(i int) List {
	ind := v.indicators[i]
	// Return a read-only view; callers that need to mutate clone first.
	return List{Intervals: v.data[ind.Offset : ind.Offset+ind.Count]}
}

// IntervalCountAt returns the number of intervals stored at logical
// index i without materializing a List.
func (v *Vector) IntervalCountAt(i int) int {
	return v.indicators[i].Count
}

// GlobalIntervalIndex returns the absolute index, across the whole
// arena, of the j-th interval stored at logical slot i. This is the id
// space unionfind.IntervalUnionFind assigns union-find ids over: each
// stored interval is one union-find element.
func (v *Vector) GlobalIntervalIndex(i, j int) int {
	return v.indicators[i].Offset + j
}

// TotalIntervals returns the total number of intervals written across
// every slot — the size of the union-find element space.
func (v *Vector) TotalIntervals() int {
	return len(v.data)
}

// EndpointAt returns the raw Endpoint at a global arena index, as
// produced by GlobalIntervalIndex.
func (v *Vector) EndpointAt(globalIdx int) Endpoint {
	return v.data[globalIdx]
}
