package sheet

import "sort"

// OffsetTable holds cumulative pixel offsets for a size array.
// For n sizes the table has n+1 entries: offset[0] is 0 and
// offset[i] is the sum of sizes[0..i).
type OffsetTable []float32

// RecomputeOffsets rebuilds the cumulative table for sizes from scratch.
// The previous table's backing array is reused when it is large enough.
func RecomputeOffsets(dst OffsetTable, sizes []float32) OffsetTable {
	if cap(dst) < len(sizes)+1 {
		dst = make(OffsetTable, len(sizes)+1)
	}
	dst = dst[:len(sizes)+1]
	dst[0] = 0
	for i, s := range sizes {
		dst[i+1] = dst[i] + s
	}
	return dst
}

// Count returns the number of indexed entries (one less than the table length).
func (t OffsetTable) Count() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// Total returns the pixel extent covered by every entry.
func (t OffsetTable) Total() float32 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// IndexForOffset returns the index i with t[i] <= px < t[i+1].
// Positions before the table map to 0 and positions at or past the end map
// to the last index. The result is always in [0, Count()) for a non-empty
// table; an empty table yields 0.
func (t OffsetTable) IndexForOffset(px float32) int {
	n := t.Count()
	if n == 0 || px <= 0 {
		return 0
	}
	if px >= t[n] {
		return n - 1
	}
	// First entry strictly greater than px, minus one, is the largest i with t[i] <= px.
	i := sort.Search(n+1, func(i int) bool { return t[i] > px }) - 1
	return clampi(i, 0, n-1)
}
