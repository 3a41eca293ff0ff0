package sheet

// AxisKind selects the row or column axis.
type AxisKind int

const (
	AxisRow AxisKind = iota
	AxisColumn
)

func (k AxisKind) String() string {
	if k == AxisColumn {
		return "column"
	}
	return "row"
}

// Axis owns the per-index sizes of one grid dimension together with the
// offset table derived from them. Every mutation recomputes the offsets
// before returning, so offsets are never observed stale.
type Axis struct {
	sizes       []float32
	offsets     OffsetTable
	defaultSize float32
	minSize     float32
	limit       int
}

// newAxis creates an axis of n entries of defaultSize that may never hold
// more than limit entries.
func newAxis(n int, defaultSize, minSize float32, limit int) *Axis {
	a := &Axis{
		sizes:       make([]float32, n),
		defaultSize: defaultSize,
		minSize:     minSize,
		limit:       limit,
	}
	for i := range a.sizes {
		a.sizes[i] = defaultSize
	}
	a.recompute()
	return a
}

func (a *Axis) recompute() {
	a.offsets = RecomputeOffsets(a.offsets, a.sizes)
}

// Len returns the materialized extent.
func (a *Axis) Len() int { return len(a.sizes) }

// Limit returns the configured maximum extent.
func (a *Axis) Limit() int { return a.limit }

// Size returns the size of entry i, or 0 when i is out of range.
func (a *Axis) Size(i int) float32 {
	if i < 0 || i >= len(a.sizes) {
		return 0
	}
	return a.sizes[i]
}

// Offset returns the pixel position where entry i starts. i may equal Len(),
// which yields the total extent.
func (a *Axis) Offset(i int) float32 {
	if i < 0 || i >= len(a.offsets) {
		return 0
	}
	return a.offsets[i]
}

// Total returns the pixel extent of the whole axis.
func (a *Axis) Total() float32 { return a.offsets.Total() }

// IndexAt maps a pixel position to the entry containing it.
func (a *Axis) IndexAt(px float32) int { return a.offsets.IndexForOffset(px) }

// Offsets returns the current offset table. Callers must not modify it.
func (a *Axis) Offsets() OffsetTable { return a.offsets }

// Sizes returns a copy of the size array.
func (a *Axis) Sizes() []float32 {
	out := make([]float32, len(a.sizes))
	copy(out, a.sizes)
	return out
}

// Grow appends up to n default-sized entries without passing the limit and
// returns how many were added.
func (a *Axis) Grow(n int) int {
	if n <= 0 {
		return 0
	}
	room := a.limit - len(a.sizes)
	if n > room {
		n = room
	}
	if n <= 0 {
		return 0
	}
	for range n {
		a.sizes = append(a.sizes, a.defaultSize)
	}
	a.recompute()
	return n
}

// Insert splices a default-sized entry in at index i (0 <= i <= Len()).
// It refuses when the axis is already at its limit.
func (a *Axis) Insert(i int) bool {
	if i < 0 || i > len(a.sizes) || len(a.sizes) >= a.limit {
		return false
	}
	a.sizes = append(a.sizes, 0)
	copy(a.sizes[i+1:], a.sizes[i:])
	a.sizes[i] = a.defaultSize
	a.recompute()
	return true
}

// Delete removes entry i. The last remaining entry is never removed.
func (a *Axis) Delete(i int) bool {
	if i < 0 || i >= len(a.sizes) || len(a.sizes) <= 1 {
		return false
	}
	a.sizes = append(a.sizes[:i], a.sizes[i+1:]...)
	a.recompute()
	return true
}

// Resize sets the size of entry i, clamped to the minimum size.
// It reports whether the size changed.
func (a *Axis) Resize(i int, size float32) bool {
	if i < 0 || i >= len(a.sizes) {
		return false
	}
	if size < a.minSize {
		size = a.minSize
	}
	if a.sizes[i] == size {
		return false
	}
	a.sizes[i] = size
	a.recompute()
	return true
}
