package sheet

// GrowthPolicy decides when an axis must materialize more entries because
// the visible window is approaching its edge. Growth happens in batches so
// the O(n) offset recompute is amortized across many scroll events.
type GrowthPolicy struct {
	Margin int // Grow when the visible end index is within Margin of the extent
	Batch  int // Entries appended per growth step
}

// Plan returns how many entries to append to axis so that a window ending
// at pixel position endPx, plus buffer entries, stays clear of the margin.
// visibleEnd is the buffered end index computed against the current extent.
// The result is a multiple of Batch (before capping at the axis limit) and
// 0 when no growth is needed or possible.
func (p GrowthPolicy) Plan(a *Axis, visibleEnd int, endPx float32, buffer int) int {
	n := a.Len()
	if n >= a.Limit() || visibleEnd < n-p.Margin {
		return 0
	}

	room := a.Limit() - n

	// Entries needed to cover the pixel gap past the current extent.
	need := 0
	if gap := endPx - a.Total(); gap > 0 && a.defaultSize > 0 {
		if gap/a.defaultSize >= float32(room) {
			return room
		}
		need = int(gap / a.defaultSize)
		if float32(need)*a.defaultSize < gap {
			need++
		}
	}
	want := min(need, room) + min(max(buffer, 0), room) + min(p.Margin, room) + 1

	batch := max(p.Batch, 1)
	if batch >= room || want >= room {
		return room
	}
	return min(((want+batch-1)/batch)*batch, room)
}
