package sheet

// ViewportCalculator maps a viewport onto the inclusive index range that must
// be drawn, buffer included, and grows the axes when the range nears their
// materialized edge.
type ViewportCalculator struct {
	Buffer    int          // Extra rows/columns drawn past the strict window
	RowGrowth GrowthPolicy // Row axis growth
	ColGrowth GrowthPolicy // Column axis growth
}

// Compute returns the visible range for vp and reports how many rows and
// columns were appended by growth. Growth is followed by exactly one
// recomputation pass; Plan sizes the batch so that pass cannot trigger again,
// which makes Compute idempotent for an unchanged viewport.
func (vc ViewportCalculator) Compute(rows, cols *Axis, vp Viewport) (r VisibleRange, grewRows, grewCols int) {
	r = vc.window(rows, cols, vp)

	rowPlan := vc.RowGrowth.Plan(rows, r.RowEnd, vp.ScrollTop+vp.Height, vc.Buffer)
	colPlan := vc.ColGrowth.Plan(cols, r.ColEnd, vp.ScrollLeft+vp.Width, vc.Buffer)
	if rowPlan == 0 && colPlan == 0 {
		return r, 0, 0
	}

	grewRows = rows.Grow(rowPlan)
	grewCols = cols.Grow(colPlan)
	if grewRows > 0 || grewCols > 0 {
		r = vc.window(rows, cols, vp)
	}
	return r, grewRows, grewCols
}

// window computes the buffered, clamped range against the current extents.
func (vc ViewportCalculator) window(rows, cols *Axis, vp Viewport) VisibleRange {
	rowStart, rowEnd := vc.span(rows, vp.ScrollTop, vp.Height)
	colStart, colEnd := vc.span(cols, vp.ScrollLeft, vp.Width)
	return VisibleRange{RowStart: rowStart, RowEnd: rowEnd, ColStart: colStart, ColEnd: colEnd}
}

func (vc ViewportCalculator) span(a *Axis, scroll, length float32) (start, end int) {
	last := a.Len() - 1
	if scroll < 0 {
		scroll = 0
	}
	if length < 0 {
		length = 0
	}
	buffer := max(vc.Buffer, 0)
	first, final := a.IndexAt(scroll), a.IndexAt(scroll+length)
	// Compare before adding so an oversized buffer cannot overflow.
	start = first - min(buffer, first)
	end = last
	if buffer < last-final {
		end = final + buffer
	}
	start = min(start, end)
	return start, end
}
