package sheet

// OnPointerDown handles a press on a cell or header.
//
//	plain        select the cell and make it the anchor
//	ctrl         toggle the cell, keeping the rest of the selection
//	shift        select the rectangle from the anchor to the cell
//	double-click select the cell and start editing it
//
// Headers (see HeaderIndex) select whole rows or columns; ctrl adds to the
// selection. A press outside the extent is ignored and reports false.
func (g *Grid) OnPointerDown(row, col int, mods Modifiers, double bool) bool {
	g.applyDrag()
	rows, cols := g.Extent()
	switch {
	case row == HeaderIndex && col == HeaderIndex:
		g.sel.SelectAll(rows, cols)
	case row == HeaderIndex:
		if col < 0 || col >= cols {
			return false
		}
		g.sel.SelectColumn(col, rows, mods.Ctrl)
	case col == HeaderIndex:
		if row < 0 || row >= rows {
			return false
		}
		g.sel.SelectRow(row, cols, mods.Ctrl)
	default:
		c := Coord{Row: row, Col: col}
		if !g.inBounds(c) {
			return false
		}
		if !g.SelectCell(row, col, mods) {
			return false
		}
		if double {
			g.BeginEdit(row, col)
		}
		g.dragging = !mods.Ctrl && !double
	}
	g.redraw = true
	return true
}

// OnPointerMove extends a drag selection from the anchor to the cell under the
// pointer. Moves coalesce per frame; positions past the extent clamp to it.
func (g *Grid) OnPointerMove(row, col int, mods Modifiers) {
	if !g.dragging {
		return
	}
	g.scheduleDragTo(Coord{Row: row, Col: col})
}

// OnPointerUp ends a drag. The final position replaces any pending move.
func (g *Grid) OnPointerUp(row, col int, mods Modifiers) {
	if !g.dragging {
		return
	}
	g.dragging = false
	g.scheduleDragTo(Coord{Row: row, Col: col})
}

// Dragging reports whether a drag selection is in progress.
func (g *Grid) Dragging() bool { return g.dragging }

func (g *Grid) scheduleDragTo(to Coord) {
	g.dragTarget = to
	g.dragPending = true
	g.cancelDrag = g.sched.Schedule(EventPointer, g.applyDrag)
}

// dropDrag ends any drag and discards its pending update.
func (g *Grid) dropDrag() {
	g.dragging = false
	g.unscheduleDrag()
}

func (g *Grid) unscheduleDrag() {
	g.dragPending = false
	if g.cancelDrag != nil {
		g.cancelDrag()
		g.cancelDrag = nil
	}
}

// applyDrag extends the selection to the latest drag target. A press flushes
// it first so a quick release-then-press keeps the dragged range.
func (g *Grid) applyDrag() {
	if !g.dragPending {
		return
	}
	g.unscheduleDrag()
	anchor, ok := g.sel.Anchor()
	if !ok {
		return
	}
	g.sel.SelectRange(anchor, g.clampCoord(g.dragTarget))
	g.redraw = true
}

// SelectCell applies a cell selection with the same modifier semantics as a
// pointer press, without starting a drag.
func (g *Grid) SelectCell(row, col int, mods Modifiers) bool {
	c := Coord{Row: row, Col: col}
	if !g.inBounds(c) {
		return false
	}
	anchor, hasAnchor := g.sel.Anchor()
	switch {
	case mods.Shift && hasAnchor:
		g.sel.SelectRange(anchor, c)
	case mods.Ctrl:
		g.sel.Toggle(c)
	default:
		g.sel.SelectPoint(c, false)
	}
	g.redraw = true
	return true
}

// SelectRange replaces the selection with the rectangle between two cells,
// clamped to the extent.
func (g *Grid) SelectRange(r0, c0, r1, c1 int) {
	g.sel.SelectRange(g.clampCoord(Coord{Row: r0, Col: c0}), g.clampCoord(Coord{Row: r1, Col: c1}))
	g.redraw = true
}

// SelectRow selects an entire row of the current column extent.
func (g *Grid) SelectRow(row int, additive bool) bool {
	return g.OnPointerDown(row, HeaderIndex, Modifiers{Ctrl: additive}, false)
}

// SelectColumn selects an entire column of the current row extent.
func (g *Grid) SelectColumn(col int, additive bool) bool {
	return g.OnPointerDown(HeaderIndex, col, Modifiers{Ctrl: additive}, false)
}

// RowFullySelected reports whether every column of row is selected.
func (g *Grid) RowFullySelected(row int) bool {
	return g.sel.RowFullySelected(row, g.cols.Len())
}

// ColumnFullySelected reports whether every row of col is selected.
func (g *Grid) ColumnFullySelected(col int) bool {
	return g.sel.ColumnFullySelected(col, g.rows.Len())
}

// OnResizeHandleDrag resizes row or column index so its trailing edge follows
// the pointer. Drags coalesce per frame; sizes clamp to the configured minimum.
func (g *Grid) OnResizeHandleDrag(kind AxisKind, index int, pointerPx float32) {
	g.sched.Schedule(EventResize, func() {
		a := g.axis(kind)
		if index < 0 || index >= a.Len() {
			return
		}
		if a.Resize(index, pointerPx-a.Offset(index)) {
			g.recompute()
			g.redraw = true
		}
	})
}

// BeginEdit marks a cell as being edited.
func (g *Grid) BeginEdit(row, col int) bool {
	c := Coord{Row: row, Col: col}
	if !g.inBounds(c) {
		return false
	}
	g.editing = c
	g.isEditing = true
	g.redraw = true
	return true
}

// OnEditCommit writes text into a cell immediately, so a read in the same
// tick sees it. Empty text clears the cell. Out-of-range cells are rejected.
func (g *Grid) OnEditCommit(row, col int, text string) bool {
	c := Coord{Row: row, Col: col}
	if !g.inBounds(c) {
		return false
	}
	g.store.Set(c, text)
	if g.isEditing && g.editing == c {
		g.isEditing = false
	}
	g.redraw = true
	return true
}

// OnEditCancel abandons the current edit without touching the cell.
func (g *Grid) OnEditCancel() {
	if !g.isEditing {
		return
	}
	g.isEditing = false
	g.redraw = true
}
