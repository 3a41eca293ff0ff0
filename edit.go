package sheet

// CommandKind enumerates host commands.
type CommandKind int

const (
	CommandInsertRow CommandKind = iota
	CommandDeleteRow
	CommandInsertCol
	CommandDeleteCol
	CommandCopy
	CommandCut
	CommandPaste
	CommandClear
	CommandSelectAll
)

func (k CommandKind) String() string {
	switch k {
	case CommandInsertRow:
		return "insertRow"
	case CommandDeleteRow:
		return "deleteRow"
	case CommandInsertCol:
		return "insertCol"
	case CommandDeleteCol:
		return "deleteCol"
	case CommandCopy:
		return "copy"
	case CommandCut:
		return "cut"
	case CommandPaste:
		return "paste"
	case CommandClear:
		return "clear"
	case CommandSelectAll:
		return "selectAll"
	}
	return "unknown"
}

// InsertPosition places an inserted row or column relative to Index.
type InsertPosition int

const (
	InsertBefore InsertPosition = iota
	InsertAfter
)

// Command is a host request. Index applies to row/column commands; a
// negative Index means the anchor's row or column.
type Command struct {
	Kind     CommandKind
	Index    int
	Position InsertPosition
}

// OnCommand executes cmd and reports whether it changed any state.
func (g *Grid) OnCommand(cmd Command) bool {
	switch cmd.Kind {
	case CommandInsertRow:
		return g.InsertRow(g.commandIndex(AxisRow, cmd.Index), cmd.Position)
	case CommandDeleteRow:
		return g.DeleteRow(g.commandIndex(AxisRow, cmd.Index))
	case CommandInsertCol:
		return g.InsertCol(g.commandIndex(AxisColumn, cmd.Index), cmd.Position)
	case CommandDeleteCol:
		return g.DeleteCol(g.commandIndex(AxisColumn, cmd.Index))
	case CommandCopy:
		return g.Copy() > 0
	case CommandCut:
		return g.Cut() > 0
	case CommandPaste:
		return g.Paste() > 0
	case CommandClear:
		return g.ClearSelected() > 0
	case CommandSelectAll:
		return g.OnPointerDown(HeaderIndex, HeaderIndex, Modifiers{}, false)
	}
	g.logger.Debug("unknown command", "kind", int(cmd.Kind))
	return false
}

func (g *Grid) commandIndex(kind AxisKind, index int) int {
	if index >= 0 {
		return index
	}
	anchor, ok := g.sel.Anchor()
	if !ok {
		return 0
	}
	if kind == AxisColumn {
		return anchor.Col
	}
	return anchor.Row
}

// InsertRow inserts a default-sized row before or after index. Cells and
// selection at or below the insertion point move down one row. Inserting
// when the grid is at its maximum row count is refused.
func (g *Grid) InsertRow(index int, pos InsertPosition) bool {
	return g.insert(AxisRow, index, pos)
}

// InsertCol inserts a default-sized column before or after index.
func (g *Grid) InsertCol(index int, pos InsertPosition) bool {
	return g.insert(AxisColumn, index, pos)
}

// DeleteRow removes row index, dropping its cells and shifting the rows
// below it up. The last remaining row is never deleted.
func (g *Grid) DeleteRow(index int) bool {
	return g.delete(AxisRow, index)
}

// DeleteCol removes column index. The last remaining column is never deleted.
func (g *Grid) DeleteCol(index int) bool {
	return g.delete(AxisColumn, index)
}

func (g *Grid) insert(kind AxisKind, index int, pos InsertPosition) bool {
	a := g.axis(kind)
	if index < 0 || index >= a.Len() {
		return false
	}
	at := index
	if pos == InsertAfter {
		at++
	}
	if !a.Insert(at) {
		g.logger.Debug("insert refused", "axis", kind, "at", at, "extent", a.Len(), "limit", a.Limit())
		return false
	}
	g.store.InsertAt(kind, at)
	g.sel.InsertAt(kind, at)
	g.afterStructureChange()
	return true
}

func (g *Grid) delete(kind AxisKind, index int) bool {
	a := g.axis(kind)
	if !a.Delete(index) {
		g.logger.Debug("delete refused", "axis", kind, "index", index, "extent", a.Len())
		return false
	}
	g.store.DeleteAt(kind, index)
	g.sel.DeleteAt(kind, index)
	g.afterStructureChange()
	return true
}

// afterStructureChange drops any in-progress edit and re-clamps the range
// against the new offsets. It never grows the axes.
func (g *Grid) afterStructureChange() {
	g.isEditing = false
	g.dropDrag()
	g.refreshWindow()
	g.redraw = true
}

// Copy snapshots the selected cells into the clipboard and mirrors them to
// the clipboard provider. It returns the number of cells copied. Empty
// selected cells are part of the snapshot so that paste reproduces the
// copied shape; a whole-grid selection at the maximum extent therefore
// snapshots every cell.
func (g *Grid) Copy() int {
	cells := g.sel.Cells()
	if len(cells) == 0 {
		return 0
	}
	g.clip.Copy(cells, g.store)
	if g.provider != nil {
		g.provider.SetText(g.clip.TSV())
	}
	return len(cells)
}

// Cut copies the selection and then clears it.
func (g *Grid) Cut() int {
	n := g.Copy()
	if n > 0 {
		g.ClearSelected()
	}
	return n
}

// Paste writes the clipboard at the anchor, preserving each copied cell's
// offset from the first copied cell. Cells that would land outside the
// extent are dropped; paste never grows the grid. It returns the number of
// cells written.
func (g *Grid) Paste() int {
	anchor, ok := g.sel.Anchor()
	if !ok || g.clip.Empty() {
		return 0
	}
	rows, cols := g.Extent()
	written, dropped := g.clip.Paste(anchor, g.store, rows, cols)
	if dropped > 0 {
		g.logger.Debug("paste dropped cells outside extent", "dropped", dropped, "anchor", anchor)
	}
	if written > 0 {
		g.redraw = true
	}
	return written
}

// ClipboardEntries returns the current clipboard snapshot.
func (g *Grid) ClipboardEntries() []ClipEntry { return g.clip.Entries() }

// ClearSelected empties every selected cell. Sizes are untouched. It
// returns the number of cells that held a value. Work is bounded by the
// smaller of the selection and the populated cell count, so clearing a
// whole-grid selection costs only the populated cells.
func (g *Grid) ClearSelected() int {
	var populated []Coord
	if g.sel.Len() > g.store.Len() {
		g.store.Each(func(c Coord, _ string) {
			if g.sel.Contains(c) {
				populated = append(populated, c)
			}
		})
	} else {
		for _, c := range g.sel.Cells() {
			if g.store.Has(c) {
				populated = append(populated, c)
			}
		}
	}
	for _, c := range populated {
		g.store.Clear(c)
	}
	if len(populated) > 0 {
		g.redraw = true
	}
	return len(populated)
}
