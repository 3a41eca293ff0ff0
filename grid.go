package sheet

import (
	"fmt"
	"log/slog"
)

// HeaderIndex is passed as a pointer row or column to address a header:
// row == HeaderIndex targets a column header, col == HeaderIndex a row
// header, and both together the corner (select all).
const HeaderIndex = -1

// Host is told which range to draw after any state-affecting event.
// It then queries the grid per visible coordinate.
type Host interface {
	Redraw(r VisibleRange)
}

// HostFunc adapts a function to Host.
type HostFunc func(VisibleRange)

// Redraw calls f(r).
func (f HostFunc) Redraw(r VisibleRange) { f(r) }

// CellState describes how a cell should be styled.
type CellState struct {
	Selected bool
	Sole     bool // The only selected cell
	Anchor   bool
	Editing  bool
	Border   BorderMask
}

// HeaderState describes how a row or column header should be styled.
type HeaderState struct {
	FullySelected bool // Every cell of the row/column is selected
	Highlighted   bool // At least one cell is selected
}

// Grid is the virtualization engine behind a spreadsheet view. It owns the
// row and column axes, the sparse cell store, the selection and the
// clipboard. All methods must be called from the host's single event thread.
//
// Usage:
//
//	g, err := sheet.New(sheet.DefaultConfig(), sheet.WithHost(host))
//	// on every host event:
//	g.OnViewportChanged(scrollTop, scrollLeft, w, h)
//	// once per frame:
//	g.Tick()
type Grid struct {
	cfg   Config
	rows  *Axis
	cols  *Axis
	store *SparseStore
	sel   *Selection
	clip  Clipboard
	calc  ViewportCalculator

	sched    *Scheduler
	host     Host
	provider ClipboardProvider
	logger   *slog.Logger

	viewport Viewport
	visible  VisibleRange
	redraw   bool

	dragging    bool
	dragTarget  Coord
	dragPending bool
	cancelDrag  func()

	editing   Coord
	isEditing bool
}

// New creates a grid from cfg. A config that fails Validate is the only
// construction error.
func New(cfg Config, opts ...Option) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}
	g := &Grid{
		cfg:    cfg,
		rows:   newAxis(cfg.InitialRows, cfg.RowHeight, cfg.MinRowHeight, cfg.MaxRows),
		cols:   newAxis(cfg.InitialCols, cfg.ColWidth, cfg.MinColWidth, cfg.MaxCols),
		store:  NewSparseStore(),
		sel:    NewSelection(),
		sched:  NewScheduler(),
		logger: sheetLogger,
		calc: ViewportCalculator{
			Buffer:    cfg.Buffer,
			RowGrowth: GrowthPolicy{Margin: cfg.RowGrowMargin, Batch: cfg.RowGrowBatch},
			ColGrowth: GrowthPolicy{Margin: cfg.ColGrowMargin, Batch: cfg.ColGrowBatch},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.refreshWindow()
	g.redraw = true
	return g, nil
}

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// Rows returns the row axis. Callers must not mutate it.
func (g *Grid) Rows() *Axis { return g.rows }

// Cols returns the column axis. Callers must not mutate it.
func (g *Grid) Cols() *Axis { return g.cols }

// Extent returns the materialized row and column counts.
func (g *Grid) Extent() (rows, cols int) { return g.rows.Len(), g.cols.Len() }

// ContentSize returns the pixel size of all materialized cells.
func (g *Grid) ContentSize() Vec2 {
	return Vec2{X: g.cols.Total(), Y: g.rows.Total()}
}

// Scheduler returns the scheduler coalescing this grid's deferred work.
func (g *Grid) Scheduler() *Scheduler { return g.sched }

func (g *Grid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows.Len() && c.Col >= 0 && c.Col < g.cols.Len()
}

func (g *Grid) clampCoord(c Coord) Coord {
	return Coord{
		Row: clampi(c.Row, 0, g.rows.Len()-1),
		Col: clampi(c.Col, 0, g.cols.Len()-1),
	}
}

// recompute refreshes the visible range against the current viewport and
// axes, growing them when the range nears their edge. Viewport and resize
// events use it; structural edits use refreshWindow.
func (g *Grid) recompute() {
	r, grewRows, grewCols := g.calc.Compute(g.rows, g.cols, g.viewport)
	if grewRows > 0 {
		g.logger.Debug("grid grew", "axis", AxisRow, "added", grewRows, "extent", g.rows.Len())
	}
	if grewCols > 0 {
		g.logger.Debug("grid grew", "axis", AxisColumn, "added", grewCols, "extent", g.cols.Len())
	}
	if r != g.visible || grewRows > 0 || grewCols > 0 {
		g.redraw = true
	}
	g.visible = r
}

// refreshWindow re-clamps the visible range against the current axes
// without growing them. Structural edits use it so that a delete can only
// shrink the extent; growth waits for the next viewport change.
func (g *Grid) refreshWindow() {
	if r := g.calc.window(g.rows, g.cols, g.viewport); r != g.visible {
		g.visible = r
		g.redraw = true
	}
}

// Tick runs the coalesced work scheduled since the last tick and, if any
// state changed, hands the visible range to the host. It reports whether a
// redraw was requested. Call it once per frame.
func (g *Grid) Tick() bool {
	g.sched.RunPending()
	if !g.redraw {
		return false
	}
	g.redraw = false
	if g.host != nil {
		g.host.Redraw(g.visible)
	}
	return true
}

// OnViewportChanged records a scroll or resize of the viewport. The
// recomputation is deferred to the next Tick; newer calls replace older ones.
func (g *Grid) OnViewportChanged(scrollTop, scrollLeft, width, height float32) {
	vp := Viewport{ScrollTop: scrollTop, ScrollLeft: scrollLeft, Width: width, Height: height}
	g.sched.Schedule(EventScroll, func() {
		if vp == g.viewport {
			return
		}
		g.viewport = vp
		g.recompute()
	})
}

// Viewport returns the last applied viewport.
func (g *Grid) Viewport() Viewport { return g.viewport }

// VisibleRange returns the inclusive range the host must draw.
func (g *Grid) VisibleRange() VisibleRange { return g.visible }

// CellGeometry returns the content-space rectangle of a cell.
func (g *Grid) CellGeometry(row, col int) (Rect, bool) {
	if !g.inBounds(Coord{Row: row, Col: col}) {
		return Rect{}, false
	}
	return Rect{
		X: g.cols.Offset(col),
		Y: g.rows.Offset(row),
		W: g.cols.Size(col),
		H: g.rows.Size(row),
	}, true
}

// HitTest maps a content-space pixel position to the cell under it.
func (g *Grid) HitTest(x, y float32) (Coord, bool) {
	if x < 0 || y < 0 || x >= g.cols.Total() || y >= g.rows.Total() {
		return Coord{}, false
	}
	return Coord{Row: g.rows.IndexAt(y), Col: g.cols.IndexAt(x)}, true
}

// ResizeHandleAt returns the index whose trailing edge lies within tolerance
// of content position px on the given axis.
func (g *Grid) ResizeHandleAt(kind AxisKind, px, tolerance float32) (int, bool) {
	a := g.axis(kind)
	if px < 0 || px > a.Total()+tolerance {
		return 0, false
	}
	i := a.IndexAt(px)
	// The nearest edge is either the end of i or the end of i-1.
	for _, idx := range []int{i, i - 1} {
		if idx < 0 || idx >= a.Len() {
			continue
		}
		edge := a.Offset(idx + 1)
		if d := px - edge; d >= -tolerance && d <= tolerance {
			return idx, true
		}
	}
	return 0, false
}

func (g *Grid) axis(kind AxisKind) *Axis {
	if kind == AxisColumn {
		return g.cols
	}
	return g.rows
}

// CellValue returns the text of a cell, "" when empty or out of range.
func (g *Grid) CellValue(row, col int) string {
	return g.store.Get(Coord{Row: row, Col: col})
}

// SetCell writes a value programmatically, e.g. when loading data. Unlike
// OnEditCommit it reports out-of-range coordinates as an error.
func (g *Grid) SetCell(row, col int, v string) error {
	c := Coord{Row: row, Col: col}
	if !g.inBounds(c) {
		rows, cols := g.Extent()
		return fmt.Errorf("set cell %s%d (extent %dx%d): %w", ColumnLabel(col), row+1, rows, cols, ErrOutOfRange)
	}
	g.store.Set(c, v)
	g.redraw = true
	return nil
}

// CellModified reports whether the cell was explicitly edited and still holds a value.
func (g *Grid) CellModified(row, col int) bool {
	return g.store.Modified(Coord{Row: row, Col: col})
}

// CellCount returns the number of populated cells.
func (g *Grid) CellCount() int { return g.store.Len() }

// CellSelectionState returns the selection styling of a cell.
func (g *Grid) CellSelectionState(row, col int) CellState {
	c := Coord{Row: row, Col: col}
	selected := g.sel.Contains(c)
	anchor, hasAnchor := g.sel.Anchor()
	return CellState{
		Selected: selected,
		Sole:     selected && g.sel.Len() == 1,
		Anchor:   hasAnchor && anchor == c,
		Editing:  g.isEditing && g.editing == c,
		Border:   g.sel.BorderMask(c),
	}
}

// RowHeaderState returns the header styling of a row.
func (g *Grid) RowHeaderState(row int) HeaderState {
	return HeaderState{
		FullySelected: g.sel.RowFullySelected(row, g.cols.Len()),
		Highlighted:   g.sel.RowHighlighted(row),
	}
}

// ColumnHeaderState returns the header styling of a column.
func (g *Grid) ColumnHeaderState(col int) HeaderState {
	return HeaderState{
		FullySelected: g.sel.ColumnFullySelected(col, g.rows.Len()),
		Highlighted:   g.sel.ColumnHighlighted(col),
	}
}

// ColumnLabel returns the letter label of a column.
func (g *Grid) ColumnLabel(col int) string { return ColumnLabel(col) }

// SelectedCells returns the selection in row-major order.
func (g *Grid) SelectedCells() []Coord { return g.sel.Cells() }

// SelectionLen returns the number of selected cells.
func (g *Grid) SelectionLen() int { return g.sel.Len() }

// Anchor returns the selection anchor.
func (g *Grid) Anchor() (Coord, bool) { return g.sel.Anchor() }

// Editing returns the cell currently being edited.
func (g *Grid) Editing() (Coord, bool) { return g.editing, g.isEditing }
