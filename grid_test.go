package sheet_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sheet"
)

// recordingHost counts redraws and remembers the last range.
type recordingHost struct {
	calls int
	last  sheet.VisibleRange
}

func (h *recordingHost) Redraw(r sheet.VisibleRange) {
	h.calls++
	h.last = r
}

// memClipboard is an in-memory ClipboardProvider.
type memClipboard struct{ text string }

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }

func newGrid(t *testing.T, cfg sheet.Config, opts ...sheet.Option) (*sheet.Grid, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	opts = append([]sheet.Option{sheet.WithHost(host), sheet.WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	g, err := sheet.New(cfg, opts...)
	require.NoError(t, err)
	return g, host
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := sheet.DefaultConfig()
	cfg.InitialRows = 0
	g, err := sheet.New(cfg)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, sheet.ErrInvalidConfig)
}

func TestGrid_InitialState(t *testing.T) {
	g, host := newGrid(t, sheet.DefaultConfig())

	rows, cols := g.Extent()
	assert.Equal(t, 100, rows)
	assert.Equal(t, 26, cols)
	assert.Equal(t, sheet.Vec2{X: 2600, Y: 3000}, g.ContentSize())
	_, ok := g.Anchor()
	assert.False(t, ok)

	assert.True(t, g.Tick(), "first tick always draws")
	assert.Equal(t, 1, host.calls)
	assert.False(t, g.Tick(), "nothing changed")
	assert.Equal(t, 1, host.calls)
}

func TestGrid_ViewportChangeIsDeferredAndCoalesced(t *testing.T) {
	g, host := newGrid(t, sheet.DefaultConfig())
	g.Tick()

	g.OnViewportChanged(300, 0, 800, 600)
	g.OnViewportChanged(600, 0, 800, 600)
	assert.Equal(t, sheet.Viewport{}, g.Viewport(), "applied on tick")

	require.True(t, g.Tick())
	assert.Equal(t, 2, host.calls)
	assert.Equal(t, float32(600), g.Viewport().ScrollTop)
	assert.Equal(t, 15, host.last.RowStart) // row 20 minus buffer 5
	assert.Equal(t, 45, host.last.RowEnd)
	assert.Equal(t, uint64(1), g.Scheduler().Dropped())
}

func TestGrid_ScrollPastEndGrows(t *testing.T) {
	g, host := newGrid(t, sheet.DefaultConfig())
	g.OnViewportChanged(3000, 0, 800, 300)
	g.Tick()

	rows, _ := g.Extent()
	assert.Equal(t, 150, rows)
	assert.Equal(t, 95, host.last.RowStart)
	assert.Equal(t, 115, host.last.RowEnd)

	// Same viewport again: no further growth.
	g.OnViewportChanged(3000, 0, 800, 300)
	g.Tick()
	rows, _ = g.Extent()
	assert.Equal(t, 150, rows)
}

func TestGrid_ScrollPastEndAtMax(t *testing.T) {
	cfg := sheet.DefaultConfig()
	cfg.MaxRows = 100
	g, host := newGrid(t, cfg)
	g.OnViewportChanged(3000, 0, 800, 300)
	g.Tick()

	rows, _ := g.Extent()
	assert.Equal(t, 100, rows)
	assert.Equal(t, 94, host.last.RowStart)
	assert.Equal(t, 99, host.last.RowEnd)
}

func TestGrid_CellGeometryAndHitTest(t *testing.T) {
	g, _ := newGrid(t, sheet.DefaultConfig())

	r, ok := g.CellGeometry(2, 3)
	require.True(t, ok)
	assert.Equal(t, sheet.Rect{X: 300, Y: 60, W: 100, H: 30}, r)

	_, ok = g.CellGeometry(100, 0)
	assert.False(t, ok)

	c, ok := g.HitTest(350, 75)
	require.True(t, ok)
	assert.Equal(t, sheet.Coord{Row: 2, Col: 3}, c)

	_, ok = g.HitTest(-1, 10)
	assert.False(t, ok)
	_, ok = g.HitTest(10, 3000)
	assert.False(t, ok)
}

func TestGrid_EditCommitIsImmediate(t *testing.T) {
	g, host := newGrid(t, sheet.DefaultConfig())
	g.Tick()

	assert.True(t, g.OnEditCommit(1, 1, "hello"))
	assert.Equal(t, "hello", g.CellValue(1, 1), "visible before the next tick")
	assert.True(t, g.CellModified(1, 1))
	assert.Equal(t, 1, g.CellCount())

	assert.False(t, g.OnEditCommit(100, 0, "x"), "out of range")
	assert.Equal(t, 1, g.CellCount())

	assert.True(t, g.OnEditCommit(1, 1, ""))
	assert.Equal(t, 0, g.CellCount())

	g.Tick()
	assert.Equal(t, 2, host.calls)
}

func TestGrid_SetCell(t *testing.T) {
	g, _ := newGrid(t, sheet.DefaultConfig())
	require.NoError(t, g.SetCell(0, 0, "a"))
	assert.Equal(t, "a", g.CellValue(0, 0))
	assert.ErrorIs(t, g.SetCell(0, 26, "b"), sheet.ErrOutOfRange)
}

func TestGrid_BeginAndCancelEdit(t *testing.T) {
	g, _ := newGrid(t, sheet.DefaultConfig())
	require.NoError(t, g.SetCell(0, 0, "keep"))

	require.True(t, g.BeginEdit(0, 0))
	c, editing := g.Editing()
	assert.True(t, editing)
	assert.Equal(t, sheet.Coord{}, c)
	assert.True(t, g.CellSelectionState(0, 0).Editing)

	g.OnEditCancel()
	_, editing = g.Editing()
	assert.False(t, editing)
	assert.Equal(t, "keep", g.CellValue(0, 0))
	assert.False(t, g.BeginEdit(-1, 0))
}

func TestGrid_ResizeHandle(t *testing.T) {
	g, _ := newGrid(t, sheet.DefaultConfig())

	i, ok := g.ResizeHandleAt(sheet.AxisColumn, 198, 3)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	i, ok = g.ResizeHandleAt(sheet.AxisColumn, 202, 3)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = g.ResizeHandleAt(sheet.AxisColumn, 150, 3)
	assert.False(t, ok)

	g.OnResizeHandleDrag(sheet.AxisColumn, 1, 260)
	g.OnResizeHandleDrag(sheet.AxisColumn, 1, 280)
	assert.Equal(t, float32(100), g.Cols().Size(1), "deferred")
	g.Tick()
	assert.Equal(t, float32(180), g.Cols().Size(1))
	assert.Equal(t, float32(280), g.Cols().Offset(2))

	// Dragging left of the start clamps to the minimum width.
	g.OnResizeHandleDrag(sheet.AxisColumn, 1, 50)
	g.Tick()
	assert.Equal(t, float32(20), g.Cols().Size(1))
}

func TestGrid_HeaderStatesAndLabels(t *testing.T) {
	g, _ := newGrid(t, sheet.DefaultConfig())
	require.True(t, g.SelectRow(4, false))

	assert.Equal(t, sheet.HeaderState{FullySelected: true, Highlighted: true}, g.RowHeaderState(4))
	assert.Equal(t, sheet.HeaderState{Highlighted: true}, g.ColumnHeaderState(0))
	assert.Equal(t, sheet.HeaderState{}, g.RowHeaderState(5))
	assert.Equal(t, "AA", g.ColumnLabel(26))
}
