package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sheet"
)

func drawnGrid(t *testing.T) *sheet.Grid {
	t.Helper()
	g, _ := newGrid(t, sheet.DefaultConfig())
	body := testFrame.Body(g.Config())
	g.OnViewportChanged(0, 0, body.W, body.H)
	g.Tick()
	return g
}

func TestDrawGrid_EmitsVisibleCells(t *testing.T) {
	g := drawnGrid(t)
	require.NoError(t, g.SetCell(0, 0, "hello"))
	g.SelectRange(0, 0, 1, 1)

	dl := sheet.AcquireDrawList()
	defer sheet.ReleaseDrawList(dl)
	f := testFrame
	f.FontTexID = 9
	sheet.DrawGrid(dl, g, sheet.DefaultStyle(), f)
	dl.Finalize()

	require.NotEmpty(t, dl.CmdBuffer)
	var text, clippedToBody int
	body := f.Body(g.Config())
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 9 {
			text++
		}
		if cmd.ClipRect == [4]float32{body.X, body.Y, body.X + body.W, body.Y + body.H} {
			clippedToBody++
		}
	}
	assert.Positive(t, text, "cell and header labels use the font texture")
	assert.Positive(t, clippedToBody)
	assert.Equal(t, 0, len(dl.VtxBuffer)%4, "everything is quads")
}

func TestDrawGrid_OnlyVisibleRange(t *testing.T) {
	g := drawnGrid(t)
	vr := g.VisibleRange()

	dl := sheet.AcquireDrawList()
	defer sheet.ReleaseDrawList(dl)
	sheet.DrawGrid(dl, g, sheet.DefaultStyle(), testFrame)

	// Every vertex lies within the rows and columns handed to the host.
	last, _ := g.CellGeometry(vr.RowEnd, vr.ColEnd)
	body := testFrame.Body(g.Config())
	maxX := body.X + last.X + last.W
	maxY := body.Y + last.Y + last.H
	for _, v := range dl.VtxBuffer {
		assert.LessOrEqual(t, v.Pos[0], maxX)
		assert.LessOrEqual(t, v.Pos[1], maxY)
	}
}

func TestDrawEditor(t *testing.T) {
	g := drawnGrid(t)
	dl := sheet.AcquireDrawList()
	defer sheet.ReleaseDrawList(dl)

	sheet.DrawEditor(dl, g, sheet.DefaultStyle(), testFrame, "abc")
	assert.Empty(t, dl.VtxBuffer, "no edit in progress")

	require.True(t, g.BeginEdit(2, 2))
	sheet.DrawEditor(dl, g, sheet.DefaultStyle(), testFrame, "abc")
	// Background, four borders, three glyphs and the caret.
	assert.Len(t, dl.VtxBuffer, 9*4)
}
