package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_CopyRelativeToFirstCell(t *testing.T) {
	store := NewSparseStore()
	store.Set(Coord{Row: 0, Col: 0}, "a")
	store.Set(Coord{Row: 0, Col: 1}, "b")
	store.Set(Coord{Row: 1, Col: 0}, "c")

	var cb Clipboard
	require.True(t, cb.Empty())
	cb.Copy([]Coord{{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}, store)

	assert.Equal(t, []ClipEntry{
		{DRow: 0, DCol: 0, Value: "a"},
		{DRow: 0, DCol: 1, Value: "b"},
		{DRow: 1, DCol: 0, Value: "c"},
		{DRow: 1, DCol: 1, Value: ""},
	}, cb.Entries())
}

func TestClipboard_PasteAtAnchor(t *testing.T) {
	store := NewSparseStore()
	store.Set(Coord{Row: 0, Col: 0}, "a")
	store.Set(Coord{Row: 0, Col: 1}, "b")
	store.Set(Coord{Row: 1, Col: 0}, "c")
	store.Set(Coord{Row: 1, Col: 1}, "d")

	var cb Clipboard
	cb.Copy([]Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, store)

	written, dropped := cb.Paste(Coord{Row: 5, Col: 5}, store, 100, 26)
	assert.Equal(t, 4, written)
	assert.Zero(t, dropped)
	assert.Equal(t, "a", store.Get(Coord{Row: 5, Col: 5}))
	assert.Equal(t, "b", store.Get(Coord{Row: 5, Col: 6}))
	assert.Equal(t, "c", store.Get(Coord{Row: 6, Col: 5}))
	assert.Equal(t, "d", store.Get(Coord{Row: 6, Col: 6}))
}

func TestClipboard_PasteDropsOutsideExtent(t *testing.T) {
	store := NewSparseStore()
	store.Set(Coord{Row: 0, Col: 0}, "a")
	store.Set(Coord{Row: 0, Col: 1}, "b")

	var cb Clipboard
	cb.Copy([]Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, store)

	written, dropped := cb.Paste(Coord{Row: 9, Col: 25}, store, 10, 26)
	assert.Equal(t, 1, written)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "a", store.Get(Coord{Row: 9, Col: 25}))
}

func TestClipboard_PasteEmptyCellClears(t *testing.T) {
	src := NewSparseStore()
	var cb Clipboard
	cb.Copy([]Coord{{Row: 0, Col: 0}}, src)

	dst := NewSparseStore()
	dst.Set(Coord{Row: 3, Col: 3}, "old")
	written, _ := cb.Paste(Coord{Row: 3, Col: 3}, dst, 10, 10)
	assert.Equal(t, 1, written)
	assert.False(t, dst.Has(Coord{Row: 3, Col: 3}))
}

func TestClipboard_EmptyPasteWritesNothing(t *testing.T) {
	var cb Clipboard
	written, dropped := cb.Paste(Coord{}, NewSparseStore(), 10, 10)
	assert.Zero(t, written)
	assert.Zero(t, dropped)
	assert.Equal(t, "", cb.TSV())
}

func TestClipboard_TSVBoundingBox(t *testing.T) {
	store := NewSparseStore()
	store.Set(Coord{Row: 0, Col: 0}, "a")
	store.Set(Coord{Row: 1, Col: 2}, "z")

	var cb Clipboard
	cb.Copy([]Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, store)
	assert.Equal(t, "a\t\t\n\t\tz", cb.TSV())
}

func TestClipboard_SnapshotSurvivesSourceEdits(t *testing.T) {
	store := NewSparseStore()
	store.Set(Coord{}, "before")

	var cb Clipboard
	cb.Copy([]Coord{{}}, store)
	store.Set(Coord{}, "after")

	assert.Equal(t, "before", cb.Entries()[0].Value)
}
