package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_SelectPoint(t *testing.T) {
	s := NewSelection()
	s.SelectPoint(Coord{Row: 1, Col: 1}, false)
	s.SelectPoint(Coord{Row: 2, Col: 2}, true)

	assert.Equal(t, 2, s.Len())
	a, ok := s.Anchor()
	require.True(t, ok)
	assert.Equal(t, Coord{Row: 1, Col: 1}, a, "additive select keeps the anchor")

	s.SelectPoint(Coord{Row: 5, Col: 5}, false)
	assert.Equal(t, []Coord{{Row: 5, Col: 5}}, s.Cells())
	a, _ = s.Anchor()
	assert.Equal(t, Coord{Row: 5, Col: 5}, a)
}

func TestSelection_RangeIsSymmetric(t *testing.T) {
	a, b := NewSelection(), NewSelection()
	a.SelectRange(Coord{Row: 2, Col: 3}, Coord{Row: 5, Col: 1})
	b.SelectRange(Coord{Row: 5, Col: 1}, Coord{Row: 2, Col: 3})

	assert.Equal(t, 12, a.Len())
	assert.Equal(t, a.Cells(), b.Cells())

	anchor, _ := a.Anchor()
	assert.Equal(t, Coord{Row: 2, Col: 3}, anchor, "the start of the range is the anchor")
}

func TestSelection_ToggleManagesAnchor(t *testing.T) {
	s := NewSelection()
	s.Toggle(Coord{Row: 1, Col: 1})
	_, ok := s.Anchor()
	assert.True(t, ok)

	s.Toggle(Coord{Row: 1, Col: 2})
	s.Toggle(Coord{Row: 1, Col: 1})
	assert.Equal(t, 1, s.Len())

	s.Toggle(Coord{Row: 1, Col: 2})
	assert.Zero(t, s.Len())
	_, ok = s.Anchor()
	assert.False(t, ok, "removing the last cell drops the anchor")
}

func TestSelection_FullRowAndColumn(t *testing.T) {
	s := NewSelection()
	s.SelectRow(3, 26, false)
	assert.True(t, s.RowFullySelected(3, 26))
	assert.False(t, s.RowFullySelected(3, 27), "a wider extent is not covered")
	assert.False(t, s.RowFullySelected(4, 26))
	assert.True(t, s.ColumnHighlighted(0))
	assert.False(t, s.ColumnFullySelected(0, 100))

	s.Toggle(Coord{Row: 3, Col: 10})
	assert.False(t, s.RowFullySelected(3, 26))
	assert.True(t, s.RowHighlighted(3))

	s.SelectColumn(2, 100, true)
	assert.True(t, s.ColumnFullySelected(2, 100))
	assert.Equal(t, 25+99, s.Len())
}

func TestSelection_SelectAll(t *testing.T) {
	s := NewSelection()
	s.SelectAll(10, 4)
	assert.Equal(t, 40, s.Len())
	for r := range 10 {
		assert.True(t, s.RowFullySelected(r, 4))
	}
	a, _ := s.Anchor()
	assert.Equal(t, Coord{}, a)
}

func TestSelection_BorderMaskOutlinesRectangle(t *testing.T) {
	s := NewSelection()
	s.SelectRange(Coord{Row: 0, Col: 0}, Coord{Row: 2, Col: 2})

	tests := []struct {
		c    Coord
		want BorderMask
	}{
		{Coord{Row: 0, Col: 0}, BorderTop | BorderLeft},
		{Coord{Row: 0, Col: 1}, BorderTop},
		{Coord{Row: 0, Col: 2}, BorderTop | BorderRight},
		{Coord{Row: 1, Col: 1}, BorderNone},
		{Coord{Row: 2, Col: 0}, BorderBottom | BorderLeft},
		{Coord{Row: 2, Col: 2}, BorderBottom | BorderRight},
		{Coord{Row: 5, Col: 5}, BorderNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.BorderMask(tt.c), "cell %v", tt.c)
	}

	s.SelectPoint(Coord{Row: 4, Col: 4}, false)
	assert.Equal(t, BorderAll, s.BorderMask(Coord{Row: 4, Col: 4}))
}

func TestSelection_CellsRowMajor(t *testing.T) {
	s := NewSelection()
	for _, c := range []Coord{{Row: 2, Col: 0}, {Row: 0, Col: 5}, {Row: 0, Col: 1}, {Row: 1, Col: 3}} {
		s.Toggle(c)
	}
	assert.Equal(t, []Coord{{Row: 0, Col: 1}, {Row: 0, Col: 5}, {Row: 1, Col: 3}, {Row: 2, Col: 0}}, s.Cells())
}

func TestSelection_RemapOnInsertAndDelete(t *testing.T) {
	s := NewSelection()
	s.SelectRange(Coord{Row: 2, Col: 0}, Coord{Row: 3, Col: 0})

	s.InsertAt(AxisRow, 3)
	assert.Equal(t, []Coord{{Row: 2, Col: 0}, {Row: 4, Col: 0}}, s.Cells())
	assert.True(t, s.RowHighlighted(4))
	assert.False(t, s.RowHighlighted(3))

	s.DeleteAt(AxisRow, 2)
	assert.Equal(t, []Coord{{Row: 3, Col: 0}}, s.Cells())
	a, ok := s.Anchor()
	require.True(t, ok)
	assert.Equal(t, Coord{Row: 3, Col: 0}, a, "deleted anchor falls back to the first remaining cell")

	s.DeleteAt(AxisRow, 3)
	assert.Zero(t, s.Len())
	_, ok = s.Anchor()
	assert.False(t, ok)
}
