package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseStore_SetGetClear(t *testing.T) {
	s := NewSparseStore()
	c := Coord{Row: 2, Col: 3}

	assert.Equal(t, "", s.Get(c))
	assert.False(t, s.Has(c))

	s.Set(c, "hello")
	assert.Equal(t, "hello", s.Get(c))
	assert.True(t, s.Has(c))
	assert.True(t, s.Modified(c))
	assert.Equal(t, 1, s.Len())

	s.Set(c, "")
	assert.False(t, s.Has(c), "empty string clears")
	assert.False(t, s.Modified(c))
	assert.Equal(t, 0, s.Len())

	s.Set(c, "x")
	s.Clear(c)
	assert.Equal(t, 0, s.Len())
}

func TestSparseStore_OnlyPopulatedCellsStored(t *testing.T) {
	s := NewSparseStore()
	s.Set(Coord{Row: 9999, Col: 999}, "far")
	s.Set(Coord{}, "near")
	assert.Equal(t, 2, s.Len())

	seen := map[Coord]string{}
	s.Each(func(c Coord, v string) { seen[c] = v })
	assert.Equal(t, map[Coord]string{{Row: 9999, Col: 999}: "far", {}: "near"}, seen)
}

func TestSparseStore_InsertRowShifts(t *testing.T) {
	s := NewSparseStore()
	s.Set(Coord{Row: 1, Col: 0}, "above")
	s.Set(Coord{Row: 2, Col: 0}, "at")
	s.Set(Coord{Row: 5, Col: 1}, "below")

	s.InsertAt(AxisRow, 2)

	assert.Equal(t, "above", s.Get(Coord{Row: 1, Col: 0}))
	assert.Equal(t, "", s.Get(Coord{Row: 2, Col: 0}))
	assert.Equal(t, "at", s.Get(Coord{Row: 3, Col: 0}))
	assert.Equal(t, "below", s.Get(Coord{Row: 6, Col: 1}))
	assert.True(t, s.Modified(Coord{Row: 3, Col: 0}))
	assert.Equal(t, 3, s.Len())
}

func TestSparseStore_DeleteColumnDropsAndShifts(t *testing.T) {
	s := NewSparseStore()
	s.Set(Coord{Row: 0, Col: 0}, "left")
	s.Set(Coord{Row: 0, Col: 1}, "gone")
	s.Set(Coord{Row: 3, Col: 4}, "right")

	s.DeleteAt(AxisColumn, 1)

	assert.Equal(t, "left", s.Get(Coord{Row: 0, Col: 0}))
	assert.Equal(t, "", s.Get(Coord{Row: 0, Col: 1}))
	assert.Equal(t, "right", s.Get(Coord{Row: 3, Col: 3}))
	assert.False(t, s.Modified(Coord{Row: 3, Col: 4}))
	assert.Equal(t, 2, s.Len())
}

func TestSparseStore_InsertThenDeleteRoundTrip(t *testing.T) {
	s := NewSparseStore()
	want := map[Coord]string{
		{Row: 0, Col: 0}: "a",
		{Row: 4, Col: 2}: "b",
		{Row: 7, Col: 9}: "c",
	}
	for c, v := range want {
		s.Set(c, v)
	}

	for _, kind := range []AxisKind{AxisRow, AxisColumn} {
		s.InsertAt(kind, 3)
		s.DeleteAt(kind, 3)
	}

	got := map[Coord]string{}
	s.Each(func(c Coord, v string) { got[c] = v })
	require.Equal(t, want, got)
}
