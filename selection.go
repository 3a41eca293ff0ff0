package sheet

import "sort"

// BorderMask flags the sides of a selected cell that lie on the outer
// boundary of the selection. Sides shared with another selected cell are
// left clear so only the outline is drawn thick.
type BorderMask uint8

const (
	BorderTop BorderMask = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone BorderMask = 0
	BorderAll             = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Selection is a set of selected coordinates with an explicitly tracked
// anchor. The anchor is the reference for shift-extend and paste; it never
// depends on set iteration order.
//
// Per-row and per-column membership counts are maintained on every change,
// so full-row and full-column checks are O(1).
type Selection struct {
	cells     map[Coord]struct{}
	rowCount  map[int]int
	colCount  map[int]int
	anchor    Coord
	hasAnchor bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		cells:    make(map[Coord]struct{}),
		rowCount: make(map[int]int),
		colCount: make(map[int]int),
	}
}

// Len returns the number of selected cells.
func (s *Selection) Len() int { return len(s.cells) }

// Contains reports whether c is selected.
func (s *Selection) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Anchor returns the anchor and whether one is set.
func (s *Selection) Anchor() (Coord, bool) { return s.anchor, s.hasAnchor }

// SetAnchor moves the anchor without touching membership.
func (s *Selection) SetAnchor(c Coord) {
	s.anchor = c
	s.hasAnchor = true
}

// Clear empties the selection and drops the anchor.
func (s *Selection) Clear() {
	clear(s.cells)
	clear(s.rowCount)
	clear(s.colCount)
	s.anchor = Coord{}
	s.hasAnchor = false
}

func (s *Selection) add(c Coord) {
	if _, ok := s.cells[c]; ok {
		return
	}
	s.cells[c] = struct{}{}
	s.rowCount[c.Row]++
	s.colCount[c.Col]++
}

func (s *Selection) remove(c Coord) {
	if _, ok := s.cells[c]; !ok {
		return
	}
	delete(s.cells, c)
	if s.rowCount[c.Row]--; s.rowCount[c.Row] == 0 {
		delete(s.rowCount, c.Row)
	}
	if s.colCount[c.Col]--; s.colCount[c.Col] == 0 {
		delete(s.colCount, c.Col)
	}
}

// SelectPoint selects c. Without additive the set is cleared first and c
// becomes the anchor.
func (s *Selection) SelectPoint(c Coord, additive bool) {
	if !additive {
		s.Clear()
		s.SetAnchor(c)
	} else if !s.hasAnchor {
		s.SetAnchor(c)
	}
	s.add(c)
}

// Toggle flips membership of c. Adding to an empty selection sets the anchor;
// removing the last cell drops it.
func (s *Selection) Toggle(c Coord) {
	if s.Contains(c) {
		s.remove(c)
		if len(s.cells) == 0 {
			s.Clear()
		}
		return
	}
	if !s.hasAnchor {
		s.SetAnchor(c)
	}
	s.add(c)
}

// SelectRange replaces the selection with the inclusive rectangle spanned by
// from and to, in either order. from becomes the anchor.
func (s *Selection) SelectRange(from, to Coord) {
	s.Clear()
	s.SetAnchor(from)
	r0, r1 := min(from.Row, to.Row), max(from.Row, to.Row)
	c0, c1 := min(from.Col, to.Col), max(from.Col, to.Col)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			s.add(Coord{Row: r, Col: c})
		}
	}
}

// SelectRow selects every column of row r within the current column extent.
func (s *Selection) SelectRow(r, cols int, additive bool) {
	if !additive {
		s.Clear()
	}
	if !s.hasAnchor {
		s.SetAnchor(Coord{Row: r})
	}
	for c := 0; c < cols; c++ {
		s.add(Coord{Row: r, Col: c})
	}
}

// SelectColumn selects every row of column c within the current row extent.
func (s *Selection) SelectColumn(c, rows int, additive bool) {
	if !additive {
		s.Clear()
	}
	if !s.hasAnchor {
		s.SetAnchor(Coord{Col: c})
	}
	for r := 0; r < rows; r++ {
		s.add(Coord{Row: r, Col: c})
	}
}

// SelectAll selects every materialized cell and anchors at the origin.
// Each cell becomes an explicit member, so memory grows with rows*cols.
func (s *Selection) SelectAll(rows, cols int) {
	s.SelectRange(Coord{}, Coord{Row: rows - 1, Col: cols - 1})
}

// RowFullySelected reports whether every column in [0, cols) of row r is selected.
func (s *Selection) RowFullySelected(r, cols int) bool {
	return cols > 0 && s.rowCount[r] == cols
}

// ColumnFullySelected reports whether every row in [0, rows) of column c is selected.
func (s *Selection) ColumnFullySelected(c, rows int) bool {
	return rows > 0 && s.colCount[c] == rows
}

// RowHighlighted reports whether any cell of row r is selected.
func (s *Selection) RowHighlighted(r int) bool { return s.rowCount[r] > 0 }

// ColumnHighlighted reports whether any cell of column c is selected.
func (s *Selection) ColumnHighlighted(c int) bool { return s.colCount[c] > 0 }

// BorderMask returns the outer-boundary sides of c. Unselected cells have none.
func (s *Selection) BorderMask(c Coord) BorderMask {
	if !s.Contains(c) {
		return BorderNone
	}
	var m BorderMask
	if !s.Contains(Coord{Row: c.Row - 1, Col: c.Col}) {
		m |= BorderTop
	}
	if !s.Contains(Coord{Row: c.Row, Col: c.Col + 1}) {
		m |= BorderRight
	}
	if !s.Contains(Coord{Row: c.Row + 1, Col: c.Col}) {
		m |= BorderBottom
	}
	if !s.Contains(Coord{Row: c.Row, Col: c.Col - 1}) {
		m |= BorderLeft
	}
	return m
}

// Cells returns the selected coordinates in row-major order.
func (s *Selection) Cells() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// InsertAt shifts selected coordinates at or past index at on the axis by +1.
func (s *Selection) InsertAt(kind AxisKind, at int) {
	s.remap(kind, func(i int) (int, bool) {
		if i >= at {
			return i + 1, true
		}
		return i, true
	})
}

// DeleteAt drops selected coordinates at index at and shifts those above by -1.
func (s *Selection) DeleteAt(kind AxisKind, at int) {
	s.remap(kind, func(i int) (int, bool) {
		switch {
		case i == at:
			return 0, false
		case i > at:
			return i - 1, true
		}
		return i, true
	})
}

func (s *Selection) remap(kind AxisKind, fn func(int) (int, bool)) {
	old := s.cells
	anchor, hasAnchor := s.anchor, s.hasAnchor
	s.cells = make(map[Coord]struct{}, len(old))
	clear(s.rowCount)
	clear(s.colCount)
	for c := range old {
		if nc, ok := remapCoord(c, kind, fn); ok {
			s.add(nc)
		}
	}
	s.hasAnchor = false
	if hasAnchor {
		if na, ok := remapCoord(anchor, kind, fn); ok {
			s.SetAnchor(na)
		} else if cells := s.Cells(); len(cells) > 0 {
			s.SetAnchor(cells[0])
		}
	}
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}
