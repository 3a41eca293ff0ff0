package sheet

// SparseStore maps coordinates to non-empty cell text and tracks which
// coordinates were explicitly modified. Only populated cells occupy memory,
// so the store stays small however large the grid grows.
type SparseStore struct {
	values   map[Coord]string
	modified map[Coord]struct{}
}

// NewSparseStore creates an empty store.
func NewSparseStore() *SparseStore {
	return &SparseStore{
		values:   make(map[Coord]string),
		modified: make(map[Coord]struct{}),
	}
}

// Get returns the value at c, or "" when the cell is empty.
func (s *SparseStore) Get(c Coord) string {
	return s.values[c]
}

// Has reports whether c holds a value.
func (s *SparseStore) Has(c Coord) bool {
	_, ok := s.values[c]
	return ok
}

// Modified reports whether c was explicitly set and not cleared since.
func (s *SparseStore) Modified(c Coord) bool {
	_, ok := s.modified[c]
	return ok
}

// Set stores v at c. Setting the empty string clears the cell.
func (s *SparseStore) Set(c Coord, v string) {
	if v == "" {
		s.Clear(c)
		return
	}
	s.values[c] = v
	s.modified[c] = struct{}{}
}

// Clear removes the value and the modified flag at c.
func (s *SparseStore) Clear(c Coord) {
	delete(s.values, c)
	delete(s.modified, c)
}

// Len returns the number of populated cells.
func (s *SparseStore) Len() int { return len(s.values) }

// Each calls fn for every populated cell in unspecified order.
func (s *SparseStore) Each(fn func(c Coord, v string)) {
	for c, v := range s.values {
		fn(c, v)
	}
}

// InsertAt shifts every entry whose index on the given axis is >= at by +1.
func (s *SparseStore) InsertAt(kind AxisKind, at int) {
	s.remap(kind, func(i int) (int, bool) {
		if i >= at {
			return i + 1, true
		}
		return i, true
	})
}

// DeleteAt drops entries exactly at index at on the given axis and shifts
// entries above it by -1.
func (s *SparseStore) DeleteAt(kind AxisKind, at int) {
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

// remap rebuilds both maps through fn. Entries for which fn reports false are dropped.
func (s *SparseStore) remap(kind AxisKind, fn func(int) (int, bool)) {
	values := make(map[Coord]string, len(s.values))
	for c, v := range s.values {
		if nc, ok := remapCoord(c, kind, fn); ok {
			values[nc] = v
		}
	}
	modified := make(map[Coord]struct{}, len(s.modified))
	for c := range s.modified {
		if nc, ok := remapCoord(c, kind, fn); ok {
			modified[nc] = struct{}{}
		}
	}
	s.values = values
	s.modified = modified
}

func remapCoord(c Coord, kind AxisKind, fn func(int) (int, bool)) (Coord, bool) {
	if kind == AxisRow {
		r, ok := fn(c.Row)
		return Coord{Row: r, Col: c.Col}, ok
	}
	col, ok := fn(c.Col)
	return Coord{Row: c.Row, Col: col}, ok
}
