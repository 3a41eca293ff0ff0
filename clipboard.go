package sheet

import "strings"

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
//
// The grid only ever writes to the provider (a TSV mirror of each copy);
// paste always reads the in-process buffer.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// ClipEntry is one copied cell, positioned relative to the first copied cell.
type ClipEntry struct {
	DRow, DCol int
	Value      string
}

// Clipboard is a single-slot snapshot of copied cells. It lives until the
// next copy; row and column edits never touch it.
type Clipboard struct {
	entries []ClipEntry
}

// Empty reports whether nothing has been copied.
func (cb *Clipboard) Empty() bool { return len(cb.entries) == 0 }

// Entries returns a copy of the snapshot.
func (cb *Clipboard) Entries() []ClipEntry {
	out := make([]ClipEntry, len(cb.entries))
	copy(out, cb.entries)
	return out
}

// Copy snapshots the value of every coordinate in cells (empty string when
// absent). Deltas are taken from the first cell in row-major order.
func (cb *Clipboard) Copy(cells []Coord, store *SparseStore) {
	cb.entries = cb.entries[:0]
	if len(cells) == 0 {
		return
	}
	sorted := make([]Coord, len(cells))
	copy(sorted, cells)
	sortCoords(sorted)

	origin := sorted[0]
	for _, c := range sorted {
		cb.entries = append(cb.entries, ClipEntry{
			DRow:  c.Row - origin.Row,
			DCol:  c.Col - origin.Col,
			Value: store.Get(c),
		})
	}
}

// Paste writes the snapshot relative to anchor. Entries landing outside
// [0, rows) x [0, cols) are dropped. It returns the number of cells written
// and dropped; an empty clipboard writes nothing.
func (cb *Clipboard) Paste(anchor Coord, store *SparseStore, rows, cols int) (written, dropped int) {
	for _, e := range cb.entries {
		c := Coord{Row: anchor.Row + e.DRow, Col: anchor.Col + e.DCol}
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			dropped++
			continue
		}
		store.Set(c, e.Value)
		written++
	}
	return written, dropped
}

// TSV renders the snapshot's bounding box as tab-separated rows.
// Cells inside the box that were not copied are empty fields.
func (cb *Clipboard) TSV() string {
	if cb.Empty() {
		return ""
	}
	minR, maxR := cb.entries[0].DRow, cb.entries[0].DRow
	minC, maxC := cb.entries[0].DCol, cb.entries[0].DCol
	vals := make(map[[2]int]string, len(cb.entries))
	for _, e := range cb.entries {
		minR, maxR = min(minR, e.DRow), max(maxR, e.DRow)
		minC, maxC = min(minC, e.DCol), max(maxC, e.DCol)
		vals[[2]int{e.DRow, e.DCol}] = e.Value
	}

	var b strings.Builder
	for r := minR; r <= maxR; r++ {
		if r > minR {
			b.WriteByte('\n')
		}
		for c := minC; c <= maxC; c++ {
			if c > minC {
				b.WriteByte('\t')
			}
			b.WriteString(vals[[2]int{r, c}])
		}
	}
	return b.String()
}
