package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/sheet"
)

// span is the on-screen slice of one column.
type span struct {
	col      int
	width    int // full column width
	from, to int // visible columns within the cell text
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	cfg := m.grid.Config()
	body := m.body()
	bodyW, bodyH := int(body.W), int(body.H)
	headerW := min(int(cfg.HeaderWidth), m.width)
	spans := m.columnSpans(bodyW)

	var b strings.Builder
	b.Grow(m.width * m.height * 2)

	// Column header line
	b.WriteString(m.styles.Header.Render(fit("", headerW)))
	used := 0
	for _, s := range spans {
		st := m.headerStyle(m.grid.ColumnHeaderState(s.col))
		text := center(sheet.ColumnLabel(s.col), s.width)
		b.WriteString(st.Render(sliceColumns(text, s.from, s.to)))
		used += s.to - s.from
	}
	b.WriteString(m.styles.Header.Render(strings.Repeat(" ", max(0, bodyW-used))))
	b.WriteByte('\n')

	vp := m.grid.Viewport()
	rows := m.grid.Rows()
	vr := m.grid.VisibleRange()
	for y := range bodyH {
		py := vp.ScrollTop + float32(y)
		row := rows.IndexAt(py)
		if py >= rows.Total() || row < vr.RowStart || row > vr.RowEnd {
			b.WriteString(m.styles.Header.Render(fit("", headerW)))
			b.WriteString(strings.Repeat(" ", bodyW))
			b.WriteByte('\n')
			continue
		}
		// Rows taller than one line print on their first line only.
		first := int(rows.Offset(row)) == int(py)

		label := ""
		if first {
			label = strconv.Itoa(row + 1)
		}
		b.WriteString(m.headerStyle(m.grid.RowHeaderState(row)).Render(center(label, headerW)))

		used := 0
		for _, s := range spans {
			text := ""
			if first {
				text = m.cellText(row, s.col)
			}
			text = fit(text, max(0, s.width-1)) + " "
			st := m.cellStyle(m.grid.CellSelectionState(row, s.col))
			b.WriteString(st.Render(sliceColumns(text, s.from, s.to)))
			used += s.to - s.from
		}
		b.WriteString(strings.Repeat(" ", max(0, bodyW-used)))
		b.WriteByte('\n')
	}

	b.WriteString(m.statusLine())
	return b.String()
}

// columnSpans lists the visible columns in the grid's visible range, clipped
// to the body width.
func (m *Model) columnSpans(bodyW int) []span {
	vr := m.grid.VisibleRange()
	cols := m.grid.Cols()
	left := int(m.grid.Viewport().ScrollLeft)

	var spans []span
	for c := vr.ColStart; c <= vr.ColEnd && c < cols.Len(); c++ {
		start := int(cols.Offset(c)) - left
		w := int(cols.Size(c))
		from := max(0, -start)
		to := min(w, bodyW-start)
		if to <= from {
			continue
		}
		spans = append(spans, span{col: c, width: w, from: from, to: to})
	}
	return spans
}

func (m *Model) cellText(row, col int) string {
	if c, ok := m.grid.Editing(); ok && c.Row == row && c.Col == col {
		return m.input.Value()
	}
	return m.grid.CellValue(row, col)
}

func (m *Model) cellStyle(st sheet.CellState) lipgloss.Style {
	switch {
	case st.Editing:
		return m.styles.Editing
	case st.Anchor:
		return m.styles.Anchor
	case st.Selected:
		return m.styles.Selected
	}
	return m.styles.Cell
}

func (m *Model) headerStyle(hs sheet.HeaderState) lipgloss.Style {
	switch {
	case hs.FullySelected:
		return m.styles.HeaderSelected
	case hs.Highlighted:
		return m.styles.HeaderHighlight
	}
	return m.styles.Header
}

// statusLine shows the anchor reference and its value, or the edit input.
func (m *Model) statusLine() string {
	ref := ""
	if a, ok := m.grid.Anchor(); ok {
		ref = sheet.ColumnLabel(a.Col) + strconv.Itoa(a.Row+1)
	}
	left := m.styles.StatusKey.Render(fit(" "+ref, 8))

	var content string
	if _, editing := m.grid.Editing(); editing {
		content = m.input.View()
	} else {
		if a, ok := m.grid.Anchor(); ok {
			content = m.grid.CellValue(a.Row, a.Col)
		}
		rows, cols := m.grid.Extent()
		n := m.grid.SelectionLen()
		info := strconv.Itoa(n) + " sel  " + strconv.Itoa(rows) + "x" + strconv.Itoa(cols)
		room := max(0, m.width-8-lipgloss.Width(info)-1)
		content = fit(" "+content, room) + info + " "
	}
	return left + m.styles.Status.Render(content)
}
