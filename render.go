package sheet

import "strconv"

// DrawGrid emits the visible range of g into dl: cell backgrounds, grid
// lines, text, the selection outline and both header strips. Only cells in
// g.VisibleRange() are touched.
func DrawGrid(dl *DrawList, g *Grid, style Style, f Frame) {
	cfg := g.Config()
	vp := g.Viewport()
	vr := g.VisibleRange()
	body := f.Body(cfg)
	// Content pixel (0,0) lands here on screen.
	ox := body.X - vp.ScrollLeft
	oy := body.Y - vp.ScrollTop

	dl.PushClipRect(body.X, body.Y, body.X+body.W, body.Y+body.H)
	for r := vr.RowStart; r <= vr.RowEnd; r++ {
		for c := vr.ColStart; c <= vr.ColEnd; c++ {
			rect, ok := g.CellGeometry(r, c)
			if !ok {
				continue
			}
			x, y := ox+rect.X, oy+rect.Y
			st := g.CellSelectionState(r, c)

			bg := style.CellBgColor
			switch {
			case st.Editing:
				bg = style.EditingBgColor
			case st.Selected && !st.Sole:
				bg = style.SelectedBgColor
			}
			dl.AddRect(x, y, rect.W, rect.H, bg)
			dl.AddVLine(x+rect.W-1, y, y+rect.H, style.GridLineColor, 1)
			dl.AddHLine(x, x+rect.W, y+rect.H-1, style.GridLineColor, 1)

			if v := g.CellValue(r, c); v != "" {
				ty := y + (rect.H-style.CharHeight)/2
				v = TruncateText(v, style.CharWidth, rect.W-2*style.CellPadding)
				dl.AddText(x+style.CellPadding, ty, v, style.CellTextColor, f.FontTexID,
					style.CharWidth, style.CharHeight, 0)
			}
			if st.Border != BorderNone {
				dl.AddBorder(x, y, rect.W, rect.H, st.Border, style.SelectionBorder, style.SelectionThickness)
			}
		}
	}
	dl.PopClipRect()

	drawColumnHeaders(dl, g, style, f, body, ox, vr)
	drawRowHeaders(dl, g, style, f, body, oy, vr)

	// Corner
	dl.AddRect(f.Origin.X, f.Origin.Y, cfg.HeaderWidth, cfg.HeaderHeight, style.HeaderBgColor)
}

func drawColumnHeaders(dl *DrawList, g *Grid, style Style, f Frame, body Rect, ox float32, vr VisibleRange) {
	cfg := g.Config()
	y := f.Origin.Y
	dl.PushClipRect(body.X, y, body.X+body.W, y+cfg.HeaderHeight)
	defer dl.PopClipRect()

	for c := vr.ColStart; c <= vr.ColEnd; c++ {
		x := ox + g.Cols().Offset(c)
		w := g.Cols().Size(c)
		bg, fg := headerColors(style, g.ColumnHeaderState(c))
		dl.AddRect(x, y, w, cfg.HeaderHeight, bg)
		dl.AddVLine(x+w-1, y, y+cfg.HeaderHeight, style.GridLineColor, 1)

		label := ColumnLabel(c)
		tw := MeasureText(label, style.CharWidth)
		dl.AddText(x+(w-tw)/2, y+(cfg.HeaderHeight-style.CharHeight)/2, label, fg, f.FontTexID,
			style.CharWidth, style.CharHeight, w)
	}
}

func drawRowHeaders(dl *DrawList, g *Grid, style Style, f Frame, body Rect, oy float32, vr VisibleRange) {
	cfg := g.Config()
	x := f.Origin.X
	dl.PushClipRect(x, body.Y, x+cfg.HeaderWidth, body.Y+body.H)
	defer dl.PopClipRect()

	for r := vr.RowStart; r <= vr.RowEnd; r++ {
		y := oy + g.Rows().Offset(r)
		h := g.Rows().Size(r)
		bg, fg := headerColors(style, g.RowHeaderState(r))
		dl.AddRect(x, y, cfg.HeaderWidth, h, bg)
		dl.AddHLine(x, x+cfg.HeaderWidth, y+h-1, style.GridLineColor, 1)

		label := strconv.Itoa(r + 1)
		tw := MeasureText(label, style.CharWidth)
		dl.AddText(x+(cfg.HeaderWidth-tw)/2, y+(h-style.CharHeight)/2, label, fg, f.FontTexID,
			style.CharWidth, style.CharHeight, cfg.HeaderWidth)
	}
}

func headerColors(style Style, hs HeaderState) (bg, fg uint32) {
	switch {
	case hs.FullySelected:
		return style.HeaderSelectedBgColor, style.HeaderSelectedText
	case hs.Highlighted:
		return style.HeaderHighlightBgColor, style.HeaderTextColor
	}
	return style.HeaderBgColor, style.HeaderTextColor
}

// DrawEditor draws text over the cell being edited with a caret after it.
// It does nothing when no edit is in progress or the cell is scrolled out.
func DrawEditor(dl *DrawList, g *Grid, style Style, f Frame, text string) {
	c, ok := g.Editing()
	if !ok || !g.VisibleRange().Contains(c) {
		return
	}
	rect, ok := g.CellGeometry(c.Row, c.Col)
	if !ok {
		return
	}
	cfg := g.Config()
	vp := g.Viewport()
	body := f.Body(cfg)
	x := body.X - vp.ScrollLeft + rect.X
	y := body.Y - vp.ScrollTop + rect.Y

	dl.PushClipRect(body.X, body.Y, body.X+body.W, body.Y+body.H)
	defer dl.PopClipRect()

	dl.AddRect(x, y, rect.W, rect.H, style.EditingBgColor)
	dl.AddBorder(x, y, rect.W, rect.H, BorderAll, style.SelectionBorder, style.SelectionThickness)
	ty := y + (rect.H-style.CharHeight)/2
	w := dl.AddText(x+style.CellPadding, ty, text, style.CellTextColor, f.FontTexID,
		style.CharWidth, style.CharHeight, rect.W-2*style.CellPadding)
	dl.AddVLine(x+style.CellPadding+w, ty, ty+style.CharHeight, style.CellTextColor, 1)
}
