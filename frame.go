package sheet

// Frame describes where on screen a grid is drawn.
type Frame struct {
	Origin    Vec2   // Top-left of the header corner, in screen pixels
	Size      Vec2   // Outer size including headers
	FontTexID uint32 // Bitmap font texture (Renderer.FontTextureID)
}

// Bounds returns the outer screen rectangle.
func (f Frame) Bounds() Rect {
	return Rect{X: f.Origin.X, Y: f.Origin.Y, W: f.Size.X, H: f.Size.Y}
}

// Body returns the screen rectangle of the cell area below and right of the headers.
func (f Frame) Body(cfg Config) Rect {
	return Rect{
		X: f.Origin.X + cfg.HeaderWidth,
		Y: f.Origin.Y + cfg.HeaderHeight,
		W: max(0, f.Size.X-cfg.HeaderWidth),
		H: max(0, f.Size.Y-cfg.HeaderHeight),
	}
}

// ScreenToContent converts a screen position to content pixels.
func (f Frame) ScreenToContent(cfg Config, vp Viewport, p Vec2) Vec2 {
	body := f.Body(cfg)
	return Vec2{X: p.X - body.X + vp.ScrollLeft, Y: p.Y - body.Y + vp.ScrollTop}
}

// TargetKind classifies what lies under a screen position.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetRowHeader
	TargetColumnHeader
	TargetCorner
)

// Target is the result of Frame.Locate. Row and Col are ready to pass to
// Grid.OnPointerDown: headers carry HeaderIndex on the spanning axis.
type Target struct {
	Kind TargetKind
	Row  int
	Col  int

	// Resize is set when the position is on a header's trailing edge.
	// ResizeAxis and ResizeIndex then name the row or column to resize.
	Resize      bool
	ResizeAxis  AxisKind
	ResizeIndex int
}

// Locate resolves screen position p against g drawn in f. tolerance is the
// half-width in pixels of a header resize handle.
func (f Frame) Locate(g *Grid, p Vec2, tolerance float32) Target {
	if !f.Bounds().Contains(p) {
		return Target{}
	}
	cfg := g.Config()
	body := f.Body(cfg)
	content := f.ScreenToContent(cfg, g.Viewport(), p)
	inHeaderRow := p.Y < body.Y
	inHeaderCol := p.X < body.X

	switch {
	case inHeaderRow && inHeaderCol:
		return Target{Kind: TargetCorner, Row: HeaderIndex, Col: HeaderIndex}

	case inHeaderRow:
		if i, ok := g.ResizeHandleAt(AxisColumn, content.X, tolerance); ok {
			return Target{Kind: TargetColumnHeader, Row: HeaderIndex, Col: i,
				Resize: true, ResizeAxis: AxisColumn, ResizeIndex: i}
		}
		if content.X >= g.Cols().Total() {
			return Target{}
		}
		return Target{Kind: TargetColumnHeader, Row: HeaderIndex, Col: g.Cols().IndexAt(content.X)}

	case inHeaderCol:
		if i, ok := g.ResizeHandleAt(AxisRow, content.Y, tolerance); ok {
			return Target{Kind: TargetRowHeader, Row: i, Col: HeaderIndex,
				Resize: true, ResizeAxis: AxisRow, ResizeIndex: i}
		}
		if content.Y >= g.Rows().Total() {
			return Target{}
		}
		return Target{Kind: TargetRowHeader, Row: g.Rows().IndexAt(content.Y), Col: HeaderIndex}
	}

	c, ok := g.HitTest(content.X, content.Y)
	if !ok {
		return Target{}
	}
	return Target{Kind: TargetCell, Row: c.Row, Col: c.Col}
}

// DragCell returns the cell nearest to screen position p, clamped to the
// extent, for extending a drag selection past the body edges.
func (f Frame) DragCell(g *Grid, p Vec2) Coord {
	content := f.ScreenToContent(g.Config(), g.Viewport(), p)
	return Coord{Row: g.Rows().IndexAt(content.Y), Col: g.Cols().IndexAt(content.X)}
}
