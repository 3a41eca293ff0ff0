package sheet

// Coord identifies a cell by its logical row and column.
// It is comparable and used directly as a map key.
type Coord struct {
	Row, Col int
}

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Viewport is the host-visible pixel window into the grid content.
// It is owned by the host and read by the grid on every recomputation.
type Viewport struct {
	ScrollTop  float32
	ScrollLeft float32
	Width      float32
	Height     float32
}

// VisibleRange is the inclusive range of logical indices the host must draw,
// buffer margin included.
type VisibleRange struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Contains reports whether the cell lies inside the range.
func (r VisibleRange) Contains(c Coord) bool {
	return c.Row >= r.RowStart && c.Row <= r.RowEnd && c.Col >= r.ColStart && c.Col <= r.ColEnd
}

// Rows returns the number of rows in the range.
func (r VisibleRange) Rows() int { return r.RowEnd - r.RowStart + 1 }

// Cols returns the number of columns in the range.
func (r VisibleRange) Cols() int { return r.ColEnd - r.ColStart + 1 }

// Vertex represents a vertex for grid rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite     uint32 = 0xFFFFFFFF
	ColorBlack     uint32 = 0xFF000000
	ColorGray      uint32 = 0xFF808080
	ColorDarkGray  uint32 = 0xFF404040
	ColorLightGray uint32 = 0xFFC0C0C0
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampi clamps an int to [lo, hi].
func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
