package opengl

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sheet"
)

const (
	// DefaultDoubleClick is the longest gap between two presses on the same
	// cell that still counts as a double click.
	DefaultDoubleClick = 400 * time.Millisecond

	// DefaultHandleTolerance is the half-width of a header resize handle.
	DefaultHandleTolerance = 3

	defaultScrollSpeed = 40
)

// GLFWAdapter feeds GLFW window events into a sheet.Grid. It owns the scroll
// position and the in-progress edit text; the grid owns everything else.
type GLFWAdapter struct {
	window *glfw.Window
	grid   *sheet.Grid
	frame  sheet.Frame

	ScrollSpeed     float32
	DoubleClick     time.Duration
	HandleTolerance float32

	scrollTop, scrollLeft float32
	cursor                sheet.Vec2
	mods                  sheet.Modifiers

	resizing    bool
	resizeAxis  sheet.AxisKind
	resizeIndex int

	lastPress     time.Time
	lastPressCell sheet.Coord

	editText []rune
}

// NewGLFWAdapter installs callbacks on window that drive grid. The grid is
// drawn in the whole window.
func NewGLFWAdapter(window *glfw.Window, grid *sheet.Grid) *GLFWAdapter {
	a := &GLFWAdapter{
		window:          window,
		grid:            grid,
		ScrollSpeed:     defaultScrollSpeed,
		DoubleClick:     DefaultDoubleClick,
		HandleTolerance: DefaultHandleTolerance,
	}
	w, h := window.GetSize()
	a.setSize(w, h)

	window.SetSizeCallback(a.sizeCallback)
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Frame returns where the grid is drawn, for sheet.DrawGrid.
func (a *GLFWAdapter) Frame() sheet.Frame { return a.frame }

// SetFontTexture records the font atlas used when drawing.
func (a *GLFWAdapter) SetFontTexture(id uint32) { a.frame.FontTexID = id }

// EditText returns the text typed into the cell being edited.
func (a *GLFWAdapter) EditText() string { return string(a.editText) }

func (a *GLFWAdapter) setSize(w, h int) {
	a.frame.Size = sheet.Vec2{X: float32(w), Y: float32(h)}
	a.pushViewport()
}

func (a *GLFWAdapter) pushViewport() {
	body := a.frame.Body(a.grid.Config())
	a.grid.OnViewportChanged(a.scrollTop, a.scrollLeft, body.W, body.H)
}

func (a *GLFWAdapter) sizeCallback(w *glfw.Window, width, height int) {
	a.setSize(width, height)
}

func (a *GLFWAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	body := a.frame.Body(a.grid.Config())
	a.scrollTop = sheet.ClampScroll(a.grid.Rows(), a.scrollTop-float32(yoff)*a.ScrollSpeed, body.H)
	a.scrollLeft = sheet.ClampScroll(a.grid.Cols(), a.scrollLeft-float32(xoff)*a.ScrollSpeed, body.W)
	a.pushViewport()
}

func (a *GLFWAdapter) updateMods(mods glfw.ModifierKey) {
	a.mods = sheet.Modifiers{
		Ctrl:  mods&(glfw.ModControl|glfw.ModSuper) != 0,
		Shift: mods&glfw.ModShift != 0,
	}
}

func (a *GLFWAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	a.updateMods(mods)

	switch action {
	case glfw.Press:
		a.press()
	case glfw.Release:
		if a.resizing {
			a.resizing = false
			return
		}
		c := a.frame.DragCell(a.grid, a.cursor)
		a.grid.OnPointerUp(c.Row, c.Col, a.mods)
	}
}

func (a *GLFWAdapter) press() {
	t := a.frame.Locate(a.grid, a.cursor, a.HandleTolerance)
	if t.Kind == sheet.TargetNone {
		return
	}
	if t.Resize {
		a.resizing = true
		a.resizeAxis = t.ResizeAxis
		a.resizeIndex = t.ResizeIndex
		return
	}

	a.commitEdit()
	now := time.Now()
	cell := sheet.Coord{Row: t.Row, Col: t.Col}
	double := t.Kind == sheet.TargetCell && cell == a.lastPressCell && now.Sub(a.lastPress) <= a.DoubleClick
	a.lastPress, a.lastPressCell = now, cell

	a.grid.OnPointerDown(t.Row, t.Col, a.mods, double)
	if double {
		a.editText = []rune(a.grid.CellValue(t.Row, t.Col))
		a.lastPress = time.Time{}
	}
}

func (a *GLFWAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.cursor = sheet.Vec2{X: float32(xpos), Y: float32(ypos)}
	switch {
	case a.resizing:
		vp := a.grid.Viewport()
		content := a.frame.ScreenToContent(a.grid.Config(), vp, a.cursor)
		px := content.Y
		if a.resizeAxis == sheet.AxisColumn {
			px = content.X
		}
		a.grid.OnResizeHandleDrag(a.resizeAxis, a.resizeIndex, px)
	case a.grid.Dragging():
		c := a.frame.DragCell(a.grid, a.cursor)
		a.grid.OnPointerMove(c.Row, c.Col, a.mods)
	}
}

func (a *GLFWAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	a.updateMods(mods)

	if _, editing := a.grid.Editing(); editing {
		switch key {
		case glfw.KeyEnter, glfw.KeyKPEnter:
			a.commitEdit()
		case glfw.KeyEscape:
			a.editText = a.editText[:0]
			a.grid.OnEditCancel()
		case glfw.KeyBackspace:
			if n := len(a.editText); n > 0 {
				a.editText = a.editText[:n-1]
			}
		}
		return
	}

	k := glfwKeyToSheetKey(key)
	if k == sheet.KeyEnter {
		if anchor, ok := a.grid.Anchor(); ok && a.grid.BeginEdit(anchor.Row, anchor.Col) {
			a.editText = []rune(a.grid.CellValue(anchor.Row, anchor.Col))
		}
		return
	}
	if cmd, ok := sheet.CommandForKey(k, a.mods); ok {
		a.grid.OnCommand(cmd)
	}
}

// charCallback appends to the edit buffer, or starts an edit of the anchor
// that replaces its content.
func (a *GLFWAdapter) charCallback(w *glfw.Window, char rune) {
	if _, editing := a.grid.Editing(); !editing {
		anchor, ok := a.grid.Anchor()
		if !ok || !a.grid.BeginEdit(anchor.Row, anchor.Col) {
			return
		}
		a.editText = a.editText[:0]
	}
	a.editText = append(a.editText, char)
}

func (a *GLFWAdapter) commitEdit() {
	c, editing := a.grid.Editing()
	if !editing {
		return
	}
	a.grid.OnEditCommit(c.Row, c.Col, string(a.editText))
	a.editText = a.editText[:0]
}

// glfwKeyToSheetKey maps GLFW keys to grid keys.
func glfwKeyToSheetKey(key glfw.Key) sheet.Key {
	switch key {
	case glfw.KeyInsert:
		return sheet.KeyInsert
	case glfw.KeyDelete:
		return sheet.KeyDelete
	case glfw.KeyBackspace:
		return sheet.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return sheet.KeyEnter
	case glfw.KeyEscape:
		return sheet.KeyEscape
	case glfw.KeyA:
		return sheet.KeyA
	case glfw.KeyC:
		return sheet.KeyC
	case glfw.KeyV:
		return sheet.KeyV
	case glfw.KeyX:
		return sheet.KeyX
	default:
		return sheet.KeyNone
	}
}

// GLFWClipboard implements sheet.ClipboardProvider with the GLFW clipboard.
type GLFWClipboard struct {
	Window *glfw.Window
}

var _ sheet.ClipboardProvider = GLFWClipboard{}

// GetText returns the clipboard contents.
func (c GLFWClipboard) GetText() string { return c.Window.GetClipboardString() }

// SetText replaces the clipboard contents.
func (c GLFWClipboard) SetText(text string) { c.Window.SetClipboardString(text) }
