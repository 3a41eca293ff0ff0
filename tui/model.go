// Package tui is a terminal front end for sheet.Grid built on Bubble Tea.
// Grid pixels are terminal cells: see Config.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/sheet"
)

const (
	frameInterval  = 16 * time.Millisecond
	doubleClickGap = 400 * time.Millisecond
	wheelStep      = 3
)

type frameMsg time.Time

// Model is a tea.Model displaying and editing a grid.
type Model struct {
	grid   *sheet.Grid
	keys   KeyMap
	styles Styles
	input  textinput.Model

	width, height         int
	scrollTop, scrollLeft float32

	// cursor is the moving end of a keyboard selection; the grid's anchor is
	// the fixed end.
	cursor sheet.Coord

	resizing    bool
	resizeAxis  sheet.AxisKind
	resizeIndex int

	now           func() time.Time
	lastPress     time.Time
	lastPressCell sheet.Coord

	visible sheet.VisibleRange
	frames  int
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// New builds a model around a grid made from cfg. Pass grid options such as
// sheet.WithClipboardProvider(SystemClipboard{}) through gridOpts.
func New(cfg sheet.Config, opts []Option, gridOpts ...sheet.Option) (*Model, error) {
	m := &Model{
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		input:  textinput.New(),
		now:    time.Now,
	}
	m.input.Prompt = ""
	for _, opt := range opts {
		opt(m)
	}

	gridOpts = append(gridOpts, sheet.WithHost(sheet.HostFunc(m.redraw)))
	g, err := sheet.New(cfg, gridOpts...)
	if err != nil {
		return nil, err
	}
	m.grid = g
	g.SelectCell(0, 0, sheet.Modifiers{})
	return m, nil
}

// Grid returns the underlying grid.
func (m *Model) Grid() *sheet.Grid { return m.grid }

// Frames returns how many redraws the grid has requested.
func (m *Model) Frames() int { return m.frames }

func (m *Model) redraw(r sheet.VisibleRange) {
	m.visible = r
	m.frames++
}

// Program returns a full-screen program for m with mouse support.
func Program(m *Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(m, opts...)
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd { return frame() }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.grid.Tick()
		return m, frame()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(1, m.width-16)
		m.clampScroll()
		m.pushViewport()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if _, editing := m.grid.Editing(); editing {
			return m, m.updateEditing(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

// frameRect is the screen area of the grid: everything but the status line.
func (m *Model) frameRect() sheet.Frame {
	return sheet.Frame{Size: sheet.Vec2{X: float32(m.width), Y: float32(max(0, m.height-1))}}
}

func (m *Model) body() sheet.Rect { return m.frameRect().Body(m.grid.Config()) }

func (m *Model) pushViewport() {
	b := m.body()
	m.grid.OnViewportChanged(m.scrollTop, m.scrollLeft, b.W, b.H)
}

func (m *Model) clampScroll() {
	b := m.body()
	m.scrollTop = sheet.ClampScroll(m.grid.Rows(), m.scrollTop, b.H)
	m.scrollLeft = sheet.ClampScroll(m.grid.Cols(), m.scrollLeft, b.W)
}

// scrollTo brings a cell fully into view.
func (m *Model) scrollTo(c sheet.Coord) {
	b := m.body()
	m.scrollTop = sheet.ScrollToReveal(m.grid.Rows(), c.Row, m.scrollTop, b.H)
	m.scrollLeft = sheet.ScrollToReveal(m.grid.Cols(), c.Col, m.scrollLeft, b.W)
	m.pushViewport()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case matches(msg, k.Quit):
		return tea.Quit
	case matches(msg, k.Up):
		m.move(-1, 0, false)
	case matches(msg, k.Down):
		m.move(1, 0, false)
	case matches(msg, k.Left):
		m.move(0, -1, false)
	case matches(msg, k.Right):
		m.move(0, 1, false)
	case matches(msg, k.ExtendUp):
		m.move(-1, 0, true)
	case matches(msg, k.ExtendDown):
		m.move(1, 0, true)
	case matches(msg, k.ExtendLeft):
		m.move(0, -1, true)
	case matches(msg, k.ExtendRight):
		m.move(0, 1, true)
	case matches(msg, k.PageUp):
		m.move(-max(1, int(m.body().H)-1), 0, false)
	case matches(msg, k.PageDown):
		m.move(max(1, int(m.body().H)-1), 0, false)
	case matches(msg, k.Edit):
		if a, ok := m.grid.Anchor(); ok {
			return m.beginEdit(a, m.grid.CellValue(a.Row, a.Col))
		}
	default:
		if cmd, ok := k.command(msg); ok {
			m.grid.OnCommand(cmd)
			m.syncCursor()
			return nil
		}
		// Typing into a selected cell replaces its content.
		if msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste {
			if a, ok := m.grid.Anchor(); ok {
				return m.beginEdit(a, string(msg.Runes))
			}
		}
	}
	return nil
}

// move steps the cursor. With extend the selection grows from the anchor to
// the cursor; otherwise the cursor becomes the new anchor.
func (m *Model) move(dRow, dCol int, extend bool) {
	rows, cols := m.grid.Extent()
	next := sheet.Coord{
		Row: max(0, min(rows-1, m.cursor.Row+dRow)),
		Col: max(0, min(cols-1, m.cursor.Col+dCol)),
	}
	if extend {
		if _, ok := m.grid.Anchor(); ok {
			m.grid.SelectCell(next.Row, next.Col, sheet.Modifiers{Shift: true})
		}
	} else {
		m.grid.SelectCell(next.Row, next.Col, sheet.Modifiers{})
	}
	m.cursor = next
	m.scrollTo(next)
}

// syncCursor moves the cursor back onto the anchor after a command that may
// have changed the selection.
func (m *Model) syncCursor() {
	if a, ok := m.grid.Anchor(); ok {
		m.cursor = a
	}
	rows, cols := m.grid.Extent()
	m.cursor.Row = min(m.cursor.Row, rows-1)
	m.cursor.Col = min(m.cursor.Col, cols-1)
}

func (m *Model) beginEdit(c sheet.Coord, text string) tea.Cmd {
	if !m.grid.BeginEdit(c.Row, c.Col) {
		return nil
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.scrollTo(c)
	return m.input.Focus()
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	c, _ := m.grid.Editing()
	switch {
	case matches(msg, m.keys.Commit):
		m.grid.OnEditCommit(c.Row, c.Col, m.input.Value())
		m.input.Blur()
		m.cursor = c
		m.move(1, 0, false)
		return nil
	case matches(msg, m.keys.Cancel):
		m.grid.OnEditCancel()
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	mods := sheet.Modifiers{Ctrl: msg.Ctrl || msg.Alt, Shift: msg.Shift}
	// Terminal cells are addressed by their centre.
	p := sheet.Vec2{X: float32(msg.X) + 0.5, Y: float32(msg.Y) + 0.5}
	f := m.frameRect()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-wheelStep, 0)
		return
	case tea.MouseButtonWheelDown:
		m.scroll(wheelStep, 0)
		return
	case tea.MouseButtonWheelLeft:
		m.scroll(0, -wheelStep)
		return
	case tea.MouseButtonWheelRight:
		m.scroll(0, wheelStep)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.press(f, p, mods)

	case tea.MouseActionMotion:
		switch {
		case m.resizing:
			content := f.ScreenToContent(m.grid.Config(), m.grid.Viewport(), p)
			// The dragged row or column ends on the terminal cell under the pointer.
			px := float32(int(content.Y)) + 1
			if m.resizeAxis == sheet.AxisColumn {
				px = float32(int(content.X)) + 1
			}
			m.grid.OnResizeHandleDrag(m.resizeAxis, m.resizeIndex, px)
		case m.grid.Dragging():
			c := f.DragCell(m.grid, p)
			m.grid.OnPointerMove(c.Row, c.Col, mods)
			m.cursor = c
		}

	case tea.MouseActionRelease:
		if m.resizing {
			m.resizing = false
			return
		}
		if m.grid.Dragging() {
			c := f.DragCell(m.grid, p)
			m.grid.OnPointerUp(c.Row, c.Col, mods)
			m.cursor = c
		}
	}
}

func (m *Model) press(f sheet.Frame, p sheet.Vec2, mods sheet.Modifiers) {
	// A column edge is grabbed by the last terminal cell of its header, so the
	// right border of the pressed cell is what gets tested. Rows are one line
	// tall and every line would touch an edge; they are not resized here.
	edge := f.Locate(m.grid, sheet.Vec2{X: p.X + 0.5, Y: p.Y}, 0)
	if edge.Resize && edge.ResizeAxis == sheet.AxisColumn {
		m.resizing = true
		m.resizeAxis, m.resizeIndex = edge.ResizeAxis, edge.ResizeIndex
		return
	}
	t := f.Locate(m.grid, p, 0)
	if t.Kind == sheet.TargetNone {
		return
	}
	if c, editing := m.grid.Editing(); editing {
		m.grid.OnEditCommit(c.Row, c.Col, m.input.Value())
		m.input.Blur()
	}

	now := m.now()
	cell := sheet.Coord{Row: t.Row, Col: t.Col}
	double := t.Kind == sheet.TargetCell && cell == m.lastPressCell && now.Sub(m.lastPress) <= doubleClickGap
	m.lastPress, m.lastPressCell = now, cell
	if double {
		m.lastPress = time.Time{}
	}

	if !m.grid.OnPointerDown(t.Row, t.Col, mods, double) {
		return
	}
	if double {
		m.input.SetValue(m.grid.CellValue(t.Row, t.Col))
		m.input.CursorEnd()
		m.input.Focus()
	}
	m.syncCursor()
}

func (m *Model) scroll(dRows, dCols float32) {
	m.scrollTop += dRows * m.grid.Config().RowHeight
	m.scrollLeft += dCols * m.grid.Config().ColWidth
	m.clampScroll()
	m.pushViewport()
}
