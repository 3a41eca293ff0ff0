package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/sheet"
)

// KeyMap holds the terminal key bindings. Ctrl+Insert and friends are not
// reliably reported by terminals, so row and column edits use alt chords.
type KeyMap struct {
	Up, Down, Left, Right   key.Binding
	ExtendUp, ExtendDown    key.Binding
	ExtendLeft, ExtendRight key.Binding
	PageUp, PageDown        key.Binding
	Edit, Commit, Cancel    key.Binding
	Copy, Cut, Paste        key.Binding
	SelectAll, Clear        key.Binding
	InsertRow, InsertCol    key.Binding
	DeleteRow, DeleteCol    key.Binding
	Quit                    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "right")),
		ExtendUp:    key.NewBinding(key.WithKeys("shift+up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down")),
		ExtendLeft:  key.NewBinding(key.WithKeys("shift+left")),
		ExtendRight: key.NewBinding(key.WithKeys("shift+right")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Edit:        key.NewBinding(key.WithKeys("enter", "f2"), key.WithHelp("enter", "edit")),
		Commit:      key.NewBinding(key.WithKeys("enter", "tab")),
		Cancel:      key.NewBinding(key.WithKeys("esc")),
		Copy:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "copy")),
		Cut:         key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^x", "cut")),
		Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^v", "paste")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("^a", "all")),
		Clear:       key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear")),
		InsertRow:   key.NewBinding(key.WithKeys("insert", "alt+r"), key.WithHelp("ins", "insert row")),
		InsertCol:   key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "insert col")),
		DeleteRow:   key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "delete row")),
		DeleteCol:   key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "delete col")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Copy, k.Paste, k.InsertRow, k.DeleteRow, k.Quit}
}

// command maps a binding to a grid command. Row and column commands target
// the anchor.
func (k KeyMap) command(msg tea.KeyMsg) (sheet.Command, bool) {
	switch {
	case key.Matches(msg, k.Copy):
		return sheet.Command{Kind: sheet.CommandCopy}, true
	case key.Matches(msg, k.Cut):
		return sheet.Command{Kind: sheet.CommandCut}, true
	case key.Matches(msg, k.Paste):
		return sheet.Command{Kind: sheet.CommandPaste}, true
	case key.Matches(msg, k.SelectAll):
		return sheet.Command{Kind: sheet.CommandSelectAll}, true
	case key.Matches(msg, k.Clear):
		return sheet.Command{Kind: sheet.CommandClear}, true
	case key.Matches(msg, k.InsertRow):
		return sheet.Command{Kind: sheet.CommandInsertRow, Index: -1}, true
	case key.Matches(msg, k.InsertCol):
		return sheet.Command{Kind: sheet.CommandInsertCol, Index: -1}, true
	case key.Matches(msg, k.DeleteRow):
		return sheet.Command{Kind: sheet.CommandDeleteRow, Index: -1}, true
	case key.Matches(msg, k.DeleteCol):
		return sheet.Command{Kind: sheet.CommandDeleteCol, Index: -1}, true
	}
	return sheet.Command{}, false
}

func matches(msg tea.KeyMsg, b key.Binding) bool { return key.Matches(msg, b) }
