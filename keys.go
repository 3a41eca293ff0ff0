package sheet

// Modifiers carries the modifier keys held during a pointer or key event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// Key represents a keyboard key that maps to a grid command.
// Hosts translate their native key codes into these.
type Key int

const (
	KeyNone Key = iota
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyCount
)

// CommandForKey maps a key chord to a grid command.
//
//	Ctrl+C             Copy selection
//	Ctrl+X             Cut selection
//	Ctrl+V             Paste at anchor
//	Ctrl+A             Select all
//	Delete, Backspace  Clear selected cells
//	Insert             Insert row above anchor
//	Ctrl+Insert        Insert column left of anchor
//	Ctrl+Delete        Delete anchor row
//	Ctrl+Shift+Delete  Delete anchor column
//
// Row and column commands carry Index -1, meaning "the anchor's index".
func CommandForKey(k Key, mods Modifiers) (Command, bool) {
	switch k {
	case KeyC:
		if mods.Ctrl {
			return Command{Kind: CommandCopy}, true
		}
	case KeyX:
		if mods.Ctrl {
			return Command{Kind: CommandCut}, true
		}
	case KeyV:
		if mods.Ctrl {
			return Command{Kind: CommandPaste}, true
		}
	case KeyA:
		if mods.Ctrl {
			return Command{Kind: CommandSelectAll}, true
		}
	case KeyInsert:
		if mods.Ctrl {
			return Command{Kind: CommandInsertCol, Index: -1}, true
		}
		return Command{Kind: CommandInsertRow, Index: -1}, true
	case KeyDelete:
		switch {
		case mods.Ctrl && mods.Shift:
			return Command{Kind: CommandDeleteCol, Index: -1}, true
		case mods.Ctrl:
			return Command{Kind: CommandDeleteRow, Index: -1}, true
		}
		return Command{Kind: CommandClear}, true
	case KeyBackspace:
		return Command{Kind: CommandClear}, true
	}
	return Command{}, false
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyInsert:    "Ins",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
		KeyA:         "A",
		KeyC:         "C",
		KeyV:         "V",
		KeyX:         "X",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
