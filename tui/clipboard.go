package tui

import (
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/go-theft-auto/sheet"
)

// SystemClipboard implements sheet.ClipboardProvider with the OS clipboard
// (xclip/xsel/wl-clipboard on Linux, pbcopy on macOS).
type SystemClipboard struct {
	// Logger receives clipboard failures. Nil discards them.
	Logger *slog.Logger
}

var _ sheet.ClipboardProvider = SystemClipboard{}

// Available reports whether a clipboard utility was found.
func (c SystemClipboard) Available() bool { return !clipboard.Unsupported }

// GetText returns the clipboard contents, "" on failure.
func (c SystemClipboard) GetText() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		c.log("clipboard read failed", err)
		return ""
	}
	return s
}

// SetText replaces the clipboard contents.
func (c SystemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		c.log("clipboard write failed", err)
	}
}

func (c SystemClipboard) log(msg string, err error) {
	if c.Logger != nil {
		c.Logger.Debug(msg, "error", err)
	}
}
