package sheet

import "unicode/utf8"

// MeasureText returns the width of text in the fixed-width bitmap font.
func MeasureText(text string, charWidth float32) float32 {
	return float32(utf8.RuneCountInString(text)) * charWidth
}

// TruncateText shortens text to fit within maxWidth, ending it with ".."
// (or "." when only that fits). It returns "" when not even one dot fits.
func TruncateText(text string, charWidth, maxWidth float32) string {
	if maxWidth <= 0 || charWidth <= 0 {
		return ""
	}
	if MeasureText(text, charWidth) <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		avail := maxWidth - MeasureText(suffix, charWidth)
		if avail < 0 {
			continue
		}
		runes := []rune(text)
		return string(runes[:min(int(avail/charWidth), len(runes))]) + suffix
	}
	return ""
}
