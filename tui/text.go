package tui

import (
	"strings"

	"github.com/rivo/uniseg"
)

// fit pads or truncates s to exactly width terminal columns. Truncated text
// ends in an ellipsis when there is room for one.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := uniseg.StringWidth(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	if width == 1 {
		return "…"
	}
	head, hw := takeWidth(s, width-1)
	return head + "…" + strings.Repeat(" ", width-1-hw)
}

// center places s in the middle of width columns, truncating as fit does.
func center(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return fit(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// takeWidth returns the longest prefix of s made of whole grapheme clusters
// that fits in width columns, and its width.
func takeWidth(s string, width int) (string, int) {
	var (
		b       strings.Builder
		used    int
		cluster string
		cw      int
	)
	state := -1
	for len(s) > 0 {
		cluster, s, cw, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+cw > width {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	return b.String(), used
}

// sliceColumns returns the part of s between display columns from and to.
// A wide cluster cut by either bound is replaced by spaces so the result is
// always to-from columns wide.
func sliceColumns(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var (
		b       strings.Builder
		col     int
		cluster string
		cw      int
	)
	state := -1
	for len(s) > 0 && col < to {
		cluster, s, cw, state = uniseg.FirstGraphemeClusterInString(s, state)
		end := col + cw
		switch {
		case end <= from:
		case col >= from && end <= to:
			b.WriteString(cluster)
		default:
			b.WriteString(strings.Repeat(" ", min(end, to)-max(col, from)))
		}
		col = end
	}
	if col < to {
		b.WriteString(strings.Repeat(" ", to-max(col, from)))
	}
	return b.String()
}
