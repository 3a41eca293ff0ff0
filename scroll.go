package sheet

// MaxScroll returns the largest scroll offset along a that still fills a
// view of the given size.
func MaxScroll(a *Axis, view float32) float32 {
	return max(0, a.Total()-view)
}

// ClampScroll limits scroll to [0, MaxScroll(a, view)].
func ClampScroll(a *Axis, scroll, view float32) float32 {
	return clampf(scroll, 0, MaxScroll(a, view))
}

// ScrollToReveal returns the scroll offset that brings index i fully into a
// view of the given size, moving as little as possible. An index already in
// view, or out of range, leaves scroll unchanged.
func ScrollToReveal(a *Axis, i int, scroll, view float32) float32 {
	if i < 0 || i >= a.Len() {
		return scroll
	}
	top := a.Offset(i)
	bottom := top + a.Size(i)

	switch {
	case top < scroll:
		return top
	case bottom > scroll+view:
		// Tall items keep their start visible.
		return min(top, bottom-view)
	}
	return scroll
}
