/*
Package sheet provides a virtualized spreadsheet grid engine.

# Overview

A Grid owns a conceptually large table of text cells and tells its host which
part of it to draw. Only cells holding a value use memory; rows and columns
are materialized lazily as the viewport approaches the end of the current
extent. The host draws; the grid never touches a screen.

The engine is made of small parts that can be used on their own:

	OffsetTable         cumulative offsets with O(log n) pixel-to-index lookup
	Axis                sizes and offsets of one dimension, growth and insert/delete
	SparseStore         text values keyed by Coord, with a modified set
	GrowthPolicy        how many rows/columns to add when the viewport nears the end
	ViewportCalculator  visible range plus buffer, growing the axes when needed
	Selection           set of selected cells with an anchor and border masks
	Clipboard           single-slot snapshot with relative paste
	Scheduler           per-class coalescing of deferred work

# Quick Start

	g, err := sheet.New(sheet.DefaultConfig(),
	    sheet.WithHost(sheet.HostFunc(func(r sheet.VisibleRange) {
	        // draw rows r.RowStart..r.RowEnd, cols r.ColStart..r.ColEnd
	    })),
	)
	if err != nil {
	    return err
	}

	// Host event loop
	for running {
	    // forward events
	    g.OnViewportChanged(scrollTop, scrollLeft, width, height)
	    g.OnPointerDown(row, col, sheet.Modifiers{Shift: shift}, false)

	    // once per frame
	    if g.Tick() {
	        dl := sheet.AcquireDrawList()
	        sheet.DrawGrid(dl, g, sheet.DefaultStyle(), frame)
	        renderer.Render(dl)
	        sheet.ReleaseDrawList(dl)
	    }
	}

# Coordinates

Positions passed to the grid are content pixels: (0, 0) is the top-left of
cell A1 regardless of scrolling. Frame converts between screen and content
space and resolves screen positions to cells, headers and resize handles.

Row and column headers are addressed with HeaderIndex:

	OnPointerDown(HeaderIndex, 3, ...)            select column D
	OnPointerDown(7, HeaderIndex, ...)            select row 8
	OnPointerDown(HeaderIndex, HeaderIndex, ...)  select everything

# Event Coalescing

Pointer moves, scrolls and resize drags are deferred to the next Tick. Within
one frame a newer event of the same class replaces the older one, so a burst
of scroll events costs one recomputation. Edit commits and commands apply
immediately.

# Growth

When the last visible row (or column) comes within the growth margin of the
extent, the axis grows by whole batches, enough to cover the viewport, the
buffer and the margin in one step. Growth stops at MaxRows/MaxCols. Inserting
a row or column at the maximum extent is refused.

# Keyboard Shortcuts Reference

CommandForKey maps these chords for hosts that report them:

	Ctrl+C             Copy selection
	Ctrl+X             Cut selection
	Ctrl+V             Paste at anchor
	Ctrl+A             Select all
	Delete, Backspace  Clear selected cells
	Insert             Insert row above anchor
	Ctrl+Insert        Insert column left of anchor
	Ctrl+Delete        Delete anchor row
	Ctrl+Shift+Delete  Delete anchor column

Pointer:

	Click              Select cell, set anchor
	Shift+Click        Select range from anchor
	Ctrl+Click         Toggle cell
	Drag               Extend range from anchor
	Double-Click       Edit cell
	Header Click       Select row or column (Ctrl adds)
	Header Edge Drag   Resize row or column

# Clipboard

Copy stores each selected cell relative to the first selected cell in
row-major order. Paste writes them at the same offsets from the anchor;
cells that would land outside the extent are dropped, and paste never grows
the grid. A ClipboardProvider, when set, receives a tab-separated copy of
the selection's bounding box:

	type GLFWClipboard struct {
	    window *glfw.Window
	}

	func (c *GLFWClipboard) GetText() string {
	    return c.window.GetClipboardString()
	}

	func (c *GLFWClipboard) SetText(text string) {
	    c.window.SetClipboardString(text)
	}

# Configuration

Config holds sizes, limits and growth parameters. LoadConfig reads a TOML file
over the defaults:

	initial_rows = 200
	max_rows     = 50000
	row_height   = 24.0
	buffer       = 8

# Logging

The package logs through log/slog at Debug level: growth, refused inserts and
deletes, and pasted cells dropped at the edge. Call SetVerbose(true) to see
them, or pass WithLogger.

# Threading

A Grid is not safe for concurrent use. Call every method from the host's
event thread.
*/
package sheet
