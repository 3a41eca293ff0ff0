package sheet

// Style defines the visual appearance of the grid when drawn by DrawGrid.
type Style struct {
	// Cells
	CellBgColor   uint32
	CellTextColor uint32
	GridLineColor uint32

	// Selection
	SelectedBgColor    uint32
	SelectionBorder    uint32
	SelectionThickness float32
	EditingBgColor     uint32

	// Headers
	HeaderBgColor          uint32
	HeaderTextColor        uint32
	HeaderHighlightBgColor uint32 // Some cell in the row/column is selected
	HeaderSelectedBgColor  uint32 // Whole row/column is selected
	HeaderSelectedText     uint32

	// Text
	CharWidth   float32
	CharHeight  float32
	CellPadding float32
}

// DefaultStyle returns a light spreadsheet style sized for the 8x8 bitmap font.
func DefaultStyle() Style {
	return Style{
		CellBgColor:   ColorWhite,
		CellTextColor: ColorBlack,
		GridLineColor: RGBA(218, 220, 224, 255),

		SelectedBgColor:    RGBA(232, 240, 254, 255),
		SelectionBorder:    RGBA(26, 115, 232, 255),
		SelectionThickness: 2,
		EditingBgColor:     RGBA(255, 251, 230, 255),

		HeaderBgColor:          RGBA(248, 249, 250, 255),
		HeaderTextColor:        RGBA(95, 99, 104, 255),
		HeaderHighlightBgColor: RGBA(211, 227, 253, 255),
		HeaderSelectedBgColor:  RGBA(26, 115, 232, 255),
		HeaderSelectedText:     ColorWhite,

		CharWidth:   8,
		CharHeight:  8,
		CellPadding: 4,
	}
}

// DarkStyle returns a dark variant of DefaultStyle.
func DarkStyle() Style {
	s := DefaultStyle()
	s.CellBgColor = RGBA(30, 30, 34, 255)
	s.CellTextColor = ColorLightGray
	s.GridLineColor = ColorDarkGray
	s.SelectedBgColor = RGBA(40, 56, 86, 255)
	s.EditingBgColor = RGBA(60, 56, 30, 255)
	s.HeaderBgColor = RGBA(45, 45, 50, 255)
	s.HeaderTextColor = ColorGray
	s.HeaderHighlightBgColor = RGBA(52, 70, 102, 255)
	return s
}
