package tui

import "github.com/go-theft-auto/sheet"

// Config returns a grid configuration measured in terminal cells: one line
// per row and ten columns per column.
func Config() sheet.Config {
	cfg := sheet.DefaultConfig()
	cfg.RowHeight = 1
	cfg.ColWidth = 10
	cfg.MinRowHeight = 1
	cfg.MinColWidth = 3
	cfg.HeaderHeight = 1
	cfg.HeaderWidth = 6
	return cfg
}
