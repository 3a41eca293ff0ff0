package sheet

import "errors"

var (
	// ErrInvalidConfig is returned by New and LoadConfig when the grid
	// configuration cannot produce a usable grid.
	ErrInvalidConfig = errors.New("sheet: invalid config")

	// ErrOutOfRange reports a coordinate outside the materialized extent.
	ErrOutOfRange = errors.New("sheet: coordinate out of range")
)
