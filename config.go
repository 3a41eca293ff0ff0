package sheet

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config sizes the grid and tunes virtualization. Pixel values are in the
// host's unit (screen pixels for GL, terminal cells for the TUI).
type Config struct {
	InitialRows int `toml:"initial_rows"`
	InitialCols int `toml:"initial_cols"`
	MaxRows     int `toml:"max_rows"`
	MaxCols     int `toml:"max_cols"`

	RowHeight    float32 `toml:"row_height"`
	ColWidth     float32 `toml:"col_width"`
	MinRowHeight float32 `toml:"min_row_height"`
	MinColWidth  float32 `toml:"min_col_width"`

	// Header strip sizes used by DrawGrid and HitTest callers.
	HeaderHeight float32 `toml:"header_height"`
	HeaderWidth  float32 `toml:"header_width"`

	Buffer int `toml:"buffer"`

	RowGrowMargin int `toml:"row_grow_margin"`
	ColGrowMargin int `toml:"col_grow_margin"`
	RowGrowBatch  int `toml:"row_grow_batch"`
	ColGrowBatch  int `toml:"col_grow_batch"`
}

// DefaultConfig returns a 100x26 grid that can grow to 10,000x1,000.
func DefaultConfig() Config {
	return Config{
		InitialRows:   100,
		InitialCols:   26,
		MaxRows:       10000,
		MaxCols:       1000,
		RowHeight:     30,
		ColWidth:      100,
		MinRowHeight:  10,
		MinColWidth:   20,
		HeaderHeight:  30,
		HeaderWidth:   50,
		Buffer:        5,
		RowGrowMargin: 10,
		ColGrowMargin: 5,
		RowGrowBatch:  50,
		ColGrowBatch:  20,
	}
}

// Validate returns an error wrapping ErrInvalidConfig describing the first problem found.
func (c Config) Validate() error {
	switch {
	case c.InitialRows <= 0 || c.InitialCols <= 0:
		return fmt.Errorf("%w: initial size %dx%d must be positive", ErrInvalidConfig, c.InitialRows, c.InitialCols)
	case c.MaxRows < c.InitialRows || c.MaxCols < c.InitialCols:
		return fmt.Errorf("%w: max size %dx%d below initial size %dx%d", ErrInvalidConfig, c.MaxRows, c.MaxCols, c.InitialRows, c.InitialCols)
	case c.RowHeight <= 0 || c.ColWidth <= 0:
		return fmt.Errorf("%w: default sizes %vx%v must be positive", ErrInvalidConfig, c.RowHeight, c.ColWidth)
	case c.MinRowHeight <= 0 || c.MinColWidth <= 0:
		return fmt.Errorf("%w: minimum sizes %vx%v must be positive", ErrInvalidConfig, c.MinRowHeight, c.MinColWidth)
	case c.MinRowHeight > c.RowHeight || c.MinColWidth > c.ColWidth:
		return fmt.Errorf("%w: minimum sizes exceed default sizes", ErrInvalidConfig)
	case c.HeaderHeight < 0 || c.HeaderWidth < 0:
		return fmt.Errorf("%w: header sizes must not be negative", ErrInvalidConfig)
	case c.Buffer < 0 || c.RowGrowMargin < 0 || c.ColGrowMargin < 0:
		return fmt.Errorf("%w: buffer and growth margins must not be negative", ErrInvalidConfig)
	case c.Buffer > min(c.MaxRows, c.MaxCols):
		return fmt.Errorf("%w: buffer %d exceeds max size %dx%d", ErrInvalidConfig, c.Buffer, c.MaxRows, c.MaxCols)
	case c.RowGrowMargin > c.MaxRows || c.ColGrowMargin > c.MaxCols:
		return fmt.Errorf("%w: growth margins %d/%d exceed max size %dx%d", ErrInvalidConfig, c.RowGrowMargin, c.ColGrowMargin, c.MaxRows, c.MaxCols)
	case c.RowGrowBatch <= 0 || c.ColGrowBatch <= 0:
		return fmt.Errorf("%w: growth batches must be positive", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	return LoadConfigFrom(path, DefaultConfig())
}

// LoadConfigFrom is LoadConfig with a caller-supplied base configuration.
func LoadConfigFrom(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		sheetLogger.Debug("unknown config keys ignored", "path", path, "keys", fmt.Sprint(undecoded))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
