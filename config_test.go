package sheet

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"zero rows", func(c *Config) { c.InitialRows = 0 }},
		{"negative cols", func(c *Config) { c.InitialCols = -1 }},
		{"max below initial", func(c *Config) { c.MaxRows = c.InitialRows - 1 }},
		{"zero row height", func(c *Config) { c.RowHeight = 0 }},
		{"zero min width", func(c *Config) { c.MinColWidth = 0 }},
		{"min above default", func(c *Config) { c.MinRowHeight = c.RowHeight + 1 }},
		{"negative header", func(c *Config) { c.HeaderWidth = -1 }},
		{"negative buffer", func(c *Config) { c.Buffer = -1 }},
		{"negative margin", func(c *Config) { c.ColGrowMargin = -1 }},
		{"zero batch", func(c *Config) { c.RowGrowBatch = 0 }},
		{"buffer above max cols", func(c *Config) { c.Buffer = c.MaxCols + 1 }},
		{"huge buffer", func(c *Config) { c.Buffer = math.MaxInt }},
		{"row margin above max", func(c *Config) { c.RowGrowMargin = c.MaxRows + 1 }},
		{"col margin above max", func(c *Config) { c.ColGrowMargin = math.MaxInt }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_ZeroHeadersAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeaderHeight, cfg.HeaderWidth = 0, 0
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_RejectsOversizedBuffer(t *testing.T) {
	path := writeConfig(t, "buffer = 9223372036854775807\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
initial_rows = 200
max_rows = 50000
row_height = 24.0
buffer = 8
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.InitialRows = 200
	want.MaxRows = 50000
	want.RowHeight = 24
	want.Buffer = 8
	assert.Equal(t, want, cfg)
}

func TestLoadConfigFrom_KeepsBase(t *testing.T) {
	base := DefaultConfig()
	base.RowHeight, base.MinRowHeight = 1, 1
	path := writeConfig(t, "initial_cols = 5\n")

	cfg, err := LoadConfigFrom(path, base)
	require.NoError(t, err)
	assert.Equal(t, float32(1), cfg.RowHeight)
	assert.Equal(t, 5, cfg.InitialCols)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeConfig(t, "initial_rows = 0\n")
	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "initial_rows = = 3"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
