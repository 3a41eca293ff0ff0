package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureText(t *testing.T) {
	assert.Equal(t, float32(24), MeasureText("abc", 8))
	assert.Equal(t, float32(16), MeasureText("é€", 8), "runes, not bytes")
	assert.Zero(t, MeasureText("", 8))
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text     string
		maxWidth float32
		want     string
	}{
		{"short", 100, "short"},
		{"abcdefgh", 64, "abcdefgh"},
		{"abcdefgh", 50, "abcd.."},
		{"abcdefgh", 16, ".."},
		{"abcdefgh", 12, "."},
		{"abcdefgh", 4, ""},
		{"abcdefgh", 0, ""},
	}
	for _, tt := range tests {
		got := TruncateText(tt.text, 8, tt.maxWidth)
		assert.Equal(t, tt.want, got, "TruncateText(%q, %v)", tt.text, tt.maxWidth)
		assert.LessOrEqual(t, MeasureText(got, 8), max(0, tt.maxWidth))
	}
}
