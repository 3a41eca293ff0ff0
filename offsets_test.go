package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeOffsets_Cumulative(t *testing.T) {
	offs := RecomputeOffsets(nil, []float32{30, 10, 50})
	require.Equal(t, OffsetTable{0, 30, 40, 90}, offs)
	assert.Equal(t, 3, offs.Count())
	assert.Equal(t, float32(90), offs.Total())
}

func TestRecomputeOffsets_ReusesBackingArray(t *testing.T) {
	dst := make(OffsetTable, 0, 16)
	out := RecomputeOffsets(dst, []float32{1, 2})
	assert.Equal(t, 16, cap(out))
	assert.Equal(t, OffsetTable{0, 1, 3}, out)
}

func TestOffsetTable_Empty(t *testing.T) {
	var offs OffsetTable
	assert.Equal(t, 0, offs.Count())
	assert.Equal(t, float32(0), offs.Total())
	assert.Equal(t, 0, offs.IndexForOffset(100))

	offs = RecomputeOffsets(nil, nil)
	assert.Equal(t, 0, offs.Count())
	assert.Equal(t, 0, offs.IndexForOffset(5))
}

func TestOffsetTable_IndexForOffset(t *testing.T) {
	offs := RecomputeOffsets(nil, []float32{30, 10, 50, 20})

	tests := []struct {
		px   float32
		want int
	}{
		{-100, 0},
		{0, 0},
		{29.9, 0},
		{30, 1},
		{39, 1},
		{40, 2},
		{89.5, 2},
		{90, 3},
		{109, 3},
		{110, 3}, // at the end
		{5000, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, offs.IndexForOffset(tt.px), "px=%v", tt.px)
	}
}

func TestOffsetTable_MonotoneAndConsistent(t *testing.T) {
	sizes := make([]float32, 500)
	for i := range sizes {
		sizes[i] = float32(10 + i%7)
	}
	offs := RecomputeOffsets(nil, sizes)

	for i := 1; i < len(offs); i++ {
		require.Greater(t, offs[i], offs[i-1])
		require.Equal(t, offs[i-1]+sizes[i-1], offs[i])
	}
	// The start of every entry maps back to it, as does its last pixel.
	for i := range sizes {
		require.Equal(t, i, offs.IndexForOffset(offs[i]))
		require.Equal(t, i, offs.IndexForOffset(offs[i+1]-0.5))
	}
}
