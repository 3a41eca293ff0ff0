package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxis_New(t *testing.T) {
	a := newAxis(4, 30, 10, 100)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 100, a.Limit())
	assert.Equal(t, float32(120), a.Total())
	assert.Equal(t, float32(60), a.Offset(2))
	assert.Equal(t, float32(120), a.Offset(4), "Offset(Len) is the total")
	assert.Equal(t, float32(0), a.Size(-1))
	assert.Equal(t, float32(0), a.Size(4))
}

func TestAxis_GrowCapsAtLimit(t *testing.T) {
	a := newAxis(8, 30, 10, 10)
	assert.Equal(t, 2, a.Grow(50))
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, 0, a.Grow(1))
	assert.Equal(t, 0, a.Grow(-3))
	assert.Equal(t, float32(300), a.Total())
}

func TestAxis_InsertShiftsOffsets(t *testing.T) {
	a := newAxis(3, 30, 10, 10)
	require.True(t, a.Resize(1, 50))

	require.True(t, a.Insert(1))
	assert.Equal(t, []float32{30, 30, 50, 30}, a.Sizes())
	assert.Equal(t, float32(140), a.Total())
	assert.Equal(t, float32(60), a.Offset(2))

	require.True(t, a.Insert(a.Len()), "append at the end")
	assert.Equal(t, 5, a.Len())
	assert.False(t, a.Insert(-1))
	assert.False(t, a.Insert(a.Len()+1))
}

func TestAxis_InsertRefusedAtLimit(t *testing.T) {
	a := newAxis(3, 30, 10, 3)
	assert.False(t, a.Insert(0))
	assert.Equal(t, 3, a.Len())
}

func TestAxis_DeleteKeepsOne(t *testing.T) {
	a := newAxis(2, 30, 10, 10)
	require.True(t, a.Resize(0, 40))
	require.True(t, a.Delete(0))
	assert.Equal(t, []float32{30}, a.Sizes())
	assert.False(t, a.Delete(0), "last entry is kept")
	assert.False(t, a.Delete(5))
	assert.Equal(t, 1, a.Len())
}

func TestAxis_ResizeClampsToMinimum(t *testing.T) {
	a := newAxis(3, 30, 10, 10)
	assert.True(t, a.Resize(1, 2))
	assert.Equal(t, float32(10), a.Size(1))
	assert.False(t, a.Resize(1, 5), "clamped to the same size")
	assert.False(t, a.Resize(7, 50))
	assert.Equal(t, float32(70), a.Total())
	assert.Equal(t, 2, a.IndexAt(45))
}

func TestAxis_SizesIsACopy(t *testing.T) {
	a := newAxis(2, 30, 10, 10)
	s := a.Sizes()
	s[0] = 999
	assert.Equal(t, float32(30), a.Size(0))
}

func TestAxisKind_String(t *testing.T) {
	assert.Equal(t, "row", AxisRow.String())
	assert.Equal(t, "column", AxisColumn.String())
}
