package sheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPolicy_NoGrowthAwayFromEdge(t *testing.T) {
	a := newAxis(100, 30, 10, 10000)
	p := GrowthPolicy{Margin: 10, Batch: 50}
	assert.Equal(t, 0, p.Plan(a, 89, 2700, 5))
}

func TestGrowthPolicy_BatchesCoverGap(t *testing.T) {
	a := newAxis(100, 30, 10, 10000)
	p := GrowthPolicy{Margin: 10, Batch: 50}

	// Near the edge with no pixel gap: buffer + margin + 1 fits in one batch.
	assert.Equal(t, 50, p.Plan(a, 95, 3000, 5))

	// A jump 100 rows past the end needs several batches at once.
	assert.Equal(t, 150, p.Plan(a, 99, 6000, 5))
}

func TestGrowthPolicy_CappedAtLimit(t *testing.T) {
	a := newAxis(100, 30, 10, 120)
	p := GrowthPolicy{Margin: 10, Batch: 50}
	assert.Equal(t, 20, p.Plan(a, 99, 3300, 5))

	a.Grow(20)
	assert.Equal(t, 0, p.Plan(a, 119, 3600, 5))
}

func TestGrowthPolicy_ZeroBatchTreatedAsOne(t *testing.T) {
	a := newAxis(10, 30, 10, 100)
	p := GrowthPolicy{Margin: 2}
	assert.Equal(t, 8, p.Plan(a, 9, 300, 5))
}

func TestGrowthPolicy_OversizedInputsCapAtLimit(t *testing.T) {
	a := newAxis(100, 30, 10, 10000)
	assert.Equal(t, 9900, GrowthPolicy{Margin: 10, Batch: 50}.Plan(a, 99, 3000, math.MaxInt))
	assert.Equal(t, 9900, GrowthPolicy{Margin: math.MaxInt, Batch: 50}.Plan(a, 0, 0, 5))
	assert.Equal(t, 9900, GrowthPolicy{Margin: 10, Batch: math.MaxInt}.Plan(a, 99, 3000, 5))
	assert.Equal(t, 9900, GrowthPolicy{Margin: 10, Batch: 50}.Plan(a, 99, 1e30, 5))
}
