package production

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWeight(t *testing.T) {
	assert.Equal(t, 25.00, ComputeWeight(100, 0.25))
	assert.Equal(t, 0.13, ComputeWeight(0.5, 0.25))
	assert.Equal(t, 1234.57, ComputeWeight(1000, 1.234567))
}

func TestComputeWeight_InvalidInputs(t *testing.T) {
	assert.Equal(t, 0.0, ComputeWeight(0, 0.25))
	assert.Equal(t, 0.0, ComputeWeight(-5, 0.25))
	assert.Equal(t, 0.0, ComputeWeight(100, 0))
	assert.Equal(t, 0.0, ComputeWeight(100, -0.1))
	assert.Equal(t, 0.0, ComputeWeight(math.NaN(), 0.25))
	assert.Equal(t, 0.0, ComputeWeight(100, math.NaN()))
}

func TestComputeEfficiency(t *testing.T) {
	assert.Equal(t, 80.00, ComputeEfficiency(8000, 10000))
	assert.Equal(t, 33.33, ComputeEfficiency(1, 3))
	assert.Equal(t, 100.00, ComputeEfficiency(10000, 10000))
}

func TestComputeEfficiency_CappedAt100(t *testing.T) {
	// raw ratio is 150%, stored value stays capped
	assert.Equal(t, 100.00, ComputeEfficiency(15000, 10000))
}

func TestComputeEfficiency_UnresolvedTarget(t *testing.T) {
	assert.Equal(t, 0.0, ComputeEfficiency(8000, 0))
	assert.Equal(t, 0.0, ComputeEfficiency(8000, -1))
	assert.Equal(t, 0.0, ComputeEfficiency(0, 10000))
	assert.Equal(t, 0.0, ComputeEfficiency(math.NaN(), 10000))
	assert.Equal(t, 0.0, ComputeEfficiency(8000, math.NaN()))
}

func TestDerivation_Idempotent(t *testing.T) {
	w1 := ComputeWeight(123.45, 0.678)
	w2 := ComputeWeight(123.45, 0.678)
	assert.Equal(t, w1, w2)

	e1 := ComputeEfficiency(8321, 9000)
	e2 := ComputeEfficiency(8321, 9000)
	assert.Equal(t, e1, e2)

	// rounding an already-rounded value changes nothing
	assert.Equal(t, w1, Round2(w1))
	assert.Equal(t, e1, Round2(e1))
}

func TestBatchEfficiency(t *testing.T) {
	// 3000+4000+1000 = 8000 over a shared 10000 target
	assert.Equal(t, 80.00, BatchEfficiency([]float64{3000, 4000, 1000}, 10000))
}

func TestBatchEfficiency_SkipsInvalidEntries(t *testing.T) {
	assert.Equal(t, 80.00, BatchEfficiency([]float64{8000, -500, math.NaN()}, 10000))
}

func TestBatchEfficiency_CappedAt100(t *testing.T) {
	assert.Equal(t, 100.00, BatchEfficiency([]float64{9000, 6000}, 10000))
}

func TestBatchEfficiency_NoTarget(t *testing.T) {
	assert.Equal(t, 0.0, BatchEfficiency([]float64{8000}, 0))
}

func TestEfficiencyStatus(t *testing.T) {
	assert.Equal(t, StatusGood, EfficiencyStatus(8000, 10000))
	assert.Equal(t, StatusExcellent, EfficiencyStatus(9000, 10000))
	assert.Equal(t, StatusExcellent, EfficiencyStatus(10000, 10000))
	assert.Equal(t, StatusOverTarget, EfficiencyStatus(15000, 10000))
	assert.Equal(t, StatusLow, EfficiencyStatus(7999, 10000))
	assert.Equal(t, StatusTargetNotFound, EfficiencyStatus(8000, 0))
}
