package unitroot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gounitroot/timeseries"
)

func TestVarianceRatioLagsValidation(t *testing.T) {
	_, err := NewVarianceRatio(timeseries.New(randomWalk(100, 1)), 1)
	assert.Error(t, err)
	_, err = NewVarianceRatio(timeseries.New(randomWalk(100, 1)), 0)
	assert.Error(t, err)

	vr, err := NewVarianceRatio(timeseries.New(randomWalk(100, 1)), 2)
	require.NoError(t, err)
	assert.Error(t, vr.SetLags(1))
	require.NoError(t, vr.SetLags(4))
}

// integrate cumulates increments into a level series.
func integrate(increments []float64) []float64 {
	y := make([]float64, len(increments))
	total := 0.0
	for i, v := range increments {
		total += v
		y[i] = total
	}
	return y
}

func TestVarianceRatioSeriallyCorrelated(t *testing.T) {
	// Persistent increments make the variance ratio exceed one and reject
	// the random walk null.
	vr, err := NewVarianceRatio(timeseries.New(integrate(ar1Series(1000, 0.9, 1))), 2)
	require.NoError(t, err)

	ratio, err := vr.VR()
	require.NoError(t, err)
	assert.Greater(t, ratio, 1.0)

	p, err := vr.PValue()
	require.NoError(t, err)
	assert.Less(t, p, 0.01)

	stat, err := vr.Stat()
	require.NoError(t, err)
	assert.Positive(t, stat)
}

func TestVarianceRatioRandomWalkModerate(t *testing.T) {
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(1000, 3)), 4)
	require.NoError(t, err)

	stat, err := vr.Stat()
	require.NoError(t, err)
	assert.Less(t, math.Abs(stat), 6.0, "random walk statistic should be moderate")
}

func TestVarianceRatioCriticalValues(t *testing.T) {
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(500, 5)), 2)
	require.NoError(t, err)

	cv, err := vr.CriticalValues()
	require.NoError(t, err)
	require.Len(t, cv, 6)
	assert.InDelta(t, -2.3263, cv["1%"], 1e-4)
	assert.InDelta(t, -1.6449, cv["5%"], 1e-4)
	assert.InDelta(t, 1.6449, cv["95%"], 1e-4)
	assert.InDelta(t, 2.3263, cv["99%"], 1e-4)
}

func TestVarianceRatioNonOverlapTruncates(t *testing.T) {
	// 102 observations leave 101 differences, not a multiple of 4.
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(102, 7)), 4)
	require.NoError(t, err)
	vr.SetOverlap(false)

	_, err = vr.Stat()
	require.NoError(t, err)

	warnings, err := vr.Warnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "dropped")

	s, err := vr.Summary()
	require.NoError(t, err)
	assert.Contains(t, s, "Computed with non-overlapping blocks")
}

func TestVarianceRatioOverlapExactLength(t *testing.T) {
	// 101 observations leave exactly 25 non-overlapping blocks of 4.
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(101, 9)), 4)
	require.NoError(t, err)
	vr.SetOverlap(false)

	_, err = vr.Stat()
	require.NoError(t, err)
	warnings, err := vr.Warnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestVarianceRatioFlagVariants(t *testing.T) {
	for _, robust := range []bool{true, false} {
		for _, debiased := range []bool{true, false} {
			vr, err := NewVarianceRatio(timeseries.New(randomWalk(500, 11)), 4)
			require.NoError(t, err)
			vr.SetRobust(robust)
			vr.SetDebiased(debiased)

			p, err := vr.PValue()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestVarianceRatioNoOpSetters(t *testing.T) {
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(500, 13)), 4)
	require.NoError(t, err)

	_, err = vr.Stat()
	require.NoError(t, err)

	vr.SetRobust(true)
	vr.SetDebiased(true)
	vr.SetOverlap(true)
	assert.Equal(t, stateFresh, vr.state)

	vr.SetRobust(false)
	assert.Equal(t, stateStale, vr.state)
}

func TestVarianceRatioTrendNone(t *testing.T) {
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(500, 15)), 4)
	require.NoError(t, err)
	assert.Error(t, vr.SetTrend(TrendConstantTrend))
	require.NoError(t, vr.SetTrend(TrendNone))

	p, err := vr.PValue()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestVarianceRatioSummary(t *testing.T) {
	vr, err := NewVarianceRatio(timeseries.New(randomWalk(300, 17)), 2)
	require.NoError(t, err)

	s, err := vr.Summary()
	require.NoError(t, err)
	assert.Contains(t, s, "Variance-Ratio Test Results")
	assert.Contains(t, s, "Computed with overlapping blocks (de-biased)")
	assert.Contains(t, s, "Null Hypothesis: The process is a random walk.")
}
