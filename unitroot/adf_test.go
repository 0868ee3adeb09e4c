package unitroot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gounitroot/timeseries"
)

func TestADFStationarySeries(t *testing.T) {
	series := timeseries.New(ar1Series(500, 0.2, 1))
	adf, err := NewADF(series)
	require.NoError(t, err)

	p, err := adf.PValue()
	require.NoError(t, err)
	assert.Less(t, p, 0.01, "strongly mean-reverting series should reject a unit root")

	stat, err := adf.Stat()
	require.NoError(t, err)
	assert.Negative(t, stat)
}

func TestADFRandomWalk(t *testing.T) {
	stationary := timeseries.New(ar1Series(500, 0.2, 1))
	walk := timeseries.New(randomWalk(500, 1))

	adfStat, err := NewADF(stationary)
	require.NoError(t, err)
	adfWalk, err := NewADF(walk)
	require.NoError(t, err)

	pStat, err := adfStat.PValue()
	require.NoError(t, err)
	pWalk, err := adfWalk.PValue()
	require.NoError(t, err)
	assert.Greater(t, pWalk, pStat)
}

func TestADFCriticalValuesOrdered(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(200, 5)))
	require.NoError(t, err)

	cv, err := adf.CriticalValues()
	require.NoError(t, err)
	require.Len(t, cv, 3)
	assert.Less(t, cv["1%"], cv["5%"])
	assert.Less(t, cv["5%"], cv["10%"])
}

func TestADFIdempotent(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(300, 9)))
	require.NoError(t, err)

	s1, err := adf.Stat()
	require.NoError(t, err)
	s2, err := adf.Stat()
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestADFInvalidation(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(300, 13)))
	require.NoError(t, err)

	res1, err := adf.Regression()
	require.NoError(t, err)

	// Setting the current trend must not discard the cached result.
	require.NoError(t, adf.SetTrend(TrendConstant))
	res2, err := adf.Regression()
	require.NoError(t, err)
	assert.Same(t, res1, res2)

	// Changing the trend recomputes.
	require.NoError(t, adf.SetTrend(TrendConstantTrend))
	res3, err := adf.Regression()
	require.NoError(t, err)
	assert.NotSame(t, res1, res3)
}

func TestADFLagsPersistAcrossTrendChange(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(300, 17)))
	require.NoError(t, err)

	lags, err := adf.Lags()
	require.NoError(t, err)

	require.NoError(t, adf.SetTrend(TrendConstantTrend))
	lagsAfter, err := adf.Lags()
	require.NoError(t, err)
	assert.Equal(t, lags, lagsAfter, "selected lag length should survive a trend change")
}

func TestADFSetLags(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(300, 21)))
	require.NoError(t, err)

	require.NoError(t, adf.SetLags(4))
	lags, err := adf.Lags()
	require.NoError(t, err)
	assert.Equal(t, 4, lags)

	res1, err := adf.Regression()
	require.NoError(t, err)
	require.NoError(t, adf.SetLags(4))
	res2, err := adf.Regression()
	require.NoError(t, err)
	assert.Same(t, res1, res2)

	assert.Error(t, adf.SetLags(-1))

	adf.ClearLags()
	lags, err = adf.Lags()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lags, 0)
}

func TestADFSetMaxLags(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(300, 25)))
	require.NoError(t, err)

	adf.SetMaxLags(2)
	lags, err := adf.Lags()
	require.NoError(t, err)
	assert.LessOrEqual(t, lags, 2)
}

func TestADFMethods(t *testing.T) {
	for _, method := range []string{"aic", "BIC", "t-stat"} {
		adf, err := NewADF(timeseries.New(randomWalk(300, 29)))
		require.NoError(t, err)
		require.NoError(t, adf.SetMethod(method))

		p, err := adf.PValue()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}

	adf, err := NewADF(timeseries.New(randomWalk(100, 29)))
	require.NoError(t, err)
	assert.Error(t, adf.SetMethod("hqic"))
}

func TestADFMethodChangeReselectsLags(t *testing.T) {
	y := timeseries.New(randomWalk(250, 41))

	adf, err := NewADF(y)
	require.NoError(t, err)
	_, err = adf.Lags()
	require.NoError(t, err)

	// Switching the criterion after a computation must discard the
	// selected lag count and re-run selection on the next read.
	require.NoError(t, adf.SetMethod("t-stat"))
	assert.False(t, adf.lagsSet)

	lags, err := adf.Lags()
	require.NoError(t, err)

	fresh, err := NewADF(y)
	require.NoError(t, err)
	require.NoError(t, fresh.SetMethod("t-stat"))
	freshLags, err := fresh.Lags()
	require.NoError(t, err)
	assert.Equal(t, freshLags, lags)

	// A lag count fixed with SetLags is unaffected by the criterion.
	require.NoError(t, adf.SetLags(3))
	require.NoError(t, adf.SetMethod("bic"))
	lags, err = adf.Lags()
	require.NoError(t, err)
	assert.Equal(t, 3, lags)
}

func TestADFLowMemoryChangeReselectsLags(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(250, 45)))
	require.NoError(t, err)
	_, err = adf.Lags()
	require.NoError(t, err)
	require.True(t, adf.lagsSet)

	adf.SetLowMemory(true)
	assert.False(t, adf.lagsSet)
	assert.Equal(t, stateStale, adf.state)
}

func TestADFLowMemoryMatches(t *testing.T) {
	y := timeseries.New(ar1Series(400, 0.5, 33))

	std, err := NewADF(y)
	require.NoError(t, err)
	low, err := NewADF(y)
	require.NoError(t, err)
	low.SetLowMemory(true)

	sStd, err := std.Stat()
	require.NoError(t, err)
	sLow, err := low.Stat()
	require.NoError(t, err)
	assert.InDelta(t, sStd, sLow, 1e-8)
}

func TestADFInvalidTrend(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(100, 37)))
	require.NoError(t, err)
	assert.Error(t, adf.SetTrend(Trend("tc")))
}

func TestADFSummary(t *testing.T) {
	adf, err := NewADF(timeseries.New(randomWalk(200, 41)))
	require.NoError(t, err)

	s, err := adf.Summary()
	require.NoError(t, err)
	assert.Contains(t, s, "Augmented Dickey-Fuller Results")
	assert.Contains(t, s, "Test Statistic")
	assert.Contains(t, s, "Critical Values:")
	assert.Contains(t, s, "Null Hypothesis: The process contains a unit root.")
}

func TestADFNilSeries(t *testing.T) {
	_, err := NewADF(nil)
	assert.Error(t, err)
}
