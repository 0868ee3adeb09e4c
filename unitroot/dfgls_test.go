package unitroot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gounitroot/timeseries"
)

func TestDFGLSStationarySeries(t *testing.T) {
	dfgls, err := NewDFGLS(timeseries.New(ar1Series(500, 0.2, 1)))
	require.NoError(t, err)

	p, err := dfgls.PValue()
	require.NoError(t, err)
	assert.Less(t, p, 0.01)

	stat, err := dfgls.Stat()
	require.NoError(t, err)
	assert.Negative(t, stat)
}

func TestDFGLSRandomWalk(t *testing.T) {
	stationary, err := NewDFGLS(timeseries.New(ar1Series(500, 0.2, 1)))
	require.NoError(t, err)
	walk, err := NewDFGLS(timeseries.New(randomWalk(500, 1)))
	require.NoError(t, err)

	pStat, err := stationary.PValue()
	require.NoError(t, err)
	pWalk, err := walk.PValue()
	require.NoError(t, err)
	assert.Greater(t, pWalk, pStat)
}

func TestDFGLSTrends(t *testing.T) {
	dfgls, err := NewDFGLS(timeseries.New(randomWalk(300, 5)))
	require.NoError(t, err)

	// Only constant and constant-plus-trend detrending are defined.
	assert.Error(t, dfgls.SetTrend(TrendNone))
	assert.Error(t, dfgls.SetTrend(TrendConstantTrendSquared))

	s1, err := dfgls.Stat()
	require.NoError(t, err)
	require.NoError(t, dfgls.SetTrend(TrendConstantTrend))
	s2, err := dfgls.Stat()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestDFGLSDetrendRemovesMean(t *testing.T) {
	y := make([]float64, 200)
	noise := lcgNoise(200, 3)
	for i := range y {
		y[i] = 100.0 + noise[i]
	}
	dfgls, err := NewDFGLS(timeseries.New(y))
	require.NoError(t, err)

	detrended, err := dfgls.glsDetrend()
	require.NoError(t, err)
	mean := 0.0
	for _, v := range detrended {
		mean += v
	}
	mean /= float64(len(detrended))
	assert.InDelta(t, 0.0, mean, 1.0, "GLS detrending should remove most of a large constant")
}

func TestDFGLSInvalidation(t *testing.T) {
	dfgls, err := NewDFGLS(timeseries.New(randomWalk(300, 7)))
	require.NoError(t, err)

	res1, err := dfgls.Regression()
	require.NoError(t, err)
	require.NoError(t, dfgls.SetTrend(TrendConstant))
	res2, err := dfgls.Regression()
	require.NoError(t, err)
	assert.Same(t, res1, res2)

	require.NoError(t, dfgls.SetTrend(TrendConstantTrend))
	res3, err := dfgls.Regression()
	require.NoError(t, err)
	assert.NotSame(t, res1, res3)
}

func TestDFGLSMethodChangeReselectsLags(t *testing.T) {
	y := timeseries.New(randomWalk(250, 15))

	dfgls, err := NewDFGLS(y)
	require.NoError(t, err)
	_, err = dfgls.Lags()
	require.NoError(t, err)

	require.NoError(t, dfgls.SetMethod("t-stat"))
	assert.False(t, dfgls.lagsSet)

	lags, err := dfgls.Lags()
	require.NoError(t, err)

	fresh, err := NewDFGLS(y)
	require.NoError(t, err)
	require.NoError(t, fresh.SetMethod("t-stat"))
	freshLags, err := fresh.Lags()
	require.NoError(t, err)
	assert.Equal(t, freshLags, lags)

	dfgls.SetLowMemory(true)
	assert.False(t, dfgls.lagsSet)
}

func TestDFGLSSummary(t *testing.T) {
	dfgls, err := NewDFGLS(timeseries.New(randomWalk(200, 11)))
	require.NoError(t, err)

	s, err := dfgls.Summary()
	require.NoError(t, err)
	assert.Contains(t, s, "Dickey-Fuller GLS Results")
}
