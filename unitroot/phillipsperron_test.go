package unitroot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gounitroot/timeseries"
)

func TestPhillipsPerronStationarySeries(t *testing.T) {
	pp, err := NewPhillipsPerron(timeseries.New(ar1Series(500, 0.2, 1)))
	require.NoError(t, err)

	p, err := pp.PValue()
	require.NoError(t, err)
	assert.Less(t, p, 0.01)
}

func TestPhillipsPerronRandomWalk(t *testing.T) {
	stationary, err := NewPhillipsPerron(timeseries.New(ar1Series(500, 0.2, 1)))
	require.NoError(t, err)
	walk, err := NewPhillipsPerron(timeseries.New(randomWalk(500, 1)))
	require.NoError(t, err)

	pStat, err := stationary.PValue()
	require.NoError(t, err)
	pWalk, err := walk.PValue()
	require.NoError(t, err)
	assert.Greater(t, pWalk, pStat)
}

func TestPhillipsPerronDefaultLags(t *testing.T) {
	n := 500
	pp, err := NewPhillipsPerron(timeseries.New(randomWalk(n, 5)))
	require.NoError(t, err)

	lags, err := pp.Lags()
	require.NoError(t, err)
	want := int(math.Ceil(12.0 * math.Pow(float64(n)/100.0, 0.25)))
	assert.Equal(t, want, lags)
}

func TestPhillipsPerronTestTypes(t *testing.T) {
	pp, err := NewPhillipsPerron(timeseries.New(randomWalk(300, 9)))
	require.NoError(t, err)
	assert.Equal(t, TestTau, pp.TestType())

	tau, err := pp.Stat()
	require.NoError(t, err)

	require.NoError(t, pp.SetTestType(TestRho))
	rho, err := pp.Stat()
	require.NoError(t, err)
	assert.NotEqual(t, tau, rho)

	// The rho statistic scales with the sample size; for a unit-root
	// process both should be moderate, for a stationary one rho is far
	// more negative than tau.
	s, err := pp.Summary()
	require.NoError(t, err)
	assert.Contains(t, s, "Phillips-Perron Test (Z-rho)")

	assert.Error(t, pp.SetTestType(TestType("sigma")))
}

func TestPhillipsPerronRhoStationary(t *testing.T) {
	pp, err := NewPhillipsPerron(timeseries.New(ar1Series(500, 0.2, 13)))
	require.NoError(t, err)
	require.NoError(t, pp.SetTestType(TestRho))

	p, err := pp.PValue()
	require.NoError(t, err)
	assert.Less(t, p, 0.01)
}

func TestPhillipsPerronTrends(t *testing.T) {
	pp, err := NewPhillipsPerron(timeseries.New(randomWalk(300, 17)))
	require.NoError(t, err)

	assert.Error(t, pp.SetTrend(TrendConstantTrendSquared))

	for _, trend := range []Trend{TrendNone, TrendConstant, TrendConstantTrend} {
		require.NoError(t, pp.SetTrend(trend))
		p, err := pp.PValue()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestPhillipsPerronNoOpSetters(t *testing.T) {
	pp, err := NewPhillipsPerron(timeseries.New(randomWalk(300, 21)))
	require.NoError(t, err)

	_, err = pp.Stat()
	require.NoError(t, err)

	// A no-op setter must leave the cached result fresh.
	require.NoError(t, pp.SetTestType(TestTau))
	assert.Equal(t, stateFresh, pp.state)

	require.NoError(t, pp.SetTestType(TestRho))
	assert.Equal(t, stateStale, pp.state)
}
