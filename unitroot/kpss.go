package unitroot

import (
	"math"

	"github.com/sartorproj/gounitroot/regression"
	"github.com/sartorproj/gounitroot/timeseries"
)

// KPSS is the Kwiatkowski, Phillips, Schmidt and Shin stationarity test.
// Unlike the other tests the null hypothesis is that the series is weakly
// stationary, with a unit root as the alternative.
type KPSS struct {
	unitRootTest

	legacyLagSelection bool
	resids             []float64
}

// NewKPSS creates a KPSS test of series with a constant term. Bandwidth
// for the long-run variance estimate is chosen with the data-dependent
// method of Hobijn, Franses and Ooms unless a lag count is set explicitly.
func NewKPSS(series *timeseries.Series) (*KPSS, error) {
	base, err := newUnitRootTest(series, TrendConstant,
		[]Trend{TrendConstant, TrendConstantTrend})
	if err != nil {
		return nil, err
	}
	t := &KPSS{unitRootTest: base}
	t.testName = "KPSS Stationarity Test"
	t.nullHyp = "The process is weakly stationary."
	t.altHyp = "The process contains a unit root."
	t.computeFn = t.compute
	return t, nil
}

// SetLegacyLagSelection switches automatic bandwidth selection to the
// older rule that depends only on the sample size,
// ceil(12*(nobs/100)^0.25). Setting the current value is a no-op.
func (t *KPSS) SetLegacyLagSelection(legacy bool) {
	if t.legacyLagSelection == legacy {
		return
	}
	t.legacyLagSelection = legacy
	if t.lagsUserSet {
		return
	}
	t.dropSelectedLags()
	t.invalidate()
}

func (t *KPSS) compute() error {
	nobs := float64(len(t.y))
	z := regression.TrendMatrix(len(t.y), t.trend)

	res, err := regression.Fit(t.y, z)
	if err != nil {
		return err
	}
	u := res.Resid
	t.resids = u

	if !t.lagsSet {
		if t.legacyLagSelection {
			t.lags = int(math.Ceil(12.0 * math.Pow(nobs/100.0, 0.25)))
		} else {
			t.lags = t.autoBandwidth(u)
		}
		t.lagsSet = true
	}

	lam := regression.NeweyWest(u, t.lags, false)

	cum := 0.0
	sumSq := 0.0
	for _, ui := range u {
		cum += ui
		sumSq += cum * cum
	}
	t.stat = sumSq / (nobs * nobs) / lam
	t.nobs = len(u)

	pvalue, cv, err := KPSSCrit(t.stat, t.trend)
	if err != nil {
		return err
	}
	t.pvalue = pvalue
	t.critVals = map[string]float64{"1%": cv[0], "5%": cv[1], "10%": cv[2]}
	return nil
}

// Residuals returns the residuals of the deterministic-trend regression
// underlying the statistic.
func (t *KPSS) Residuals() ([]float64, error) {
	if err := t.ensureComputed(); err != nil {
		return nil, err
	}
	out := make([]float64, len(t.resids))
	copy(out, t.resids)
	return out, nil
}

// autoBandwidth computes the Newey-West bandwidth with the data-dependent
// method of Hobijn, Franses and Ooms, assuming a Bartlett kernel.
func (t *KPSS) autoBandwidth(u []float64) int {
	nobs := float64(len(u))
	covlags := int(math.Pow(nobs, 2.0/9.0))
	s0 := dot(u, u) / nobs
	s1 := 0.0
	for i := 1; i <= covlags; i++ {
		prod := dot(u[i:], u[:len(u)-i]) / (nobs / 2)
		s0 += prod
		s1 += float64(i) * prod
	}
	sHat := s1 / s0
	gammaHat := 1.1447 * math.Pow(sHat*sHat, 1.0/3.0)
	lags := int(gammaHat * math.Pow(nobs, 1.0/3.0))
	if lags > len(u) {
		lags = len(u)
	}
	return lags
}
