package unitroot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gounitroot/regression"
	"github.com/sartorproj/gounitroot/timeseries"
)

// DFGLS is Elliott, Rothenberg and Stock's GLS-detrended version of the
// Dickey-Fuller test. The series is detrended by a quasi-differenced
// regression on the deterministic terms before a trend-less ADF regression
// is run on the detrended data.
type DFGLS struct {
	unitRootTest

	maxLags    int
	hasMaxLags bool
	method     LagMethod
	lowMemory  bool
	c          float64

	regression *regression.Results
}

// NewDFGLS creates a DFGLS test of series with a constant term and
// automatic AIC lag selection.
func NewDFGLS(series *timeseries.Series) (*DFGLS, error) {
	base, err := newUnitRootTest(series, TrendConstant,
		[]Trend{TrendConstant, TrendConstantTrend})
	if err != nil {
		return nil, err
	}
	t := &DFGLS{
		unitRootTest: base,
		method:       MethodAIC,
		lowMemory:    base.nobs >= lowMemoryThreshold,
		c:            -7.0,
	}
	t.testName = "Dickey-Fuller GLS"
	t.computeFn = t.compute
	return t, nil
}

// SetTrend changes the deterministic trend and the matching GLS
// detrending constant. Only constant and constant-plus-trend are
// supported.
func (t *DFGLS) SetTrend(trend Trend) error {
	if err := t.unitRootTest.SetTrend(trend); err != nil {
		return err
	}
	if trend == TrendConstant {
		t.c = -7.0
	} else {
		t.c = -13.5
	}
	return nil
}

// SetMethod changes the lag selection criterion. Setting the current value
// is a no-op.
func (t *DFGLS) SetMethod(method string) error {
	m, err := ParseLagMethod(method)
	if err != nil {
		return err
	}
	if t.method == m {
		return nil
	}
	t.method = m
	t.dropSelectedLags()
	t.invalidate()
	return nil
}

// Method returns the lag selection criterion in use.
func (t *DFGLS) Method() LagMethod {
	return t.method
}

// SetMaxLags bounds automatic lag selection and discards any automatically
// selected lag count.
func (t *DFGLS) SetMaxLags(maxLags int) {
	if t.hasMaxLags && t.maxLags == maxLags {
		return
	}
	t.maxLags = maxLags
	t.hasMaxLags = true
	t.dropSelectedLags()
	t.invalidate()
}

// SetLowMemory overrides the automatic choice of lag selection algorithm.
func (t *DFGLS) SetLowMemory(lowMemory bool) {
	if t.lowMemory == lowMemory {
		return
	}
	t.lowMemory = lowMemory
	t.dropSelectedLags()
	t.invalidate()
}

// Regression returns the OLS results of the trend-less ADF regression run
// on the detrended series.
func (t *DFGLS) Regression() (*regression.Results, error) {
	if err := t.ensureComputed(); err != nil {
		return nil, err
	}
	return t.regression, nil
}

func (t *DFGLS) compute() error {
	detrended, err := t.glsDetrend()
	if err != nil {
		return err
	}

	if !t.lagsSet {
		maxLags := -1
		if t.hasMaxLags {
			maxLags = t.maxLags
		}
		_, bestLag, err := dfSelectLags(detrended, TrendNone, maxLags, t.method, t.lowMemory)
		if err != nil {
			return err
		}
		t.lags = bestLag
		t.lagsSet = true
	}

	res, err := estimateDFRegression(detrended, TrendNone, t.lags)
	if err != nil {
		return err
	}
	t.regression = res
	t.stat = res.TValues[0]
	t.nobs = res.Nobs

	pvalue, err := MacKinnonP(t.stat, t.trend, 1, DistDFGLS)
	if err != nil {
		return err
	}
	t.pvalue = pvalue

	cv, err := MacKinnonCrit(1, t.trend, float64(res.Nobs), DistDFGLS)
	if err != nil {
		return err
	}
	t.critVals = map[string]float64{"1%": cv[0], "5%": cv[1], "10%": cv[2]}
	return nil
}

// glsDetrend removes the deterministic terms by regressing the
// quasi-differenced series on the quasi-differenced trend terms and
// subtracting the fitted deterministic component from the original data.
func (t *DFGLS) glsDetrend() ([]float64, error) {
	nobs := len(t.y)
	ct := t.c / float64(nobs)
	z := regression.TrendMatrix(nobs, t.trend)
	_, kz := z.Dims()

	deltaZ := mat.NewDense(nobs, kz, nil)
	deltaY := mat.NewVecDense(nobs, nil)
	for j := 0; j < kz; j++ {
		deltaZ.Set(0, j, z.At(0, j))
	}
	deltaY.SetVec(0, t.y[0])
	for i := 1; i < nobs; i++ {
		for j := 0; j < kz; j++ {
			deltaZ.Set(i, j, z.At(i, j)-(1+ct)*z.At(i-1, j))
		}
		deltaY.SetVec(i, t.y[i]-(1+ct)*t.y[i-1])
	}

	var coef mat.VecDense
	if err := coef.SolveVec(deltaZ, deltaY); err != nil {
		return nil, fmt.Errorf("unitroot: GLS detrending regression is singular: %w", err)
	}

	detrended := make([]float64, nobs)
	for i := 0; i < nobs; i++ {
		fitted := 0.0
		for j := 0; j < kz; j++ {
			fitted += z.At(i, j) * coef.AtVec(j)
		}
		detrended[i] = t.y[i] - fitted
	}
	return detrended, nil
}
