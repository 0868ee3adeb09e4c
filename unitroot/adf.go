package unitroot

import (
	"github.com/sartorproj/gounitroot/regression"
	"github.com/sartorproj/gounitroot/timeseries"
)

// lowMemoryThreshold is the sample size above which automatic lag selection
// switches to the low-memory algorithm.
const lowMemoryThreshold = 100000

// ADF is the Augmented Dickey-Fuller unit root test. The regression of the
// differenced series on its lagged level, lagged differences and
// deterministic terms yields a t-statistic on the level coefficient, mapped
// to a p-value with MacKinnon's response surfaces.
type ADF struct {
	unitRootTest

	maxLags    int
	hasMaxLags bool
	method     LagMethod
	lowMemory  bool

	regression *regression.Results
}

// NewADF creates an ADF test of series with a constant term and automatic
// AIC lag selection. Use the setters to change the configuration before
// reading results.
func NewADF(series *timeseries.Series) (*ADF, error) {
	base, err := newUnitRootTest(series, TrendConstant,
		[]Trend{TrendNone, TrendConstant, TrendConstantTrend, TrendConstantTrendSquared})
	if err != nil {
		return nil, err
	}
	t := &ADF{
		unitRootTest: base,
		method:       MethodAIC,
		lowMemory:    base.nobs > lowMemoryThreshold,
	}
	t.testName = "Augmented Dickey-Fuller"
	t.computeFn = t.compute
	return t, nil
}

// SetMethod changes the lag selection criterion. Setting the current value
// is a no-op.
func (t *ADF) SetMethod(method string) error {
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
func (t *ADF) Method() LagMethod {
	return t.method
}

// SetMaxLags bounds automatic lag selection and discards any automatically
// selected lag count.
func (t *ADF) SetMaxLags(maxLags int) {
	if t.hasMaxLags && t.maxLags == maxLags {
		return
	}
	t.maxLags = maxLags
	t.hasMaxLags = true
	t.dropSelectedLags()
	t.invalidate()
}

// SetLowMemory overrides the automatic choice of lag selection algorithm.
func (t *ADF) SetLowMemory(lowMemory bool) {
	if t.lowMemory == lowMemory {
		return
	}
	t.lowMemory = lowMemory
	t.dropSelectedLags()
	t.invalidate()
}

// Regression returns the OLS results of the estimated ADF regression.
func (t *ADF) Regression() (*regression.Results, error) {
	if err := t.ensureComputed(); err != nil {
		return nil, err
	}
	return t.regression, nil
}

func (t *ADF) compute() error {
	if !t.lagsSet {
		maxLags := -1
		if t.hasMaxLags {
			maxLags = t.maxLags
		}
		_, bestLag, err := dfSelectLags(t.y, t.trend, maxLags, t.method, t.lowMemory)
		if err != nil {
			return err
		}
		t.lags = bestLag
		t.lagsSet = true
	}

	res, err := estimateDFRegression(t.y, t.trend, t.lags)
	if err != nil {
		return err
	}
	t.regression = res
	t.stat = res.TValues[0]
	t.nobs = res.Nobs

	pvalue, err := MacKinnonP(t.stat, t.trend, 1, DistADFTau)
	if err != nil {
		return err
	}
	t.pvalue = pvalue

	cv, err := MacKinnonCrit(1, t.trend, float64(res.Nobs), DistADFTau)
	if err != nil {
		return err
	}
	t.critVals = map[string]float64{"1%": cv[0], "5%": cv[1], "10%": cv[2]}
	return nil
}
