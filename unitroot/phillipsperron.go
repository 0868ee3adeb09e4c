package unitroot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gounitroot/regression"
	"github.com/sartorproj/gounitroot/timeseries"
)

// TestType selects which Phillips-Perron statistic is reported.
type TestType string

const (
	// TestTau is the t-statistic based statistic.
	TestTau TestType = "tau"
	// TestRho scales the re-centered regression coefficient by the sample
	// size.
	TestRho TestType = "rho"
)

// PhillipsPerron is the Phillips-Perron unit root test. The regression
// includes only a single lag of the series plus trend terms; serial
// correlation in the errors is handled through a Newey-West long-run
// variance estimate rather than lagged differences.
type PhillipsPerron struct {
	unitRootTest

	testType TestType
}

// NewPhillipsPerron creates a Phillips-Perron test of series with a
// constant term, reporting the tau statistic.
func NewPhillipsPerron(series *timeseries.Series) (*PhillipsPerron, error) {
	base, err := newUnitRootTest(series, TrendConstant,
		[]Trend{TrendNone, TrendConstant, TrendConstantTrend})
	if err != nil {
		return nil, err
	}
	t := &PhillipsPerron{
		unitRootTest: base,
		testType:     TestTau,
	}
	t.testName = "Phillips-Perron Test"
	t.computeFn = t.compute
	return t, nil
}

// TestType returns the statistic variant in use.
func (t *PhillipsPerron) TestType() TestType {
	return t.testType
}

// SetTestType switches between the tau and rho statistics. Setting the
// current value is a no-op.
func (t *PhillipsPerron) SetTestType(testType TestType) error {
	if testType != TestTau && testType != TestRho {
		return fmt.Errorf("unitroot: test type must be %q or %q, got %q", TestTau, TestRho, testType)
	}
	if t.testType == testType {
		return nil
	}
	t.testType = testType
	t.invalidate()
	return nil
}

func (t *PhillipsPerron) compute() error {
	nobs := len(t.y)
	if !t.lagsSet {
		t.lags = int(math.Ceil(12.0 * math.Pow(float64(nobs)/100.0, 0.25)))
		t.lagsSet = true
	}

	rhs := mat.NewDense(nobs-1, 1, nil)
	for i := 0; i < nobs-1; i++ {
		rhs.Set(i, 0, t.y[i])
	}
	x := regression.AppendTrend(rhs, t.trend, false)
	lhs := t.y[1:]

	res, err := regression.Fit(lhs, x)
	if err != nil {
		return err
	}

	n := float64(res.Nobs)
	k := float64(res.NumVars)
	u := res.Resid
	lam2 := regression.NeweyWest(u, t.lags, false)
	lam := math.Sqrt(lam2)

	s2 := dot(u, u) / (n - k)
	s := math.Sqrt(s2)
	gamma0 := s2 * (n - k) / n
	sigma := res.StdErrs[0]
	rho := res.Params[0]

	statTau := math.Sqrt(gamma0/lam2)*((rho-1)/sigma) -
		0.5*((lam2-gamma0)/lam)*(n*sigma/s)
	statRho := n*(rho-1) - 0.5*(n*n*sigma*sigma/s2)*(lam2-gamma0)

	t.nobs = res.Nobs
	dist := DistADFTau
	t.stat = statTau
	if t.testType == TestRho {
		t.stat = statRho
		dist = DistADFZ
	}

	pvalue, err := MacKinnonP(t.stat, t.trend, 1, dist)
	if err != nil {
		return err
	}
	t.pvalue = pvalue

	cv, err := MacKinnonCrit(1, t.trend, n, dist)
	if err != nil {
		return err
	}
	t.critVals = map[string]float64{"1%": cv[0], "5%": cv[1], "10%": cv[2]}

	t.testName = "Phillips-Perron Test (Z-" + string(t.testType) + ")"
	return nil
}
