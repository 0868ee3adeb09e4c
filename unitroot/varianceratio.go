package unitroot

import (
	"fmt"
	"math"

	"github.com/sartorproj/gounitroot/timeseries"
)

// VarianceRatio is the Lo-MacKinlay variance ratio test of the random walk
// hypothesis. The ratio of the lags-period return variance to lags times
// the one-period variance is one under the null; rejection with a positive
// statistic indicates positive serial correlation.
type VarianceRatio struct {
	unitRootTest

	overlap  bool
	robust   bool
	debiased bool

	vr           float64
	statVariance float64
	warnings     []string
}

// NewVarianceRatio creates a variance ratio test of series using
// lags-period overlapping blocks, heteroskedasticity-robust inference and
// debiased variance estimates. lags must be at least 2.
func NewVarianceRatio(series *timeseries.Series, lags int) (*VarianceRatio, error) {
	if lags < 2 {
		return nil, fmt.Errorf("unitroot: lags must be at least 2, got %d", lags)
	}
	base, err := newUnitRootTest(series, TrendConstant,
		[]Trend{TrendNone, TrendConstant})
	if err != nil {
		return nil, err
	}
	t := &VarianceRatio{
		unitRootTest: base,
		overlap:      true,
		robust:       true,
		debiased:     true,
	}
	t.lags = lags
	t.lagsSet = true
	t.lagsUserSet = true
	t.testName = "Variance-Ratio Test"
	t.nullHyp = "The process is a random walk."
	t.altHyp = "The process is not a random walk."
	t.critVals = map[string]float64{}
	for _, q := range []float64{0.01, 0.05, 0.10, 0.90, 0.95, 0.99} {
		key := fmt.Sprintf("%d%%", int(100*q))
		t.critVals[key] = stdNormal.Quantile(q)
	}
	t.computeFn = t.compute
	return t, nil
}

// SetLags changes the block length. A value below 2 is a configuration
// error.
func (t *VarianceRatio) SetLags(lags int) error {
	if lags < 2 {
		return fmt.Errorf("unitroot: lags must be at least 2, got %d", lags)
	}
	return t.unitRootTest.SetLags(lags)
}

// Overlap reports whether overlapping blocks are used for the long-period
// variance.
func (t *VarianceRatio) Overlap() bool {
	return t.overlap
}

// SetOverlap toggles the use of overlapping blocks. Setting the current
// value is a no-op.
func (t *VarianceRatio) SetOverlap(overlap bool) {
	if t.overlap == overlap {
		return
	}
	t.overlap = overlap
	t.invalidate()
}

// Robust reports whether heteroskedasticity-robust inference is used.
func (t *VarianceRatio) Robust() bool {
	return t.robust
}

// SetRobust toggles heteroskedasticity-robust inference. Setting the
// current value is a no-op.
func (t *VarianceRatio) SetRobust(robust bool) {
	if t.robust == robust {
		return
	}
	t.robust = robust
	t.invalidate()
}

// Debiased reports whether debiased variance estimates are used. Only
// applies with overlapping blocks.
func (t *VarianceRatio) Debiased() bool {
	return t.debiased
}

// SetDebiased toggles the use of debiased variances. Setting the current
// value is a no-op.
func (t *VarianceRatio) SetDebiased(debiased bool) {
	if t.debiased == debiased {
		return
	}
	t.debiased = debiased
	t.invalidate()
}

// VR returns the ratio of the long-block variance to the one-period
// variance.
func (t *VarianceRatio) VR() (float64, error) {
	if err := t.ensureComputed(); err != nil {
		return 0, err
	}
	return t.vr, nil
}

// Warnings returns any data adjustments made during the last computation,
// such as observations dropped to fit non-overlapping blocks.
func (t *VarianceRatio) Warnings() ([]string, error) {
	if err := t.ensureComputed(); err != nil {
		return nil, err
	}
	out := make([]string, len(t.warnings))
	copy(out, t.warnings)
	return out, nil
}

func (t *VarianceRatio) compute() error {
	q := t.lags
	y := t.y
	t.warnings = nil

	if !t.overlap {
		if extra := (len(y) - 1) % q; extra != 0 {
			y = y[:len(y)-extra]
			t.warnings = append(t.warnings, fmt.Sprintf(
				"The length of y minus 1 is not an exact multiple of the block size %d; the final %d observations were dropped", q, extra))
		}
	}

	nobs := len(y)
	mu := 0.0
	if t.trend == TrendConstant {
		mu = (y[nobs-1] - y[0]) / float64(nobs-1)
	}

	deltaY := diff(y)
	nq := len(deltaY)
	nqf := float64(nq)
	qf := float64(q)

	sigma21 := 0.0
	for _, d := range deltaY {
		sigma21 += (d - mu) * (d - mu)
	}
	sigma21 /= nqf

	var sigma2q float64
	if !t.overlap {
		for i := q; i < nobs; i += q {
			d := y[i] - y[i-q] - qf*mu
			sigma2q += d * d
		}
		sigma2q /= nqf
		t.summaryNotes = []string{"Computed with non-overlapping blocks"}
	} else {
		for i := q; i < nobs; i++ {
			d := y[i] - y[i-q] - qf*mu
			sigma2q += d * d
		}
		sigma2q /= nqf * qf
		t.summaryNotes = []string{"Computed with overlapping blocks"}
	}

	if t.debiased && t.overlap {
		sigma21 *= nqf / (nqf - 1)
		m := qf * (nqf - qf + 1) * (1 - qf/nqf)
		sigma2q *= nqf * qf / m
		t.summaryNotes = []string{"Computed with overlapping blocks (de-biased)"}
	}

	switch {
	case !t.overlap:
		t.statVariance = 2.0 * (qf - 1)
	case !t.robust:
		t.statVariance = (2*(2*qf-1)*(qf-1)) / (2 * qf)
	default:
		z2 := make([]float64, nq)
		scale := 0.0
		for i, d := range deltaY {
			z2[i] = (d - mu) * (d - mu)
			scale += z2[i]
		}
		scale *= scale
		theta := 0.0
		for k := 1; k < q; k++ {
			delta := nqf * dot(z2[k:], z2[:nq-k]) / scale
			w := 1 - float64(k)/qf
			theta += w * w * delta
		}
		t.statVariance = theta
	}

	t.vr = sigma2q / sigma21
	t.stat = math.Sqrt(nqf) * (t.vr - 1) / math.Sqrt(t.statVariance)
	t.pvalue = 2 - 2*stdNormal.CDF(math.Abs(t.stat))
	t.nobs = nobs
	return nil
}
