package unitroot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sartorproj/gounitroot/timeseries"
)

// computeState tracks whether the cached result of a test is usable.
type computeState int

const (
	stateStale computeState = iota
	stateFresh
)

// unitRootTest holds the state shared by every test engine: the sample, the
// current configuration, and the lazily computed result. Concrete tests
// embed it and install their statistic routine in computeFn.
type unitRootTest struct {
	y           []float64
	nobs        int
	lags        int
	lagsSet     bool
	lagsUserSet bool
	trend       Trend
	validTrends []Trend
	state       computeState

	stat     float64
	pvalue   float64
	critVals map[string]float64

	testName     string
	nullHyp      string
	altHyp       string
	summaryNotes []string

	computeFn func() error
}

func newUnitRootTest(series *timeseries.Series, trend Trend, validTrends []Trend) (unitRootTest, error) {
	if series == nil {
		return unitRootTest{}, fmt.Errorf("unitroot: series is required")
	}
	if err := series.Validate(); err != nil {
		return unitRootTest{}, err
	}
	if !trendIn(trend, validTrends) {
		return unitRootTest{}, fmt.Errorf("unitroot: trend %q is not valid for this test", trend)
	}
	y := make([]float64, series.Len())
	copy(y, series.Values)
	return unitRootTest{
		y:           y,
		nobs:        len(y),
		trend:       trend,
		validTrends: validTrends,
		state:       stateStale,
		nullHyp:     "The process contains a unit root.",
		altHyp:      "The process is weakly stationary.",
	}, nil
}

func trendIn(trend Trend, valid []Trend) bool {
	for _, t := range valid {
		if t == trend {
			return true
		}
	}
	return false
}

// invalidate discards the cached result. The lag count is handled
// separately: dropSelectedLags discards it when a setter changes how lags
// are selected.
func (t *unitRootTest) invalidate() {
	t.state = stateStale
}

// dropSelectedLags discards a lag count chosen by automatic selection so
// the next computation re-runs selection. A lag count fixed with SetLags
// is kept.
func (t *unitRootTest) dropSelectedLags() {
	if !t.lagsSet || t.lagsUserSet {
		return
	}
	t.lagsSet = false
	t.lags = 0
}

func (t *unitRootTest) ensureComputed() error {
	if t.state == stateFresh {
		return nil
	}
	if err := t.computeFn(); err != nil {
		return err
	}
	t.state = stateFresh
	return nil
}

// Stat returns the test statistic, computing it on first use.
func (t *unitRootTest) Stat() (float64, error) {
	if err := t.ensureComputed(); err != nil {
		return 0, err
	}
	return t.stat, nil
}

// PValue returns the p-value of the test statistic.
func (t *unitRootTest) PValue() (float64, error) {
	if err := t.ensureComputed(); err != nil {
		return 0, err
	}
	return t.pvalue, nil
}

// CriticalValues returns the critical values specific to the test, sample
// size and trend, keyed by significance level ("1%", "5%", "10%").
func (t *unitRootTest) CriticalValues() (map[string]float64, error) {
	if err := t.ensureComputed(); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(t.critVals))
	for k, v := range t.critVals {
		out[k] = v
	}
	return out, nil
}

// Lags returns the lag count used by the test, selecting it first when
// automatic selection is configured.
func (t *unitRootTest) Lags() (int, error) {
	if err := t.ensureComputed(); err != nil {
		return 0, err
	}
	return t.lags, nil
}

// Nobs returns the number of observations used to compute the statistic,
// after any adjustment for lags or differencing.
func (t *unitRootTest) Nobs() (int, error) {
	if err := t.ensureComputed(); err != nil {
		return 0, err
	}
	return t.nobs, nil
}

// SetLags fixes the number of lags. A negative value is a configuration
// error. Setting the current value is a no-op.
func (t *unitRootTest) SetLags(lags int) error {
	if lags < 0 {
		return fmt.Errorf("unitroot: lags must be non-negative, got %d", lags)
	}
	if t.lagsSet && t.lags == lags {
		t.lagsUserSet = true
		return nil
	}
	t.lags = lags
	t.lagsSet = true
	t.lagsUserSet = true
	t.invalidate()
	return nil
}

// ClearLags reverts to automatic lag selection.
func (t *unitRootTest) ClearLags() {
	if !t.lagsSet {
		return
	}
	t.lagsSet = false
	t.lagsUserSet = false
	t.lags = 0
	t.invalidate()
}

// Trend returns the deterministic trend specification in use.
func (t *unitRootTest) Trend() Trend {
	return t.trend
}

// SetTrend changes the deterministic trend specification. Trends outside
// the test's supported set are a configuration error. Setting the current
// value is a no-op.
func (t *unitRootTest) SetTrend(trend Trend) error {
	if !trendIn(trend, t.validTrends) {
		return fmt.Errorf("unitroot: trend %q is not valid for this test", trend)
	}
	if t.trend == trend {
		return nil
	}
	t.trend = trend
	t.invalidate()
	return nil
}

// ValidTrends returns the trend specifications the test supports.
func (t *unitRootTest) ValidTrends() []Trend {
	out := make([]Trend, len(t.validTrends))
	copy(out, t.validTrends)
	return out
}

// NullHypothesis describes the null hypothesis of the test.
func (t *unitRootTest) NullHypothesis() string {
	return t.nullHyp
}

// AlternativeHypothesis describes the alternative hypothesis of the test.
func (t *unitRootTest) AlternativeHypothesis() string {
	return t.altHyp
}

// Summary renders a human-readable report of the computed test.
func (t *unitRootTest) Summary() (string, error) {
	if err := t.ensureComputed(); err != nil {
		return "", err
	}

	var b strings.Builder
	title := t.testName + " Results"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n")
	fmt.Fprintf(&b, "Test Statistic  %10.3f\n", t.stat)
	fmt.Fprintf(&b, "P-value         %10.3f\n", t.pvalue)
	fmt.Fprintf(&b, "Lags            %10d\n", t.lags)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Trend: %s\n", t.trend.Description())
	b.WriteString("Critical Values: " + t.formatCriticalValues() + "\n")
	fmt.Fprintf(&b, "Null Hypothesis: %s\n", t.nullHyp)
	fmt.Fprintf(&b, "Alternative Hypothesis: %s\n", t.altHyp)
	for _, note := range t.summaryNotes {
		b.WriteString(note + "\n")
	}
	return b.String(), nil
}

func (t *unitRootTest) formatCriticalValues() string {
	levels := make([]float64, 0, len(t.critVals))
	for k := range t.critVals {
		level, err := strconv.ParseFloat(strings.TrimSuffix(k, "%"), 64)
		if err != nil {
			continue
		}
		levels = append(levels, level)
	}
	sort.Float64s(levels)

	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		key := strconv.Itoa(int(level)) + "%"
		parts = append(parts, fmt.Sprintf("%0.2f (%s)", t.critVals[key], key))
	}
	return strings.Join(parts, ", ")
}
