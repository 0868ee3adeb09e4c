package unitroot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DistType selects the statistic family used when computing p-values and
// critical values from the response-surface tables.
type DistType string

const (
	// DistADFTau is the t-statistic based Dickey-Fuller distribution.
	DistADFTau DistType = "adf-t"
	// DistADFZ is the coefficient (rho) based Dickey-Fuller distribution.
	DistADFZ DistType = "adf-z"
	// DistDFGLS is the GLS-detrended Dickey-Fuller distribution.
	DistDFGLS DistType = "dfgls"
)

var stdNormal = distuv.UnitNormal

// polyval evaluates a polynomial with coefficients ordered lowest power
// first.
func polyval(coefs []float64, x float64) float64 {
	y := 0.0
	for i := len(coefs) - 1; i >= 0; i-- {
		y = y*x + coefs[i]
	}
	return y
}

// MacKinnonP maps a Dickey-Fuller style test statistic to an approximate
// p-value using MacKinnon's response-surface regressions. trend selects the
// deterministic terms of the test regression, numUnitRoots the number of
// series assumed integrated under the null (1 for a univariate unit-root
// test; values above 1 are only tabulated for the ADF-t family), and dist
// the statistic family.
//
// Statistics beyond the tabulated bounds return exactly 1.0 (above the
// upper bound) or exactly 0.0 (below the lower bound).
func MacKinnonP(stat float64, trend Trend, numUnitRoots int, dist DistType) (float64, error) {
	if numUnitRoots < 1 {
		return 0, fmt.Errorf("unitroot: numUnitRoots must be positive, got %d", numUnitRoots)
	}
	if numUnitRoots > 1 && dist != DistADFTau {
		return 0, fmt.Errorf("unitroot: cointegration p-values (numUnitRoots > 1) are only available for the ADF-t family")
	}

	var (
		maxStat, minStat, starStat float64
		smallP, largeP             []float64
		logTransform               bool
	)
	switch dist {
	case DistADFTau:
		maxs, ok := tauMax[trend]
		if !ok {
			return 0, fmt.Errorf("unitroot: trend %q is not tabulated for %s", trend, dist)
		}
		if numUnitRoots > len(maxs) {
			return 0, fmt.Errorf("unitroot: p-values are tabulated for at most %d unit roots", len(maxs))
		}
		i := numUnitRoots - 1
		maxStat = maxs[i]
		minStat = tauMin[trend][i]
		starStat = tauStar[trend][i]
		smallP = tauSmallP[trend][i]
		largeP = tauLargeP[trend][i]
	case DistADFZ:
		star, ok := adfZStar[trend]
		if !ok {
			return 0, fmt.Errorf("unitroot: trend %q is not tabulated for %s", trend, dist)
		}
		maxStat = adfZMax[trend]
		minStat = adfZMin[trend]
		starStat = star
		smallP = adfZSmallP[trend]
		largeP = adfZLargeP[trend]
		logTransform = true
	case DistDFGLS:
		star, ok := dfglsTauStar[trend]
		if !ok {
			return 0, fmt.Errorf("unitroot: trend %q is not tabulated for %s", trend, dist)
		}
		maxStat = dfglsTauMax[trend]
		minStat = dfglsTauMin[trend]
		starStat = star
		smallP = dfglsSmallP[trend]
		largeP = dfglsLargeP[trend]
	default:
		return 0, fmt.Errorf("unitroot: unknown distribution type %q", dist)
	}

	if stat > maxStat {
		return 1.0, nil
	}
	if stat < minStat {
		return 0.0, nil
	}
	if stat <= starStat {
		x := stat
		if logTransform {
			x = math.Log(math.Abs(stat))
		}
		return stdNormal.CDF(polyval(smallP, x)), nil
	}
	return stdNormal.CDF(polyval(largeP, stat)), nil
}

// MacKinnonCrit returns the 1%, 5% and 10% critical values for a
// Dickey-Fuller style test. For an infinite nobs the asymptotic values are
// returned directly; otherwise a per-quantile polynomial in 1/nobs adjusts
// them for the finite sample. Critical values are only tabulated for a
// single unit root.
func MacKinnonCrit(numUnitRoots int, trend Trend, nobs float64, dist DistType) ([3]float64, error) {
	var cv [3]float64
	if numUnitRoots != 1 {
		return cv, fmt.Errorf("unitroot: critical values are only tabulated for one unit root, got %d", numUnitRoots)
	}

	var table map[Trend][3][4]float64
	switch dist {
	case DistADFTau:
		table = tau2010
	case DistADFZ:
		table = adfZCVApprox
	case DistDFGLS:
		table = dfglsCVApprox
	default:
		return cv, fmt.Errorf("unitroot: unknown distribution type %q", dist)
	}
	rows, ok := table[trend]
	if !ok {
		return cv, fmt.Errorf("unitroot: trend %q is not tabulated for %s", trend, dist)
	}

	for i, row := range rows {
		if math.IsInf(nobs, 1) {
			cv[i] = row[0]
			continue
		}
		cv[i] = polyval(row[:], 1.0/nobs)
	}
	return cv, nil
}

// KPSSCrit returns the interpolated p-value of a KPSS statistic along with
// the 1%, 5% and 10% critical values for the given trend. Both come from
// linear interpolation of a simulated quantile table; statistics outside
// the table clamp to its end-point probabilities.
func KPSSCrit(stat float64, trend Trend) (float64, [3]float64, error) {
	var cv [3]float64
	table, ok := kpssQuantiles[trend]
	if !ok {
		return 0, cv, fmt.Errorf("unitroot: trend %q is not valid for the KPSS distribution", trend)
	}

	pvalue := interpQuantiles(stat, table) / 100.0
	for i, level := range [3]float64{1, 5, 10} {
		cv[i] = interpProbabilities(level, table)
	}
	return pvalue, cv, nil
}

// interpQuantiles interpolates the upper-tail probability for a statistic
// against the quantile column of the table.
func interpQuantiles(stat float64, table []kpssQuantile) float64 {
	n := len(table)
	if stat <= table[0].value {
		return table[0].prob
	}
	if stat >= table[n-1].value {
		return table[n-1].prob
	}
	for i := 1; i < n; i++ {
		if stat <= table[i].value {
			lo, hi := table[i-1], table[i]
			frac := (stat - lo.value) / (hi.value - lo.value)
			return lo.prob + frac*(hi.prob-lo.prob)
		}
	}
	return table[n-1].prob
}

// interpProbabilities inverts the table, interpolating the quantile as a
// function of upper-tail probability.
func interpProbabilities(prob float64, table []kpssQuantile) float64 {
	n := len(table)
	if prob >= table[0].prob {
		return table[0].value
	}
	if prob <= table[n-1].prob {
		return table[n-1].value
	}
	for i := 1; i < n; i++ {
		if prob >= table[i].prob {
			lo, hi := table[i-1], table[i]
			frac := (prob - lo.prob) / (hi.prob - lo.prob)
			return lo.value + frac*(hi.value-lo.value)
		}
	}
	return table[n-1].value
}
