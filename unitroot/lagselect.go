package unitroot

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gounitroot/regression"
)

// LagMethod selects the information criterion used for automatic lag
// length selection.
type LagMethod string

const (
	// MethodAIC selects the lag minimizing the Akaike information
	// criterion.
	MethodAIC LagMethod = "aic"
	// MethodBIC selects the lag minimizing the Bayes information
	// criterion.
	MethodBIC LagMethod = "bic"
	// MethodTStat selects the largest lag whose coefficient t-statistic is
	// significant at the 10% level.
	MethodTStat LagMethod = "t-stat"
)

// tstatThreshold is the two-sided 10% critical value of the standard
// normal distribution.
const tstatThreshold = 1.6448536269514722

// ParseLagMethod normalizes a method name, accepting any casing.
func ParseLagMethod(s string) (LagMethod, error) {
	switch m := LagMethod(strings.ToLower(s)); m {
	case MethodAIC, MethodBIC, MethodTStat:
		return m, nil
	}
	return "", fmt.Errorf("unitroot: unknown lag selection method %q", s)
}

func diff(y []float64) []float64 {
	d := make([]float64, len(y)-1)
	for i := range d {
		d[i] = y[i+1] - y[i]
	}
	return d
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// matrixRank computes the numerical rank of a using the same tolerance as
// a singular-value cutoff of maxdim * eps * largest singular value.
func matrixRank(a mat.Matrix) int {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0
	}
	vals := svd.Values(nil)
	if len(vals) == 0 {
		return 0
	}
	r, c := a.Dims()
	maxdim := r
	if c > maxdim {
		maxdim = c
	}
	tol := float64(maxdim) * 2.220446049250313e-16 * vals[0]
	rank := 0
	for _, v := range vals {
		if v > tol {
			rank++
		}
	}
	return rank
}

// selectBestIC picks the lag length from a grid of residual variances. For
// AIC and BIC ties break toward the shorter lag. For t-stat selection the
// first entry of tstat is +Inf, so a lag of zero is always admissible.
func selectBestIC(method LagMethod, nobs float64, sigma2, tstat []float64) (float64, int, error) {
	maxlag := len(sigma2) - 1
	switch method {
	case MethodAIC, MethodBIC:
		penalty := 2.0
		if method == MethodBIC {
			penalty = math.Log(nobs)
		}
		icbest := math.Inf(1)
		best := 0
		for lag := 0; lag <= maxlag; lag++ {
			llf := -nobs / 2.0 * (math.Log(2*math.Pi) + math.Log(sigma2[lag]) + 1)
			crit := -2*llf + penalty*float64(lag)
			if crit < icbest {
				icbest = crit
				best = lag
			}
		}
		return icbest, best, nil
	case MethodTStat:
		for lag := maxlag; lag >= 0; lag-- {
			if math.Abs(tstat[lag]) >= tstatThreshold {
				return tstat[lag], lag, nil
			}
		}
		return tstat[0], 0, nil
	}
	return 0, 0, fmt.Errorf("unitroot: unknown lag selection method %q", method)
}

// autolagOLS evaluates the information criterion of nested regressions
// that add one lag column at a time. The design matrix holds the non-lag
// regressors in its first startlag columns and the candidate lags in
// contiguous columns from low to high order. A single QR factorization of
// the full design serves every sub-regression.
func autolagOLS(endog []float64, exog *mat.Dense, startlag, maxlag int, method LagMethod) (float64, int, error) {
	nobs, nvar := exog.Dims()
	if nobs != len(endog) {
		return 0, 0, fmt.Errorf("unitroot: lag selection design has %d rows for %d observations", nobs, len(endog))
	}
	if nobs < nvar {
		return 0, 0, fmt.Errorf("unitroot: series too short for %d candidate lags", maxlag)
	}

	var qr mat.QR
	qr.Factorize(exog)
	var rFull mat.Dense
	qr.RTo(&rFull)
	r := rFull.Slice(0, nvar, 0, nvar).(*mat.Dense)

	var xpx mat.Dense
	xpx.Mul(exog.T(), exog)
	xpy := make([]float64, nvar)
	for j := 0; j < nvar; j++ {
		s := 0.0
		for i := 0; i < nobs; i++ {
			s += exog.At(i, j) * endog[i]
		}
		xpy[j] = s
	}

	// R'Q'y = X'y, so forward substitution against R' recovers Q'y
	// without forming Q.
	qpy := make([]float64, nvar)
	for i := 0; i < nvar; i++ {
		s := xpy[i]
		for j := 0; j < i; j++ {
			s -= r.At(j, i) * qpy[j]
		}
		qpy[i] = s / r.At(i, i)
	}

	effMaxLag := matrixRank(&xpx) - startlag
	if effMaxLag > maxlag {
		effMaxLag = maxlag
	}
	if effMaxLag < 0 {
		return 0, 0, fmt.Errorf("unitroot: design matrix rank is below the number of non-lag regressors")
	}

	ypy := dot(endog, endog)
	nobsf := float64(nobs)
	sigma2 := make([]float64, effMaxLag+1)
	tstat := make([]float64, effMaxLag+1)
	tstat[0] = math.Inf(1)

	b := make([]float64, startlag+effMaxLag)
	for i := startlag; i <= startlag+effMaxLag; i++ {
		// Back substitution against the leading i-by-i block of R.
		for j := i - 1; j >= 0; j-- {
			s := qpy[j]
			for k := j + 1; k < i; k++ {
				s -= r.At(j, k) * b[k]
			}
			b[j] = s / r.At(j, j)
		}

		quad := 0.0
		for j := 0; j < i; j++ {
			for k := 0; k < i; k++ {
				quad += b[j] * xpx.At(j, k) * b[k]
			}
		}
		sigma2[i-startlag] = (ypy - quad) / nobsf

		if method == MethodTStat && i > startlag {
			var xpxi mat.Dense
			if err := xpxi.Inverse(xpx.Slice(0, i, 0, i)); err != nil {
				return 0, 0, fmt.Errorf("unitroot: lag selection normal equations are singular: %w", err)
			}
			stderr := math.Sqrt(sigma2[i-startlag] * xpxi.At(i-1, i-1))
			tstat[i-startlag] = b[i-1] / stderr
		}
	}

	return selectBestIC(method, nobsf, sigma2, tstat)
}

// autolagOLSLowMemory selects the lag length without materializing the
// full lag matrix. Regressors are normalized to keep the cross-product
// matrix well conditioned; residual variances are rescaled afterwards so
// the criterion values match the standard path.
func autolagOLSLowMemory(y []float64, maxlag int, trend Trend, method LagMethod) (float64, int, error) {
	deltay := diff(y)
	if len(deltay) <= maxlag {
		return 0, 0, fmt.Errorf("unitroot: series too short for %d candidate lags", maxlag)
	}
	scale := dot(deltay, deltay)
	norm := math.Sqrt(scale)
	for i := range deltay {
		deltay[i] /= norm
	}

	lhs := deltay[maxlag:]
	nobs := len(lhs)
	nobsf := float64(nobs)

	level := make([]float64, nobs)
	copy(level, y[maxlag:len(y)-1])
	levelNorm := math.Sqrt(dot(level, level))
	for i := range level {
		level[i] /= levelNorm
	}

	var trendCols [][]float64
	if trend != TrendNone {
		if strings.Contains(string(trend), "tt") {
			tt := make([]float64, nobs)
			w := math.Sqrt(5) / math.Pow(nobsf, 2.5)
			for i := range tt {
				t := float64(i + 1)
				tt[i] = t * t * w
			}
			trendCols = append(trendCols, tt)
		}
		if strings.Contains(string(trend), "t") {
			t := make([]float64, nobs)
			w := math.Sqrt(3) / math.Pow(nobsf, 1.5)
			for i := range t {
				t[i] = float64(i+1) * w
			}
			trendCols = append(trendCols, t)
		}
		if strings.HasPrefix(string(trend), "c") {
			c := make([]float64, nobs)
			w := 1 / math.Sqrt(nobsf)
			for i := range c {
				c[i] = w
			}
			trendCols = append(trendCols, c)
		}
	}

	rhs := make([][]float64, 0, 1+len(trendCols))
	rhs = append(rhs, level)
	rhs = append(rhs, trendCols...)
	m := len(rhs)
	dim := m + maxlag

	// lagCol returns the i-th lagged difference without copying.
	lagCol := func(i int) []float64 {
		return deltay[maxlag-i-1 : len(deltay)-1-i]
	}

	xpx := mat.NewDense(dim, dim, nil)
	xpy := make([]float64, dim)
	for j := 0; j < m; j++ {
		xpy[j] = dot(rhs[j], lhs)
		for k := j; k < m; k++ {
			v := dot(rhs[j], rhs[k])
			xpx.Set(j, k, v)
			xpx.Set(k, j, v)
		}
	}
	for i := 0; i < maxlag; i++ {
		x1 := lagCol(i)
		for j := 0; j < m; j++ {
			v := dot(rhs[j], x1)
			xpx.Set(m+i, j, v)
			xpx.Set(j, m+i, v)
		}
		xpy[m+i] = dot(x1, lhs)
		for j := i; j < maxlag; j++ {
			v := dot(x1, lagCol(j))
			xpx.Set(m+i, m+j, v)
			xpx.Set(m+j, m+i, v)
		}
	}

	ypy := dot(lhs, lhs)
	sigma2 := make([]float64, maxlag+1)
	tstat := make([]float64, maxlag+1)
	tstat[0] = math.Inf(1)

	for i := m; i <= m+maxlag; i++ {
		sub := xpx.Slice(0, i, 0, i)
		var b mat.VecDense
		if err := b.SolveVec(sub, mat.NewVecDense(i, xpy[:i])); err != nil {
			return 0, 0, fmt.Errorf("unitroot: lag selection normal equations are singular: %w", err)
		}

		quad := 0.0
		for j := 0; j < i; j++ {
			for k := 0; k < i; k++ {
				quad += b.AtVec(j) * sub.At(j, k) * b.AtVec(k)
			}
		}
		sigma2[i-m] = scale * (ypy - quad) / nobsf

		if method == MethodTStat && i > m {
			var xpxi mat.Dense
			if err := xpxi.Inverse(sub); err != nil {
				return 0, 0, fmt.Errorf("unitroot: lag selection normal equations are singular: %w", err)
			}
			stderr := math.Sqrt(sigma2[i-m] / scale * xpxi.At(i-1, i-1))
			tstat[i-m] = b.AtVec(i-1) / stderr
		}
	}

	return selectBestIC(method, nobsf, sigma2, tstat)
}

// dfSelectLags determines the lag length for a Dickey-Fuller style
// regression. When maxLags is negative the default ceil(12*(nobs/100)^0.25)
// bound applies, clamped so the regression stays estimable for very short
// series.
func dfSelectLags(y []float64, trend Trend, maxLags int, method LagMethod, lowMemory bool) (float64, int, error) {
	nobs := len(y)
	maxMaxLags := nobs/2 - 1
	if trend != TrendNone {
		maxMaxLags -= trend.NumRegressors()
	}
	maxlag := maxLags
	if maxlag < 0 {
		maxlag = int(math.Ceil(12.0 * math.Pow(float64(nobs)/100.0, 0.25)))
		if maxlag > maxMaxLags {
			maxlag = maxMaxLags
		}
		if maxlag < 0 {
			maxlag = 0
		}
	}

	if lowMemory {
		return autolagOLSLowMemory(y, maxlag, trend, method)
	}

	deltay := diff(y)
	nrows := len(deltay) - maxlag
	if nrows <= 0 {
		return 0, 0, fmt.Errorf("unitroot: series too short for %d lags", maxlag)
	}

	rhs := mat.NewDense(nrows, maxlag+1, nil)
	for i := 0; i < nrows; i++ {
		rhs.Set(i, 0, y[len(y)-nrows-1+i])
		for j := 1; j <= maxlag; j++ {
			rhs.Set(i, j, deltay[maxlag+i-j])
		}
	}
	lhs := deltay[maxlag:]

	fullRHS := regression.AppendTrend(rhs, trend, true)
	_, fullCols := fullRHS.Dims()
	startlag := fullCols - (maxlag + 1) + 1

	return autolagOLS(lhs, fullRHS, startlag, maxlag, method)
}

// estimateDFRegression runs the core (augmented) Dickey-Fuller regression
// of the differenced series on the lagged level, lagged differences and
// deterministic terms.
func estimateDFRegression(y []float64, trend Trend, lags int) (*regression.Results, error) {
	deltay := diff(y)
	nrows := len(deltay) - lags
	if nrows <= 0 {
		return nil, fmt.Errorf("unitroot: series too short for %d lags", lags)
	}

	rhs := mat.NewDense(nrows, lags+1, nil)
	for i := 0; i < nrows; i++ {
		rhs.Set(i, 0, y[len(y)-nrows-1+i])
		for j := 1; j <= lags; j++ {
			rhs.Set(i, j, deltay[lags+i-j])
		}
	}
	lhs := deltay[lags:]

	x := regression.AppendTrend(rhs, trend, false)
	return regression.Fit(lhs, x)
}
