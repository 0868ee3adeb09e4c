package diagnostics

import (
	"errors"
	"math"

	"github.com/sartorproj/gounitroot/timeseries"
)

// ACF returns the sample autocorrelation function of the series for lags 0
// through maxLag. Lag 0 is always 1.
func ACF(series *timeseries.Series, maxLag int) ([]float64, error) {
	if series == nil {
		return nil, errors.New("diagnostics: series is required")
	}
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil, errors.New("diagnostics: maxLag must be non-negative")
	}

	mean := series.Mean()
	variance := 0.0
	for _, v := range series.Values {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return nil, errors.New("diagnostics: series is constant")
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf, nil
}

// PACF returns the partial autocorrelation function for lags 0 through
// maxLag, computed with the Durbin-Levinson recursion.
func PACF(series *timeseries.Series, maxLag int) ([]float64, error) {
	if maxLag < 1 {
		return nil, errors.New("diagnostics: maxLag must be at least 1")
	}
	acf, err := ACF(series, maxLag)
	if err != nil {
		return nil, err
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}
	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}
		if den == 0 {
			pacf[k] = 0
			continue
		}
		phi[k][k] = num / den
		pacf[k] = phi[k][k]
		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}
	return pacf, nil
}

// ConfidenceBound returns the two-sided 95% band for sample
// autocorrelations of a white-noise series of length n.
func ConfidenceBound(n int) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the positive lags whose values exceed the
// confidence bound in absolute value.
func SignificantLags(values []float64, bound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > bound {
			significant = append(significant, i)
		}
	}
	return significant
}
