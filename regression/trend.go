package regression

import (
	"gonum.org/v1/gonum/mat"
)

// Trend identifies the deterministic regressors included in a test
// regression.
type Trend string

const (
	// TrendNone includes no deterministic terms.
	TrendNone Trend = "nc"
	// TrendConstant includes a constant.
	TrendConstant Trend = "c"
	// TrendConstantTrend includes a constant and a linear time trend.
	TrendConstantTrend Trend = "ct"
	// TrendConstantTrendSquared includes a constant, a linear and a
	// quadratic time trend.
	TrendConstantTrendSquared Trend = "ctt"
)

// Valid reports whether t is a recognized trend specification.
func (t Trend) Valid() bool {
	switch t {
	case TrendNone, TrendConstant, TrendConstantTrend, TrendConstantTrendSquared:
		return true
	}
	return false
}

// NumRegressors returns the number of deterministic regressors implied by t.
func (t Trend) NumRegressors() int {
	if t == TrendNone {
		return 0
	}
	return len(t)
}

// Description returns a human-readable description of the trend terms.
func (t Trend) Description() string {
	switch t {
	case TrendNone:
		return "No Trend"
	case TrendConstant:
		return "Constant"
	case TrendConstantTrend:
		return "Constant and Linear Time Trend"
	case TrendConstantTrendSquared:
		return "Constant, Linear and Quadratic Time Trends"
	}
	return "Unknown"
}

// TrendMatrix returns an nobs-row matrix of deterministic regressors for the
// given trend, with columns ordered constant, t, t². Returns nil when the
// trend contributes no regressors.
func TrendMatrix(nobs int, trend Trend) *mat.Dense {
	k := trend.NumRegressors()
	if k == 0 {
		return nil
	}
	z := mat.NewDense(nobs, k, nil)
	for i := 0; i < nobs; i++ {
		t := float64(i + 1)
		z.Set(i, 0, 1)
		if k > 1 {
			z.Set(i, 1, t)
		}
		if k > 2 {
			z.Set(i, 2, t*t)
		}
	}
	return z
}

// AppendTrend combines a design matrix with the deterministic regressors for
// the given trend. When prepend is true the trend columns come first,
// otherwise they follow the existing columns. x must not be nil: the trend
// matrix takes its row count from x. For TrendNone x is returned unchanged.
func AppendTrend(x *mat.Dense, trend Trend, prepend bool) *mat.Dense {
	if x == nil {
		panic("regression: AppendTrend requires a design matrix")
	}
	n, k := x.Dims()
	z := TrendMatrix(n, trend)
	if z == nil {
		return x
	}
	_, kz := z.Dims()
	out := mat.NewDense(n, k+kz, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k+kz; j++ {
			var v float64
			if prepend {
				if j < kz {
					v = z.At(i, j)
				} else {
					v = x.At(i, j-kz)
				}
			} else {
				if j < k {
					v = x.At(i, j)
				} else {
					v = z.At(i, j-k)
				}
			}
			out.Set(i, j, v)
		}
	}
	return out
}
