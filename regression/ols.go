package regression

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Results holds the output of an ordinary least squares fit.
type Results struct {
	Params  []float64 // Fitted coefficients
	StdErrs []float64 // Standard errors of the coefficients
	TValues []float64 // Coefficient t-statistics
	Resid   []float64 // Residuals
	Sigma2  float64   // Residual variance, SSR / (n - k)
	Nobs    int       // Number of observations used
	NumVars int       // Number of regressors
}

// Fit estimates y = x*b + e by ordinary least squares using a QR
// decomposition of the design matrix. The number of rows of x must match
// len(y) and exceed the number of columns.
func Fit(y []float64, x *mat.Dense) (*Results, error) {
	if x == nil {
		return nil, errors.New("regression: design matrix is required")
	}
	n, k := x.Dims()
	if n != len(y) {
		return nil, errors.New("regression: response and design matrix lengths differ")
	}
	if n <= k {
		return nil, errors.New("regression: more regressors than observations")
	}

	yVec := mat.NewVecDense(n, y)
	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yVec); err != nil {
		return nil, errors.New("regression: design matrix is rank deficient")
	}

	params := make([]float64, k)
	for j := 0; j < k; j++ {
		params[j] = beta.AtVec(j)
	}

	resid := make([]float64, n)
	ssr := 0.0
	for i := 0; i < n; i++ {
		fitted := 0.0
		for j := 0; j < k; j++ {
			fitted += x.At(i, j) * params[j]
		}
		resid[i] = y[i] - fitted
		ssr += resid[i] * resid[i]
	}
	sigma2 := ssr / float64(n-k)

	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, errors.New("regression: normal equations are singular")
	}

	stderrs := make([]float64, k)
	tvalues := make([]float64, k)
	for j := 0; j < k; j++ {
		stderrs[j] = math.Sqrt(sigma2 * xtxInv.At(j, j))
		tvalues[j] = params[j] / stderrs[j]
	}

	return &Results{
		Params:  params,
		StdErrs: stderrs,
		TValues: tvalues,
		Resid:   resid,
		Sigma2:  sigma2,
		Nobs:    n,
		NumVars: k,
	}, nil
}
