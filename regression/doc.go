// Package regression provides the estimation primitives used by the
// unit-root tests: ordinary least squares on dense design matrices,
// deterministic trend regressor construction, and Newey-West long-run
// variance estimation.
//
// # OLS
//
// Fit a response vector against a design matrix:
//
//	res, err := regression.Fit(y, x)
//	// res.Params, res.TValues, res.Resid, res.Sigma2
//
// # Trend Regressors
//
// Build deterministic regressors for a trend specification:
//
//	z := regression.TrendMatrix(n, regression.TrendConstantTrend)
//	x = regression.AppendTrend(x, regression.TrendConstant, false)
//
// # Long-Run Variance
//
// Estimate the long-run variance of a (possibly autocorrelated) sequence
// with a Bartlett kernel:
//
//	lrv := regression.NeweyWest(resid, lags, false)
package regression
