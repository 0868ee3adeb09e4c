// Package gounitroot provides unit-root and stationarity tests for scalar
// time series.
//
// GoUnitRoot is a Go package for deciding whether an observed series
// contains a stochastic trend (a unit root) or is stationary, which in turn
// determines whether differencing, cointegration, or direct regression
// models are appropriate for the data at hand. P-values and critical values
// are obtained from MacKinnon-style response-surface approximations and
// simulated quantile tables.
//
// # Features
//
//   - Augmented Dickey-Fuller (ADF) test with automatic lag-length selection
//   - Dickey-Fuller GLS (DFGLS) test with GLS detrending
//   - Phillips-Perron test (tau and rho statistics)
//   - KPSS stationarity test with data-dependent bandwidth selection
//   - Variance Ratio test of the random-walk hypothesis
//   - Response-surface p-values and finite-sample critical values
//
// # Quick Start
//
// Test a series for a unit root:
//
//	series := timeseries.New(values)
//	adf, _ := unitroot.NewADF(series)
//	stat, _ := adf.Stat()
//	pvalue, _ := adf.PValue()
//	fmt.Printf("ADF: stat=%.4f, p=%.4f\n", stat, pvalue)
//
// Check stationarity around a deterministic trend:
//
//	kpss, _ := unitroot.NewKPSS(series)
//	kpss.SetTrend(unitroot.TrendConstantTrend)
//	summary, _ := kpss.Summary()
//	fmt.Println(summary)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - unitroot: The five test engines and the p-value machinery
//   - regression: OLS, trend regressors, and long-run variance estimation
//   - timeseries: Time series data structures and utilities
//   - diagnostics: Autocorrelation measures and residual checks
//
// # References
//
//   - Hamilton, J. D. (1994). Time Series Analysis
//   - MacKinnon, J.G. (1994). Approximate Asymptotic Distribution Functions
//     for Unit-Root and Cointegration Tests
//   - Kwiatkowski, Phillips, Schmidt & Shin (1992). Testing the Null
//     Hypothesis of Stationarity
package gounitroot
