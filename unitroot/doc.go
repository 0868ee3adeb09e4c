// Package unitroot implements hypothesis tests for unit roots and
// stationarity in scalar time series.
//
// Five tests are provided. ADF, DFGLS and PhillipsPerron test the null of a
// unit root against stationarity; KPSS tests the null of stationarity
// against a unit root; VarianceRatio tests the null of a random walk.
//
// # Usage
//
// Construct a test with a series, then read its statistic, p-value or
// critical values. Computation is lazy: nothing runs until the first read,
// and the result is cached until a configuration setter changes a value.
//
//	adf, err := unitroot.NewADF(series)
//	if err != nil {
//	    return err
//	}
//	stat, _ := adf.Stat()
//	p, _ := adf.PValue()
//
//	// Changing configuration discards the cached result.
//	adf.SetTrend(unitroot.TrendConstantTrend)
//	stat, _ = adf.Stat() // recomputed
//
// # Lag Selection
//
// ADF and DFGLS select the number of lagged differences automatically by
// minimizing an information criterion (AIC by default) unless a lag count
// is set explicitly. Very long series switch to a bounded-memory selection
// algorithm automatically.
//
// # P-values
//
// ADF, DFGLS and Phillips-Perron p-values and critical values come from
// MacKinnon-style response-surface approximations (MacKinnonP,
// MacKinnonCrit). KPSS p-values come from linear interpolation of a
// simulated quantile table (KPSSCrit). Variance Ratio p-values are standard
// normal.
//
// Instances are not safe for concurrent use: configuration setters mutate
// cached state. Distinct instances are independent.
package unitroot
