// Package timeseries provides the Series data type consumed by the
// unit-root tests along with common transformations.
//
// # Creating Series
//
// Create a series from raw values or load one from CSV:
//
//	series := timeseries.New(values)
//	series, err := timeseries.LoadCSV("cpi.csv", nil)
//
// # Transformations
//
// Transformations return new Series and never modify the receiver:
//
//	inflation := series.Log().Diff()
//	lagged := series.Lag(1)
//
// # Summary Statistics
//
// Basic descriptive statistics are available directly:
//
//	series.Mean()
//	series.Variance()
//	series.Median()
//
// A series handed to a test engine is treated as read-only; mutate a copy
// from Copy() instead.
package timeseries
