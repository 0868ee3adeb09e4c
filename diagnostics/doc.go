// Package diagnostics provides autocorrelation measures and residual
// serial-correlation tests that complement the unit root tests.
//
// ACF and PACF describe the dependence structure of a series and help
// judge how many lagged differences an augmented regression needs.
// LjungBox and BoxPierce test regression residuals for remaining serial
// correlation; a rejection suggests the chosen lag length is too short.
// DurbinWatson is a quick first-order check on the same residuals.
package diagnostics
