package diagnostics

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gounitroot/timeseries"
)

// SerialCorrelationResult holds the outcome of a portmanteau test for
// serial correlation. The null hypothesis is that there is no
// autocorrelation up to the tested lag.
type SerialCorrelationResult struct {
	Stat   float64
	PValue float64
	Lags   int
	DOF    int
}

// LjungBox tests residuals for serial correlation up to the given lag.
// fitdf is the number of parameters estimated when producing the
// residuals; it reduces the degrees of freedom of the reference
// chi-squared distribution.
func LjungBox(resid []float64, lags, fitdf int) (*SerialCorrelationResult, error) {
	q, acf, err := portmanteauSetup(resid, lags)
	if err != nil {
		return nil, err
	}

	n := float64(len(resid))
	stat := 0.0
	for k := 1; k <= q; k++ {
		stat += acf[k] * acf[k] / (n - float64(k))
	}
	stat *= n * (n + 2)

	return finishPortmanteau(stat, q, fitdf)
}

// BoxPierce is the simpler portmanteau statistic; LjungBox has better
// finite-sample behavior.
func BoxPierce(resid []float64, lags, fitdf int) (*SerialCorrelationResult, error) {
	q, acf, err := portmanteauSetup(resid, lags)
	if err != nil {
		return nil, err
	}

	stat := 0.0
	for k := 1; k <= q; k++ {
		stat += acf[k] * acf[k]
	}
	stat *= float64(len(resid))

	return finishPortmanteau(stat, q, fitdf)
}

func portmanteauSetup(resid []float64, lags int) (int, []float64, error) {
	if len(resid) < 10 {
		return 0, nil, errors.New("diagnostics: at least 10 residuals are required")
	}
	if lags < 1 {
		return 0, nil, errors.New("diagnostics: lags must be at least 1")
	}
	if lags >= len(resid) {
		lags = len(resid) - 1
	}
	acf, err := ACF(timeseries.New(resid), lags)
	if err != nil {
		return 0, nil, err
	}
	return lags, acf, nil
}

func finishPortmanteau(stat float64, lags, fitdf int) (*SerialCorrelationResult, error) {
	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}
	chi2 := distuv.ChiSquared{K: float64(dof)}
	return &SerialCorrelationResult{
		Stat:   stat,
		PValue: 1 - chi2.CDF(stat),
		Lags:   lags,
		DOF:    dof,
	}, nil
}

// DurbinWatson returns the Durbin-Watson statistic for first-order serial
// correlation in residuals. Values near 2 indicate no correlation; values
// below 2 positive correlation, above 2 negative correlation.
func DurbinWatson(resid []float64) (float64, error) {
	if len(resid) < 2 {
		return 0, errors.New("diagnostics: at least 2 residuals are required")
	}

	num := 0.0
	den := 0.0
	for i, r := range resid {
		if i > 0 {
			d := r - resid[i-1]
			num += d * d
		}
		den += r * r
	}
	if den == 0 {
		return 0, errors.New("diagnostics: residuals are identically zero")
	}
	return num / den, nil
}
