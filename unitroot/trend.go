package unitroot

import (
	"github.com/sartorproj/gounitroot/regression"
)

// Trend identifies the deterministic terms included in a test regression.
// It is shared with the regression package, which builds the corresponding
// regressor columns.
type Trend = regression.Trend

const (
	// TrendNone includes no deterministic terms.
	TrendNone = regression.TrendNone
	// TrendConstant includes a constant.
	TrendConstant = regression.TrendConstant
	// TrendConstantTrend includes a constant and a linear time trend.
	TrendConstantTrend = regression.TrendConstantTrend
	// TrendConstantTrendSquared includes a constant, a linear and a
	// quadratic time trend.
	TrendConstantTrendSquared = regression.TrendConstantTrendSquared
)
