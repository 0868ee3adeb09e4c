package unitroot

import "math"

// Tabulated response-surface coefficients for the Dickey-Fuller statistic
// families, following MacKinnon (1994) with the updated 2010 critical-value
// regressions. Polynomial coefficients are stored lowest power first.
//
// The tau tables are indexed by the number of unit roots under the null
// (1..6); index 0 corresponds to the standard single-series test.

var tauStar = map[Trend][]float64{
	TrendNone:                 {-1.04, -1.53, -2.68, -3.09, -3.07, -3.77},
	TrendConstant:             {-1.61, -2.62, -3.13, -3.47, -3.78, -3.93},
	TrendConstantTrend:        {-2.89, -3.19, -3.50, -3.65, -3.80, -4.36},
	TrendConstantTrendSquared: {-3.21, -3.51, -3.81, -3.83, -4.12, -4.63},
}

var tauMin = map[Trend][]float64{
	TrendNone:                 {-19.04, -19.62, -21.21, -23.25, -21.63, -25.74},
	TrendConstant:             {-18.83, -18.86, -23.48, -28.07, -25.96, -23.27},
	TrendConstantTrend:        {-16.18, -21.15, -25.37, -26.63, -26.53, -26.18},
	TrendConstantTrendSquared: {-17.17, -21.10, -24.33, -24.03, -24.33, -28.22},
}

var tauMax = map[Trend][]float64{
	TrendNone:                 {math.Inf(1), 1.51, 0.86, 0.88, 1.05, 1.24},
	TrendConstant:             {2.74, 0.92, 0.55, 0.61, 0.79, 1.00},
	TrendConstantTrend:        {0.70, 0.63, 0.71, 0.93, 1.19, 1.42},
	TrendConstantTrendSquared: {0.54, 0.79, 1.08, 1.43, 3.49, 1.92},
}

var tauSmallP = map[Trend][][]float64{
	TrendNone: {
		{0.6344, 1.2378, 0.032496},
		{1.9129, 1.3857, 0.035322},
		{2.7648, 1.4502, 0.034186},
		{3.4336, 1.4760, 0.031900},
		{4.0999, 1.5086, 0.030982},
		{4.5388, 1.4630, 0.028340},
	},
	TrendConstant: {
		{2.1659, 1.4412, 0.038269},
		{2.9200, 1.5012, 0.039796},
		{3.4699, 1.4856, 0.031644},
		{3.9673, 1.4777, 0.026701},
		{4.5509, 1.5338, 0.029887},
		{5.1399, 1.6036, 0.034826},
	},
	TrendConstantTrend: {
		{3.2512, 1.6047, 0.049588},
		{3.6646, 1.5419, 0.036448},
		{4.0983, 1.5173, 0.029898},
		{4.5844, 1.5338, 0.028796},
		{5.0722, 1.5634, 0.029472},
		{5.5300, 1.5914, 0.030392},
	},
	TrendConstantTrendSquared: {
		{4.0003, 1.6580, 0.048288},
		{4.3534, 1.6016, 0.037947},
		{4.7343, 1.5768, 0.032396},
		{5.2140, 1.6077, 0.033449},
		{5.6481, 1.6274, 0.033455},
		{5.9296, 1.5929, 0.028223},
	},
}

var tauLargeP = map[Trend][][]float64{
	TrendNone: {
		{0.4797, 0.93557, -0.06999, 0.033066},
		{1.5578, 0.85580, -0.20830, -0.033549},
		{2.2268, 0.68093, -0.32362, -0.054448},
		{2.7654, 0.64502, -0.30811, -0.044946},
		{3.2684, 0.68051, -0.26778, -0.034972},
		{3.7268, 0.71670, -0.23648, -0.028288},
	},
	TrendConstant: {
		{1.7339, 0.93202, -0.12745, -0.010368},
		{2.1945, 0.64695, -0.29198, -0.042377},
		{2.5893, 0.45168, -0.36529, -0.050074},
		{3.0387, 0.45452, -0.33666, -0.041921},
		{3.5049, 0.52098, -0.29158, -0.033468},
		{3.9489, 0.58933, -0.25359, -0.027210},
	},
	TrendConstantTrend: {
		{2.5261, 0.61654, -0.37956, -0.060285},
		{2.8500, 0.52720, -0.36622, -0.051695},
		{3.2210, 0.52550, -0.32685, -0.041501},
		{3.6520, 0.59758, -0.27483, -0.032081},
		{4.0712, 0.66428, -0.23464, -0.025460},
		{4.4735, 0.71757, -0.20681, -0.021196},
	},
	TrendConstantTrendSquared: {
		{3.0778, 0.49529, -0.41477, -0.059359},
		{3.4713, 0.59670, -0.32507, -0.042286},
		{3.8637, 0.67852, -0.26286, -0.031381},
		{4.2736, 0.76199, -0.21534, -0.024026},
		{4.6679, 0.82618, -0.18220, -0.019147},
		{5.0009, 0.83735, -0.16994, -0.016928},
	},
}

// tau2010 holds finite-sample critical-value regressions for the single
// unit-root tau statistic. Rows are the 1%, 5% and 10% levels; columns are
// the asymptotic value followed by coefficients on 1/T, 1/T² and 1/T³.
var tau2010 = map[Trend][3][4]float64{
	TrendNone: {
		{-2.56574, -2.2358, -3.627, 0},
		{-1.94100, -0.2686, -3.365, 31.223},
		{-1.61682, 0.2656, -2.714, 25.364},
	},
	TrendConstant: {
		{-3.43035, -6.5393, -16.786, -79.433},
		{-2.86154, -2.8903, -4.234, -40.040},
		{-2.56677, -1.5384, -2.809, 0},
	},
	TrendConstantTrend: {
		{-3.95877, -9.0531, -28.428, -134.155},
		{-3.41049, -4.3904, -9.036, -45.374},
		{-3.12705, -2.5856, -3.925, -22.380},
	},
	TrendConstantTrendSquared: {
		{-4.37113, -11.5882, -35.819, -334.047},
		{-3.83239, -5.9057, -12.490, -118.284},
		{-3.55326, -3.6596, -5.293, -63.559},
	},
}

// ADF-z (coefficient-based) distribution family. The quadratic-trend case
// is not tabulated for this family.

var adfZStar = map[Trend]float64{
	TrendNone:          -4.0,
	TrendConstant:      -6.0,
	TrendConstantTrend: -10.0,
}

var adfZMin = map[Trend]float64{
	TrendNone:          -60.0,
	TrendConstant:      -70.0,
	TrendConstantTrend: -85.0,
}

var adfZMax = map[Trend]float64{
	TrendNone:          3.4,
	TrendConstant:      2.8,
	TrendConstantTrend: 0.9,
}

// Evaluated at log(|stat|) below the star boundary.
var adfZSmallP = map[Trend][]float64{
	TrendNone:          {0.0342, -0.6376, 0, -0.03872},
	TrendConstant:      {2.2142, -1.7863, 0.32828, -0.07727},
	TrendConstantTrend: {4.6476, -2.8932, 0.5832, -0.0999},
}

var adfZLargeP = map[Trend][]float64{
	TrendNone:          {0.5954, 0.6251, 0.0595},
	TrendConstant:      {1.6450, 0.3963, 0.00987},
	TrendConstantTrend: {2.9188, 0.4109, 0.01049},
}

// Asymptotic critical values for the z statistic. Finite-sample response
// coefficients are not tabulated for this family.
var adfZCVApprox = map[Trend][3][4]float64{
	TrendNone: {
		{-13.8, 0, 0, 0},
		{-8.1, 0, 0, 0},
		{-5.7, 0, 0, 0},
	},
	TrendConstant: {
		{-20.7, 0, 0, 0},
		{-14.1, 0, 0, 0},
		{-11.3, 0, 0, 0},
	},
	TrendConstantTrend: {
		{-29.5, 0, 0, 0},
		{-21.8, 0, 0, 0},
		{-18.3, 0, 0, 0},
	},
}

// GLS-detrended Dickey-Fuller distribution family.

var dfglsTauStar = map[Trend]float64{
	TrendConstant:      -0.4795076091714674,
	TrendConstantTrend: -2.1960404365401298,
}

var dfglsTauMin = map[Trend]float64{
	TrendConstant:      -17.561302895074206,
	TrendConstantTrend: -13.681153542634465,
}

var dfglsTauMax = map[Trend]float64{
	TrendConstant:      13.365361509140614,
	TrendConstantTrend: 8.73743383728356,
}

var dfglsSmallP = map[Trend][]float64{
	TrendConstant:      {0.67422739, 1.25475826, 0.03572509},
	TrendConstantTrend: {2.38767685, 1.57454737, 0.05754439},
}

var dfglsLargeP = map[Trend][]float64{
	TrendConstant:      {0.50612497, 0.98305664, -0.05648525, 0.00140875},
	TrendConstantTrend: {2.60561421, 1.67850224, 0.03735990, -0.01017936},
}

var dfglsCVApprox = map[Trend][3][4]float64{
	TrendConstant: {
		{-2.56781793, -6.92118817, -32.90372721, 0},
		{-1.94126892, -2.86903335, -14.28873893, 0},
		{-1.61713143, -1.70921001, -9.21070688, 0},
	},
	TrendConstantTrend: {
		{-3.40689134, -16.49680384, -18.80878537, 0},
		{-2.84677178, -9.71966286, -12.26605513, 0},
		{-2.55890454, -7.49535910, -10.11678661, 0},
	},
}
