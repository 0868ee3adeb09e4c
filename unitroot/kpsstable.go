package unitroot

// Simulated quantiles of the KPSS statistic distribution. Each row pairs an
// upper-tail probability (in percent) with the corresponding quantile of
// the statistic; rows are ordered by increasing quantile. P-values come
// from interpolating a statistic against the quantile column; critical
// values from inverting the same table.
type kpssQuantile struct {
	prob  float64 // upper-tail probability x 100
	value float64
}

var kpssQuantiles = map[Trend][]kpssQuantile{
	TrendConstant: {
		{99.0, 0.02480},
		{97.5, 0.03035},
		{95.0, 0.03656},
		{90.0, 0.04601},
		{85.0, 0.05426},
		{80.0, 0.06222},
		{75.0, 0.07026},
		{70.0, 0.07860},
		{65.0, 0.08744},
		{60.0, 0.09698},
		{55.0, 0.10748},
		{50.0, 0.11888},
		{45.0, 0.13172},
		{40.0, 0.14626},
		{35.0, 0.16302},
		{30.0, 0.18295},
		{25.0, 0.20939},
		{20.0, 0.24124},
		{15.0, 0.28406},
		{10.0, 0.34730},
		{5.0, 0.46136},
		{2.5, 0.58061},
		{1.0, 0.74346},
		{0.1, 1.16786},
	},
	TrendConstantTrend: {
		{99.0, 0.00693},
		{95.0, 0.01533},
		{90.0, 0.02176},
		{75.0, 0.03614},
		{50.0, 0.05830},
		{25.0, 0.08806},
		{10.0, 0.11900},
		{5.0, 0.14600},
		{2.5, 0.17600},
		{1.0, 0.21600},
		{0.1, 0.29000},
	},
}
