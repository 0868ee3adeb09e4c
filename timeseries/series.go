// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// Series represents an ordered sequence of real-valued observations.
// Observations are indexed 0..n-1 in chronological order. A Series handed
// to a test engine must not be mutated afterwards.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewNamed creates a new named series from values.
func NewNamed(name string, values []float64) *Series {
	return &Series{Values: values, Name: name}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	m, err := stats.Mean(s.Values)
	if err != nil {
		return 0
	}
	return m
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	v, err := stats.SampleVariance(s.Values)
	if err != nil {
		return 0
	}
	return v
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	v, err := stats.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	v, err := stats.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	v, err := stats.Median(s.Values)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Diff calculates the first difference of the series (d=1).
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN calculates the n-th order difference of the series.
func (s *Series) DiffN(n int) *Series {
	if n <= 0 || len(s.Values) <= n {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-n)
	for i := n; i < len(s.Values); i++ {
		result[i-n] = s.Values[i] - s.Values[i-n]
	}

	return &Series{
		Values: result,
		Name:   s.Name + "_diff",
	}
}

// Lag returns the series shifted back by k observations: element i of the
// result is the value observed k periods before observation i+k.
func (s *Series) Lag(k int) *Series {
	if k <= 0 || k >= len(s.Values) {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-k)
	copy(result, s.Values[:len(s.Values)-k])

	return &Series{
		Values: result,
		Name:   s.Name + "_lag",
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{
		Values: values,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Values: values,
		Name:   s.Name,
	}
}

// Log applies natural logarithm transformation. Non-positive values map to
// NaN.
func (s *Series) Log() *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 {
			result[i] = math.Log(v)
		} else {
			result[i] = math.NaN()
		}
	}

	return &Series{
		Values: result,
		Name:   s.Name + "_log",
	}
}

// Validate checks that the series is usable for testing: non-empty and free
// of NaN or infinite values.
func (s *Series) Validate() error {
	if len(s.Values) == 0 {
		return errors.New("timeseries: series is empty")
	}
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("timeseries: series contains non-finite values")
		}
	}
	return nil
}
