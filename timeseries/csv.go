package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader producing CSV.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(records) {
			return nil, errors.New("timeseries: skip count exceeds row count")
		}
		records = records[opts.SkipRows:]
	}
	if len(records) == 0 {
		return nil, errors.New("timeseries: empty CSV input")
	}

	valueIdx := 0
	if opts.HasHeader {
		header := records[0]
		records = records[1:]
		valueIdx = -1
		for i, name := range header {
			if name == opts.ValueColumn {
				valueIdx = i
				break
			}
		}
		if valueIdx < 0 {
			return nil, fmt.Errorf("timeseries: value column %q not found", opts.ValueColumn)
		}
	}

	values := make([]float64, 0, len(records))
	for i, rec := range records {
		if valueIdx >= len(rec) {
			return nil, fmt.Errorf("timeseries: row %d has no value column", i)
		}
		v, err := strconv.ParseFloat(rec[valueIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: %w", i, err)
		}
		values = append(values, v)
	}

	return NewNamed(opts.ValueColumn, values), nil
}
