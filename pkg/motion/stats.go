package motion

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary is the per-column range and mean of one dataset
// column, used for conversion reports.
type ColumnSummary struct {
	Name string
	Min  float64
	Max  float64
	Mean float64
}

// Summaries computes min, max and mean for every column. Returns nil
// for a dataset with no frames.
func (d *Dataset) Summaries() []ColumnSummary {
	if len(d.rows) == 0 {
		return nil
	}
	names := d.ColumnNames()
	summaries := make([]ColumnSummary, len(names))
	for i, name := range names {
		col := d.Column(i)
		summaries[i] = ColumnSummary{
			Name: name,
			Min:  floats.Min(col),
			Max:  floats.Max(col),
			Mean: stat.Mean(col, nil),
		}
	}
	return summaries
}
