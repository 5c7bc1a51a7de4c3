package ml

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrDegenerateSplit    = errors.New("degenerate split")
	ErrInvalidFraction    = errors.New("invalid holdout fraction")
	ErrNotTrained         = errors.New("model not trained")
	ErrUnknownModel       = errors.New("unknown model")
)

// Dataset is a feature matrix with one integer class label per row.
type Dataset struct {
	Features     [][]float64
	Labels       []int
	FeatureNames []string
	ClassNames   []string
}

// Len returns the number of samples.
func (ds Dataset) Len() int {
	return len(ds.Features)
}

// Dim returns the number of features per sample.
func (ds Dataset) Dim() int {
	if len(ds.Features) == 0 {
		return len(ds.FeatureNames)
	}
	return len(ds.Features[0])
}

// Classes returns the number of distinct classes the dataset knows about.
func (ds Dataset) Classes() int {
	if len(ds.ClassNames) > 0 {
		return len(ds.ClassNames)
	}
	max := -1
	for _, l := range ds.Labels {
		if l > max {
			max = l
		}
	}
	return max + 1
}

// Validate checks that every row has the same width and a matching label.
func (ds Dataset) Validate() error {
	if len(ds.Features) != len(ds.Labels) {
		return fmt.Errorf("%d rows for %d labels: %w", len(ds.Features), len(ds.Labels), ErrDimensionMismatch)
	}
	dim := ds.Dim()
	for i, row := range ds.Features {
		if len(row) != dim {
			return fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), dim, ErrDimensionMismatch)
		}
	}
	return nil
}

// Rows creates a new dataset out of the given row indexes, in the given order.
// Rows are shared with the source, which is never mutated.
func (ds Dataset) Rows(idx []int) Dataset {
	sub := Dataset{
		Features:     make([][]float64, len(idx)),
		Labels:       make([]int, len(idx)),
		FeatureNames: ds.FeatureNames,
		ClassNames:   ds.ClassNames,
	}
	for i, j := range idx {
		sub.Features[i] = ds.Features[j]
		sub.Labels[i] = ds.Labels[j]
	}
	return sub
}

// Column returns a copy of the given feature column.
func (ds Dataset) Column(j int) []float64 {
	col := make([]float64, len(ds.Features))
	for i, row := range ds.Features {
		col[i] = row[j]
	}
	return col
}

// FeatureStats summarises a single feature column.
type FeatureStats struct {
	Name   string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes the per-feature summary of the dataset.
func Describe(ds Dataset) []FeatureStats {
	out := make([]FeatureStats, ds.Dim())
	for j := range out {
		name := fmt.Sprintf("x%d", j)
		if j < len(ds.FeatureNames) {
			name = ds.FeatureNames[j]
		}
		col := ds.Column(j)
		fs := FeatureStats{Name: name, Min: math.NaN(), Max: math.NaN()}
		if len(col) > 0 {
			fs.Mean, fs.StdDev = stat.MeanStdDev(col, nil)
			fs.Min = floats.Min(col)
			fs.Max = floats.Max(col)
		}
		out[j] = fs
	}
	return out
}
