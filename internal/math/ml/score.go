package ml

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Accuracy is the fraction of positions where the prediction matches the actual label.
func Accuracy(predicted, actual []int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("%d predictions for %d labels: %w", len(predicted), len(actual), ErrDimensionMismatch)
	}
	if len(actual) == 0 {
		return 0, fmt.Errorf("nothing to score: %w", ErrDegenerateSplit)
	}
	ref, err := labelInstances(actual)
	if err != nil {
		return 0, err
	}
	gen, err := labelInstances(predicted)
	if err != nil {
		return 0, err
	}
	cf, err := evaluation.GetConfusionMatrix(ref, gen)
	if err != nil {
		return 0, fmt.Errorf("could not get confusion matrix: %s: %w", err.Error(), ErrDimensionMismatch)
	}
	return evaluation.GetAccuracy(cf), nil
}

// labelInstances wraps the labels into a golearn grid holding only the class column.
func labelInstances(y []int) (*base.DenseInstances, error) {
	return ToInstances(make([][]float64, len(y)), y)
}

// Confusion counts predictions per actual class (rows) and predicted class (columns).
func Confusion(predicted, actual []int, classes int) ([][]int, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("%d predictions for %d labels: %w", len(predicted), len(actual), ErrDimensionMismatch)
	}
	m := make([][]int, classes)
	for i := range m {
		m[i] = make([]int, classes)
	}
	for i, a := range actual {
		p := predicted[i]
		if a < 0 || a >= classes || p < 0 || p >= classes {
			return nil, fmt.Errorf("label out of range at %d (%d,%d) for %d classes: %w", i, a, p, classes, ErrDimensionMismatch)
		}
		m[a][p]++
	}
	return m, nil
}
