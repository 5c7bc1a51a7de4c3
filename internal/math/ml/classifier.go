package ml

import "fmt"

// Classifier learns to assign an integer class to a feature vector.
type Classifier interface {
	Fit(x [][]float64, y []int) error
	Predict(x [][]float64) ([]int, error)
}

// Explainer is implemented by classifiers that can rank their input features.
type Explainer interface {
	FeatureImportance() []float64
}

// Criterion is the impurity measure used to evaluate splits.
type Criterion string

const (
	Gini    Criterion = "gini"
	Entropy Criterion = "entropy"
)

// Kind names a classifier implementation.
type Kind string

const (
	Tree Kind = "tree"
	// Cart is an alias of Tree.
	Cart   Kind = "cart"
	Forest Kind = "forest"
)

const forestSize = 100

// New creates an untrained classifier of the given kind.
// The seed only matters to models that draw random numbers while training.
func New(kind Kind, criterion Criterion, seed int64) (Classifier, error) {
	if criterion == "" {
		criterion = Gini
	}
	if criterion != Gini && criterion != Entropy {
		return nil, fmt.Errorf("criterion '%s': %w", criterion, ErrUnknownModel)
	}
	switch kind {
	case Tree, Cart, "":
		return NewCART(criterion), nil
	case Forest:
		return NewForest(forestSize, seed), nil
	}
	return nil, fmt.Errorf("kind '%s': %w", kind, ErrUnknownModel)
}

func checkTrainingSet(x [][]float64, y []int) (dim int, classes int, err error) {
	if len(x) == 0 {
		return 0, 0, fmt.Errorf("no training samples: %w", ErrDegenerateSplit)
	}
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%d samples for %d labels: %w", len(x), len(y), ErrDimensionMismatch)
	}
	dim = len(x[0])
	for i, row := range x {
		if len(row) != dim {
			return 0, 0, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), dim, ErrDimensionMismatch)
		}
	}
	for i, l := range y {
		if l < 0 {
			return 0, 0, fmt.Errorf("negative label %d at row %d: %w", l, i, ErrDimensionMismatch)
		}
		if l+1 > classes {
			classes = l + 1
		}
	}
	return dim, classes, nil
}
