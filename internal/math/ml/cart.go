package ml

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/trees"
)

const classAttribute = "class"

// CART wraps the golearn CART decision tree.
// The tree is grown without a depth limit and draws no random numbers,
// so the same training set always yields the same tree.
type CART struct {
	criterion Criterion
	dim       int
	tree      *trees.CARTDecisionTreeClassifier
}

// NewCART creates an untrained tree using the given impurity criterion.
func NewCART(criterion Criterion) *CART {
	return &CART{criterion: criterion}
}

// Fit grows the tree on the given samples.
func (c *CART) Fit(x [][]float64, y []int) error {
	dim, classes, err := checkTrainingSet(x, y)
	if err != nil {
		return err
	}
	instances, err := ToInstances(x, y)
	if err != nil {
		return err
	}
	labels := make([]int64, classes)
	for i := range labels {
		labels[i] = int64(i)
	}
	tree := trees.NewDecisionTreeClassifier(string(c.criterion), -1, labels)
	if err := tree.Fit(instances); err != nil {
		log.Error().Err(err).Msg("could not train cart tree")
		return fmt.Errorf("could not fit cart tree: %w", err)
	}
	c.dim = dim
	c.tree = tree
	return nil
}

// Predict returns one label per row of x.
func (c *CART) Predict(x [][]float64) ([]int, error) {
	if c.tree == nil {
		return nil, ErrNotTrained
	}
	for i, row := range x {
		if len(row) != c.dim {
			return nil, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), c.dim, ErrDimensionMismatch)
		}
	}
	if len(x) == 0 {
		return []int{}, nil
	}
	instances, err := ToInstances(x, make([]int, len(x)))
	if err != nil {
		return nil, err
	}
	predictions := c.tree.Predict(instances)
	out := make([]int, len(predictions))
	for i, p := range predictions {
		out[i] = int(p)
	}
	return out, nil
}

// ToInstances builds a golearn grid out of float features and a numeric class column.
func ToInstances(x [][]float64, y []int) (*base.DenseInstances, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d samples for %d labels: %w", len(x), len(y), ErrDimensionMismatch)
	}
	dim := 0
	if len(x) > 0 {
		dim = len(x[0])
	}
	instances := base.NewDenseInstances()
	attrs := make([]base.Attribute, dim+1)
	for j := 0; j < dim; j++ {
		attrs[j] = base.NewFloatAttribute(fmt.Sprintf("x%d", j))
		instances.AddAttribute(attrs[j])
	}
	attrs[dim] = base.NewFloatAttribute(classAttribute)
	instances.AddAttribute(attrs[dim])
	if err := instances.AddClassAttribute(attrs[dim]); err != nil {
		return nil, fmt.Errorf("could not set class attribute: %w", err)
	}
	specs := base.ResolveAttributes(instances, attrs)
	if err := instances.Extend(len(x)); err != nil {
		return nil, fmt.Errorf("could not allocate %d rows: %w", len(x), err)
	}
	for i, row := range x {
		if len(row) != dim {
			return nil, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), dim, ErrDimensionMismatch)
		}
		for j, v := range row {
			instances.Set(specs[j], i, base.PackFloatToBytes(v))
		}
		instances.Set(specs[dim], i, base.PackFloatToBytes(float64(y[i])))
	}
	return instances, nil
}
