package ml

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	randomforest "github.com/malaschitz/randomForest"
)

// RandomForest is a majority vote over randomised trees.
type RandomForest struct {
	trees  int
	seed   int64
	dim    int
	forest *randomforest.Forest
}

// NewForest creates an untrained forest of n trees seeded with the given seed.
func NewForest(n int, seed int64) *RandomForest {
	return &RandomForest{
		trees: n,
		seed:  seed,
	}
}

// Fit trains the forest on the given samples.
func (rf *RandomForest) Fit(x [][]float64, y []int) error {
	dim, classes, err := checkTrainingSet(x, y)
	if err != nil {
		return err
	}
	// the forest draws from the global source
	rand.Seed(rf.seed)
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(rf.trees)
	log.Debug().Int("trees", rf.trees).Int("classes", classes).Msg("trained forest")
	rf.dim = dim
	rf.forest = forest
	return nil
}

// Predict returns the class with the most votes for each row of x.
func (rf *RandomForest) Predict(x [][]float64) ([]int, error) {
	if rf.forest == nil {
		return nil, ErrNotTrained
	}
	out := make([]int, len(x))
	for i, row := range x {
		if len(row) != rf.dim {
			return nil, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), rf.dim, ErrDimensionMismatch)
		}
		votes := rf.forest.Vote(row)
		best := 0
		for c, v := range votes {
			if v > votes[best] {
				best = c
			}
		}
		out[i] = best
	}
	return out, nil
}

// FeatureImportance returns the importance the forest assigned to each feature.
func (rf *RandomForest) FeatureImportance() []float64 {
	if rf.forest == nil {
		return nil
	}
	return append([]float64(nil), rf.forest.FeatureImportance...)
}
