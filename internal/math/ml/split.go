package ml

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// NewRand creates a seeded random source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(uint64(seed)))
}

// TestSize returns the number of samples held out for the given fraction.
func TestSize(n int, fraction float64) int {
	return int(math.Round(fraction * float64(n)))
}

// Split shuffles the dataset and holds out the given fraction of it for evaluation.
// The two subsets are disjoint and together cover the whole dataset.
func Split(ds Dataset, fraction float64, rng *rand.Rand) (train Dataset, test Dataset, err error) {
	if err := ds.Validate(); err != nil {
		return Dataset{}, Dataset{}, err
	}
	if fraction <= 0 || fraction >= 1 || math.IsNaN(fraction) {
		return Dataset{}, Dataset{}, fmt.Errorf("fraction %v not in (0,1): %w", fraction, ErrInvalidFraction)
	}
	n := ds.Len()
	k := TestSize(n, fraction)
	if k == 0 || k == n {
		return Dataset{}, Dataset{}, fmt.Errorf("%d of %d samples held out: %w", k, n, ErrDegenerateSplit)
	}
	perm := rng.Perm(n)
	return ds.Rows(perm[k:]), ds.Rows(perm[:k]), nil
}
