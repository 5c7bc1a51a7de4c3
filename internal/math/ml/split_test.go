package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {

	type test struct {
		n     int
		frac  float64
		train int
		test  int
	}

	tests := map[string]test{
		"iris": {
			n:     150,
			frac:  0.2,
			train: 120,
			test:  30,
		},
		"half": {
			n:     10,
			frac:  0.5,
			train: 5,
			test:  5,
		},
		"rounded": {
			n:     11,
			frac:  0.25,
			train: 8,
			test:  3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ds := indexed(tt.n)
			train, test, err := Split(ds, tt.frac, NewRand(42))
			require.NoError(t, err)
			assert.Equal(t, tt.train, train.Len())
			assert.Equal(t, tt.test, test.Len())

			seen := make(map[float64]bool)
			for _, row := range append(train.Features, test.Features...) {
				assert.False(t, seen[row[0]], "row %v in both subsets", row[0])
				seen[row[0]] = true
			}
			assert.Equal(t, tt.n, len(seen))
		})
	}
}

func TestSplit_LabelsFollowRows(t *testing.T) {
	ds := indexed(60)
	train, test, err := Split(ds, 0.2, NewRand(1))
	require.NoError(t, err)
	for _, sub := range []Dataset{train, test} {
		for i, row := range sub.Features {
			assert.Equal(t, int(row[0])%3, sub.Labels[i])
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	ds, err := LoadIris()
	require.NoError(t, err)

	_, test1, err := Split(ds, 0.2, NewRand(7))
	require.NoError(t, err)
	_, test2, err := Split(ds, 0.2, NewRand(7))
	require.NoError(t, err)

	assert.Equal(t, test1.Features, test2.Features)
	assert.Equal(t, test1.Labels, test2.Labels)
}

func TestSplit_Errors(t *testing.T) {
	ds := indexed(150)

	for _, frac := range []float64{0, 1, -0.1, 1.5} {
		_, _, err := Split(ds, frac, NewRand(1))
		assert.ErrorIs(t, err, ErrInvalidFraction, "fraction %v", frac)
	}

	_, _, err := Split(ds, 0.001, NewRand(1))
	assert.ErrorIs(t, err, ErrDegenerateSplit)

	_, _, err = Split(ds, 0.999, NewRand(1))
	assert.ErrorIs(t, err, ErrDegenerateSplit)

	broken := Dataset{Features: [][]float64{{1}, {2}}, Labels: []int{0}}
	_, _, err = Split(broken, 0.5, NewRand(1))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTestSize(t *testing.T) {
	assert.Equal(t, 30, TestSize(150, 0.2))
	assert.Equal(t, 0, TestSize(2, 0.2))
	assert.Equal(t, 1, TestSize(3, 0.2))
}
