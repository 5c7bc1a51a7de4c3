package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomForest_Iris(t *testing.T) {
	train, test := irisSplit(t, 42)

	forest := NewForest(50, 42)
	_, err := forest.Predict(test.Features)
	assert.ErrorIs(t, err, ErrNotTrained)
	assert.Nil(t, forest.FeatureImportance())

	require.NoError(t, forest.Fit(train.Features, train.Labels))

	predictions, err := forest.Predict(test.Features)
	require.NoError(t, err)
	require.Equal(t, test.Len(), len(predictions))

	acc, err := Accuracy(predictions, test.Labels)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, acc, 0.8)
	assert.Equal(t, 4, len(forest.FeatureImportance()))

	_, err = forest.Predict([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
