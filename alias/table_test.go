package alias_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwkangas/junctor/alias"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := alias.New(nil)
	assert.ErrorIs(t, err, alias.ErrEmptyWeights)
}

func TestNewRejectsNegativeOrZeroTotal(t *testing.T) {
	_, err := alias.New([]float64{1, -1})
	assert.ErrorIs(t, err, alias.ErrNonPositiveWeight)

	_, err = alias.New([]float64{0, 0, 0})
	assert.ErrorIs(t, err, alias.ErrNonPositiveWeight)
}

func TestSampleOnlyEverReturnsNonZeroWeightIndices(t *testing.T) {
	weights := []float64{0, 3, 0, 1}
	tbl, err := alias.New(weights)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		got := tbl.Sample(rng)
		assert.Contains(t, []int{1, 3}, got)
	}
}

func TestSampleDistributionMatchesWeights(t *testing.T) {
	weights := []float64{1, 3}
	tbl, err := alias.New(weights)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	counts := make([]int, 2)
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[tbl.Sample(rng)]++
	}

	frac0 := float64(counts[0]) / trials
	assert.InDelta(t, 0.25, frac0, 0.02)
}

func TestSampleSingleOutcomeAlwaysReturnsIt(t *testing.T) {
	tbl, err := alias.New([]float64{5})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, 0, tbl.Sample(rng))
	}
}
