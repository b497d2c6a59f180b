package enumerate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/enumerate"
)

// zeroScorer scores every subset 0, so every chordal graph's Score is 0
// regardless of its clique/separator structure. That makes NumChordal and
// the resulting log-partition and edge marginals hand-computable: every
// graph on 3 or fewer vertices is chordal (no induced cycle of length >=4
// is possible), and on 4 vertices exactly the 3 unchorded 4-cycles are not.
type zeroScorer struct{}

func (zeroScorer) LocalScore(bitset.BitSet) float64 { return 0 }

func TestEnumerateChordalCountsAllGraphsUpToThreeVertices(t *testing.T) {
	for n := 0; n <= 3; n++ {
		result, err := enumerate.EnumerateChordal(n, zeroScorer{})
		require.NoError(t, err)
		want := 1 << uint(n*(n-1)/2)
		assert.Equal(t, want, result.NumChordal, "n=%d", n)
		assert.InDelta(t, math.Log(float64(want)), result.TotalScore, 1e-9, "n=%d", n)
	}
}

func TestEnumerateChordalExcludesExactlyTheThreeFourCyclesAtFourVertices(t *testing.T) {
	result, err := enumerate.EnumerateChordal(4, zeroScorer{})
	require.NoError(t, err)
	assert.Equal(t, 64-3, result.NumChordal)
}

func TestEnumerateChordalEdgeMarginalsAtThreeVertices(t *testing.T) {
	result, err := enumerate.EnumerateChordal(3, zeroScorer{})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := i + 1; j < 3; j++ {
			assert.InDelta(t, 0.5, result.EdgeProb[i][j], 1e-9)
		}
	}
}

func TestEnumerateChordalEdgeMarginalsAtFourVertices(t *testing.T) {
	result, err := enumerate.EnumerateChordal(4, zeroScorer{})
	require.NoError(t, err)
	want := 30.0 / 61.0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 4; j++ {
			assert.InDelta(t, want, result.EdgeProb[i][j], 1e-9)
		}
	}
}

func TestEnumerateChordalRejectsCapacityExceeded(t *testing.T) {
	_, err := enumerate.EnumerateChordal(33, zeroScorer{})
	assert.ErrorIs(t, err, enumerate.ErrCapacityExceeded)
}

func TestGraphScoreOnDisjointPairIsTwoCliquesNoSeparator(t *testing.T) {
	g := enumerate.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)

	p01 := bitset.Empty(4).Add(0).Add(1)
	p23 := bitset.Empty(4).Add(2).Add(3)
	scores := scoreMap{p01: 1, p23: 2}

	score, nCliques, chordal := g.Score(scores)
	require.True(t, chordal)
	assert.Equal(t, 2, nCliques)
	assert.InDelta(t, 3.0, score, 1e-9)
}

func TestGraphScoreOnFourCycleIsNotChordal(t *testing.T) {
	g := enumerate.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	_, _, chordal := g.Score(zeroScorer{})
	assert.False(t, chordal)
}

type scoreMap map[bitset.BitSet]float64

func (m scoreMap) LocalScore(x bitset.BitSet) float64 {
	return m[x]
}
