package junctiontree_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/junctiontree"
)

// cardinalityScorer is a trivial LocalScorer for tests: score = cardinality.
type cardinalityScorer struct{ n int }

func (s cardinalityScorer) LocalScore(b bitset.BitSet) float64 {
	return float64(b.Cardinality(s.n))
}

// buildChain builds a 3-node path: {0,1} - {1} - {1,2} - {2} - {2,3}.
func buildChain(n int) *junctiontree.Node {
	root := junctiontree.New(bitset.Empty(n).Add(0).Add(1), bitset.Empty(n))
	mid := junctiontree.New(bitset.Empty(n).Add(1).Add(2), bitset.Empty(n).Add(1))
	leaf := junctiontree.New(bitset.Empty(n).Add(2).Add(3), bitset.Empty(n).Add(2))
	mid.AddChild(leaf)
	root.AddChild(mid)
	return root
}

func TestStructuralStats(t *testing.T) {
	n := 4
	root := buildChain(n)

	assert.Equal(t, 3, root.Nodes())
	assert.Equal(t, 2, root.Depth())
	assert.Equal(t, 2, root.Width(n))
}

func TestScore(t *testing.T) {
	n := 4
	root := buildChain(n)
	scores := cardinalityScorer{n: n}

	// (2-0) + (2-1) + (2-1) = 2 + 1 + 1 = 4
	assert.Equal(t, 4.0, root.Score(scores))
}

func TestGraphProjection(t *testing.T) {
	n := 4
	root := buildChain(n)
	g := root.Graph(n)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 3))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestWriteDot(t *testing.T) {
	n := 3
	root := junctiontree.New(bitset.Empty(n).Add(0).Add(1).Add(2), bitset.Empty(n))
	g := root.Graph(n)

	var buf bytes.Buffer
	require.NoError(t, g.WriteDot(&buf))
	out := buf.String()
	assert.Contains(t, out, "graph G {")
	assert.Contains(t, out, "0 -- 1")
	assert.Contains(t, out, "1 -- 2")
	assert.Contains(t, out, "0 -- 2")
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	n := 4
	root := buildChain(n)

	s := root.Serialize()
	got, err := junctiontree.Deserialize(s)
	require.NoError(t, err)

	assert.Equal(t, root.Clique, got.Clique)
	assert.True(t, got.Separator.IsEmpty())
	require.Len(t, got.Children, 1)
	assert.Equal(t, root.Children[0].Clique, got.Children[0].Clique)
	assert.Equal(t, root.Children[0].Separator, got.Children[0].Separator)
	require.Len(t, got.Children[0].Children, 1)
}

func TestDeserializeMalformed(t *testing.T) {
	_, err := junctiontree.Deserialize("3{1")
	assert.ErrorIs(t, err, junctiontree.ErrMalformed)

	_, err = junctiontree.Deserialize("3}")
	assert.ErrorIs(t, err, junctiontree.ErrMalformed)

	_, err = junctiontree.Deserialize("abc")
	assert.ErrorIs(t, err, junctiontree.ErrMalformed)
}

func TestCountJunctionTreesSingleNodeIsOne(t *testing.T) {
	n := 3
	root := junctiontree.New(bitset.Empty(n).Add(0).Add(1).Add(2), bitset.Empty(n))
	assert.Equal(t, 1.0, root.CountJunctionTrees())
	assert.Equal(t, 1.0, root.CountRootedJunctionTrees())
}

func TestCountJunctionTreesChainHasUniqueSeparators(t *testing.T) {
	n := 4
	root := buildChain(n)
	// every separator ({1}, {2}) appears exactly once in the chain, so
	// each contributes a factor of 1 and the whole tree is the unique
	// labeled junction tree for its induced graph.
	assert.Equal(t, 1.0, root.CountJunctionTrees())
	assert.Equal(t, 3.0, root.CountRootedJunctionTrees())
}

func TestPrintDoesNotError(t *testing.T) {
	n := 4
	root := buildChain(n)
	var buf bytes.Buffer
	require.NoError(t, root.Print(&buf, n))
	assert.NotEmpty(t, buf.String())
}

func TestListCliquesAndSeparators(t *testing.T) {
	n := 4
	root := buildChain(n)
	scores := cardinalityScorer{n: n}

	var cliques, seps bytes.Buffer
	require.NoError(t, root.ListCliques(&cliques, scores))
	require.NoError(t, root.ListSeparators(&seps, scores))

	assert.Equal(t, 3, bytes.Count(cliques.Bytes(), []byte("\n")))
	assert.Equal(t, 2, bytes.Count(seps.Bytes(), []byte("\n")))
}
