package scorefile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/scorefile"
)

func TestReadParsesHeaderAndColexOrderedScores(t *testing.T) {
	// n=2, m=2: subsets in colex order are {}, {0}, {1}, {0,1}.
	input := "DMST\n2\nsubset_scores\ncolex_order 2\n0.0\n1.5\n2.5\n9.0\n"
	scores, n, m, err := scorefile.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, m)

	assert.Equal(t, 0.0, scores.LocalScore(bitset.Empty(2)))
	assert.Equal(t, 1.5, scores.LocalScore(bitset.Empty(2).Add(0)))
	assert.Equal(t, 2.5, scores.LocalScore(bitset.Empty(2).Add(1)))
	assert.Equal(t, 9.0, scores.LocalScore(bitset.Empty(2).Add(0).Add(1)))
}

func TestReadTruncatedSubsetSizeLeavesLargerSubsetsAtZero(t *testing.T) {
	// n=3, m=1: only singletons and the empty set are scored.
	input := "DMST\n3\nsubset_scores\ncolex_order 1\n1.0\n2.0\n3.0\n4.0\n"
	scores, _, _, err := scorefile.Read(strings.NewReader(input))
	require.NoError(t, err)

	pair := bitset.Empty(3).Add(0).Add(1)
	assert.Equal(t, 0.0, scores.LocalScore(pair))
}

func TestReadRejectsWrongHeaderTokens(t *testing.T) {
	cases := []string{
		"NOPE\n2\nsubset_scores\ncolex_order 2\n",
		"DMST\n2\nwrong_section\ncolex_order 2\n",
		"DMST\n2\nsubset_scores\nlex_order 2\n",
		"DMST\nnotanumber\nsubset_scores\ncolex_order 2\n",
	}
	for _, c := range cases {
		_, _, _, err := scorefile.Read(strings.NewReader(c))
		assert.ErrorIs(t, err, scorefile.ErrMalformed)
	}
}

func TestReadRejectsCapacityExceeded(t *testing.T) {
	_, _, _, err := scorefile.Read(strings.NewReader("DMST\n33\nsubset_scores\ncolex_order 2\n"))
	assert.ErrorIs(t, err, scorefile.ErrCapacityExceeded)
}

func TestReadRejectsTruncatedScoreList(t *testing.T) {
	_, _, _, err := scorefile.Read(strings.NewReader("DMST\n2\nsubset_scores\ncolex_order 2\n1.0\n2.0\n"))
	assert.ErrorIs(t, err, scorefile.ErrTruncated)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	input := "DMST\n3\nsubset_scores\ncolex_order 2\n0.1\n0.2\n0.3\n0.4\n0.5\n0.6\n0.7\n"
	scores, n, m, err := scorefile.Read(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, scorefile.Write(&buf, scores, n, m))

	roundTripped, n2, m2, err := scorefile.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, n, n2)
	assert.Equal(t, m, m2)

	for i := 0; i < 8; i++ {
		b := bitset.FromBits(uint32(i))
		if b.Cardinality(n) > m {
			continue
		}
		assert.InDelta(t, scores.LocalScore(b), roundTripped.LocalScore(b), 1e-9)
	}
}
