package enumerate

import (
	"math"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/dp"
)

// Result summarizes an exhaustive chordal-graph enumeration: how many
// chordal graphs exist on n vertices, their combined log-partition score,
// and each edge's posterior marginal probability, all under the given
// local scores.
type Result struct {
	N          int
	NumChordal int
	// TotalScore is the log-sum-exp of every chordal graph's score, i.e.
	// the log partition function over decomposable models on n vertices.
	TotalScore float64
	// EdgeProb[i][j] for i<j is P(edge {i,j} present | decomposable),
	// exp(logsum of scores of chordal graphs containing {i,j} - TotalScore).
	EdgeProb [][]float64
}

// EnumerateChordal visits every one of the 2^C(n,2) labeled graphs on n
// vertices, keeps the chordal ones, and folds each into Result. Cost is
// exponential in n; callers should keep n small.
func EnumerateChordal(n int, scores LocalScorer) (*Result, error) {
	if n < 0 || n > bitset.MaxN {
		return nil, ErrCapacityExceeded
	}

	g := NewGraph(n)
	edgeLog := make([][]float64, n)
	for i := range edgeLog {
		edgeLog[i] = make([]float64, n)
		for j := range edgeLog[i] {
			edgeLog[i][j] = math.Inf(-1)
		}
	}

	combine := dp.LogSumExp{}.Combine
	total := math.Inf(-1)
	numChordal := 0

	var check func()
	check = func() {
		score, _, chordal := g.Score(scores)
		if !chordal {
			return
		}
		numChordal++
		total = combine(total, score)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if !g.HasEdge(i, j) {
					continue
				}
				edgeLog[i][j] = combine(edgeLog[i][j], score)
			}
		}
	}

	var branch func(i, j int)
	branch = func(i, j int) {
		if i == n {
			check()
			return
		}
		if j == n {
			branch(i+1, i+2)
			return
		}
		branch(i, j+1)
		g.AddEdge(i, j)
		branch(i, j+1)
		g.DelEdge(i, j)
	}
	branch(0, 1)

	probs := make([][]float64, n)
	for i := range probs {
		probs[i] = make([]float64, n)
		for j := range probs[i] {
			if i < j {
				probs[i][j] = math.Exp(edgeLog[i][j] - total)
			}
		}
	}

	return &Result{N: n, NumChordal: numChordal, TotalScore: total, EdgeProb: probs}, nil
}
