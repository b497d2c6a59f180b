package bdeu

import (
	"math"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/scorefile"
	"github.com/jwkangas/junctor/subsetiter"
)

// Scorer computes BDeu local scores under a fixed equivalent sample size.
type Scorer struct {
	ess float64
}

// NewScorer returns a Scorer with the given equivalent sample size (ESS),
// the single free parameter of the BDeu prior.
func NewScorer(ess float64) *Scorer {
	return &Scorer{ess: ess}
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// mapCount is the marginal log-likelihood contribution of a single joint
// value observed count times out of arity possible values.
func (s *Scorer) mapCount(arity float64, count int) float64 {
	pseudoCount := s.ess / arity
	return lgamma(float64(count)+pseudoCount) - lgamma(pseudoCount)
}

// compute is the BDeu marginal log-likelihood of a full joint count table:
// counts holds one entry per joint value of the variables scored, summing
// to the number of records.
func (s *Scorer) compute(counts []int) float64 {
	arity := float64(len(counts))
	score := 0.0
	cumCount := 0
	for _, c := range counts {
		score += s.mapCount(arity, c)
		cumCount += c
	}
	score += lgamma(s.ess) - lgamma(float64(cumCount)+s.ess)
	return score
}

// ComputeSubsetScores scores every variable subset of size at most
// maxSize under scorer, by counting the subset's joint values directly
// from data and applying the BDeu formula once per subset. It returns
// the result as a scorefile.Scores, ready to write out or feed straight
// into a dp.Engine.
func ComputeSubsetScores(data *Data, scorer *Scorer, maxSize int) (*scorefile.Scores, error) {
	n := data.N()
	if n > bitset.MaxN || maxSize > bitset.MaxN {
		return nil, ErrCapacityExceeded
	}

	values := make([]float64, uint64(1)<<uint(n))
	for it := subsetiter.NewRangeKIter(n, maxSize, bitset.Empty(n), bitset.Complete(n), true, true); it.HasNext(); it.Advance() {
		sub := it.Set()
		vars := sub.Elements(n)

		nValues := 1
		for _, v := range vars {
			nValues *= data.Arity(v)
		}

		counts := make([]int, nValues)
		for _, rec := range data.records {
			idx := 0
			for _, v := range vars {
				idx = idx*data.Arity(v) + rec[v]
			}
			counts[idx]++
		}

		values[sub.Bits()] = scorer.compute(counts)
	}

	return scorefile.New(n, maxSize, values), nil
}
