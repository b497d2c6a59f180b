package sample

import (
	"math"
	"math/rand"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/dp"
	"github.com/jwkangas/junctor/junctiontree"
	"github.com/jwkangas/junctor/subsetiter"
)

// NaiveSampler draws a junction tree by inverse-CDF sampling: at every
// recursive call it draws one fresh uniform, converts it to a log-scale
// target below the cell's cached total, and rescans the candidate list
// accumulating log-sum-exp mass until it passes that target.
type NaiveSampler struct {
	engine *dp.Engine
	rng    *rand.Rand
}

// NewNaiveSampler builds a NaiveSampler drawing randomness from rng.
// engine must have been built with the LogSumExp semiring.
func NewNaiveSampler(engine *dp.Engine, rng *rand.Rand) (*NaiveSampler, error) {
	if _, ok := engine.Semiring().(dp.LogSumExp); !ok {
		return nil, ErrWrongSemiring
	}
	return &NaiveSampler{engine: engine, rng: rng}, nil
}

// Sample draws one junction tree over the whole universe.
func (s *NaiveSampler) Sample() (*junctiontree.Node, error) {
	n := s.engine.N()
	return s.sampleF(bitset.Empty(n), bitset.Complete(n), nil)
}

func (s *NaiveSampler) target(total float64) float64 {
	return math.Log(s.rng.Float64()) + total
}

func (s *NaiveSampler) sampleF(sep, r bitset.BitSet, parent *junctiontree.Node) (*junctiontree.Node, error) {
	n, w := s.engine.N(), s.engine.W()
	target := s.target(s.engine.F(sep, r))

	acc := math.Inf(-1)
	cardS := sep.Cardinality(n)
	combine := dp.LogSumExp{}.Combine
	for it := subsetiter.NewRangeKIter(n, w-cardS, bitset.Empty(n), r, false, true); it.HasNext(); it.Advance() {
		d := it.Set()
		c := sep.Union(d)
		scoreC := s.engine.LocalScore(c)
		scoreG := s.engine.G(c, r.SymDiff(d))
		acc = combine(acc, scoreC+scoreG)
		if acc < target {
			continue
		}

		child := junctiontree.New(c, sep)
		if parent != nil {
			parent.AddChild(child)
		}
		if err := s.sampleG(c, r.SymDiff(d), child); err != nil {
			return nil, err
		}
		return child, nil
	}
	return nil, ErrExhausted
}

func (s *NaiveSampler) sampleG(c, u bitset.BitSet, node *junctiontree.Node) error {
	if u.IsEmpty() {
		return nil
	}

	n := s.engine.N()
	target := s.target(s.engine.G(c, u))

	acc := math.Inf(-1)
	combine := dp.LogSumExp{}.Combine
	first := bitset.Singleton(u.First(n))
	for it := subsetiter.NewRangeIter(n, first, u, true, true); it.HasNext(); it.Advance() {
		r := it.Set()
		scoreH := s.engine.H(c, r)
		scoreG := s.engine.G(c, u.SymDiff(r))
		acc = combine(acc, scoreH+scoreG)
		if acc < target {
			continue
		}

		if err := s.sampleH(c, r, node); err != nil {
			return err
		}
		return s.sampleG(c, u.SymDiff(r), node)
	}
	return ErrExhausted
}

func (s *NaiveSampler) sampleH(c, r bitset.BitSet, node *junctiontree.Node) error {
	n := s.engine.N()
	target := s.target(s.engine.H(c, r))

	acc := math.Inf(-1)
	combine := dp.LogSumExp{}.Combine
	for it := subsetiter.NewRangeIter(n, bitset.Empty(n), c, true, false); it.HasNext(); it.Advance() {
		sep := it.Set()
		scoreS := s.engine.LocalScore(sep)
		scoreF := s.engine.F(sep, r)
		acc = combine(acc, scoreF-scoreS)
		if acc < target {
			continue
		}

		_, err := s.sampleF(sep, r, node)
		return err
	}
	return ErrExhausted
}
