package dp

import (
	"errors"
	"math"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/junctiontree"
	"github.com/jwkangas/junctor/subsetiter"
)

// BacktrackTolerance is the absolute difference within which a candidate's
// recomputed score is considered a match for a recorded optimum during
// backtracking. Local scores are read from files or computed from
// floating-point statistics, so an exact equality test would occasionally
// reject the very candidate that produced the recorded value.
const BacktrackTolerance = 1e-6

// ErrWrongSemiring is returned by Backtrack when called on an Engine whose
// semiring is not MaxPlus: only a maximization run has a single "optimal"
// score for candidates to be checked against.
var ErrWrongSemiring = errors.New("dp: Backtrack requires a MaxPlus engine")

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= BacktrackTolerance
}

// Backtrack reconstructs an optimal junction tree over the whole universe
// by re-evaluating the forward recurrence and, at each step, picking the
// first candidate whose recomputed score matches the memoized optimum.
// Because F, G and H are memoized, every value it reads was already
// computed by the initial call to F(∅, Complete); Backtrack performs no
// new DP evaluations of its own, only comparisons.
func (e *Engine) Backtrack() (*junctiontree.Node, error) {
	if _, ok := e.semiring.(MaxPlus); !ok {
		return nil, ErrWrongSemiring
	}

	empty := bitset.Empty(e.n)
	full := bitset.Complete(e.n)
	target := e.F(empty, full)

	return e.backtrackF(empty, full, target, nil)
}

func (e *Engine) backtrackF(s, r bitset.BitSet, target float64, parent *junctiontree.Node) (*junctiontree.Node, error) {
	for it := e.fCandidates(s, r); it.HasNext(); it.Advance() {
		d := it.Set()
		c := s.Union(d)
		scoreC := e.scores.LocalScore(c)
		scoreG := e.G(c, r.SymDiff(d))

		if !floatEquals(scoreC+scoreG, target) {
			continue
		}

		child := junctiontree.New(c, s)
		if parent != nil {
			parent.AddChild(child)
		}
		if err := e.backtrackG(c, r.SymDiff(d), scoreG, child); err != nil {
			return nil, err
		}
		return child, nil
	}
	return nil, ErrNoOptimum
}

func (e *Engine) backtrackG(c, u bitset.BitSet, target float64, node *junctiontree.Node) error {
	if u.IsEmpty() {
		return nil
	}

	first := bitset.Singleton(u.First(e.n))
	for it := subsetiter.NewRangeIter(e.n, first, u, true, true); it.HasNext(); it.Advance() {
		r := it.Set()
		scoreH := e.H(c, r)
		scoreG := e.G(c, u.SymDiff(r))

		if !floatEquals(scoreH+scoreG, target) {
			continue
		}

		if err := e.backtrackH(c, r, scoreH, node); err != nil {
			return err
		}
		return e.backtrackG(c, u.SymDiff(r), scoreG, node)
	}
	return ErrNoOptimum
}

func (e *Engine) backtrackH(c, r bitset.BitSet, target float64, node *junctiontree.Node) error {
	for it := subsetiter.NewRangeIter(e.n, bitset.Empty(e.n), c, true, false); it.HasNext(); it.Advance() {
		s := it.Set()
		scoreS := e.scores.LocalScore(s)
		scoreF := e.F(s, r)

		if !floatEquals(scoreF-scoreS, target) {
			continue
		}

		_, err := e.backtrackF(s, r, scoreF, node)
		return err
	}
	return ErrNoOptimum
}
