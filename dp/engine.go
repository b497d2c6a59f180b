package dp

import (
	"fmt"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/pairtable"
	"github.com/jwkangas/junctor/subsetiter"
)

// LocalScorer supplies the subset-additive local score every clique and
// separator is judged by. The engine calls LocalScore once per candidate
// each time it computes a memo cell, so the same subset is scored many
// times over a run; the recurrence steps are cached, the scores are not.
type LocalScorer interface {
	LocalScore(bitset.BitSet) float64
}

// Engine evaluates the shared f/g/h recurrence over an n-vertex universe,
// bounding clique size at W, under a chosen Semiring.
//
// RestrictF controls the F step's search space: when true and the current
// separator S is empty, only candidates D containing R's smallest element
// are considered. This still visits at least one optimal solution when
// searching for a maximum (any partition-tree root can be relabeled so its
// first clique contains that vertex), but it undercounts when summing over
// all solutions, so it must be false whenever the engine's semiring is
// LogSumExp.
type Engine struct {
	n         int
	w         int
	semiring  Semiring
	scores    LocalScorer
	restrictF bool

	f, g, h *pairtable.Table[float64]
}

// New constructs an Engine over an n-vertex universe with clique size
// bounded at w.
func New(n, w int, semiring Semiring, scores LocalScorer, restrictF bool) *Engine {
	zero := semiring.Zero()
	return &Engine{
		n:         n,
		w:         w,
		semiring:  semiring,
		scores:    scores,
		restrictF: restrictF,
		f:         pairtable.New[float64](n, w, zero),
		g:         pairtable.New[float64](n, w, zero),
		h:         pairtable.New[float64](n, w, zero),
	}
}

// N returns the universe size.
func (e *Engine) N() int { return e.n }

// W returns the clique size bound.
func (e *Engine) W() int { return e.w }

// Semiring returns the engine's aggregation semiring.
func (e *Engine) Semiring() Semiring { return e.semiring }

// LocalScore delegates to the engine's LocalScorer. It is exposed so
// collaborators outside this package (the sample package's rebuild steps)
// can score candidate cliques and separators consistently with the engine
// they were built from, without holding their own reference to the
// scorer.
func (e *Engine) LocalScore(x bitset.BitSet) float64 {
	return e.scores.LocalScore(x)
}

func (e *Engine) mustGet(t *pairtable.Table[float64], x, y bitset.BitSet, who string) float64 {
	v, err := t.Get(x, y)
	if err != nil {
		panic(fmt.Errorf("dp: %s(%v,%v): %w", who, x, y, err))
	}
	return v
}

func (e *Engine) mustSet(t *pairtable.Table[float64], x, y bitset.BitSet, v float64, who string) {
	if err := t.Set(x, y, v); err != nil {
		panic(fmt.Errorf("dp: %s(%v,%v): %w", who, x, y, err))
	}
}

// H returns h(C, R): the aggregate, over every strict subset S of C, of
// F(S, R) with S's local score subtracted back out. S is the separator
// candidate that would have led into clique C.
func (e *Engine) H(c, r bitset.BitSet) float64 {
	zero := e.semiring.Zero()
	if cached := e.mustGet(e.h, c, r, "h"); cached != zero {
		return cached
	}

	acc := zero
	for it := subsetiter.NewRangeIter(e.n, bitset.Empty(e.n), c, true, false); it.HasNext(); it.Advance() {
		s := it.Set()
		scoreS := e.scores.LocalScore(s)
		scoreF := e.F(s, r)
		acc = e.semiring.Combine(acc, scoreF-scoreS)
	}

	e.mustSet(e.h, c, r, acc, "h")
	return acc
}

// G returns g(C, U): the aggregate, over every way to peel a first region
// R (forced to contain U's smallest element) off the remaining vertex set
// U, of H(C, R) combined with G(C, U\R). G(C, ∅) is 0 regardless of
// semiring, the base case of an exhausted remainder.
func (e *Engine) G(c, u bitset.BitSet) float64 {
	zero := e.semiring.Zero()
	if cached := e.mustGet(e.g, c, u, "g"); cached != zero {
		return cached
	}

	if u.IsEmpty() {
		e.mustSet(e.g, c, u, 0, "g")
		return 0
	}

	acc := zero
	first := bitset.Singleton(u.First(e.n))
	for it := subsetiter.NewRangeIter(e.n, first, u, true, true); it.HasNext(); it.Advance() {
		r := it.Set()
		scoreH := e.H(c, r)
		scoreG := e.G(c, u.SymDiff(r))
		acc = e.semiring.Combine(acc, scoreH+scoreG)
	}

	e.mustSet(e.g, c, u, acc, "g")
	return acc
}

// F returns f(S, R): the aggregate, over every nonempty candidate D ⊆ R
// with |S|+|D| <= W, of the local score of the new clique C = S ∪ D
// combined with G(C, R\D).
func (e *Engine) F(s, r bitset.BitSet) float64 {
	zero := e.semiring.Zero()
	if cached := e.mustGet(e.f, s, r, "f"); cached != zero {
		return cached
	}

	acc := zero
	for it := e.fCandidates(s, r); it.HasNext(); it.Advance() {
		d := it.Set()
		c := s.Union(d)
		scoreC := e.scores.LocalScore(c)
		scoreG := e.G(c, r.SymDiff(d))
		acc = e.semiring.Combine(acc, scoreC+scoreG)
	}

	e.mustSet(e.f, s, r, acc, "f")
	return acc
}

// fCandidates builds the D-iterator for F(S, R): nonempty subsets of R
// with |D| <= W - |S|, optionally forced to contain R's smallest element
// when RestrictF applies.
func (e *Engine) fCandidates(s, r bitset.BitSet) *subsetiter.RangeKIter {
	cardS := s.Cardinality(e.n)
	k := e.w - cardS

	if e.restrictF && cardS == 0 {
		from := bitset.Singleton(r.First(e.n))
		return subsetiter.NewRangeKIter(e.n, k, from, r, true, true)
	}
	return subsetiter.NewRangeKIter(e.n, k, bitset.Empty(e.n), r, false, true)
}
