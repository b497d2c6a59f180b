package sample

import (
	"math"
	"math/rand"

	"github.com/jwkangas/junctor/alias"
	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/dp"
	"github.com/jwkangas/junctor/junctiontree"
	"github.com/jwkangas/junctor/pairtable"
	"github.com/jwkangas/junctor/subsetiter"
)

// sampleCache holds a batch of pre-drawn candidates for one DP cell.
// Consuming the last sample empties it; the next visit rebuilds a batch
// twice the size of the last one, so cells visited often across many
// Sample calls amortize their alias-table build over more draws.
type sampleCache struct {
	samples []bitset.BitSet
	n       int
}

func newSampleCache() *sampleCache {
	return &sampleCache{n: 1}
}

func (c *sampleCache) consume() bitset.BitSet {
	last := len(c.samples) - 1
	v := c.samples[last]
	c.samples = c.samples[:last]
	return v
}

func (c *sampleCache) build(weights []float64, sets []bitset.BitSet, rng *rand.Rand) error {
	tbl, err := alias.New(weights)
	if err != nil {
		return err
	}
	c.samples = c.samples[:0]
	for i := 0; i < c.n; i++ {
		c.samples = append(c.samples, sets[tbl.Sample(rng)])
	}
	c.n *= 2
	return nil
}

// AdaptiveSampler draws junction trees the same way NaiveSampler does, but
// backs every DP cell's candidate distribution with a sampleCache instead
// of rescanning and redrawing from scratch on every visit.
type AdaptiveSampler struct {
	engine *dp.Engine
	rng    *rand.Rand
	fCache *pairtable.Table[*sampleCache]
	gCache *pairtable.Table[*sampleCache]
	hCache *pairtable.Table[*sampleCache]
}

// NewAdaptiveSampler builds an AdaptiveSampler drawing randomness from
// rng. engine must have been built with the LogSumExp semiring.
func NewAdaptiveSampler(engine *dp.Engine, rng *rand.Rand) (*AdaptiveSampler, error) {
	if _, ok := engine.Semiring().(dp.LogSumExp); !ok {
		return nil, ErrWrongSemiring
	}
	n, w := engine.N(), engine.W()
	return &AdaptiveSampler{
		engine: engine,
		rng:    rng,
		fCache: pairtable.New[*sampleCache](n, w, nil),
		gCache: pairtable.New[*sampleCache](n, w, nil),
		hCache: pairtable.New[*sampleCache](n, w, nil),
	}, nil
}

// Sample draws one junction tree over the whole universe.
func (a *AdaptiveSampler) Sample() (*junctiontree.Node, error) {
	n := a.engine.N()
	return a.sampleF(bitset.Empty(n), bitset.Complete(n), nil)
}

func (a *AdaptiveSampler) getCache(t *pairtable.Table[*sampleCache], x, y bitset.BitSet) *sampleCache {
	c, err := t.Get(x, y)
	if err != nil {
		panic(err)
	}
	if c == nil {
		c = newSampleCache()
		if err := t.Set(x, y, c); err != nil {
			panic(err)
		}
	}
	return c
}

func (a *AdaptiveSampler) sampleF(sep, r bitset.BitSet, parent *junctiontree.Node) (*junctiontree.Node, error) {
	cache := a.getCache(a.fCache, sep, r)
	if len(cache.samples) == 0 {
		if err := a.rebuildF(sep, r, cache); err != nil {
			return nil, err
		}
	}

	d := cache.consume()
	c := sep.Union(d)
	child := junctiontree.New(c, sep)
	if parent != nil {
		parent.AddChild(child)
	}
	if err := a.sampleG(c, r.SymDiff(d), child); err != nil {
		return nil, err
	}
	return child, nil
}

func (a *AdaptiveSampler) sampleG(c, u bitset.BitSet, node *junctiontree.Node) error {
	if u.IsEmpty() {
		return nil
	}

	cache := a.getCache(a.gCache, c, u)
	if len(cache.samples) == 0 {
		if err := a.rebuildG(c, u, cache); err != nil {
			return err
		}
	}

	r := cache.consume()
	if err := a.sampleH(c, r, node); err != nil {
		return err
	}
	return a.sampleG(c, u.SymDiff(r), node)
}

func (a *AdaptiveSampler) sampleH(c, r bitset.BitSet, node *junctiontree.Node) error {
	cache := a.getCache(a.hCache, c, r)
	if len(cache.samples) == 0 {
		if err := a.rebuildH(c, r, cache); err != nil {
			return err
		}
	}

	sep := cache.consume()
	_, err := a.sampleF(sep, r, node)
	return err
}

func (a *AdaptiveSampler) rebuildF(sep, r bitset.BitSet, cache *sampleCache) error {
	n, w := a.engine.N(), a.engine.W()
	total := a.engine.F(sep, r)
	cardS := sep.Cardinality(n)

	var weights []float64
	var sets []bitset.BitSet
	for it := subsetiter.NewRangeKIter(n, w-cardS, bitset.Empty(n), r, false, true); it.HasNext(); it.Advance() {
		d := it.Set()
		c := sep.Union(d)
		scoreC := a.engine.LocalScore(c)
		scoreG := a.engine.G(c, r.SymDiff(d))
		weights = append(weights, math.Exp(scoreC+scoreG-total))
		sets = append(sets, d)
	}
	return cache.build(weights, sets, a.rng)
}

func (a *AdaptiveSampler) rebuildG(c, u bitset.BitSet, cache *sampleCache) error {
	n := a.engine.N()
	total := a.engine.G(c, u)
	first := bitset.Singleton(u.First(n))

	var weights []float64
	var sets []bitset.BitSet
	for it := subsetiter.NewRangeIter(n, first, u, true, true); it.HasNext(); it.Advance() {
		r := it.Set()
		scoreH := a.engine.H(c, r)
		scoreG := a.engine.G(c, u.SymDiff(r))
		weights = append(weights, math.Exp(scoreH+scoreG-total))
		sets = append(sets, r)
	}
	return cache.build(weights, sets, a.rng)
}

func (a *AdaptiveSampler) rebuildH(c, r bitset.BitSet, cache *sampleCache) error {
	n := a.engine.N()
	total := a.engine.H(c, r)

	var weights []float64
	var sets []bitset.BitSet
	for it := subsetiter.NewRangeIter(n, bitset.Empty(n), c, true, false); it.HasNext(); it.Advance() {
		sep := it.Set()
		scoreS := a.engine.LocalScore(sep)
		scoreF := a.engine.F(sep, r)
		weights = append(weights, math.Exp(scoreF-scoreS-total))
		sets = append(sets, sep)
	}
	return cache.build(weights, sets, a.rng)
}

// Close frees every cached batch reachable from the whole-universe root
// call, walking the same recursion Sample does but stopping at any cell
// whose cache was already freed (or never built).
func (a *AdaptiveSampler) Close() {
	n := a.engine.N()
	a.freeF(bitset.Empty(n), bitset.Complete(n))
}

func (a *AdaptiveSampler) freeCache(t *pairtable.Table[*sampleCache], x, y bitset.BitSet) bool {
	c, err := t.Get(x, y)
	if err != nil || c == nil {
		return false
	}
	if err := t.Set(x, y, nil); err != nil {
		panic(err)
	}
	return true
}

func (a *AdaptiveSampler) freeF(sep, r bitset.BitSet) {
	if !a.freeCache(a.fCache, sep, r) {
		return
	}
	n, w := a.engine.N(), a.engine.W()
	cardS := sep.Cardinality(n)
	for it := subsetiter.NewRangeKIter(n, w-cardS, bitset.Empty(n), r, false, true); it.HasNext(); it.Advance() {
		d := it.Set()
		c := sep.Union(d)
		a.freeG(c, r.SymDiff(d))
	}
}

func (a *AdaptiveSampler) freeG(c, u bitset.BitSet) {
	if u.IsEmpty() {
		return
	}
	if !a.freeCache(a.gCache, c, u) {
		return
	}
	n := a.engine.N()
	first := bitset.Singleton(u.First(n))
	for it := subsetiter.NewRangeIter(n, first, u, true, true); it.HasNext(); it.Advance() {
		r := it.Set()
		a.freeH(c, r)
		a.freeG(c, u.SymDiff(r))
	}
}

func (a *AdaptiveSampler) freeH(c, r bitset.BitSet) {
	if !a.freeCache(a.hCache, c, r) {
		return
	}
	n := a.engine.N()
	for it := subsetiter.NewRangeIter(n, bitset.Empty(n), c, true, false); it.HasNext(); it.Advance() {
		sep := it.Set()
		a.freeF(sep, r)
	}
}
