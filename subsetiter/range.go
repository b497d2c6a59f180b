package subsetiter

import "github.com/jwkangas/junctor/bitset"

// RangeIter enumerates every set S with A ⊆ S ⊆ B, in colexicographic
// order, over a universe of n vertices.
//
// Usage follows a look-then-advance pattern:
//
//	for it := NewRangeIter(n, a, b, true, true); it.HasNext(); it.Advance() {
//		s := it.Set()
//		// ... use s ...
//	}
type RangeIter struct {
	n        int
	total    uint64
	index    uint64
	cur      bitset.BitSet
	freeBits []int
}

// NewRangeIter constructs an iterator over [A,B] in an n-vertex universe.
// includeA and includeB control whether the respective endpoint is visited.
// A must be a subset of B.
func NewRangeIter(n int, a, b bitset.BitSet, includeA, includeB bool) *RangeIter {
	cardA := a.Cardinality(n)
	cardB := b.Cardinality(n)

	total := uint64(1) << uint(cardB-cardA)
	if !includeB {
		total--
	}

	free := b.SymDiff(a)
	freeBits := make([]int, 0, cardB-cardA)
	for i := 0; i < n; i++ {
		if free.Has(i) {
			freeBits = append(freeBits, i)
		}
	}

	it := &RangeIter{n: n, total: total, index: 0, cur: a, freeBits: freeBits}
	if !includeA {
		it.Advance()
	}
	return it
}

// HasNext reports whether Set returns a valid value at the current index.
func (it *RangeIter) HasNext() bool {
	return it.index < it.total
}

// Set returns the current subset in the enumeration.
func (it *RangeIter) Set() bitset.BitSet {
	return it.cur
}

// Index returns the 0-based position of the current subset within the
// enumeration.
func (it *RangeIter) Index() uint64 {
	return it.index
}

// Len returns the declared total number of subsets this iterator visits.
func (it *RangeIter) Len() uint64 {
	return it.total
}

// Advance moves to the next subset in colex order: free bits are flipped
// in increasing position order until the first 0 is flipped to 1 (a
// binary-counter increment restricted to the free bit positions).
func (it *RangeIter) Advance() {
	it.index++
	for _, j := range it.freeBits {
		it.cur = it.cur.Flip(j)
		if it.cur.Has(j) {
			return
		}
	}
}
