package subsetiter

import "github.com/jwkangas/junctor/bitset"

// RangeKIter enumerates every set S with A ⊆ S ⊆ B and |S| ≤ k, in
// colexicographic order, over a universe of n vertices.
//
// The successor rule differs from RangeIter's plain counter increment: once
// the maximum number of free 1-bits (k - |A|, capped by |B\A|) is reached,
// the increment carries from the lowest currently-set free bit rather than
// from the lowest free bit, since setting any bit below it while at
// capacity would exceed the bound. This is the standard bounded-colex
// successor for "next subset of size ≤ k".
type RangeKIter struct {
	n        int
	k        int
	total    uint64
	index    uint64
	cur      bitset.BitSet
	freeBits []int
	freeMax  int
	oneBits  []int // positions (indices into freeBits) of currently-set free bits, descending
}

// NewRangeKIter constructs an iterator over [A,B] restricted to |S| <= k,
// in an n-vertex universe. includeStart and includeEnd control whether the
// respective endpoint is visited (an endpoint whose size exceeds k is never
// visited regardless of these flags).
func NewRangeKIter(n, k int, a, b bitset.BitSet, includeStart, includeEnd bool) *RangeKIter {
	cardA := a.Cardinality(n)
	cardB := b.Cardinality(n)
	cardC := cardB - cardA

	freeMax := k - cardA
	if cardC < freeMax {
		freeMax = cardC
	}
	if freeMax < 0 {
		freeMax = 0
	}

	total := subsetsOfSizeAtMost(cardC, freeMax)
	if !includeEnd && k >= cardB {
		total--
	}

	free := b.SymDiff(a)
	freeBits := make([]int, 0, cardC)
	for i := 0; i < n; i++ {
		if free.Has(i) {
			freeBits = append(freeBits, i)
		}
	}

	it := &RangeKIter{n: n, k: k, total: total, index: 0, cur: a, freeBits: freeBits, freeMax: freeMax}
	if !includeStart {
		it.Advance()
	}
	return it
}

// HasNext reports whether Set returns a valid value at the current index.
func (it *RangeKIter) HasNext() bool {
	return it.index < it.total
}

// Set returns the current subset in the enumeration.
func (it *RangeKIter) Set() bitset.BitSet {
	return it.cur
}

// Index returns the 0-based position of the current subset within the
// enumeration.
func (it *RangeKIter) Index() uint64 {
	return it.index
}

// Len returns the declared total number of subsets this iterator visits.
func (it *RangeKIter) Len() uint64 {
	return it.total
}

func (it *RangeKIter) optBit(i int) bool {
	return it.cur.Has(it.freeBits[i])
}

func (it *RangeKIter) flipOpt(i int) {
	it.cur = it.cur.Flip(it.freeBits[i])
}

// Advance moves to the next subset of size <= k in colex order.
func (it *RangeKIter) Advance() {
	it.index++
	if it.index == it.total {
		return
	}
	it.next()
}

func (it *RangeKIter) next() {
	var i int
	if len(it.oneBits) == it.freeMax {
		i = it.oneBits[len(it.oneBits)-1]
	} else {
		i = 0
	}

	for it.optBit(i) {
		it.flipOpt(i)
		it.oneBits = it.oneBits[:len(it.oneBits)-1]
		i++
	}

	it.flipOpt(i)
	it.oneBits = append(it.oneBits, i)
}
