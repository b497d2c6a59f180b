// SPDX-License-Identifier: MIT
package pairtable

import "github.com/jwkangas/junctor/bitset"

// Table stores one value of type T for every ordered pair (X, Y) of
// disjoint subsets of an n-element universe with |X| <= w.
//
// Each X gets its own contiguous block of 2^(n-|X|) slots, one per subset
// of X's complement; Y is packed into that block by dropping its bits at
// X's positions and compacting the remainder. X values with |X| > w have no
// block at all, since the dp package never queries them.
type Table[T any] struct {
	n       int
	w       int
	offsets []int // offsets[x] is the start of x's block in data, or -1 if unallocated
	data    []T
}

// Estimate returns the number of T slots a Table(n, w) allocates, without
// allocating one. Callers use this to report memory footprint before
// committing to a run.
func Estimate(n, w int) uint64 {
	xSize := uint64(1) << uint(n)
	var ySize uint64
	for x := uint64(0); x < xSize; x++ {
		k := bitset.BitSet(x).Cardinality(n)
		if k > w {
			continue
		}
		ySize += uint64(1) << uint(n-k)
	}
	return ySize
}

// New allocates a Table over an n-element universe restricted to |X| <= w,
// with every slot initialized to initial.
func New[T any](n, w int, initial T) *Table[T] {
	xSize := 1 << uint(n)

	t := &Table[T]{n: n, w: w, offsets: make([]int, xSize)}

	var ySize int
	for x := 0; x < xSize; x++ {
		k := bitset.BitSet(x).Cardinality(n)
		if k > w {
			t.offsets[x] = -1
			continue
		}
		t.offsets[x] = ySize
		ySize += 1 << uint(n-k)
	}

	t.data = make([]T, ySize)
	for i := range t.data {
		t.data[i] = initial
	}
	return t
}

// index maps y to its short index within x's block: the position among
// x's complement bits that y occupies, after dropping y's bits at x's
// positions.
func (t *Table[T]) index(x, y bitset.BitSet) int {
	ind := 0
	j := 0
	for i := 0; i < t.n; i++ {
		if x.Has(i) {
			continue
		}
		if y.Has(i) {
			ind |= 1 << uint(j)
		}
		j++
	}
	return ind
}

func (t *Table[T]) slot(x, y bitset.BitSet) (int, error) {
	if x.Cardinality(t.n) > t.w {
		return 0, ErrNotAllocated
	}
	if !x.Intersect(y).IsEmpty() {
		return 0, ErrOverlap
	}
	off := t.offsets[x]
	return off + t.index(x, y), nil
}

// Get returns the value stored for (x, y).
func (t *Table[T]) Get(x, y bitset.BitSet) (T, error) {
	i, err := t.slot(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[i], nil
}

// Set stores value for (x, y).
func (t *Table[T]) Set(x, y bitset.BitSet, value T) error {
	i, err := t.slot(x, y)
	if err != nil {
		return err
	}
	t.data[i] = value
	return nil
}

// N returns the universe size the table was built for.
func (t *Table[T]) N() int { return t.n }

// W returns the cardinality bound on X the table was built for.
func (t *Table[T]) W() int { return t.w }

// Len returns the total number of allocated slots.
func (t *Table[T]) Len() int { return len(t.data) }
