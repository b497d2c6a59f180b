package scorefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/subsetiter"
)

// Scores holds one precomputed local score per subset of size at most M,
// addressed the same way pairtable and the dp engine address subsets: by
// their bitset.Bits() value. It satisfies both dp.LocalScorer and
// junctiontree.LocalScorer.
type Scores struct {
	n int
	m int
	// values is indexed by bitset.Bits(), sized 2^n. Subsets larger than m
	// are never populated and are never queried by a correctly configured
	// dp.Engine (its width bound keeps every candidate at |S| <= W <= m).
	values []float64
}

// New wraps a precomputed values slice, indexed by bitset.Bits() the same
// way Read populates it, as a Scores. It lets a scorer such as bdeu build
// a Scores directly, without round-tripping through the text format.
func New(n, m int, values []float64) *Scores {
	return &Scores{n: n, m: m, values: values}
}

// N reports the number of variables the scores were computed over.
func (s *Scores) N() int {
	return s.n
}

// M reports the maximum subset size the file carried scores for.
func (s *Scores) M() int {
	return s.m
}

// LocalScore returns the precomputed score of x. x must have cardinality
// at most M; querying a larger subset returns 0, the same sentinel a
// missing key would return from a map-backed scorer.
func (s *Scores) LocalScore(x bitset.BitSet) float64 {
	i := x.Bits()
	if int(i) >= len(s.values) {
		return 0
	}
	return s.values[i]
}

// Read parses a DMST score file: the header tokens "DMST", N,
// "subset_scores", "colex_order", M, followed by the sum over k=0..M of
// C(N,k) whitespace-separated floats, one per subset of size at most M in
// colexicographic order. It returns the parsed scores, N and M.
func Read(r io.Reader) (*Scores, int, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
	expect := func(literal string) error {
		tok, ok := next()
		if !ok || tok != literal {
			return fmt.Errorf("%w: expected %q, got %q", ErrMalformed, literal, tok)
		}
		return nil
	}
	expectInt := func() (int, error) {
		tok, ok := next()
		if !ok {
			return 0, fmt.Errorf("%w: expected an integer, got end of input", ErrMalformed)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: expected an integer, got %q", ErrMalformed, tok)
		}
		return v, nil
	}

	if err := expect("DMST"); err != nil {
		return nil, 0, 0, err
	}
	n, err := expectInt()
	if err != nil {
		return nil, 0, 0, err
	}
	if err := expect("subset_scores"); err != nil {
		return nil, 0, 0, err
	}
	if err := expect("colex_order"); err != nil {
		return nil, 0, 0, err
	}
	m, err := expectInt()
	if err != nil {
		return nil, 0, 0, err
	}
	if n < 0 || n > bitset.MaxN || m < 0 || m > n {
		return nil, 0, 0, ErrCapacityExceeded
	}

	values := make([]float64, uint64(1)<<uint(n))
	it := subsetiter.NewRangeKIter(n, m, bitset.Empty(n), bitset.Complete(n), true, true)
	for it.HasNext() {
		tok, ok := next()
		if !ok {
			return nil, 0, 0, ErrTruncated
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		values[it.Set().Bits()] = v
		it.Advance()
	}

	return &Scores{n: n, m: m, values: values}, n, m, nil
}

// Write emits scores in the same DMST format Read parses: header tokens
// "DMST", n, "subset_scores", "colex_order", m, followed by one score per
// line for every subset of size at most m in colexicographic order.
func Write(w io.Writer, scores *Scores, n, m int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "DMST\n%d\nsubset_scores\ncolex_order %d\n", n, m); err != nil {
		return err
	}

	for it := subsetiter.NewRangeKIter(n, m, bitset.Empty(n), bitset.Complete(n), true, true); it.HasNext(); it.Advance() {
		if _, err := fmt.Fprintf(bw, "%.6f\n", scores.LocalScore(it.Set())); err != nil {
			return err
		}
	}
	return bw.Flush()
}
