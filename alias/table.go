package alias

import "math/rand"

// Table draws indices from a fixed discrete distribution in O(1) time
// after an O(n) build.
type Table struct {
	prob  []float64 // prob[i] in [0,1]: chance of returning i outright
	alias []int     // alias[i]: the index returned when the coin flip misses
}

// New builds a Table over len(weights) outcomes, drawing outcome i with
// probability weights[i] / sum(weights). Weights need not be normalized;
// they must be non-negative and sum to a positive total.
func New(weights []float64) (*Table, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyWeights
	}

	var sum float64
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNonPositiveWeight
		}
		sum += w
	}
	if sum <= 0 {
		return nil, ErrNonPositiveWeight
	}

	prob := make([]float64, n)
	alias := make([]int, n)

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		prob[i] = w * float64(n) / sum
		if prob[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		alias[s] = l
		prob[l] = (prob[l] + prob[s]) - 1
		if prob[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Anything left over is only outside [1, ...) due to floating point
	// drift; both worklists' entries are certain outcomes.
	for _, i := range large {
		prob[i] = 1
	}
	for _, i := range small {
		prob[i] = 1
	}

	return &Table{prob: prob, alias: alias}, nil
}

// Len returns the number of outcomes the table was built over.
func (t *Table) Len() int { return len(t.prob) }

// Sample draws one outcome using rng.
func (t *Table) Sample(rng *rand.Rand) int {
	i := rng.Intn(len(t.prob))
	if rng.Float64() <= t.prob[i] {
		return i
	}
	return t.alias[i]
}
