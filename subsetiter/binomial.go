package subsetiter

import "github.com/jwkangas/junctor/bitset"

// binomTable[i][j] = C(i, j) for 0 <= j <= i <= bitset.MaxN, computed once
// via Pascal's triangle. The original C++ implementation precomputes this
// via factorial ratios at startup (range_k_iterator::init); Pascal's
// triangle avoids the factorial overflow that would hit at n=32 while
// producing identical values.
var binomTable [bitset.MaxN + 1][bitset.MaxN + 1]uint64

func init() {
	for i := 0; i <= bitset.MaxN; i++ {
		binomTable[i][0] = 1
		for j := 1; j <= i; j++ {
			if j == i {
				binomTable[i][j] = 1
				continue
			}
			binomTable[i][j] = binomTable[i-1][j-1] + binomTable[i-1][j]
		}
	}
}

// binomial returns C(n, k), the number of k-subsets of an n-set. Returns 0
// for k < 0 or k > n.
func binomial(n, k int) uint64 {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	return binomTable[n][k]
}

// subsetsOfSizeAtMost returns the number of subsets of an n-element set
// having size at most k.
func subsetsOfSizeAtMost(n, k int) uint64 {
	if k < 0 {
		return 0
	}
	if k > n {
		k = n
	}
	var total uint64
	for i := 0; i <= k; i++ {
		total += binomial(n, i)
	}
	return total
}
