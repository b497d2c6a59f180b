package bdeu_test

import (
	"fmt"
	"strings"

	"github.com/jwkangas/junctor/bdeu"
	"github.com/jwkangas/junctor/bitset"
)

// ExampleComputeSubsetScores scores every subset of a two-variable
// categorical dataset. The empty subset always scores exactly 0,
// regardless of the equivalent sample size, since it carries no
// dependency structure to reward.
func ExampleComputeSubsetScores() {
	data, err := bdeu.ReadData(strings.NewReader("0 0\n0 1\n1 0\n1 1\n"))
	if err != nil {
		fmt.Println(err)
		return
	}

	scores, err := bdeu.ComputeSubsetScores(data, bdeu.NewScorer(1.0), data.N())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(scores.LocalScore(bitset.Empty(data.N())))

	// Output:
	// 0
}
