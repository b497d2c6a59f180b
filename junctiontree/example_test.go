package junctiontree_test

import (
	"fmt"

	"github.com/jwkangas/junctor/bitset"
	"github.com/jwkangas/junctor/junctiontree"
)

// zeroScorer scores every clique and separator at 0.
type zeroScorer struct{}

func (zeroScorer) LocalScore(bitset.BitSet) float64 { return 0 }

// ExampleNode builds a small tree by hand, round-trips it through
// Serialize/Deserialize, and reports its shape.
func ExampleNode() {
	root := junctiontree.New(bitset.FromBits(3), bitset.Empty(3)) // {0,1}
	left := junctiontree.New(bitset.FromBits(1), bitset.FromBits(1))
	right := junctiontree.New(bitset.FromBits(2), bitset.FromBits(2))
	root.AddChild(left)
	root.AddChild(right)

	s := root.Serialize()
	fmt.Println(s)

	parsed, err := junctiontree.Deserialize(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(parsed.Nodes())
	fmt.Println(parsed.Score(zeroScorer{}))

	// Output:
	// 3{1}{2}
	// 3
	// 0
}
