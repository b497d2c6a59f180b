package alias_test

import (
	"fmt"
	"math/rand"

	"github.com/jwkangas/junctor/alias"
)

// ExampleTable demonstrates building an alias table and drawing from it.
// A distribution with all its mass on one outcome always draws that
// outcome, regardless of the random source, which keeps this example
// deterministic.
func ExampleTable() {
	t, err := alias.New([]float64{0, 5, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	rng := rand.New(rand.NewSource(1))
	fmt.Println(t.Sample(rng))
	fmt.Println(t.Sample(rng))
	fmt.Println(t.Len())

	// Output:
	// 1
	// 1
	// 3
}
