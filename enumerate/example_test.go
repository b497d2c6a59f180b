package enumerate_test

import (
	"fmt"

	"github.com/jwkangas/junctor/enumerate"
)

// ExampleEnumerateChordal counts every chordal graph on 3 vertices: every
// graph on at most 3 vertices is chordal, since a chordless cycle needs at
// least 4 vertices.
func ExampleEnumerateChordal() {
	result, err := enumerate.EnumerateChordal(3, zeroScorer{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.NumChordal)

	// Output:
	// 8
}
