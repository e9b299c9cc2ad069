package matching_test

import (
	"fmt"

	"github.com/gowtham152/optimization-galaxy/matching"
)

func ExampleMaximum() {
	in := matching.LoadBytes([]byte(`{"left_nodes": [0, 1], "right_nodes": [2, 3], "edges": [[0, 2], [0, 3], [1, 2]]}`))

	fmt.Println(matching.Greedy(in).Matching)
	fmt.Println(matching.Maximum(in).Matching)
	// Output:
	// [{0 2}]
	// [{0 3} {1 2}]
}
