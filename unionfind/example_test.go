package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/brickcount/interval"
	"github.com/katalvlaran/brickcount/unionfind"
)

// ExampleBuild builds a 3-cell line grid whose first two cells hold
// overlapping intervals and whose third is disjoint from both: two
// islands result, and the representative of the island containing the
// first cell reports the midpoint of its interval.
func ExampleBuild() {
	v := interval.NewVector(3, 2)
	v.Append(interval.Full(0, 1))
	v.Append(interval.Full(0.5, 1.5))
	v.Append(interval.Full(5, 6))

	uf := unionfind.Build([]int{3}, v)
	fmt.Println(len(uf.Roots()))

	root, ok := uf.GetRootForPosition(unionfind.MixedPosition{Steps: []int{0}, LastAngle: 0.5})
	if ok {
		rep := uf.GetRepresentativeOfUnion(root)
		fmt.Printf("%v %.1f\n", rep.Steps, rep.LastAngle)
	}
	// Output:
	// 2
	// [0] 0.5
}
