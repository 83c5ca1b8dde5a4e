package seqgen_test

import (
	"fmt"

	"github.com/katalvlaran/combi/seqgen"
)

// ExampleGenerateByIndex builds the first five squares.
func ExampleGenerateByIndex() {
	fmt.Println(seqgen.GenerateByIndex(func(i int) int { return i * i }, 5))
	// Output:
	// [0 1 4 9 16]
}

// ExampleRepeat concatenates three copies of a slice.
func ExampleRepeat() {
	fmt.Println(seqgen.Repeat(3, []int{1, 2}))
	// Output:
	// [1 2 1 2 1 2]
}

// ExampleFillLeft pads a number's digits up to a fixed width.
func ExampleFillLeft() {
	fmt.Println(seqgen.FillLeft(0, 6, []int{1, 2, 3, 4}))
	fmt.Println(seqgen.FillRight(0, 6, []int{1, 2, 3, 4}))
	// Output:
	// [0 0 1 2 3 4]
	// [1 2 3 4 0 0]
}

// ExampleInfixes slides a length-3 window over six values.
func ExampleInfixes() {
	windows, err := seqgen.Infixes(3, []int{1, 2, 3, 4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(windows)
	// Output:
	// [[1 2 3] [2 3 4] [3 4 5] [4 5 6]]
}
