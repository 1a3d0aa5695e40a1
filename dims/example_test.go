package dims_test

import (
	"fmt"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/nested"
)

// ExampleTensorPermutation shows the vectorization correction on a
// super-operator acting on a qubit ⊗ qutrit system.
func ExampleTensorPermutation() {
	d := dims.MustParse("[[[2], [3]], [[2], [3]]]")

	perm, err := dims.TensorPermutation(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	shape, _ := dims.TensorShape(d)

	fmt.Println(dims.Type(d))
	fmt.Println(perm)
	fmt.Println(shape)
	// Output:
	// super
	// [1 0 3 2]
	// [3 2 3 2]
}

// ExampleClassify contrasts strict and relaxed square checks.
func ExampleClassify() {
	d := dims.New(dims.Flat(2), dims.Flat(3))
	fmt.Println(dims.Classify(d, true), dims.Classify(d, false))
	// Output: other oper
}

// ExampleProjectIndices maps nested subsystem indices to tensor axes.
func ExampleProjectIndices() {
	d := dims.MustParse("[[[2], [3]], [[2], [3]]]")
	idx, _ := nested.Parse[int]("[0, [1, 2]]")

	axes, err := dims.ProjectIndices(d, idx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(axes)
	// Output: [1, [0, 3]]
}
