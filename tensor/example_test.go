package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/tensor"
)

// ExampleFromMatrix reshapes a two-qubit super-operator into its tensor.
func ExampleFromMatrix() {
	d := dims.MustParse("[[[2], [2]], [[2], [2]]]")
	m, _ := tensor.New(4, 4)

	t, err := tensor.FromMatrix(d, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t.Shape())
	// Output: [2 2 2 2]
}

// ExampleDense_Permute transposes a 2×3 matrix.
func ExampleDense_Permute() {
	m, _ := tensor.FromData([]complex128{1, 2, 3, 4, 5, 6}, 2, 3)
	t, _ := m.Permute(1, 0)
	fmt.Println(t)
	// Output: Dense[3 2]{(1+0i), (4+0i), (2+0i), (5+0i), (3+0i), (6+0i)}
}
