// SPDX-License-Identifier: MIT

// Package tensor - conversions between matrix storage and the physical
// tensor layout of a dims specification.
//
// A quantum object with dims d is stored as a rows×cols matrix where
// rows, cols = dims.MatrixShape(d). Reshaping that buffer to
// dims.TensorShape(d) exposes one axis per subsystem; the axis holding
// hierarchical position i is dims.ProjectIndex(d, i).

package tensor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qdims/dims"
)

const (
	ctxFromMatrix = "FromMatrix"
	ctxToMatrix   = "ToMatrix"
	ctxInverse    = "InversePermutation"
)

// ValidatePermutation checks that axes is a permutation of 0..n-1.
// Errors: ErrBadPermutation. Complexity: O(n).
func ValidatePermutation(axes []int, n int) error {
	if len(axes) != n {
		return fmt.Errorf("%d axes for rank %d: %w", len(axes), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, a := range axes {
		if a < 0 || a >= n || seen[a] {
			return fmt.Errorf("axes %v: %w", axes, ErrBadPermutation)
		}
		seen[a] = true
	}

	return nil
}

// InversePermutation returns q with q[p[i]] = i, so that permuting by p and
// then by q restores the original axis order.
// Errors: ErrBadPermutation.
func InversePermutation(p []int) ([]int, error) {
	if err := ValidatePermutation(p, len(p)); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxInverse, err)
	}
	q := make([]int, len(p))
	for i, a := range p {
		q[a] = i
	}

	return q, nil
}

// FromMatrix reshapes a rows×cols matrix with dims d into the physical
// tensor shape dims.TensorShape(d). m is not modified.
//
// Errors:
//   - ErrNilTensor for a nil m.
//   - dims errors (ErrMalformedDims, ErrUnsupportedStructure) unchanged.
//   - ErrShapeMismatch when m is not a matrix of shape MatrixShape(d).
func FromMatrix(d dims.Dims, m *Dense) (*Dense, error) {
	if m == nil {
		return nil, tensorErrorf(ctxFromMatrix, ErrNilTensor)
	}
	rows, cols, err := dims.MatrixShape(d)
	if err != nil {
		return nil, tensorErrorf(ctxFromMatrix, err)
	}
	if !slices.Equal(m.shape, []int{rows, cols}) {
		return nil, tensorErrorf(ctxFromMatrix,
			fmt.Errorf("matrix %v for dims %s: %w", m.shape, d, ErrShapeMismatch))
	}
	shape, err := dims.TensorShape(d)
	if err != nil {
		return nil, tensorErrorf(ctxFromMatrix, err)
	}

	return m.Reshape(shape...)
}

// ToMatrix is the inverse of FromMatrix: t must have shape
// dims.TensorShape(d); the result has shape dims.MatrixShape(d).
func ToMatrix(d dims.Dims, t *Dense) (*Dense, error) {
	if t == nil {
		return nil, tensorErrorf(ctxToMatrix, ErrNilTensor)
	}
	shape, err := dims.TensorShape(d)
	if err != nil {
		return nil, tensorErrorf(ctxToMatrix, err)
	}
	if !slices.Equal(t.shape, shape) {
		return nil, tensorErrorf(ctxToMatrix,
			fmt.Errorf("tensor %v for dims %s: %w", t.shape, d, ErrShapeMismatch))
	}
	rows, cols, err := dims.MatrixShape(d)
	if err != nil {
		return nil, tensorErrorf(ctxToMatrix, err)
	}

	return t.Reshape(rows, cols)
}
