// SPDX-License-Identifier: MIT

// Package dims - permutation builder and shape/index projection.
//
// Purpose:
//   - Map each hierarchical position of a specification (its index in
//     d.Flatten()) to the axis it occupies in tensor storage.
//   - Derive the tensor shape and translate nested index structures.
//
// Algorithm (TensorPermutation):
//  1. Validate; malformed input fails with ErrMalformedDims.
//  2. Classify with square enforcement off (rectangular is legal here).
//  3. labels := EnumerateFlat(d.Tree()).
//  4. oper/ket/bra: Flatten(labels).
//  5. other: ErrUnsupportedStructure.
//  6. operator-ket, super: reverse the top-level elements of the column
//     labels; operator-bra, super: same for the row labels. Flatten.
//
// Determinism:
//   - Pure function of d; a fresh slice is returned on every call, so
//     callers may cache by Dims.Equal and mutate their copy freely.

package dims

import (
	"fmt"

	"github.com/katalvlaran/qdims/nested"
)

// ---------- error context tags ----------

const (
	ctxPerm    = "TensorPermutation"
	ctxShape   = "TensorShape"
	ctxProject = "ProjectIndices"
	ctxIndex   = "ProjectIndex"
	ctxMatrix  = "MatrixShape"
)

// TensorPermutation returns perm such that perm[i] is the tensor-storage
// position of the i-th dimension of d.Flatten().
//
// Errors:
//   - ErrMalformedDims for empty branches/groups or non-positive dimensions.
//   - ErrUnsupportedStructure when d classifies as Other.
//
// Complexity: O(size of d).
func TensorPermutation(d Dims) ([]int, error) {
	if err := Validate(d); err != nil {
		return nil, dimsErrorf(ctxPerm, err)
	}
	kind := Classify(d, false)
	if kind == Other {
		return nil, fmt.Errorf("%s(%s): %w", ctxPerm, d, ErrUnsupportedStructure)
	}

	labels := nested.EnumerateFlat(d.Tree())
	if !kind.Vectorized() {
		return nested.Flatten(labels), nil
	}

	// Vectorization correction: output and input legs swap places.
	branches := labels.Children()
	row, col := branches[0], branches[1]
	if kind == OperatorKet || kind == Super {
		col = nested.Reverse(col)
	}
	if kind == OperatorBra || kind == Super {
		row = nested.Reverse(row)
	}

	return nested.Flatten(nested.Node(row, col)), nil
}

// TensorShape returns the physical tensor shape of d:
// shape[i] = d.Flatten()[perm[i]].
// Errors: as TensorPermutation.
func TensorShape(d Dims) ([]int, error) {
	perm, err := TensorPermutation(d)
	if err != nil {
		return nil, dimsErrorf(ctxShape, err)
	}
	flat := d.Flatten()
	shape := make([]int, len(perm))
	for i, p := range perm {
		shape[i] = flat[p]
	}

	return shape, nil
}

// ProjectIndices maps hierarchical indices to tensor-storage indices.
// idx may be a single leaf or any nesting of lists and tuples; the result
// has exactly the same structure with each leaf i replaced by perm[i].
//
// Errors: as TensorPermutation, plus ErrIndexOutOfRange for a leaf outside
// [0, len(d.Flatten())). No partial result is returned.
func ProjectIndices(d Dims, idx nested.Tree[int]) (nested.Tree[int], error) {
	perm, err := TensorPermutation(d)
	if err != nil {
		return nested.Tree[int]{}, dimsErrorf(ctxProject, err)
	}
	out, err := nested.DeepMapErr(idx, lookup(perm))
	if err != nil {
		return nested.Tree[int]{}, dimsErrorf(ctxProject, err)
	}

	return out, nil
}

// ProjectIndex is ProjectIndices for a single index.
func ProjectIndex(d Dims, i int) (int, error) {
	perm, err := TensorPermutation(d)
	if err != nil {
		return 0, dimsErrorf(ctxIndex, err)
	}
	j, err := lookup(perm)(i)
	if err != nil {
		return 0, dimsErrorf(ctxIndex, err)
	}

	return j, nil
}

// lookup returns the bounds-checked index function i ↦ perm[i].
func lookup(perm []int) func(int) (int, error) {
	return func(i int) (int, error) {
		if i < 0 || i >= len(perm) {
			return 0, fmt.Errorf("index %d of %d: %w", i, len(perm), ErrIndexOutOfRange)
		}

		return perm[i], nil
	}
}

// MatrixShape returns the two-dimensional storage shape of d: the product
// of the row dimensions by the product of the column dimensions.
// Errors: ErrMalformedDims.
func MatrixShape(d Dims) (rows, cols int, err error) {
	if err = Validate(d); err != nil {
		return 0, 0, dimsErrorf(ctxMatrix, err)
	}

	return d.Row.Product(), d.Col.Product(), nil
}
