// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..."; call sites wrap with a
// method tag and callers use errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape is empty or has a dimension <= 0.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch indicates that a shape does not fit the data, e.g.
	// Reshape to a different number of elements.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrOutOfRange indicates an index outside the tensor bounds, or an
	// index with the wrong number of axes.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadPermutation indicates axes that are not a permutation of
	// 0..rank-1.
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")

	// ErrNilTensor indicates a nil *Dense argument.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf wraps err with a method tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("Dense.%s: %w", tag, err)
}
