// SPDX-License-Identifier: MIT
// Package dims: sentinel error set.
// Every exported function returns one of these sentinels wrapped with the
// call-site tag ("TensorPermutation: ..."); match with errors.Is.
//
// ERROR PRIORITY: malformed input is reported before structural support,
// which is reported before index range.

package dims

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedStructure is returned when a specification classifies
	// as Other and a permutation is requested for it. Classify itself never
	// fails.
	ErrUnsupportedStructure = errors.New("dims: unsupported dims structure")

	// ErrIndexOutOfRange indicates a hierarchical index that does not name
	// any leaf of the specification.
	ErrIndexOutOfRange = errors.New("dims: index out of range")

	// ErrUnknownKind is returned by ParseKind for a name that is not one of
	// the Kind strings.
	ErrUnknownKind = errors.New("dims: unknown kind name")

	// ErrMalformedDims indicates structurally invalid input: not a
	// (row, col) pair, an empty branch or group, or a non-positive dimension.
	ErrMalformedDims = errors.New("dims: malformed dims specification")
)

// dimsErrorf wraps err with the public operation it surfaced from.
func dimsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
