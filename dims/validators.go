// SPDX-License-Identifier: MIT
// Package: dims
//
// Purpose:
//   - Single source of truth for structural validation of a specification.
//   - Fail fast before any permutation is built, so a malformed input can
//     never yield a permutation of the wrong length.
//
// Note:
//   - Validation order is fixed: Row before Col; emptiness before values.

package dims

import "fmt"

// Validate checks that both branches of d are non-empty, that nested
// groups are non-empty, that every dimension is positive, and that the
// dimensions of each branch multiply to a value that fits in an int.
// Errors: ErrMalformedDims, wrapped with the offending branch.
// Complexity: O(size of d).
func Validate(d Dims) error {
	if err := ValidateBranch(d.Row); err != nil {
		return fmt.Errorf("Validate: row: %w", err)
	}
	if err := ValidateBranch(d.Col); err != nil {
		return fmt.Errorf("Validate: col: %w", err)
	}

	return nil
}

// ValidateBranch checks a single branch; see Validate.
func ValidateBranch(b Branch) error {
	switch b.form {
	case FormFlat:
		if len(b.flat) == 0 {
			return fmt.Errorf("empty branch: %w", ErrMalformedDims)
		}
	case FormNested:
		if len(b.groups) == 0 {
			return fmt.Errorf("empty branch: %w", ErrMalformedDims)
		}
		for i, g := range b.groups {
			if len(g) == 0 {
				return fmt.Errorf("empty group %d: %w", i, ErrMalformedDims)
			}
		}
	default:
		if b.tree.IsLeaf() || b.tree.Len() == 0 {
			return fmt.Errorf("empty branch: %w", ErrMalformedDims)
		}
	}
	flat := b.Flatten()
	for i, d := range flat {
		if d <= 0 {
			return fmt.Errorf("dimension %d is %d: %w", i, d, ErrMalformedDims)
		}
	}
	if _, ok := product(flat); !ok {
		return fmt.Errorf("dimensions %v overflow int: %w", flat, ErrMalformedDims)
	}

	return nil
}
