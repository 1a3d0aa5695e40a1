// SPDX-License-Identifier: MIT
// Package nested: sentinel error set.
// All functions return these sentinels (possibly wrapped with a call-site
// tag); callers match them via errors.Is.

package nested

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates that a label in an index tree does not
	// address any element of the flat sequence (Unflatten) or that a child
	// position is outside a node (Child).
	ErrIndexOutOfRange = errors.New("nested: index out of range")

	// ErrNotLeaf is returned by Value when the tree is a node.
	ErrNotLeaf = errors.New("nested: tree is not a leaf")

	// ErrNotNode is returned by Child when the tree is a leaf.
	ErrNotNode = errors.New("nested: tree is not a node")

	// ErrTooDeep signals nesting beyond MaxDepth while decoding.
	ErrTooDeep = errors.New("nested: nesting exceeds maximum depth")

	// ErrTooLarge signals a decoded tree with more than MaxNodes elements.
	ErrTooLarge = errors.New("nested: tree exceeds maximum size")

	// ErrBadYAML signals input that is not a sequence/scalar document.
	ErrBadYAML = errors.New("nested: malformed tree document")
)

// nestedErrorf tags err with the public function it surfaced from.
func nestedErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
