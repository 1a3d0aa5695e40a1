// SPDX-License-Identifier: MIT

// Package dims - conversion from generic trees and YAML/JSON text.
//
// The accepted text is any YAML document whose root is a two-element
// sequence, which includes JSON: "[[2, 3], [2, 3]]", "[[[2], [2]], [1]]".

package dims

import (
	"fmt"

	"github.com/katalvlaran/qdims/nested"
	"gopkg.in/yaml.v3"
)

const (
	ctxFromTree = "FromTree"
	ctxParse    = "Parse"
)

// Compile-time assertions for yaml.v3 conformance.
var (
	_ yaml.Unmarshaler = (*Dims)(nil)
	_ yaml.Marshaler   = Dims{}
)

// FromTree converts a generic tree [row, col] into a Dims, choosing the
// form of each branch with BranchFromTree.
// Errors: ErrMalformedDims when t is not a two-element node.
// The branches themselves are not validated here; see Validate.
func FromTree(t nested.Tree[int]) (Dims, error) {
	if t.IsLeaf() || t.Len() != 2 {
		return Dims{}, fmt.Errorf("%s(%s): want [row, col]: %w", ctxFromTree, t, ErrMalformedDims)
	}
	sides := t.Children()

	return New(BranchFromTree(sides[0]), BranchFromTree(sides[1])), nil
}

// Parse decodes a specification from YAML or JSON text and validates it.
// Errors: ErrMalformedDims for anything that is not a valid specification.
func Parse(s string) (Dims, error) {
	t, err := nested.Parse[int](s)
	if err != nil {
		return Dims{}, fmt.Errorf("%s: %w: %w", ctxParse, ErrMalformedDims, err)
	}
	d, err := FromTree(t)
	if err != nil {
		return Dims{}, dimsErrorf(ctxParse, err)
	}
	if err = Validate(d); err != nil {
		return Dims{}, dimsErrorf(ctxParse, err)
	}

	return d, nil
}

// MustParse is Parse for fixtures and package-level variables; it panics
// on error.
func MustParse(s string) Dims {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// UnmarshalYAML implements yaml.Unmarshaler with the rules of Parse.
func (d *Dims) UnmarshalYAML(n *yaml.Node) error {
	var t nested.Tree[int]
	if err := t.UnmarshalYAML(n); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDims, err)
	}
	out, err := FromTree(t)
	if err != nil {
		return err
	}
	if err = Validate(out); err != nil {
		return err
	}
	*d = out

	return nil
}

// MarshalYAML implements yaml.Marshaler; output is flow style.
func (d Dims) MarshalYAML() (any, error) {
	return d.Tree().MarshalYAML()
}
