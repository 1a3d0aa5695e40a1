// SPDX-License-Identifier: MIT

// Package nested - YAML (and therefore JSON flow) encoding of trees.
//
// Sequences become List nodes and scalars become leaves decoded into T.
// Mappings are rejected. Tuple nodes are emitted as sequences, so a
// round-trip through YAML turns tuples into lists.

package nested

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for yaml.v3 conformance.
var (
	_ yaml.Unmarshaler = (*Tree[int])(nil)
	_ yaml.Marshaler   = Tree[int]{}
)

// Parse decodes a tree from YAML or JSON text, e.g. "[[2, 3], [2, 3]]".
// Errors: ErrBadYAML for empty or non-tree input, ErrTooDeep beyond MaxDepth,
// ErrTooLarge beyond MaxNodes (counted after alias expansion).
func Parse[T any](s string) (Tree[T], error) {
	if strings.TrimSpace(s) == "" {
		return Tree[T]{}, nestedErrorf(ctxParse, ErrBadYAML)
	}
	var t Tree[T]
	if err := yaml.Unmarshal([]byte(s), &t); err != nil {
		return Tree[T]{}, nestedErrorf(ctxParse, err)
	}

	return t, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tree[T]) UnmarshalYAML(n *yaml.Node) error {
	var dec decoder[T]
	out, err := dec.decode(n, 0)
	if err != nil {
		return nestedErrorf(ctxDecode, err)
	}
	*t = out

	return nil
}

// decoder converts a yaml.Node into a Tree. Aliases are expanded in place,
// so both the nesting depth (MaxDepth) and the number of produced leaves
// and nodes (MaxNodes) are bounded.
type decoder[T any] struct {
	produced int
}

func (dec *decoder[T]) decode(n *yaml.Node, depth int) (Tree[T], error) {
	if depth > MaxDepth {
		return Tree[T]{}, ErrTooDeep
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return Tree[T]{}, ErrBadYAML
		}
		return dec.decode(n.Content[0], depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return Tree[T]{}, ErrBadYAML
		}
		return dec.decode(n.Alias, depth+1)
	}

	dec.produced++
	if dec.produced > MaxNodes {
		return Tree[T]{}, fmt.Errorf("line %d: more than %d elements: %w", n.Line, MaxNodes, ErrTooLarge)
	}
	switch n.Kind {
	case yaml.SequenceNode:
		children := make([]Tree[T], len(n.Content))
		for i, c := range n.Content {
			child, err := dec.decode(c, depth+1)
			if err != nil {
				return Tree[T]{}, err
			}
			children[i] = child
		}
		return node(List, children), nil
	case yaml.ScalarNode:
		var v T
		if err := n.Decode(&v); err != nil {
			return Tree[T]{}, fmt.Errorf("line %d: %w: %w", n.Line, ErrBadYAML, err)
		}
		return Tree[T]{leaf: v}, nil
	default:
		return Tree[T]{}, fmt.Errorf("line %d: %w", n.Line, ErrBadYAML)
	}
}

// MarshalYAML implements yaml.Marshaler. Nodes are emitted in flow style
// so that small trees stay on one line: [[2, 3], [2, 3]].
func (t Tree[T]) MarshalYAML() (any, error) {
	return t.encodeNode()
}

func (t Tree[T]) encodeNode() (*yaml.Node, error) {
	if !t.isNode {
		n := &yaml.Node{}
		if err := n.Encode(t.leaf); err != nil {
			return nil, err
		}
		return n, nil
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, c := range t.children {
		cn, err := c.encodeNode()
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, cn)
	}

	return seq, nil
}
