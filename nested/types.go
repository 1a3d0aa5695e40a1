// SPDX-License-Identifier: MIT

// Package nested - Tree type, constructors and accessors.
//
// Purpose:
//   - Model an arbitrarily nested container of scalars as an explicit sum
//     type: Leaf(T) | Node(kind, []Tree[T]).
//   - Keep every value immutable: constructors and accessors copy slices,
//     so no caller can alias (and therefore cycle) the internal storage.
//
// AI-Hints:
//   - Use Of(1, 2, 3) for a flat list of leaves, Node(...) to nest.
//   - The zero Tree is a leaf holding the zero value of T.

package nested

import (
	"fmt"
	"strings"
)

// MaxDepth bounds the nesting accepted by the decoders in this package.
// Trees built through the constructors are acyclic by construction and are
// not subject to this limit.
const MaxDepth = 256

// MaxNodes bounds the number of leaves and nodes a decoder may produce,
// counting every expansion of a YAML alias.
const MaxNodes = 1 << 16

// ---------- error context tags ----------

const (
	ctxValue      = "Value"
	ctxChild      = "Child"
	ctxUnflatten  = "Unflatten"
	ctxDeepMapErr = "DeepMapErr"
	ctxDecode     = "UnmarshalYAML"
	ctxParse      = "Parse"
)

// NodeKind is the concrete container kind of a node.
type NodeKind uint8

const (
	// List is an ordinary ordered sequence; rendered as [a, b].
	List NodeKind = iota

	// Tuple is an ordered sequence that callers want kept distinct from
	// List (e.g. a pair of indices); rendered as (a, b).
	Tuple
)

// String returns "list" or "tuple".
func (k NodeKind) String() string {
	if k == Tuple {
		return "tuple"
	}

	return "list"
}

// Tree is a recursive value: either a leaf holding a T, or a node holding
// an ordered list of sub-trees.
type Tree[T any] struct {
	leaf     T         // payload when !isNode
	children []Tree[T] // sub-trees when isNode (never shared with callers)
	kind     NodeKind  // container kind when isNode
	isNode   bool      // tag: false ⇒ leaf
}

// Leaf returns a tree consisting of the single scalar v.
func Leaf[T any](v T) Tree[T] {
	return Tree[T]{leaf: v}
}

// Node returns a List node holding copies of children.
func Node[T any](children ...Tree[T]) Tree[T] {
	return NodeOf(List, children...)
}

// TupleOf returns a Tuple node holding copies of children.
func TupleOf[T any](children ...Tree[T]) Tree[T] {
	return NodeOf(Tuple, children...)
}

// NodeOf returns a node of the given kind. The children slice is copied.
// Complexity: O(len(children)).
func NodeOf[T any](kind NodeKind, children ...Tree[T]) Tree[T] {
	cp := make([]Tree[T], len(children))
	copy(cp, children)

	return Tree[T]{children: cp, kind: kind, isNode: true}
}

// Of returns a List node whose children are the leaves values, in order.
//
//	nested.Of(2, 3) ≡ nested.Node(nested.Leaf(2), nested.Leaf(3))
func Of[T any](values ...T) Tree[T] {
	children := make([]Tree[T], len(values))
	for i, v := range values {
		children[i] = Tree[T]{leaf: v}
	}

	return Tree[T]{children: children, kind: List, isNode: true}
}

// node builds a node that takes ownership of children (no copy).
// Internal use only: callers must not retain children.
func node[T any](kind NodeKind, children []Tree[T]) Tree[T] {
	return Tree[T]{children: children, kind: kind, isNode: true}
}

// IsLeaf reports whether t is a scalar leaf.
func (t Tree[T]) IsLeaf() bool { return !t.isNode }

// Kind returns the container kind of a node; List for leaves.
func (t Tree[T]) Kind() NodeKind { return t.kind }

// Len returns the number of direct children (0 for a leaf).
func (t Tree[T]) Len() int { return len(t.children) }

// Value returns the scalar held by a leaf, or ErrNotLeaf for a node.
func (t Tree[T]) Value() (T, error) {
	if t.isNode {
		var zero T
		return zero, nestedErrorf(ctxValue, ErrNotLeaf)
	}

	return t.leaf, nil
}

// Child returns the i-th direct child of a node.
// Errors: ErrNotNode for a leaf; ErrIndexOutOfRange when i ∉ [0, Len()).
func (t Tree[T]) Child(i int) (Tree[T], error) {
	if !t.isNode {
		return Tree[T]{}, nestedErrorf(ctxChild, ErrNotNode)
	}
	if i < 0 || i >= len(t.children) {
		return Tree[T]{}, fmt.Errorf("%s(%d): %w", ctxChild, i, ErrIndexOutOfRange)
	}

	return t.children[i], nil
}

// Children returns a copy of the direct children (nil for a leaf).
func (t Tree[T]) Children() []Tree[T] {
	if !t.isNode {
		return nil
	}
	cp := make([]Tree[T], len(t.children))
	copy(cp, t.children)

	return cp
}

// String renders t in bracket notation: leaves with %v, lists as [a, b],
// tuples as (a, b) and one-element tuples as (a,).
func (t Tree[T]) String() string {
	var sb strings.Builder
	t.writeTo(&sb)

	return sb.String()
}

func (t Tree[T]) writeTo(sb *strings.Builder) {
	if !t.isNode {
		fmt.Fprintf(sb, "%v", t.leaf)
		return
	}
	open, closing := "[", "]"
	if t.kind == Tuple {
		open, closing = "(", ")"
	}
	sb.WriteString(open)
	for i, c := range t.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.writeTo(sb)
	}
	if t.kind == Tuple && len(t.children) == 1 {
		sb.WriteString(",")
	}
	sb.WriteString(closing)
}
