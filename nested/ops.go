// SPDX-License-Identifier: MIT

// Package nested - structure-preserving tree operations.
//
// Determinism:
//   - Every traversal is depth-first, left-to-right; no maps, no randomness.
//   - Inputs are never mutated; results never share storage with inputs.
//
// Complexity quicksheet:
//   - Flatten, EnumerateFlat, Unflatten, DeepMap, Equal, Depth: O(size).
//   - DeepRemove: O(size · len(targets)).

package nested

import "fmt"

// Flatten returns the leaves of t in depth-first, left-to-right order.
// A bare leaf flattens to a one-element slice; an empty node to an empty
// (non-nil) slice. Flatten is idempotent on already-flat input.
//
//	Flatten([[[0], 1], 2]) = [0 1 2]
func Flatten[T any](t Tree[T]) []T {
	out := make([]T, 0, Count(t))

	return appendLeaves(out, t)
}

func appendLeaves[T any](dst []T, t Tree[T]) []T {
	if !t.isNode {
		return append(dst, t.leaf)
	}
	for _, c := range t.children {
		dst = appendLeaves(dst, c)
	}

	return dst
}

// Count returns the number of leaves in t.
func Count[T any](t Tree[T]) int {
	if !t.isNode {
		return 1
	}
	n := 0
	for _, c := range t.children {
		n += Count(c)
	}

	return n
}

// Depth returns the nesting depth of t: 0 for a leaf, 1 + the deepest
// child for a node (an empty node has depth 1).
func Depth[T any](t Tree[T]) int {
	if !t.isNode {
		return 0
	}
	deepest := 0
	for _, c := range t.children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}

// EnumerateFlat returns a tree isomorphic to t (same node kinds) in which
// each leaf is replaced by its zero-based position in Flatten(t).
//
//	EnumerateFlat([[[10], [20, 30]], 40]) = [[[0], [1, 2]], 3]
func EnumerateFlat[T any](t Tree[T]) Tree[int] {
	labels, _ := enumerateFrom(t, 0)

	return labels
}

// enumerateFrom labels the leaves of t starting at next and returns the
// labelled tree along with the next unused label.
func enumerateFrom[T any](t Tree[T], next int) (Tree[int], int) {
	if !t.isNode {
		return Tree[int]{leaf: next}, next + 1
	}
	children := make([]Tree[int], len(t.children))
	for i, c := range t.children {
		children[i], next = enumerateFrom(c, next)
	}

	return node(t.kind, children), next
}

// Unflatten rebuilds the structure of idx with each leaf label i replaced
// by flat[i]. With idx = EnumerateFlat(ref) the result is isomorphic to ref,
// which makes Unflatten the inverse of Flatten:
//
//	Unflatten(Flatten(t), EnumerateFlat(t)) ≡ t
//
// Errors: ErrIndexOutOfRange if a label is outside [0, len(flat)).
// No partial result is returned on error.
func Unflatten[T any](flat []T, idx Tree[int]) (Tree[T], error) {
	out, err := DeepMapErr(idx, func(i int) (T, error) {
		if i < 0 || i >= len(flat) {
			var zero T
			return zero, fmt.Errorf("label %d of %d: %w", i, len(flat), ErrIndexOutOfRange)
		}

		return flat[i], nil
	})
	if err != nil {
		return Tree[T]{}, nestedErrorf(ctxUnflatten, err)
	}

	return out, nil
}

// DeepRemove returns a copy of t with the given scalars removed.
//
// Targets are processed in order. For each target, at the current node:
// if the target is a direct leaf child, its first occurrence is removed and
// the node is not searched further for that target; otherwise the search
// recurses into every child. A leaf t is returned unchanged.
//
//	DeepRemove([[[[0, 1, 2]], [3, 4], [5], [6, 7]]], 0, 5)
//	  = [[[[1, 2]], [3, 4], [], [6, 7]]]
func DeepRemove[T comparable](t Tree[T], targets ...T) Tree[T] {
	if !t.isNode {
		return t
	}
	out := NodeOf(t.kind, t.children...)
	for _, target := range targets {
		out = removeFirst(out, target)
	}

	return out
}

// removeFirst applies a single-target DeepRemove step to t.
func removeFirst[T comparable](t Tree[T], target T) Tree[T] {
	if !t.isNode {
		return t
	}
	// First match at this level wins and stops the descent.
	for i, c := range t.children {
		if !c.isNode && c.leaf == target {
			children := make([]Tree[T], 0, len(t.children)-1)
			children = append(children, t.children[:i]...)
			children = append(children, t.children[i+1:]...)

			return node(t.kind, children)
		}
	}
	children := make([]Tree[T], len(t.children))
	for i, c := range t.children {
		children[i] = removeFirst(c, target)
	}

	return node(t.kind, children)
}

// DeepMap applies fn to every leaf of t and returns the results in a tree
// of the same shape and node kinds.
func DeepMap[T, U any](t Tree[T], fn func(T) U) Tree[U] {
	if !t.isNode {
		return Tree[U]{leaf: fn(t.leaf)}
	}
	children := make([]Tree[U], len(t.children))
	for i, c := range t.children {
		children[i] = DeepMap(c, fn)
	}

	return node(t.kind, children)
}

// DeepMapErr is DeepMap for fallible functions. It stops at the first leaf
// for which fn fails and returns that error with no partial tree.
func DeepMapErr[T, U any](t Tree[T], fn func(T) (U, error)) (Tree[U], error) {
	out, err := deepMapErr(t, fn)
	if err != nil {
		return Tree[U]{}, nestedErrorf(ctxDeepMapErr, err)
	}

	return out, nil
}

func deepMapErr[T, U any](t Tree[T], fn func(T) (U, error)) (Tree[U], error) {
	if !t.isNode {
		v, err := fn(t.leaf)
		if err != nil {
			return Tree[U]{}, err
		}

		return Tree[U]{leaf: v}, nil
	}
	children := make([]Tree[U], len(t.children))
	for i, c := range t.children {
		mapped, err := deepMapErr(c, fn)
		if err != nil {
			return Tree[U]{}, err
		}
		children[i] = mapped
	}

	return node(t.kind, children), nil
}

// Reverse returns a copy of t with the order of its direct children
// reversed. Deeper levels are left as they are; a leaf is returned as is.
func Reverse[T any](t Tree[T]) Tree[T] {
	if !t.isNode {
		return t
	}
	n := len(t.children)
	children := make([]Tree[T], n)
	for i, c := range t.children {
		children[n-1-i] = c
	}

	return node(t.kind, children)
}

// Equal reports whether a and b have the same shape, node kinds and leaves.
// Total and side-effect free.
func Equal[T comparable](a, b Tree[T]) bool {
	if a.isNode != b.isNode {
		return false
	}
	if !a.isNode {
		return a.leaf == b.leaf
	}
	if a.kind != b.kind || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}

	return true
}
