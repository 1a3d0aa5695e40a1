// Package qdims classifies the dims specifications of quantum objects and
// maps their hierarchical indices onto a row-major tensor layout.
//
// A dims specification is a pair [row, col] describing how each side of an
// object factors into subsystems:
//
//	[[2, 3], [2, 3]]         oper on a 2×3 composite space
//	[[2, 3], [1]]            ket
//	[[[2], [2]], [1]]        operator-ket (vectorized 2×2 operator)
//	[[[2], [3]], [[2], [3]]] super-operator
//
// Everything is organized under three packages and one command:
//
//	nested/     - generic Tree[T]: flatten, unflatten, enumerate, deep map/remove, YAML
//	dims/       - Dims & Branch, Classify, TensorPermutation, TensorShape, ProjectIndices
//	tensor/     - Dense row-major complex tensors: Reshape, Permute, FromMatrix/ToMatrix
//	cmd/qdims/  - CLI: classify, perm, shape, project, remove
//
// Quick example:
//
//	d := dims.MustParse("[[[2], [3]], [[2], [3]]]")
//	dims.Classify(d, true)      // super
//	dims.TensorPermutation(d)   // [1 0 3 2]
//	dims.TensorShape(d)         // [3 2 3 2]
//
// All functions are pure; values are immutable after construction and safe
// for concurrent use.
//
//	go install github.com/katalvlaran/qdims/cmd/qdims@latest
package qdims
