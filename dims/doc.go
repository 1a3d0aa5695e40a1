// Package dims classifies dims specifications of composite quantum objects
// and computes the index permutation between their hierarchical form and
// the flat, row-major tensor layout used for storage.
//
// A dims specification is a pair (Row, Col) of branches. Each branch is
// either Flat, a sequence of subsystem dimensions such as [2, 3], or Nested,
// a pair of such sequences holding the output and input spaces of a
// vectorized operator, such as [[2, 3], [2, 3]]:
//
//	ket          [[2, 3], [1]]
//	bra          [[1], [2, 3]]
//	oper         [[2, 3], [2, 3]]
//	operator-ket [[[2], [2]], [1]]
//	operator-bra [[1], [[2], [2]]]
//	super        [[[2], [2]], [[2], [2]]]
//
// Vectorized operators store their output and input legs in reversed
// relative order, so for operator-ket, operator-bra and super kinds the
// permutation reverses the sub-sequences of the operator-like branch.
//
// Entry points:
//
//	Classify(d, enforceSquare) Kind
//	TensorPermutation(d)       []int
//	TensorShape(d)             []int
//	ProjectIndices(d, idx)     nested.Tree[int]
//
// Everything here is pure: no I/O, no global state, inputs never mutated.
// Failures are the sentinels ErrUnsupportedStructure, ErrIndexOutOfRange
// and ErrMalformedDims, matched with errors.Is.
package dims
