// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit offset formula
//     Σ idx[k]·strides[k], strides[last] = 1.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Reshape is O(n) copy, never a view; results own their storage.
//   - Permute follows the TransposeAllAxes convention:
//     out.Shape()[i] == in.Shape()[axes[i]].
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(rank); Clone/Reshape: O(n);
//     Permute: O(n·rank).

package tensor

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromData = "FromData"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxReshape  = "Reshape"
	ctxPermute  = "Permute"
)

// Dense is a concrete row-major tensor of complex128 amplitudes.
//   - shape holds the size of each axis (all > 0).
//   - strides[k] is the flat distance between neighbours along axis k.
//   - data has length Π shape, laid out row-major.
type Dense struct {
	shape   []int
	strides []int
	data    []complex128
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates a zero tensor of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rank>0 and every dimension > 0.
//   - Stage 2: allocate zero-filled buffer and compute strides.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n), n = Π shape.
func New(shape ...int) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(ctxNew, err)
	}

	return &Dense{
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		data:    make([]complex128, n),
	}, nil
}

// FromData creates a tensor of the given shape over a copy of data.
// Errors: ErrBadShape, or ErrShapeMismatch when len(data) != Π shape.
func FromData(data []complex128, shape ...int) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(ctxFromData, err)
	}
	if len(data) != n {
		return nil, tensorErrorf(ctxFromData,
			fmt.Errorf("%d values for shape %v: %w", len(data), shape, ErrShapeMismatch))
	}

	return &Dense{
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		data:    slices.Clone(data),
	}, nil
}

// maxElements bounds Π shape so that the byte size of the buffer fits in
// an int.
const maxElements = math.MaxInt / 16

// volume validates shape and returns the number of elements.
func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			return 0, fmt.Errorf("shape %v: %w", shape, ErrBadShape)
		}
		if n > maxElements/s {
			return 0, fmt.Errorf("shape %v: too many elements: %w", shape, ErrBadShape)
		}
		n *= s
	}

	return n, nil
}

// rowMajorStrides returns strides with the last axis innermost.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}

	return strides
}

// Shape returns a copy of the axis sizes.
func (t *Dense) Shape() []int { return slices.Clone(t.shape) }

// Rank returns the number of axes.
func (t *Dense) Rank() int { return len(t.shape) }

// Len returns the number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Data returns a copy of the row-major buffer.
func (t *Dense) Data() []complex128 { return slices.Clone(t.data) }

// offsetOf bounds-checks idx and computes its flat offset.
// Returns a bare sentinel; public methods wrap it with context.
func (t *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * t.strides[k]
	}

	return off, nil
}

// At returns the element at idx or ErrOutOfRange.
// Never panics on bad indices. Complexity: O(rank).
func (t *Dense) At(idx ...int) (complex128, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		return 0, tensorErrorf(ctxAt, fmt.Errorf("%v: %w", idx, err))
	}

	return t.data[off], nil
}

// Set stores v at idx or returns ErrOutOfRange. Complexity: O(rank).
func (t *Dense) Set(v complex128, idx ...int) error {
	off, err := t.offsetOf(idx)
	if err != nil {
		return tensorErrorf(ctxSet, fmt.Errorf("%v: %w", idx, err))
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy of t.
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape:   slices.Clone(t.shape),
		strides: slices.Clone(t.strides),
		data:    slices.Clone(t.data),
	}
}

// Reshape returns a copy of t with a new shape and the same row-major data.
// Errors: ErrBadShape, or ErrShapeMismatch when the element count differs.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, tensorErrorf(ctxReshape, err)
	}
	if n != len(t.data) {
		return nil, tensorErrorf(ctxReshape,
			fmt.Errorf("%v to %v: %w", t.shape, shape, ErrShapeMismatch))
	}

	return &Dense{
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		data:    slices.Clone(t.data),
	}, nil
}

// Permute returns a copy of t with its axes reordered so that axis i of the
// result is axis axes[i] of t.
// MAIN DESCRIPTION:
//   - General N-d transpose; Permute(1, 0) on a matrix is the transpose.
//
// Implementation:
//   - Stage 1: validate that axes is a permutation of 0..rank-1.
//   - Stage 2: walk the output in row-major order with an odometer,
//     tracking the matching input offset incrementally.
//
// Errors:
//   - ErrBadPermutation (wrong length, repeated or out-of-range axis).
//
// Complexity:
//   - Time O(n·rank) worst case, O(n) amortized; Space O(n).
func (t *Dense) Permute(axes ...int) (*Dense, error) {
	if err := ValidatePermutation(axes, len(t.shape)); err != nil {
		return nil, tensorErrorf(ctxPermute, err)
	}
	rank := len(t.shape)
	shape := make([]int, rank)
	inStrides := make([]int, rank) // input stride for each output axis
	for i, a := range axes {
		shape[i] = t.shape[a]
		inStrides[i] = t.strides[a]
	}

	out := &Dense{
		shape:   shape,
		strides: rowMajorStrides(shape),
		data:    make([]complex128, len(t.data)),
	}
	idx := make([]int, rank)
	src := 0
	for dst := range out.data {
		out.data[dst] = t.data[src]
		// Advance the odometer from the innermost axis.
		for k := rank - 1; k >= 0; k-- {
			idx[k]++
			src += inStrides[k]
			if idx[k] < shape[k] {
				break
			}
			src -= idx[k] * inStrides[k]
			idx[k] = 0
		}
	}

	return out, nil
}

// String renders t as its shape followed by the flat data, e.g.
// "Dense[2 2]{(1+0i), (0+0i), (0+0i), (1+0i)}".
func (t *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense%v{", t.shape)
	for i, v := range t.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("}")

	return b.String()
}
