// SPDX-License-Identifier: MIT
package tensor_test

import (
	"testing"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMatrix_Super(t *testing.T) {
	t.Parallel()

	d := dims.MustParse("[[[2], [3]], [[2], [3]]]")
	m := ramp(t, 6, 6)

	tt, err := tensor.FromMatrix(d, m)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 3, 2}, tt.Shape())

	// Matrix element (r, c) lands at (r/2, r%2, c/2, c%2).
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			want, err := m.At(r, c)
			require.NoError(t, err)
			got, err := tt.At(r/2, r%2, c/2, c%2)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	// The axis holding hierarchical position 1 (size 3) is axis 0.
	axis, err := dims.ProjectIndex(d, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, tt.Shape()[axis])
}

// TestMatrixRoundTrip checks ToMatrix(d, FromMatrix(d, m)) == m.
func TestMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		dims       string
		rows, cols int
	}{
		{"[[2, 3], [2, 3]]", 6, 6},
		{"[[4], [1]]", 4, 1},
		{"[[1], [2, 2]]", 1, 4},
		{"[[[2], [2]], [1]]", 4, 1},
		{"[[[2, 2], [2, 2]], [[2, 2], [2, 2]]]", 16, 16},
		{"[[2], [3]]", 2, 3},
	} {
		d := dims.MustParse(tc.dims)
		m := ramp(t, tc.rows, tc.cols)

		tt, err := tensor.FromMatrix(d, m)
		require.NoError(t, err, tc.dims)
		shape, err := dims.TensorShape(d)
		require.NoError(t, err, tc.dims)
		assert.Equal(t, shape, tt.Shape(), tc.dims)

		back, err := tensor.ToMatrix(d, tt)
		require.NoError(t, err, tc.dims)
		assert.Equal(t, m.Shape(), back.Shape(), tc.dims)
		assert.Equal(t, m.Data(), back.Data(), tc.dims)
	}
}

func TestLayout_Errors(t *testing.T) {
	t.Parallel()

	oper := dims.MustParse("[[2], [2]]")

	_, err := tensor.FromMatrix(oper, nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.ToMatrix(oper, nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)

	_, err = tensor.FromMatrix(oper, ramp(t, 2, 3))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.FromMatrix(oper, ramp(t, 4))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.ToMatrix(oper, ramp(t, 4))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	irregular := dims.MustParse("[[2, [3]], [6]]")
	_, err = tensor.FromMatrix(irregular, ramp(t, 6, 6))
	assert.ErrorIs(t, err, dims.ErrUnsupportedStructure)
	_, err = tensor.ToMatrix(irregular, ramp(t, 2, 3, 6))
	assert.ErrorIs(t, err, dims.ErrUnsupportedStructure)

	_, err = tensor.FromMatrix(dims.Dims{}, ramp(t, 1, 1))
	assert.ErrorIs(t, err, dims.ErrMalformedDims)
}
