// SPDX-License-Identifier: MIT
package dims_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/nested"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want dims.Dims
	}{
		{"oper", "[[2, 3], [2, 3]]", dims.New(dims.Flat(2, 3), dims.Flat(2, 3))},
		{"ket", "[[4], [1]]", dims.New(dims.Flat(4), dims.Flat(1))},
		{"super", "[[[2], [2]], [[2], [2]]]", dims.New(dims.Nested([]int{2}, []int{2}), dims.Nested([]int{2}, []int{2}))},
		{"block yaml", "- [2]\n- - [2]\n  - [3]\n", dims.New(dims.Flat(2), dims.Nested([]int{2}, []int{3}))},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := dims.Parse(tc.in)
			require.NoError(t, err)
			assert.Truef(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"4",
		"[2, 3]",
		"[[2], [3], [4]]",
		"[[2, 0], [2]]",
		"[[], [2]]",
		"[[[2], []], [1]]",
		"{row: [2], col: [2]}",
		"[[2, x], [2]]",
		"[5, [2]]",
	} {
		_, err := dims.Parse(in)
		assert.ErrorIs(t, err, dims.ErrMalformedDims, "input %q", in)
	}
}

// TestParse_AliasExpansion checks that a short document whose anchors
// expand to millions of dimensions is rejected without expanding it.
func TestParse_AliasExpansion(t *testing.T) {
	t.Parallel()

	ten := func(ref string) string {
		return "[" + strings.TrimSuffix(strings.Repeat(ref+", ", 10), ", ") + "]"
	}
	in := "[[&a " + ten("2") + ", &b " + ten("*a") + ", &c " + ten("*b") +
		", &d " + ten("*c") + ", &e " + ten("*d") + ", &f " + ten("*e") + "], [1]]"

	_, err := dims.Parse(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, dims.ErrMalformedDims)
	assert.ErrorIs(t, err, nested.ErrTooLarge)
}

// TestParse_RoundTrip checks Parse(d.String()) == d.
func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range supported {
		d := dims.MustParse(s)
		back, err := dims.Parse(d.String())
		require.NoError(t, err)
		assert.True(t, d.Equal(back), s)
		assert.Equal(t, s, d.String())
	}
}

func TestFromTree(t *testing.T) {
	t.Parallel()

	tr := nested.Node(nested.Of(2, 3), nested.Of(1))
	d, err := dims.FromTree(tr)
	require.NoError(t, err)
	assert.Equal(t, dims.Ket, dims.Type(d))
	assert.True(t, nested.Equal(tr, d.Tree()))

	_, err = dims.FromTree(nested.Of(2, 3, 4))
	assert.ErrorIs(t, err, dims.ErrMalformedDims)
	_, err = dims.FromTree(nested.Leaf(2))
	assert.ErrorIs(t, err, dims.ErrMalformedDims)
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { dims.MustParse("[[0], [1]]") })
}

// TestYAML_Field checks Dims embedded in a YAML document.
func TestYAML_Field(t *testing.T) {
	t.Parallel()

	type object struct {
		Name string    `yaml:"name"`
		Dims dims.Dims `yaml:"dims"`
	}

	var obj object
	require.NoError(t, yaml.Unmarshal([]byte("name: rho\ndims: [[2, 2], [2, 2]]\n"), &obj))
	assert.Equal(t, "rho", obj.Name)
	assert.Equal(t, dims.Oper, dims.Type(obj.Dims))

	out, err := yaml.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "name: rho\ndims: [[2, 2], [2, 2]]\n", string(out))

	err = yaml.Unmarshal([]byte("dims: [[2, -1], [2]]\n"), &obj)
	assert.ErrorIs(t, err, dims.ErrMalformedDims)
}
