// SPDX-License-Identifier: MIT
package nested_test

import (
	"fmt"
	"strings"
	"testing"

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
		want string
	}{
		{"json flow", "[[2, 3], [2, 3]]", "[[2, 3], [2, 3]]"},
		{"scalar", "4", "4"},
		{"block yaml", "- 1\n- - 2\n  - 3\n", "[1, [2, 3]]"},
		{"empty list", "[]", "[]"},
		{"anchors", "[&a [1, 2], *a]", "[[1, 2], [1, 2]]"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := nested.Parse[int](tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "   ", nested.ErrBadYAML},
		{"mapping", "{a: 1}", nested.ErrBadYAML},
		{"not an int", "[1, x]", nested.ErrBadYAML},
		{"too deep", strings.Repeat("[", nested.MaxDepth+2) + strings.Repeat("]", nested.MaxDepth+2), nested.ErrTooDeep},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := nested.Parse[int](tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// aliasLevels returns a sequence whose last element expands, through
// nested anchors, to fanout^levels leaves.
func aliasLevels(levels, fanout int) string {
	var b strings.Builder
	b.WriteString("[&a0 [" + strings.TrimSuffix(strings.Repeat("1, ", fanout), ", ") + "]")
	for l := 1; l <= levels; l++ {
		ref := fmt.Sprintf("*a%d", l-1)
		refs := strings.TrimSuffix(strings.Repeat(ref+", ", fanout), ", ")
		fmt.Fprintf(&b, ", &a%d [%s]", l, refs)
	}
	b.WriteString("]")

	return b.String()
}

func TestParse_AliasExpansionIsBounded(t *testing.T) {
	t.Parallel()

	small, err := nested.Parse[int](aliasLevels(2, 10))
	require.NoError(t, err)
	assert.Equal(t, 10+100+1000, nested.Count(small))

	for _, levels := range []int{5, 9} {
		_, err := nested.Parse[int](aliasLevels(levels, 10))
		require.Error(t, err, "levels=%d", levels)
		assert.ErrorIs(t, err, nested.ErrTooLarge)
	}
}

// TestMarshalYAML checks that trees encode in flow style and decode back.
func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	tr := N(nested.Of(2, 3), N(L(4)))
	out, err := yaml.Marshal(tr)
	require.NoError(t, err)
	assert.Equal(t, "[[2, 3], [4]]\n", string(out))

	var back nested.Tree[int]
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, nested.Equal(tr, back))
}

func TestMarshalYAML_Embedded(t *testing.T) {
	t.Parallel()

	doc := struct {
		Dims nested.Tree[int] `yaml:"dims"`
	}{Dims: N(nested.Of(4), nested.Of(1))}

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "dims: [[4], [1]]\n", string(out))
}
