// SPDX-License-Identifier: MIT
package dims_test

import (
	"testing"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/nested"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReaders runs every operation on one shared specification
// from many goroutines; run with -race to check nothing is written.
func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	d := dims.MustParse("[[[2, 3], [2, 3]], [[2, 3], [2, 3]]]")
	idx := nested.Node(nested.Leaf(0), nested.Of(2, 5))
	want := []int{2, 3, 0, 1, 6, 7, 4, 5}

	const workers = 16
	var g errgroup.Group
	perms := make([][]int, workers)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				_ = dims.Classify(d, true)
				if _, err := dims.TensorShape(d); err != nil {
					return err
				}
				if _, err := dims.ProjectIndices(d, idx); err != nil {
					return err
				}
			}
			perm, err := dims.TensorPermutation(d)
			if err != nil {
				return err
			}
			perms[w] = perm

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, p := range perms {
		assert.Equal(t, want, p)
	}
}
