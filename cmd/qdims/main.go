// SPDX-License-Identifier: MIT

// Command qdims inspects dims specifications of composite quantum objects:
// their structural kind, tensor permutation and tensor shape, and the
// tensor axes of hierarchical indices.
//
// Usage:
//
//	qdims classify '[[[2], [2]], [[2], [2]]]'
//	qdims perm     '[[[2], [3]], [[2], [3]]]'
//	qdims shape    '[[2, 3], [1]]'
//	qdims project  '[[[2], [3]], [[2], [3]]]' '[0, [1, 2]]'
//	qdims remove   '[[0, 1], [0, 2]]' 0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qdims:", err)
		os.Exit(1)
	}
}
