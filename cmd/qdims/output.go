// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/nested"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// report is the --output yaml document; unset fields are omitted.
type report struct {
	Dims        *dims.Dims        `yaml:"dims,omitempty"`
	Kind        string            `yaml:"kind,omitempty"`
	Permutation *nested.Tree[int] `yaml:"permutation,omitempty"`
	Shape       *nested.Tree[int] `yaml:"shape,omitempty"`
	Matrix      *nested.Tree[int] `yaml:"matrix,omitempty"`
	Indices     *nested.Tree[int] `yaml:"indices,omitempty"`
	Axes        *nested.Tree[int] `yaml:"axes,omitempty"`
	Tree        *nested.Tree[int] `yaml:"tree,omitempty"`
}

// render writes r as YAML, or text as a single line.
func (a *app) render(cmd *cobra.Command, r report, text string) error {
	w := cmd.OutOrStdout()
	if a.v.GetString(keyOutput) != outputYAML {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
