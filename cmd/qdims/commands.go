// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/qdims/dims"
	"github.com/katalvlaran/qdims/nested"
	"github.com/spf13/cobra"
)

func (a *app) classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify DIMS",
		Short: "Print the structural kind of a dims specification",
		Long: `Print one of: bra, ket, operator-bra, operator-ket, oper, super, other.

With --enforce-square=false rectangular operators and super-operators are
accepted as oper and super.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dims.Parse(args[0])
			if err != nil {
				return err
			}
			enforce := a.v.GetBool(keyEnforceSquare)
			kind := dims.Classify(d, enforce)
			a.logger.Debug("classified dims",
				slog.String("dims", d.String()),
				slog.String("kind", kind.String()),
				slog.Bool("enforce_square", enforce),
			)

			return a.render(cmd, report{Dims: &d, Kind: kind.String()}, kind.String())
		},
	}
	cmd.Flags().Bool(keyEnforceSquare, true, "require row == col for oper and super")
	_ = a.v.BindPFlag(keyEnforceSquare, cmd.Flags().Lookup(keyEnforceSquare))

	return cmd
}

func (a *app) permCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perm DIMS",
		Short: "Print the tensor permutation of a dims specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dims.Parse(args[0])
			if err != nil {
				return err
			}
			perm, err := dims.TensorPermutation(d)
			if err != nil {
				return err
			}
			a.logger.Debug("built permutation",
				slog.String("dims", d.String()),
				slog.String("kind", dims.Classify(d, false).String()),
				slog.Int("leaves", len(perm)),
			)
			out := nested.Of(perm...)

			return a.render(cmd, report{Dims: &d, Permutation: &out}, out.String())
		},
	}
}

func (a *app) shapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shape DIMS",
		Short: "Print the tensor shape and matrix shape of a dims specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dims.Parse(args[0])
			if err != nil {
				return err
			}
			shape, err := dims.TensorShape(d)
			if err != nil {
				return err
			}
			rows, cols, err := dims.MatrixShape(d)
			if err != nil {
				return err
			}
			a.logger.Debug("computed shape",
				slog.String("dims", d.String()),
				slog.Int("rows", rows),
				slog.Int("cols", cols),
			)
			out := nested.Of(shape...)
			matrix := nested.Of(rows, cols)

			return a.render(cmd, report{Dims: &d, Shape: &out, Matrix: &matrix}, out.String())
		},
	}
}

func (a *app) projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project DIMS INDICES",
		Short: "Map hierarchical indices to tensor axes",
		Long: `Replace every index i in INDICES with the tensor axis holding dimension i
of DIMS. INDICES is a single integer or any nesting of sequences.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dims.Parse(args[0])
			if err != nil {
				return err
			}
			idx, err := nested.Parse[int](args[1])
			if err != nil {
				return fmt.Errorf("indices: %w", err)
			}
			out, err := dims.ProjectIndices(d, idx)
			if err != nil {
				return err
			}
			a.logger.Debug("projected indices",
				slog.String("dims", d.String()),
				slog.String("indices", idx.String()),
				slog.String("axes", out.String()),
			)

			return a.render(cmd, report{Dims: &d, Indices: &idx, Axes: &out}, out.String())
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove TREE TARGET...",
		Short: "Remove scalars from every level of a nested sequence",
		Long: `For each TARGET in order: remove its first occurrence at a level where it
appears directly, otherwise search every sub-sequence.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := nested.Parse[int](args[0])
			if err != nil {
				return err
			}
			targets := make([]int, 0, len(args)-1)
			for _, s := range args[1:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("target %q: %w", s, err)
				}
				targets = append(targets, v)
			}
			out := nested.DeepRemove(tree, targets...)
			a.logger.Debug("removed targets",
				slog.Any("targets", targets),
				slog.Int("before", nested.Count(tree)),
				slog.Int("after", nested.Count(out)),
			)

			return a.render(cmd, report{Tree: &out}, out.String())
		},
	}
}
