// SPDX-License-Identifier: MIT

// Package dims - branch and specification types.
//
// Purpose:
//   - Model a branch as an explicit tagged variant:
//     Branch = Flat([]int) | Nested([][]int) | Irregular(tree).
//   - Provide structural equality that is total and side-effect free.
//
// Notes:
//   - Irregular holds any other nesting (mixed scalars and sequences, or
//     deeper than two levels). It exists so that every decoded input has a
//     representation; the classifier never matches it as flat or nested,
//     which is how such inputs end up as Other.
//   - All constructors copy their arguments; values are immutable.

package dims

import (
	"math"
	"slices"

	"github.com/katalvlaran/qdims/nested"
)

// Form tags the shape of a Branch.
type Form uint8

const (
	// FormFlat is a flat sequence of dimensions, e.g. [2, 3].
	FormFlat Form = iota

	// FormNested is a sequence of flat sequences, e.g. [[2, 3], [2, 3]].
	FormNested

	// FormIrregular is any other nesting.
	FormIrregular
)

// String returns "flat", "nested" or "irregular".
func (f Form) String() string {
	switch f {
	case FormFlat:
		return "flat"
	case FormNested:
		return "nested"
	default:
		return "irregular"
	}
}

// Branch is one side (row or column) of a dims specification.
type Branch struct {
	form   Form
	flat   []int            // FormFlat
	groups [][]int          // FormNested
	tree   nested.Tree[int] // FormIrregular
}

// Flat returns a flat branch with the given dimensions.
func Flat(dims ...int) Branch {
	return Branch{form: FormFlat, flat: slices.Clone(dims)}
}

// Nested returns a nested branch; each group is one flat sequence.
func Nested(groups ...[]int) Branch {
	cp := make([][]int, len(groups))
	for i, g := range groups {
		cp[i] = slices.Clone(g)
	}

	return Branch{form: FormNested, groups: cp}
}

// Irregular returns a branch for a tree that is neither flat nor nested.
// Prefer BranchFromTree, which picks the tightest form automatically.
func Irregular(t nested.Tree[int]) Branch {
	return Branch{form: FormIrregular, tree: t}
}

// BranchFromTree returns the branch matching the shape of t: Flat when all
// children are leaves, Nested when all children are flat lists, Irregular
// otherwise (including a bare leaf).
func BranchFromTree(t nested.Tree[int]) Branch {
	if t.IsLeaf() {
		return Irregular(t)
	}
	children := t.Children()
	if allLeaves(children) {
		return Branch{form: FormFlat, flat: nested.Flatten(t)}
	}
	groups := make([][]int, len(children))
	for i, c := range children {
		if c.IsLeaf() || !allLeaves(c.Children()) {
			return Irregular(t)
		}
		groups[i] = nested.Flatten(c)
	}

	return Branch{form: FormNested, groups: groups}
}

func allLeaves(ts []nested.Tree[int]) bool {
	for _, c := range ts {
		if !c.IsLeaf() {
			return false
		}
	}

	return true
}

// Form returns the branch tag.
func (b Branch) Form() Form { return b.form }

// IsFlat reports whether b is a flat sequence of dimensions.
func (b Branch) IsFlat() bool { return b.form == FormFlat }

// IsNested reports whether b is a sequence of flat sequences.
func (b Branch) IsNested() bool { return b.form == FormNested }

// Groups returns a copy of the sub-sequences of a nested branch
// (nil for other forms).
func (b Branch) Groups() [][]int {
	if b.form != FormNested {
		return nil
	}
	cp := make([][]int, len(b.groups))
	for i, g := range b.groups {
		cp[i] = slices.Clone(g)
	}

	return cp
}

// Flatten returns every dimension of b in depth-first order.
func (b Branch) Flatten() []int {
	switch b.form {
	case FormFlat:
		return slices.Clone(b.flat)
	case FormNested:
		n := 0
		for _, g := range b.groups {
			n += len(g)
		}
		out := make([]int, 0, n)
		for _, g := range b.groups {
			out = append(out, g...)
		}
		return out
	default:
		return nested.Flatten(b.tree)
	}
}

// Product returns the product of all dimensions of b (1 for an empty branch).
// The result wraps on overflow; Validate rejects such branches.
func (b Branch) Product() int {
	p, _ := product(b.Flatten())

	return p
}

// product multiplies ds and reports whether the result fits in an int.
func product(ds []int) (int, bool) {
	p, ok := 1, true
	for _, d := range ds {
		r := p * d
		if d != 0 && (r/d != p || (d == -1 && p == math.MinInt)) {
			ok = false
		}
		p = r
	}

	return p, ok
}

// isUnit reports whether the dimensions of b multiply to exactly 1
// without overflowing.
func (b Branch) isUnit() bool {
	p, ok := product(b.Flatten())

	return ok && p == 1
}

// Tree returns b as a nested.Tree.
func (b Branch) Tree() nested.Tree[int] {
	switch b.form {
	case FormFlat:
		return nested.Of(b.flat...)
	case FormNested:
		children := make([]nested.Tree[int], len(b.groups))
		for i, g := range b.groups {
			children[i] = nested.Of(g...)
		}
		return nested.Node(children...)
	default:
		return b.tree
	}
}

// Equal reports structural equality: same form and same dimensions at
// every position.
func (b Branch) Equal(o Branch) bool {
	if b.form != o.form {
		return false
	}
	switch b.form {
	case FormFlat:
		return slices.Equal(b.flat, o.flat)
	case FormNested:
		return slices.EqualFunc(b.groups, o.groups, func(x, y []int) bool { return slices.Equal(x, y) })
	default:
		return nested.Equal(b.tree, o.tree)
	}
}

// String renders b in bracket notation, e.g. [[2, 3], [2, 3]].
func (b Branch) String() string { return b.Tree().String() }

// Dims is a dims specification: the row (output) and column (input)
// branches of a composite quantum object.
type Dims struct {
	Row Branch
	Col Branch
}

// New returns the specification (row, col).
func New(row, col Branch) Dims {
	return Dims{Row: row, Col: col}
}

// Tree returns d as a two-element nested.Tree: [row, col].
func (d Dims) Tree() nested.Tree[int] {
	return nested.Node(d.Row.Tree(), d.Col.Tree())
}

// Flatten returns every dimension of d, row branch first.
func (d Dims) Flatten() []int {
	return append(d.Row.Flatten(), d.Col.Flatten()...)
}

// Equal reports structural equality of both branches.
func (d Dims) Equal(o Dims) bool {
	return d.Row.Equal(o.Row) && d.Col.Equal(o.Col)
}

// String renders d in bracket notation, e.g. [[2, 3], [1]].
func (d Dims) String() string { return d.Tree().String() }
