// SPDX-License-Identifier: MIT

// Package dims - structural classifier.
//
// Rules, first match wins:
//
//	bra          prod(row) == 1  and col is flat
//	ket          prod(col) == 1  and row is flat
//	operator-bra prod(row) == 1  and col is nested
//	operator-ket prod(col) == 1  and row is nested
//	oper         row is flat     and (row == col or !enforceSquare)
//	super        row is nested   and (row == col or !enforceSquare)
//	other        otherwise
//
// The vector-like rules run before oper/super, so an operator whose row or
// column dimensions multiply to 1 (e.g. [[1], [1]]) classifies as bra. That
// ordering is kept on purpose; callers that care must check it themselves.

package dims

// Classify returns the structural kind of d.
//
// With enforceSquare=false the oper and super rules accept rectangular
// specifications, which is what TensorPermutation needs. Classify is total:
// it never fails and never mutates d.
// Complexity: O(size of d).
func Classify(d Dims, enforceSquare bool) Kind {
	rowUnit := d.Row.isUnit()
	colUnit := d.Col.isUnit()
	square := !enforceSquare || d.Row.Equal(d.Col)

	switch {
	case rowUnit && d.Col.IsFlat():
		return Bra
	case colUnit && d.Row.IsFlat():
		return Ket
	case rowUnit && d.Col.IsNested():
		return OperatorBra
	case colUnit && d.Row.IsNested():
		return OperatorKet
	case d.Row.IsFlat() && square:
		return Oper
	case d.Row.IsNested() && square:
		return Super
	default:
		return Other
	}
}

// Type classifies d with square enforcement on; the kind an owning object
// reports for itself.
func Type(d Dims) Kind { return Classify(d, true) }
