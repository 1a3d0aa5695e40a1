// SPDX-License-Identifier: MIT

package dims

import "fmt"

// Kind is the structural kind of a dims specification. It is derived from
// the shape of the specification on demand and never stored.
type Kind uint8

const (
	// Other is any specification no rule matches.
	Other Kind = iota

	// Bra has a unit row branch and a flat column branch.
	Bra

	// Ket has a unit column branch and a flat row branch.
	Ket

	// OperatorBra has a unit row branch and a nested column branch.
	OperatorBra

	// OperatorKet has a unit column branch and a nested row branch.
	OperatorKet

	// Oper has a flat row branch (equal to the column when square).
	Oper

	// Super has a nested row branch (equal to the column when square).
	Super
)

var kindNames = [...]string{
	Other:       "other",
	Bra:         "bra",
	Ket:         "ket",
	OperatorBra: "operator-bra",
	OperatorKet: "operator-ket",
	Oper:        "oper",
	Super:       "super",
}

// String returns the conventional lower-case name, e.g. "operator-ket".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
// Errors: ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}

	return Other, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Vectorized reports whether k describes a vectorized operator, i.e. one
// whose tensor order needs the output/input reversal.
func (k Kind) Vectorized() bool {
	return k == OperatorKet || k == OperatorBra || k == Super
}
