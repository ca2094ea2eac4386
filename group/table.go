package group

import (
	"github.com/bwesterb/go-exptable"
	"github.com/digitalid/cryptography/big"
)

// tableWindow is the window size of fixed-base tables. Tables only pay off
// when one base is raised to several exponents; a small window keeps the
// precomputation cheap.
const tableWindow = 4

// Table speeds up raising one base to many exponents.
type Table struct {
	base    *Element
	table   exptable.Table
	maxBits int
}

// NewTable precomputes a fixed-base exponentiation table for base.
func NewTable(base *Element) *Table {
	t := &Table{base: base, maxBits: base.group.modulus.BitLen()}
	t.table.Compute(base.value.Go(), base.group.modulus.Go(), tableWindow)
	return t
}

// Base returns the base of t.
func (t *Table) Base() *Element {
	return t.base
}

// Pow returns the base of t raised to x. Exponents at least as wide as the
// modulus are computed without the table.
func (t *Table) Pow(x *Exponent) *Element {
	if x.value.Sign() < 0 {
		panic("group: negative exponent")
	}
	if x.value.Sign() == 0 {
		return t.base.group.One()
	}
	if x.value.BitLen() >= t.maxBits {
		return t.base.Pow(x)
	}
	ret := new(big.Int)
	t.table.Exp(ret.Go(), x.value.Go())
	return t.base.group.Element(ret)
}
