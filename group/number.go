// Package group implements arithmetic in multiplicative groups of integers
// modulo a composite number.
//
// An Element is an integer bound to a Group and always reduced modulo the
// group's modulus. An Exponent is a plain integer used as the right operand of
// Pow. Both are immutable: every operation returns a new value and accessors
// return copies.
//
// Combining elements of different groups, inverting a non-unit or raising to
// a negative exponent are programming errors and panic.
package group

import (
	"fmt"

	"github.com/digitalid/cryptography/big"
)

// Number holds an immutable arbitrary-precision integer.
type Number struct {
	value *big.Int
}

func newNumber(value *big.Int) Number {
	return Number{value: new(big.Int).Set(value)}
}

// Value returns a copy of the value of n.
func (n Number) Value() *big.Int {
	return new(big.Int).Set(n.value)
}

// BitLen returns the bit length of the value of n.
func (n Number) BitLen() int {
	return n.value.BitLen()
}

// Bytes returns the big-endian representation of the absolute value of n.
func (n Number) Bytes() []byte {
	return n.value.Bytes()
}

// Sign returns -1, 0 or +1 depending on the sign of n.
func (n Number) Sign() int {
	return n.value.Sign()
}

func (n Number) equalValue(m Number) bool {
	return n.value.Cmp(m.value) == 0
}

func (n Number) String() string {
	return fmt.Sprintf("%s [%d bits]", n.value.String(), n.value.BitLen())
}
