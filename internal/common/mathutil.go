// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/rand"

	"github.com/digitalid/cryptography/big"
	"lukechampine.com/frand"
)

// Some utility code (mostly math stuff) useful in various places in this
// module.

var bigONE = big.NewInt(1)

// ModInverse returns ia, the inverse of a modulo n. The second return value
// is false if a and n are not coprime.
// This function was taken from Go's RSA implementation
func ModInverse(a, n *big.Int) (ia *big.Int, ok bool) {
	g := new(big.Int)
	x := new(big.Int)
	y := new(big.Int)
	g.GCD(x, y, a, n)
	if g.Cmp(bigONE) != 0 {
		// In this case, a and n aren't coprime and we cannot calculate
		// the inverse. This happens because the values of n are nearly
		// prime (being the product of two primes) rather than truly
		// prime.
		return
	}

	if x.Cmp(bigONE) < 0 {
		// 0 is not the multiplicative inverse of any element so, if x
		// < 1, then x is negative.
		x.Add(x, n)
	}

	return x, true
}

// IsCoprime reports whether gcd(a, n) == 1.
func IsCoprime(a, n *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, n).Cmp(bigONE) == 0
}

// RandomBigInt returns a random big integer value in the range
// [0,(2^numBits)-1], inclusive.
func RandomBigInt(numBits uint) (*big.Int, error) {
	t := new(big.Int).Lsh(bigONE, numBits)
	return big.RandInt(rand.Reader, t)
}

// RandomUnit returns a uniformly chosen element of (Z/nZ)*.
func RandomUnit(n *big.Int) *big.Int {
	for {
		r := big.Convert(frand.BigIntn(n.Go()))
		if r.Sign() > 0 && IsCoprime(r, n) {
			return r
		}
	}
}

// RandomQR returns a random quadratic residue modulo n that is a unit.
func RandomQR(n *big.Int) *big.Int {
	r := RandomUnit(n)
	return r.Mul(r, r).Mod(r, n)
}

// Crt finds a number x (mod pa*pb) such that x = a (mod pa) and x = b (mod pb)
func Crt(a *big.Int, pa *big.Int, b *big.Int, pb *big.Int) *big.Int {
	s1 := new(big.Int)
	s2 := new(big.Int)
	z := new(big.Int).GCD(s2, s1, pa, pb)
	if z.Cmp(bigONE) != 0 {
		panic("Incorrect input to CRT")
	}
	result := new(big.Int).Add(
		new(big.Int).Mul(new(big.Int).Mul(a, s1), pb),
		new(big.Int).Mul(new(big.Int).Mul(b, s2), pa))

	n := new(big.Int).Mul(pa, pb)
	result.Mod(result, n)
	return result
}
