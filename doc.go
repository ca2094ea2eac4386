// Package cryptography implements the group arithmetic, verifiable key pairs
// and symmetric encryption of the Digital ID protocol.
//
// The work is done by the subpackages: group for arithmetic modulo
// composites, hashgen for Fiat-Shamir challenges, keys for key pairs with a
// subgroup proof and verifiable encryption, symmetric for AES keys and params
// for the bit lengths. This package wires them together: Init must be called
// once before keys are used, and SetLogger sets the logger of all
// subpackages.
package cryptography
