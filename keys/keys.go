// Package keys contains the key pairs of the identity protocol.
//
// A public key consists of a composite group of unknown order with the bases
// ab, au, ai, av and ao, a non-interactive proof that au, ai, av and ao lie in
// the subgroup generated by ab, and a square group with the values g, y and
// zPlus1 for verifiable encryption. Public keys can only be obtained from
// NewPublicKey (or the functions decoding one), which verify the proof.
package keys

import (
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.StandardLogger()

var (
	// ErrInvalidSubgroupProof is returned for public keys whose subgroup proof
	// does not verify.
	ErrInvalidSubgroupProof = errors.New("subgroup proof of public key does not verify")
	// ErrInvalidEncoding is returned for key data that is incomplete or out of
	// range.
	ErrInvalidEncoding = errors.New("invalid key encoding")
	// ErrInvalidCiphertext is returned when a verifiable encryption cannot be
	// decrypted.
	ErrInvalidCiphertext = errors.New("invalid verifiable encryption")
)

// XMLHeader is written before XML-encoded keys.
const XMLHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n"

func invalidEncoding(format string, a ...interface{}) error {
	return errors.Errorf("%w: "+format, append([]interface{}{ErrInvalidEncoding}, a...)...)
}
