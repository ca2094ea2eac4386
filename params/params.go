// Package params holds the bit lengths of the cryptographic quantities.
//
// Two profiles exist: Testing uses 128-bit factors so that key generation in
// unit tests takes milliseconds, Production uses 1024-bit factors. Keys meant
// to protect anything must be generated with Production.
package params

import (
	"github.com/go-errors/errors"
)

// Parameters holds the bit lengths used throughout the module.
type Parameters struct {
	// Factor is the bit length of the prime factors of the composite group.
	Factor uint `mapstructure:"factor"`
	// Hash is the bit length of the hash function and certain random values.
	Hash uint `mapstructure:"hash"`
	// RandomExponent is the bit length of random commitment exponents.
	RandomExponent uint `mapstructure:"random_exponent"`
	// CredentialExponent is the bit length of the credential exponent.
	CredentialExponent uint `mapstructure:"credential_exponent"`
	// RandomCredentialExponent is the bit length of the random credential exponent.
	RandomCredentialExponent uint `mapstructure:"random_credential_exponent"`
	// BlindingExponent is the bit length of the blinding exponent.
	BlindingExponent uint `mapstructure:"blinding_exponent"`
	// RandomBlindingExponent is the bit length of the random blinding exponent.
	RandomBlindingExponent uint `mapstructure:"random_blinding_exponent"`
	// VerifiableEncryption is half the bit length of the verifiable encryption modulus.
	VerifiableEncryption uint `mapstructure:"verifiable_encryption"`
	// EncryptionKey is the bit length of symmetric encryption keys.
	EncryptionKey uint `mapstructure:"encryption_key"`
}

var (
	// Testing has reduced factor sizes for unit tests.
	Testing = Parameters{
		Factor:                   128,
		Hash:                     256,
		RandomExponent:           512,
		CredentialExponent:       512,
		RandomCredentialExponent: 768,
		BlindingExponent:         768,
		RandomBlindingExponent:   1024,
		VerifiableEncryption:     128,
		EncryptionKey:            192,
	}

	// Production is the profile for real keys.
	Production = Parameters{
		Factor:                   1024,
		Hash:                     256,
		RandomExponent:           512,
		CredentialExponent:       512,
		RandomCredentialExponent: 768,
		BlindingExponent:         768,
		RandomBlindingExponent:   1024,
		VerifiableEncryption:     1024,
		EncryptionKey:            192,
	}
)

const (
	ProfileTesting    = "testing"
	ProfileProduction = "production"
)

var ErrUnknownProfile = errors.New("unknown parameter profile")

// Profile returns a copy of the named profile.
func Profile(name string) (*Parameters, error) {
	switch name {
	case ProfileTesting:
		p := Testing
		return &p, nil
	case ProfileProduction, "":
		p := Production
		return &p, nil
	default:
		return nil, errors.Errorf("%s: %w", name, ErrUnknownProfile)
	}
}

// Default returns a copy of the Production profile.
func Default() *Parameters {
	p := Production
	return &p
}

// EncryptionKeyBytes returns the length of symmetric keys in bytes.
func (p *Parameters) EncryptionKeyBytes() int {
	return int(p.EncryptionKey / 8)
}

// Validate checks that the parameters can be used by this module.
func (p *Parameters) Validate() error {
	if p.Hash != 256 {
		return errors.Errorf("hash length must be 256 bits (SHA-256), got %d", p.Hash)
	}
	switch p.EncryptionKey {
	case 128, 192, 256:
	default:
		return errors.Errorf("encryption key length must be 128, 192 or 256 bits, got %d", p.EncryptionKey)
	}
	if p.Factor < 16 {
		return errors.Errorf("factor length %d too small", p.Factor)
	}
	if p.VerifiableEncryption < 16 {
		return errors.Errorf("verifiable encryption length %d too small", p.VerifiableEncryption)
	}
	if p.RandomExponent == 0 || p.CredentialExponent == 0 || p.RandomCredentialExponent == 0 ||
		p.BlindingExponent == 0 || p.RandomBlindingExponent == 0 {
		return errors.New("exponent lengths must be positive")
	}
	return nil
}

// IsProduction reports whether the factor sizes are at least those of the
// Production profile.
func (p *Parameters) IsProduction() bool {
	return p.Factor >= Production.Factor && p.VerifiableEncryption >= Production.VerifiableEncryption
}
