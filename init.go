package cryptography

import (
	"github.com/digitalid/cryptography/keys"
	"github.com/digitalid/cryptography/params"
	"github.com/digitalid/cryptography/symmetric"

	"github.com/go-errors/errors"
)

// Init checks that p is usable and that the environment supports symmetric
// encryption. It must succeed before any keys are created; the environment
// is checked only once per process.
func Init(p *params.Parameters) error {
	if err := p.Validate(); err != nil {
		return errors.WrapPrefix(err, "invalid parameters", 0)
	}
	if !p.IsProduction() {
		Logger.Warnf("using %d-bit factors, which is insecure outside of tests", p.Factor)
	}
	if err := symmetric.CheckEnvironment(); err != nil {
		return errors.WrapPrefix(err, "environment does not support symmetric encryption", 0)
	}
	Logger.Debug("cryptography initialized")
	return nil
}

// GenerateKeyPair initializes the module with p and generates a key pair.
func GenerateKeyPair(p *params.Parameters) (*keys.KeyPair, error) {
	if err := Init(p); err != nil {
		return nil, err
	}
	return keys.GenerateKeyPair(p)
}
