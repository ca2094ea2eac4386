package params

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding parameters,
// e.g. DIGITALID_PROFILE=testing or DIGITALID_FACTOR=2048.
const EnvPrefix = "DIGITALID"

// fields maps configuration keys to the corresponding fields of p.
func (p *Parameters) fields() map[string]*uint {
	return map[string]*uint{
		"factor":                     &p.Factor,
		"hash":                       &p.Hash,
		"random_exponent":            &p.RandomExponent,
		"credential_exponent":        &p.CredentialExponent,
		"random_credential_exponent": &p.RandomCredentialExponent,
		"blinding_exponent":          &p.BlindingExponent,
		"random_blinding_exponent":   &p.RandomBlindingExponent,
		"verifiable_encryption":      &p.VerifiableEncryption,
		"encryption_key":             &p.EncryptionKey,
	}
}

// Load reads parameters from the config file at path (any format viper
// understands: toml, yaml, json, ...) and from the environment. The "profile"
// key selects the base profile, individual keys override single fields. An
// empty path reads the environment only.
func Load(path string) (*Parameters, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("profile", ProfileProduction)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapPrefix(err, "failed to read parameters from "+path, 0)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Parameters, error) {
	p, err := Profile(strings.ToLower(v.GetString("profile")))
	if err != nil {
		return nil, err
	}
	for key, field := range p.fields() {
		if v.IsSet(key) {
			*field = v.GetUint(key)
		}
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
