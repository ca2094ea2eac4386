package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	p, err := Profile(ProfileTesting)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, uint(128), p.Factor)
	assert.Equal(t, uint(128), p.VerifiableEncryption)
	assert.Equal(t, 24, p.EncryptionKeyBytes())
	assert.False(t, p.IsProduction())

	p, err = Profile(ProfileProduction)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, uint(1024), p.Factor)
	assert.True(t, p.IsProduction())

	assert.Equal(t, Production, *Default())

	_, err = Profile("insecure")
	require.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProfileCopies(t *testing.T) {
	p, err := Profile(ProfileTesting)
	require.NoError(t, err)
	p.Factor = 1
	assert.Equal(t, uint(128), Testing.Factor, "Profile returned shared state")
}

func TestValidate(t *testing.T) {
	p := Testing
	p.Hash = 512
	assert.Error(t, p.Validate())

	p = Testing
	p.EncryptionKey = 160
	assert.Error(t, p.Validate())

	p = Testing
	p.Factor = 8
	assert.Error(t, p.Validate())

	p = Testing
	p.BlindingExponent = 0
	assert.Error(t, p.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("profile = \"testing\"\nfactor = 256\n"), 0600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint(256), p.Factor)
	assert.Equal(t, Testing.VerifiableEncryption, p.VerifiableEncryption)
	assert.Equal(t, Testing.EncryptionKey, p.EncryptionKey)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: testing\nencryption_key: 100\n"), 0600))
	_, err := Load(path)
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("DIGITALID_PROFILE", "testing")
	t.Setenv("DIGITALID_VERIFIABLE_ENCRYPTION", "192")

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Testing.Factor, p.Factor)
	assert.Equal(t, uint(192), p.VerifiableEncryption)
}
