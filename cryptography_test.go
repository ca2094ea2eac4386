package cryptography

import (
	"bytes"
	"testing"

	"github.com/digitalid/cryptography/keys"
	"github.com/digitalid/cryptography/params"
	"github.com/digitalid/cryptography/safeprime"
	"github.com/digitalid/cryptography/symmetric"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(logrus.StandardLogger())

	logger := logrus.New()
	SetLogger(logger)
	require.Equal(t, logger, Logger)
	require.Equal(t, logger, keys.Logger)
	require.Equal(t, logger, safeprime.Logger)
	require.Equal(t, logger, symmetric.Logger)
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	SetLogger(logger)
	defer SetLogger(logrus.StandardLogger())

	require.NoError(t, Init(&params.Production))
	require.Zero(t, buf.Len())

	require.NoError(t, Init(&params.Testing))
	require.Contains(t, buf.String(), "insecure")

	p := params.Testing
	p.EncryptionKey = 64
	require.Error(t, Init(&p))
}

func TestGenerateKeyPair(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	SetLogger(logger)
	defer SetLogger(logrus.StandardLogger())

	kp, err := GenerateKeyPair(&params.Testing)
	require.NoError(t, err)
	require.NoError(t, kp.Public.Validate())

	key, err := symmetric.RandomKey(&params.Testing)
	require.NoError(t, err)
	iv := symmetric.NewInitializationVector()
	ciphertext := key.Encrypt(iv, []byte("digital identity"), 0, 16)
	plaintext, err := key.Decrypt(iv, ciphertext, 0, len(ciphertext))
	require.NoError(t, err)
	require.Equal(t, []byte("digital identity"), plaintext)
}
