package symmetric

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/go-errors/errors"
)

// Known answers from FIPS-197, appendix C.
var knownAnswers = []struct {
	key, ciphertext string
}{
	{"000102030405060708090a0b0c0d0e0f", "69c4e0d86a7b0430d8cdb78070b4c55a"},
	{"000102030405060708090a0b0c0d0e0f1011121314151617", "dda97ca4864cdfe06eaf70a0ec0d7191"},
	{"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "8ea2b7ca516745bfeafc49904b496089"},
}

const knownPlaintext = "00112233445566778899aabbccddeeff"

var (
	environment    sync.Once
	environmentErr error
)

// CheckEnvironment verifies that AES works for all key lengths, including the
// 192 bits used by default. The check runs once per process; later calls
// return the result of the first.
func CheckEnvironment() error {
	environment.Do(func() {
		environmentErr = checkAES()
		if environmentErr != nil {
			Logger.WithError(environmentErr).Error("AES is not usable")
		}
	})
	return environmentErr
}

// ensureEnvironment panics if CheckEnvironment fails: keys must not be used
// in an environment that cannot provide the promised key lengths.
func ensureEnvironment() {
	if err := CheckEnvironment(); err != nil {
		panic(err)
	}
}

func checkAES() error {
	plaintext, _ := hex.DecodeString(knownPlaintext)
	for _, ka := range knownAnswers {
		key, _ := hex.DecodeString(ka.key)
		expected, _ := hex.DecodeString(ka.ciphertext)

		block, err := aes.NewCipher(key)
		if err != nil {
			return errors.WrapPrefix(err, fmt.Sprintf("AES rejects %d-bit keys", len(key)*8), 0)
		}
		out := make([]byte, aes.BlockSize)
		block.Encrypt(out, plaintext)
		if !bytes.Equal(out, expected) {
			return errors.Errorf("AES-%d does not match the FIPS-197 test vector", len(key)*8)
		}
		block.Decrypt(out, out)
		if !bytes.Equal(out, plaintext) {
			return errors.Errorf("AES-%d decryption does not invert encryption", len(key)*8)
		}
	}
	return nil
}
