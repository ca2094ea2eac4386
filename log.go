package cryptography

import (
	"github.com/digitalid/cryptography/keys"
	"github.com/digitalid/cryptography/safeprime"
	"github.com/digitalid/cryptography/symmetric"
	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	SetLogger(logrus.StandardLogger())
}

// SetLogger makes all packages of the module log to logger.
func SetLogger(logger *logrus.Logger) {
	Logger = logger
	keys.Logger = logger
	safeprime.Logger = logger
	symmetric.Logger = logger
}
