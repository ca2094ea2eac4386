// Command digitalid-keytool generates and verifies key pairs and encrypts
// files with symmetric keys.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.version=`git describe --tags` -X main.gitCommit=`git rev-parse HEAD`"
var (
	version   = "dev"
	gitCommit = "none"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "read parameters from this config file (toml, yaml or json)",
	EnvVars: []string{"DIGITALID_CONFIG"},
}

var profileFlag = &cli.StringFlag{
	Name:  "profile",
	Usage: "parameter profile, production or testing; overrides the config file",
}

// No short alias: -v belongs to the built-in version flag.
var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "log debug output",
}

var outFlag = &cli.StringFlag{
	Name:    "out",
	Aliases: []string{"o"},
	Usage:   "write output to this file",
}

var forceFlag = &cli.BoolFlag{
	Name:  "force",
	Usage: "overwrite existing files",
}

var cborFlag = &cli.BoolFlag{
	Name:  "cbor",
	Usage: "use the binary CBOR encoding instead of XML",
}

var keyFlag = &cli.StringFlag{
	Name:     "key",
	Aliases:  []string{"k"},
	Usage:    "symmetric key value (decimal)",
	Required: true,
	EnvVars:  []string{"DIGITALID_SYMMETRIC_KEY"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "digitalid-keytool",
		Version: fmt.Sprintf("%s (commit %s)", version, gitCommit),
		Usage:   "manage Digital ID key pairs and symmetric keys",
		Flags:   []cli.Flag{configFlag, profileFlag, verboseFlag},
		Before: func(c *cli.Context) error {
			if c.Bool(verboseFlag.Name) {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "generate a key pair",
				ArgsUsage: "<directory>",
				Flags:     []cli.Flag{forceFlag, cborFlag},
				Action:    generate,
			},
			{
				Name:      "verify",
				Usage:     "verify the subgroup proof of a public key",
				ArgsUsage: "<public key file>",
				Flags:     []cli.Flag{cborFlag},
				Action:    verify,
			},
			{
				Name:  "symmetric",
				Usage: "symmetric encryption with AES-CBC",
				Subcommands: []*cli.Command{
					{
						Name:   "keygen",
						Usage:  "print a random symmetric key value",
						Action: keygen,
					},
					{
						Name:      "encrypt",
						Usage:     "encrypt a file; the output starts with the initialization vector",
						ArgsUsage: "<file>",
						Flags:     []cli.Flag{keyFlag, outFlag},
						Action:    encrypt,
					},
					{
						Name:      "decrypt",
						Usage:     "decrypt a file written by encrypt",
						ArgsUsage: "<file>",
						Flags:     []cli.Flag{keyFlag, outFlag},
						Action:    decrypt,
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("digitalid-keytool failed")
	}
}
