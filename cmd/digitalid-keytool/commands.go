package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/digitalid/cryptography"
	"github.com/digitalid/cryptography/big"
	"github.com/digitalid/cryptography/keys"
	"github.com/digitalid/cryptography/params"
	"github.com/digitalid/cryptography/symmetric"

	"github.com/go-errors/errors"
	"github.com/urfave/cli/v2"
)

const (
	publicKeyName  = "pk"
	privateKeyName = "sk"
)

func parameters(c *cli.Context) (*params.Parameters, error) {
	if c.IsSet(profileFlag.Name) {
		return params.Profile(c.String(profileFlag.Name))
	}
	return params.Load(c.String(configFlag.Name))
}

func generate(c *cli.Context) error {
	p, err := parameters(c)
	if err != nil {
		return err
	}
	dir := c.Args().First()
	if dir == "" {
		dir = "."
	}

	if c.Bool(verboseFlag.Name) {
		keys.Follower = &printFollower{w: c.App.ErrWriter}
		defer func() { keys.Follower = &keys.EmptyFollower{} }()
	}
	kp, err := cryptography.GenerateKeyPair(p)
	if err != nil {
		return err
	}

	force := c.Bool(forceFlag.Name)
	pkfile, skfile := keyFiles(dir, c.Bool(cborFlag.Name))
	if c.Bool(cborFlag.Name) {
		pk, err := kp.Public.MarshalBinary()
		if err != nil {
			return err
		}
		sk, err := kp.Private.MarshalBinary()
		if err != nil {
			return err
		}
		if err = writeFile(pkfile, pk, 0644, force); err != nil {
			return err
		}
		if err = writeFile(skfile, sk, 0600, force); err != nil {
			return err
		}
	} else {
		if _, err = kp.Public.WriteToFile(pkfile, force); err != nil {
			return err
		}
		if _, err = kp.Private.WriteToFile(skfile, force); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.App.Writer, "wrote %s and %s\n", pkfile, skfile)
	return nil
}

// printFollower prints the steps of key generation, one dot per tick.
type printFollower struct {
	w io.Writer
}

func (f *printFollower) StepStart(desc string, _ int) { fmt.Fprintf(f.w, "%s ", desc) }
func (f *printFollower) Tick()                        { fmt.Fprint(f.w, ".") }
func (f *printFollower) StepDone()                    { fmt.Fprintln(f.w, " done") }

func keyFiles(dir string, cbor bool) (string, string) {
	ext := ".xml"
	if cbor {
		ext = ".cbor"
	}
	return filepath.Join(dir, publicKeyName+ext), filepath.Join(dir, privateKeyName+ext)
}

func writeFile(filename string, data []byte, perm os.FileMode, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(filename, flags, perm)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func verify(c *cli.Context) error {
	filename := c.Args().First()
	if filename == "" {
		return errors.New("no public key file given")
	}

	var pk *keys.PublicKey
	var err error
	if c.Bool(cborFlag.Name) {
		var bts []byte
		if bts, err = os.ReadFile(filename); err != nil {
			return err
		}
		pk, err = keys.NewPublicKeyFromBytes(bts)
	} else {
		pk, err = keys.NewPublicKeyFromFile(filename)
	}
	if err != nil {
		return errors.WrapPrefix(err, filename, 0)
	}

	fmt.Fprintf(c.App.Writer, "%s: valid public key with %d-bit composite modulus\n",
		filename, pk.CompositeGroup().Modulus().BitLen())
	return nil
}

func symmetricKey(c *cli.Context) (*symmetric.Key, error) {
	p, err := parameters(c)
	if err != nil {
		return nil, err
	}
	if err = cryptography.Init(p); err != nil {
		return nil, err
	}
	if !c.IsSet(keyFlag.Name) {
		return symmetric.RandomKey(p)
	}
	value, ok := new(big.Int).SetString(c.String(keyFlag.Name), 10)
	if !ok {
		return nil, errors.New("symmetric key is not a decimal integer")
	}
	return symmetric.NewKey(p, value)
}

func keygen(c *cli.Context) error {
	key, err := symmetricKey(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, key.Value().String())
	return nil
}

func readInput(c *cli.Context) ([]byte, error) {
	filename := c.Args().First()
	if filename == "" || filename == "-" {
		return io.ReadAll(c.App.Reader)
	}
	return os.ReadFile(filename)
}

func writeOutput(c *cli.Context, data []byte) error {
	if out := c.String(outFlag.Name); out != "" {
		return writeFile(out, data, 0600, true)
	}
	_, err := c.App.Writer.Write(data)
	return err
}

func encrypt(c *cli.Context) error {
	key, err := symmetricKey(c)
	if err != nil {
		return err
	}
	plaintext, err := readInput(c)
	if err != nil {
		return err
	}
	if len(plaintext) == 0 {
		return errors.New("nothing to encrypt")
	}

	iv := symmetric.NewInitializationVector()
	ciphertext := key.Encrypt(iv, plaintext, 0, len(plaintext))
	return writeOutput(c, append(iv[:], ciphertext...))
}

func decrypt(c *cli.Context) error {
	key, err := symmetricKey(c)
	if err != nil {
		return err
	}
	data, err := readInput(c)
	if err != nil {
		return err
	}
	ivLen := len(symmetric.InitializationVector{})
	if len(data) <= ivLen {
		return symmetric.ErrInvalidEncoding
	}

	iv, err := symmetric.InitializationVectorFromBytes(data[:ivLen])
	if err != nil {
		return err
	}
	plaintext, err := key.Decrypt(iv, data, ivLen, len(data)-ivLen)
	if err != nil {
		return err
	}
	return writeOutput(c, plaintext)
}
