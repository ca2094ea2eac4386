package keys

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/digitalid/cryptography/cbor"
	"github.com/digitalid/cryptography/internal/common"
)

type (
	xmlPublicKey struct {
		XMLName xml.Name `xml:"https://digitalid.net/cryptography PublicKey"`
		PublicKeyData
	}

	xmlPrivateKey struct {
		XMLName xml.Name `xml:"https://digitalid.net/cryptography PrivateKey"`
		PrivateKeyData
	}
)

// MarshalBinary encodes pk as a CBOR array in the order of PublicKeyData.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(pk.Data())
}

// NewPublicKeyFromBytes decodes and validates a CBOR-encoded public key.
func NewPublicKeyFromBytes(bts []byte) (*PublicKey, error) {
	var data PublicKeyData
	if err := cbor.Unmarshal(bts, &data); err != nil {
		return nil, invalidEncoding("%v", err)
	}
	return NewPublicKey(data)
}

// NewPublicKeyFromXML decodes and validates an XML-encoded public key.
func NewPublicKeyFromXML(bts []byte) (*PublicKey, error) {
	var x xmlPublicKey
	if err := xml.Unmarshal(bts, &x); err != nil {
		return nil, invalidEncoding("%v", err)
	}
	return NewPublicKey(x.PublicKeyData)
}

// NewPublicKeyFromFile reads a public key from an XML file.
func NewPublicKeyFromFile(filename string) (*PublicKey, error) {
	bts, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyFromXML(bts)
}

// WriteTo writes the XML-serialized public key to the given writer.
func (pk *PublicKey) WriteTo(writer io.Writer) (int64, error) {
	return writeXML(writer, xmlPublicKey{PublicKeyData: pk.Data()})
}

// WriteToFile writes the public key to an XML file. If any existing file with
// the same filename should be overwritten, set forceOverwrite to true.
func (pk *PublicKey) WriteToFile(filename string, forceOverwrite bool) (int64, error) {
	return writeFile(filename, forceOverwrite, 0644, pk.WriteTo)
}

// MarshalBinary encodes sk as a CBOR array in the order of PrivateKeyData.
func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(sk.Data())
}

// NewPrivateKeyFromBytes decodes and validates a CBOR-encoded private key.
func NewPrivateKeyFromBytes(bts []byte) (*PrivateKey, error) {
	var data PrivateKeyData
	if err := cbor.Unmarshal(bts, &data); err != nil {
		return nil, invalidEncoding("%v", err)
	}
	return NewPrivateKey(data)
}

// NewPrivateKeyFromXML decodes and validates an XML-encoded private key.
func NewPrivateKeyFromXML(bts []byte) (*PrivateKey, error) {
	var x xmlPrivateKey
	if err := xml.Unmarshal(bts, &x); err != nil {
		return nil, invalidEncoding("%v", err)
	}
	return NewPrivateKey(x.PrivateKeyData)
}

// NewPrivateKeyFromFile reads a private key from an XML file.
func NewPrivateKeyFromFile(filename string) (*PrivateKey, error) {
	bts, err := readFile(filename)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromXML(bts)
}

// WriteTo writes the XML-serialized private key to the given writer.
func (sk *PrivateKey) WriteTo(writer io.Writer) (int64, error) {
	return writeXML(writer, xmlPrivateKey{PrivateKeyData: sk.Data()})
}

// WriteToFile writes the private key to an XML file that only the owner can
// read. If any existing file with the same filename should be overwritten,
// set forceOverwrite to true.
func (sk *PrivateKey) WriteToFile(filename string, forceOverwrite bool) (int64, error) {
	return writeFile(filename, forceOverwrite, 0600, sk.WriteTo)
}

func writeXML(writer io.Writer, v interface{}) (int64, error) {
	// Write the standard XML header
	numHeaderBytes, err := writer.Write([]byte(XMLHeader))
	if err != nil {
		return 0, err
	}

	// And the actual XML body (with indentation)
	b, err := xml.MarshalIndent(v, "", "   ")
	if err != nil {
		return int64(numHeaderBytes), err
	}
	numBodyBytes, err := writer.Write(b)
	return int64(numHeaderBytes + numBodyBytes), err
}

func writeFile(filename string, forceOverwrite bool, perm os.FileMode, write func(io.Writer) (int64, error)) (int64, error) {
	var f *os.File
	var err error
	if forceOverwrite {
		f, err = os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
	} else {
		// This should return an error if the file already exists
		f, err = os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	}
	if err != nil {
		return 0, err
	}
	defer common.Close(f)

	return write(f)
}

func readFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer common.Close(f)
	return io.ReadAll(f)
}
