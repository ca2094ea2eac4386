// Package cbor encodes and decodes keys as CBOR using
// github.com/fxamacker/cbor.
//
// Encoding follows the Core Deterministic Encoding of RFC 8949, so a key
// always has exactly one encoding. Decoding rejects indefinite lengths,
// duplicate map keys, tags and trailing or unknown content.
package cbor

import (
	"bytes"

	"github.com/fxamacker/cbor/v2" // imports as cbor
	"github.com/go-errors/errors"
)

// Keys are small fixed-size arrays; anything larger is malformed.
const (
	MaxArrayElements = 64
	MaxMapPairs      = 64
	MaxNestedLevels  = 8
)

var (
	encOptions = cbor.EncOptions{
		IndefLength:   cbor.IndefLengthForbidden,
		InfConvert:    cbor.InfConvertFloat16,
		NaNConvert:    cbor.NaNConvert7e00,
		ShortestFloat: cbor.ShortestFloat16,
		Sort:          cbor.SortCoreDeterministic,
		TagsMd:        cbor.TagsForbidden,
	}

	decOptions = cbor.DecOptions{
		IndefLength:       cbor.IndefLengthForbidden,
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements:  MaxArrayElements,
		MaxMapPairs:       MaxMapPairs,
		MaxNestedLevels:   MaxNestedLevels,
		TagsMd:            cbor.TagsForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src into a CBOR-encoded byte slice.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes the single CBOR data item in data into dst.
func Unmarshal(data []byte, dst interface{}) error {
	dec := decMode.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if n := dec.NumBytesRead(); n != len(data) {
		return errors.Errorf("%d bytes of trailing data after CBOR item", len(data)-n)
	}
	return nil
}
