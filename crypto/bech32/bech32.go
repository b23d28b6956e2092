// Package bech32 implements the human readable text form of addresses.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/vault/errors"
)

// Encode returns the text form of payload under the given prefix.
func Encode(prefix string, payload []byte) (string, error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	enc, err := bech32.Encode(prefix, data)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "encode: %s", err)
	}
	return enc, nil
}

// Decode returns the payload of enc. It fails with ErrInput unless enc is a
// valid bech32 string with the given prefix.
func Decode(prefix, enc string) ([]byte, error) {
	hrp, data, err := bech32.Decode(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode: %s", err)
	}
	if hrp != prefix {
		return nil, errors.Wrapf(errors.ErrInput, "prefix %q, want %q", hrp, prefix)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return payload, nil
}
