package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/vault/errors"
)

func TestDecodeKnownValue(t *testing.T) {
	// bech32 -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := Decode("tiov", enc)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if !bytes.Equal(want, payload) {
		t.Fatalf("want %X, got %X", want, payload)
	}
	raw, err := Encode("tiov", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if raw != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestDecode(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 20)
	enc, err := Encode("vault", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	cases := map[string]struct {
		prefix  string
		enc     string
		want    []byte
		wantErr *errors.Error
	}{
		"valid": {
			prefix: "vault",
			enc:    enc,
			want:   payload,
		},
		"other prefix": {
			prefix:  "tiov",
			enc:     enc,
			wantErr: errors.ErrInput,
		},
		"broken checksum": {
			prefix:  "vault",
			enc:     "vault1invalid",
			wantErr: errors.ErrInput,
		},
		"empty": {
			prefix:  "vault",
			enc:     "",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Decode(tc.prefix, tc.enc)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %s error, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot decode: %s", err)
			}
			if !bytes.Equal(tc.want, got) {
				t.Fatalf("want %X, got %X", tc.want, got)
			}
		})
	}
}
