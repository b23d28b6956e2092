package vault_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test bech32 address printing", t, func() {
		addr := vault.NewAddress([]byte("ABCD123456LHB"))

		So(addr.String(), ShouldNotEqual, fmt.Sprintf("%X", addr))
		So(addr.String(), ShouldStartWith, vault.AddressPrefix+"1")
	})

	Convey("test empty address printing", t, func() {
		So(vault.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test hexademical condition printing", t, func() {
		cond := vault.NewCondition("12", "32", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", cond))
	})
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := vault.NewCondition("sigs", "ed25519", []byte("pubkey")).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var got vault.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestAddressUnmarshalJSON(t *testing.T) {
	cond := vault.NewCondition("foo", "bar", []byte("conditiondata"))
	hexAddr := vault.Address("0123456789-0123456789"[:20])

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr vault.Address
	}{
		"hex decoding": {
			json:     fmt.Sprintf(`"hex:%x"`, []byte(hexAddr)),
			wantAddr: hexAddr,
		},
		"bech32 decoding": {
			json:     fmt.Sprintf(`%q`, hexAddr.String()),
			wantAddr: hexAddr,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: cond.Address(),
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"too short hex address": {
			json:    `"hex:6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a vault.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.wantAddr, a)
			}
		})
	}
}

func TestConditionParse(t *testing.T) {
	cond := vault.NewCondition("sigs", "ed25519", []byte{0xAA, 0x0A})

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{0xAA, 0x0A}, data)
	assert.NoError(t, cond.Validate())

	assert.Error(t, vault.Condition("no-slashes").Validate())
}
