package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest/assert"
)

type myConfig struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Number   int64           `protobuf:"varint,2,opt,name=number,proto3" json:"number,omitempty"`
	Addr     vault.Address   `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *myConfig) Reset()         { *m = myConfig{} }
func (m *myConfig) String() string { return proto.CompactTextString(m) }
func (*myConfig) ProtoMessage()    {}

func (m *myConfig) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Addr", m.Addr.Validate())
	if m.Number < 0 {
		errs = errors.AppendField(errs, "Number", errors.ErrInput)
	}
	return errs
}

func TestSaveLoad(t *testing.T) {
	addr := vault.NewAddress([]byte("owner"))

	cases := map[string]struct {
		Conf        *myConfig
		WantSaveErr *errors.Error
	}{
		"valid": {
			Conf: &myConfig{Metadata: &vault.Metadata{Schema: 1}, Number: 42, Addr: addr},
		},
		"invalid address cannot be saved": {
			Conf:        &myConfig{Metadata: &vault.Metadata{Schema: 1}, Addr: vault.Address("too short")},
			WantSaveErr: errors.ErrInput,
		},
		"negative number cannot be saved": {
			Conf:        &myConfig{Metadata: &vault.Metadata{Schema: 1}, Number: -1, Addr: addr},
			WantSaveErr: errors.ErrInput,
		},
		"missing metadata": {
			Conf:        &myConfig{Addr: addr},
			WantSaveErr: errors.ErrMetadata,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "mine", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			if tc.WantSaveErr != nil {
				return
			}

			var got myConfig
			if err := Load(db, "mine", &got); err != nil {
				t.Fatalf("cannot load configuration: %s", err)
			}
			assert.Equal(t, tc.Conf.Number, got.Number)
			assert.Equal(t, tc.Conf.Addr, got.Addr)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var got myConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "mine", &got))
}

func TestInitConfig(t *testing.T) {
	addr := vault.NewAddress([]byte("owner"))
	raw, err := json.Marshal(map[string]interface{}{
		"conf": map[string]interface{}{
			"mine": map[string]interface{}{
				"metadata": map[string]interface{}{"schema": 1},
				"number":   7,
				"addr":     addr,
			},
		},
	})
	assert.Nil(t, err)
	var opts vault.Options
	assert.Nil(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	assert.Nil(t, InitConfig(db, opts, "mine", &myConfig{}))

	var got myConfig
	assert.Nil(t, Load(db, "mine", &got))
	assert.Equal(t, int64(7), got.Number)
	assert.Equal(t, addr, got.Addr)

	assert.IsErr(t, errors.ErrNotFound, InitConfig(db, opts, "other", &myConfig{}))
}
