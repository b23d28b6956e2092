package vault

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/errors"
)

// Metadata is embedded in every persisted model and every message. Schema is
// the version of the serialization format and starts with 1.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

// Validate returns an error if metadata is missing or declares an unknown
// schema version.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema != 1 {
		return errors.Wrapf(errors.ErrMetadata, "unsupported schema %d", m.Schema)
	}
	return nil
}
