package access

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// TransferOwnershipMsg sets a new owner. It must be signed by the current
// owner.
type TransferOwnershipMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	NewOwner vault.Address   `protobuf:"bytes,2,opt,name=new_owner,json=newOwner,proto3" json:"new_owner,omitempty"`
}

var _ vault.Msg = (*TransferOwnershipMsg)(nil)

func (m *TransferOwnershipMsg) Reset()         { *m = TransferOwnershipMsg{} }
func (m *TransferOwnershipMsg) String() string { return proto.CompactTextString(m) }
func (*TransferOwnershipMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (TransferOwnershipMsg) Path() string {
	return "access/transfer_ownership"
}

// Validate makes sure that this is sensible
func (m *TransferOwnershipMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Field("Metadata", err, "invalid")
	}
	if len(m.NewOwner) == 0 {
		return errors.Field("NewOwner", errors.ErrNullAddress, "new owner required")
	}
	return errors.AppendField(nil, "NewOwner", m.NewOwner.Validate())
}

// OwnershipTransferred is emitted when the owner changes.
type OwnershipTransferred struct {
	Previous vault.Address
	New      vault.Address
}

// EventType implements vault.Event
func (OwnershipTransferred) EventType() string {
	return "access/ownership_transferred"
}
