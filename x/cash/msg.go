package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const maxMemoSize int = 128

// SendMsg moves value from the source wallet to the destination. The
// receiver registered for the destination is notified.
type SendMsg struct {
	Metadata    *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      vault.Address   `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Destination vault.Address   `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      uint64          `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string          `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ vault.Msg = (*SendMsg)(nil)

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "too long"))
	}
	return errs
}
