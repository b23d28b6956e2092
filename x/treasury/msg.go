package treasury

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// SetMaxBalancePerUserMsg changes the cap of the total balance of a user.
type SetMaxBalancePerUserMsg struct {
	Metadata          *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MaxBalancePerUser uint64          `protobuf:"varint,2,opt,name=max_balance_per_user,json=maxBalancePerUser,proto3" json:"max_balance_per_user,omitempty"`
}

var _ vault.Msg = (*SetMaxBalancePerUserMsg)(nil)

func (m *SetMaxBalancePerUserMsg) Reset()         { *m = SetMaxBalancePerUserMsg{} }
func (m *SetMaxBalancePerUserMsg) String() string { return proto.CompactTextString(m) }
func (*SetMaxBalancePerUserMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (SetMaxBalancePerUserMsg) Path() string {
	return "treasury/set_max_balance_per_user"
}

// Validate checks the metadata. Any cap value is accepted.
func (m *SetMaxBalancePerUserMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

// SetEarlyWithdrawPenaltyBpsMsg changes the early withdrawal penalty rate.
type SetEarlyWithdrawPenaltyBpsMsg struct {
	Metadata   *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	PenaltyBps uint32          `protobuf:"varint,2,opt,name=penalty_bps,json=penaltyBps,proto3" json:"penalty_bps,omitempty"`
}

var _ vault.Msg = (*SetEarlyWithdrawPenaltyBpsMsg)(nil)

func (m *SetEarlyWithdrawPenaltyBpsMsg) Reset()         { *m = SetEarlyWithdrawPenaltyBpsMsg{} }
func (m *SetEarlyWithdrawPenaltyBpsMsg) String() string { return proto.CompactTextString(m) }
func (*SetEarlyWithdrawPenaltyBpsMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (SetEarlyWithdrawPenaltyBpsMsg) Path() string {
	return "treasury/set_early_withdraw_penalty_bps"
}

// Validate makes sure the rate is within the allowed range.
func (m *SetEarlyWithdrawPenaltyBpsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "PenaltyBps", validatePenalty(m.PenaltyBps))
	return errs
}

// SetTreasuryMsg changes the address collecting penalties.
type SetTreasuryMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Treasury vault.Address   `protobuf:"bytes,2,opt,name=treasury,proto3" json:"treasury,omitempty"`
}

var _ vault.Msg = (*SetTreasuryMsg)(nil)

func (m *SetTreasuryMsg) Reset()         { *m = SetTreasuryMsg{} }
func (m *SetTreasuryMsg) String() string { return proto.CompactTextString(m) }
func (*SetTreasuryMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (SetTreasuryMsg) Path() string {
	return "treasury/set_treasury"
}

// Validate makes sure the treasury is a valid address.
func (m *SetTreasuryMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Treasury", validateTreasury(m.Treasury))
	return errs
}

// ConfigurationChanged is emitted when a parameter is changed.
type ConfigurationChanged struct {
	Field string
	Value string
}

// EventType implements vault.Event
func (ConfigurationChanged) EventType() string {
	return "treasury/configuration_changed"
}
