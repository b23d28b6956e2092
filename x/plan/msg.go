package plan

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// CreatePlanMsg opens a new empty plan for the owner.
type CreatePlanMsg struct {
	Metadata   *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner      vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	UnlockTime vault.UnixTime  `protobuf:"varint,3,opt,name=unlock_time,json=unlockTime,proto3" json:"unlock_time,omitempty"`
	Label      string          `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
}

var _ vault.Msg = (*CreatePlanMsg)(nil)

func (m *CreatePlanMsg) Reset()         { *m = CreatePlanMsg{} }
func (m *CreatePlanMsg) String() string { return proto.CompactTextString(m) }
func (*CreatePlanMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (CreatePlanMsg) Path() string {
	return "plan/create"
}

// Validate makes sure that this is sensible. The unlock time is compared
// with the block time by the handler.
func (m *CreatePlanMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "UnlockTime", validateUnlockTime(m.UnlockTime))
	errs = errors.AppendField(errs, "Label", validateLabel(m.Label))
	return errs
}

// UpdatePlanLabelMsg changes the label of an existing plan.
type UpdatePlanLabelMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	PlanID   uint64          `protobuf:"varint,3,opt,name=plan_id,json=planId,proto3" json:"plan_id"`
	Label    string          `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
}

var _ vault.Msg = (*UpdatePlanLabelMsg)(nil)

func (m *UpdatePlanLabelMsg) Reset()         { *m = UpdatePlanLabelMsg{} }
func (m *UpdatePlanLabelMsg) String() string { return proto.CompactTextString(m) }
func (*UpdatePlanLabelMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (UpdatePlanLabelMsg) Path() string {
	return "plan/update_label"
}

// Validate makes sure that this is sensible
func (m *UpdatePlanLabelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Label", validateLabel(m.Label))
	return errs
}

// DepositMsg moves value from the owner wallet into a plan.
type DepositMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	PlanID   uint64          `protobuf:"varint,3,opt,name=plan_id,json=planId,proto3" json:"plan_id"`
	Amount   uint64          `protobuf:"varint,4,opt,name=amount,proto3" json:"amount"`
}

var _ vault.Msg = (*DepositMsg)(nil)

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (DepositMsg) Path() string {
	return "plan/deposit"
}

// Validate makes sure that this is sensible
func (m *DepositMsg) Validate() error {
	return validateAmountMsg(m.Metadata, m.Owner, m.Amount)
}

// WithdrawMsg moves value from a plan back to the owner wallet. Early
// withdrawals are charged a penalty.
type WithdrawMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	PlanID   uint64          `protobuf:"varint,3,opt,name=plan_id,json=planId,proto3" json:"plan_id"`
	Amount   uint64          `protobuf:"varint,4,opt,name=amount,proto3" json:"amount"`
}

var _ vault.Msg = (*WithdrawMsg)(nil)

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (WithdrawMsg) Path() string {
	return "plan/withdraw"
}

// Validate makes sure that this is sensible
func (m *WithdrawMsg) Validate() error {
	return validateAmountMsg(m.Metadata, m.Owner, m.Amount)
}

func validateAmountMsg(meta *vault.Metadata, owner vault.Address, amount uint64) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", meta.Validate())
	errs = errors.AppendField(errs, "Owner", owner.Validate())
	if amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", ErrZeroAmount, "must be positive"))
	}
	return errs
}
