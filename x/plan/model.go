package plan

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// Plan is a single savings plan. Plans are never deleted, a fully withdrawn
// plan keeps a zero balance.
type Plan struct {
	Metadata   *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner      vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	ID         uint64          `protobuf:"varint,3,opt,name=id,proto3" json:"id"`
	Balance    uint64          `protobuf:"varint,4,opt,name=balance,proto3" json:"balance"`
	UnlockTime vault.UnixTime  `protobuf:"varint,5,opt,name=unlock_time,json=unlockTime,proto3" json:"unlock_time"`
	Label      string          `protobuf:"bytes,6,opt,name=label,proto3" json:"label,omitempty"`
}

func (m *Plan) Reset()         { *m = Plan{} }
func (m *Plan) String() string { return proto.CompactTextString(m) }
func (*Plan) ProtoMessage()    {}

// Validate ensures the plan is well formed.
func (m *Plan) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "UnlockTime", m.UnlockTime.Validate())
	errs = errors.AppendField(errs, "Label", validateLabel(m.Label))
	return errs
}

func validateLabel(label string) error {
	if !utf8.ValidString(label) {
		return errors.Wrap(errors.ErrInput, "label must be utf8")
	}
	return nil
}

// validateUnlockTime rejects moments before the epoch. Whether the time is in
// the future depends on the block time and is checked by the handler.
func validateUnlockTime(t vault.UnixTime) error {
	if t.Validate() != nil {
		return errors.Wrapf(ErrInvalidUnlockTime, "unlock time %d before epoch", t)
	}
	return nil
}

// Account aggregates all plans of a single user.
type Account struct {
	Metadata     *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	PlanCount    uint64          `protobuf:"varint,2,opt,name=plan_count,json=planCount,proto3" json:"plan_count"`
	TotalBalance uint64          `protobuf:"varint,3,opt,name=total_balance,json=totalBalance,proto3" json:"total_balance"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// Validate ensures the account is well formed.
func (m *Account) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

// PlanInfo is the result of a plan lookup. A missing plan is returned as a
// zero value with Exists set to false.
type PlanInfo struct {
	Balance    uint64         `json:"balance"`
	UnlockTime vault.UnixTime `json:"unlock_time"`
	Exists     bool           `json:"exists"`
	Label      string         `json:"label"`
}

// planKey returns the primary key of a plan, the owner address followed by
// the big endian plan id, so that the plans of a user are stored in id
// order.
func planKey(owner vault.Address, id uint64) []byte {
	key := make([]byte, len(owner)+8)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], id)
	return key
}

// encodeID returns the plan id as returned in the result data of plan
// creation.
func encodeID(id uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, id)
	return raw
}

// DecodeID reads the plan id from the result data of plan creation.
func DecodeID(raw []byte) (uint64, error) {
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrInput, "plan id must be 8 bytes, got %d", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// NewPlanBucket returns the bucket storing plans.
func NewPlanBucket() orm.ModelBucket {
	return orm.NewModelBucket("plan")
}

// NewAccountBucket returns the bucket storing user accounts.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("acct")
}
