package treasury

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

const pkgName = "treasury"

// MaxPenaltyBps is the highest allowed penalty rate, 20%.
const MaxPenaltyBps = 2000

// CustodyAddress holds the value of all plans. It refuses any transfer that
// does not come with a deposit, so it can never be the treasury.
var CustodyAddress = vault.NewCondition("vault", "plan", []byte("custody")).Address()

// Configuration holds the economic parameters.
type Configuration struct {
	Metadata                *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MaxBalancePerUser       uint64          `protobuf:"varint,2,opt,name=max_balance_per_user,json=maxBalancePerUser,proto3" json:"max_balance_per_user,omitempty"`
	EarlyWithdrawPenaltyBps uint32          `protobuf:"varint,3,opt,name=early_withdraw_penalty_bps,json=earlyWithdrawPenaltyBps,proto3" json:"early_withdraw_penalty_bps,omitempty"`
	Treasury                vault.Address   `protobuf:"bytes,4,opt,name=treasury,proto3" json:"treasury,omitempty"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

// Validate returns an error if any parameter is out of range.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "EarlyWithdrawPenaltyBps", validatePenalty(c.EarlyWithdrawPenaltyBps))
	errs = errors.AppendField(errs, "Treasury", validateTreasury(c.Treasury))
	return errs
}

func validatePenalty(bps uint32) error {
	if bps > MaxPenaltyBps {
		return errors.Wrapf(ErrPenaltyTooHigh, "%d > %d", bps, MaxPenaltyBps)
	}
	return nil
}

func validateTreasury(addr vault.Address) error {
	if len(addr) == 0 {
		return errors.Wrap(errors.ErrNullAddress, "treasury required")
	}
	if addr.Equals(CustodyAddress) {
		return errors.Wrap(errors.ErrInput, "custody account cannot be the treasury")
	}
	return addr.Validate()
}

// Load returns the current configuration.
func Load(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load treasury configuration")
	}
	return &conf, nil
}
