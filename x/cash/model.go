package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// Wallet holds the value owned by a single address.
type Wallet struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   uint64          `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

// Validate ensures the wallet is well formed.
func (w *Wallet) Validate() error {
	return errors.AppendField(nil, "Metadata", w.Metadata.Validate())
}

// Add increases the wallet amount. It fails if the result does not fit into
// uint64.
func (w *Wallet) Add(amount uint64) error {
	sum := w.Amount + amount
	if sum < w.Amount {
		return errors.Wrap(errors.ErrOverflow, "wallet amount")
	}
	w.Amount = sum
	return nil
}

// Subtract decreases the wallet amount. It fails if the wallet does not hold
// enough value.
func (w *Wallet) Subtract(amount uint64) error {
	if w.Amount < amount {
		return errors.Wrapf(ErrInsufficientFunds, "want %d, have %d", amount, w.Amount)
	}
	w.Amount -= amount
	return nil
}

// NewBucket returns the bucket that stores wallets indexed by their owner
// address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("cash")
}

// loadWallet returns the wallet of given address or an empty wallet if none
// was stored yet.
func loadWallet(b orm.ModelBucket, db vault.ReadOnlyKVStore, addr vault.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{Metadata: &vault.Metadata{Schema: 1}}, nil
	default:
		return nil, err
	}
}
