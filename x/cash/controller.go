package cash

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// Receiver is notified about every transfer to the address it was
// registered for. Returning an error fails the transfer.
//
// The store given to the receiver is the in-flight state, so a receiver can
// call back into the application and observe all changes done so far.
type Receiver interface {
	OnReceive(ctx vault.Context, db vault.KVStore, from vault.Address, amount uint64) error
}

// ReceiverFunc allows to use a plain function as a Receiver.
type ReceiverFunc func(ctx vault.Context, db vault.KVStore, from vault.Address, amount uint64) error

// OnReceive calls fn.
func (fn ReceiverFunc) OnReceive(ctx vault.Context, db vault.KVStore, from vault.Address, amount uint64) error {
	return fn(ctx, db, from, amount)
}

// Controller is the functionality needed by other extensions to move value
// between wallets.
type Controller struct {
	bucket    orm.ModelBucket
	receivers map[string]Receiver
}

// NewController returns a controller with no receivers registered.
func NewController() *Controller {
	return &Controller{
		bucket:    NewBucket(),
		receivers: make(map[string]Receiver),
	}
}

// RegisterReceiver sets the receiver notified about all transfers to given
// address. Only one receiver per address is allowed. Use this method only
// during the application setup.
func (c *Controller) RegisterReceiver(addr vault.Address, r Receiver) {
	if _, ok := c.receivers[string(addr)]; ok {
		panic("receiver already registered for " + addr.String())
	}
	c.receivers[string(addr)] = r
}

// Balance returns the amount held by given address.
func (c *Controller) Balance(db vault.ReadOnlyKVStore, addr vault.Address) (uint64, error) {
	w, err := loadWallet(c.bucket, db, addr)
	if err != nil {
		return 0, err
	}
	return w.Amount, nil
}

// Issue creates new value and adds it to the wallet of given address.
func (c *Controller) Issue(db vault.KVStore, dest vault.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := loadWallet(c.bucket, db, dest)
	if err != nil {
		return err
	}
	if err := w.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, w)
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient coins, it fails.
// Receivers are not notified.
func (c *Controller) MoveCoins(db vault.KVStore, src, dest vault.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := loadWallet(c.bucket, db, src)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := c.bucket.Put(db, src, sender); err != nil {
		return err
	}

	// Load after the sender was saved so that moving to self is a noop.
	recipient, err := loadWallet(c.bucket, db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}

// Transfer moves the given amount from src to dest and notifies the receiver
// registered for dest. Any failure results in ErrTransferFailed wrapping the
// cause. When db can be cache wrapped, a failed transfer leaves no changes
// behind.
func (c *Controller) Transfer(ctx vault.Context, db vault.KVStore, src, dest vault.Address, amount uint64) error {
	cstore, ok := db.(vault.CacheableKVStore)
	if !ok {
		return c.transfer(ctx, db, src, dest, amount)
	}
	cache := cstore.CacheWrap()
	if err := c.transfer(ctx, cache, src, dest, amount); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return transferFailed(err, "write")
	}
	return nil
}

func (c *Controller) transfer(ctx vault.Context, db vault.KVStore, src, dest vault.Address, amount uint64) error {
	if err := c.MoveCoins(db, src, dest, amount); err != nil {
		return transferFailed(err, "move coins")
	}
	r, ok := c.receivers[string(dest)]
	if !ok {
		return nil
	}
	if err := r.OnReceive(ctx, db, src, amount); err != nil {
		return transferFailed(err, "refused by receiver")
	}
	return nil
}

// Collect moves the given amount from src to dest without notifying the
// receiver registered for dest. It is meant for value that arrives together
// with an operation of the receiving extension. Any failure results in
// ErrTransferFailed wrapping the cause.
func (c *Controller) Collect(db vault.KVStore, src, dest vault.Address, amount uint64) error {
	if err := c.MoveCoins(db, src, dest, amount); err != nil {
		return transferFailed(err, "collect")
	}
	return nil
}

// RejectAll is a receiver that refuses every transfer.
var RejectAll Receiver = ReceiverFunc(func(ctx vault.Context, db vault.KVStore, from vault.Address, amount uint64) error {
	return errors.Wrapf(ErrUnsolicitedTransfer, "%d from %s", amount, from)
})
