package reentry

import (
	"sync/atomic"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// ErrReentrancy is returned when a guarded handler is entered while another
// guarded call is in progress.
var ErrReentrancy = errors.Register(160, errors.Policy, "reentrant call")

const (
	idle int32 = iota
	busy
)

// Lock is a decorator that allows only one guarded call at a time. A single
// instance must be shared by all handlers that should exclude each other.
// The lock is released on every exit path, including panics.
type Lock struct {
	state *int32
}

var _ vault.Decorator = Lock{}

// NewLock returns an idle lock.
func NewLock() Lock {
	return Lock{state: new(int32)}
}

// Busy returns true if a guarded call is in progress.
func (l Lock) Busy() bool {
	return atomic.LoadInt32(l.state) == busy
}

// Check runs next while holding the lock.
func (l Lock) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.exit()
	return next.Check(ctx, db, tx)
}

// Deliver runs next while holding the lock.
func (l Lock) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.exit()
	return next.Deliver(ctx, db, tx)
}

func (l Lock) enter() error {
	if !atomic.CompareAndSwapInt32(l.state, idle, busy) {
		return errors.Wrap(ErrReentrancy, "call in progress")
	}
	return nil
}

func (l Lock) exit() {
	atomic.StoreInt32(l.state, idle)
}
