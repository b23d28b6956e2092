package gate

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Decorator refuses all calls while the gate is paused.
type Decorator struct{}

var _ vault.Decorator = Decorator{}

// NewDecorator returns a gate decorator.
func NewDecorator() Decorator {
	return Decorator{}
}

// Check fails with ErrPaused when paused.
func (Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	if err := requireActive(db, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

// Deliver fails with ErrPaused when paused.
func (Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	if err := requireActive(db, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func requireActive(db vault.KVStore, tx vault.Tx) error {
	paused, err := IsPaused(db)
	if err != nil {
		return err
	}
	if paused {
		return errors.Wrapf(ErrPaused, "refused %s", vault.GetPath(tx))
	}
	return nil
}
