package access

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
)

// Decorator passes only calls signed by the current owner.
type Decorator struct {
	auth x.Authenticator
}

var _ vault.Decorator = Decorator{}

// NewDecorator returns a decorator that checks the owner signature using
// given authenticator.
func NewDecorator(auth x.Authenticator) Decorator {
	return Decorator{auth: auth}
}

// Check verifies the owner signature before calling next.
func (d Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	if err := d.requireOwner(ctx, db); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

// Deliver verifies the owner signature before calling next.
func (d Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	if err := d.requireOwner(ctx, db); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) requireOwner(ctx vault.Context, db vault.KVStore) error {
	owner, err := Owner(db)
	if err != nil {
		return err
	}
	if !d.auth.HasAddress(ctx, owner) {
		return errors.Wrapf(ErrNotOwner, "owner %s signature missing", owner)
	}
	return nil
}
