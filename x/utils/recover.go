package utils

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Recovery is a decorator to recover from panics in handlers,
// so we can log them as errors
type Recovery struct{}

var _ vault.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (_ *vault.CheckResult, err error) {
	defer recoverPanic(ctx, &err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (_ *vault.DeliverResult, err error) {
	defer recoverPanic(ctx, &err)
	return next.Deliver(ctx, db, tx)
}

func recoverPanic(ctx vault.Context, err *error) {
	if r := recover(); r != nil {
		*err = errors.Wrapf(errors.ErrPanic, "%v", r)
		vault.GetLogger(ctx).Error("recovered from panic", "err", *err)
	}
}
