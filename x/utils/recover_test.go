package utils

import (
	"context"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	h := vaulttest.PanicHandler{Value: "boom"}
	r := NewRecovery()

	assert.Panics(t, func() { h.Check(ctx, nil, nil) })

	_, err := r.Check(ctx, nil, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)
	assert.Equal(t, "boom: panic", err.Error())

	_, err = r.Deliver(ctx, nil, nil, h)
	assert.IsErr(t, errors.ErrPanic, err)
	assert.Class(t, errors.Infrastructure, err)
}

func TestRecoveryPassesResult(t *testing.T) {
	var h vaulttest.Handler
	_, err := NewRecovery().Deliver(context.Background(), nil, nil, &h)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())
}
