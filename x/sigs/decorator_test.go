package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := vault.WithChainID(context.Background(), chainID)

	priv := vaulttest.NewKey()
	perms := []vault.Condition{vaulttest.KeyCondition(priv)}

	tx := NewStdTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec vault.Decorator, my vault.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec vault.Decorator, my vault.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	// test with no sigs
	assert.True(t, errors.ErrUnauthorized.Is(check(d, tx)))
	assert.True(t, errors.ErrUnauthorized.Is(deliver(d, tx)))

	// test with one sig
	tx.Signatures = []*StdSignature{sig}
	require.NoError(t, check(d, tx))
	assert.Equal(t, perms, signers.Signers)
	require.NoError(t, deliver(d, tx))
	assert.Equal(t, perms, signers.Signers)

	// replay is rejected
	assert.True(t, ErrInvalidSequence.Is(deliver(d, tx)))

	// the next sequence passes
	tx.Signatures = []*StdSignature{sig1}
	require.NoError(t, deliver(d, tx))

	// allowing missing signatures passes an unsigned transaction
	tx.Signatures = nil
	require.NoError(t, deliver(d.AllowMissingSigs(), tx))
	assert.Empty(t, signers.Signers)

	// a transaction that does not carry signatures at all
	plain := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/sigs"}}
	assert.True(t, errors.ErrUnauthorized.Is(deliver(d, plain)))
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []vault.Condition
}

var _ vault.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.DeliverResult{}, nil
}
