package vaulttest

import (
	"context"
	"reflect"
	"testing"

	"github.com/iov-one/vault"
)

func TestAuthNoSigners(t *testing.T) {
	var a Auth

	if got := a.GetConditions(nil); got != nil {
		t.Fatalf("unexpected conditions: %+v", got)
	}

	if a.HasAddress(nil, NewCondition().Address()) {
		t.Fatal("random condition must not be present")
	}
}

func TestAuthUsingSignerAndSigners(t *testing.T) {
	conds := []vault.Condition{
		NewCondition(),
		NewCondition(),
		NewCondition(),
	}

	a := Auth{
		Signer:  conds[2],
		Signers: conds[:2],
	}

	if got := a.GetConditions(nil); !reflect.DeepEqual(got, conds) {
		t.Fatalf("unexpected conditions: %v", got)
	}
	for i, c := range conds {
		if !a.HasAddress(nil, c.Address()) {
			t.Fatalf("condition %d address not found", i)
		}
	}
}

func TestCtxAuth(t *testing.T) {
	a := &CtxAuth{Key: "auth"}
	c := NewCondition()

	ctx := context.Background()
	if a.HasAddress(ctx, c.Address()) {
		t.Fatal("empty context must not authenticate")
	}

	ctx = a.SetConditions(ctx, c)
	if !a.HasAddress(ctx, c.Address()) {
		t.Fatal("condition not found")
	}
	if other := (&CtxAuth{Key: "other"}); other.HasAddress(ctx, c.Address()) {
		t.Fatal("different key must not see the condition")
	}
}

func TestKeyCondition(t *testing.T) {
	key := NewKey()
	c := KeyCondition(key)
	ext, typ, _, err := c.Parse()
	if err != nil {
		t.Fatalf("cannot parse condition: %s", err)
	}
	if ext != "sigs" || typ != "ed25519" {
		t.Fatalf("unexpected condition %s", c)
	}
	if err := c.Address().Validate(); err != nil {
		t.Fatalf("invalid address: %s", err)
	}
}
