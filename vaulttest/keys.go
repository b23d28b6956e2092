package vaulttest

import (
	"crypto/rand"

	"github.com/iov-one/vault"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a new ed25519 private key. It panics if the system source of
// randomness fails.
func NewKey() ed25519.PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return priv
}

// KeyCondition returns the signature condition of given ed25519 key, the
// same that the signature verification would grant.
func KeyCondition(key ed25519.PrivateKey) vault.Condition {
	return vault.NewCondition("sigs", "ed25519", key.Public().(ed25519.PublicKey))
}

// NewCondition returns a condition of a newly generated key.
func NewCondition() vault.Condition {
	return KeyCondition(NewKey())
}

// RandomAddr returns an address of a newly generated key.
func RandomAddr() vault.Address {
	return NewCondition().Address()
}
