package x

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Authenticator extracts authentication info from the context. It is passed
// to the handler constructors so that extensions do not depend on x/sigs.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled.
	GetConditions(vault.Context) []vault.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(vault.Context, vault.Address) bool
}

// RequireSigner returns ErrUnauthorized unless the address of the given role
// authorized the current call.
func RequireSigner(ctx vault.Context, auth Authenticator, role string, addr vault.Address) error {
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s %s signature missing", role, addr)
	}
	return nil
}
