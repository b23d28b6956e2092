package access

import "github.com/iov-one/vault/errors"

// ErrNotOwner is returned when an administrative call is not signed by the
// owner.
var ErrNotOwner = errors.Register(140, errors.Policy, "not owner")
