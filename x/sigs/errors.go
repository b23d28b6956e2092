package sigs

import "github.com/iov-one/vault/errors"

var (
	// ErrInvalidSequence is returned when a signature sequence does not
	// match the next expected value of the signer.
	ErrInvalidSequence = errors.Register(120, errors.Policy, "invalid sequence number")
)
