package plan

import "github.com/iov-one/vault/errors"

var (
	// ErrZeroAmount is returned when depositing or withdrawing nothing.
	ErrZeroAmount = errors.Register(180, errors.Validation, "zero amount")

	// ErrInvalidUnlockTime is returned when a plan would be created already
	// unlocked.
	ErrInvalidUnlockTime = errors.Register(181, errors.Validation, "invalid unlock time")

	// ErrInvalidPlan is returned when the referenced plan does not exist.
	ErrInvalidPlan = errors.Register(182, errors.Validation, "invalid plan")

	// ErrInsufficientBalance is returned when withdrawing more than the plan
	// balance.
	ErrInsufficientBalance = errors.Register(183, errors.Validation, "insufficient balance")

	// ErrMaxBalanceReached is returned when a deposit would exceed the per
	// user cap.
	ErrMaxBalanceReached = errors.Register(184, errors.Policy, "max balance reached")
)
