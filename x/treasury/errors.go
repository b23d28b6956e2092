package treasury

import "github.com/iov-one/vault/errors"

// ErrPenaltyTooHigh is returned when the penalty rate exceeds MaxPenaltyBps.
var ErrPenaltyTooHigh = errors.Register(170, errors.Validation, "penalty too high")
