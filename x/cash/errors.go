package cash

import "github.com/iov-one/vault/errors"

var (
	// ErrTransferFailed is returned when value could not be moved to the
	// destination. It always wraps the cause.
	ErrTransferFailed = errors.Register(130, errors.Infrastructure, "transfer failed")

	// ErrUnsolicitedTransfer is returned by receivers that do not accept
	// value sent without an associated operation.
	ErrUnsolicitedTransfer = errors.Register(131, errors.Policy, "unsolicited transfer")

	// ErrInsufficientFunds is returned when the source wallet does not
	// hold the requested amount.
	ErrInsufficientFunds = errors.Register(132, errors.Policy, "insufficient funds")
)

// transferFailed wraps given cause with ErrTransferFailed while keeping the
// cause visible to the Is checks.
func transferFailed(cause error, description string) error {
	return errors.Wrap(errors.Append(ErrTransferFailed, cause), description)
}
