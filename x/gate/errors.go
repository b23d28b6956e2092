package gate

import "github.com/iov-one/vault/errors"

var (
	// ErrPaused is returned by gated handlers while the application is
	// paused.
	ErrPaused = errors.Register(150, errors.Policy, "paused")

	// ErrAlreadyPaused is returned when pausing a paused application.
	ErrAlreadyPaused = errors.Register(151, errors.Policy, "already paused")

	// ErrNotPaused is returned when unpausing an active application.
	ErrNotPaused = errors.Register(152, errors.Policy, "not paused")
)
