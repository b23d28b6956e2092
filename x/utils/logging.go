package utils

import (
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ vault.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx vault.Context, start time.Time, msg string, err error, lowPrio bool) {
	logger := vault.GetLogger(ctx).With("duration", time.Since(start)/time.Microsecond)

	// Message can be empty, the entry is still relevant because of
	// the other attributes.
	switch {
	case err != nil && lowPrio:
		logger.Info(msg, "err", err, "class", errors.ClassOf(err))
	case err != nil:
		logger.Error(msg, "err", err, "class", errors.ClassOf(err))
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
