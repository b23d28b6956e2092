package app

import "github.com/iov-one/vault"

// EventSink receives events of every successfully committed unit of work,
// in the order they were emitted.
type EventSink interface {
	Publish(ctx vault.Context, events []vault.Event)
}

// EventSinkFunc allows to use a plain function as an EventSink.
type EventSinkFunc func(ctx vault.Context, events []vault.Event)

// Publish calls fn.
func (fn EventSinkFunc) Publish(ctx vault.Context, events []vault.Event) {
	fn(ctx, events)
}

// LogSink writes every event to the context logger.
type LogSink struct{}

var _ EventSink = LogSink{}

// Publish logs each event on the info level.
func (LogSink) Publish(ctx vault.Context, events []vault.Event) {
	logger := vault.GetLogger(ctx)
	for _, e := range events {
		logger.Info("event", "type", e.EventType(), "event", e)
	}
}
