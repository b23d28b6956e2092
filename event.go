package vault

// Event is a notification about a state change. Handlers return events as
// part of the DeliverResult. Events of a failed unit of work are dropped.
type Event interface {
	// EventType returns a short, unique name of the event kind, for
	// example "plan/deposited".
	EventType() string
}
