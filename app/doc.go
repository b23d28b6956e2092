/*
Package app contains the framework that runs extensions.

It wires decorators and handlers together, routes messages by their path and
provides the Application type. Every call to the Application is a single unit
of work: it either succeeds and its changes are committed to the store, or it
fails and nothing is persisted. Events returned by handlers are delivered to
the EventSink only after a successful commit.
*/
package app
