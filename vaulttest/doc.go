// Package vaulttest provides mocks and helpers for testing handlers and
// decorators without a running application.
package vaulttest
