/*
Package gate implements the Active/Paused switch of the application.

While paused, all handlers wrapped with the gate Decorator are refused.
Queries and administrative handlers are never gated.
*/
package gate
