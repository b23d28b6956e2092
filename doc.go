/*
Package vault defines the common interfaces used to put together the savings
plan ledger, as well as implementations of some of the simpler components
(when interfaces would be too much overhead).

A call to the ledger is a Tx carrying a single Msg. The application routes the
message by its Path to a Handler, passing it through a chain of Decorators
(unit of work, signatures, pause gate, reentry lock, owner check). All state
lives in a KVStore. A unit of work is executed on a KVCacheWrap and written to
the parent store only when the handler succeeds.

We pass context through context.Context between the application, decorators
and handlers. There should exist two functions for every XYZ of type T that we
want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level modules
overwriting the value (eg. chain id).
*/
package vault
