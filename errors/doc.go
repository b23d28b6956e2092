/*
Package errors implements the error taxonomy of the vault ledger.

Each error returned by the ledger wraps one of the root errors registered with
Register. A root error carries a unique code and a Class that tells the caller
whether the request should be retried with different parameters (Validation),
is not allowed in the current state or by the caller (Policy), or failed
because of a collaborator or a configuration problem (Infrastructure).

Extensions declare their own root errors in their package, using a code range
not used by any other extension.

Create errors with ErrXyz.New("...") or errors.Wrap(err, "...") at the point of
failure so that a stack trace is attached. Test for an error kind with
ErrXyz.Is(err). Format with %+v to print the stack trace.
*/
package errors
