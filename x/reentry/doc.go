/*
Package reentry provides a decorator that refuses nested execution of the
handlers it guards.

A value transfer may notify a receiver that calls back into the application
before the outer call returns. All value moving handlers share one Lock, so
such a nested call fails with ErrReentrancy while the outer call completes.
*/
package reentry
