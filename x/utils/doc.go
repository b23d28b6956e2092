/*
Package utils provides decorators shared by all vault extensions.

Savepoint makes every call a unit of work, Recovery turns panics into
errors, Logging and Metrics report the outcome of each call.
*/
package utils
