/*
Package x contains the extensions of the vault application.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together by the app package. Each sub-package
owns its messages, its models and the part of the database it writes to.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `plan.DepositMsg` in place of `plan.PlanDepositMsg`.
*/
package x
