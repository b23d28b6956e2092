/*
Package access keeps the single owner of the application and guards all
administrative handlers.

The owner is set in genesis under conf.access and can be changed only by the
current owner with a TransferOwnershipMsg.
*/
package access
