/*
Package cash implements the value transfer primitive of the vault.

Every address owns a single wallet holding an amount of the one supported
asset. Value can be moved between wallets by a Controller. A plain move
never calls anybody, while a transfer notifies the receiver registered for
the destination address, which may refuse the value and fail the transfer.
*/
package cash
