/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Each signer is identified by an ed25519 public key. Every signature carries a
sequence number that must match the stored sequence of the signer and is
incremented on success, so that a signed transaction cannot be replayed.
*/
package sigs
