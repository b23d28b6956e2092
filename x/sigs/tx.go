package sigs

// SignedTx represents a transaction that contains signatures,
// which can be verified by the sigs.Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the Msg.
	GetSignBytes() ([]byte, error)
	// GetSignatures returns the signature of signers who signed the Msg.
	GetSignatures() []*StdSignature
}
