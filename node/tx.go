package node

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/sigs"
	"golang.org/x/crypto/ed25519"
)

// Tx is a single message together with the signatures of its authors.
type Tx struct {
	Msg        vault.Msg
	Signatures []*sigs.StdSignature
}

var _ vault.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the message carried by the transaction.
func (tx *Tx) GetMsg() (vault.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "transaction without a message")
	}
	return tx.Msg, nil
}

// GetSignBytes returns the protobuf encoding of the message.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "transaction without a message")
	}
	raw, err := proto.Marshal(tx.Msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "marshal: %s", err)
	}
	return raw, nil
}

// GetSignatures returns all signatures attached so far.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// Sign attaches the signature of given key. The sequence must be the next
// nonce of the key, as returned by sigs.NextNonce.
func (tx *Tx) Sign(key ed25519.PrivateKey, chainID string, seq int64) error {
	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}
