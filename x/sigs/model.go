package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"golang.org/x/crypto/ed25519"
)

// PubKeyCondition returns the condition granted to the holder of given public
// key when a transaction signature is verified.
func PubKeyCondition(pubkey ed25519.PublicKey) vault.Condition {
	return vault.NewCondition("sigs", "ed25519", pubkey)
}

// UserData keeps the replay protection state of a single signer.
type UserData struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   []byte          `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	// Sequence is the value that the next signature must declare.
	Sequence int64 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *UserData) Reset()         { *m = UserData{} }
func (m *UserData) String() string { return proto.CompactTextString(m) }
func (*UserData) ProtoMessage()    {}

func (u *UserData) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", u.Metadata.Validate())
	if len(u.Pubkey) != ed25519.PublicKeySize {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrInput)
	}
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
// Before incrementing the sequence, this function is testing for a value
// overflow.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", u.Sequence, expected)
	}
	next := u.Sequence + 1

	// The greatest nonce value that a JavaScript client can represent is
	// 2^53 - 1.
	const maxSequenceValue = (1 << 53) - 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// StdSignature is a single ed25519 signature of a transaction.
type StdSignature struct {
	Sequence  int64  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *StdSignature) Reset()         { *m = StdSignature{} }
func (m *StdSignature) String() string { return proto.CompactTextString(m) }
func (*StdSignature) ProtoMessage()    {}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if len(s.Pubkey) != ed25519.PublicKeySize {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if len(s.Signature) != ed25519.SignatureSize {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

// Bucket stores UserData of every signer, indexed by the signer address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket creates the proper bucket for this extension
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket("sigs"),
	}
}

// GetOrCreate returns the UserData stored for given public key or a new one
// with the sequence set to zero.
func (b Bucket) GetOrCreate(db vault.ReadOnlyKVStore, pubkey ed25519.PublicKey) (*UserData, error) {
	var u UserData
	switch err := b.One(db, PubKeyCondition(pubkey).Address(), &u); {
	case err == nil:
		return &u, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{
			Metadata: &vault.Metadata{Schema: 1},
			Pubkey:   pubkey,
		}, nil
	default:
		return nil, errors.Wrap(err, "load user")
	}
}

// NextNonce returns the sequence value that should be used during the next
// transaction signing by given signer. Sequence counting starts with zero.
func NextNonce(db vault.ReadOnlyKVStore, pubkey ed25519.PublicKey) (int64, error) {
	u, err := NewBucket().GetOrCreate(db, pubkey)
	if err != nil {
		return 0, err
	}
	return u.Sequence, nil
}
