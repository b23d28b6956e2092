package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/errors"
)

// Model is impelemented by any entity that can be stored using ModelBucket.
type Model interface {
	proto.Message
	Validate() error
}

// Marshal serializes given model using the protobuf encoding. The model is
// validated first.
func Marshal(m Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "marshal %T: %s", m, err)
	}
	return raw, nil
}

// Unmarshal loads protobuf encoded data into given destination.
func Unmarshal(raw []byte, dest Model) error {
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", dest, err)
	}
	return nil
}
