package gate

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

const pkgName = "gate"

// Configuration holds the state of the gate.
type Configuration struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Paused   bool            `protobuf:"varint,2,opt,name=paused,proto3" json:"paused,omitempty"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

// Validate checks the metadata.
func (c *Configuration) Validate() error {
	return errors.AppendField(nil, "Metadata", c.Metadata.Validate())
}

// IsPaused returns true if the gate is closed. A gate that was never
// configured is active.
func IsPaused(db gconf.ReadStore) (bool, error) {
	var conf Configuration
	switch err := gconf.Load(db, pkgName, &conf); {
	case errors.ErrNotFound.Is(err):
		return false, nil
	case err != nil:
		return false, errors.Wrap(err, "load gate configuration")
	}
	return conf.Paused, nil
}

func setPaused(db gconf.Store, paused bool) error {
	conf := Configuration{Metadata: &vault.Metadata{Schema: 1}, Paused: paused}
	if err := gconf.Save(db, pkgName, &conf); err != nil {
		return errors.Wrap(err, "save gate configuration")
	}
	return nil
}
