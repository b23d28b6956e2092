package access

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

const pkgName = "access"

// Configuration holds the current owner.
type Configuration struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

// Validate returns an error if the owner is not a valid address.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if len(c.Owner) == 0 {
		errs = errors.Append(errs, errors.Field("Owner", errors.ErrNullAddress, "owner required"))
	} else {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load access configuration")
	}
	return &conf, nil
}

// Owner returns the address of the current owner.
func Owner(db gconf.ReadStore) (vault.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return conf.Owner, nil
}
