package gate

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

// Initializer loads the gate state from genesis. Without a conf.gate entry
// the application starts active.
type Initializer struct{}

var _ vault.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.gate, if any.
func (Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	err := gconf.InitConfig(db, opts, pkgName, &Configuration{})
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
