package access

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/gconf"
)

// Initializer loads the owner from genesis.
type Initializer struct{}

var _ vault.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.access. The owner
// is required.
func (Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	return gconf.InitConfig(db, opts, pkgName, &Configuration{})
}
