package treasury

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/gconf"
)

// Initializer loads the parameters from genesis. The treasury address is
// required.
type Initializer struct{}

var _ vault.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.treasury.
func (Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	return gconf.InitConfig(db, opts, pkgName, &Configuration{})
}
