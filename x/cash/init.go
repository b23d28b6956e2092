package cash

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address vault.Address `json:"address"`
	Amount  uint64        `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	Control *Controller
}

var _ vault.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (i Initializer) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrapf(errors.ErrInput, "read %s: %s", optKey, err)
	}
	for n, acct := range accts {
		if err := i.Control.Issue(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account #%d", n)
		}
	}
	return nil
}
