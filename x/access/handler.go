package access

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
	"github.com/iov-one/vault/x"
)

// RegisterRoutes registers the ownership transfer handler, guarded by the
// owner Decorator.
func RegisterRoutes(r vault.Registry, auth x.Authenticator) {
	r.Handle(&TransferOwnershipMsg{}, app.ChainDecorators(
		NewDecorator(auth),
	).WithHandler(transferOwnershipHandler{}))
}

// RegisterQuery registers the current owner query as "/owner".
func RegisterQuery(qr vault.QueryRouter) {
	qr.Register("/owner", vault.QueryFunc(func(db vault.ReadOnlyKVStore, _ []byte) (interface{}, error) {
		return Owner(db)
	}))
}

type transferOwnershipHandler struct{}

func (h transferOwnershipHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	var msg TransferOwnershipMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &vault.CheckResult{}, nil
}

func (h transferOwnershipHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	var msg TransferOwnershipMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	prev := conf.Owner
	conf.Owner = msg.NewOwner
	if err := gconf.Save(db, pkgName, conf); err != nil {
		return nil, errors.Wrap(err, "save access configuration")
	}
	return &vault.DeliverResult{
		Events: []vault.Event{OwnershipTransferred{Previous: prev, New: msg.NewOwner}},
	}, nil
}
