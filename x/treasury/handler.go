package treasury

import (
	"strconv"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/access"
)

// RegisterRoutes registers all parameter setters, restricted to the owner.
func RegisterRoutes(r vault.Registry, auth x.Authenticator) {
	owner := app.ChainDecorators(access.NewDecorator(auth))
	r.Handle(&SetMaxBalancePerUserMsg{}, owner.WithHandler(setHandler{apply: setMaxBalance}))
	r.Handle(&SetEarlyWithdrawPenaltyBpsMsg{}, owner.WithHandler(setHandler{apply: setPenalty}))
	r.Handle(&SetTreasuryMsg{}, owner.WithHandler(setHandler{apply: setTreasury}))
}

// RegisterQuery registers the current configuration query as "/treasury".
func RegisterQuery(qr vault.QueryRouter) {
	qr.Register("/treasury", vault.QueryFunc(func(db vault.ReadOnlyKVStore, _ []byte) (interface{}, error) {
		return Load(db)
	}))
}

// applyFunc updates conf with the content of msg and returns the changed
// field description. It fails if msg is of an unexpected type.
type applyFunc func(conf *Configuration, msg vault.Msg) (ConfigurationChanged, error)

func setMaxBalance(conf *Configuration, msg vault.Msg) (ConfigurationChanged, error) {
	m, ok := msg.(*SetMaxBalancePerUserMsg)
	if !ok {
		return ConfigurationChanged{}, errors.Wrapf(errors.ErrType, "%T", msg)
	}
	conf.MaxBalancePerUser = m.MaxBalancePerUser
	return ConfigurationChanged{
		Field: "maxBalancePerUser",
		Value: strconv.FormatUint(m.MaxBalancePerUser, 10),
	}, nil
}

func setPenalty(conf *Configuration, msg vault.Msg) (ConfigurationChanged, error) {
	m, ok := msg.(*SetEarlyWithdrawPenaltyBpsMsg)
	if !ok {
		return ConfigurationChanged{}, errors.Wrapf(errors.ErrType, "%T", msg)
	}
	conf.EarlyWithdrawPenaltyBps = m.PenaltyBps
	return ConfigurationChanged{
		Field: "earlyWithdrawPenaltyBps",
		Value: strconv.FormatUint(uint64(m.PenaltyBps), 10),
	}, nil
}

func setTreasury(conf *Configuration, msg vault.Msg) (ConfigurationChanged, error) {
	m, ok := msg.(*SetTreasuryMsg)
	if !ok {
		return ConfigurationChanged{}, errors.Wrapf(errors.ErrType, "%T", msg)
	}
	conf.Treasury = m.Treasury
	return ConfigurationChanged{
		Field: "treasury",
		Value: m.Treasury.String(),
	}, nil
}

// setHandler changes one parameter of the configuration.
type setHandler struct {
	apply applyFunc
}

func (h setHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, _, err := h.update(db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

func (h setHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	conf, event, err := h.update(db, tx)
	if err != nil {
		return nil, err
	}
	if err := gconf.Save(db, pkgName, conf); err != nil {
		return nil, errors.Wrap(err, "save treasury configuration")
	}
	return &vault.DeliverResult{Events: []vault.Event{event}}, nil
}

// update returns the configuration with the change applied, without
// saving it.
func (h setHandler) update(db vault.KVStore, tx vault.Tx) (*Configuration, ConfigurationChanged, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, ConfigurationChanged{}, errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, ConfigurationChanged{}, errors.Wrap(err, "invalid message")
	}
	conf, err := Load(db)
	if err != nil {
		return nil, ConfigurationChanged{}, err
	}
	event, err := h.apply(conf, msg)
	if err != nil {
		return nil, ConfigurationChanged{}, err
	}
	return conf, event, nil
}
