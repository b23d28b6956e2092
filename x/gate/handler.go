package gate

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/access"
)

// RegisterRoutes registers the pause and unpause handlers. Both are
// restricted to the owner.
func RegisterRoutes(r vault.Registry, auth x.Authenticator) {
	owner := app.ChainDecorators(access.NewDecorator(auth))
	r.Handle(&PauseMsg{}, owner.WithHandler(switchHandler{pause: true}))
	r.Handle(&UnpauseMsg{}, owner.WithHandler(switchHandler{pause: false}))
}

// RegisterQuery registers the gate state query as "/paused".
func RegisterQuery(qr vault.QueryRouter) {
	qr.Register("/paused", vault.QueryFunc(func(db vault.ReadOnlyKVStore, _ []byte) (interface{}, error) {
		return IsPaused(db)
	}))
}

// switchHandler moves the gate to the requested state.
type switchHandler struct {
	pause bool
}

func (h switchHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

func (h switchHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	if err := h.validate(db, tx); err != nil {
		return nil, err
	}
	if err := setPaused(db, h.pause); err != nil {
		return nil, err
	}
	var event vault.Event = Unpaused{}
	if h.pause {
		event = Paused{}
	}
	return &vault.DeliverResult{Events: []vault.Event{event}}, nil
}

func (h switchHandler) validate(db vault.KVStore, tx vault.Tx) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	paused, err := IsPaused(db)
	if err != nil {
		return err
	}
	switch {
	case h.pause && paused:
		return ErrAlreadyPaused
	case !h.pause && !paused:
		return ErrNotPaused
	}
	return nil
}
