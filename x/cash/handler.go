package cash

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r vault.Registry, auth x.Authenticator, control *Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, control))
}

// RegisterQuery will register the wallet balance query as "/wallets". The
// request data is the wallet owner address.
func RegisterQuery(qr vault.QueryRouter, control *Controller) {
	qr.Register("/wallets", vault.QueryFunc(func(db vault.ReadOnlyKVStore, data []byte) (interface{}, error) {
		addr := vault.Address(data)
		if err := addr.Validate(); err != nil {
			return nil, err
		}
		return control.Balance(db, addr)
	}))
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control *Controller
}

var _ vault.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg
func NewSendHandler(auth x.Authenticator, control *Controller) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
	}
}

// Check just verifies it is properly formed and signed.
func (h SendHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver moves the tokens from source to receiver if
// all preconditions are met
func (h SendHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Transfer(ctx, store, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx vault.Context, tx vault.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	// Make sure we have permission from the source.
	if err := x.RequireSigner(ctx, h.auth, "account owner", msg.Source); err != nil {
		return nil, err
	}
	return &msg, nil
}
