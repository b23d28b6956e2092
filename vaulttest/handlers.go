package vaulttest

import "github.com/iov-one/vault"

// Handler is a mock implementation of the vault.Handler interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult vault.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult vault.DeliverResult
	DeliverErr    error
}

var _ vault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the key, value pair and returns the error (may be nil)
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ vault.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &vault.CheckResult{}, nil
}

func (h WriteHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &vault.DeliverResult{}, nil
}

// PanicHandler always panics with the given value when called.
type PanicHandler struct {
	Value interface{}
}

var _ vault.Handler = PanicHandler{}

func (p PanicHandler) Check(vault.Context, vault.KVStore, vault.Tx) (*vault.CheckResult, error) {
	panic(p.Value)
}

func (p PanicHandler) Deliver(vault.Context, vault.KVStore, vault.Tx) (*vault.DeliverResult, error) {
	panic(p.Value)
}
