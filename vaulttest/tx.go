package vaulttest

import (
	"github.com/iov-one/vault"
)

// Tx represents a vault transaction.
// Transaction represents a single message that is to be processed within this
// transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg vault.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ vault.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (vault.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a vault message.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string `protobuf:"bytes,1,opt,name=route_path,proto3" json:"route_path,omitempty"`
	// Err if set is returned by the Validate method.
	Err error `json:"-"`
}

var _ vault.Msg = (*Msg)(nil)

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "vaulttest.Msg " + m.RoutePath }
func (*Msg) ProtoMessage()    {}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
