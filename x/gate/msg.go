package gate

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
)

// PauseMsg closes the gate.
type PauseMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

var _ vault.Msg = (*PauseMsg)(nil)

func (m *PauseMsg) Reset()         { *m = PauseMsg{} }
func (m *PauseMsg) String() string { return proto.CompactTextString(m) }
func (*PauseMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (PauseMsg) Path() string {
	return "gate/pause"
}

// Validate checks the metadata.
func (m *PauseMsg) Validate() error {
	return m.Metadata.Validate()
}

// UnpauseMsg opens the gate.
type UnpauseMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

var _ vault.Msg = (*UnpauseMsg)(nil)

func (m *UnpauseMsg) Reset()         { *m = UnpauseMsg{} }
func (m *UnpauseMsg) String() string { return proto.CompactTextString(m) }
func (*UnpauseMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (UnpauseMsg) Path() string {
	return "gate/unpause"
}

// Validate checks the metadata.
func (m *UnpauseMsg) Validate() error {
	return m.Metadata.Validate()
}

// Paused is emitted when the gate closes.
type Paused struct{}

// EventType implements vault.Event
func (Paused) EventType() string { return "gate/paused" }

// Unpaused is emitted when the gate opens.
type Unpaused struct{}

// EventType implements vault.Event
func (Unpaused) EventType() string { return "gate/unpaused" }
