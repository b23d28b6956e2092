package plan

import "github.com/iov-one/vault"

// PlanCreated is emitted when a new plan is opened.
type PlanCreated struct {
	Owner      vault.Address
	PlanID     uint64
	UnlockTime vault.UnixTime
	Label      string
}

// EventType implements vault.Event
func (PlanCreated) EventType() string { return "plan/created" }

// PlanLabelUpdated is emitted when a plan label changes.
type PlanLabelUpdated struct {
	Owner  vault.Address
	PlanID uint64
	Label  string
}

// EventType implements vault.Event
func (PlanLabelUpdated) EventType() string { return "plan/label_updated" }

// Deposited is emitted when value is added to a plan.
type Deposited struct {
	Owner  vault.Address
	PlanID uint64
	Amount uint64
}

// EventType implements vault.Event
func (Deposited) EventType() string { return "plan/deposited" }

// Withdrawn is emitted when value leaves a plan. The owner received
// Amount - Penalty and the treasury received Penalty.
type Withdrawn struct {
	Owner   vault.Address
	PlanID  uint64
	Amount  uint64
	Penalty uint64
}

// EventType implements vault.Event
func (Withdrawn) EventType() string { return "plan/withdrawn" }
