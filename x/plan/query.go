package plan

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// RegisterQuery registers the ledger queries.
//
//   /plans/get  owner address followed by 8 bytes big endian plan id -> PlanInfo
//   /plans      owner address -> []*Plan
//   /accounts   owner address -> *Account
func RegisterQuery(qr vault.QueryRouter) {
	ledger := NewLedger()
	qr.Register("/plans/get", vault.QueryFunc(func(db vault.ReadOnlyKVStore, data []byte) (interface{}, error) {
		owner, id, err := ParsePlanRef(data)
		if err != nil {
			return nil, err
		}
		return ledger.GetPlan(db, owner, id)
	}))
	qr.Register("/plans", vault.QueryFunc(func(db vault.ReadOnlyKVStore, data []byte) (interface{}, error) {
		owner := vault.Address(data)
		if err := owner.Validate(); err != nil {
			return nil, err
		}
		return ledger.Plans(db, owner)
	}))
	qr.Register("/accounts", vault.QueryFunc(func(db vault.ReadOnlyKVStore, data []byte) (interface{}, error) {
		owner := vault.Address(data)
		if err := owner.Validate(); err != nil {
			return nil, err
		}
		return ledger.Account(db, owner)
	}))
}

// PlanRef returns the query data referencing a single plan.
func PlanRef(owner vault.Address, id uint64) []byte {
	return planKey(owner, id)
}

// ParsePlanRef decodes the data built by PlanRef.
func ParsePlanRef(data []byte) (vault.Address, uint64, error) {
	if len(data) != vault.AddressLength+8 {
		return nil, 0, errors.Wrapf(errors.ErrInput, "plan reference must be %d bytes", vault.AddressLength+8)
	}
	owner := vault.Address(data[:vault.AddressLength])
	return owner, binary.BigEndian.Uint64(data[vault.AddressLength:]), nil
}
