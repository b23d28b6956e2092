package plan

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/x/treasury"
)

// CustodyAddress holds all deposited value.
var CustodyAddress = treasury.CustodyAddress

// Ledger reads and writes plans together with the account of their owner.
type Ledger struct {
	plans    orm.ModelBucket
	accounts orm.ModelBucket
}

// NewLedger returns a ledger using the default buckets.
func NewLedger() *Ledger {
	return &Ledger{
		plans:    NewPlanBucket(),
		accounts: NewAccountBucket(),
	}
}

// Account returns the account of given owner. An owner without plans has a
// zero account.
func (l *Ledger) Account(db vault.ReadOnlyKVStore, owner vault.Address) (*Account, error) {
	var acct Account
	switch err := l.accounts.One(db, owner, &acct); {
	case err == nil:
		return &acct, nil
	case errors.ErrNotFound.Is(err):
		return &Account{Metadata: &vault.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "load account")
	}
}

// Plan returns the plan with given id. It fails with ErrInvalidPlan if no
// such plan was created.
func (l *Ledger) Plan(db vault.ReadOnlyKVStore, owner vault.Address, id uint64) (*Plan, error) {
	var p Plan
	switch err := l.plans.One(db, planKey(owner, id), &p); {
	case err == nil:
		return &p, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrInvalidPlan, "plan %d of %s", id, owner)
	default:
		return nil, errors.Wrap(err, "load plan")
	}
}

// GetPlan returns the public state of a plan. A missing plan is not an
// error.
func (l *Ledger) GetPlan(db vault.ReadOnlyKVStore, owner vault.Address, id uint64) (PlanInfo, error) {
	p, err := l.Plan(db, owner, id)
	switch {
	case err == nil:
		return PlanInfo{
			Balance:    p.Balance,
			UnlockTime: p.UnlockTime,
			Exists:     true,
			Label:      p.Label,
		}, nil
	case ErrInvalidPlan.Is(err):
		return PlanInfo{}, nil
	default:
		return PlanInfo{}, err
	}
}

// Plans returns all plans of given owner in id order.
func (l *Ledger) Plans(db vault.ReadOnlyKVStore, owner vault.Address) ([]*Plan, error) {
	acct, err := l.Account(db, owner)
	if err != nil {
		return nil, err
	}
	plans := make([]*Plan, 0, acct.PlanCount)
	for id := uint64(0); id < acct.PlanCount; id++ {
		p, err := l.Plan(db, owner, id)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrHuman, "plan %d of %d missing: %s", id, acct.PlanCount, err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Create stores a new empty plan with the next free id.
func (l *Ledger) Create(db vault.KVStore, owner vault.Address, unlock vault.UnixTime, label string) (*Plan, error) {
	acct, err := l.Account(db, owner)
	if err != nil {
		return nil, err
	}
	p := &Plan{
		Metadata:   &vault.Metadata{Schema: 1},
		Owner:      owner,
		ID:         acct.PlanCount,
		UnlockTime: unlock,
		Label:      label,
	}
	acct.PlanCount++
	if err := l.save(db, p, acct); err != nil {
		return nil, err
	}
	return p, nil
}

// SetLabel changes the label of an existing plan.
func (l *Ledger) SetLabel(db vault.KVStore, owner vault.Address, id uint64, label string) error {
	p, err := l.Plan(db, owner, id)
	if err != nil {
		return err
	}
	p.Label = label
	if err := l.plans.Put(db, planKey(owner, id), p); err != nil {
		return errors.Wrap(err, "save plan")
	}
	return nil
}

// Credit adds amount to the plan and to the owner total balance. The new
// total balance must not exceed maxBalance.
func (l *Ledger) Credit(db vault.KVStore, owner vault.Address, id uint64, amount, maxBalance uint64) error {
	p, acct, err := l.planAndAccount(db, owner, id)
	if err != nil {
		return err
	}
	total := acct.TotalBalance + amount
	if total < acct.TotalBalance || total > maxBalance {
		return errors.Wrapf(ErrMaxBalanceReached, "total %d + %d exceeds %d", acct.TotalBalance, amount, maxBalance)
	}
	acct.TotalBalance = total
	// Plan balance never exceeds the total, so it cannot overflow.
	p.Balance += amount
	return l.save(db, p, acct)
}

// Debit removes amount from the plan and from the owner total balance. It
// returns the plan as it was before the change.
func (l *Ledger) Debit(db vault.KVStore, owner vault.Address, id uint64, amount uint64) (*Plan, error) {
	p, acct, err := l.planAndAccount(db, owner, id)
	if err != nil {
		return nil, err
	}
	if p.Balance < amount {
		return nil, errors.Wrapf(ErrInsufficientBalance, "want %d, have %d", amount, p.Balance)
	}
	if acct.TotalBalance < p.Balance {
		return nil, errors.Wrapf(errors.ErrHuman, "total balance %d lower than plan balance %d", acct.TotalBalance, p.Balance)
	}
	before := *p
	p.Balance -= amount
	acct.TotalBalance -= amount
	if err := l.save(db, p, acct); err != nil {
		return nil, err
	}
	return &before, nil
}

func (l *Ledger) planAndAccount(db vault.KVStore, owner vault.Address, id uint64) (*Plan, *Account, error) {
	p, err := l.Plan(db, owner, id)
	if err != nil {
		return nil, nil, err
	}
	acct, err := l.Account(db, owner)
	if err != nil {
		return nil, nil, err
	}
	return p, acct, nil
}

func (l *Ledger) save(db vault.KVStore, p *Plan, acct *Account) error {
	if err := l.plans.Put(db, planKey(p.Owner, p.ID), p); err != nil {
		return errors.Wrap(err, "save plan")
	}
	if err := l.accounts.Put(db, p.Owner, acct); err != nil {
		return errors.Wrap(err, "save account")
	}
	return nil
}
