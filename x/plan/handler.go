package plan

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/cash"
	"github.com/iov-one/vault/x/gate"
	"github.com/iov-one/vault/x/reentry"
	"github.com/iov-one/vault/x/treasury"
)

// RegisterRoutes registers all plan handlers. Every handler is refused
// while the gate is paused. Handlers moving value share given lock.
func RegisterRoutes(r vault.Registry, auth x.Authenticator, control *cash.Controller, lock reentry.Lock) {
	ledger := NewLedger()
	user := app.ChainDecorators(gate.NewDecorator())
	moving := user.Chain(lock)

	r.Handle(&CreatePlanMsg{}, user.WithHandler(CreatePlanHandler{auth: auth, ledger: ledger}))
	r.Handle(&UpdatePlanLabelMsg{}, user.WithHandler(UpdatePlanLabelHandler{auth: auth, ledger: ledger}))
	r.Handle(&DepositMsg{}, moving.WithHandler(DepositHandler{auth: auth, ledger: ledger, control: control}))
	r.Handle(&WithdrawMsg{}, moving.WithHandler(WithdrawHandler{auth: auth, ledger: ledger, control: control}))
}

// RegisterCustody makes the custody account refuse all value that does not
// arrive with a deposit.
func RegisterCustody(control *cash.Controller) {
	control.RegisterReceiver(CustodyAddress, cash.RejectAll)
}

// CreatePlanHandler opens new plans.
type CreatePlanHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ vault.Handler = CreatePlanHandler{}

// Check verifies the message is valid and signed by the owner.
func (h CreatePlanHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver stores a new plan and returns its id as 8 bytes big endian.
func (h CreatePlanHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	p, err := h.ledger.Create(db, msg.Owner, msg.UnlockTime, msg.Label)
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{
		Data: encodeID(p.ID),
		Events: []vault.Event{PlanCreated{
			Owner:      p.Owner,
			PlanID:     p.ID,
			UnlockTime: p.UnlockTime,
			Label:      p.Label,
		}},
	}, nil
}

func (h CreatePlanHandler) validate(ctx vault.Context, tx vault.Tx) (*CreatePlanMsg, error) {
	var msg CreatePlanMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, "plan owner", msg.Owner); err != nil {
		return nil, err
	}
	now, err := vault.BlockUnixTime(ctx)
	if err != nil {
		return nil, err
	}
	if msg.UnlockTime <= now {
		return nil, errors.Wrapf(ErrInvalidUnlockTime, "unlock time %d not after %d", msg.UnlockTime, now)
	}
	return &msg, nil
}

// UpdatePlanLabelHandler changes plan labels.
type UpdatePlanLabelHandler struct {
	auth   x.Authenticator
	ledger *Ledger
}

var _ vault.Handler = UpdatePlanLabelHandler{}

// Check verifies the message is valid and the plan exists.
func (h UpdatePlanLabelHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ledger.Plan(db, msg.Owner, msg.PlanID); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver stores the new label.
func (h UpdatePlanLabelHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.SetLabel(db, msg.Owner, msg.PlanID, msg.Label); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{
		Events: []vault.Event{PlanLabelUpdated{Owner: msg.Owner, PlanID: msg.PlanID, Label: msg.Label}},
	}, nil
}

func (h UpdatePlanLabelHandler) validate(ctx vault.Context, tx vault.Tx) (*UpdatePlanLabelMsg, error) {
	var msg UpdatePlanLabelMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, "plan owner", msg.Owner); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DepositHandler moves value from the owner wallet into a plan.
type DepositHandler struct {
	auth    x.Authenticator
	ledger  *Ledger
	control *cash.Controller
}

var _ vault.Handler = DepositHandler{}

// Check verifies the plan exists and the cap allows the deposit.
func (h DepositHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ledger.Credit(db, msg.Owner, msg.PlanID, msg.Amount, conf.MaxBalancePerUser); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver credits the plan and collects the value into the custody account.
// Nothing is written if the owner cannot pay.
func (h DepositHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	err = staged(db, func(stage vault.KVStore) error {
		if err := h.ledger.Credit(stage, msg.Owner, msg.PlanID, msg.Amount, conf.MaxBalancePerUser); err != nil {
			return err
		}
		return h.control.Collect(stage, msg.Owner, CustodyAddress, msg.Amount)
	})
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{
		Events: []vault.Event{Deposited{Owner: msg.Owner, PlanID: msg.PlanID, Amount: msg.Amount}},
	}, nil
}

func (h DepositHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*DepositMsg, *treasury.Configuration, error) {
	var msg DepositMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, "plan owner", msg.Owner); err != nil {
		return nil, nil, err
	}
	conf, err := treasury.Load(db)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

// WithdrawHandler moves value from a plan back to its owner.
type WithdrawHandler struct {
	auth    x.Authenticator
	ledger  *Ledger
	control *cash.Controller
}

var _ vault.Handler = WithdrawHandler{}

// Check verifies the plan holds the requested amount.
func (h WithdrawHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ledger.Debit(db, msg.Owner, msg.PlanID, msg.Amount); err != nil {
		return nil, err
	}
	return &vault.CheckResult{}, nil
}

// Deliver debits the plan and pays out the amount, minus the penalty for an
// early withdrawal that goes to the treasury. The plan is debited in a
// staging area before any value moves, so that a receiver observes the new
// balance. Nothing is written if any transfer fails.
func (h WithdrawHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := vault.BlockUnixTime(ctx)
	if err != nil {
		return nil, err
	}

	var penalty uint64
	err = staged(db, func(stage vault.KVStore) error {
		before, err := h.ledger.Debit(stage, msg.Owner, msg.PlanID, msg.Amount)
		if err != nil {
			return err
		}
		penalty, err = treasury.Penalty(msg.Amount, conf.EarlyWithdrawPenaltyBps, now, before.UnlockTime)
		if err != nil {
			return err
		}
		if penalty > 0 {
			if err := h.control.Transfer(ctx, stage, CustodyAddress, conf.Treasury, penalty); err != nil {
				return errors.Wrap(err, "penalty")
			}
		}
		if payout := msg.Amount - penalty; payout > 0 {
			if err := h.control.Transfer(ctx, stage, CustodyAddress, msg.Owner, payout); err != nil {
				return errors.Wrap(err, "payout")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordWithdrawal(penalty)
	return &vault.DeliverResult{
		Events: []vault.Event{Withdrawn{
			Owner:   msg.Owner,
			PlanID:  msg.PlanID,
			Amount:  msg.Amount,
			Penalty: penalty,
		}},
	}, nil
}

func (h WithdrawHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*WithdrawMsg, *treasury.Configuration, error) {
	var msg WithdrawMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireSigner(ctx, h.auth, "plan owner", msg.Owner); err != nil {
		return nil, nil, err
	}
	conf, err := treasury.Load(db)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

// staged runs fn against a cache of db and writes the cache only if fn
// succeeds.
func staged(db vault.KVStore, fn func(vault.KVStore) error) error {
	cstore, ok := db.(vault.CacheableKVStore)
	if !ok {
		return fn(db)
	}
	stage := cstore.CacheWrap()
	if err := fn(stage); err != nil {
		stage.Discard()
		return err
	}
	if err := stage.Write(); err != nil {
		return errors.Wrap(err, "write stage")
	}
	return nil
}
