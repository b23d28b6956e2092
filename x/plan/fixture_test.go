package plan

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/gconf"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/iov-one/vault/x/cash"
	"github.com/iov-one/vault/x/reentry"
	"github.com/iov-one/vault/x/treasury"
)

const (
	day        = 24 * time.Hour
	capacity   = 5000
	penaltyBps = 300
)

var blockTime = time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)

// fixture is a plan ledger with alice holding 10000 in her wallet.
type fixture struct {
	db       vault.CacheableKVStore
	router   *app.Router
	control  *cash.Controller
	alice    vault.Condition
	treasury vault.Address
	auth     *vaulttest.Auth
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:       store.MemStore(),
		router:   app.NewRouter(),
		control:  cash.NewController(),
		alice:    vaulttest.NewCondition(),
		treasury: vaulttest.RandomAddr(),
	}
	f.auth = &vaulttest.Auth{Signer: f.alice}

	conf := treasury.Configuration{
		Metadata:                &vault.Metadata{Schema: 1},
		MaxBalancePerUser:       capacity,
		EarlyWithdrawPenaltyBps: penaltyBps,
		Treasury:                f.treasury,
	}
	assert.Nil(t, gconf.Save(f.db, "treasury", &conf))
	assert.Nil(t, f.control.Issue(f.db, f.alice.Address(), 10000))

	RegisterCustody(f.control)
	RegisterRoutes(f.router, f.auth, f.control, reentry.NewLock())
	return f
}

func (f *fixture) ctx(at time.Time) vault.Context {
	return vault.WithBlockTime(context.Background(), at)
}

func (f *fixture) deliver(at time.Time, msg vault.Msg) (*vault.DeliverResult, error) {
	return f.router.Deliver(f.ctx(at), f.db, &vaulttest.Tx{Msg: msg})
}

// createPlan opens a plan unlocking after given duration and funds it.
func (f *fixture) createPlan(t *testing.T, lock time.Duration, amount uint64) uint64 {
	t.Helper()
	res, err := f.deliver(blockTime, &CreatePlanMsg{
		Metadata:   &vault.Metadata{Schema: 1},
		Owner:      f.alice.Address(),
		UnlockTime: vault.AsUnixTime(blockTime.Add(lock)),
	})
	assert.Nil(t, err)
	id, err := DecodeID(res.Data)
	assert.Nil(t, err)
	if amount > 0 {
		_, err := f.deliver(blockTime, &DepositMsg{
			Metadata: &vault.Metadata{Schema: 1},
			Owner:    f.alice.Address(),
			PlanID:   id,
			Amount:   amount,
		})
		assert.Nil(t, err)
	}
	return id
}

func (f *fixture) balance(t *testing.T, addr vault.Address) uint64 {
	t.Helper()
	b, err := f.control.Balance(f.db, addr)
	assert.Nil(t, err)
	return b
}

// assertInvariants checks that the account total equals the sum of all plan
// balances and stays within the cap.
func (f *fixture) assertInvariants(t *testing.T, owner vault.Address) {
	t.Helper()
	l := NewLedger()
	acct, err := l.Account(f.db, owner)
	assert.Nil(t, err)
	plans, err := l.Plans(f.db, owner)
	assert.Nil(t, err)

	var sum uint64
	for i, p := range plans {
		assert.Equal(t, uint64(i), p.ID)
		sum += p.Balance
	}
	assert.Equal(t, acct.TotalBalance, sum)
	if acct.TotalBalance > capacity {
		t.Fatalf("total balance %d exceeds the cap", acct.TotalBalance)
	}
	assert.Equal(t, acct.TotalBalance, f.balance(t, CustodyAddress))
}
