package plan

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestQueries(t *testing.T) {
	f := newFixture(t)
	f.createPlan(t, day, 100)
	f.createPlan(t, 2*day, 250)
	owner := f.alice.Address()

	qr := vault.NewQueryRouter()
	RegisterQuery(qr)

	query := func(path string, data []byte) (interface{}, error) {
		h, err := qr.Handler(path)
		assert.Nil(t, err)
		return h.Query(f.db, data)
	}

	got, err := query("/plans/get", PlanRef(owner, 1))
	assert.Nil(t, err)
	assert.Equal(t, PlanInfo{Balance: 250, UnlockTime: vault.AsUnixTime(blockTime.Add(2 * day)), Exists: true}, got)

	got, err = query("/plans/get", PlanRef(owner, 2))
	assert.Nil(t, err)
	assert.Equal(t, PlanInfo{}, got)

	got, err = query("/plans/get", PlanRef(vaulttest.RandomAddr(), 0))
	assert.Nil(t, err)
	assert.Equal(t, PlanInfo{}, got)

	_, err = query("/plans/get", owner)
	assert.IsErr(t, errors.ErrInput, err)

	got, err = query("/accounts", owner)
	assert.Nil(t, err)
	acct := got.(*Account)
	assert.Equal(t, uint64(2), acct.PlanCount)
	assert.Equal(t, uint64(350), acct.TotalBalance)

	got, err = query("/plans", owner)
	assert.Nil(t, err)
	plans := got.([]*Plan)
	assert.Equal(t, 2, len(plans))
	assert.Equal(t, uint64(100), plans[0].Balance)
	assert.Equal(t, uint64(250), plans[1].Balance)

	_, err = query("/plans", nil)
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestPlanRef(t *testing.T) {
	owner := vaulttest.RandomAddr()
	gotOwner, gotID, err := ParsePlanRef(PlanRef(owner, 1<<40))
	assert.Nil(t, err)
	assert.Equal(t, owner, gotOwner)
	assert.Equal(t, uint64(1<<40), gotID)
}
