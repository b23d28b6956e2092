package treasury

import (
	"math"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestPenalty(t *testing.T) {
	const (
		now    vault.UnixTime = 1000
		future vault.UnixTime = 1000 + 30*24*3600
	)

	cases := map[string]struct {
		amount uint64
		bps    uint32
		unlock vault.UnixTime
		want   uint64
	}{
		"early withdrawal at 3%": {
			amount: 1000,
			bps:    300,
			unlock: future,
			want:   30,
		},
		"unlocked": {
			amount: 1000,
			bps:    300,
			unlock: now,
			want:   0,
		},
		"unlocked in the past": {
			amount: 1000,
			bps:    300,
			unlock: now - 1,
			want:   0,
		},
		"zero rate": {
			amount: 1000,
			bps:    0,
			unlock: future,
			want:   0,
		},
		"rounded down": {
			amount: 999,
			bps:    300,
			unlock: future,
			want:   29,
		},
		"tiny amount": {
			amount: 1,
			bps:    MaxPenaltyBps,
			unlock: future,
			want:   0,
		},
		"max amount does not overflow": {
			amount: math.MaxUint64,
			bps:    MaxPenaltyBps,
			unlock: future,
			want:   math.MaxUint64 / 5,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Penalty(tc.amount, tc.bps, now, tc.unlock)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPenaltyRateTooHigh(t *testing.T) {
	_, err := Penalty(1000, MaxPenaltyBps+1, 0, 1)
	assert.IsErr(t, ErrPenaltyTooHigh, err)
}
