package treasury

import (
	"math/bits"

	"github.com/iov-one/vault"
)

// Penalty returns the part of amount withheld when withdrawing at now from
// a plan unlocking at unlock. Withdrawals at or after the unlock time are
// free. The result is floor(amount * bps / 10000) and never overflows.
func Penalty(amount uint64, bps uint32, now, unlock vault.UnixTime) (uint64, error) {
	if err := validatePenalty(bps); err != nil {
		return 0, err
	}
	if now >= unlock || bps == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(amount, uint64(bps))
	// hi < bps <= MaxPenaltyBps < 10000, so the quotient fits in 64 bits.
	q, _ := bits.Div64(hi, lo, 10000)
	return q, nil
}
