package ledger

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Claimable replays the participant stake history against the global
// history and returns the reward accrued between the resume point and now.
//
// The resume point is the claim checkpoint, or the first stake event when the
// participant never claimed. Every global checkpoint strictly between the
// resume point and now splits the range into sub-intervals, each paid with the
// stake ratio in effect at its start:
//
//	floor(duration * rate * stake / total)
//
// Intervals with a zero total pay nothing and remainders are not carried over.
// Intermediate products are unbounded; the result never exceeds
// (now - resume point) * rate because stake <= total in every interval.
func Claimable(account *Account, global *GlobalStakeHistory, rate sdkmath.Uint, now Ordinal) sdkmath.Uint {
	if account == nil || global == nil {
		return sdkmath.ZeroUint()
	}

	from, ok := account.resumePoint()
	if !ok || now <= from {
		return sdkmath.ZeroUint()
	}

	reward := new(big.Int)

	stake := account.history.StakeAt(from)
	total := global.TotalAt(from)

	times := global.log.times
	for i := global.log.upperBound(from); i < len(times) && times[i] < now; i++ {
		boundary := times[i]
		reward.Add(reward, intervalReward(boundary-from, rate, stake, total))

		from = boundary
		stake = account.history.StakeAt(boundary)
		total = global.TotalAt(boundary)
	}

	reward.Add(reward, intervalReward(now-from, rate, stake, total))
	return sdkmath.NewUintFromBigInt(reward)
}

func intervalReward(duration Ordinal, rate, stake, total sdkmath.Uint) *big.Int {
	if duration == 0 || total.IsZero() || stake.IsZero() || rate.IsZero() {
		return new(big.Int)
	}

	r := new(big.Int).SetUint64(uint64(duration))
	r.Mul(r, rate.BigInt())
	r.Mul(r, stake.BigInt())
	return r.Quo(r, total.BigInt())
}
