package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"

	"github.com/osmosis-labs/stableswap3/ammmath"
	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// canonicalBalances scales every native-unit balance in pool up to
// canonical 18-decimal units, the xp vector ammmath's solvers operate
// on.
func canonicalBalances(pool *types.PoolState) []*uint256.Int {
	xp := make([]*uint256.Int, types.NCoins)
	for i := 0; i < types.NCoins; i++ {
		xp[i] = ammmath.ToCanonical(toU256(pool.Balances[i]), toU256(pool.Assets[i].Mul))
	}
	return xp
}

// EffectiveA returns the pool's amplification coefficient at now.
func (e *Engine) EffectiveA(now int64) uint64 {
	return e.pool.Amp.Effective(now)
}

// VirtualPrice is the pure view D*PRECISION/supply, or 0 when supply is
// zero. It reads balances and amp from a single snapshot, so it takes
// the share supply read from the ledger as an explicit argument rather
// than re-reading it mid-computation.
func VirtualPrice(pool *types.PoolState, now int64, supply sdk.Int) sdk.Int {
	if supply.IsZero() {
		return sdk.ZeroInt()
	}
	xp := canonicalBalances(pool)
	amp := pool.Amp.Effective(now)
	d := ammmath.ComputeD(xp, amp)

	vp := new(uint256.Int).Mul(d, toU256(types.PoolPrecision))
	vp.Div(vp, toU256(supply))
	return fromU256(vp)
}

func (e *Engine) VirtualPrice(now int64) sdk.Int {
	return VirtualPrice(e.pool, now, e.ledger.ShareSupply())
}
