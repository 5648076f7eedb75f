package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"

	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

var feeDenom = uint256.NewInt(types.FeeDenominator)

// swapFeeSplit applies the trading-fee rule to a raw canonical output:
// tradingFee = fee*dyRaw/FEE_DENOM, adminPortion =
// adminFee*tradingFee/FEE_DENOM, userNet = dyRaw - tradingFee. All
// three results are canonical-width uint256, truncating on each
// division as the rounding contract requires.
func swapFeeSplit(dyRaw *uint256.Int, fee, adminFee uint64) (userNet, tradingFee, adminPortion *uint256.Int) {
	tradingFee = new(uint256.Int).Mul(uint256.NewInt(fee), dyRaw)
	tradingFee.Div(tradingFee, feeDenom)

	adminPortion = new(uint256.Int).Mul(uint256.NewInt(adminFee), tradingFee)
	adminPortion.Div(adminPortion, feeDenom)

	userNet = new(uint256.Int).Sub(dyRaw, tradingFee)
	return userNet, tradingFee, adminPortion
}

// imbalanceFeeRate computes the elevated per-asset fee applied to
// imbalanced deposits and withdrawals: fee * N / (4 * (N-1)).
func imbalanceFeeRate(fee uint64) uint64 {
	return fee * types.NCoins / (4 * (types.NCoins - 1))
}

// idealBalance computes D1*oldBalance/D0 for a single asset: the
// native-unit balance it would hold if the deposit/withdrawal had
// moved every asset in the pool's existing proportion. Intentionally
// operates on native-unit oldBalance directly (not the canonical xp):
// the D1/D0 ratio is applied to the native balance as-is.
func idealBalance(d1, d0 *uint256.Int, oldBalance sdk.Int) sdk.Int {
	ideal := new(uint256.Int).Mul(d1, toU256(oldBalance))
	ideal.Div(ideal, d0)
	return fromU256(ideal)
}

// deviationFee applies the imbalance fee rate to |newBalance - ideal|,
// returning the native-unit fee owed on that asset.
func deviationFee(newBalance, ideal sdk.Int, imbalanceFeeBp uint64) sdk.Int {
	diff := newBalance.Sub(ideal)
	if diff.IsNegative() {
		diff = diff.Neg()
	}
	fee := diff.MulRaw(int64(imbalanceFeeBp))
	return fee.QuoRaw(types.FeeDenominator)
}
