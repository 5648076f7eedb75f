package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/holiman/uint256"

	"github.com/osmosis-labs/stableswap3/ammmath"
	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// applyImbalanceFee runs the imbalance-fee pass shared by AddLiquidity
// and RemoveLiquidityImbalance: for each asset, the deviation of its
// provisional post-operation balance from the ideal
// D1-proportional balance is charged imbalanceFeeRate. The admin
// portion of that fee leaves the pool's book balance; the full fee
// (admin + LP share) is removed from the book value used to recompute
// D2, which is what actually backs the mint/burn math.
func applyImbalanceFee(
	pool *types.PoolState,
	oldBalances, provisional [types.NCoins]sdk.Int,
	d1 *uint256.Int,
	amp uint64,
) (postBalances [types.NCoins]sdk.Int, fees [types.NCoins]sdk.Int, d2 *uint256.Int) {
	d0 := ammmath.ComputeD(canonicalBalancesOf(pool, oldBalances), amp)
	rate := imbalanceFeeRate(pool.Fee)

	bookBalances := [types.NCoins]sdk.Int{}
	for i := 0; i < types.NCoins; i++ {
		ideal := idealBalance(d1, d0, oldBalances[i])
		fee := deviationFee(provisional[i], ideal, rate)
		fees[i] = fee

		adminPortion := fee.MulRaw(int64(pool.AdminFee)).QuoRaw(types.FeeDenominator)
		postBalances[i] = provisional[i].Sub(adminPortion)
		bookBalances[i] = provisional[i].Sub(fee)
	}

	d2 = ammmath.ComputeD(canonicalBalancesOf(pool, bookBalances), amp)
	return postBalances, fees, d2
}

func canonicalBalancesOf(pool *types.PoolState, balances [types.NCoins]sdk.Int) []*uint256.Int {
	xp := make([]*uint256.Int, types.NCoins)
	for i := 0; i < types.NCoins; i++ {
		xp[i] = ammmath.ToCanonical(toU256(balances[i]), toU256(pool.Assets[i].Mul))
	}
	return xp
}

// AddLiquidity is the deposit operation.
func (e *Engine) AddLiquidity(provider sdk.AccAddress, amounts [types.NCoins]sdk.Int, minMint sdk.Int, now int64) (sdk.Int, error) {
	release, err := e.enter()
	if err != nil {
		return sdk.Int{}, err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return sdk.Int{}, err
	}

	pool := e.pool
	supply := e.ledger.ShareSupply()

	if supply.IsZero() {
		for _, a := range amounts {
			if a.IsZero() {
				return sdk.Int{}, sdkerrors.Wrap(types.ErrInitialDepositIncomplete, "initial deposit must supply every asset")
			}
		}
	}

	amp := pool.Amp.Effective(now)
	oldBal := pool.Balances

	var d0 *uint256.Int
	if supply.IsZero() {
		d0 = uint256.NewInt(0)
	} else {
		d0 = ammmath.ComputeD(canonicalBalancesOf(pool, oldBal), amp)
	}

	var provisional [types.NCoins]sdk.Int
	for i := 0; i < types.NCoins; i++ {
		if amounts[i].IsPositive() {
			if err := e.ledger.MoveIn(pool.Assets[i].Denom, provider, amounts[i]); err != nil {
				return sdk.Int{}, err
			}
		}
		provisional[i] = oldBal[i].Add(amounts[i])
	}

	d1 := ammmath.ComputeD(canonicalBalancesOf(pool, provisional), amp)
	if d1.Cmp(d0) <= 0 {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrInvariantDidNotGrow, "D1 did not exceed D0")
	}

	var mint sdk.Int
	var fees [types.NCoins]sdk.Int
	var d2 *uint256.Int
	var newBalances [types.NCoins]sdk.Int

	if supply.IsZero() {
		newBalances = provisional
		d2 = d1
		mint = fromU256(d1)
	} else {
		postBalances, f, computedD2 := applyImbalanceFee(pool, oldBal, provisional, d1, amp)
		newBalances = postBalances
		fees = f
		d2 = computedD2

		diff := new(uint256.Int).Sub(d2, d0)
		mintRaw := new(uint256.Int).Mul(toU256(supply), diff)
		mintRaw.Div(mintRaw, d0)
		mint = fromU256(mintRaw)
	}

	if mint.LT(minMint) {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrSlippage, "minted shares below minimum")
	}

	pool.Balances = newBalances

	if err := e.ledger.MintShares(provider, mint); err != nil {
		return sdk.Int{}, err
	}

	e.events.Emit(types.NewAddLiquidityEvent(provider.String(), amounts, fees, fromU256(d1), supply.Add(mint)))
	return mint, nil
}

// RemoveLiquidity is the proportional withdrawal. It is permitted even
// when the pool is killed, as the last-resort exit.
func (e *Engine) RemoveLiquidity(provider sdk.AccAddress, shares sdk.Int, minAmounts [types.NCoins]sdk.Int) ([types.NCoins]sdk.Int, error) {
	release, err := e.enter()
	if err != nil {
		return [types.NCoins]sdk.Int{}, err
	}
	defer release()

	pool := e.pool
	supply := e.ledger.ShareSupply()

	var amounts [types.NCoins]sdk.Int
	for i := 0; i < types.NCoins; i++ {
		amounts[i] = pool.Balances[i].Mul(shares).Quo(supply)
		if amounts[i].LT(minAmounts[i]) {
			return [types.NCoins]sdk.Int{}, sdkerrors.Wrap(types.ErrInsufficientOutput, "withdrawal below floor")
		}
	}

	for i := 0; i < types.NCoins; i++ {
		pool.Balances[i] = pool.Balances[i].Sub(amounts[i])
		if err := e.ledger.MoveOut(pool.Assets[i].Denom, provider, amounts[i]); err != nil {
			return [types.NCoins]sdk.Int{}, err
		}
	}

	if err := e.ledger.BurnShares(provider, shares); err != nil {
		return [types.NCoins]sdk.Int{}, err
	}

	var zeroFees [types.NCoins]sdk.Int
	for i := range zeroFees {
		zeroFees[i] = sdk.ZeroInt()
	}
	e.events.Emit(types.NewRemoveLiquidityEvent(provider.String(), amounts, zeroFees, supply.Sub(shares)))
	return amounts, nil
}

// RemoveLiquidityImbalance is an exact-output-amounts withdrawal: the
// caller names the native-unit amounts to withdraw and the engine
// solves for the shares to burn, symmetric to AddLiquidity's
// imbalance-fee math run in reverse.
func (e *Engine) RemoveLiquidityImbalance(provider sdk.AccAddress, amounts [types.NCoins]sdk.Int, maxBurn sdk.Int, now int64) (sdk.Int, error) {
	release, err := e.enter()
	if err != nil {
		return sdk.Int{}, err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return sdk.Int{}, err
	}

	pool := e.pool
	supply := e.ledger.ShareSupply()
	amp := pool.Amp.Effective(now)
	oldBal := pool.Balances

	d0 := ammmath.ComputeD(canonicalBalancesOf(pool, oldBal), amp)

	var provisional [types.NCoins]sdk.Int
	for i := 0; i < types.NCoins; i++ {
		provisional[i] = oldBal[i].Sub(amounts[i])
		if provisional[i].IsNegative() {
			return sdk.Int{}, sdkerrors.Wrap(types.ErrInsufficientOutput, "withdrawal exceeds pool balance")
		}
	}

	d1 := ammmath.ComputeD(canonicalBalancesOf(pool, provisional), amp)

	postBalances, fees, d2 := applyImbalanceFee(pool, oldBal, provisional, d1, amp)

	diff := new(uint256.Int).Sub(d0, d2)
	burnRaw := new(uint256.Int).Mul(toU256(supply), diff)
	burnRaw.Div(burnRaw, d0)
	burn := fromU256(burnRaw)

	if burn.GT(maxBurn) {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrSlippage, "shares burned exceeds maximum")
	}

	pool.Balances = postBalances

	if err := e.ledger.BurnShares(provider, burn); err != nil {
		return sdk.Int{}, err
	}
	for i := 0; i < types.NCoins; i++ {
		if amounts[i].IsPositive() {
			if err := e.ledger.MoveOut(pool.Assets[i].Denom, provider, amounts[i]); err != nil {
				return sdk.Int{}, err
			}
		}
	}

	e.events.Emit(types.NewRemoveLiquidityImbalanceEvent(provider.String(), amounts, fees, fromU256(d1), supply.Sub(burn)))
	return burn, nil
}

// RemoveLiquidityOneCoin burns shares for a single output asset i. D1
// is the invariant the remaining supply should sit at; ComputeYGivenD
// finds the balance asset i must hold for the pool to
// reach D1 without moving any other asset, and the imbalance fee is
// charged on the hypothetical proportional withdrawal every asset
// would have taken, same as Curve's own single-sided withdrawal.
func (e *Engine) RemoveLiquidityOneCoin(provider sdk.AccAddress, shares sdk.Int, i int, minAmount sdk.Int, now int64) (sdk.Int, error) {
	release, err := e.enter()
	if err != nil {
		return sdk.Int{}, err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return sdk.Int{}, err
	}
	if i < 0 || i >= types.NCoins {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrInvalidIndex, "asset index out of range")
	}

	pool := e.pool
	supply := e.ledger.ShareSupply()
	amp := pool.Amp.Effective(now)
	xp := canonicalBalances(pool)

	d0 := ammmath.ComputeD(xp, amp)

	// D1 = D0 * (supply - shares) / supply
	remaining := new(uint256.Int).Sub(toU256(supply), toU256(shares))
	d1 := new(uint256.Int).Mul(d0, remaining)
	d1.Div(d1, toU256(supply))

	rate := imbalanceFeeRate(pool.Fee)
	yAtD1 := ammmath.ComputeYGivenD(i, xp, d1, amp)

	reduced := make([]*uint256.Int, types.NCoins)
	for k := 0; k < types.NCoins; k++ {
		// idealK is the proportional balance asset k would hold if
		// every asset moved together down to D1: xp[k]*D1/D0.
		idealK := new(uint256.Int).Mul(xp[k], d1)
		idealK.Div(idealK, d0)

		var dxExpected *uint256.Int
		if k == i {
			dxExpected = new(uint256.Int).Sub(idealK, yAtD1)
		} else {
			dxExpected = new(uint256.Int).Sub(xp[k], idealK)
		}
		feeAmt := new(uint256.Int).Mul(uint256.NewInt(rate), dxExpected)
		feeAmt.Div(feeAmt, feeDenom)
		reduced[k] = new(uint256.Int).Sub(xp[k], feeAmt)
	}

	yFee := ammmath.ComputeYGivenD(i, reduced, d1, amp)
	dyCanon := new(uint256.Int).Sub(reduced[i], yFee)
	if dyCanon.Sign() > 0 {
		dyCanon = new(uint256.Int).Sub(dyCanon, uint256.NewInt(1))
	}

	dyNative := fromU256(ammmath.FromCanonical(dyCanon, toU256(pool.Assets[i].Mul)))
	if dyNative.LT(minAmount) {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrSlippage, "output below minimum")
	}

	pool.Balances[i] = pool.Balances[i].Sub(dyNative)

	if err := e.ledger.BurnShares(provider, shares); err != nil {
		return sdk.Int{}, err
	}
	if err := e.ledger.MoveOut(pool.Assets[i].Denom, provider, dyNative); err != nil {
		return sdk.Int{}, err
	}

	e.events.Emit(types.NewRemoveLiquidityOneEvent(provider.String(), i, dyNative, sdk.ZeroInt(), supply.Sub(shares)))
	return dyNative, nil
}

// QuoteShare is the pure view of the share delta a deposit or
// withdrawal of amounts would produce, without moving any funds or
// mutating pool state: isDeposit true runs AddLiquidity's mint math,
// false runs RemoveLiquidityImbalance's burn math. Permitted while the
// pool is killed, since it never calls e.enter() and never touches
// the ledger.
func (e *Engine) QuoteShare(amounts [types.NCoins]sdk.Int, isDeposit bool, now int64) (sdk.Int, error) {
	pool := e.pool
	supply := e.ledger.ShareSupply()
	amp := pool.Amp.Effective(now)
	oldBal := pool.Balances

	if isDeposit {
		if supply.IsZero() {
			for _, a := range amounts {
				if a.IsZero() {
					return sdk.Int{}, sdkerrors.Wrap(types.ErrInitialDepositIncomplete, "initial deposit must supply every asset")
				}
			}
			d1 := ammmath.ComputeD(canonicalBalancesOf(pool, amounts), amp)
			return fromU256(d1), nil
		}

		var provisional [types.NCoins]sdk.Int
		for i := 0; i < types.NCoins; i++ {
			provisional[i] = oldBal[i].Add(amounts[i])
		}
		d0 := ammmath.ComputeD(canonicalBalancesOf(pool, oldBal), amp)
		d1 := ammmath.ComputeD(canonicalBalancesOf(pool, provisional), amp)
		if d1.Cmp(d0) <= 0 {
			return sdk.Int{}, sdkerrors.Wrap(types.ErrInvariantDidNotGrow, "D1 did not exceed D0")
		}
		_, _, d2 := applyImbalanceFee(pool, oldBal, provisional, d1, amp)

		diff := new(uint256.Int).Sub(d2, d0)
		mintRaw := new(uint256.Int).Mul(toU256(supply), diff)
		mintRaw.Div(mintRaw, d0)
		return fromU256(mintRaw), nil
	}

	var provisional [types.NCoins]sdk.Int
	for i := 0; i < types.NCoins; i++ {
		provisional[i] = oldBal[i].Sub(amounts[i])
		if provisional[i].IsNegative() {
			return sdk.Int{}, sdkerrors.Wrap(types.ErrInsufficientOutput, "withdrawal exceeds pool balance")
		}
	}
	d0 := ammmath.ComputeD(canonicalBalancesOf(pool, oldBal), amp)
	d1 := ammmath.ComputeD(canonicalBalancesOf(pool, provisional), amp)
	_, _, d2 := applyImbalanceFee(pool, oldBal, provisional, d1, amp)

	diff := new(uint256.Int).Sub(d0, d2)
	burnRaw := new(uint256.Int).Mul(toU256(supply), diff)
	burnRaw.Div(burnRaw, d0)
	return fromU256(burnRaw), nil
}
