package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/holiman/uint256"

	"github.com/osmosis-labs/stableswap3/ammmath"
	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// validateSwapIndices applies the InvalidIndex/SameCoin checks shared
// by quote and exchange.
func validateSwapIndices(i, j int) error {
	if i < 0 || i >= types.NCoins || j < 0 || j >= types.NCoins {
		return sdkerrors.Wrap(types.ErrInvalidIndex, "asset index out of range")
	}
	if i == j {
		return sdkerrors.Wrap(types.ErrSameCoin, "input and output asset are identical")
	}
	return nil
}

// rawCanonicalOutput runs the shared Newton step for quote and
// exchange: given pre-trade canonical balances xp, asset i's balance
// becoming xNew, solves for asset j's new balance and returns the raw
// canonical output dy_c = xp[j] - y - 1, guarding the 1-unit safety
// margin against uint256 wraparound at the tiny-trade boundary
// ("loss of the -1 safety term at tiny scales").
func rawCanonicalOutput(i, j int, xNew *uint256.Int, xp []*uint256.Int, amp uint64) *uint256.Int {
	y := ammmath.ComputeY(i, j, xNew, xp, amp)
	floor := new(uint256.Int).Sub(xp[j], uint256.NewInt(1))
	if y.Cmp(floor) >= 0 {
		return uint256.NewInt(0)
	}
	dy := new(uint256.Int).Sub(floor, y)
	return dy
}

// Quote is the pure view of the native-unit output of swapping dx of
// asset i for asset j, net of trading fee, without mutating any state.
func (e *Engine) Quote(i, j int, dx sdk.Int, now int64) (sdk.Int, error) {
	if err := validateSwapIndices(i, j); err != nil {
		return sdk.Int{}, err
	}
	pool := e.pool
	amp := pool.Amp.Effective(now)
	xp := canonicalBalances(pool)

	dxCanon := ammmath.ToCanonical(toU256(dx), toU256(pool.Assets[i].Mul))
	xNew := new(uint256.Int).Add(xp[i], dxCanon)

	dyRaw := rawCanonicalOutput(i, j, xNew, xp, amp)
	netCanon, _, _ := swapFeeSplit(dyRaw, pool.Fee, pool.AdminFee)

	native := ammmath.FromCanonical(netCanon, toU256(pool.Assets[j].Mul))
	return fromU256(native), nil
}

// Exchange is the state-mutating swap.
func (e *Engine) Exchange(buyer sdk.AccAddress, i, j int, dx sdk.Int, minDy sdk.Int, now int64) (sdk.Int, error) {
	release, err := e.enter()
	if err != nil {
		return sdk.Int{}, err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return sdk.Int{}, err
	}
	if err := validateSwapIndices(i, j); err != nil {
		return sdk.Int{}, err
	}
	if !dx.IsPositive() {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrZeroAmount, "dx must be positive")
	}

	pool := e.pool
	amp := pool.Amp.Effective(now)
	xp := canonicalBalances(pool)

	if err := e.ledger.MoveIn(pool.Assets[i].Denom, buyer, dx); err != nil {
		return sdk.Int{}, err
	}

	dxCanon := ammmath.ToCanonical(toU256(dx), toU256(pool.Assets[i].Mul))
	xNew := new(uint256.Int).Add(xp[i], dxCanon)

	dyRaw := rawCanonicalOutput(i, j, xNew, xp, amp)
	userNetCanon, _, adminPortionCanon := swapFeeSplit(dyRaw, pool.Fee, pool.AdminFee)

	dyNative := fromU256(ammmath.FromCanonical(userNetCanon, toU256(pool.Assets[j].Mul)))
	adminFeeNative := fromU256(ammmath.FromCanonical(adminPortionCanon, toU256(pool.Assets[j].Mul)))

	if dyNative.LT(minDy) {
		return sdk.Int{}, sdkerrors.Wrap(types.ErrSlippage, "output below minimum")
	}

	pool.Balances[i] = pool.Balances[i].Add(dx)
	pool.Balances[j] = pool.Balances[j].Sub(dyNative).Sub(adminFeeNative)

	if err := e.ledger.MoveOut(pool.Assets[j].Denom, buyer, dyNative); err != nil {
		return sdk.Int{}, err
	}

	e.events.Emit(types.NewTokenExchangeEvent(buyer.String(), i, dx, j, dyNative))
	return dyNative, nil
}
