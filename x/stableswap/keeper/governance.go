package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// requireOwner rejects any governance call from an address other than
// the pool's configured owner (admin-only operations).
func (e *Engine) requireOwner(caller sdk.AccAddress) error {
	if !caller.Equals(e.pool.Owner) {
		return sdkerrors.Wrap(types.ErrUnauthorized, "caller is not the pool owner")
	}
	return nil
}

// RampA begins moving the amplification coefficient toward newA,
// reaching it at futureTime. Owner-only.
func (e *Engine) RampA(caller sdk.AccAddress, newA uint64, futureTime, now int64) error {
	release, err := e.enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return err
	}
	if err := e.requireOwner(caller); err != nil {
		return err
	}

	oldA := e.pool.Amp.Effective(now)
	if err := e.pool.Amp.RampTo(newA, futureTime, now); err != nil {
		return err
	}

	e.events.Emit(types.NewRampAEvent(oldA, newA, now, futureTime))
	return nil
}

// StopRampA freezes the amplification coefficient at its current
// effective value, ending any in-flight ramp. Owner-only.
func (e *Engine) StopRampA(caller sdk.AccAddress, now int64) error {
	release, err := e.enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return err
	}
	if err := e.requireOwner(caller); err != nil {
		return err
	}

	e.pool.Amp.Stop(now)
	e.events.Emit(types.NewStopRampAEvent(e.pool.Amp.FutureA, now))
	return nil
}

// CommitNewFee stages a trading/admin fee change to take effect after
// the ADMIN_ACTIONS_DELAY timelock. Owner-only.
func (e *Engine) CommitNewFee(caller sdk.AccAddress, newFee, newAdminFee uint64, now int64) error {
	release, err := e.enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return err
	}
	if err := e.requireOwner(caller); err != nil {
		return err
	}

	if err := e.pool.Gov.Commit(newFee, newAdminFee, now); err != nil {
		return err
	}

	e.events.Emit(types.NewCommitNewFeeEvent(e.pool.Gov.Deadline, newFee, newAdminFee))
	return nil
}

// ApplyNewFee activates the pending fee change once its timelock has
// elapsed. Owner-only.
func (e *Engine) ApplyNewFee(caller sdk.AccAddress, now int64) error {
	release, err := e.enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return err
	}
	if err := e.requireOwner(caller); err != nil {
		return err
	}

	fee, adminFee, err := e.pool.Gov.Apply(now)
	if err != nil {
		return err
	}

	e.pool.Fee = fee
	e.pool.AdminFee = adminFee
	e.events.Emit(types.NewNewFeeEvent(fee, adminFee))
	return nil
}

// Kill sets the pool's emergency-stop flag, disabling every operation
// except RemoveLiquidity and Unkill. Owner-only. Not guarded by
// requireNotKilled: killing an already-killed pool is a no-op, not an
// error.
func (e *Engine) Kill(caller sdk.AccAddress) error {
	release, err := e.enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireOwner(caller); err != nil {
		return err
	}

	e.pool.Killed = true
	return nil
}

// Unkill clears the emergency-stop flag. Owner-only.
func (e *Engine) Unkill(caller sdk.AccAddress) error {
	release, err := e.enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireOwner(caller); err != nil {
		return err
	}

	e.pool.Killed = false
	return nil
}

// adminBalance returns the admin fee accrued on asset i: the gap
// between the ledger's true custody balance (queried for pool.Owner,
// whose address doubles as the pool's vault identity) and the book
// balance the AMM's invariant solves over. Swap and liquidity
// operations shrink the book balance by the admin portion of every fee
// without moving the underlying asset, so the gap is exactly what
// remains unclaimed (the conservation invariant).
func (e *Engine) adminBalance(i int) sdk.Int {
	pool := e.pool
	custody := e.ledger.BalanceOf(pool.Assets[i].Denom, pool.Owner)
	return custody.Sub(pool.Balances[i])
}

// WithdrawAdminFees pays the accrued admin-fee balance of every asset
// to the pool owner. Owner-only.
func (e *Engine) WithdrawAdminFees(caller sdk.AccAddress) ([types.NCoins]sdk.Int, error) {
	release, err := e.enter()
	if err != nil {
		return [types.NCoins]sdk.Int{}, err
	}
	defer release()

	if err := e.requireNotKilled(); err != nil {
		return [types.NCoins]sdk.Int{}, err
	}
	if err := e.requireOwner(caller); err != nil {
		return [types.NCoins]sdk.Int{}, err
	}

	pool := e.pool
	var paid [types.NCoins]sdk.Int
	for i := 0; i < types.NCoins; i++ {
		amt := e.adminBalance(i)
		paid[i] = amt
		if amt.IsPositive() {
			if err := e.ledger.MoveOut(pool.Assets[i].Denom, caller, amt); err != nil {
				return [types.NCoins]sdk.Int{}, err
			}
		}
	}
	return paid, nil
}
