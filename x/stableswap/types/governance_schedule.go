package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

// GovernanceSchedule is the time-locked commit/apply state for trading
// and admin fee changes. Deadline == 0 means no pending
// change.
type GovernanceSchedule struct {
	Deadline       int64
	FutureFee      uint64
	FutureAdminFee uint64
}

// Commit stages a fee change to take effect ADMIN_ACTIONS_DELAY
// seconds from now. Fails if a change is already pending or the fees
// are out of bounds.
func (g *GovernanceSchedule) Commit(newFee, newAdminFee uint64, now int64) error {
	if g.Deadline != 0 {
		return sdkerrors.Wrap(ErrPendingActionExists, "a fee change is already pending")
	}
	if newFee > MaxFee {
		return sdkerrors.Wrap(ErrInvalidConfig, "fee exceeds MAX_FEE")
	}
	if newAdminFee > MaxAdminFee {
		return sdkerrors.Wrap(ErrInvalidConfig, "admin fee exceeds MAX_ADMIN_FEE")
	}
	g.Deadline = now + AdminActionsDelay
	g.FutureFee = newFee
	g.FutureAdminFee = newAdminFee
	return nil
}

// Apply copies the pending fee values into the returned pair and
// clears the pending change, once the timelock has elapsed.
func (g *GovernanceSchedule) Apply(now int64) (fee, adminFee uint64, err error) {
	if g.Deadline == 0 {
		return 0, 0, sdkerrors.Wrap(ErrNoPendingAction, "no fee change pending")
	}
	if now < g.Deadline {
		return 0, 0, sdkerrors.Wrap(ErrDelayNotMet, "timelock has not elapsed")
	}
	fee, adminFee = g.FutureFee, g.FutureAdminFee
	g.Deadline = 0
	g.FutureFee = 0
	g.FutureAdminFee = 0
	return fee, adminFee, nil
}
