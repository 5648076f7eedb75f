package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ModuleName is the codespace every sentinel below is registered under.
const ModuleName = "stableswap"

// Error kinds, one per distinct failure mode an Engine operation can
// raise. Registered once at package init so every instance of the same
// failure compares equal with errors.Is, the way sdkerrors expects.
var (
	ErrInvalidConfig            = sdkerrors.Register(ModuleName, 2, "invalid pool configuration")
	ErrKilled                   = sdkerrors.Register(ModuleName, 3, "pool is killed")
	ErrInvalidIndex             = sdkerrors.Register(ModuleName, 4, "asset index out of range")
	ErrSameCoin                 = sdkerrors.Register(ModuleName, 5, "input and output asset are identical")
	ErrZeroAmount               = sdkerrors.Register(ModuleName, 6, "amount must be positive")
	ErrInitialDepositIncomplete = sdkerrors.Register(ModuleName, 7, "initial deposit must supply every asset")
	ErrInvariantDidNotGrow      = sdkerrors.Register(ModuleName, 8, "invariant did not grow")
	ErrSlippage                 = sdkerrors.Register(ModuleName, 9, "result below caller-specified minimum")
	ErrInsufficientOutput       = sdkerrors.Register(ModuleName, 10, "withdrawal output below floor")
	ErrUnauthorized             = sdkerrors.Register(ModuleName, 11, "caller is not the pool owner")
	ErrRampTooSoon              = sdkerrors.Register(ModuleName, 12, "ramp attempted before minimum ramp interval elapsed")
	ErrRampTooFast              = sdkerrors.Register(ModuleName, 13, "ramp exceeds the maximum rate of change")
	ErrPendingActionExists      = sdkerrors.Register(ModuleName, 14, "a governance action is already pending")
	ErrNoPendingAction          = sdkerrors.Register(ModuleName, 15, "no governance action is pending")
	ErrDelayNotMet              = sdkerrors.Register(ModuleName, 16, "timelock delay has not elapsed")
	ErrReentrancy               = sdkerrors.Register(ModuleName, 17, "reentrant call into pool engine")
)
