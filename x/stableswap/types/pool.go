package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Asset describes one of the pool's three fixed slots: its ledger
// denom and the precision multiplier that converts a native-unit
// balance into canonical 18-decimal units.
type Asset struct {
	Denom string
	// Mul is 10^(18-decimals): 1 for the 18-decimal asset, 10^12 for
	// the two 6-decimal assets.
	Mul sdk.Int
}

// NewAsset builds an Asset from its native decimal count.
func NewAsset(denom string, decimals uint8) Asset {
	mul := sdk.NewInt(1)
	ten := sdk.NewInt(10)
	for i := uint8(0); i < 18-decimals; i++ {
		mul = mul.Mul(ten)
	}
	return Asset{Denom: denom, Mul: mul}
}

// PoolState is the canonical, mutable record of a single StableSwap
// pool: balances, the owner, the asset slots, the fees, the killed
// flag, and the two governed schedules. The share supply is not stored
// here; it is read through the AssetLedger. It is a plain value type,
// never a package singleton: keeper.Engine holds the *PoolState it
// operates on explicitly.
type PoolState struct {
	Owner  sdk.AccAddress
	Assets [NCoins]Asset

	// Balances are native-unit, per asset, in Assets order.
	Balances [NCoins]sdk.Int

	Fee      uint64
	AdminFee uint64
	Killed   bool

	Amp AmpSchedule
	Gov GovernanceSchedule
}

// Config is the constructor input for a new pool.
type Config struct {
	Owner    sdk.AccAddress
	Assets   [NCoins]Asset
	InitialA uint64
	Fee      uint64
	AdminFee uint64
}

// NewPoolState validates Config and returns a freshly constructed,
// un-ramped, un-killed pool with zero balances. now is the
// construction timestamp used to seed both schedules.
func NewPoolState(cfg Config, now int64) (*PoolState, error) {
	if cfg.Owner == nil || len(cfg.Owner) == 0 {
		return nil, sdkerrors.Wrap(ErrInvalidConfig, "owner required")
	}
	for _, a := range cfg.Assets {
		if a.Denom == "" {
			return nil, sdkerrors.Wrap(ErrInvalidConfig, "asset denom required")
		}
		if a.Mul.IsNil() || !a.Mul.IsPositive() {
			return nil, sdkerrors.Wrap(ErrInvalidConfig, "asset precision multiplier must be positive")
		}
	}
	if cfg.InitialA == 0 || cfg.InitialA >= MaxA {
		return nil, sdkerrors.Wrap(ErrInvalidConfig, "initial A out of bounds")
	}
	if cfg.Fee > MaxFee {
		return nil, sdkerrors.Wrap(ErrInvalidConfig, "fee exceeds MAX_FEE")
	}
	if cfg.AdminFee > MaxAdminFee {
		return nil, sdkerrors.Wrap(ErrInvalidConfig, "admin fee exceeds MAX_ADMIN_FEE")
	}

	var balances [NCoins]sdk.Int
	for i := range balances {
		balances[i] = sdk.ZeroInt()
	}

	return &PoolState{
		Owner:    cfg.Owner,
		Assets:   cfg.Assets,
		Balances: balances,
		Fee:      cfg.Fee,
		AdminFee: cfg.AdminFee,
		Killed:   false,
		Amp: AmpSchedule{
			InitialA:    cfg.InitialA,
			FutureA:     cfg.InitialA,
			InitialTime: now,
			FutureTime:  now,
		},
		Gov: GovernanceSchedule{
			Deadline: 0,
		},
	}, nil
}
