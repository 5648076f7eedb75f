package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// NCoins is the fixed basket size: one 18-decimal asset and two
// 6-decimal assets. Generalizing to a variable coin count is an
// explicit non-goal.
const NCoins = 3

// Fixed-point and governance constants.
const (
	FeeDenominator    = 10_000_000_000 // 10^10
	MaxFee            = 5_000_000_000  // 50% of FeeDenominator
	MaxAdminFee       = 10_000_000_000 // 100% of FeeDenominator
	MaxA              = 1_000_000      // 10^6
	MaxAChange        = 10
	AdminActionsDelay = 3 * 86400 // seconds
	MinRampTime       = 86400     // seconds
	MaxIterations     = 255
)

// PoolPrecision is the canonical 18-decimal fixed-point scale.
var PoolPrecision = sdk.NewInt(1_000_000_000_000_000_000)
