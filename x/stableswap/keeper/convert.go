package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"
)

// toU256 converts a non-negative sdk.Int into the uint256.Int width
// ammmath's Newton solvers operate on.
func toU256(i sdk.Int) *uint256.Int {
	u, overflow := uint256.FromBig(i.BigInt())
	if overflow {
		panic("stableswap: native balance exceeds 256 bits")
	}
	return u
}

// fromU256 converts a canonical-width result back down to sdk.Int.
func fromU256(u *uint256.Int) sdk.Int {
	return sdk.NewIntFromBigInt(u.ToBig())
}
