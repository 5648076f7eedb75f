package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// AssetLedger is the external custody collaborator the engine never
// bypasses: it owns token transfers and the share-unit mint/burn
// authority. The core never inspects addresses or performs network
// I/O itself; it only calls through this interface, the same way a
// keeper only ever calls k.bankKeeper.
//
// Implementations that can re-enter the engine synchronously from
// MoveIn/MoveOut ("callback-capable transfers") are expected; Engine's
// busy-flag guard is what makes that safe.
type AssetLedger interface {
	// MoveIn transfers amount of asset from `from` into the pool's
	// custody. Must either fully succeed or fail without side effects.
	MoveIn(asset string, from sdk.AccAddress, amount sdk.Int) error
	// MoveOut transfers amount of asset from the pool's custody to `to`.
	MoveOut(asset string, to sdk.AccAddress, amount sdk.Int) error
	// BalanceOf returns the true custody balance of asset held for who,
	// used for admin-fee accounting (the conservation invariant).
	BalanceOf(asset string, who sdk.AccAddress) sdk.Int

	// MintShares credits the share-unit ledger. BurnShares debits it.
	// ShareSupply reads the current total.
	MintShares(to sdk.AccAddress, n sdk.Int) error
	BurnShares(from sdk.AccAddress, n sdk.Int) error
	ShareSupply() sdk.Int
}
