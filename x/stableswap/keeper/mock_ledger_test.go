package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// memLedger is a minimal in-memory types.AssetLedger for exercising
// Engine without a live chain. Every asset's custody and every
// account's share balance live in plain maps; MoveIn/MoveOut never
// fail.
type memLedger struct {
	custody map[string]sdk.Int // denom -> total held
	shares  map[string]sdk.Int // address -> share balance
	supply  sdk.Int
}

func newMemLedger() *memLedger {
	return &memLedger{
		custody: make(map[string]sdk.Int),
		shares:  make(map[string]sdk.Int),
		supply:  sdk.ZeroInt(),
	}
}

// fund is a no-op: this mock does not track per-account wallets, only
// pool custody, so MoveIn succeeds without any prior funding. No test
// in this package calls it.
func (m *memLedger) fund(sdk.AccAddress, string, sdk.Int) {}

func (m *memLedger) MoveIn(asset string, _ sdk.AccAddress, amount sdk.Int) error {
	cur, ok := m.custody[asset]
	if !ok {
		cur = sdk.ZeroInt()
	}
	m.custody[asset] = cur.Add(amount)
	return nil
}

func (m *memLedger) MoveOut(asset string, _ sdk.AccAddress, amount sdk.Int) error {
	cur, ok := m.custody[asset]
	if !ok {
		cur = sdk.ZeroInt()
	}
	m.custody[asset] = cur.Sub(amount)
	return nil
}

func (m *memLedger) BalanceOf(asset string, _ sdk.AccAddress) sdk.Int {
	cur, ok := m.custody[asset]
	if !ok {
		return sdk.ZeroInt()
	}
	return cur
}

func (m *memLedger) MintShares(to sdk.AccAddress, n sdk.Int) error {
	cur, ok := m.shares[to.String()]
	if !ok {
		cur = sdk.ZeroInt()
	}
	m.shares[to.String()] = cur.Add(n)
	m.supply = m.supply.Add(n)
	return nil
}

func (m *memLedger) BurnShares(from sdk.AccAddress, n sdk.Int) error {
	cur, ok := m.shares[from.String()]
	if !ok {
		cur = sdk.ZeroInt()
	}
	m.shares[from.String()] = cur.Sub(n)
	m.supply = m.supply.Sub(n)
	return nil
}

func (m *memLedger) ShareSupply() sdk.Int {
	return m.supply
}

var _ types.AssetLedger = (*memLedger)(nil)
