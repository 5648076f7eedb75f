package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/osmosis-labs/stableswap3/x/stableswap/keeper"
	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

var (
	owner = sdk.AccAddress([]byte("pool-owner----------"))
	alice = sdk.AccAddress([]byte("alice---------------"))
	genesisT = int64(1_700_000_000)
)

// newTestEngine builds a three-asset pool (one 18-decimal asset, two
// 6-decimal assets) with initial A, fee, and admin fee supplied by the
// caller, wired to a fresh memLedger.
func newTestEngine(initialA, fee, adminFee uint64) (*keeper.Engine, *memLedger) {
	cfg := types.Config{
		Owner: owner,
		Assets: [types.NCoins]types.Asset{
			types.NewAsset("dai", 18),
			types.NewAsset("usdc", 6),
			types.NewAsset("usdt", 6),
		},
		InitialA: initialA,
		Fee:      fee,
		AdminFee: adminFee,
	}
	pool, err := types.NewPoolState(cfg, genesisT)
	if err != nil {
		panic(err)
	}
	ledger := newMemLedger()
	engine, err := keeper.NewEngine(pool, ledger)
	if err != nil {
		panic(err)
	}
	return engine, ledger
}
