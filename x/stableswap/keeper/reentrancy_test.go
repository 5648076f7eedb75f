package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/stableswap3/x/stableswap/keeper"
	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// reentrantLedger calls back into its Engine from MoveIn once armed,
// modeling a callback-capable transfer (e.g. a hook-bearing token)
// that tries to re-enter the engine mid-operation.
type reentrantLedger struct {
	*memLedger
	engine       *keeper.Engine
	armed        bool
	reentrantErr error
}

func (r *reentrantLedger) MoveIn(asset string, from sdk.AccAddress, amount sdk.Int) error {
	if r.armed {
		_, r.reentrantErr = r.engine.Exchange(from, 0, 1, sdk.NewInt(1), sdk.ZeroInt(), genesisT)
	}
	return r.memLedger.MoveIn(asset, from, amount)
}

func TestExchange_ReentrantCallFromLedgerFails(t *testing.T) {
	cfg := types.Config{
		Owner: owner,
		Assets: [types.NCoins]types.Asset{
			types.NewAsset("dai", 18),
			types.NewAsset("usdc", 6),
			types.NewAsset("usdt", 6),
		},
		InitialA: 2000,
		Fee:      4_000_000,
		AdminFee: 5_000_000_000,
	}
	pool, err := types.NewPoolState(cfg, genesisT)
	require.NoError(t, err)

	ledger := &reentrantLedger{memLedger: newMemLedger()}
	engine, err := keeper.NewEngine(pool, ledger)
	require.NoError(t, err)
	ledger.engine = engine

	seed := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	_, err = engine.AddLiquidity(alice, seed, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	ledger.armed = true
	dx := sdk.NewIntWithDecimal(1_000, 18)
	_, err = engine.Exchange(alice, 0, 1, dx, sdk.ZeroInt(), genesisT)
	require.NoError(t, err, "the outer call proceeds once the reentrant attempt has failed and returned")

	require.Error(t, ledger.reentrantErr)
	require.ErrorIs(t, ledger.reentrantErr, types.ErrReentrancy)
}
