package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

func TestAddLiquidity_InitialDepositMintsD(t *testing.T) {
	e, ledger := newTestEngine(2000, 4_000_000, 5_000_000_000)

	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18), // 100k DAI, 18dp
		sdk.NewInt(100_000_000_000),        // 100k USDC, 6dp
		sdk.NewInt(100_000_000_000),        // 100k USDT, 6dp
	}

	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)
	require.True(t, mint.IsPositive())
	require.Equal(t, mint, ledger.ShareSupply())

	pool := e.Pool()
	require.Equal(t, amounts[0], pool.Balances[0])
	require.Equal(t, amounts[1], pool.Balances[1])
	require.Equal(t, amounts[2], pool.Balances[2])
}

func TestAddLiquidity_PartialInitialDepositFails(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)

	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.ZeroInt(),
		sdk.NewInt(100_000_000_000),
	}

	_, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.ErrorIs(t, err, types.ErrInitialDepositIncomplete)
}

func TestAddLiquidity_SlippageGuard(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	_, err := e.AddLiquidity(alice, amounts, sdk.NewInt(1), genesisT)
	require.NoError(t, err)

	// A second, imbalanced deposit with an unreachable minMint must fail.
	more := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(10, 18),
		sdk.ZeroInt(),
		sdk.ZeroInt(),
	}
	_, err = e.AddLiquidity(alice, more, sdk.NewIntWithDecimal(1_000, 18), genesisT)
	require.ErrorIs(t, err, types.ErrSlippage)
}

func TestRemoveLiquidity_Proportional(t *testing.T) {
	e, ledger := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	half := mint.QuoRaw(2)
	var floors [types.NCoins]sdk.Int
	for i := range floors {
		floors[i] = sdk.ZeroInt()
	}

	out, err := e.RemoveLiquidity(alice, half, floors)
	require.NoError(t, err)
	for i := 0; i < types.NCoins; i++ {
		require.True(t, out[i].IsPositive())
	}
	require.Equal(t, mint.Sub(half), ledger.ShareSupply())
}

func TestRemoveLiquidity_PermittedWhileKilled(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)
	require.NoError(t, e.Kill(owner))

	var floors [types.NCoins]sdk.Int
	for i := range floors {
		floors[i] = sdk.ZeroInt()
	}
	_, err = e.RemoveLiquidity(alice, mint, floors)
	require.NoError(t, err)
}

func TestRemoveLiquidityImbalance_BurnsProportionalToWithdrawal(t *testing.T) {
	e, ledger := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	withdraw := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(10, 18),
		sdk.ZeroInt(),
		sdk.ZeroInt(),
	}
	burn, err := e.RemoveLiquidityImbalance(alice, withdraw, mint, genesisT)
	require.NoError(t, err)
	require.True(t, burn.IsPositive())
	require.True(t, burn.LT(mint))
	require.Equal(t, mint.Sub(burn), ledger.ShareSupply())
}

func TestRemoveLiquidityOneCoin_SingleAssetOut(t *testing.T) {
	e, ledger := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	burn := mint.QuoRaw(10)
	out, err := e.RemoveLiquidityOneCoin(alice, burn, 1, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)
	require.True(t, out.IsPositive())
	// withdrawing single-sided should return close to 1/10th of that
	// asset's balance, less the imbalance fee.
	require.True(t, out.LT(amounts[1].QuoRaw(9)))
	require.Equal(t, mint.Sub(burn), ledger.ShareSupply())
}

func TestRemoveLiquidityOneCoin_InvalidIndex(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	_, err = e.RemoveLiquidityOneCoin(alice, mint.QuoRaw(10), 5, sdk.ZeroInt(), genesisT)
	require.ErrorIs(t, err, types.ErrInvalidIndex)
}

func TestQuoteShare_MatchesAddLiquidityMint(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)
	seed := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	_, err := e.AddLiquidity(alice, seed, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	top := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(10_000, 18),
		sdk.ZeroInt(),
		sdk.ZeroInt(),
	}
	quoted, err := e.QuoteShare(top, true, genesisT)
	require.NoError(t, err)
	require.True(t, quoted.IsPositive())

	minted, err := e.AddLiquidity(alice, top, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)
	require.Equal(t, quoted, minted)
}

func TestQuoteShare_MatchesRemoveLiquidityImbalanceBurn(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)
	seed := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	mint, err := e.AddLiquidity(alice, seed, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)

	withdraw := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(10_000, 18),
		sdk.ZeroInt(),
		sdk.ZeroInt(),
	}
	quoted, err := e.QuoteShare(withdraw, false, genesisT)
	require.NoError(t, err)
	require.True(t, quoted.IsPositive())
	require.True(t, quoted.LT(mint))

	burned, err := e.RemoveLiquidityImbalance(alice, withdraw, mint, genesisT)
	require.NoError(t, err)
	require.Equal(t, quoted, burned)
}

func TestQuoteShare_InitialDepositEqualsInvariant(t *testing.T) {
	e, _ := newTestEngine(2000, 4_000_000, 5_000_000_000)
	amounts := [types.NCoins]sdk.Int{
		sdk.NewIntWithDecimal(100_000, 18),
		sdk.NewInt(100_000_000_000),
		sdk.NewInt(100_000_000_000),
	}
	quoted, err := e.QuoteShare(amounts, true, genesisT)
	require.NoError(t, err)

	mint, err := e.AddLiquidity(alice, amounts, sdk.ZeroInt(), genesisT)
	require.NoError(t, err)
	require.Equal(t, quoted, mint)
}
