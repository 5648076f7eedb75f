// Package keeper implements PoolEngine: the orchestration layer that
// reads PoolState and the two governed schedules, scales balances to
// canonical units via ammmath, calls through the external AssetLedger,
// and writes the result back. It is the keeper/Engine of a single
// StableSwap pool, the same role x/gamm/keeper plays for a weighted
// pool.
package keeper

import (
	"sync"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/osmosis-labs/stableswap3/x/stableswap/types"
)

// Engine orchestrates every state-mutating operation on a single
// PoolState. Every state-mutating public method sets busy (under mu)
// for the duration of the call; the read-only views (Quote, QuoteShare,
// VirtualPrice, EffectiveA) do not. An AssetLedger implementation that calls back
// into the Engine synchronously observes ErrReentrancy rather than
// corrupting state.
type Engine struct {
	mu     sync.Mutex
	busy   bool
	pool   *types.PoolState
	ledger types.AssetLedger
	events *types.EventManager
}

// NewEngine wires a validated PoolState to its AssetLedger.
func NewEngine(pool *types.PoolState, ledger types.AssetLedger) (*Engine, error) {
	if pool == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidConfig, "pool state required")
	}
	if ledger == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidConfig, "asset ledger required")
	}
	return &Engine{pool: pool, ledger: ledger, events: types.NewEventManager()}, nil
}

// Pool exposes the underlying state for read-only inspection
// (balances, schedules). Mutation must go through Engine's methods.
func (e *Engine) Pool() *types.PoolState {
	return e.pool
}

// Events returns every event raised since the last call to
// ResetEvents. Callers that want per-operation events should call
// ResetEvents before each operation.
func (e *Engine) Events() []types.Event {
	return e.events.Events()
}

func (e *Engine) ResetEvents() {
	e.events.Reset()
}

// enter acquires the re-entrancy guard for a state-mutating entry
// point. The returned func must be deferred to release it.
func (e *Engine) enter() (func(), error) {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return nil, sdkerrors.Wrap(types.ErrReentrancy, "reentrant call into pool engine")
	}
	e.busy = true
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}, nil
}

// requireNotKilled rejects every operation disabled while the pool is
// killed (everything except RemoveLiquidity, Kill and Unkill).
func (e *Engine) requireNotKilled() error {
	if e.pool.Killed {
		return sdkerrors.Wrap(types.ErrKilled, "pool is killed")
	}
	return nil
}
