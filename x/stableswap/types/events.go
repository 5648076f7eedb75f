package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Event names, matching observability surface.
const (
	EventTypeTokenExchange = "token_exchange"
	EventTypeAddLiquidity = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeRemoveLiquidityOne = "remove_liquidity_one"
	EventTypeRemoveLiquidityImbalance = "remove_liquidity_imbalance"
	EventTypeRampA = "ramp_a"
	EventTypeStopRampA = "stop_ramp_a"
	EventTypeCommitNewFee = "commit_new_fee"
	EventTypeNewFee = "new_fee"
)

// Event is a single observability record emitted by an Engine
// operation. It deliberately mirrors the cosmos-sdk Event shape (type +
// attribute pairs) without requiring a live chain event bus: callers
// read Engine.Events() after each operation.
type Event struct {
	Type       string
	Attributes map[string]string
}

// EventManager accumulates events raised by Engine operations until
// Reset is called, the same role ctx.EventManager() plays for a
// cosmos-sdk keeper method.
type EventManager struct {
	events []Event
}

func NewEventManager() *EventManager {
	return &EventManager{events: make([]Event, 0, 4)}
}

func (m *EventManager) Emit(e Event) {
	m.events = append(m.events, e)
}

func (m *EventManager) Events() []Event {
	return m.events
}

func (m *EventManager) Reset() {
	m.events = m.events[:0]
}

func NewTokenExchangeEvent(buyer string, i int, dxNative sdk.Int, j int, dyNative sdk.Int) Event {
	return Event{
		Type: EventTypeTokenExchange,
		Attributes: map[string]string{
			"buyer": buyer,
			"sold_id": strconv.Itoa(i),
			"tokens_sold": dxNative.String(),
			"bought_id": strconv.Itoa(j),
			"tokens_bought": dyNative.String(),
		},
	}
}

func NewAddLiquidityEvent(provider string, amounts [NCoins]sdk.Int, fees [NCoins]sdk.Int, d1 sdk.Int, newSupply sdk.Int) Event {
	return Event{
		Type: EventTypeAddLiquidity,
		Attributes: map[string]string{
			"provider": provider,
			"amounts": amountsString(amounts),
			"fees": amountsString(fees),
			"invariant": d1.String(),
			"new_supply": newSupply.String(),
		},
	}
}

func NewRemoveLiquidityEvent(provider string, amounts [NCoins]sdk.Int, fees [NCoins]sdk.Int, newSupply sdk.Int) Event {
	return Event{
		Type: EventTypeRemoveLiquidity,
		Attributes: map[string]string{
			"provider": provider,
			"amounts": amountsString(amounts),
			"fees": amountsString(fees),
			"new_supply": newSupply.String(),
		},
	}
}

func NewRemoveLiquidityImbalanceEvent(provider string, amounts [NCoins]sdk.Int, fees [NCoins]sdk.Int, d1 sdk.Int, newSupply sdk.Int) Event {
	return Event{
		Type: EventTypeRemoveLiquidityImbalance,
		Attributes: map[string]string{
			"provider": provider,
			"amounts": amountsString(amounts),
			"fees": amountsString(fees),
			"invariant": d1.String(),
			"new_supply": newSupply.String(),
		},
	}
}

func NewRemoveLiquidityOneEvent(provider string, i int, amount sdk.Int, fee sdk.Int, newSupply sdk.Int) Event {
	return Event{
		Type: EventTypeRemoveLiquidityOne,
		Attributes: map[string]string{
			"provider": provider,
			"coin_id": strconv.Itoa(i),
			"amount": amount.String(),
			"fee": fee.String(),
			"new_supply": newSupply.String(),
		},
	}
}

func NewRampAEvent(oldA, newA uint64, initialTime, futureTime int64) Event {
	return Event{
		Type: EventTypeRampA,
		Attributes: map[string]string{
			"old_a": strconv.Itoa(int(oldA)),
			"new_a": strconv.Itoa(int(newA)),
			"initial_time": strconv.Itoa(int(initialTime)),
			"future_time": strconv.Itoa(int(futureTime)),
		},
	}
}

func NewStopRampAEvent(a uint64, t int64) Event {
	return Event{
		Type: EventTypeStopRampA,
		Attributes: map[string]string{
			"a": strconv.Itoa(int(a)),
			"t": strconv.Itoa(int(t)),
		},
	}
}

func NewCommitNewFeeEvent(deadline int64, fee, adminFee uint64) Event {
	return Event{
		Type: EventTypeCommitNewFee,
		Attributes: map[string]string{
			"deadline": strconv.Itoa(int(deadline)),
			"fee": strconv.Itoa(int(fee)),
			"admin_fee": strconv.Itoa(int(adminFee)),
		},
	}
}

func NewNewFeeEvent(fee, adminFee uint64) Event {
	return Event{
		Type: EventTypeNewFee,
		Attributes: map[string]string{
			"fee": strconv.Itoa(int(fee)),
			"admin_fee": strconv.Itoa(int(adminFee)),
		},
	}
}

func amountsString(amounts [NCoins]sdk.Int) string {
	s := ""
	for i, a := range amounts {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s
}

