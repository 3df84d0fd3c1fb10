// Package book implements an in-memory continuous limit order book for a
// single instrument: price-time-priority matching over two sides of resting
// liquidity, with O(1) amortized order allocation, O(log n) price-level
// access, and O(1) average order lookup.
package book

import (
	"container/list"
	"fmt"
)

// OrderID identifies an order uniquely across the book's lifetime.
type OrderID uint64

// Price is an integer tick count. Callers convert from whatever decimal or
// fixed-point representation they use at the boundary; the book never
// interprets ticks beyond comparing them.
type Price int64

// Quantity is a resting or traded size. It is strictly positive for any
// live order.
type Quantity uint64

// Timestamp is caller-supplied and retained for audit. It plays no role in
// matching priority; queue position does.
type Timestamp uint64

// Side distinguishes resting buy orders (Bid) from resting sell orders (Ask).
type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "Bid"
	}
	return "Ask"
}

// Order is an immutable identity plus a mutable remaining quantity. Once
// acquired from the pool it is owned exclusively by the Price Level it
// rests in; the Locator holds only a non-owning reference to it.
type Order struct {
	ID        OrderID
	Side      Side
	Price     Price
	Quantity  Quantity
	Timestamp Timestamp

	// elem is the stable queue handle this order was enqueued under. It is
	// set at enqueue time; removal uses the locator's copy of the handle and
	// the crossing loop pops the level head, so neither reads this field.
	elem *list.Element

	// poolNext threads this order onto the pool's free list while it is
	// not live. It is never read while the order is live.
	poolNext *Order
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%d side=%v price=%d qty=%d ts=%d}",
		o.ID, o.Side, o.Price, o.Quantity, o.Timestamp)
}

// TradeEvent is emitted synchronously, once per execution, during
// AddOrder/AmendOrder. The price is always the price of whichever order was
// already resting when the other side arrived or was amended.
type TradeEvent struct {
	BuyOrderID  OrderID
	SellOrderID OrderID
	Quantity    Quantity
	Price       Price
}

func (t TradeEvent) String() string {
	return fmt.Sprintf("Trade{buy=%d sell=%d qty=%d price=%d}",
		t.BuyOrderID, t.SellOrderID, t.Quantity, t.Price)
}
