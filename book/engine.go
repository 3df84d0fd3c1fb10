package book

import "fmt"

// Option configures an Engine at construction time. Functional options are
// the correct-weight idiom here: the engine has no files, environment
// variables, or wire configuration to load, so there is nothing for a
// config-file library to do.
type Option func(*Engine)

// WithPoolBlockSize overrides the Order Pool's block growth size (default
// 4096, matching the reference implementation's memory pool).
func WithPoolBlockSize(n int) Option {
	return func(e *Engine) { e.poolBlockSize = n }
}

// WithLogger attaches a Logger for off-hot-path structured logging (pool
// growth, rejected operations). The default is a no-op logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithOnTrade registers the trade-event callback, invoked synchronously
// and in emission order during AddOrder/AmendOrder. The callback MUST NOT
// re-enter the engine: the crossing loop holds transient invariant
// violations (a head order with already-decremented quantity not yet
// popped or returned to rest) between one emit_trade and the next.
func WithOnTrade(fn func(TradeEvent)) Option {
	return func(e *Engine) { e.onTrade = fn }
}

// Engine is a single-instrument continuous limit order book. It is not
// safe for concurrent use: every public method must run to completion on
// one goroutine before another call begins. Callers needing multi-goroutine
// access must serialize, typically by funnelling commands through a
// single-consumer channel.
type Engine struct {
	bids *sideIndex
	asks *sideIndex
	loc  *locator
	pool *pool

	poolBlockSize int
	logger        Logger
	onTrade       func(TradeEvent)

	stats Stats
}

// New constructs an empty Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = nopLogger{}
	}
	e.bids = newBidIndex()
	e.asks = newAskIndex()
	e.loc = newLocator()
	e.pool = newPool(e.poolBlockSize, e.logger)
	return e
}

func (e *Engine) sideIndexFor(side Side) *sideIndex {
	if side == Bid {
		return e.bids
	}
	return e.asks
}

// AddOrder submits a new order. It validates quantity and id uniqueness
// before touching any state, then enqueues the order and runs the
// crossing loop. Zero or more trade events may be emitted synchronously
// before AddOrder returns.
func (e *Engine) AddOrder(id OrderID, side Side, price Price, qty Quantity, ts Timestamp) error {
	if qty == 0 {
		e.logger.Warnw("rejected add: zero quantity", "order_id", id)
		return fmt.Errorf("%w: id=%d", ErrZeroQuantity, id)
	}
	if _, live := e.loc.get(id); live {
		e.logger.Warnw("rejected add: duplicate order id", "order_id", id)
		return fmt.Errorf("%w: id=%d", ErrDuplicateOrderID, id)
	}

	e.insertResting(id, side, price, qty, ts)
	e.stats.TotalOrdersAdded++
	e.cross(side)
	return nil
}

// insertResting acquires an order record, enqueues it at the tail of its
// price level, and registers it with the locator. It does not run the
// crossing loop and does not touch statistics beyond what the caller does.
func (e *Engine) insertResting(id OrderID, side Side, price Price, qty Quantity, ts Timestamp) {
	o := e.pool.acquire()
	o.ID = id
	o.Side = side
	o.Price = price
	o.Quantity = qty
	o.Timestamp = ts

	lvl := e.sideIndexFor(side).findOrCreate(price)
	elem := lvl.enqueue(o)
	o.elem = elem

	e.loc.put(id, location{order: o, side: side, level: lvl, elem: elem})
}

// CancelOrder removes a live order without matching. It reports false if
// id does not currently identify a live order.
func (e *Engine) CancelOrder(id OrderID) bool {
	loc, ok := e.loc.get(id)
	if !ok {
		return false
	}
	e.removeResting(id, loc)
	e.stats.TotalOrdersCancelled++
	return true
}

// removeResting detaches a resting order from its level, erases the level
// if it is now empty, releases the order back to the pool, and removes
// the locator entry. It does not touch statistics.
func (e *Engine) removeResting(id OrderID, loc location) {
	loc.level.remove(loc.elem)
	if loc.level.empty() {
		e.sideIndexFor(loc.side).erase(loc.level.price)
	}
	e.pool.release(loc.order)
	e.loc.delete(id)
}

// AmendOrder changes a live order's price and/or quantity. Same-price
// amends update quantity in place and preserve queue priority regardless
// of whether quantity increased or decreased; a quantity increase may run
// the crossing loop. A price change is implemented as cancel-then-add
// under the same id, which loses priority (the order joins the tail of
// the new price level) and always runs the crossing loop. It reports
// false if id does not currently identify a live order, and
// ErrZeroQuantity if newQty is zero.
func (e *Engine) AmendOrder(id OrderID, newPrice Price, newQty Quantity) (bool, error) {
	loc, ok := e.loc.get(id)
	if !ok {
		return false, nil
	}
	if newQty == 0 {
		e.logger.Warnw("rejected amend: zero quantity", "order_id", id)
		return false, fmt.Errorf("%w: id=%d", ErrZeroQuantity, id)
	}

	if newPrice == loc.order.Price {
		oldQty := loc.order.Quantity
		loc.order.Quantity = newQty
		loc.level.totalQuantity = loc.level.totalQuantity - oldQty + newQty
		if newQty > oldQty {
			e.cross(loc.order.Side)
		}
		return true, nil
	}

	side := loc.order.Side
	ts := loc.order.Timestamp
	e.removeResting(id, loc)
	e.stats.TotalOrdersCancelled++

	e.insertResting(id, side, newPrice, newQty, ts)
	e.stats.TotalOrdersAdded++
	e.cross(side)
	return true, nil
}

// cross runs the crossing loop: while the best bid and best ask cross,
// match their head orders, decrementing quantities and removing any order
// or level that becomes empty before the next iteration. aggressor names
// the side whose add/amend just (re)ran the loop; it is constant for the
// whole call, since the book was uncrossed before this operation and the
// other side's resting orders could not have crossed each other. It
// terminates because each iteration strictly reduces live-order count on
// at least one side, or reduces a head order's quantity to zero and
// removes it immediately.
func (e *Engine) cross(aggressor Side) {
	for !e.bids.empty() && !e.asks.empty() {
		bidLevel := e.bids.best()
		askLevel := e.asks.best()

		if bidLevel.price < askLevel.price {
			return
		}

		buy := bidLevel.head()
		sell := askLevel.head()

		tradeQty := buy.Quantity
		if sell.Quantity < tradeQty {
			tradeQty = sell.Quantity
		}

		// Trade price is the resting side's price: the ask when the
		// aggressor is a buy, the bid when the aggressor is a sell.
		tradePrice := sell.Price
		if aggressor == Ask {
			tradePrice = buy.Price
		}

		if e.onTrade != nil {
			e.onTrade(TradeEvent{
				BuyOrderID:  buy.ID,
				SellOrderID: sell.ID,
				Quantity:    tradeQty,
				Price:       tradePrice,
			})
		}
		e.stats.TotalOrdersMatched++

		buy.Quantity -= tradeQty
		sell.Quantity -= tradeQty
		bidLevel.totalQuantity -= tradeQty
		askLevel.totalQuantity -= tradeQty

		if buy.Quantity == 0 {
			e.popAndRelease(e.bids, bidLevel, buy.ID)
		}
		if sell.Quantity == 0 {
			e.popAndRelease(e.asks, askLevel, sell.ID)
		}
	}
}

// popAndRelease removes the head order of lvl (which must currently be
// id), erases lvl from idx if it is now empty, and releases the order
// back to the pool. Called only from cross(), after the head's quantity
// has already been driven to zero.
func (e *Engine) popAndRelease(idx *sideIndex, lvl *priceLevel, id OrderID) {
	o := lvl.popHead()
	if lvl.empty() {
		idx.erase(lvl.price)
	}
	e.loc.delete(id)
	e.pool.release(o)
}

// Snapshot returns up to depth (price, total_quantity) pairs per side,
// each side in best-first order. It performs no mutation.
func (e *Engine) Snapshot(depth int) (bids, asks []PriceLevelView) {
	bids = e.snapshotSide(e.bids, depth)
	asks = e.snapshotSide(e.asks, depth)
	return bids, asks
}

// PriceLevelView is a read-only (price, aggregate quantity) pair returned
// by Snapshot/BestBid/BestAsk.
type PriceLevelView struct {
	Price    Price
	Quantity Quantity
}

func (e *Engine) snapshotSide(idx *sideIndex, depth int) []PriceLevelView {
	if depth <= 0 {
		return nil
	}
	out := make([]PriceLevelView, 0, depth)
	idx.ascend(func(lvl *priceLevel) bool {
		out = append(out, PriceLevelView{Price: lvl.price, Quantity: lvl.totalQuantity})
		return len(out) < depth
	})
	return out
}

// BestBid returns the best resting bid, or false if there are none.
func (e *Engine) BestBid() (PriceLevelView, bool) {
	return bestOf(e.bids)
}

// BestAsk returns the best resting ask, or false if there are none.
func (e *Engine) BestAsk() (PriceLevelView, bool) {
	return bestOf(e.asks)
}

func bestOf(idx *sideIndex) (PriceLevelView, bool) {
	lvl := idx.best()
	if lvl == nil {
		return PriceLevelView{}, false
	}
	return PriceLevelView{Price: lvl.price, Quantity: lvl.totalQuantity}, true
}

// BidLevels reports the number of distinct resting bid prices.
func (e *Engine) BidLevels() int { return e.bids.len() }

// AskLevels reports the number of distinct resting ask prices.
func (e *Engine) AskLevels() int { return e.asks.len() }

// Stats returns a snapshot of the three monotonic counters.
func (e *Engine) Stats() Stats { return e.stats }

// Clear drops all resting orders and resets every counter. Every live
// order is released back to the pool; the pool's allocated blocks are
// kept for reuse rather than freed.
func (e *Engine) Clear() {
	for _, loc := range e.loc.byID {
		e.pool.release(loc.order)
	}
	e.bids.clear()
	e.asks.clear()
	e.loc.clear()
	e.stats = Stats{}
}
