package orderbook

import (
	"lukechampine.com/uint128"

	"github.com/drink970082/orderbook/types/list"
)

// priceLevel is the FIFO queue of resting orders at one price on one side.
// NOTE: not thread-safe on its own; callers hold the book's mutex.
type priceLevel struct {
	price Price
	queue *list.List[*Order]
}

func newPriceLevel(price Price) *priceLevel {
	return &priceLevel{
		price: price,
		queue: list.NewList[*Order](),
	}
}

// Len returns the number of resting orders at this level.
func (pl *priceLevel) Len() int { return pl.queue.Len() }

// LevelInfo is the public, read-only view of one price level: a price and
// the aggregate remaining quantity resting at it. It carries no FIFO or
// order-identity detail, matching the base specification's "trivial data
// container" framing.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}

// levelData is the aggregate index entry maintained eagerly alongside the
// side books (§3, "Level data index"): the resting quantity and active
// order count at one price, kept up to date on every add/match/cancel so
// FillOrKill feasibility checks never need to touch the per-order queues.
//
// Aggregate quantity is kept in a uint128 rather than a 32/64-bit counter:
// a single level can accumulate resting quantity from an unbounded number
// of uint32-sized orders over the life of the book, and widening the
// accumulator removes the overflow question entirely instead of asserting
// a bound the specification never states.
type levelData struct {
	quantity uint128.Uint128
	count    int
}

// add reflects a new resting order joining the level: one more active
// order, and its quantity added to the aggregate.
func (ld *levelData) add(quantity Quantity) {
	ld.quantity = ld.quantity.Add64(uint64(quantity))
	ld.count++
}

// removeOrder reflects a resting order leaving the level entirely
// (cancelled, fully filled, or pruned): one fewer active order.
func (ld *levelData) removeOrder(quantity Quantity) {
	ld.quantity = ld.quantity.Sub(uint128.From64(uint64(quantity)))
	ld.count--
}

// reduce reflects a partial fill against a still-resting order: the
// aggregate quantity drops, but the order is still active at this level.
func (ld *levelData) reduce(quantity Quantity) {
	ld.quantity = ld.quantity.Sub(uint128.From64(uint64(quantity)))
}

func (ld *levelData) isEmpty() bool { return ld.count == 0 }
