package orderbook

import (
	"fmt"
	"math"

	"github.com/drink970082/orderbook/types/avl"
	"github.com/drink970082/orderbook/types/list"
)

// Price is a signed tick price. NoPrice is the sentinel used by Market
// orders before the admission gate resolves them against the opposing
// book (see admitMarket).
type Price int32

// NoPrice is carried by a Market order until admission assigns it a
// concrete sweep price.
const NoPrice Price = math.MinInt32

// Quantity is an unsigned order size.
type Quantity uint32

// Order contains an immutable identity plus mutable fill state. Orders are
// allocated and released through an Allocator (allocator.go) rather than
// left to routine garbage collection, since admission and cancellation sit
// on the book's hottest path.
type Order struct {
	id        uint64
	side      Side
	orderType OrderType
	price     Price

	initialQuantity   Quantity
	remainingQuantity Quantity

	// priceLevel and queued together form the position-handle into the
	// order's enclosing FIFO queue (§3 of the order index invariant):
	// priceLevel names which tree node the order rests under, queued is
	// the O(1)-removable list element within that level's queue. Both are
	// nil for an order that is not currently resting.
	priceLevel *avl.Node[Price, *priceLevel]
	queued     *list.Element[*Order]
}

// NewOrder constructs a limit-priced order of the given type.
func NewOrder(orderType OrderType, id uint64, side Side, price Price, quantity Quantity) *Order {
	return &Order{
		id:                id,
		side:              side,
		orderType:         orderType,
		price:             price,
		initialQuantity:   quantity,
		remainingQuantity: quantity,
	}
}

// NewMarketOrder constructs a Market order. Its price is the NoPrice
// sentinel until the admission gate resolves it against the opposing book.
func NewMarketOrder(id uint64, side Side, quantity Quantity) *Order {
	return NewOrder(Market, id, side, NoPrice, quantity)
}

// ID returns the order's stable identifier.
func (o *Order) ID() uint64 { return o.id }

// Side returns the order's trading side.
func (o *Order) Side() Side { return o.side }

// IsBuy returns true for a bid-side order.
func (o *Order) IsBuy() bool { return o.side == Buy }

// IsSell returns true for an ask-side order.
func (o *Order) IsSell() bool { return o.side == Sell }

// Type returns the order's liveness type.
func (o *Order) Type() OrderType { return o.orderType }

// Price returns the order's limit price. For a Market order prior to
// admission this is NoPrice.
func (o *Order) Price() Price { return o.price }

// InitialQuantity returns the quantity at admission; it never changes.
func (o *Order) InitialQuantity() Quantity { return o.initialQuantity }

// RemainingQuantity returns the unfilled quantity.
func (o *Order) RemainingQuantity() Quantity { return o.remainingQuantity }

// FilledQuantity returns the cumulative filled quantity.
func (o *Order) FilledQuantity() Quantity { return o.initialQuantity - o.remainingQuantity }

// IsFilled returns true if the order's remaining quantity has reached zero.
func (o *Order) IsFilled() bool { return o.remainingQuantity == 0 }

// resting reports whether the order currently holds a position-handle into
// a side book.
func (o *Order) resting() bool { return o.queued != nil }

// fill reduces the order's remaining quantity by quantity. Filling for more
// than remains is a matcher bug, not a business outcome (§7) and panics
// rather than returning an error.
func (o *Order) fill(quantity Quantity) {
	if quantity > o.remainingQuantity {
		panic(fmt.Sprintf("order %d: cannot fill %d, only %d remaining", o.id, quantity, o.remainingQuantity))
	}
	o.remainingQuantity -= quantity
}

// reset clears an order back to its zero value so it can be returned to the
// Allocator pool without retaining references into torn-down queues.
func (o *Order) reset() {
	*o = Order{}
}
