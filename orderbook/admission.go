package orderbook

import (
	"lukechampine.com/uint128"
)

// AddOrder runs the admission gate (§4.2) and, if the order is admitted,
// inserts it and drives the crossing loop. A silently rejected order (a
// duplicate id, an unmatchable FillAndKill, an infeasible FillOrKill, or a
// Market order with no opposing liquidity) produces no trades and is
// reported only through the Listener's OnReject, never as a Go error.
func (ob *OrderBook) AddOrder(order *Order) Trades {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	if ob.shutdown {
		return nil
	}

	if order.initialQuantity == 0 {
		ob.listener.OnReject(ErrInvalidOrderQuantity, order.id)
		return nil
	}
	if order.orderType != Market && order.price == NoPrice {
		ob.listener.OnReject(ErrInvalidOrderPrice, order.id)
		return nil
	}

	if _, exists := ob.orders.Get(order.id); exists {
		ob.listener.OnReject(ErrOrderDuplicate, order.id)
		return nil
	}

	// Admission proceeds on a pooled copy rather than the caller's own
	// value, mirroring the teacher's addLimitOrder (engine_orders.go): the
	// caller's Order is discarded here, and it is this pooled copy that
	// removeOrder's callers eventually return to the allocator.
	pooled := ob.allocator.GetOrder()
	*pooled = *order

	return ob.admitAndMatch(pooled)
}

// canMatch reports whether an order of side at price would immediately
// cross the opposing book's best price — the admission rule for
// FillAndKill (§4.2).
func (ob *OrderBook) canMatch(side Side, price Price) bool {
	best := ob.bestNode(side.Opposite())
	if best == nil {
		return false
	}
	if side == Buy {
		return price >= best.Key()
	}
	return price <= best.Key()
}

// canFullyFill reports whether quantity can be fully satisfied by walking
// the opposing book from its best price outward, stopping at the first
// price that no longer crosses — the admission rule for FillOrKill (§4.2).
// It consults the level data index exclusively, never the per-order FIFOs,
// so the check costs O(levels) rather than O(orders).
func (ob *OrderBook) canFullyFill(side Side, price Price, quantity Quantity) bool {
	opposite := side.Opposite()
	tree := ob.sideTree(opposite)

	need := uint128.From64(uint64(quantity))
	var have uint128.Uint128

	for node := tree.MostLeft(); node != nil; node = node.NextRight() {
		level := node.Value()

		crosses := price >= level.price
		if side == Sell {
			crosses = price <= level.price
		}
		if !crosses {
			break
		}

		if ld, ok := ob.levels.Get(level.price); ok {
			have = have.Add(ld.quantity)
			if have.Cmp(need) >= 0 {
				return true
			}
		}
	}

	return false
}

// admitMarket resolves a Market order's NoPrice sentinel against the
// opposing book's worst resting price, so the crossing loop below sweeps
// every level that currently has liquidity. It reports false if the
// opposing side is empty, in which case the order cannot be admitted at
// all (§4.2, Market into an empty side).
func (ob *OrderBook) admitMarket(order *Order) bool {
	opposite := order.side.Opposite()
	worst := ob.sideTree(opposite).MostRight()
	if worst == nil {
		return false
	}
	order.price = worst.Key()
	return true
}
