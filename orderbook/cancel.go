package orderbook

// CancelOrder removes a resting order by id. It is a silent no-op, reported
// through OnReject, if orderID is unknown — cancelling an order that has
// already been filled or cancelled is not a caller error worth a panic or a
// Go error return (§7).
func (ob *OrderBook) CancelOrder(orderID uint64) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.cancelOrderLocked(orderID)
}

// cancelOrderLocked does the work of CancelOrder; callers hold ob.mu.
func (ob *OrderBook) cancelOrderLocked(orderID uint64) {
	order, ok := ob.orders.Get(orderID)
	if !ok {
		ob.listener.OnReject(ErrOrderNotFound, orderID)
		return
	}

	ob.removeOrder(order)
	ob.listener.OnOrderCancelled(order)
	ob.allocator.PutOrder(order)
}

// ModifyOrder replaces a resting order's side, price, and quantity with
// cancel-and-replace semantics (§4.1): the existing order is removed first,
// then a fresh order is admitted exactly as if AddOrder had been called
// with it. Because admission re-runs from scratch, a modification that
// moves an order to a crossing price can itself produce trades, and one
// that asks for more than the book can support can be rejected outright —
// both of which would be impossible if modification only patched the
// existing FIFO position in place. The replacement always loses time
// priority: it is appended to the tail of its (possibly new) price level.
// The order's type never changes; side, price, and quantity all do.
func (ob *OrderBook) ModifyOrder(orderID uint64, side Side, price Price, quantity Quantity) Trades {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	existing, ok := ob.orders.Get(orderID)
	if !ok {
		ob.listener.OnReject(ErrOrderNotFound, orderID)
		return nil
	}
	if quantity == 0 {
		ob.listener.OnReject(ErrInvalidOrderQuantity, orderID)
		return nil
	}

	orderType := existing.orderType
	ob.removeOrder(existing)
	ob.allocator.PutOrder(existing)

	built := NewOrder(orderType, orderID, side, price, quantity)
	replacement := ob.allocator.GetOrder()
	*replacement = *built
	return ob.admitAndMatch(replacement)
}

// admitAndMatch is the admission-gate-plus-crossing-loop sequence shared by
// AddOrder and ModifyOrder's replacement leg.
func (ob *OrderBook) admitAndMatch(order *Order) Trades {
	switch order.orderType {
	case Market:
		if !ob.admitMarket(order) {
			ob.listener.OnReject(ErrMarketIntoEmptySide, order.id)
			return nil
		}
	case FillAndKill:
		if !ob.canMatch(order.side, order.price) {
			ob.listener.OnReject(ErrUnmatchableFillAndKill, order.id)
			return nil
		}
	case FillOrKill:
		if !ob.canFullyFill(order.side, order.price, order.remainingQuantity) {
			ob.listener.OnReject(ErrInfeasibleFillOrKill, order.id)
			return nil
		}
	}

	id := order.id
	ob.insertOrder(order)
	trades := ob.match()

	if order.orderType == FillAndKill || order.orderType == Market {
		if resting, ok := ob.orders.Get(id); ok {
			ob.removeOrder(resting)
			ob.listener.OnOrderCancelled(resting)
			ob.allocator.PutOrder(resting)
		}
	}

	return trades
}
