package orderbook

// match runs the crossing loop (§4.3): while the best bid and best ask
// cross, it drains trades between the two price levels' FIFOs in strict
// time priority, then re-tests the book for further crossing. Callers hold
// ob.mu.
func (ob *OrderBook) match() Trades {
	var trades Trades

	for {
		bidNode := ob.bestNode(Buy)
		askNode := ob.bestNode(Sell)
		if bidNode == nil || askNode == nil {
			break
		}
		if bidNode.Key() < askNode.Key() {
			break
		}

		bidLevel, askLevel := bidNode.Value(), askNode.Value()

		for bidLevel.Len() > 0 && askLevel.Len() > 0 {
			hb := bidLevel.queue.Front().Value
			ha := askLevel.queue.Front().Value

			quantity := hb.remainingQuantity
			if ha.remainingQuantity < quantity {
				quantity = ha.remainingQuantity
			}

			ob.fillOrder(hb, quantity)
			ob.fillOrder(ha, quantity)

			trade := Trade{
				Bid:      Leg{OrderID: hb.id, Price: hb.price, Quantity: quantity},
				Ask:      Leg{OrderID: ha.id, Price: ha.price, Quantity: quantity},
				Sequence: ob.nextSequenceNumber(),
			}
			trades = append(trades, trade)
			ob.listener.OnTrade(trade)

			// Snapshot which side is about to lose its last order *before*
			// removeOrder can pool the level out from under bidLevel/askLevel.
			bidExhausted := hb.IsFilled() && bidLevel.Len() == 1
			askExhausted := ha.IsFilled() && askLevel.Len() == 1

			if hb.IsFilled() {
				ob.removeOrder(hb)
				ob.allocator.PutOrder(hb)
			}
			if ha.IsFilled() {
				ob.removeOrder(ha)
				ob.allocator.PutOrder(ha)
			}

			if bidExhausted || askExhausted {
				break
			}
		}

		// After the inner loop exhausts one side's queue at this price
		// pair, a FillAndKill left sitting at the new head of either side
		// never rests; cancel it before the outer loop re-tests crossing.
		ob.cancelTopFillAndKill(Buy)
		ob.cancelTopFillAndKill(Sell)
	}

	return trades
}

// cancelTopFillAndKill cancels the order at the head of side's best price
// level if it is a FillAndKill order, regardless of whether it could still
// cross — it is only ever found at the head here because the inner loop in
// match just exhausted the queue in front of it.
func (ob *OrderBook) cancelTopFillAndKill(side Side) {
	node := ob.bestNode(side)
	if node == nil {
		return
	}
	level := node.Value()
	if level.Len() == 0 {
		return
	}
	head := level.queue.Front().Value
	if head.orderType != FillAndKill {
		return
	}

	ob.removeOrder(head)
	ob.listener.OnOrderCancelled(head)
	ob.allocator.PutOrder(head)
}
