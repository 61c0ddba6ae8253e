package orderbook

import "time"

// prune is the background day-order sweep (§4.5). It wakes at the next
// market close (cfg.nextClose, plus cfg.PruneSlack to let any order in
// flight at the close settle first), cancels every resting GoodForDay
// order, and goes back to sleep for the following close. It exits once
// Close sets ob.shutdown and broadcasts ob.cond.
func (ob *OrderBook) prune() {
	defer close(ob.prunerDone)

	ob.mu.Lock()
	defer ob.mu.Unlock()

	for !ob.shutdown {
		now := ob.cfg.Clock.Now()
		wake := ob.cfg.nextClose(now).Add(ob.cfg.PruneSlack)

		if !ob.waitUntil(wake) {
			// Close fired while we were waiting.
			return
		}

		ob.sweepGoodForDay()
	}
}

// waitUntil blocks on ob.cond until either deadline is reached or shutdown
// is signalled, returning false in the latter case. Callers hold ob.mu;
// waitUntil releases it for the duration of each wait and re-acquires it
// before returning, exactly as sync.Cond.Wait does.
func (ob *OrderBook) waitUntil(deadline time.Time) bool {
	for !ob.shutdown {
		remaining := deadline.Sub(ob.cfg.Clock.Now())
		if remaining <= 0 {
			return true
		}

		timer := time.AfterFunc(remaining, func() {
			ob.mu.Lock()
			ob.cond.Broadcast()
			ob.mu.Unlock()
		})
		ob.cond.Wait()
		timer.Stop()
	}
	return false
}

// sweepGoodForDay cancels every resting GoodForDay order, reporting the
// count through the Listener even when it is zero (§4.5). Callers hold
// ob.mu.
func (ob *OrderBook) sweepGoodForDay() {
	var ids []uint64
	ob.orders.Scan(func(id uint64, order *Order) bool {
		if order.orderType == GoodForDay {
			ids = append(ids, id)
		}
		return true
	})

	for _, id := range ids {
		ob.cancelOrderLocked(id)
	}

	ob.listener.OnPruned(len(ids))
}
