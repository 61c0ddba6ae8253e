// Package feed defines the market-data fanout boundary the core engine
// publishes through. Persistence and market-data publication are named
// out of scope for the core itself (§1); this interface is what a
// market-data layer sitting alongside the core would implement.
package feed

import (
	"context"
	"time"

	"github.com/drink970082/orderbook/orderbook"
)

// Publisher receives trade and level events from the core as they happen.
// Implementations must not block; a slow or unavailable publisher must
// never hold up the book's matching loop.
type Publisher interface {
	// PublishTrade is called once per trade, in the order trades occur.
	PublishTrade(trade orderbook.Trade)

	// PublishLevel is called with a price level's current aggregate
	// quantity on the given side. RunLevelBroadcaster calls it for every
	// level on each tick, whether or not the level changed.
	PublishLevel(side orderbook.Side, level orderbook.LevelInfo)
}

// NoopPublisher discards every event. It is the default when no Publisher
// is wired in.
type NoopPublisher struct{}

func (NoopPublisher) PublishTrade(orderbook.Trade)                    {}
func (NoopPublisher) PublishLevel(orderbook.Side, orderbook.LevelInfo) {}

// Listener adapts a Publisher to the core's orderbook.Listener interface,
// so a market-data fanout can observe the book without the core package
// taking any dependency on feed or its implementations.
type Listener struct {
	Publisher Publisher
}

func NewListener(publisher Publisher) Listener {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return Listener{Publisher: publisher}
}

func (l Listener) OnOrderAdded(*orderbook.Order)     {}
func (l Listener) OnOrderCancelled(*orderbook.Order) {}
func (l Listener) OnReject(error, uint64)            {}
func (l Listener) OnPruned(int)                      {}

func (l Listener) OnTrade(trade orderbook.Trade) {
	l.Publisher.PublishTrade(trade)
}

// RunLevelBroadcaster polls book's snapshot every interval and republishes
// every level on both sides. Listener methods run with the book's mutex
// held and must not call back into the book (listener.go), so level
// publication cannot piggyback on OnOrderAdded/OnTrade directly; a separate
// poller outside the lock — the same shape as the reference server's
// consumeBookUpdates loop — is how the rest of the corpus keeps a
// market-data fanout independent of the matching hot path. It blocks until
// ctx is cancelled.
func RunLevelBroadcaster(ctx context.Context, book *orderbook.OrderBook, publisher Publisher, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bids, asks := book.Snapshot()
			for _, level := range bids {
				publisher.PublishLevel(orderbook.Buy, level)
			}
			for _, level := range asks {
				publisher.PublishLevel(orderbook.Sell, level)
			}
		}
	}
}
