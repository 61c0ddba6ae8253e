package feed_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/drink970082/orderbook/internal/feed"
	"github.com/drink970082/orderbook/orderbook"
)

type recordingPublisher struct {
	mu     sync.Mutex
	trades []orderbook.Trade
	levels []orderbook.LevelInfo
}

func (p *recordingPublisher) PublishTrade(trade orderbook.Trade) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trades = append(p.trades, trade)
}

func (p *recordingPublisher) PublishLevel(_ orderbook.Side, level orderbook.LevelInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.levels = append(p.levels, level)
}

func (p *recordingPublisher) tradeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.trades)
}

func (p *recordingPublisher) levelCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.levels)
}

func TestListenerForwardsOnlyTrades(t *testing.T) {
	publisher := &recordingPublisher{}
	listener := feed.NewListener(publisher)

	trade := orderbook.Trade{Bid: orderbook.Leg{OrderID: 1}, Ask: orderbook.Leg{OrderID: 2}, Sequence: 1}
	listener.OnTrade(trade)
	listener.OnOrderAdded(nil)
	listener.OnOrderCancelled(nil)
	listener.OnReject(nil, 0)
	listener.OnPruned(0)

	require.Equal(t, 1, publisher.tradeCount())
	require.Equal(t, trade, publisher.trades[0])
}

func TestNewListenerDefaultsToNoopPublisher(t *testing.T) {
	listener := feed.NewListener(nil)
	require.NotPanics(t, func() { listener.OnTrade(orderbook.Trade{}) })
}

func TestRunLevelBroadcasterPublishesLevelsUntilCancelled(t *testing.T) {
	book := orderbook.NewOrderBook(orderbook.DefaultConfig())
	defer book.Close()

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 5)))
	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 2, orderbook.Sell, 105, 5)))

	publisher := &recordingPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		feed.RunLevelBroadcaster(ctx, book, publisher, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return publisher.levelCount() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunLevelBroadcaster did not stop after context cancellation")
	}
}
