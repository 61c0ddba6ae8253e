package orderbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/drink970082/orderbook/orderbook"
	mockorderbook "github.com/drink970082/orderbook/orderbook/mocks"

	"github.com/golang/mock/gomock"
)

// offsetClock reports real wall-clock time shifted by a fixed offset, so a
// test can park "now" a few milliseconds before a deadline and let real
// time carry it across without a multi-hour sleep.
type offsetClock struct {
	offset time.Duration
}

func (c offsetClock) Now() time.Time { return time.Now().Add(c.offset) }

func TestOrderBookClosePromptlyStopsThePruner(t *testing.T) {
	cfg := orderbook.DefaultConfig() // real clock, market close hours away
	book := orderbook.NewOrderBook(cfg)

	done := make(chan struct{})
	go func() {
		book.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return promptly; pruner failed to wake on shutdown")
	}
}

func TestOrderBookPrunesGoodForDayOrdersAtMarketClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnOrderAdded(gomock.Any()).AnyTimes()
	listener.EXPECT().OnOrderCancelled(gomock.Any()).Times(1)
	listener.EXPECT().OnPruned(1).Times(1)

	// Config only carries a market-close hour and minute, so the nearest
	// representable close is the next whole-minute boundary. The offset
	// clock is set to report a "now" 20ms before that boundary, giving the
	// pruner a short, deterministic real-time wait instead of depending on
	// where the wall clock actually sits when the test runs.
	now := time.Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	fakeNow := next.Add(-20 * time.Millisecond)

	cfg := orderbook.Config{
		MarketCloseHour:   next.Hour(),
		MarketCloseMinute: next.Minute(),
		PruneSlack:        0,
		Clock:             offsetClock{offset: fakeNow.Sub(now)},
	}

	book := orderbook.NewOrderBook(cfg, orderbook.WithListener(listener))
	defer book.Close()

	trades := book.AddOrder(orderbook.NewOrder(orderbook.GoodForDay, 1, orderbook.Buy, 100, 10))
	require.Empty(t, trades)
	require.Equal(t, 1, book.Size())

	require.Eventually(t, func() bool {
		return book.Size() == 0
	}, time.Second, 5*time.Millisecond, "good-for-day order was not pruned at market close")
}
