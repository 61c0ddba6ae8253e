package orderbook_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/drink970082/orderbook/orderbook"
	mockorderbook "github.com/drink970082/orderbook/orderbook/mocks"
)

// Idempotent rejection: re-submitting the same id is a no-op on the second
// call and leaves the book exactly as the first call did.
func TestDuplicateOrderIDIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnOrderAdded(gomock.Any()).Times(1)
	listener.EXPECT().OnReject(orderbook.ErrOrderDuplicate, uint64(1)).Times(1)

	cfg := orderbook.DefaultConfig()
	book := orderbook.NewOrderBook(cfg, orderbook.WithListener(listener))
	defer book.Close()

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 10)))
	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 10)))
	require.Equal(t, 1, book.Size())
}

// S2: a FillOrKill that cannot be fully satisfied by the resting depth at
// or better than its limit is rejected outright and never rests.
func TestFillOrKillInsufficientDepthIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnOrderAdded(gomock.Any()).AnyTimes()
	listener.EXPECT().OnReject(orderbook.ErrInfeasibleFillOrKill, uint64(10)).Times(1)

	book := orderbook.NewOrderBook(orderbook.DefaultConfig(), orderbook.WithListener(listener))
	defer book.Close()

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Sell, 100, 3)))

	trades := book.AddOrder(orderbook.NewOrder(orderbook.FillOrKill, 10, orderbook.Buy, 100, 5))
	require.Empty(t, trades)
	require.Equal(t, 1, book.Size())
}

// S3: a FillOrKill whose quantity is fully satisfiable by opposing depth
// at or better than its limit, possibly spanning several price levels, is
// admitted and fully filled.
func TestFillOrKillFeasibleAcrossLevelsIsFilled(t *testing.T) {
	book := newTestBook(t)

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Sell, 100, 3)))
	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 2, orderbook.Sell, 101, 4)))

	trades := book.AddOrder(orderbook.NewOrder(orderbook.FillOrKill, 10, orderbook.Buy, 101, 5))
	require.Len(t, trades, 2)
	require.Equal(t, 1, book.Size())

	bids, asks := book.Snapshot()
	require.Empty(t, bids)
	require.Equal(t, []orderbook.LevelInfo{{Price: 101, Quantity: 2}}, asks)
}

// A FillAndKill that does not cross the opposing best price at admission
// is rejected rather than inserted and immediately cancelled.
func TestFillAndKillNotCrossingIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnOrderAdded(gomock.Any()).AnyTimes()
	listener.EXPECT().OnReject(orderbook.ErrUnmatchableFillAndKill, uint64(10)).Times(1)

	book := orderbook.NewOrderBook(orderbook.DefaultConfig(), orderbook.WithListener(listener))
	defer book.Close()

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Sell, 105, 3)))

	trades := book.AddOrder(orderbook.NewOrder(orderbook.FillAndKill, 10, orderbook.Buy, 100, 5))
	require.Empty(t, trades)
	require.Equal(t, 1, book.Size())
}

func TestZeroQuantityOrderIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnReject(orderbook.ErrInvalidOrderQuantity, uint64(1)).Times(1)

	book := orderbook.NewOrderBook(orderbook.DefaultConfig(), orderbook.WithListener(listener))
	defer book.Close()

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 0)))
	require.Equal(t, 0, book.Size())
}
