package orderbook_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/drink970082/orderbook/orderbook"
	mockorderbook "github.com/drink970082/orderbook/orderbook/mocks"
)

func TestCancelUnknownOrderIsANoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnReject(orderbook.ErrOrderNotFound, uint64(99)).Times(1)

	book := orderbook.NewOrderBook(orderbook.DefaultConfig(), orderbook.WithListener(listener))
	defer book.Close()

	book.CancelOrder(99)
}

func TestCancelInvertsAddWhenNoCrossingOccurred(t *testing.T) {
	book := newTestBook(t)

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 10)))
	require.Equal(t, 1, book.Size())

	book.CancelOrder(1)
	require.Equal(t, 0, book.Size())

	bids, asks := book.Snapshot()
	require.Empty(t, bids)
	require.Empty(t, asks)
}

// S6: modify loses time priority — the replacement goes to the tail of
// its price level even if that level already had other resting orders.
func TestModifyOrderLosesTimePriority(t *testing.T) {
	book := newTestBook(t)

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 100, 5)))
	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 2, orderbook.Buy, 100, 5)))

	// Order 1 modifies in place at the same price: despite arriving first
	// originally, the replacement now sits behind order 2.
	require.Empty(t, book.ModifyOrder(1, orderbook.Buy, 100, 5))

	trades := book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 30, orderbook.Sell, 100, 6))
	require.Len(t, trades, 2)
	require.Equal(t, uint64(2), trades[0].Bid.OrderID)
	require.Equal(t, uint64(1), trades[1].Bid.OrderID)
}

func TestModifyOrderCanCrossAndProduceTrades(t *testing.T) {
	book := newTestBook(t)

	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 1, orderbook.Buy, 95, 10)))
	require.Empty(t, book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, 2, orderbook.Sell, 100, 4)))

	trades := book.ModifyOrder(1, orderbook.Buy, 100, 10)
	require.Len(t, trades, 1)
	require.Equal(t, orderbook.Quantity(4), trades[0].Bid.Quantity)

	bids, asks := book.Snapshot()
	require.Empty(t, asks)
	require.Equal(t, []orderbook.LevelInfo{{Price: 100, Quantity: 6}}, bids)
}

func TestModifyUnknownOrderIsANoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listener := mockorderbook.NewMockListener(ctrl)
	listener.EXPECT().OnReject(orderbook.ErrOrderNotFound, uint64(5)).Times(1)

	book := orderbook.NewOrderBook(orderbook.DefaultConfig(), orderbook.WithListener(listener))
	defer book.Close()

	require.Empty(t, book.ModifyOrder(5, orderbook.Buy, 100, 1))
}
