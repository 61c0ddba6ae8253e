package orderbook

import (
	"log"
)

//go:generate mockgen -destination=mocks/listener_mock.go -package=mockorderbook . Listener

// Listener receives structured notifications of book activity without the
// core taking a hard dependency on any particular logging or market-data
// framework — none appears anywhere in the retrieved corpus, so this
// mirrors the reference implementation's own Handler interface
// (matching/handler.go) rather than reaching for one.
//
// All methods are called while the book's mutex is held, so implementations
// must not call back into the OrderBook and must not block.
type Listener interface {
	// OnOrderAdded is called when an order is inserted at the tail of a
	// price level's FIFO queue.
	OnOrderAdded(order *Order)

	// OnOrderCancelled is called when an order is removed from its FIFO
	// queue without having been fully filled by a trade.
	OnOrderCancelled(order *Order)

	// OnTrade is called once per cross, in the order crosses occur.
	OnTrade(trade Trade)

	// OnReject is called whenever add_order/modify_order silently rejects
	// an order per §7 of the specification; reason names which rule fired.
	OnReject(reason error, orderID uint64)

	// OnPruned is called once per market-close sweep with the number of
	// GoodForDay orders it cancelled, even when that number is zero.
	OnPruned(count int)
}

// NoopListener discards every notification. It is the default used by
// NewOrderBook when no Listener is supplied.
type NoopListener struct{}

func (NoopListener) OnOrderAdded(*Order)     {}
func (NoopListener) OnOrderCancelled(*Order) {}
func (NoopListener) OnTrade(Trade)           {}
func (NoopListener) OnReject(error, uint64)  {}
func (NoopListener) OnPruned(int)            {}

// StdLogListener formats book events through a standard library *log.Logger,
// matching the log.Fatal-at-the-boundary, no-framework style the reference
// implementation's cmd/engine/main.go uses at its own boundary.
type StdLogListener struct {
	Logger *log.Logger
}

// NewStdLogListener wraps logger, or the standard logger if logger is nil.
func NewStdLogListener(logger *log.Logger) *StdLogListener {
	if logger == nil {
		logger = log.Default()
	}
	return &StdLogListener{Logger: logger}
}

func (l *StdLogListener) OnOrderAdded(order *Order) {
	l.Logger.Printf("order added: id=%d side=%s type=%s price=%d quantity=%d",
		order.ID(), order.Side(), order.Type(), order.Price(), order.RemainingQuantity())
}

func (l *StdLogListener) OnOrderCancelled(order *Order) {
	l.Logger.Printf("order cancelled: id=%d remaining=%d", order.ID(), order.RemainingQuantity())
}

func (l *StdLogListener) OnTrade(trade Trade) {
	l.Logger.Printf("trade #%d: bid=%d@%d ask=%d@%d qty=%d",
		trade.Sequence, trade.Bid.OrderID, trade.Bid.Price, trade.Ask.OrderID, trade.Ask.Price, trade.Bid.Quantity)
}

func (l *StdLogListener) OnReject(reason error, orderID uint64) {
	l.Logger.Printf("order %d rejected: %v", orderID, reason)
}

func (l *StdLogListener) OnPruned(count int) {
	if count == 0 {
		l.Logger.Printf("market-close prune: no good-for-day orders to cancel")
		return
	}
	l.Logger.Printf("market-close prune: cancelled %d good-for-day orders", count)
}
