package orderbook

import (
	"sync"

	"github.com/tidwall/hashmap"
	"gopkg.in/typ.v4"

	"github.com/drink970082/orderbook/types/avl"
)

// OrderBook is a single-instrument, price-time-priority limit order book.
// It holds the twin-sided price-indexed book, the order index, and the
// aggregate level-data index described in the data model, and drives the
// matching algorithm across the order types in order_type.go.
//
// The entire book state is protected by one coarse mutex (mu): a single
// admission can traverse many price levels and mutate both sides, so
// finer-grained per-level locking would need ordered acquisition across an
// unbounded lock set for no benefit over the book's already cache-bound
// critical path. Every exported method acquires mu for its duration and
// releases it on every exit path.
type OrderBook struct {
	mu   sync.Mutex
	cond *sync.Cond // guards the pruner's timed wait; shares mu's lock

	cfg       Config
	allocator *Allocator
	listener  Listener

	bids avl.Tree[Price, *priceLevel] // descending: best bid first
	asks avl.Tree[Price, *priceLevel] // ascending: best ask first

	orders *hashmap.Map[uint64, *Order]
	levels *hashmap.Map[Price, *levelData]

	nextSequence uint64

	shutdown   bool
	prunerDone chan struct{}
}

// Option configures an OrderBook at construction time.
type Option func(*OrderBook)

// WithListener installs a Listener to receive book notifications.
func WithListener(l Listener) Option {
	return func(ob *OrderBook) { ob.listener = l }
}

// NewOrderBook creates a new OrderBook and starts its background
// day-order pruner (§4.5). Callers must call Close when done with the
// book to stop the pruner goroutine.
func NewOrderBook(cfg Config, opts ...Option) *OrderBook {
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}

	allocator := NewAllocator()

	ob := &OrderBook{
		cfg:        cfg,
		allocator:  allocator,
		listener:   NoopListener{},
		bids:       avl.NewTreePooled[Price, *priceLevel](func(a, b Price) int { return -typ.Compare(a, b) }, &allocator.priceLevelNodes),
		asks:       avl.NewTreePooled[Price, *priceLevel](func(a, b Price) int { return typ.Compare(a, b) }, &allocator.priceLevelNodes),
		orders:     hashmap.New[uint64, *Order](defaultReservedOrderSlots),
		levels:     hashmap.New[Price, *levelData](defaultReservedLevelSlots),
		prunerDone: make(chan struct{}),
	}
	ob.cond = sync.NewCond(&ob.mu)
	for _, opt := range opts {
		opt(ob)
	}

	go ob.prune()

	return ob
}

// Close signals the background pruner to stop and blocks until it has
// exited. After Close returns, no further public operation is valid.
func (ob *OrderBook) Close() {
	ob.mu.Lock()
	ob.shutdown = true
	ob.cond.Broadcast()
	ob.mu.Unlock()

	<-ob.prunerDone
}

// Size returns the number of resting orders in the book.
func (ob *OrderBook) Size() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.orders.Len()
}

// Snapshot returns the current bid and ask levels, each in that side's
// priority order, as the public read-side of the level data index.
func (ob *OrderBook) Snapshot() (bids, asks []LevelInfo) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.snapshotSide(ob.bids), ob.snapshotSide(ob.asks)
}

func (ob *OrderBook) snapshotSide(tree avl.Tree[Price, *priceLevel]) []LevelInfo {
	levels := make([]LevelInfo, 0, tree.Size())
	tree.IterateInOrder(func(pl *priceLevel) bool {
		ld, _ := ob.levels.Get(pl.price)
		levels = append(levels, LevelInfo{
			Price:    pl.price,
			Quantity: Quantity(ld.quantity.Lo),
		})
		return false
	})
	return levels
}

////////////////////////////////////////////////////////////////
// Low-level side book manipulation. Callers hold ob.mu.
////////////////////////////////////////////////////////////////

// sideTree returns the tree backing side's resting orders.
func (ob *OrderBook) sideTree(side Side) *avl.Tree[Price, *priceLevel] {
	if side == Buy {
		return &ob.bids
	}
	return &ob.asks
}

// bestNode returns the top-of-book node for side, or nil if that side is
// empty. Because the bid tree is built with a negated comparator, both
// trees' MostLeft is their best price.
func (ob *OrderBook) bestNode(side Side) *avl.Node[Price, *priceLevel] {
	tree := ob.sideTree(side)
	left := tree.MostLeft()
	if left == nil {
		return nil
	}
	return left
}

// nextSequenceNumber returns the next monotonically increasing trade
// sequence number (§4.4).
func (ob *OrderBook) nextSequenceNumber() uint64 {
	ob.nextSequence++
	return ob.nextSequence
}

// insertOrder inserts order at the tail of its price level on its side,
// creating the level if it does not yet exist, and updates the order
// index and level data index.
func (ob *OrderBook) insertOrder(order *Order) {
	tree := ob.sideTree(order.side)

	node := tree.Find(order.price)
	if node == nil {
		pl := ob.allocator.GetPriceLevel(order.price)
		var err error
		node, err = tree.Add(order.price, pl)
		if err != nil {
			panic(err)
		}
	}

	pl := node.Value()
	order.priceLevel = node
	order.queued = pl.queue.PushBack(order)

	ob.orders.Set(order.id, order)

	ld, ok := ob.levels.Get(order.price)
	if !ok {
		ld = &levelData{}
		ob.levels.Set(order.price, ld)
	}
	ld.add(order.remainingQuantity)

	ob.listener.OnOrderAdded(order)
}

// removeOrder removes order from its FIFO queue and the order index,
// deletes its price level if it has become empty, and updates the level
// data index. It does not notify the listener; callers decide whether the
// removal is a cancellation, a fill, or a prune and notify accordingly.
func (ob *OrderBook) removeOrder(order *Order) {
	tree := ob.sideTree(order.side)

	ld, ok := ob.levels.Get(order.price)
	if ok {
		ld.removeOrder(order.remainingQuantity)
		if ld.isEmpty() {
			ob.levels.Delete(order.price)
		}
	}

	pl := order.priceLevel.Value()
	_, _ = pl.queue.Remove(order.queued)
	order.queued = nil

	if pl.Len() == 0 {
		_, _ = tree.Remove(order.price)
		ob.allocator.PutPriceLevel(pl)
	}
	order.priceLevel = nil

	ob.orders.Delete(order.id)
}

// fillOrder applies a fill of quantity to order, keeping the level data
// aggregate in lockstep without touching the FIFO structure (the FIFO only
// changes if the order becomes fully filled, which callers handle via
// removeOrder).
func (ob *OrderBook) fillOrder(order *Order, quantity Quantity) {
	order.fill(quantity)

	ld, ok := ob.levels.Get(order.price)
	if !ok {
		panic("fillOrder: level data missing for resting order")
	}
	ld.reduce(quantity)
}
