package orderbook

import (
	"sync"

	"github.com/drink970082/orderbook/types/avl"
	"github.com/drink970082/orderbook/types/list"
)

// Allocator encapsulates pooled allocation of the values that come and go
// on the book's hottest path — orders, price levels, and the tree/list
// nodes that index them — using sync.Pool internally, following the
// reference implementation's allocator.go rather than leaving churn to
// routine garbage collection.
type Allocator struct {
	orders      sync.Pool
	priceLevels sync.Pool

	priceLevelNodes sync.Pool // used by avl.Tree[Price, *priceLevel]
	queueElements   sync.Pool // used by list.List[*Order]
}

// NewAllocator creates and returns a new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	a.orders = sync.Pool{New: func() any {
		return new(Order)
	}}
	a.priceLevels = sync.Pool{New: func() any {
		return new(priceLevel)
	}}
	a.priceLevelNodes = sync.Pool{New: func() any {
		return new(avl.Node[Price, *priceLevel])
	}}
	a.queueElements = sync.Pool{New: func() any {
		return new(list.Element[*Order])
	}}
	return a
}

////////////////////////////////////////////////////////////////
// Orders
////////////////////////////////////////////////////////////////

// GetOrder allocates an Order instance from the pool.
func (a *Allocator) GetOrder() *Order {
	return a.orders.Get().(*Order)
}

// PutOrder releases an Order instance back to the pool.
func (a *Allocator) PutOrder(order *Order) {
	order.reset()
	a.orders.Put(order)
}

////////////////////////////////////////////////////////////////
// Price levels
////////////////////////////////////////////////////////////////

// GetPriceLevel allocates a priceLevel instance from the pool.
func (a *Allocator) GetPriceLevel(price Price) *priceLevel {
	pl := a.priceLevels.Get().(*priceLevel)
	pl.price = price
	pl.queue = list.NewListPooled[*Order](&a.queueElements)
	return pl
}

// PutPriceLevel releases a priceLevel instance back to the pool.
func (a *Allocator) PutPriceLevel(pl *priceLevel) {
	pl.queue.Clean()
	*pl = priceLevel{}
	a.priceLevels.Put(pl)
}
