// Package ingress defines the narrow boundary an order-entry transport
// (sockets, ITCH, FIX) sits behind. Transport and wire-protocol framing are
// named out of scope for the core (§1); no concrete transport adapter is
// implemented here, only the interface and a trivial in-process gateway
// used by cmd/orderbook and by this package's own tests.
package ingress

import "github.com/drink970082/orderbook/orderbook"

// AddOrderRequest is the transport-agnostic shape of an incoming new-order
// request, decoupled from orderbook.Order so a wire adapter never needs to
// import the core's pooled order representation directly.
type AddOrderRequest struct {
	ID       uint64
	Side     orderbook.Side
	Type     orderbook.OrderType
	Price    orderbook.Price
	Quantity orderbook.Quantity
}

// ModifyRequest is the transport-agnostic shape of a modify-order request.
type ModifyRequest struct {
	ID       uint64
	Side     orderbook.Side
	Price    orderbook.Price
	Quantity orderbook.Quantity
}

// Gateway is what an ingress transport adapter submits parsed requests to.
type Gateway interface {
	Submit(req AddOrderRequest) orderbook.Trades
	Cancel(orderID uint64)
	Modify(req ModifyRequest) orderbook.Trades
}

// DirectGateway is a trivial in-process Gateway: it builds an
// orderbook.Order from the request and calls straight into the book,
// skipping any transport framing entirely. It exists to exercise Gateway
// rather than leave it a bare declaration, and is what cmd/orderbook uses
// for its local, non-networked demo mode.
type DirectGateway struct {
	Book *orderbook.OrderBook
}

// NewDirectGateway wraps book as a Gateway.
func NewDirectGateway(book *orderbook.OrderBook) *DirectGateway {
	return &DirectGateway{Book: book}
}

func (g *DirectGateway) Submit(req AddOrderRequest) orderbook.Trades {
	var order *orderbook.Order
	if req.Type == orderbook.Market {
		order = orderbook.NewMarketOrder(req.ID, req.Side, req.Quantity)
	} else {
		order = orderbook.NewOrder(req.Type, req.ID, req.Side, req.Price, req.Quantity)
	}
	return g.Book.AddOrder(order)
}

func (g *DirectGateway) Cancel(orderID uint64) {
	g.Book.CancelOrder(orderID)
}

func (g *DirectGateway) Modify(req ModifyRequest) orderbook.Trades {
	return g.Book.ModifyOrder(req.ID, req.Side, req.Price, req.Quantity)
}
