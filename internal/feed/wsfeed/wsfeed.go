// Package wsfeed is a minimal gorilla/websocket-backed Publisher, grounded
// on the realmfikri-Limitless broadcast-hub pattern (server/hub.go): a
// registry of per-connection subscriptions fed by a single broadcast call,
// with a non-blocking send so one slow client can never stall the others.
package wsfeed

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/drink970082/orderbook/orderbook"
)

// outboundMessage mirrors the {type, data} envelope the reference ws
// server wraps every broadcast message in.
type outboundMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type tradeMessage struct {
	Sequence uint64        `json:"sequence"`
	Bid      orderbook.Leg `json:"bid"`
	Ask      orderbook.Leg `json:"ask"`
}

type levelMessage struct {
	Side     string             `json:"side"`
	Price    orderbook.Price    `json:"price"`
	Quantity orderbook.Quantity `json:"quantity"`
}

type subscription struct {
	ch chan outboundMessage
}

// Hub is a gorilla/websocket Publisher: every trade and level update it
// receives is broadcast, best-effort, to every currently-subscribed
// connection.
type Hub struct {
	mu       sync.RWMutex
	subs     map[*subscription]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates a Hub that accepts connections from any origin, matching
// the reference server's permissive CheckOrigin for a demo feed.
func NewHub() *Hub {
	return &Hub{
		subs:     make(map[*subscription]struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
}

// ServeHTTP upgrades r to a websocket connection and streams every
// broadcast message to it until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := h.subscribe(32)
	defer h.unsubscribe(sub)

	for msg := range sub.ch {
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (h *Hub) subscribe(buffer int) *subscription {
	sub := &subscription{ch: make(chan outboundMessage, buffer)}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
	close(sub.ch)
}

func (h *Hub) broadcast(msg outboundMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		select {
		case sub.ch <- msg:
		default:
			// Subscriber isn't keeping up; drop rather than block the book.
		}
	}
}

// PublishTrade implements feed.Publisher.
func (h *Hub) PublishTrade(trade orderbook.Trade) {
	h.broadcast(outboundMessage{
		Type: "trade",
		Data: tradeMessage{Sequence: trade.Sequence, Bid: trade.Bid, Ask: trade.Ask},
	})
}

// PublishLevel implements feed.Publisher.
func (h *Hub) PublishLevel(side orderbook.Side, level orderbook.LevelInfo) {
	h.broadcast(outboundMessage{
		Type: "level",
		Data: levelMessage{Side: side.String(), Price: level.Price, Quantity: level.Quantity},
	})
}
