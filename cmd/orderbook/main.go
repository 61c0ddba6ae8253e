package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/drink970082/orderbook/internal/feed"
	"github.com/drink970082/orderbook/internal/feed/wsfeed"
	"github.com/drink970082/orderbook/internal/ingress"
	"github.com/drink970082/orderbook/orderbook"
)

func main() {
	var (
		feedAddr     string
		feedInterval time.Duration
	)
	flag.StringVar(&feedAddr, "feed", "", "if set, serve a websocket market-data feed at this address (e.g. :8080)")
	flag.DurationVar(&feedInterval, "feed-interval", time.Second, "level broadcast interval when -feed is set")
	flag.Parse()

	var publisher feed.Publisher = feed.NoopPublisher{}
	if feedAddr != "" {
		hub := wsfeed.NewHub()
		publisher = hub

		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			log.Printf("market-data feed listening on %s", feedAddr)
			if err := http.ListenAndServe(feedAddr, mux); err != nil {
				log.Fatal(err)
			}
		}()
	}

	book := orderbook.NewOrderBook(
		orderbook.DefaultConfig(),
		orderbook.WithListener(multiListener{
			feed.NewListener(publisher),
			orderbook.NewStdLogListener(nil),
		}),
	)
	defer book.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.RunLevelBroadcaster(ctx, book, publisher, feedInterval)

	gateway := ingress.NewDirectGateway(book)

	for _, trade := range gateway.Submit(ingress.AddOrderRequest{
		ID: 1, Side: orderbook.Buy, Type: orderbook.GoodTillCancel, Price: 100, Quantity: 10,
	}) {
		fmt.Printf("trade: %+v\n", trade)
	}
	for _, trade := range gateway.Submit(ingress.AddOrderRequest{
		ID: 2, Side: orderbook.Sell, Type: orderbook.GoodTillCancel, Price: 100, Quantity: 4,
	}) {
		fmt.Printf("trade: %+v\n", trade)
	}

	bids, asks := book.Snapshot()
	fmt.Printf("bids: %+v\n", bids)
	fmt.Printf("asks: %+v\n", asks)
}

// multiListener fans a single book event out to every listener in order.
type multiListener []orderbook.Listener

func (m multiListener) OnOrderAdded(order *orderbook.Order) {
	for _, l := range m {
		l.OnOrderAdded(order)
	}
}

func (m multiListener) OnOrderCancelled(order *orderbook.Order) {
	for _, l := range m {
		l.OnOrderCancelled(order)
	}
}

func (m multiListener) OnTrade(trade orderbook.Trade) {
	for _, l := range m {
		l.OnTrade(trade)
	}
}

func (m multiListener) OnReject(reason error, orderID uint64) {
	for _, l := range m {
		l.OnReject(reason, orderID)
	}
}

func (m multiListener) OnPruned(count int) {
	for _, l := range m {
		l.OnPruned(count)
	}
}
