package orderbook

// Leg describes one side's participation in a trade: the resting or
// incoming order that was filled, the price it was filled at (its own
// price, not the counterparty's — see the crossing loop in matching.go),
// and the quantity filled on this leg.
type Leg struct {
	OrderID  uint64
	Price    Price
	Quantity Quantity
}

// Trade records a single cross between a bid leg and an ask leg. A Trade
// is never emitted with a zero-quantity leg.
type Trade struct {
	Bid Leg
	Ask Leg

	// Sequence is a monotonically increasing number assigned under the
	// book lock at emission time, letting a downstream market-data
	// consumer detect gaps or reordering without re-deriving it from the
	// book (see internal/feed).
	Sequence uint64
}

// Trades is a sequence of trades produced by a single admission, in the
// order the crosses occurred.
type Trades []Trade
