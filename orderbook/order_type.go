package orderbook

// OrderType is an enumeration of the order liveness semantics the book
// understands. Unlike time-in-force options layered on top of a single
// limit order type, each of these names a distinct admission rule and
// distinct post-admission liveness (see the admission gate in admission.go).
type OrderType uint8

const (
	// GoodTillCancel rests until it is filled or explicitly cancelled.
	GoodTillCancel OrderType = iota + 1

	// GoodForDay rests until it is filled, cancelled, or swept away by the
	// next market-close prune.
	GoodForDay

	// FillAndKill (a.k.a. Immediate-Or-Cancel) takes whatever liquidity is
	// immediately available and cancels whatever quantity is left over. It
	// is admitted only if it crosses the opposing best price; see canMatch.
	FillAndKill

	// FillOrKill (a.k.a. All-Or-None-immediate) executes its full quantity
	// immediately or is rejected outright; it never rests. See
	// canFullyFill.
	FillOrKill

	// Market executes against whatever opposing liquidity is available
	// without a price limit. The book converts a Market order into a limit
	// order priced at the opposing side's worst resting price at admission
	// time (see admitMarket), sweeping available depth before any leftover
	// quantity is cancelled.
	Market
)

// String returns a human-readable representation of the order type.
func (t OrderType) String() string {
	switch t {
	case GoodTillCancel:
		return "good-till-cancel"
	case GoodForDay:
		return "good-for-day"
	case FillAndKill:
		return "fill-and-kill"
	case FillOrKill:
		return "fill-or-kill"
	case Market:
		return "market"
	default:
		return "unknown"
	}
}

// restsInBook reports whether an order of this type may remain in the book
// after admission if it is not immediately and fully filled.
func (t OrderType) restsInBook() bool {
	return t == GoodTillCancel || t == GoodForDay
}
