package orderbook

import (
	"errors"
)

// Errors used by the package. All of these are business rejections in the
// sense of §7 of the specification: valid input, business rule says no.
// Callers never see these as Go errors — add/modify signal rejection
// through an empty Trades return and cancel returns nothing — but the admission gate uses
// them internally and the Listener (listener.go) reports them by name.
var (
	ErrOrderDuplicate         = errors.New("order is duplicated")
	ErrOrderNotFound          = errors.New("order is not found")
	ErrInvalidOrderPrice      = errors.New("invalid order price")
	ErrInvalidOrderQuantity   = errors.New("invalid order quantity")
	ErrUnmatchableFillAndKill = errors.New("fill-and-kill order does not cross the opposing book")
	ErrInfeasibleFillOrKill   = errors.New("fill-or-kill order cannot be fully filled")
	ErrMarketIntoEmptySide    = errors.New("market order has no opposing liquidity")
)
