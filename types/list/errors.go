package list

import (
	"errors"
)

// Returned by List.Remove (list.go); removeOrder (orderbook/book.go) treats
// both as unreachable for a resting order's own position-handle and
// discards them rather than propagating them further.
var (
	ErrorListElementIsNil          = errors.New("list element is nil")
	ErrorListElementIsNotInTheList = errors.New("list element is not in the list")
)
