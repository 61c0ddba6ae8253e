package avl

import (
	"errors"
)

// ErrorTreeNodeDuplicate surfaces from Tree.Add; insertOrder (orderbook/book.go)
// panics on it since two price levels can never legitimately share a key.
// ErrorTreeNodeNotFound surfaces from Tree.Remove on an empty or
// already-removed key.
var (
	ErrorTreeNodeDuplicate = errors.New("tree node is duplicated")
	ErrorTreeNodeNotFound  = errors.New("tree node is not found")
)
