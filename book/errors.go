package book

import "errors"

// Sentinel errors returned by AddOrder/AmendOrder for caller-misuse cases
// the reference implementation leaves undefined and that a production
// implementation must reject explicitly instead.
var (
	// ErrZeroQuantity is returned when an add or amend would leave (or
	// start) an order at non-positive quantity.
	ErrZeroQuantity = errors.New("book: order quantity must be positive")

	// ErrDuplicateOrderID is returned by AddOrder when order_id already
	// identifies a live order.
	ErrDuplicateOrderID = errors.New("book: order id is already live")
)
