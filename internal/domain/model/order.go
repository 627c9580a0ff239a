package model

import "time"

// OrderItem is a line item embedded in an order. Name and price are captured
// at order time and stay fixed regardless of later catalog changes.
type OrderItem struct {
	ProductID int64
	Name      string
	Price     float64
	Quantity  int
}

// Order is an immutable record of a completed checkout. Username is a
// snapshot of the buyer's display name, not a live reference.
type Order struct {
	ID        int64
	Username  string
	Items     []OrderItem
	OrderDate time.Time
}
