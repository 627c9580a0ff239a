package model

import "time"

// Product describes a catalog entry. Stock is mutated as a side effect of
// checkout and never goes below zero.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Image       string
	CreatedAt   time.Time
}
