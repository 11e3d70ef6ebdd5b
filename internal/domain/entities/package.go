package entities

import "time"

// Package is a provider-defined fixed-price, fixed-scope offering a customer
// can select instead of a custom quote. Immutable once published; the booking
// engine only ever reads it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_id-index): service_id

type Package struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Features     []string  `json:"features,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
