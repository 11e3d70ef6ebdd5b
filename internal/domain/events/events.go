package events

import "time"

// Event names emitted by the booking and reconciliation engines. Delivery
// (email, push) is owned by whatever dispatcher is injected; the engines only
// publish.

type EventName string

const (
	BookingConfirmed       EventName = "booking.confirmed"
	BookingCancelled       EventName = "booking.cancelled"
	PaymentCompleted       EventName = "payment.completed"
	PaymentFailed          EventName = "payment.failed"
	ReconciliationMismatch EventName = "payment.reconciliation_mismatch"
)

// Event is the payload handed to the notification dispatcher.
//
// ReconciliationMismatch carries the one inconsistency the core tolerates on
// purpose: a transaction marked completed whose booking-status write failed.
// Money received is never rolled back; the event is the hook for out-of-band
// repair.

type Event struct {
	Name          EventName `json:"name"`
	BookingID     string    `json:"booking_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
