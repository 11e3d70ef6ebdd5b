package entities

import "time"

// PaymentStatus represents the settlement state of a package booking's price.
//
// pending -> completed and pending -> failed are the only legal transitions;
// a settled transaction never changes again.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Settled reports whether the transaction reached a terminal payment state.
func (s PaymentStatus) Settled() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// PaymentOutcome is the verdict carried by a provider callback.

type PaymentOutcome string

const (
	PaymentOutcomeSuccess PaymentOutcome = "success"
	PaymentOutcomeFailure PaymentOutcome = "failure"
)

func (o PaymentOutcome) Valid() bool {
	return o == PaymentOutcomeSuccess || o == PaymentOutcomeFailure
}

// PaymentTransaction tracks settlement of a package-based booking.
// One-to-one with a booking that selected a package; Amount equals the
// package price at booking time. ProviderReference is set only on completion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id

type PaymentTransaction struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"booking_id"`
	Amount            float64       `json:"amount"`
	Status            PaymentStatus `json:"status"`
	ProviderReference string        `json:"provider_reference,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
