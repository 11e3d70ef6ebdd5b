package entities

import "time"

// BookingStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - Status only moves forward along the transition table in CanTransitionTo;
//     the cancellation edges from pending/confirmed are the only side exits.
//   - completed and cancelled are terminal.

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Timeline is the customer's delivery estimate captured at intake. Optional.

type Timeline string

const (
	TimelineOneToTwoWeeks  Timeline = "1-2 weeks"
	TimelineTwoToFourWeeks Timeline = "2-4 weeks"
	TimelineOneToTwoMonths Timeline = "1-2 months"
	TimelineTwoPlusMonths  Timeline = "2+ months"
)

// Valid reports whether t is one of the known timeline estimates.
// The empty value is allowed (timeline not specified).
func (t Timeline) Valid() bool {
	switch t {
	case "", TimelineOneToTwoWeeks, TimelineTwoToFourWeeks, TimelineOneToTwoMonths, TimelineTwoPlusMonths:
		return true
	}
	return false
}

// Booking is a customer's request to engage a provider for a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_id-index): service_id
//
// Exactly one of SelectedPackageID / CustomBudget is set once the booking is
// persisted: package bookings settle through a PaymentTransaction, custom-budget
// bookings confirm directly with no payment leg.

type Booking struct {
	ID                 string        `json:"id"`
	ServiceID          string        `json:"service_id"`
	CustomerName       string        `json:"customer_name"`
	CustomerEmail      string        `json:"customer_email"`
	ProjectDescription string        `json:"project_description"`
	SelectedPackageID  string        `json:"selected_package_id,omitempty"`
	CustomBudget       float64       `json:"custom_budget,omitempty"`
	Timeline           Timeline      `json:"timeline,omitempty"`
	Status             BookingStatus `json:"status"`
	CancelReason       string        `json:"cancel_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// bookingTransitions is the closed edge set of the booking state graph.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0 && s.Valid()
}

// CanTransitionTo reports whether s -> target is a legal edge.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// RequiresPayment reports whether the booking settles through a
// PaymentTransaction before it may be confirmed.
func (b Booking) RequiresPayment() bool {
	return b.SelectedPackageID != ""
}
