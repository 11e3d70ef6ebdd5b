package interfaces

import (
	"context"
	"errors"

	"servicehub/internal/domain/entities"
)

// ErrVersionConflict is returned by status updates when the record's current
// status no longer matches the expected one, i.e. a concurrent writer won the
// race. Callers retry the whole read-validate-write cycle, not just the write.
var ErrVersionConflict = errors.New("status changed concurrently")

// IBookingRepository abstracts persistence for Booking.
//
// Conventions shared by all repositories here:
//   - Get* returns the zero value (ID == "") when the record does not exist.
//   - UpdateStatus is a compare-and-set on the status field: the write only
//     lands if the stored status still equals from; otherwise ErrVersionConflict.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.BookingStatus) (entities.Booking, error)
	Cancel(ctx context.Context, id string, from entities.BookingStatus, reason string) (entities.Booking, error)
}
