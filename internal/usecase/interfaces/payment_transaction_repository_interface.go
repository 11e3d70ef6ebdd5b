package interfaces

import (
	"context"

	"servicehub/internal/domain/entities"
)

// IPaymentTransactionRepository abstracts persistence for PaymentTransaction.
//
// UpdateStatus follows the same compare-and-set convention as
// IBookingRepository.UpdateStatus; providerRef is written alongside the new
// status (empty for failures).

type IPaymentTransactionRepository interface {
	Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error)
	GetByBookingID(ctx context.Context, bookingID string) (entities.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, providerRef string) (entities.PaymentTransaction, error)
}
