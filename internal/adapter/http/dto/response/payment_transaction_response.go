package response

import (
	"time"

	"servicehub/internal/domain/entities"
)

type PaymentTransactionResponse struct {
	TransactionID     string    `json:"transaction_id"`
	BookingID         string    `json:"booking_id"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	ProviderReference string    `json:"provider_reference,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPaymentTransaction(tx entities.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		TransactionID:     tx.ID,
		BookingID:         tx.BookingID,
		Amount:            tx.Amount,
		Status:            string(tx.Status),
		ProviderReference: tx.ProviderReference,
		CreatedAt:         tx.CreatedAt,
		UpdatedAt:         tx.UpdatedAt,
	}
}
