package response

import (
	"time"

	"servicehub/internal/domain/entities"
)

type BookingResponse struct {
	ID                 string    `json:"id"`
	ServiceID          string    `json:"service_id"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	ProjectDescription string    `json:"project_description"`
	SelectedPackageID  string    `json:"selected_package_id,omitempty"`
	CustomBudget       float64   `json:"custom_budget,omitempty"`
	Timeline           string    `json:"timeline,omitempty"`
	Status             string    `json:"status"`
	CancelReason       string    `json:"cancel_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Payment *PaymentTransactionResponse `json:"payment,omitempty"`
}

func FromBooking(b entities.Booking, tx *entities.PaymentTransaction) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		ServiceID:          b.ServiceID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		ProjectDescription: b.ProjectDescription,
		SelectedPackageID:  b.SelectedPackageID,
		CustomBudget:       b.CustomBudget,
		Timeline:           string(b.Timeline),
		Status:             string(b.Status),
		CancelReason:       b.CancelReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if tx != nil {
		p := FromPaymentTransaction(*tx)
		resp.Payment = &p
	}
	return resp
}
