package request

import "strings"

// BookingCreateRequest is the intake payload. Exactly one of package_id /
// custom_budget must be provided: package bookings go through payment,
// custom-budget bookings confirm directly.

type BookingCreateRequest struct {
	ServiceID          string  `json:"service_id" binding:"required"`
	CustomerName       string  `json:"customer_name" binding:"required"`
	CustomerEmail      string  `json:"customer_email" binding:"required,email"`
	ProjectDescription string  `json:"project_description" binding:"required"`
	Timeline           string  `json:"timeline"`
	PackageID          string  `json:"package_id"`
	CustomBudget       float64 `json:"custom_budget"`
}

func (r BookingCreateRequest) ResolvePackageID() string {
	return strings.TrimSpace(r.PackageID)
}

// HasSelection reports whether the request carries any selection at all; the
// engine still enforces mutual exclusivity and positivity.
func (r BookingCreateRequest) HasSelection() bool {
	return r.ResolvePackageID() != "" || r.CustomBudget != 0
}

// BookingStatusUpdateRequest carries the provider-side status change.

type BookingStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
