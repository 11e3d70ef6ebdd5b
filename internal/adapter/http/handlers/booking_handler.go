package handlers

import (
	"errors"
	"log"
	"net/http"

	request "servicehub/internal/adapter/http/dto/request"
	response "servicehub/internal/adapter/http/dto/response"
	"servicehub/internal/domain/entities"
	"servicehub/internal/usecase"
	"servicehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	usecase usecase.IBookingLifecycleUseCase
}

func NewBookingHandler(uc usecase.IBookingLifecycleUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking runs the whole intake flow in one request: validate intake,
// apply the package or custom-budget selection, finalize.
//
// @Summary  Create a booking
// @Accept   json
// @Produce  json
// @Param    booking body request.BookingCreateRequest true "intake payload"
// @Success  201 {object} response.BookingResponse
// @Router   /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	if payload.ResolvePackageID() != "" && payload.CustomBudget != 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Choose either a package or a custom budget, not both", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !payload.HasSelection() {
		appErr := pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "A package or a custom budget is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draft, err := h.usecase.SubmitIntake(payload.ServiceID, payload.CustomerName, payload.CustomerEmail, payload.ProjectDescription, entities.Timeline(payload.Timeline))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if pkgID := payload.ResolvePackageID(); pkgID != "" {
		err = h.usecase.SelectPackage(c.Request.Context(), draft, pkgID)
	} else {
		err = h.usecase.SelectCustomBudget(draft, payload.CustomBudget)
	}
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	booking, tx, err := h.usecase.Finalize(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[booking][handler] finalize failed service_id=%s err=%v", payload.ServiceID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] created booking_id=%s status=%s", booking.ID, booking.Status)

	c.JSON(http.StatusCreated, response.FromBooking(booking, tx))
}

// GetBooking returns a booking and its payment transaction, if any.
//
// @Summary  Get a booking
// @Produce  json
// @Param    id path string true "booking id"
// @Success  200 {object} response.BookingResponse
// @Router   /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, tx, err := h.usecase.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking, tx))
}

// UpdateBookingStatus applies a provider-side status transition.
//
// @Summary  Advance a booking's status
// @Accept   json
// @Produce  json
// @Param    id path string true "booking id"
// @Param    status body request.BookingStatusUpdateRequest true "target status"
// @Success  200 {object} response.BookingResponse
// @Router   /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("id")

	var payload request.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Advance(c.Request.Context(), bookingID, entities.BookingStatus(payload.Status))
	if err != nil {
		log.Printf("[booking][handler] advance failed booking_id=%s target=%s err=%v", bookingID, payload.Status, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] advanced booking_id=%s status=%s", booking.ID, booking.Status)

	c.JSON(http.StatusOK, response.FromBooking(booking, nil))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentPending):
		return pkg.NewDomainErrorSimple("PAYMENT_PENDING", "Payment must complete before this booking can be confirmed", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Booking changed concurrently, retry the operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Payment transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
