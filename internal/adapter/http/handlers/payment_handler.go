package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "servicehub/internal/adapter/http/dto/request"
	response "servicehub/internal/adapter/http/dto/response"
	"servicehub/internal/domain/entities"
	"servicehub/internal/usecase"
	"servicehub/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment initiation and the provider webhook.

type PaymentHandler struct {
	usecase usecase.IPaymentReconciliationUseCase
}

func NewPaymentHandler(uc usecase.IPaymentReconciliationUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitiateCharge sends a booking's pending transaction to the payment provider.
//
// @Summary  Initiate payment for a booking
// @Accept   json
// @Produce  json
// @Param    id path string true "booking id"
// @Success  200 {object} response.PaymentTransactionResponse
// @Router   /bookings/{id}/pay [post]
func (h *PaymentHandler) InitiateCharge(c *gin.Context) {
	bookingID := c.Param("id")
	log.Printf("[payment][handler] initiate start booking_id=%s", bookingID)

	payload, err := readPaymentPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload booking_id=%s err=%v", bookingID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.usecase.InitiateCharge(c.Request.Context(), bookingID, payload)
	if err != nil {
		log.Printf("[payment][handler] initiate failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate done booking_id=%s tx_id=%s status=%s", bookingID, tx.ID, tx.Status)

	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx))
}

// ProviderCallback settles a transaction from a provider notification. The
// callback is trusted and already authenticated upstream; duplicates are safe.
//
// @Summary  Payment provider callback
// @Accept   json
// @Produce  json
// @Param    callback body request.PaymentCallbackRequest true "provider verdict"
// @Success  200 {object} response.PaymentTransactionResponse
// @Router   /payments/callback [post]
func (h *PaymentHandler) ProviderCallback(c *gin.Context) {
	var payload request.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome := entities.PaymentOutcome(strings.ToLower(strings.TrimSpace(payload.Outcome)))
	tx, err := h.usecase.HandleProviderCallback(c.Request.Context(), payload.TransactionID, outcome, payload.ProviderReference)
	if err != nil {
		log.Printf("[payment][handler] callback failed tx_id=%s err=%v", payload.TransactionID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] callback done tx_id=%s status=%s", tx.ID, tx.Status)

	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx))
}

// readPaymentPayload accepts either a raw provider payload or an envelope
// with a payment_payload field; an empty body is allowed (the engine builds
// the payload from stored state).
func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.PaymentChargeRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.PaymentPayload) > 0 {
		trimmed := strings.TrimSpace(string(envelope.PaymentPayload))
		if trimmed == "" || trimmed == "null" {
			return nil, errors.New("payment_payload cannot be empty")
		}
		return envelope.PaymentPayload, nil
	}

	return json.RawMessage(raw), nil
}
