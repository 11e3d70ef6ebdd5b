package request

import "encoding/json"

// PaymentCallbackRequest is the trusted, already-authenticated provider
// callback. outcome is "success" or "failure"; provider_reference is the
// provider's charge id, present on success.

type PaymentCallbackRequest struct {
	TransactionID     string `json:"transaction_id" binding:"required"`
	Outcome           string `json:"outcome" binding:"required"`
	ProviderReference string `json:"provider_reference"`
}

// PaymentChargeRequest optionally wraps the raw provider payload for the
// initiate-charge route. The payload is stored and forwarded as-is to support
// varying provider schemas.

type PaymentChargeRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}
