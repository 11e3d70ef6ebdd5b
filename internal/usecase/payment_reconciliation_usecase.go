package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"servicehub/internal/domain/entities"
	"servicehub/internal/domain/events"
	"servicehub/internal/usecase/interfaces"
)

// IPaymentReconciliationUseCase is the single writer of
// PaymentTransaction.Status and the only path by which a package booking
// reaches confirmed.
//
// HandleProviderCallback is idempotent: a callback for an already-settled
// transaction is a no-op returning the current transaction, because the
// provider does not guarantee at-most-once delivery.

type IPaymentReconciliationUseCase interface {
	InitiateCharge(ctx context.Context, bookingID string, payload json.RawMessage) (entities.PaymentTransaction, error)
	HandleProviderCallback(ctx context.Context, transactionID string, outcome entities.PaymentOutcome, providerReference string) (entities.PaymentTransaction, error)
}

type PaymentReconciliationUseCase struct {
	txRepo      interfaces.IPaymentTransactionRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
	notifier    interfaces.INotificationDispatcher
}

var _ IPaymentReconciliationUseCase = (*PaymentReconciliationUseCase)(nil)

func NewPaymentReconciliationUseCase(
	txRepo interfaces.IPaymentTransactionRepository,
	bookingRepo interfaces.IBookingRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotificationDispatcher,
) *PaymentReconciliationUseCase {
	return &PaymentReconciliationUseCase{
		txRepo:      txRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
	}
}

// InitiateCharge sends the pending transaction of a package booking to the
// payment provider. The stored transaction amount is the source of truth; the
// caller's payload is enriched, never trusted for the amount. A terminal
// provider verdict is fed straight into the callback path, a non-terminal one
// (e.g. in_process) leaves the transaction pending for the webhook.
func (u *PaymentReconciliationUseCase) InitiateCharge(ctx context.Context, bookingID string, payload json.RawMessage) (entities.PaymentTransaction, error) {
	bookingID = strings.TrimSpace(bookingID)
	log.Printf("[reconcile][usecase] initiate-charge start booking_id=%s payload_len=%d", bookingID, len(payload))
	if bookingID == "" {
		return entities.PaymentTransaction{}, fmt.Errorf("%w: booking id is required", ErrValidation)
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return entities.PaymentTransaction{}, fmt.Errorf("%w: payment payload is not valid json", ErrValidation)
	}
	if u.gateway == nil {
		return entities.PaymentTransaction{}, errors.New("payment gateway not configured")
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if b.ID == "" {
		return entities.PaymentTransaction{}, ErrBookingNotFound
	}
	if !b.RequiresPayment() {
		return entities.PaymentTransaction{}, fmt.Errorf("%w: custom-budget bookings settle without payment", ErrValidation)
	}

	tx, err := u.txRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.ID == "" {
		return entities.PaymentTransaction{}, ErrTransactionNotFound
	}
	if tx.Status.Settled() {
		log.Printf("[reconcile][usecase] initiate-charge no-op booking_id=%s tx_id=%s status=%s", bookingID, tx.ID, tx.Status)
		return tx, nil
	}

	reqMap := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &reqMap); err != nil {
			return entities.PaymentTransaction{}, fmt.Errorf("%w: payment payload must be a json object", ErrValidation)
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = b.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Booking %s", b.ID)
	}
	reqMap["transaction_amount"] = tx.Amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[reconcile][usecase] gateway create failed booking_id=%s tx_id=%s err=%v", bookingID, tx.ID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[reconcile][usecase] gateway create success booking_id=%s tx_id=%s provider_payment_id=%s provider_status=%s", bookingID, tx.ID, providerPaymentID, providerStatus)

	switch outcomeFromProviderStatus(providerStatus) {
	case entities.PaymentOutcomeSuccess:
		return u.HandleProviderCallback(ctx, tx.ID, entities.PaymentOutcomeSuccess, providerPaymentID)
	case entities.PaymentOutcomeFailure:
		return u.HandleProviderCallback(ctx, tx.ID, entities.PaymentOutcomeFailure, "")
	default:
		// Non-terminal provider status: the webhook will settle it.
		return tx, nil
	}
}

func (u *PaymentReconciliationUseCase) HandleProviderCallback(ctx context.Context, transactionID string, outcome entities.PaymentOutcome, providerReference string) (entities.PaymentTransaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	log.Printf("[reconcile][usecase] callback start tx_id=%s outcome=%s", transactionID, outcome)
	if transactionID == "" {
		return entities.PaymentTransaction{}, fmt.Errorf("%w: transaction id is required", ErrValidation)
	}
	if !outcome.Valid() {
		return entities.PaymentTransaction{}, fmt.Errorf("%w: unknown payment outcome %q", ErrValidation, outcome)
	}

	tx, err := u.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.ID == "" {
		return entities.PaymentTransaction{}, ErrTransactionNotFound
	}
	if tx.Status.Settled() {
		log.Printf("[reconcile][usecase] callback no-op tx_id=%s already %s", tx.ID, tx.Status)
		return tx, nil
	}

	if outcome == entities.PaymentOutcomeFailure {
		updated, err := u.txRepo.UpdateStatus(ctx, tx.ID, entities.PaymentStatusPending, entities.PaymentStatusFailed, "")
		if err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				return u.settledAfterRace(ctx, tx.ID)
			}
			return entities.PaymentTransaction{}, err
		}
		log.Printf("[reconcile][usecase] payment failed tx_id=%s booking_id=%s", updated.ID, updated.BookingID)
		u.publish(ctx, events.Event{
			Name:          events.PaymentFailed,
			BookingID:     updated.BookingID,
			TransactionID: updated.ID,
			OccurredAt:    time.Now().UTC(),
		})
		// The booking stays pending so the customer can retry.
		return updated, nil
	}

	updated, err := u.txRepo.UpdateStatus(ctx, tx.ID, entities.PaymentStatusPending, entities.PaymentStatusCompleted, providerReference)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return u.settledAfterRace(ctx, tx.ID)
		}
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[reconcile][usecase] payment completed tx_id=%s booking_id=%s provider_ref=%s", updated.ID, updated.BookingID, providerReference)
	u.publish(ctx, events.Event{
		Name:          events.PaymentCompleted,
		BookingID:     updated.BookingID,
		TransactionID: updated.ID,
		OccurredAt:    time.Now().UTC(),
	})

	u.confirmBooking(ctx, updated)
	return updated, nil
}

// confirmBooking performs the booking leg of a successful payment. The
// payment record is already written and is never rolled back; any failure
// here is logged and emitted as a reconciliation mismatch for out-of-band
// repair.
func (u *PaymentReconciliationUseCase) confirmBooking(ctx context.Context, tx entities.PaymentTransaction) {
	mismatch := func(detail string) {
		log.Printf("[reconcile][usecase] booking leg failed tx_id=%s booking_id=%s: %s", tx.ID, tx.BookingID, detail)
		u.publish(ctx, events.Event{
			Name:          events.ReconciliationMismatch,
			BookingID:     tx.BookingID,
			TransactionID: tx.ID,
			Detail:        detail,
			OccurredAt:    time.Now().UTC(),
		})
	}

	b, err := u.bookingRepo.GetByID(ctx, tx.BookingID)
	if err != nil {
		mismatch(fmt.Sprintf("load booking: %v", err))
		return
	}
	if b.ID == "" {
		mismatch("booking missing")
		return
	}
	if b.Status == entities.BookingStatusConfirmed {
		return
	}
	if b.Status != entities.BookingStatusPending {
		mismatch(fmt.Sprintf("booking in %s, cannot confirm", b.Status))
		return
	}

	confirmed, err := u.bookingRepo.UpdateStatus(ctx, b.ID, entities.BookingStatusPending, entities.BookingStatusConfirmed)
	if err != nil {
		mismatch(fmt.Sprintf("confirm write: %v", err))
		return
	}
	log.Printf("[reconcile][usecase] booking confirmed booking_id=%s tx_id=%s", confirmed.ID, tx.ID)
	u.publish(ctx, events.Event{
		Name:          events.BookingConfirmed,
		BookingID:     confirmed.ID,
		TransactionID: tx.ID,
		CustomerEmail: confirmed.CustomerEmail,
		OccurredAt:    time.Now().UTC(),
	})
}

// settledAfterRace re-reads a transaction after losing the settlement race to
// a concurrent duplicate callback and returns whatever landed.
func (u *PaymentReconciliationUseCase) settledAfterRace(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	tx, err := u.txRepo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.ID == "" {
		return entities.PaymentTransaction{}, ErrTransactionNotFound
	}
	log.Printf("[reconcile][usecase] lost settlement race tx_id=%s settled=%s", tx.ID, tx.Status)
	return tx, nil
}

func outcomeFromProviderStatus(status string) entities.PaymentOutcome {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentOutcomeSuccess
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentOutcomeFailure
	default:
		return ""
	}
}

func (u *PaymentReconciliationUseCase) publish(ctx context.Context, ev events.Event) {
	if u.notifier == nil {
		return
	}
	u.notifier.Publish(ctx, ev)
}
