package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"servicehub/internal/domain/entities"
	"servicehub/internal/domain/events"
	"servicehub/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BookingDraft is the in-memory intake result awaiting package selection.
// Nothing is persisted until Finalize; selecting a package and selecting a
// custom budget are mutually exclusive, the later call wins.

type BookingDraft struct {
	serviceID          string
	customerName       string
	customerEmail      string
	projectDescription string
	timeline           entities.Timeline

	selectedPackage *entities.Package
	customBudget    float64
}

// SelectedPackage returns the currently selected package, if any.
func (d *BookingDraft) SelectedPackage() *entities.Package { return d.selectedPackage }

// CustomBudget returns the currently selected custom budget (0 when unset).
func (d *BookingDraft) CustomBudget() float64 { return d.customBudget }

// IBookingLifecycleUseCase owns the legal state transitions of a Booking and
// the package-vs-custom-budget invariant.
//
// Advance enforces the state graph only; caller identity (provider vs
// customer) is the HTTP layer's concern.

type IBookingLifecycleUseCase interface {
	SubmitIntake(serviceID, customerName, customerEmail, projectDescription string, timeline entities.Timeline) (*BookingDraft, error)
	SelectPackage(ctx context.Context, draft *BookingDraft, packageID string) error
	SelectCustomBudget(draft *BookingDraft, amount float64) error
	Finalize(ctx context.Context, draft *BookingDraft) (entities.Booking, *entities.PaymentTransaction, error)
	Advance(ctx context.Context, bookingID string, target entities.BookingStatus) (entities.Booking, error)
	GetBooking(ctx context.Context, id string) (entities.Booking, *entities.PaymentTransaction, error)
}

type BookingLifecycleUseCase struct {
	bookingRepo interfaces.IBookingRepository
	txRepo      interfaces.IPaymentTransactionRepository
	packageRepo interfaces.IPackageRepository
	notifier    interfaces.INotificationDispatcher
}

var _ IBookingLifecycleUseCase = (*BookingLifecycleUseCase)(nil)

var validate = validator.New()

func NewBookingLifecycleUseCase(
	bookingRepo interfaces.IBookingRepository,
	txRepo interfaces.IPaymentTransactionRepository,
	packageRepo interfaces.IPackageRepository,
	notifier interfaces.INotificationDispatcher,
) *BookingLifecycleUseCase {
	return &BookingLifecycleUseCase{
		bookingRepo: bookingRepo,
		txRepo:      txRepo,
		packageRepo: packageRepo,
		notifier:    notifier,
	}
}

func (u *BookingLifecycleUseCase) SubmitIntake(serviceID, customerName, customerEmail, projectDescription string, timeline entities.Timeline) (*BookingDraft, error) {
	serviceID = strings.TrimSpace(serviceID)
	customerName = strings.TrimSpace(customerName)
	customerEmail = strings.TrimSpace(customerEmail)
	projectDescription = strings.TrimSpace(projectDescription)

	if serviceID == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrValidation)
	}
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if customerEmail == "" {
		return nil, fmt.Errorf("%w: customer email is required", ErrValidation)
	}
	if err := validate.Var(customerEmail, "email"); err != nil {
		return nil, fmt.Errorf("%w: customer email %q is not a valid address", ErrValidation, customerEmail)
	}
	if projectDescription == "" {
		return nil, fmt.Errorf("%w: project description is required", ErrValidation)
	}
	if !timeline.Valid() {
		return nil, fmt.Errorf("%w: unknown timeline %q", ErrValidation, timeline)
	}

	return &BookingDraft{
		serviceID:          serviceID,
		customerName:       customerName,
		customerEmail:      customerEmail,
		projectDescription: projectDescription,
		timeline:           timeline,
	}, nil
}

// SelectPackage resolves the package and attaches it to the draft, discarding
// any previously selected custom budget.
func (u *BookingLifecycleUseCase) SelectPackage(ctx context.Context, draft *BookingDraft, packageID string) error {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return fmt.Errorf("%w: package id is required", ErrValidation)
	}

	pkg, err := u.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return err
	}
	if pkg.ID == "" {
		return ErrPackageNotFound
	}
	if pkg.ServiceID != draft.serviceID {
		return fmt.Errorf("%w: package %s does not belong to service %s", ErrValidation, packageID, draft.serviceID)
	}

	draft.selectedPackage = &pkg
	draft.customBudget = 0
	return nil
}

// SelectCustomBudget attaches a custom quote to the draft, discarding any
// previously selected package.
func (u *BookingLifecycleUseCase) SelectCustomBudget(draft *BookingDraft, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: custom budget must be greater than zero", ErrValidation)
	}
	draft.selectedPackage = nil
	draft.customBudget = amount
	return nil
}

// Finalize persists the draft.
//
// Package path: booking lands as pending plus a pending payment transaction
// priced at the package rate. If the transaction create fails the booking is
// cancelled with a reason (compensating action, the two creates are not
// atomic across tables).
//
// Custom-budget path: no payment leg, the booking advances straight to
// confirmed.
func (u *BookingLifecycleUseCase) Finalize(ctx context.Context, draft *BookingDraft) (entities.Booking, *entities.PaymentTransaction, error) {
	if draft == nil {
		return entities.Booking{}, nil, fmt.Errorf("%w: nothing to finalize", ErrValidation)
	}
	if draft.selectedPackage == nil && draft.customBudget <= 0 {
		return entities.Booking{}, nil, fmt.Errorf("%w: select a package or a custom budget before finalizing", ErrValidation)
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:                 uuid.NewString(),
		ServiceID:          draft.serviceID,
		CustomerName:       draft.customerName,
		CustomerEmail:      draft.customerEmail,
		ProjectDescription: draft.projectDescription,
		Timeline:           draft.timeline,
		Status:             entities.BookingStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if draft.selectedPackage != nil {
		b.SelectedPackageID = draft.selectedPackage.ID
	} else {
		b.CustomBudget = draft.customBudget
	}

	created, err := u.bookingRepo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, nil, err
	}
	log.Printf("[booking][usecase] finalized booking_id=%s service_id=%s package_id=%q", created.ID, created.ServiceID, created.SelectedPackageID)

	if draft.selectedPackage == nil {
		confirmed, err := u.bookingRepo.UpdateStatus(ctx, created.ID, entities.BookingStatusPending, entities.BookingStatusConfirmed)
		if err != nil {
			return entities.Booking{}, nil, err
		}
		u.publish(ctx, events.Event{
			Name:          events.BookingConfirmed,
			BookingID:     confirmed.ID,
			CustomerEmail: confirmed.CustomerEmail,
			Detail:        "custom-budget booking confirmed without payment",
			OccurredAt:    time.Now().UTC(),
		})
		return confirmed, nil, nil
	}

	tx := entities.PaymentTransaction{
		ID:        uuid.NewString(),
		BookingID: created.ID,
		Amount:    draft.selectedPackage.Price,
		Status:    entities.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	createdTx, err := u.txRepo.Create(ctx, tx)
	if err != nil {
		log.Printf("[booking][usecase] transaction create failed booking_id=%s err=%v; cancelling booking", created.ID, err)
		if cancelled, cErr := u.bookingRepo.Cancel(ctx, created.ID, entities.BookingStatusPending, "payment transaction could not be created"); cErr != nil {
			log.Printf("[booking][usecase] compensating cancel failed booking_id=%s err=%v", created.ID, cErr)
		} else {
			u.publish(ctx, events.Event{
				Name:          events.BookingCancelled,
				BookingID:     cancelled.ID,
				CustomerEmail: cancelled.CustomerEmail,
				Detail:        cancelled.CancelReason,
				OccurredAt:    time.Now().UTC(),
			})
		}
		return entities.Booking{}, nil, err
	}
	return created, &createdTx, nil
}

// Advance validates that target is a legal successor of the booking's current
// status and performs the compare-and-set write. Direct confirmation of a
// package booking is rejected until its transaction has completed; the
// reconciliation engine owns that edge.
func (u *BookingLifecycleUseCase) Advance(ctx context.Context, bookingID string, target entities.BookingStatus) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, fmt.Errorf("%w: booking id is required", ErrValidation)
	}
	if !target.Valid() {
		return entities.Booking{}, fmt.Errorf("%w: unknown booking status %q", ErrValidation, target)
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !b.Status.CanTransitionTo(target) {
		return entities.Booking{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.Status, target)
	}

	if target == entities.BookingStatusConfirmed && b.RequiresPayment() {
		tx, err := u.txRepo.GetByBookingID(ctx, b.ID)
		if err != nil {
			return entities.Booking{}, err
		}
		if tx.ID == "" || tx.Status != entities.PaymentStatusCompleted {
			return entities.Booking{}, ErrPaymentPending
		}
	}

	updated, err := u.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, target)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Booking{}, ErrConflict
		}
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] advanced booking_id=%s %s -> %s", updated.ID, b.Status, updated.Status)

	switch updated.Status {
	case entities.BookingStatusConfirmed:
		u.publish(ctx, events.Event{
			Name:          events.BookingConfirmed,
			BookingID:     updated.ID,
			CustomerEmail: updated.CustomerEmail,
			OccurredAt:    time.Now().UTC(),
		})
	case entities.BookingStatusCancelled:
		u.publish(ctx, events.Event{
			Name:          events.BookingCancelled,
			BookingID:     updated.ID,
			CustomerEmail: updated.CustomerEmail,
			OccurredAt:    time.Now().UTC(),
		})
	}
	return updated, nil
}

// GetBooking returns the booking and its payment transaction, if one exists.
func (u *BookingLifecycleUseCase) GetBooking(ctx context.Context, id string) (entities.Booking, *entities.PaymentTransaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, nil, fmt.Errorf("%w: booking id is required", ErrValidation)
	}

	b, err := u.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, nil, err
	}
	if b.ID == "" {
		return entities.Booking{}, nil, ErrBookingNotFound
	}
	if !b.RequiresPayment() {
		return b, nil, nil
	}

	tx, err := u.txRepo.GetByBookingID(ctx, b.ID)
	if err != nil {
		return entities.Booking{}, nil, err
	}
	if tx.ID == "" {
		return b, nil, nil
	}
	return b, &tx, nil
}

func (u *BookingLifecycleUseCase) publish(ctx context.Context, ev events.Event) {
	if u.notifier == nil {
		return
	}
	u.notifier.Publish(ctx, ev)
}
