package usecase

import (
	"context"
	"errors"
	"testing"

	"servicehub/internal/domain/entities"
	"servicehub/internal/domain/events"
	"servicehub/internal/usecase/interfaces"
	mock_interfaces "servicehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validDraft(t *testing.T) *BookingDraft {
	t.Helper()
	uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)
	d, err := uc.SubmitIntake("svc-1", "Ana Lima", "ana@example.com", "New landing page", entities.TimelineOneToTwoWeeks)
	if err != nil {
		t.Fatalf("unexpected intake error: %v", err)
	}
	return d
}

func TestBookingLifecycleUseCase_SubmitIntake_Validations(t *testing.T) {
	uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)

	t.Run("empty service id", func(t *testing.T) {
		_, err := uc.SubmitIntake(" ", "Ana", "ana@example.com", "desc", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty customer name", func(t *testing.T) {
		_, err := uc.SubmitIntake("svc-1", "", "ana@example.com", "desc", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty customer email", func(t *testing.T) {
		_, err := uc.SubmitIntake("svc-1", "Ana", "  ", "desc", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := uc.SubmitIntake("svc-1", "Ana", "not-an-email", "desc", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty project description", func(t *testing.T) {
		_, err := uc.SubmitIntake("svc-1", "Ana", "ana@example.com", "", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown timeline", func(t *testing.T) {
		_, err := uc.SubmitIntake("svc-1", "Ana", "ana@example.com", "desc", "someday")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("success with optional timeline omitted", func(t *testing.T) {
		d, err := uc.SubmitIntake("svc-1", " Ana Lima ", "ana@example.com", "desc", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.SelectedPackage() != nil || d.CustomBudget() != 0 {
			t.Fatalf("fresh draft must have no selection")
		}
	})
}

func TestBookingLifecycleUseCase_Selection(t *testing.T) {
	t.Run("package not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pkgRepo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewBookingLifecycleUseCase(nil, nil, pkgRepo, nil)

		pkgRepo.EXPECT().GetByID(gomock.Any(), "pkg-404").Return(entities.Package{}, nil)

		err := uc.SelectPackage(context.Background(), validDraft(t), "pkg-404")
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("package from another service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pkgRepo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewBookingLifecycleUseCase(nil, nil, pkgRepo, nil)

		pkgRepo.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{ID: "pkg-1", ServiceID: "svc-other"}, nil)

		err := uc.SelectPackage(context.Background(), validDraft(t), "pkg-1")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("custom budget must be positive", func(t *testing.T) {
		uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)
		if err := uc.SelectCustomBudget(validDraft(t), 0); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if err := uc.SelectCustomBudget(validDraft(t), -10); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("later selection wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pkgRepo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewBookingLifecycleUseCase(nil, nil, pkgRepo, nil)

		pkgRepo.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{ID: "pkg-1", ServiceID: "svc-1", Price: 500}, nil).Times(2)

		d := validDraft(t)
		if err := uc.SelectPackage(context.Background(), d, "pkg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.SelectCustomBudget(d, 300); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.SelectedPackage() != nil || d.CustomBudget() != 300 {
			t.Fatalf("custom budget should have displaced the package")
		}

		if err := uc.SelectPackage(context.Background(), d, "pkg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.SelectedPackage() == nil || d.CustomBudget() != 0 {
			t.Fatalf("package should have displaced the custom budget")
		}
	})
}

func TestBookingLifecycleUseCase_Finalize(t *testing.T) {
	t.Run("nil draft", func(t *testing.T) {
		uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)
		_, _, err := uc.Finalize(context.Background(), nil)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("no selection", func(t *testing.T) {
		uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)
		_, _, err := uc.Finalize(context.Background(), validDraft(t))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("package booking lands pending with a pending transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		txRepo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
		pkgRepo := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, txRepo, pkgRepo, nil)

		pkgRepo.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{ID: "pkg-1", ServiceID: "svc-1", Price: 500}, nil)
		bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Status != entities.BookingStatusPending {
					t.Fatalf("expected booking created pending, got %s", b.Status)
				}
				if b.SelectedPackageID != "pkg-1" || b.CustomBudget != 0 {
					t.Fatalf("unexpected selection on booking: pkg=%q budget=%v", b.SelectedPackageID, b.CustomBudget)
				}
				return b, nil
			})
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
				if tx.Status != entities.PaymentStatusPending {
					t.Fatalf("expected pending transaction, got %s", tx.Status)
				}
				if tx.Amount != 500 {
					t.Fatalf("expected amount 500 from package price, got %v", tx.Amount)
				}
				return tx, nil
			})

		d := validDraft(t)
		if err := uc.SelectPackage(context.Background(), d, "pkg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, tx, err := uc.Finalize(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusPending {
			t.Fatalf("expected pending booking, got %s", b.Status)
		}
		if tx == nil || tx.BookingID != b.ID {
			t.Fatalf("expected transaction bound to booking")
		}
	})

	t.Run("custom-budget booking confirms immediately with no transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, notifier)

		bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.CustomBudget != 300 || b.SelectedPackageID != "" {
					t.Fatalf("unexpected selection: pkg=%q budget=%v", b.SelectedPackageID, b.CustomBudget)
				}
				return b, nil
			})
		bookingRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.BookingStatusPending, entities.BookingStatusConfirmed).DoAndReturn(
			func(_ context.Context, id string, _, to entities.BookingStatus) (entities.Booking, error) {
				return entities.Booking{ID: id, Status: to, CustomerEmail: "ana@example.com"}, nil
			})
		notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev events.Event) {
			if ev.Name != events.BookingConfirmed {
				t.Fatalf("expected BookingConfirmed event, got %s", ev.Name)
			}
		})

		d := validDraft(t)
		if err := uc.SelectCustomBudget(d, 300); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, tx, err := uc.Finalize(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed booking, got %s", b.Status)
		}
		if tx != nil {
			t.Fatalf("custom-budget booking must not carry a transaction")
		}
	})

	t.Run("transaction create failure cancels the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		txRepo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
		pkgRepo := mock_interfaces.NewMockIPackageRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, txRepo, pkgRepo, notifier)

		pkgRepo.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.Package{ID: "pkg-1", ServiceID: "svc-1", Price: 500}, nil)
		bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil })
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, errors.New("table offline"))
		bookingRepo.EXPECT().Cancel(gomock.Any(), gomock.Any(), entities.BookingStatusPending, "payment transaction could not be created").DoAndReturn(
			func(_ context.Context, id string, _ entities.BookingStatus, reason string) (entities.Booking, error) {
				return entities.Booking{ID: id, Status: entities.BookingStatusCancelled, CancelReason: reason}, nil
			})
		notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev events.Event) {
			if ev.Name != events.BookingCancelled {
				t.Fatalf("expected BookingCancelled event, got %s", ev.Name)
			}
		})

		d := validDraft(t)
		if err := uc.SelectPackage(context.Background(), d, "pkg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, _, err := uc.Finalize(context.Background(), d)
		if err == nil || err.Error() != "table offline" {
			t.Fatalf("expected transaction create error, got %v", err)
		}
	})
}

func TestBookingLifecycleUseCase_Advance(t *testing.T) {
	t.Run("empty booking id", func(t *testing.T) {
		uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)
		_, err := uc.Advance(context.Background(), " ", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		uc := NewBookingLifecycleUseCase(nil, nil, nil, nil)
		_, err := uc.Advance(context.Background(), "bk-1", "archived")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-404").Return(entities.Booking{}, nil)

		_, err := uc.Advance(context.Background(), "bk-404", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("pending cannot skip to in_progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending}, nil)

		_, err := uc.Advance(context.Background(), "bk-1", entities.BookingStatusInProgress)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("terminal statuses reject any move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-done").Return(entities.Booking{ID: "bk-done", Status: entities.BookingStatusCompleted}, nil)

		_, err := uc.Advance(context.Background(), "bk-done", entities.BookingStatusCancelled)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("confirming a package booking requires completed payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		txRepo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, txRepo, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending, SelectedPackageID: "pkg-1"}, nil)
		txRepo.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(entities.PaymentTransaction{ID: "tx-1", BookingID: "bk-1", Status: entities.PaymentStatusPending}, nil)

		_, err := uc.Advance(context.Background(), "bk-1", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrPaymentPending) {
			t.Fatalf("expected ErrPaymentPending, got %v", err)
		}
	})

	t.Run("confirming a package booking succeeds once payment completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		txRepo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, txRepo, nil, notifier)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending, SelectedPackageID: "pkg-1"}, nil)
		txRepo.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(entities.PaymentTransaction{ID: "tx-1", BookingID: "bk-1", Status: entities.PaymentStatusCompleted}, nil)
		bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusPending, entities.BookingStatusConfirmed).
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed}, nil)
		notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev events.Event) {
			if ev.Name != events.BookingConfirmed {
				t.Fatalf("expected BookingConfirmed event, got %s", ev.Name)
			}
		})

		b, err := uc.Advance(context.Background(), "bk-1", entities.BookingStatusConfirmed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", b.Status)
		}
	})

	t.Run("confirmed to in_progress needs no payment check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed, SelectedPackageID: "pkg-1"}, nil)
		bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusConfirmed, entities.BookingStatusInProgress).
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusInProgress}, nil)

		b, err := uc.Advance(context.Background(), "bk-1", entities.BookingStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BookingStatusInProgress {
			t.Fatalf("expected in_progress, got %s", b.Status)
		}
	})

	t.Run("lost write race maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed}, nil)
		bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusConfirmed, entities.BookingStatusCancelled).
			Return(entities.Booking{}, interfaces.ErrVersionConflict)

		_, err := uc.Advance(context.Background(), "bk-1", entities.BookingStatusCancelled)
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestBookingLifecycleUseCase_GetBooking(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-404").Return(entities.Booking{}, nil)

		_, _, err := uc.GetBooking(context.Background(), "bk-404")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("custom-budget booking skips the transaction lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, nil, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed, CustomBudget: 300}, nil)

		b, tx, err := uc.GetBooking(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "bk-1" || tx != nil {
			t.Fatalf("expected booking without transaction")
		}
	})

	t.Run("package booking returns its transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		txRepo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
		uc := NewBookingLifecycleUseCase(bookingRepo, txRepo, nil, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending, SelectedPackageID: "pkg-1"}, nil)
		txRepo.EXPECT().GetByBookingID(gomock.Any(), "bk-1").Return(entities.PaymentTransaction{ID: "tx-1", BookingID: "bk-1", Status: entities.PaymentStatusPending}, nil)

		_, tx, err := uc.GetBooking(context.Background(), "bk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx == nil || tx.ID != "tx-1" {
			t.Fatalf("expected transaction tx-1, got %+v", tx)
		}
	})
}
