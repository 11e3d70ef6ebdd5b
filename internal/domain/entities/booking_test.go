package entities

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}

	legal := map[BookingStatus]map[BookingStatus]bool{
		BookingStatusPending:    {BookingStatusConfirmed: true, BookingStatusCancelled: true},
		BookingStatusConfirmed:  {BookingStatusInProgress: true, BookingStatusCancelled: true},
		BookingStatusInProgress: {BookingStatusCompleted: true},
		BookingStatusCompleted:  {},
		BookingStatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			want := legal[from][to]
			if got != want {
				t.Fatalf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if !BookingStatusCompleted.Terminal() {
		t.Fatalf("completed should be terminal")
	}
	if !BookingStatusCancelled.Terminal() {
		t.Fatalf("cancelled should be terminal")
	}
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress} {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
	if BookingStatus("bogus").Terminal() {
		t.Fatalf("unknown status must not report terminal")
	}
}

func TestBookingStatusValid(t *testing.T) {
	if BookingStatus("shipped").Valid() {
		t.Fatalf("unexpected valid status")
	}
	if !BookingStatusInProgress.Valid() {
		t.Fatalf("in_progress should be valid")
	}
}

func TestTimelineValid(t *testing.T) {
	valid := []Timeline{"", TimelineOneToTwoWeeks, TimelineTwoToFourWeeks, TimelineOneToTwoMonths, TimelineTwoPlusMonths}
	for _, tl := range valid {
		if !tl.Valid() {
			t.Fatalf("expected %q to be valid", tl)
		}
	}
	if Timeline("next year").Valid() {
		t.Fatalf("unexpected valid timeline")
	}
}

func TestBookingRequiresPayment(t *testing.T) {
	if (Booking{CustomBudget: 300}).RequiresPayment() {
		t.Fatalf("custom-budget booking must not require payment")
	}
	if !(Booking{SelectedPackageID: "pkg-1"}).RequiresPayment() {
		t.Fatalf("package booking must require payment")
	}
}

func TestPaymentStatusSettled(t *testing.T) {
	if PaymentStatusPending.Settled() {
		t.Fatalf("pending is not settled")
	}
	if !PaymentStatusCompleted.Settled() || !PaymentStatusFailed.Settled() {
		t.Fatalf("completed and failed are settled")
	}
}

func TestPaymentOutcomeValid(t *testing.T) {
	if !PaymentOutcomeSuccess.Valid() || !PaymentOutcomeFailure.Valid() {
		t.Fatalf("expected known outcomes to be valid")
	}
	if PaymentOutcome("maybe").Valid() {
		t.Fatalf("unexpected valid outcome")
	}
}
