package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/Cappu123/GorgieSalon-Booking-API/internal/httperr"
	"github.com/Cappu123/GorgieSalon-Booking-API/internal/models"
)

func appointmentIn(status Status) *models.Appointment {
	return &models.Appointment{
		ID:        1,
		ClientID:  10,
		StylistID: 20,
		ServiceID: 30,
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		Status:    string(status),
	}
}

func TestAuthorize_StylistAcceptsPending(t *testing.T) {
	ap := appointmentIn(StatusPending)
	caller := Caller{ID: 20, Role: models.RoleStylist}

	if err := Authorize(ap, caller, StatusAccepted); err != nil {
		t.Fatalf("expected stylist to accept own pending appointment, got %v", err)
	}
	if err := Authorize(ap, caller, StatusRejected); err != nil {
		t.Fatalf("expected stylist to reject own pending appointment, got %v", err)
	}
}

func TestAuthorize_OtherStylistForbidden(t *testing.T) {
	ap := appointmentIn(StatusPending)
	caller := Caller{ID: 99, Role: models.RoleStylist}

	err := Authorize(ap, caller, StatusAccepted)
	if !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden for unassigned stylist, got %v", err)
	}
}

func TestAuthorize_ClientCannotAccept(t *testing.T) {
	ap := appointmentIn(StatusPending)
	caller := Caller{ID: 10, Role: models.RoleClient}

	err := Authorize(ap, caller, StatusAccepted)
	if !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden for client accept, got %v", err)
	}
}

func TestAuthorize_ClientCancelsOwn(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusAccepted} {
		ap := appointmentIn(from)
		caller := Caller{ID: 10, Role: models.RoleClient}

		if err := Authorize(ap, caller, StatusCancelled); err != nil {
			t.Fatalf("expected client to cancel %s appointment, got %v", from, err)
		}
	}
}

func TestAuthorize_StylistCannotCancel(t *testing.T) {
	ap := appointmentIn(StatusPending)
	caller := Caller{ID: 20, Role: models.RoleStylist}

	err := Authorize(ap, caller, StatusCancelled)
	if !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden for stylist cancel, got %v", err)
	}
}

func TestAuthorize_AdminMayDoAnyPermittedTransition(t *testing.T) {
	admin := Caller{ID: 1, Role: models.RoleAdmin}

	cases := []struct {
		from   Status
		target Status
	}{
		{StatusPending, StatusAccepted},
		{StatusPending, StatusRejected},
		{StatusPending, StatusCancelled},
		{StatusAccepted, StatusCancelled},
		{StatusAccepted, StatusCompleted},
	}

	for _, tc := range cases {
		ap := appointmentIn(tc.from)
		if err := Authorize(ap, admin, tc.target); err != nil {
			t.Fatalf("admin %s -> %s: unexpected error %v", tc.from, tc.target, err)
		}
	}
}

func TestAuthorize_TerminalStatesRejectEverything(t *testing.T) {
	admin := Caller{ID: 1, Role: models.RoleAdmin}
	targets := []Status{StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted}

	for _, from := range []Status{StatusRejected, StatusCompleted, StatusCancelled} {
		for _, target := range targets {
			ap := appointmentIn(from)
			err := Authorize(ap, admin, target)

			var te TransitionError
			if !errors.As(err, &te) {
				t.Fatalf("%s -> %s: expected TransitionError, got %v", from, target, err)
			}
			if te.From != from || te.To != target {
				t.Fatalf("TransitionError carries %s -> %s, want %s -> %s", te.From, te.To, from, target)
			}
		}
	}
}

func TestAuthorize_PendingCannotSkipToCompleted(t *testing.T) {
	ap := appointmentIn(StatusPending)
	admin := Caller{ID: 1, Role: models.RoleAdmin}

	var te TransitionError
	if err := Authorize(ap, admin, StatusCompleted); !errors.As(err, &te) {
		t.Fatalf("expected TransitionError for pending -> completed, got %v", err)
	}
}

func TestApply_CompletionBeforeSlotElapsed(t *testing.T) {
	ap := appointmentIn(StatusAccepted)

	// 10:29, one minute before the 10:00+30m slot ends.
	early := time.Date(2026, 3, 2, 10, 29, 0, 0, time.UTC)
	err := Apply(ap, StatusCompleted, early)
	if !httperr.IsBusiness(err, httperr.CodeNotElapsed) {
		t.Fatalf("expected not-elapsed conflict, got %v", err)
	}
	if ap.Status != string(StatusAccepted) {
		t.Fatalf("failed completion must not mutate status, got %s", ap.Status)
	}

	// 10:31, after the slot.
	late := time.Date(2026, 3, 2, 10, 31, 0, 0, time.UTC)
	if err := Apply(ap, StatusCompleted, late); err != nil {
		t.Fatalf("expected completion after slot end, got %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("completion not recorded: %+v", ap)
	}
}

func TestApply_CancelStampsTime(t *testing.T) {
	ap := appointmentIn(StatusPending)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := Apply(ap, StatusCancelled, now); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("cancelled_at not stamped: %+v", ap.CancelledAt)
	}
}

func TestOverlaps_HalfOpenIntervals(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	cases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"identical", at(0), at(30), at(0), at(30), true},
		{"partial overlap", at(0), at(30), at(15), at(45), true},
		{"contained", at(0), at(60), at(15), at(30), true},
		{"back to back", at(0), at(30), at(30), at(60), false},
		{"disjoint", at(0), at(30), at(45), at(60), false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Fatalf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}
