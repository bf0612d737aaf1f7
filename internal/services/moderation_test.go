package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"campusevents/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staffRoleRepo(actorID string) *mockRoleRepository {
	return &mockRoleRepository{byUser: map[string][]*domain.Role{
		actorID: {{ID: "role-staff", Code: domain.RoleStaff}},
	}}
}

func newModerationFixture(resRepo *mockReservationRepository, roleRepo *mockRoleRepository, emailSvc *mockEmailService) (domain.ModerationService, *mockEventRepository, *mockUserRepository) {
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{
		"ev-1": {ID: "ev-1", CreatorID: "creator-1", Name: "Career Fair"},
	}}
	userRepo := &mockUserRepository{users: map[string]*domain.User{
		"creator-1": {ID: "creator-1", Email: "ada@campus.edu", FirstName: "Ada", LastName: "Lovelace"},
	}}
	locRepo := &mockLocationRepository{locations: map[string]*domain.Location{
		"loc-1": {ID: "loc-1", Name: "Main Hall"},
	}}
	svc := NewModerationService(eventRepo, resRepo, locRepo, userRepo, roleRepo, emailSvc, discardLogger(), testTimeout)
	return svc, eventRepo, userRepo
}

func pendingReservation() *domain.Reservation {
	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID: "res-1", EventID: "ev-1", LocationID: "loc-1",
		StartTime: start, EndTime: start.Add(time.Hour), Status: domain.StatusPending,
	}
}

func TestModerationService_NonStaffGetsNotFound(t *testing.T) {
	resRepo := &mockReservationRepository{byEvent: map[string]*domain.Reservation{"ev-1": pendingReservation()}}
	roleRepo := &mockRoleRepository{byUser: map[string][]*domain.Role{
		"student-1": {{Code: domain.RoleStudent}},
	}}
	svc, _, _ := newModerationFixture(resRepo, roleRepo, &mockEmailService{})

	if _, err := svc.ListPending(context.Background(), "student-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ListPending: expected not found, got %v", err)
	}
	if _, err := svc.Approve(context.Background(), "ev-1", "student-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Approve: expected not found, got %v", err)
	}
	if _, err := svc.Deny(context.Background(), "ev-1", "student-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Deny: expected not found, got %v", err)
	}
	if len(resRepo.approved)+len(resRepo.denied) != 0 {
		t.Fatal("non-staff caller must not reach the repository")
	}
}

func TestModerationService_ListPending(t *testing.T) {
	resRepo := &mockReservationRepository{pending: []*domain.EventDetails{
		{Event: &domain.Event{ID: "ev-1"}, Reservation: pendingReservation()},
	}}
	svc, _, _ := newModerationFixture(resRepo, staffRoleRepo("staff-1"), &mockEmailService{})

	got, err := svc.ListPending(context.Background(), "staff-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 pending entry, got %d", len(got))
	}
}

func TestModerationService_Approve(t *testing.T) {
	t.Run("success notifies creator", func(t *testing.T) {
		resRepo := &mockReservationRepository{byEvent: map[string]*domain.Reservation{"ev-1": pendingReservation()}}
		emailSvc := &mockEmailService{}
		svc, _, _ := newModerationFixture(resRepo, staffRoleRepo("staff-1"), emailSvc)

		got, err := svc.Approve(context.Background(), "ev-1", "staff-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != domain.StatusApproved {
			t.Fatalf("expected APPROVED, got %s", got.Status)
		}
		if len(emailSvc.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(emailSvc.sent))
		}
		mail := emailSvc.sent[0]
		if mail.Email != "ada@campus.edu" || mail.Decision != "approved" || mail.LocationName != "Main Hall" {
			t.Fatalf("unexpected email data: %+v", mail)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		res := pendingReservation()
		res.Status = domain.StatusDenied
		resRepo := &mockReservationRepository{byEvent: map[string]*domain.Reservation{"ev-1": res}}
		svc, _, _ := newModerationFixture(resRepo, staffRoleRepo("staff-1"), &mockEmailService{})

		_, err := svc.Approve(context.Background(), "ev-1", "staff-1")
		if !errors.Is(err, domain.ErrAlreadyDecided) {
			t.Fatalf("expected already decided, got %v", err)
		}
	})

	t.Run("missing reservation", func(t *testing.T) {
		resRepo := &mockReservationRepository{}
		svc, _, _ := newModerationFixture(resRepo, staffRoleRepo("staff-1"), &mockEmailService{})

		_, err := svc.Approve(context.Background(), "ev-ghost", "staff-1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("email failure does not fail the decision", func(t *testing.T) {
		resRepo := &mockReservationRepository{byEvent: map[string]*domain.Reservation{"ev-1": pendingReservation()}}
		emailSvc := &mockEmailService{err: errors.New("smtp down")}
		svc, _, _ := newModerationFixture(resRepo, staffRoleRepo("staff-1"), emailSvc)

		got, err := svc.Approve(context.Background(), "ev-1", "staff-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != domain.StatusApproved {
			t.Fatalf("expected APPROVED, got %s", got.Status)
		}
	})
}

func TestModerationService_Deny(t *testing.T) {
	resRepo := &mockReservationRepository{byEvent: map[string]*domain.Reservation{"ev-1": pendingReservation()}}
	emailSvc := &mockEmailService{}
	svc, _, _ := newModerationFixture(resRepo, staffRoleRepo("staff-1"), emailSvc)

	got, err := svc.Deny(context.Background(), "ev-1", "staff-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusDenied {
		t.Fatalf("expected DENIED, got %s", got.Status)
	}
	if len(emailSvc.sent) != 1 || emailSvc.sent[0].Decision != "denied" {
		t.Fatalf("unexpected email: %+v", emailSvc.sent)
	}
}
