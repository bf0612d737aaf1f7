package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusevents/internal/domain"
)

func TestReportService_Summary(t *testing.T) {
	weekStart := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

	t.Run("non-staff gets not found", func(t *testing.T) {
		roleRepo := &mockRoleRepository{byUser: map[string][]*domain.Role{
			"student-1": {{Code: domain.RoleStudent}},
		}}
		svc := NewReportService(&mockReportRepository{}, roleRepo, testTimeout)

		_, err := svc.Summary(context.Background(), "student-1", weekStart)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		reportRepo := &mockReportRepository{
			total:      5,
			approved:   3,
			attendance: 8,
			revenue:    40,
			categories: []*domain.CategorySummary{
				{Category: "Clubs", Registrations: 4, Prepaid: 1},
				{Category: "Uncategorized", Registrations: 0, Prepaid: 0},
			},
		}
		svc := NewReportService(reportRepo, staffRoleRepo("staff-1"), testTimeout)

		got, err := svc.Summary(context.Background(), "staff-1", weekStart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.WeekEnd.Equal(weekStart.Add(7 * 24 * time.Hour)) {
			t.Fatalf("unexpected week end: %v", got.WeekEnd)
		}
		if got.EventCount != 5 || got.ApprovedEventCount != 3 {
			t.Fatalf("unexpected counts: %+v", got)
		}
		if got.AttendanceCount != 8 || got.Revenue != 40 {
			t.Fatalf("unexpected attendance stats: %+v", got)
		}
		if got.Categories[0].PrepaidPct != 25 {
			t.Fatalf("expected 25%% prepaid, got %v", got.Categories[0].PrepaidPct)
		}
		if got.Categories[1].PrepaidPct != 0 {
			t.Fatalf("zero registrations must yield 0%%, got %v", got.Categories[1].PrepaidPct)
		}
	})

	t.Run("empty window yields empty categories", func(t *testing.T) {
		svc := NewReportService(&mockReportRepository{}, staffRoleRepo("staff-1"), testTimeout)

		got, err := svc.Summary(context.Background(), "staff-1", weekStart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Categories == nil || len(got.Categories) != 0 {
			t.Fatalf("expected empty non-nil categories, got %#v", got.Categories)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewReportService(&mockReportRepository{err: errors.New("db down")}, staffRoleRepo("staff-1"), testTimeout)

		_, err := svc.Summary(context.Background(), "staff-1", weekStart)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
