package services

import (
	"context"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

// reportWindow is the length of the summary report window.
const reportWindow = 7 * 24 * time.Hour

type reportService struct {
	reportRepo     domain.ReportRepository
	roleRepo       domain.RoleRepository
	contextTimeout time.Duration
}

// NewReportService creates the staff-only summary report service.
func NewReportService(reportRepo domain.ReportRepository, roleRepo domain.RoleRepository, timeout time.Duration) domain.ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		roleRepo:       roleRepo,
		contextTimeout: timeout,
	}
}

func (s *reportService) Summary(ctx context.Context, actorID string, weekStart time.Time) (*domain.SummaryReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	roles, err := s.roleRepo.ListByUserID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	if !domain.HasRole(roles, domain.RoleStaff) {
		return nil, domain.ErrNotFound
	}

	weekEnd := weekStart.Add(reportWindow)

	total, approved, err := s.reportRepo.EventCounts(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	attendance, revenue, err := s.reportRepo.AttendanceStats(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("attendance stats: %w", err)
	}
	categories, err := s.reportRepo.CategoryBreakdown(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	if categories == nil {
		categories = []*domain.CategorySummary{}
	}
	for _, c := range categories {
		if c.Registrations > 0 {
			c.PrepaidPct = float64(c.Prepaid) / float64(c.Registrations) * 100
		}
	}

	return &domain.SummaryReport{
		WeekStart:          weekStart,
		WeekEnd:            weekEnd,
		EventCount:         total,
		ApprovedEventCount: approved,
		AttendanceCount:    attendance,
		Revenue:            revenue,
		Categories:         categories,
	}, nil
}
