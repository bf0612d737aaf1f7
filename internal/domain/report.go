package domain

import (
	"context"
	"time"
)

// CategorySummary is one row of the per-category breakdown in the weekly
// summary report. PrepaidPct is 0 when Registrations is 0.
type CategorySummary struct {
	Category      string  `json:"category"`
	Registrations int     `json:"registrations"`
	Prepaid       int     `json:"prepaid"`
	PrepaidPct    float64 `json:"prepaid_pct"`
}

// SummaryReport is the weekly aggregate over events whose reservations start
// in [WeekStart, WeekEnd].
type SummaryReport struct {
	WeekStart          time.Time          `json:"week_start"`
	WeekEnd            time.Time          `json:"week_end"`
	EventCount         int                `json:"event_count"`
	ApprovedEventCount int                `json:"approved_event_count"`
	AttendanceCount    int                `json:"attendance_count"`
	Revenue            float64            `json:"revenue"`
	Categories         []*CategorySummary `json:"categories"`
}

// ReportRepository runs the read-only aggregation queries behind the summary
// report.
type ReportRepository interface {
	// EventCounts returns the number of events with reservations starting in
	// the window, and how many of those are approved.
	EventCounts(ctx context.Context, start, end time.Time) (total, approved int, err error)
	// AttendanceStats returns the attendance count and fee revenue over
	// registrations for events in the window.
	AttendanceStats(ctx context.Context, start, end time.Time) (count int, revenue float64, err error)
	// CategoryBreakdown returns registration and prepaid counts per category
	// for events in the window. PrepaidPct is left for the caller to fill.
	CategoryBreakdown(ctx context.Context, start, end time.Time) ([]*CategorySummary, error)
}

// ReportService is the staff-only weekly summary report. Fails with
// ErrNotFound when the actor lacks the staff role.
type ReportService interface {
	Summary(ctx context.Context, actorID string, weekStart time.Time) (*SummaryReport, error)
}
