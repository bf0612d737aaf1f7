package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type attendanceService struct {
	eventRepo       domain.EventRepository
	reservationRepo domain.ReservationRepository
	attendanceRepo  domain.AttendanceRepository
	contextTimeout  time.Duration
}

// NewAttendanceService creates an AttendanceService with the given repositories.
func NewAttendanceService(
	eventRepo domain.EventRepository,
	reservationRepo domain.ReservationRepository,
	attendanceRepo domain.AttendanceRepository,
	timeout time.Duration,
) domain.AttendanceService {
	return &attendanceService{
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
		attendanceRepo:  attendanceRepo,
		contextTimeout:  timeout,
	}
}

func (s *attendanceService) Attend(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.register(ctx, eventID, userID, false)
}

func (s *attendanceService) Prepay(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// Checked before the duplicate guard: a prepay attempt on a non-prepay
	// event reports the prepay problem whatever the registration state.
	if !event.PrepayAllowed {
		return nil, domain.ErrPrepayNotAccepted
	}
	return s.register(ctx, eventID, userID, true)
}

func (s *attendanceService) register(ctx context.Context, eventID, userID string, prepaid bool) (*domain.Attendance, error) {
	res, err := s.reservationRepo.GetByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if res.Status != domain.StatusApproved {
		return nil, domain.ErrNotFound
	}

	if _, err := s.attendanceRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	att := domain.NewAttendance(eventID, userID, prepaid, time.Now())
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create attendance: %w", err)
	}
	return att, nil
}
