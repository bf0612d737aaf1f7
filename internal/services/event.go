package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo       domain.EventRepository
	reservationRepo domain.ReservationRepository
	locationRepo    domain.LocationRepository
	categoryRepo    domain.CategoryRepository
	attendanceRepo  domain.AttendanceRepository
	roleRepo        domain.RoleRepository
	contextTimeout  time.Duration
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(
	eventRepo domain.EventRepository,
	reservationRepo domain.ReservationRepository,
	locationRepo domain.LocationRepository,
	categoryRepo domain.CategoryRepository,
	attendanceRepo domain.AttendanceRepository,
	roleRepo domain.RoleRepository,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
		locationRepo:    locationRepo,
		categoryRepo:    categoryRepo,
		attendanceRepo:  attendanceRepo,
		roleRepo:        roleRepo,
		contextTimeout:  timeout,
	}
}

func (s *eventService) Create(ctx context.Context, creatorID string, input domain.CreateEventInput) (*domain.EventDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if creatorID == "" {
		return nil, fmt.Errorf("event creator is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if input.StudentFee < 0 || input.StaffFee < 0 || input.PublicFee < 0 {
		return nil, fmt.Errorf("%w: fees must be non-negative", domain.ErrInvalidInput)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}

	location, err := s.locationRepo.GetByID(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown location", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown category", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	now := time.Now()
	event := domain.NewEvent(creatorID, strings.TrimSpace(input.Name), input.Description, now, now)
	event.CategoryID = input.CategoryID
	event.IsPublic = input.IsPublic
	event.StudentFee = input.StudentFee
	event.StaffFee = input.StaffFee
	event.PublicFee = input.PublicFee
	event.PrepayAllowed = input.PrepayAllowed

	res := domain.NewReservation("", input.LocationID, input.StartTime, input.EndTime, now, now)
	if err := s.eventRepo.CreateWithReservation(ctx, event, res); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return &domain.EventDetails{Event: event, Reservation: res, Location: location}, nil
}

func (s *eventService) Get(ctx context.Context, eventID, callerID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	res, err := s.reservationRepo.GetByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	location, err := s.locationRepo.GetByID(ctx, res.LocationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	attendance, err := s.attendanceRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	roles, err := s.roleRepo.ListByUserID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}

	registered := false
	if _, err := s.attendanceRepo.GetByEventAndUser(ctx, eventID, callerID); err == nil {
		registered = true
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	canAttend := res.Status == domain.StatusApproved && !registered
	perms := domain.EventPermissions{
		Creator: event.CreatorID == callerID,
		Mod:     domain.HasRole(roles, domain.RoleStaff),
		Attend:  canAttend,
		Prepay:  canAttend && event.PrepayAllowed,
	}

	return &domain.EventView{
		Event:       event,
		Reservation: res,
		Location:    location,
		Attendance:  attendance,
		Permissions: perms,
	}, nil
}

func (s *eventService) Update(ctx context.Context, eventID, callerID string, update domain.EventUpdate) (*domain.EventDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != callerID {
		return nil, domain.ErrForbidden
	}
	res, err := s.reservationRepo.GetByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
		}
		event.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *update.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown category", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
		event.CategoryID = update.CategoryID
	}
	if update.IsPublic != nil {
		event.IsPublic = *update.IsPublic
	}
	if update.StudentFee != nil {
		event.StudentFee = *update.StudentFee
	}
	if update.StaffFee != nil {
		event.StaffFee = *update.StaffFee
	}
	if update.PublicFee != nil {
		event.PublicFee = *update.PublicFee
	}
	if update.PrepayAllowed != nil {
		event.PrepayAllowed = *update.PrepayAllowed
	}
	if event.StudentFee < 0 || event.StaffFee < 0 || event.PublicFee < 0 {
		return nil, fmt.Errorf("%w: fees must be non-negative", domain.ErrInvalidInput)
	}

	if update.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *update.LocationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown location", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("get location: %w", err)
		}
		res.LocationID = *update.LocationID
	}
	if update.StartTime != nil {
		res.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		res.EndTime = *update.EndTime
	}
	if !res.EndTime.After(res.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}

	now := time.Now()
	event.UpdatedAt = now
	res.UpdatedAt = now
	if err := s.eventRepo.UpdateWithReservation(ctx, event, res); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	location, err := s.locationRepo.GetByID(ctx, res.LocationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &domain.EventDetails{Event: event, Reservation: res, Location: location}, nil
}

func (s *eventService) Delete(ctx context.Context, eventID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != callerID {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) ListMine(ctx context.Context, callerID string) ([]*domain.EventDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.ListByCreatorID(ctx, callerID)
}

func (s *eventService) ListApproved(ctx context.Context, searchTerm string, params domain.PaginationParams) ([]*domain.EventDetails, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	details, total, err := s.reservationRepo.SearchApproved(ctx, strings.TrimSpace(searchTerm), params)
	if err != nil {
		return nil, 0, fmt.Errorf("search approved reservations: %w", err)
	}
	return details, total, nil
}
