package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campusevents/internal/domain"
)

type moderationService struct {
	eventRepo       domain.EventRepository
	reservationRepo domain.ReservationRepository
	locationRepo    domain.LocationRepository
	userRepo        domain.UserRepository
	roleRepo        domain.RoleRepository
	emailService    domain.EmailService
	logger          *slog.Logger
	contextTimeout  time.Duration
}

// NewModerationService creates the staff-only reservation workflow service.
func NewModerationService(
	eventRepo domain.EventRepository,
	reservationRepo domain.ReservationRepository,
	locationRepo domain.LocationRepository,
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ModerationService {
	return &moderationService{
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
		locationRepo:    locationRepo,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		emailService:    emailService,
		logger:          logger,
		contextTimeout:  timeout,
	}
}

// requireStaff fails with ErrNotFound, not ErrForbidden: the moderation
// surface does not reveal its existence to non-staff callers.
func (s *moderationService) requireStaff(ctx context.Context, actorID string) error {
	roles, err := s.roleRepo.ListByUserID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	if !domain.HasRole(roles, domain.RoleStaff) {
		return domain.ErrNotFound
	}
	return nil
}

func (s *moderationService) ListPending(ctx context.Context, actorID string) ([]*domain.EventDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	pending, err := s.reservationRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending reservations: %w", err)
	}
	return pending, nil
}

func (s *moderationService) Approve(ctx context.Context, eventID, actorID string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	res, err := s.reservationRepo.Approve(ctx, eventID, actorID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyDecided) {
			return nil, err
		}
		return nil, fmt.Errorf("approve reservation: %w", err)
	}

	s.notifyCreator(ctx, eventID, res, "approved")
	return res, nil
}

func (s *moderationService) Deny(ctx context.Context, eventID, actorID string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	res, err := s.reservationRepo.Deny(ctx, eventID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyDecided) {
			return nil, err
		}
		return nil, fmt.Errorf("deny reservation: %w", err)
	}

	s.notifyCreator(ctx, eventID, res, "denied")
	return res, nil
}

// notifyCreator emails the event creator about the decision. The decision is
// already committed, so delivery failures are logged and swallowed.
func (s *moderationService) notifyCreator(ctx context.Context, eventID string, res *domain.Reservation, decision string) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Warn("decision email skipped", "event_id", eventID, "err", err)
		return
	}
	creator, err := s.userRepo.GetByID(ctx, event.CreatorID)
	if err != nil {
		s.logger.Warn("decision email skipped", "event_id", eventID, "err", err)
		return
	}
	locationName := ""
	if location, err := s.locationRepo.GetByID(ctx, res.LocationID); err == nil {
		locationName = location.Name
	}
	data := &domain.ReservationDecisionEmailData{
		Email:        creator.Email,
		CreatorName:  creator.FullName(),
		EventName:    event.Name,
		LocationName: locationName,
		Decision:     decision,
	}
	if err := s.emailService.SendReservationDecision(ctx, data); err != nil {
		s.logger.Warn("decision email failed", "event_id", eventID, "to", creator.Email, "err", err)
	}
}
