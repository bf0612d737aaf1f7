package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type directoryService struct {
	locationRepo    domain.LocationRepository
	categoryRepo    domain.CategoryRepository
	reservationRepo domain.ReservationRepository
	contextTimeout  time.Duration
}

// NewDirectoryService creates the venue and category reference-data service.
func NewDirectoryService(
	locationRepo domain.LocationRepository,
	categoryRepo domain.CategoryRepository,
	reservationRepo domain.ReservationRepository,
	timeout time.Duration,
) domain.DirectoryService {
	return &directoryService{
		locationRepo:    locationRepo,
		categoryRepo:    categoryRepo,
		reservationRepo: reservationRepo,
		contextTimeout:  timeout,
	}
}

func (s *directoryService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.locationRepo.List(ctx)
}

func (s *directoryService) GetLocation(ctx context.Context, locationID string) (*domain.LocationView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	reservations, err := s.reservationRepo.ListApprovedByLocationID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return &domain.LocationView{Location: location, Reservations: reservations}, nil
}

func (s *directoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.categoryRepo.List(ctx)
}
