package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// WishlistService implements business logic for wishlist destinations.
type WishlistService struct {
	repo repo.DestinationRepo
}

// NewWishlistService constructs a WishlistService backed by the provided repo.
func NewWishlistService(r repo.DestinationRepo) *WishlistService {
	return &WishlistService{repo: r}
}

// Create validates and persists a new destination.
func (s *WishlistService) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if err := validateDestination(dest); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.repo.Create(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.WishlistService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single destination by ID.
func (s *WishlistService) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.WishlistService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all destinations, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *WishlistService) List(ctx context.Context) ([]domain.Destination, error) {
	dests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WishlistService.List: %w", err)
	}
	if dests == nil {
		return []domain.Destination{}, nil
	}
	return dests, nil
}

// Update validates and persists changes to an existing destination.
func (s *WishlistService) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	if err := validateDestination(dest); err != nil {
		return domain.Destination{}, err
	}
	result, err := s.repo.Update(ctx, dest)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.WishlistService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by ID.
func (s *WishlistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.WishlistService.Delete: %w", err)
	}
	return nil
}

// validateDestination enforces rules common to Create and Update.
func validateDestination(dest domain.Destination) error {
	if strings.TrimSpace(dest.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(dest.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	return nil
}
