package calendar

import (
	"context"
	"time"

	"bridalbook/internal/domain"
)

// storageTimeout bounds every repository call so availability checks
// fail fast with ErrUnavailable instead of hanging.
const storageTimeout = 5 * time.Second

type Service struct {
	blocks   BlockRepository
	bookings SlotChecker
}

func NewService(blocks BlockRepository, bookings SlotChecker) *Service {
	return &Service{blocks: blocks, bookings: bookings}
}

// ListBlocks returns blocks overlapping [from, to) for a location, or
// for all locations when locationID is empty. No side effects.
func (s *Service) ListBlocks(ctx context.Context, from, to time.Time, locationID string) ([]domain.CalendarBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	out, err := s.blocks.ListRange(ctx, from, to, locationID)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *Service) CreateBlock(ctx context.Context, req CreateBlockRequest) (*domain.CalendarBlock, error) {
	if req.EndAt.Before(req.StartAt) {
		return nil, ErrInvalidRange
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	b := &domain.CalendarBlock{
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		LocationID: req.LocationID,
		Reason:     req.Reason,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.blocks.Create(ctx, b); err != nil {
		return nil, storageErr(err)
	}
	return b, nil
}

func (s *Service) RemoveBlock(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	ok, err := s.blocks.Delete(ctx, id)
	if err != nil {
		return storageErr(err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// IsAvailable reports whether the slot is free: no block covers the
// instant for the location and no active booking holds the exact slot.
func (s *Service) IsAvailable(ctx context.Context, date time.Time, timeOfDay, locationID string) (bool, error) {
	return s.IsAvailableExcluding(ctx, date, timeOfDay, locationID, "")
}

// IsAvailableExcluding is IsAvailable with one booking id left out of
// the conflict set, so a reschedule does not conflict with itself.
func (s *Service) IsAvailableExcluding(ctx context.Context, date time.Time, timeOfDay, locationID, excludeBookingID string) (bool, error) {
	instant, err := domain.SlotInstant(date, timeOfDay)
	if err != nil {
		return false, ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	blocked, err := s.blocks.AnyCovering(ctx, instant, locationID)
	if err != nil {
		return false, storageErr(err)
	}
	if blocked {
		return false, nil
	}

	taken, err := s.bookings.SlotTaken(ctx, locationID, date, timeOfDay, excludeBookingID)
	if err != nil {
		return false, storageErr(err)
	}
	return !taken, nil
}
