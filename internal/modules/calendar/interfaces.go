package calendar

import (
	"context"
	"time"

	"bridalbook/internal/domain"
)

// BlockRepository persists admin-declared unavailable ranges.
type BlockRepository interface {
	Create(ctx context.Context, b *domain.CalendarBlock) error
	Delete(ctx context.Context, id string) (bool, error)
	ListRange(ctx context.Context, from, to time.Time, locationID string) ([]domain.CalendarBlock, error)
	AnyCovering(ctx context.Context, t time.Time, locationID string) (bool, error)
}

// SlotChecker answers whether an active booking already holds a slot.
// Implemented by the booking repository; availability composes it with
// the block lookup without merging the two data sets.
type SlotChecker interface {
	SlotTaken(ctx context.Context, locationID string, date time.Time, timeOfDay, excludeID string) (bool, error)
}
