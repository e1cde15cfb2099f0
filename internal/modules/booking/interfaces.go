package booking

import (
	"context"
	"time"

	"bridalbook/internal/domain"
	"bridalbook/internal/repository"
)

// BookingRepository is the persistence contract for booking records.
// Status and deposit writes are compare-and-swap style: the bool result
// reports whether the guarded update actually hit a row.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, observed, next domain.BookingStatus, adminNotes *string) (bool, error)
	UpdateDeposit(ctx context.Context, id string, depositPaid bool, adminNotes *string) (bool, error)
	Reschedule(ctx context.Context, id string, date time.Time, timeOfDay, locationID string) error
	List(ctx context.Context, f repository.BookingFilter, limit, offset int) ([]domain.Booking, int64, error)
	ListAll(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
}

// AvailabilityChecker gates admission through the calendar store.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, date time.Time, timeOfDay, locationID string) (bool, error)
	IsAvailableExcluding(ctx context.Context, date time.Time, timeOfDay, locationID, excludeBookingID string) (bool, error)
}
