package booking

import (
	"context"
	"errors"
	"time"

	"bridalbook/internal/domain"
	"bridalbook/internal/pkg/validator"
	"bridalbook/internal/repository"

	"gorm.io/gorm"
)

const storageTimeout = 5 * time.Second

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	bookings BookingRepository
	calendar AvailabilityChecker
}

func NewService(bookings BookingRepository, calendar AvailabilityChecker) *Service {
	return &Service{bookings: bookings, calendar: calendar}
}

func parseSlot(dateStr, timeStr string) (time.Time, string, error) {
	date, err := time.Parse(domain.SlotDateLayout, dateStr)
	if err != nil {
		return time.Time{}, "", ErrValidation
	}
	if _, err := time.Parse(domain.SlotTimeLayout, timeStr); err != nil {
		return time.Time{}, "", ErrValidation
	}
	return date, timeStr, nil
}

// CreateBooking validates the party, gates admission through the
// calendar store and inserts with status=pending, depositPaid=false.
// The repository's transactional check-and-insert makes two concurrent
// requests for the same slot resolve to one success and one conflict.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	date, timeOfDay, err := parseSlot(req.BookingDate, req.BookingTime)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		BookingDate:     date,
		BookingTime:     timeOfDay,
		LocationID:      req.LocationID,
		Brides:          req.Brides,
		Maids:           req.Maids,
		Mothers:         req.Mothers,
		Others:          req.Others,
		DepositPaid:     false,
		Status:          domain.BookingPending,
		WeddingTheme:    req.WeddingTheme,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}
	if b.PartySize() < 1 {
		return nil, ErrValidation
	}

	available, err := s.calendar.IsAvailable(ctx, date, timeOfDay, req.LocationID)
	if err != nil {
		return nil, storageErr(err)
	}
	if !available {
		return nil, ErrSlotUnavailable
	}

	cctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.bookings.Create(cctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, storageErr(err)
	}

	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.getByID(ctx, id)
}

func (s *Service) getByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return b, nil
}

// RescheduleBooking moves a non-terminal booking to a new slot. The
// availability check excludes the booking itself, so moving to its own
// current slot never self-conflicts.
func (s *Service) RescheduleBooking(ctx context.Context, id string, req RescheduleBookingRequest) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, ErrInvalidState
	}

	date, timeOfDay, err := parseSlot(req.BookingDate, req.BookingTime)
	if err != nil {
		return nil, err
	}
	locationID := req.LocationID
	if locationID == "" {
		locationID = b.LocationID
	}

	available, err := s.calendar.IsAvailableExcluding(ctx, date, timeOfDay, locationID, id)
	if err != nil {
		return nil, storageErr(err)
	}
	if !available {
		return nil, ErrSlotUnavailable
	}

	cctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.bookings.Reschedule(cctx, id, date, timeOfDay, locationID); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, storageErr(err)
	}

	return s.GetBooking(ctx, id)
}

// mergeNotes keeps existing admin notes unless the caller asked to
// replace them. Returns nil when there is nothing to write.
func mergeNotes(existing, added string, replace bool) *string {
	if added == "" && !replace {
		return nil
	}
	if replace || existing == "" {
		return &added
	}
	merged := existing + "\n" + added
	return &merged
}

// UpdateStatus applies one edge of the lifecycle graph. The repository
// write is guarded by the observed status, so a transition racing
// another writer fails ErrInvalidTransition instead of overwriting.
func (s *Service) UpdateStatus(ctx context.Context, id, newStatus, adminNotes string, replaceNotes bool) (*domain.Booking, error) {
	next := domain.BookingStatus(newStatus)
	if !next.Valid() {
		return nil, ErrValidation
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	cctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	ok, err := s.bookings.UpdateStatus(cctx, id, b.Status, next, mergeNotes(b.AdminNotes, adminNotes, replaceNotes))
	if err != nil {
		return nil, storageErr(err)
	}
	if !ok {
		// observed status went stale under us
		return nil, ErrInvalidTransition
	}

	return s.GetBooking(ctx, id)
}

// UpdateDeposit flips the deposit flag. It never touches status; the
// confirmed -> deposit_paid transition stays an explicit admin action.
func (s *Service) UpdateDeposit(ctx context.Context, id string, depositPaid bool, adminNotes string, replaceNotes bool) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	ok, err := s.bookings.UpdateDeposit(cctx, id, depositPaid, mergeNotes(b.AdminNotes, adminNotes, replaceNotes))
	if err != nil {
		return nil, storageErr(err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	return s.GetBooking(ctx, id)
}

// CancelBooking is UpdateStatus(cancelled); terminal bookings fail
// ErrInvalidTransition.
func (s *Service) CancelBooking(ctx context.Context, id, adminNotes string) error {
	_, err := s.UpdateStatus(ctx, id, string(domain.BookingCancelled), adminNotes, false)
	return err
}

func (s *Service) buildFilter(q ListBookingsQuery) (repository.BookingFilter, error) {
	f := repository.BookingFilter{
		LocationID: q.LocationID,
	}
	if q.Status != "" {
		if !domain.BookingStatus(q.Status).Valid() {
			return f, ErrValidation
		}
		f.Status = q.Status
	}
	if q.StartDate != "" {
		from, err := time.Parse(domain.SlotDateLayout, q.StartDate)
		if err != nil {
			return f, ErrValidation
		}
		f.DateFrom = &from
	}
	if q.EndDate != "" {
		to, err := time.Parse(domain.SlotDateLayout, q.EndDate)
		if err != nil {
			return f, ErrValidation
		}
		f.DateTo = &to
	}
	return f, nil
}

// ListBookings returns one page, filters ANDed together, ordered by
// (booking_date, booking_time, creation order) ascending.
func (s *Service) ListBookings(ctx context.Context, q ListBookingsQuery) (*BookingPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}

	f, err := s.buildFilter(q)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	bookings, total, err := s.bookings.List(ctx, f, q.PageSize, (q.Page-1)*q.PageSize)
	if err != nil {
		return nil, storageErr(err)
	}

	return &BookingPage{
		Bookings: bookings,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

// ExportBookings returns every match of the same filter in the same
// order, unpaginated, for CSV serialization.
func (s *Service) ExportBookings(ctx context.Context, q ListBookingsQuery) ([]domain.Booking, error) {
	f, err := s.buildFilter(q)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	bookings, err := s.bookings.ListAll(ctx, f)
	if err != nil {
		return nil, storageErr(err)
	}
	return bookings, nil
}
