package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"bridalbook/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrSlotTaken is returned when an active booking already holds the
// requested (location, date, time) slot.
var ErrSlotTaken = errors.New("slot already taken by an active booking")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              string     `gorm:"column:id;primaryKey"`
	CustomerName    string     `gorm:"column:customer_name"`
	CustomerEmail   string     `gorm:"column:customer_email"`
	CustomerPhone   *string    `gorm:"column:customer_phone"`
	BookingDate     time.Time  `gorm:"column:booking_date;index"`
	BookingTime     string     `gorm:"column:booking_time"`
	LocationID      string     `gorm:"column:location_id;index"`
	Brides          int        `gorm:"column:brides"`
	Maids           int        `gorm:"column:maids"`
	Mothers         int        `gorm:"column:mothers"`
	Others          int        `gorm:"column:others"`
	DepositPaid     bool       `gorm:"column:deposit_paid"`
	Status          string     `gorm:"column:status;index"`
	WeddingTheme    *string    `gorm:"column:wedding_theme"`
	SpecialRequests *string    `gorm:"column:special_requests"`
	AdminNotes      *string    `gorm:"column:admin_notes"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerPhone:   strOrEmpty(m.CustomerPhone),
		BookingDate:     m.BookingDate,
		BookingTime:     m.BookingTime,
		LocationID:      m.LocationID,
		Brides:          m.Brides,
		Maids:           m.Maids,
		Mothers:         m.Mothers,
		Others:          m.Others,
		DepositPaid:     m.DepositPaid,
		Status:          domain.BookingStatus(m.Status),
		WeddingTheme:    strOrEmpty(m.WeddingTheme),
		SpecialRequests: strOrEmpty(m.SpecialRequests),
		AdminNotes:      strOrEmpty(m.AdminNotes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   strOrNil(b.CustomerPhone),
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		LocationID:      b.LocationID,
		Brides:          b.Brides,
		Maids:           b.Maids,
		Mothers:         b.Mothers,
		Others:          b.Others,
		DepositPaid:     b.DepositPaid,
		Status:          string(b.Status),
		WeddingTheme:    strOrNil(b.WeddingTheme),
		SpecialRequests: strOrNil(b.SpecialRequests),
		AdminNotes:      strOrNil(b.AdminNotes),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

// isUniqueViolation recognizes the active-slot unique index firing on
// either backend: pgconn error 23505 on postgres, constraint text on
// the sqlite driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_bookings_active_slot"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a booking after a transactional conflict count; the
// partial unique index on active slots backstops it against races.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := toBookingModel(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("location_id = ? AND booking_date = ? AND booking_time = ?", m.LocationID, m.BookingDate, m.BookingTime).
			Where("status <> ?", string(domain.BookingCancelled)).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// SlotTaken reports whether an active booking other than excludeID holds
// the exact (location, date, time) slot.
func (r *BookingRepository) SlotTaken(ctx context.Context, locationID string, date time.Time, timeOfDay, excludeID string) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("location_id = ? AND booking_date = ? AND booking_time = ?", locationID, date, timeOfDay).
		Where("status <> ?", string(domain.BookingCancelled))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// UpdateStatus is a compare-and-swap: the row only changes if its status
// still equals the status the caller observed. Returns false when the
// observation went stale (or the id is unknown).
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, observed, next domain.BookingStatus, adminNotes *string) (bool, error) {
	updates := map[string]any{
		"status":     string(next),
		"updated_at": time.Now().UTC(),
	}
	if next == domain.BookingCancelled {
		now := time.Now().UTC()
		updates["cancelled_at"] = &now
	}
	if adminNotes != nil {
		updates["admin_notes"] = strOrNil(*adminNotes)
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(observed)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *BookingRepository) UpdateDeposit(ctx context.Context, id string, depositPaid bool, adminNotes *string) (bool, error) {
	updates := map[string]any{
		"deposit_paid": depositPaid,
		"updated_at":   time.Now().UTC(),
	}
	if adminNotes != nil {
		updates["admin_notes"] = strOrNil(*adminNotes)
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// Reschedule moves a booking to a new slot inside one transaction so the
// conflict count and the update commit together.
func (r *BookingRepository) Reschedule(ctx context.Context, id string, date time.Time, timeOfDay, locationID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("location_id = ? AND booking_date = ? AND booking_time = ?", locationID, date, timeOfDay).
			Where("status <> ?", string(domain.BookingCancelled)).
			Where("id <> ?", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotTaken
		}
		return tx.Model(&bookingModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"booking_date": date,
				"booking_time": timeOfDay,
				"location_id":  locationID,
				"updated_at":   time.Now().UTC(),
			}).Error
	})
	if err != nil && isUniqueViolation(err) {
		return ErrSlotTaken
	}
	return err
}

// BookingFilter narrows List/ListAll; zero values mean "no constraint".
// All set fields apply together.
type BookingFilter struct {
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
	LocationID string
}

func (r *BookingRepository) applyFilter(q *gorm.DB, f BookingFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("booking_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("booking_date <= ?", *f.DateTo)
	}
	if f.LocationID != "" {
		q = q.Where("location_id = ?", f.LocationID)
	}
	return q
}

// List returns one page ordered by slot, creation order breaking ties,
// plus the unpaginated match count.
func (r *BookingRepository) List(ctx context.Context, f BookingFilter, limit, offset int) ([]domain.Booking, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.WithContext(ctx).Model(&bookingModel{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []bookingModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&bookingModel{}), f).
		Order("booking_date ASC, booking_time ASC, created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

// ListAll returns every match in List's order, for export.
func (r *BookingRepository) ListAll(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&bookingModel{}), f).
		Order("booking_date ASC, booking_time ASC, created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
