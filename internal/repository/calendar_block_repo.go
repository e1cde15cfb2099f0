package repository

import (
	"context"
	"time"

	"bridalbook/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarBlockRepository struct {
	db *gorm.DB
}

func NewCalendarBlockRepository(db *gorm.DB) *CalendarBlockRepository {
	return &CalendarBlockRepository{db: db}
}

type calendarBlockModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	StartAt    time.Time `gorm:"column:start_at;index"`
	EndAt      time.Time `gorm:"column:end_at"`
	LocationID string    `gorm:"column:location_id;index"`
	Reason     *string   `gorm:"column:reason"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (calendarBlockModel) TableName() string { return "calendar_blocks" }

func toDomainBlock(m calendarBlockModel) *domain.CalendarBlock {
	return &domain.CalendarBlock{
		ID:         m.ID,
		StartAt:    m.StartAt,
		EndAt:      m.EndAt,
		LocationID: m.LocationID,
		Reason:     strOrEmpty(m.Reason),
		CreatedAt:  m.CreatedAt,
	}
}

func (r *CalendarBlockRepository) Create(ctx context.Context, b *domain.CalendarBlock) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m := calendarBlockModel{
		ID:         b.ID,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		LocationID: b.LocationID,
		Reason:     strOrNil(b.Reason),
		CreatedAt:  b.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBlock(m)
	return nil
}

// Delete removes a block; the bool reports whether the id existed.
func (r *CalendarBlockRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&calendarBlockModel{}, "id = ?", id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// ListRange returns blocks overlapping [from, to). An empty locationID
// returns blocks for every location; otherwise location-scoped blocks
// for that location plus global blocks.
func (r *CalendarBlockRepository) ListRange(ctx context.Context, from, to time.Time, locationID string) ([]domain.CalendarBlock, error) {
	q := r.db.WithContext(ctx).Model(&calendarBlockModel{}).
		Where("start_at < ? AND end_at > ?", to, from)
	if locationID != "" {
		q = q.Where("location_id = ? OR location_id = ''", locationID)
	}

	var models []calendarBlockModel
	if err := q.Order("start_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.CalendarBlock, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBlock(m))
	}
	return out, nil
}

// AnyCovering reports whether any block (location-scoped or global)
// covers the instant t for the location. Half-open: [start_at, end_at).
func (r *CalendarBlockRepository) AnyCovering(ctx context.Context, t time.Time, locationID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&calendarBlockModel{}).
		Where("start_at <= ? AND end_at > ?", t, t).
		Where("location_id = ? OR location_id = ''", locationID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
