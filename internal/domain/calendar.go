package domain

import "time"

// CalendarBlock marks a date/time range the business is closed for
// bookings: vacations, holidays, manual holds. LocationID scopes the
// block to one location; empty means all locations.
type CalendarBlock struct {
	ID         string    `json:"id"`
	StartAt    time.Time `json:"start_at" validate:"required"`
	EndAt      time.Time `json:"end_at" validate:"required"`
	LocationID string    `json:"location_id,omitempty"`
	Reason     string    `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
