package repository

import "gorm.io/gorm"

// Migrate creates the schema and the partial unique index that
// serializes admission per slot: at most one non-cancelled booking per
// (location, date, time). Both postgres and sqlite accept the partial
// index syntax.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&bookingModel{}, &calendarBlockModel{}); err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
ON bookings (location_id, booking_date, booking_time)
WHERE status <> 'cancelled'`).Error
}
