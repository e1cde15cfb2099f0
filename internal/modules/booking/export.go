package booking

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"bridalbook/internal/domain"
)

// csvHeader is the fixed export column set; consumers key on it.
var csvHeader = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"booking_date",
	"booking_time",
	"location_id",
	"brides",
	"maids",
	"mothers",
	"others",
	"status",
	"deposit_paid",
	"wedding_theme",
	"special_requests",
	"admin_notes",
	"created_at",
}

// WriteCSV serializes bookings in the order given, header first.
func WriteCSV(w io.Writer, bookings []domain.Booking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range bookings {
		b := &bookings[i]
		row := []string{
			b.ID,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.BookingDate.Format(domain.SlotDateLayout),
			b.BookingTime,
			b.LocationID,
			strconv.Itoa(b.Brides),
			strconv.Itoa(b.Maids),
			strconv.Itoa(b.Mothers),
			strconv.Itoa(b.Others),
			string(b.Status),
			strconv.FormatBool(b.DepositPaid),
			b.WeddingTheme,
			b.SpecialRequests,
			b.AdminNotes,
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
