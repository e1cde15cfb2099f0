package booking

import "bridalbook/internal/domain"

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`

	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	LocationID  string `json:"location_id" binding:"required"`

	Brides  int `json:"brides" binding:"gte=0"`
	Maids   int `json:"maids" binding:"gte=0"`
	Mothers int `json:"mothers" binding:"gte=0"`
	Others  int `json:"others" binding:"gte=0"`

	WeddingTheme    string `json:"wedding_theme"`
	SpecialRequests string `json:"special_requests"`
}

type RescheduleBookingRequest struct {
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	LocationID  string `json:"location_id"`
}

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	AdminNotes   string `json:"admin_notes"`
	ReplaceNotes bool   `json:"replace_notes"`
}

type UpdateDepositRequest struct {
	DepositPaid  *bool  `json:"deposit_paid" binding:"required"`
	AdminNotes   string `json:"admin_notes"`
	ReplaceNotes bool   `json:"replace_notes"`
}

type ListBookingsQuery struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	Status     string `form:"status"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	LocationID string `form:"locationId"`
}

type BookingPage struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
