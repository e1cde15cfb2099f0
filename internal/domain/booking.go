package domain

import "time"

type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingDepositPaid BookingStatus = "deposit_paid"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
)

// statusTransitions is the full lifecycle graph. completed and cancelled
// are terminal and have no outgoing edges.
var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:     {BookingConfirmed, BookingCancelled},
	BookingConfirmed:   {BookingDepositPaid, BookingCancelled},
	BookingDepositPaid: {BookingCompleted, BookingCancelled},
	BookingCompleted:   {},
	BookingCancelled:   {},
}

func (s BookingStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether the lifecycle graph has an edge s -> next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	LocationID  string    `json:"location_id" validate:"required"`

	Brides  int `json:"brides" validate:"gte=0"`
	Maids   int `json:"maids" validate:"gte=0"`
	Mothers int `json:"mothers" validate:"gte=0"`
	Others  int `json:"others" validate:"gte=0"`

	DepositPaid bool          `json:"deposit_paid"`
	Status      BookingStatus `json:"status"`

	WeddingTheme    string `json:"wedding_theme,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty" gorm:"type:text"`
	AdminNotes      string `json:"admin_notes,omitempty" gorm:"type:text"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (b *Booking) PartySize() int {
	return b.Brides + b.Maids + b.Mothers + b.Others
}

// SlotTimeLayout is the wire format of a booking's time-of-day.
const SlotTimeLayout = "15:04"

// SlotDateLayout is the wire format of a booking's calendar date.
const SlotDateLayout = "2006-01-02"

// SlotInstant combines a calendar date with a "15:04" time-of-day into a
// single instant. All times are the business's local time, kept in UTC.
func SlotInstant(date time.Time, timeOfDay string) (time.Time, error) {
	t, err := time.Parse(SlotTimeLayout, timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
