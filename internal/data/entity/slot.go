package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a seller-published visiting window.
// CurrentBookings is written only through the capacity repository.
type AvailabilitySlot struct {
	Record
	SellerID        uuid.UUID `db:"seller_id"`
	Date            time.Time `db:"date"`
	StartTime       string    `db:"start_time"` // HH:MM
	EndTime         string    `db:"end_time"`   // HH:MM
	IsAvailable     bool      `db:"is_available"`
	MaxVisitors     int       `db:"max_visitors"`
	CurrentBookings int       `db:"current_bookings"`
	PricePerPerson  float64   `db:"price_per_person"`
	VisitType       string    `db:"visit_type"`
	LocationType    string    `db:"location_type"`
	ActivityType    string    `db:"activity_type"`
	Notes           *string   `db:"notes"`
}

func (s *AvailabilitySlot) RemainingCapacity() int {
	if rem := s.MaxVisitors - s.CurrentBookings; rem > 0 {
		return rem
	}
	return 0
}

// IsExpired compares calendar dates only; today is the caller's local date.
func (s *AvailabilitySlot) IsExpired(today time.Time) bool {
	return DateOnly(s.Date).Before(DateOnly(today))
}

// SlotAttributes are the seller-editable fields of a slot.
type SlotAttributes struct {
	Date           time.Time
	StartTime      string
	EndTime        string
	IsAvailable    bool
	MaxVisitors    int
	PricePerPerson float64
	VisitType      string
	LocationType   string
	ActivityType   string
	Notes          *string
}

// DateOnly drops the clock and location, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
