package response

import (
	"time"

	"farm-visit/internal/data/entity"
	"farm-visit/pkg/utils"
)

type SlotResponse struct {
	ID                string    `json:"id"`
	SellerID          string    `json:"seller_id"`
	Date              string    `json:"date"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	IsAvailable       bool      `json:"is_available"`
	MaxVisitors       int       `json:"max_visitors"`
	CurrentBookings   int       `json:"current_bookings"`
	RemainingCapacity int       `json:"remaining_capacity"`
	IsExpired         bool      `json:"is_expired"`
	PricePerPerson    float64   `json:"price_per_person"`
	VisitType         string    `json:"visit_type,omitempty"`
	LocationType      string    `json:"location_type,omitempty"`
	ActivityType      string    `json:"activity_type,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SlotLedgerResponse compares the stored counter with the held request total.
type SlotLedgerResponse struct {
	SlotID            string `json:"slot_id"`
	MaxVisitors       int    `json:"max_visitors"`
	CurrentBookings   int    `json:"current_bookings"`
	HeldVisitors      int    `json:"held_visitors"`
	RemainingCapacity int    `json:"remaining_capacity"`
	Consistent        bool   `json:"consistent"`
}

// SlotToResponse fills the computed fields relative to today.
func SlotToResponse(slot *entity.AvailabilitySlot, today time.Time) SlotResponse {
	return SlotResponse{
		ID:                slot.ID.String(),
		SellerID:          slot.SellerID.String(),
		Date:              utils.FormatDate(slot.Date),
		StartTime:         slot.StartTime,
		EndTime:           slot.EndTime,
		IsAvailable:       slot.IsAvailable,
		MaxVisitors:       slot.MaxVisitors,
		CurrentBookings:   slot.CurrentBookings,
		RemainingCapacity: slot.RemainingCapacity(),
		IsExpired:         slot.IsExpired(today),
		PricePerPerson:    slot.PricePerPerson,
		VisitType:         slot.VisitType,
		LocationType:      slot.LocationType,
		ActivityType:      slot.ActivityType,
		Notes:             slot.Notes,
		CreatedAt:         slot.CreatedAt,
		UpdatedAt:         slot.UpdatedAt,
	}
}
