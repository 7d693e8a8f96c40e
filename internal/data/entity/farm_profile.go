package entity

import "github.com/google/uuid"

// FarmVisitProfile is owned by the marketplace profile module; read-only here.
type FarmVisitProfile struct {
	SellerID            uuid.UUID `db:"seller_id"`
	VisitBookingEnabled bool      `db:"visit_booking_enabled"`
	PublicProfile       bool      `db:"public_profile"`
}

func (p *FarmVisitProfile) Discoverable() bool {
	return p != nil && p.VisitBookingEnabled && p.PublicProfile
}
