package entity

import (
	"time"

	"github.com/google/uuid"
)

type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusApproved  VisitStatus = "approved"
	VisitStatusRejected  VisitStatus = "rejected"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

func (s VisitStatus) Valid() bool {
	switch s {
	case VisitStatusPending, VisitStatusApproved, VisitStatusRejected,
		VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}

func (s VisitStatus) IsTerminal() bool {
	return s == VisitStatusRejected || s == VisitStatusCompleted || s == VisitStatusCancelled
}

// HoldsCapacity reports whether requests in this status count against the slot.
func (s VisitStatus) HoldsCapacity() bool {
	return s == VisitStatusApproved || s == VisitStatusCompleted
}

type VisitRequest struct {
	Record
	UserID             *uuid.UUID  `db:"user_id"`
	SellerID           uuid.UUID   `db:"seller_id"`
	AvailabilityID     *uuid.UUID  `db:"availability_id"`
	RequestedDate      time.Time   `db:"requested_date"`
	RequestedTimeStart string      `db:"requested_time_start"`
	RequestedTimeEnd   string      `db:"requested_time_end"`
	NumberOfVisitors   int         `db:"number_of_visitors"`
	VisitorName        string      `db:"visitor_name"`
	VisitorPhone       *string     `db:"visitor_phone"`
	VisitorEmail       *string     `db:"visitor_email"`
	Purpose            *string     `db:"purpose"`
	SpecialRequirement *string     `db:"special_requirements"`
	Message            *string     `db:"message"`
	Status             VisitStatus `db:"status"`
	AdminNotes         *string     `db:"admin_notes"`
	RejectionReason    *string     `db:"rejection_reason"`
	ReviewedBy         *uuid.UUID  `db:"reviewed_by"`
	ReviewedAt         *time.Time  `db:"reviewed_at"`
}

// RequestedBy reports whether userID submitted this request. Guest requests match nobody.
func (r *VisitRequest) RequestedBy(userID uuid.UUID) bool {
	return r.UserID != nil && userID != uuid.Nil && *r.UserID == userID
}
