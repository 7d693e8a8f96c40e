package response

import (
	"time"

	"farm-visit/internal/data/entity"
	"farm-visit/pkg/utils"

	"github.com/google/uuid"
)

type VisitRequestResponse struct {
	ID                  string             `json:"id"`
	UserID              *string            `json:"user_id"`
	SellerID            string             `json:"seller_id"`
	AvailabilityID      *string            `json:"availability_id"`
	RequestedDate       string             `json:"requested_date"`
	RequestedTimeStart  string             `json:"requested_time_start"`
	RequestedTimeEnd    string             `json:"requested_time_end"`
	NumberOfVisitors    int                `json:"number_of_visitors"`
	VisitorName         string             `json:"visitor_name"`
	VisitorPhone        *string            `json:"visitor_phone,omitempty"`
	VisitorEmail        *string            `json:"visitor_email,omitempty"`
	Purpose             *string            `json:"purpose,omitempty"`
	SpecialRequirements *string            `json:"special_requirements,omitempty"`
	Message             *string            `json:"message,omitempty"`
	Status              entity.VisitStatus `json:"status"`
	AdminNotes          *string            `json:"admin_notes,omitempty"`
	RejectionReason     *string            `json:"rejection_reason,omitempty"`
	ReviewedBy          *string            `json:"reviewed_by,omitempty"`
	ReviewedAt          *time.Time         `json:"reviewed_at,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func VisitRequestToResponse(req *entity.VisitRequest) VisitRequestResponse {
	return VisitRequestResponse{
		ID:                  req.ID.String(),
		UserID:              uuidString(req.UserID),
		SellerID:            req.SellerID.String(),
		AvailabilityID:      uuidString(req.AvailabilityID),
		RequestedDate:       utils.FormatDate(req.RequestedDate),
		RequestedTimeStart:  req.RequestedTimeStart,
		RequestedTimeEnd:    req.RequestedTimeEnd,
		NumberOfVisitors:    req.NumberOfVisitors,
		VisitorName:         req.VisitorName,
		VisitorPhone:        req.VisitorPhone,
		VisitorEmail:        req.VisitorEmail,
		Purpose:             req.Purpose,
		SpecialRequirements: req.SpecialRequirement,
		Message:             req.Message,
		Status:              req.Status,
		AdminNotes:          req.AdminNotes,
		RejectionReason:     req.RejectionReason,
		ReviewedBy:          uuidString(req.ReviewedBy),
		ReviewedAt:          req.ReviewedAt,
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           req.UpdatedAt,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
