package notify

import (
	"context"
	"time"

	"farm-visit/internal/data/entity"
)

type Event string

const (
	EventSubmitted Event = "visit_request.submitted"
	EventApproved  Event = "visit_request.approved"
	EventRejected  Event = "visit_request.rejected"
	EventCompleted Event = "visit_request.completed"
	EventCancelled Event = "visit_request.cancelled"
	EventOverride  Event = "visit_request.override"
)

// EventForStatus maps the status a request moved into to its event.
func EventForStatus(status entity.VisitStatus) Event {
	switch status {
	case entity.VisitStatusApproved:
		return EventApproved
	case entity.VisitStatusRejected:
		return EventRejected
	case entity.VisitStatusCompleted:
		return EventCompleted
	case entity.VisitStatusCancelled:
		return EventCancelled
	}
	return EventSubmitted
}

// Notifier publishes request lifecycle events. Publish never fails the caller.
type Notifier interface {
	Publish(ctx context.Context, event Event, req *entity.VisitRequest)
	Close() error
}

// Dispatcher delivers a single message synchronously.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
	Close() error
}

type Message struct {
	Event            Event              `json:"event"`
	RequestID        string             `json:"request_id"`
	SellerID         string             `json:"seller_id"`
	UserID           *string            `json:"user_id,omitempty"`
	SlotID           *string            `json:"availability_id,omitempty"`
	Status           entity.VisitStatus `json:"status"`
	NumberOfVisitors int                `json:"number_of_visitors"`
	VisitorName      string             `json:"visitor_name"`
	VisitorPhone     *string            `json:"visitor_phone,omitempty"`
	VisitorEmail     *string            `json:"visitor_email,omitempty"`
	RequestedDate    string             `json:"requested_date"`
	OccurredAt       time.Time          `json:"occurred_at"`
}

func NewMessage(event Event, req *entity.VisitRequest, at time.Time) Message {
	msg := Message{
		Event:            event,
		RequestID:        req.ID.String(),
		SellerID:         req.SellerID.String(),
		Status:           req.Status,
		NumberOfVisitors: req.NumberOfVisitors,
		VisitorName:      req.VisitorName,
		VisitorPhone:     req.VisitorPhone,
		VisitorEmail:     req.VisitorEmail,
		RequestedDate:    req.RequestedDate.Format("2006-01-02"),
		OccurredAt:       at,
	}
	if req.UserID != nil {
		id := req.UserID.String()
		msg.UserID = &id
	}
	if req.AvailabilityID != nil {
		id := req.AvailabilityID.String()
		msg.SlotID = &id
	}
	return msg
}
