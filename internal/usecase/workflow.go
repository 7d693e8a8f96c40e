package usecase

import (
	"context"
	"fmt"
	"time"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/data/repository"
	"farm-visit/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Decision string

const (
	DecisionApprove  Decision = "approve"
	DecisionReject   Decision = "reject"
	DecisionComplete Decision = "complete"
	DecisionCancel   Decision = "cancel"
)

var decisionActions = map[Decision]Action{
	DecisionApprove:  ActionApprove,
	DecisionReject:   ActionReject,
	DecisionComplete: ActionComplete,
	DecisionCancel:   ActionCancel,
}

type effect int

const (
	effectNone effect = iota
	effectReserve
	effectRelease
)

type transition struct {
	to      entity.VisitStatus
	allowed Party
	effect  effect
}

var transitions = map[entity.VisitStatus]map[Decision]transition{
	entity.VisitStatusPending: {
		DecisionApprove: {to: entity.VisitStatusApproved, allowed: PartySellerOwner | partyStaff, effect: effectReserve},
		DecisionReject:  {to: entity.VisitStatusRejected, allowed: PartySellerOwner | partyStaff},
		DecisionCancel:  {to: entity.VisitStatusCancelled, allowed: PartyRequester | partyStaff},
	},
	entity.VisitStatusApproved: {
		DecisionComplete: {to: entity.VisitStatusCompleted, allowed: PartySellerOwner | partyStaff},
		DecisionCancel:   {to: entity.VisitStatusCancelled, allowed: PartyRequester | PartySellerOwner | partyStaff, effect: effectRelease},
	},
}

// DecisionInput is what an actor submits with a decision.
type DecisionInput struct {
	Decision        Decision
	Notes           string
	RejectionReason string
}

// RequestWorkflow moves visit requests between statuses. Each call is one
// transaction: the request row is locked, capacity is reserved or released and
// the status is written with a compare-and-swap on the previous status.
type RequestWorkflow interface {
	Decide(ctx context.Context, actor entity.Actor, requestID uuid.UUID, in DecisionInput) (*entity.VisitRequest, error)
	Override(ctx context.Context, actor entity.Actor, requestID uuid.UUID, to entity.VisitStatus, notes string) (req *entity.VisitRequest, from entity.VisitStatus, err error)
}

type requestWorkflow struct {
	repo   *repository.Repository
	guard  CapacityGuard
	policy *AccessPolicy
	log    *zap.Logger
	now    func() time.Time
}

func NewRequestWorkflow(repo *repository.Repository, guard CapacityGuard, policy *AccessPolicy, log *zap.Logger) RequestWorkflow {
	return &requestWorkflow{
		repo:   repo,
		guard:  guard,
		policy: policy,
		log:    log.With(zap.String("service", "workflow")),
		now:    time.Now,
	}
}

func requestResource(req *entity.VisitRequest) Resource {
	return Resource{SellerID: req.SellerID, RequesterID: req.UserID}
}

func (w *requestWorkflow) Decide(ctx context.Context, actor entity.Actor, requestID uuid.UUID, in DecisionInput) (*entity.VisitRequest, error) {
	action, ok := decisionActions[in.Decision]
	if !ok {
		return nil, errs.Invalid("decision", "Must be one of: approve, reject, complete, cancel")
	}

	var updated *entity.VisitRequest
	err := w.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := w.repo.VisitRequest.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}

		res := requestResource(req)
		if err := w.policy.Authorize(actor, action, res); err != nil {
			return err
		}

		from := req.Status
		if from.IsTerminal() {
			return fmt.Errorf("request %s is %s: %w", req.ID, from, errs.ErrRequestTerminal)
		}

		t, ok := transitions[from][in.Decision]
		if !ok {
			return fmt.Errorf("%s a %s request: %w", in.Decision, from, errs.ErrInvalidTransition)
		}
		if w.policy.Parties(actor, res)&t.allowed == 0 {
			return fmt.Errorf("%s a %s request by %s: %w", in.Decision, from, actor.Role, errs.ErrUnauthorized)
		}

		if err := w.applyEffect(ctx, req, t.effect); err != nil {
			return err
		}

		req.Status = t.to
		if in.Notes != "" {
			req.AdminNotes = &in.Notes
		}
		if t.to == entity.VisitStatusRejected && in.RejectionReason != "" {
			req.RejectionReason = &in.RejectionReason
		}
		if !req.RequestedBy(actor.UserID) {
			w.markReviewed(req, actor)
		}

		if err := w.repo.VisitRequest.UpdateStatus(ctx, req, from); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.log.Info("Visit request decided",
		zap.String("request_id", updated.ID.String()),
		zap.String("decision", string(in.Decision)),
		zap.String("status", string(updated.Status)),
		zap.String("actor_id", actor.UserID.String()),
	)
	return updated, nil
}

// Override sets any status, terminal ones included. Capacity follows the change
// between holding and non-holding statuses and is still bounded by max_visitors.
func (w *requestWorkflow) Override(ctx context.Context, actor entity.Actor, requestID uuid.UUID, to entity.VisitStatus, notes string) (*entity.VisitRequest, entity.VisitStatus, error) {
	if !to.Valid() {
		return nil, "", errs.Invalid("status", "Must be one of: pending, approved, rejected, completed, cancelled")
	}
	if notes == "" {
		return nil, "", errs.Invalid("notes", "This field is required")
	}

	var (
		updated *entity.VisitRequest
		from    entity.VisitStatus
	)
	err := w.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := w.repo.VisitRequest.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := w.policy.Authorize(actor, ActionOverride, requestResource(req)); err != nil {
			return err
		}

		from = req.Status
		switch {
		case !from.HoldsCapacity() && to.HoldsCapacity():
			err = w.applyEffect(ctx, req, effectReserve)
		case from.HoldsCapacity() && !to.HoldsCapacity():
			err = w.applyEffect(ctx, req, effectRelease)
		}
		if err != nil {
			return err
		}

		req.Status = to
		req.AdminNotes = &notes
		w.markReviewed(req, actor)

		if err := w.repo.VisitRequest.UpdateStatus(ctx, req, from); err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	w.log.Warn("Visit request status overridden",
		zap.String("request_id", updated.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("actor_id", actor.UserID.String()),
		zap.String("actor_role", string(actor.Role)),
		zap.String("notes", notes),
	)
	return updated, from, nil
}

func (w *requestWorkflow) applyEffect(ctx context.Context, req *entity.VisitRequest, e effect) error {
	switch e {
	case effectReserve:
		if req.AvailabilityID == nil {
			return fmt.Errorf("request %s has no slot: %w", req.ID, errs.ErrSlotUnavailable)
		}
		return w.guard.Reserve(ctx, *req.AvailabilityID, req.NumberOfVisitors)
	case effectRelease:
		if req.AvailabilityID == nil {
			return nil
		}
		return w.guard.Release(ctx, *req.AvailabilityID, req.NumberOfVisitors)
	}
	return nil
}

func (w *requestWorkflow) markReviewed(req *entity.VisitRequest, actor entity.Actor) {
	reviewer := actor.UserID
	at := w.now()
	req.ReviewedBy = &reviewer
	req.ReviewedAt = &at
}
