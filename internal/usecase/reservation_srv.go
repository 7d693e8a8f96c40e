package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/data/repository"
	"farm-visit/internal/dto/request"
	"farm-visit/internal/dto/response"
	"farm-visit/internal/errs"
	"farm-visit/internal/notify"
	"farm-visit/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/golang/mock/mockgen -source=reservation_srv.go -destination=mocks/mock_reservation.go -package=mocks

type ReservationService interface {
	// Slots
	CreateSlot(ctx context.Context, actor entity.Actor, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	UpdateSlot(ctx context.Context, actor entity.Actor, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error)
	DeleteSlot(ctx context.Context, actor entity.Actor, slotID string, cascade bool) error
	GetSlot(ctx context.Context, actor entity.Actor, slotID string) (*response.SlotResponse, error)
	ListSlots(ctx context.Context, actor entity.Actor, req *request.ListSlotsRequest) (*response.PaginatedResponse[response.SlotResponse], error)
	SlotLedger(ctx context.Context, actor entity.Actor, slotID string) (*response.SlotLedgerResponse, error)

	// Visit requests
	SubmitVisitRequest(ctx context.Context, actor entity.Actor, req *request.SubmitVisitRequest) (*response.VisitRequestResponse, error)
	DecideVisitRequest(ctx context.Context, actor entity.Actor, requestID string, req *request.DecisionRequest) (*response.VisitRequestResponse, error)
	OverrideVisitRequest(ctx context.Context, actor entity.Actor, requestID string, req *request.OverrideRequest) (*response.VisitRequestResponse, error)
	GetVisitRequest(ctx context.Context, actor entity.Actor, requestID string) (*response.VisitRequestResponse, error)
	ListForSeller(ctx context.Context, actor entity.Actor, sellerID string, req *request.ListVisitRequestsRequest) (*response.PaginatedResponse[response.VisitRequestResponse], error)
	ListForRequester(ctx context.Context, actor entity.Actor, req *request.ListVisitRequestsRequest) (*response.PaginatedResponse[response.VisitRequestResponse], error)
}

type reservationService struct {
	repo     *repository.Repository
	policy   *AccessPolicy
	workflow RequestWorkflow
	guard    CapacityGuard
	notifier notify.Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewReservationService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) ReservationService {
	policy := NewAccessPolicy()
	guard := NewCapacityGuard(repo.Capacity, log)
	return &reservationService{
		repo:     repo,
		policy:   policy,
		workflow: NewRequestWorkflow(repo, guard, policy, log),
		guard:    guard,
		notifier: notifier,
		log:      log.With(zap.String("service", "reservation")),
		now:      time.Now,
	}
}

func (s *reservationService) today() time.Time {
	return entity.DateOnly(s.now())
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Invalid(field, "Must be a valid UUID")
	}
	return id, nil
}

func validate(data any) error {
	if fields := utils.ValidateStruct(data); len(fields) > 0 {
		return errs.NewValidationError(fields)
	}
	return nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		return nil, errs.Invalid(field, "Must match layout "+utils.DateLayout)
	}
	return &d, nil
}

// slotAttributes parses and cross-checks the editable fields. On update,
// existing supplies the defaults and a slot may keep its past date.
func (s *reservationService) slotAttributes(req *request.SlotRequest, existing *entity.AvailabilitySlot) (entity.SlotAttributes, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return entity.SlotAttributes{}, errs.Invalid("date", "Must match layout "+utils.DateLayout)
	}
	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return entity.SlotAttributes{}, errs.Invalid("start_time", "Must be a time of day in HH:MM format")
	}
	end, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return entity.SlotAttributes{}, errs.Invalid("end_time", "Must be a time of day in HH:MM format")
	}
	if !end.After(start) {
		return entity.SlotAttributes{}, errs.Invalid("end_time", "Must be after start_time")
	}
	dateChanged := existing == nil || !date.Equal(existing.Date)
	if dateChanged && date.Before(s.today()) {
		return entity.SlotAttributes{}, errs.Invalid("date", "Must not be in the past")
	}

	isAvailable := true
	if existing != nil {
		isAvailable = existing.IsAvailable
	}
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	return entity.SlotAttributes{
		Date:           date,
		StartTime:      start.Format(utils.TimeLayout),
		EndTime:        end.Format(utils.TimeLayout),
		IsAvailable:    isAvailable,
		MaxVisitors:    req.MaxVisitors,
		PricePerPerson: req.PricePerPerson,
		VisitType:      req.VisitType,
		LocationType:   req.LocationType,
		ActivityType:   req.ActivityType,
		Notes:          req.Notes,
	}, nil
}

func (s *reservationService) CreateSlot(ctx context.Context, actor entity.Actor, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create slot validation failed", zap.Error(err))
		return nil, err
	}

	sellerID := actor.UserID
	if req.SellerID != "" && actor.IsStaff() {
		id, err := parseID("seller_id", req.SellerID)
		if err != nil {
			return nil, err
		}
		sellerID = id
	}

	if err := s.policy.Authorize(actor, ActionCreateSlot, Resource{SellerID: sellerID}); err != nil {
		return nil, err
	}

	attrs, err := s.slotAttributes(&req.SlotRequest, nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	slot := &entity.AvailabilitySlot{
		Record:         entity.NewRecord(now),
		SellerID:       sellerID,
		Date:           attrs.Date,
		StartTime:      attrs.StartTime,
		EndTime:        attrs.EndTime,
		IsAvailable:    attrs.IsAvailable,
		MaxVisitors:    attrs.MaxVisitors,
		PricePerPerson: attrs.PricePerPerson,
		VisitType:      attrs.VisitType,
		LocationType:   attrs.LocationType,
		ActivityType:   attrs.ActivityType,
		Notes:          attrs.Notes,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("seller_id", sellerID.String()),
		zap.Int("max_visitors", slot.MaxVisitors),
	)

	resp := response.SlotToResponse(slot, s.today())
	return &resp, nil
}

func (s *reservationService) UpdateSlot(ctx context.Context, actor entity.Actor, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error) {
	id, err := parseID("id", slotID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		s.log.Warn("Update slot validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.Slot.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, ActionUpdateSlot, Resource{SellerID: existing.SellerID}); err != nil {
		return nil, err
	}

	attrs, err := s.slotAttributes(&req.SlotRequest, existing)
	if err != nil {
		return nil, err
	}

	slot, err := s.repo.Slot.Update(ctx, id, attrs)
	if err != nil {
		return nil, err
	}

	s.log.Info("Slot updated", zap.String("slot_id", id.String()))

	resp := response.SlotToResponse(slot, s.today())
	return &resp, nil
}

// DeleteSlot refuses while pending or approved requests reference the slot.
// With cascade those requests are cancelled first, releasing held capacity.
func (s *reservationService) DeleteSlot(ctx context.Context, actor entity.Actor, slotID string, cascade bool) error {
	id, err := parseID("id", slotID)
	if err != nil {
		return err
	}

	var cancelled []*entity.VisitRequest
	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		cancelled = nil

		slot, err := s.repo.Slot.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(actor, ActionDeleteSlot, Resource{SellerID: slot.SellerID}); err != nil {
			return err
		}

		// Request rows are locked before the slot row, the same order Decide uses.
		var active []*entity.VisitRequest
		if cascade {
			if active, err = s.repo.VisitRequest.ListActiveBySlot(ctx, id); err != nil {
				return err
			}
		}
		if _, err := s.repo.Slot.FindByIDForUpdate(ctx, id); err != nil {
			return err
		}

		if cascade {
			for _, req := range active {
				if err := s.cancelForRemoval(ctx, actor, req); err != nil {
					return err
				}
				cancelled = append(cancelled, req)
			}
		}

		return s.repo.Slot.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("Slot deleted",
		zap.String("slot_id", id.String()),
		zap.Bool("cascade", cascade),
		zap.Int("cancelled_requests", len(cancelled)),
	)

	for _, req := range cancelled {
		s.notifier.Publish(ctx, notify.EventCancelled, req)
	}
	return nil
}

func (s *reservationService) cancelForRemoval(ctx context.Context, actor entity.Actor, req *entity.VisitRequest) error {
	from := req.Status
	if from.HoldsCapacity() {
		if err := s.guard.Release(ctx, *req.AvailabilityID, req.NumberOfVisitors); err != nil {
			return err
		}
	}

	notes := "Slot removed by " + string(actor.Role)
	reviewer := actor.UserID
	at := s.now()
	req.Status = entity.VisitStatusCancelled
	req.AdminNotes = &notes
	req.ReviewedBy = &reviewer
	req.ReviewedAt = &at

	return s.repo.VisitRequest.UpdateStatus(ctx, req, from)
}

// visible hides slots of farms that are not public, except from their owner and staff.
func (s *reservationService) visible(ctx context.Context, actor entity.Actor, slot *entity.AvailabilitySlot) (bool, error) {
	if s.policy.Can(actor, ActionUpdateSlot, Resource{SellerID: slot.SellerID}) {
		return true, nil
	}
	profile, err := s.repo.FarmProfile.FindBySellerID(ctx, slot.SellerID)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.Discoverable(), nil
}

func (s *reservationService) GetSlot(ctx context.Context, actor entity.Actor, slotID string) (*response.SlotResponse, error) {
	id, err := parseID("id", slotID)
	if err != nil {
		return nil, err
	}

	slot, err := s.repo.Slot.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, ActionViewSlot, Resource{SellerID: slot.SellerID}); err != nil {
		return nil, err
	}

	ok, err := s.visible(ctx, actor, slot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
	}

	resp := response.SlotToResponse(slot, s.today())
	return &resp, nil
}

func (s *reservationService) ListSlots(ctx context.Context, actor entity.Actor, req *request.ListSlotsRequest) (*response.PaginatedResponse[response.SlotResponse], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	filter := repository.SlotFilter{
		VisitType:     req.VisitType,
		OnlyAvailable: req.OnlyAvailable,
		PublicOnly:    true,
		Limit:         req.Limit(),
		Offset:        req.Offset(),
	}

	if req.SellerID != "" {
		sellerID, err := parseID("seller_id", req.SellerID)
		if err != nil {
			return nil, err
		}
		filter.SellerID = &sellerID
		if s.policy.Can(actor, ActionUpdateSlot, Resource{SellerID: sellerID}) {
			filter.PublicOnly = false
		}
	} else if actor.IsStaff() {
		filter.PublicOnly = false
	}
	if err := s.policy.Authorize(actor, ActionListSlots, Resource{}); err != nil {
		return nil, err
	}

	var err error
	if filter.DateFrom, err = parseOptionalDate("date_from", req.DateFrom); err != nil {
		return nil, err
	}
	if filter.DateTo, err = parseOptionalDate("date_to", req.DateTo); err != nil {
		return nil, err
	}
	today := s.today()
	if !req.IncludePast && (filter.DateFrom == nil || filter.DateFrom.Before(today)) {
		filter.DateFrom = &today
	}

	var (
		slots []*entity.AvailabilitySlot
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots, err = s.repo.Slot.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Slot.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	data := make([]response.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		data = append(data, response.SlotToResponse(slot, today))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *reservationService) SlotLedger(ctx context.Context, actor entity.Actor, slotID string) (*response.SlotLedgerResponse, error) {
	id, err := parseID("id", slotID)
	if err != nil {
		return nil, err
	}

	var ledger response.SlotLedgerResponse
	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		slot, err := s.repo.Slot.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(actor, ActionViewLedger, Resource{SellerID: slot.SellerID}); err != nil {
			return err
		}

		held, err := s.repo.VisitRequest.SumHeldVisitors(ctx, id)
		if err != nil {
			return err
		}

		ledger = response.SlotLedgerResponse{
			SlotID:            id.String(),
			MaxVisitors:       slot.MaxVisitors,
			CurrentBookings:   slot.CurrentBookings,
			HeldVisitors:      held,
			RemainingCapacity: slot.RemainingCapacity(),
			Consistent:        held == slot.CurrentBookings,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !ledger.Consistent {
		s.log.Error("Slot ledger mismatch",
			zap.String("slot_id", ledger.SlotID),
			zap.Int("current_bookings", ledger.CurrentBookings),
			zap.Int("held_visitors", ledger.HeldVisitors),
		)
	}
	return &ledger, nil
}

func (s *reservationService) SubmitVisitRequest(ctx context.Context, actor entity.Actor, req *request.SubmitVisitRequest) (*response.VisitRequestResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Submit visit request validation failed", zap.Error(err))
		return nil, err
	}
	if actor.IsGuest() && req.VisitorPhone == "" && req.VisitorEmail == "" {
		return nil, errs.NewValidationError(map[string]string{
			"VisitorPhone": "Required when VisitorEmail is empty",
			"VisitorEmail": "Required when VisitorPhone is empty",
		})
	}
	if err := s.policy.Authorize(actor, ActionSubmitRequest, Resource{}); err != nil {
		return nil, err
	}

	slotID, err := parseID("availability_id", req.AvailabilityID)
	if err != nil {
		return nil, err
	}

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.FarmProfile.FindBySellerID(ctx, slot.SellerID)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}
	if profile == nil || !profile.VisitBookingEnabled {
		return nil, fmt.Errorf("seller %s does not accept visits: %w", slot.SellerID, errs.ErrSlotUnavailable)
	}
	if !slot.IsAvailable {
		return nil, fmt.Errorf("slot %s: %w", slotID, errs.ErrSlotUnavailable)
	}
	if slot.IsExpired(s.today()) {
		return nil, fmt.Errorf("slot %s on %s: %w", slotID, utils.FormatDate(slot.Date), errs.ErrSlotExpired)
	}
	// early check only; capacity is held on approval
	if remaining := slot.RemainingCapacity(); req.NumberOfVisitors > remaining {
		return nil, fmt.Errorf("slot %s has %d places left, %d requested: %w",
			slotID, remaining, req.NumberOfVisitors, errs.ErrCapacityExceeded)
	}

	now := s.now()
	visit := &entity.VisitRequest{
		Record:             entity.NewRecord(now),
		SellerID:           slot.SellerID,
		AvailabilityID:     &slot.ID,
		RequestedDate:      slot.Date,
		RequestedTimeStart: slot.StartTime,
		RequestedTimeEnd:   slot.EndTime,
		NumberOfVisitors:   req.NumberOfVisitors,
		VisitorName:        req.VisitorName,
		VisitorPhone:       utils.StringPtr(req.VisitorPhone),
		VisitorEmail:       utils.StringPtr(req.VisitorEmail),
		Purpose:            utils.StringPtr(req.Purpose),
		SpecialRequirement: utils.StringPtr(req.SpecialRequirements),
		Message:            req.Message,
		Status:             entity.VisitStatusPending,
	}
	if !actor.IsGuest() {
		userID := actor.UserID
		visit.UserID = &userID
	}

	if err := s.repo.VisitRequest.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("submit visit request: %w", err)
	}

	s.log.Info("Visit request submitted",
		zap.String("request_id", visit.ID.String()),
		zap.String("slot_id", slotID.String()),
		zap.Int("visitors", visit.NumberOfVisitors),
		zap.Bool("guest", actor.IsGuest()),
	)
	s.notifier.Publish(ctx, notify.EventSubmitted, visit)

	resp := response.VisitRequestToResponse(visit)
	return &resp, nil
}

func (s *reservationService) DecideVisitRequest(ctx context.Context, actor entity.Actor, requestID string, req *request.DecisionRequest) (*response.VisitRequestResponse, error) {
	id, err := parseID("id", requestID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	visit, err := s.workflow.Decide(ctx, actor, id, DecisionInput{
		Decision:        Decision(req.Decision),
		Notes:           req.Notes,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.EventForStatus(visit.Status), visit)

	resp := response.VisitRequestToResponse(visit)
	return &resp, nil
}

func (s *reservationService) OverrideVisitRequest(ctx context.Context, actor entity.Actor, requestID string, req *request.OverrideRequest) (*response.VisitRequestResponse, error) {
	id, err := parseID("id", requestID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	visit, _, err := s.workflow.Override(ctx, actor, id, entity.VisitStatus(req.Status), req.Notes)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.EventOverride, visit)

	resp := response.VisitRequestToResponse(visit)
	return &resp, nil
}

func (s *reservationService) GetVisitRequest(ctx context.Context, actor entity.Actor, requestID string) (*response.VisitRequestResponse, error) {
	id, err := parseID("id", requestID)
	if err != nil {
		return nil, err
	}

	visit, err := s.repo.VisitRequest.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, ActionViewRequest, requestResource(visit)); err != nil {
		return nil, err
	}

	resp := response.VisitRequestToResponse(visit)
	return &resp, nil
}

func (s *reservationService) ListForSeller(ctx context.Context, actor entity.Actor, sellerID string, req *request.ListVisitRequestsRequest) (*response.PaginatedResponse[response.VisitRequestResponse], error) {
	id, err := parseID("seller_id", sellerID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Authorize(actor, ActionListSellerRequests, Resource{SellerID: id}); err != nil {
		return nil, err
	}

	filter, err := visitRequestFilter(req)
	if err != nil {
		return nil, err
	}
	filter.SellerID = &id

	return s.listVisitRequests(ctx, req, filter)
}

func (s *reservationService) ListForRequester(ctx context.Context, actor entity.Actor, req *request.ListVisitRequestsRequest) (*response.PaginatedResponse[response.VisitRequestResponse], error) {
	if err := s.policy.Authorize(actor, ActionListOwnRequests, Resource{}); err != nil {
		return nil, err
	}

	filter, err := visitRequestFilter(req)
	if err != nil {
		return nil, err
	}
	userID := actor.UserID
	filter.UserID = &userID

	return s.listVisitRequests(ctx, req, filter)
}

func visitRequestFilter(req *request.ListVisitRequestsRequest) (repository.VisitRequestFilter, error) {
	if err := validate(req); err != nil {
		return repository.VisitRequestFilter{}, err
	}

	filter := repository.VisitRequestFilter{
		Status: entity.VisitStatus(req.Status),
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}
	if req.SlotID != "" {
		slotID, err := parseID("slot_id", req.SlotID)
		if err != nil {
			return filter, err
		}
		filter.SlotID = &slotID
	}

	var err error
	if filter.DateFrom, err = parseOptionalDate("date_from", req.DateFrom); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseOptionalDate("date_to", req.DateTo); err != nil {
		return filter, err
	}
	return filter, nil
}

func (s *reservationService) listVisitRequests(ctx context.Context, req *request.ListVisitRequestsRequest, filter repository.VisitRequestFilter) (*response.PaginatedResponse[response.VisitRequestResponse], error) {
	var (
		visits []*entity.VisitRequest
		total  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visits, err = s.repo.VisitRequest.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.VisitRequest.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list visit requests: %w", err)
	}

	data := make([]response.VisitRequestResponse, 0, len(visits))
	for _, v := range visits {
		data = append(data, response.VisitRequestToResponse(v))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
