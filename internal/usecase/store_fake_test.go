package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/data/repository"
	"farm-visit/internal/errs"

	"github.com/google/uuid"
)

// memStore is an in-memory store. A transaction holds the single mutex for its
// whole duration, which is at least as strict as the row locks Postgres takes.
type memStore struct {
	mu       sync.Mutex
	slots    map[uuid.UUID]entity.AvailabilitySlot
	requests map[uuid.UUID]entity.VisitRequest
	profiles map[uuid.UUID]entity.FarmVisitProfile

	// failUpdateStatus, when set, is returned by the next UpdateStatus call.
	failUpdateStatus error

	// locked records the row locks taken, in order, as "slot" or "request".
	locked []string
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		slots:    make(map[uuid.UUID]entity.AvailabilitySlot),
		requests: make(map[uuid.UUID]entity.VisitRequest),
		profiles: make(map[uuid.UUID]entity.FarmVisitProfile),
	}
}

func (m *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Slot:         memSlots{m},
		Capacity:     memCapacity{m},
		VisitRequest: memRequests{m},
		FarmProfile:  memProfiles{m},
		Tx:           m,
	}
}

func (m *memStore) lock(ctx context.Context) func() {
	if ctx.Value(memTxKey{}) != nil {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	slots := make(map[uuid.UUID]entity.AvailabilitySlot, len(m.slots))
	for k, v := range m.slots {
		slots[k] = v
	}
	requests := make(map[uuid.UUID]entity.VisitRequest, len(m.requests))
	for k, v := range m.requests {
		requests[k] = v
	}

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.slots = slots
		m.requests = requests
		return err
	}
	return nil
}

func (m *memStore) recordLock(ctx context.Context, row string) {
	defer m.lock(ctx)()
	m.locked = append(m.locked, row)
}

func (m *memStore) locks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.locked
	m.locked = nil
	return out
}

func (m *memStore) slot(id uuid.UUID) entity.AvailabilitySlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id]
}

func (m *memStore) request(id uuid.UUID) entity.VisitRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[id]
}

// ---- slots ----

type memSlots struct{ m *memStore }

func (s memSlots) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	defer s.m.lock(ctx)()
	slot.CurrentBookings = 0
	s.m.slots[slot.ID] = *slot
	return nil
}

func (s memSlots) FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	defer s.m.lock(ctx)()
	slot, ok := s.m.slots[id]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
	}
	return &slot, nil
}

func (s memSlots) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	s.m.recordLock(ctx, "slot")
	return s.FindByID(ctx, id)
}

func (s memSlots) filter(f repository.SlotFilter) []entity.AvailabilitySlot {
	var out []entity.AvailabilitySlot
	for _, slot := range s.m.slots {
		if f.PublicOnly {
			p, ok := s.m.profiles[slot.SellerID]
			if !ok || !p.Discoverable() {
				continue
			}
		}
		if f.SellerID != nil && slot.SellerID != *f.SellerID {
			continue
		}
		if f.DateFrom != nil && slot.Date.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && slot.Date.After(*f.DateTo) {
			continue
		}
		if f.VisitType != "" && slot.VisitType != f.VisitType {
			continue
		}
		if f.OnlyAvailable && (!slot.IsAvailable || slot.CurrentBookings >= slot.MaxVisitors) {
			continue
		}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (s memSlots) List(ctx context.Context, f repository.SlotFilter) ([]*entity.AvailabilitySlot, error) {
	defer s.m.lock(ctx)()
	all := s.filter(f)
	all = page(all, f.Limit, f.Offset)
	out := make([]*entity.AvailabilitySlot, len(all))
	for i := range all {
		out[i] = &all[i]
	}
	return out, nil
}

func (s memSlots) Count(ctx context.Context, f repository.SlotFilter) (int64, error) {
	defer s.m.lock(ctx)()
	return int64(len(s.filter(f))), nil
}

func (s memSlots) Update(ctx context.Context, id uuid.UUID, attrs entity.SlotAttributes) (*entity.AvailabilitySlot, error) {
	defer s.m.lock(ctx)()
	slot, ok := s.m.slots[id]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
	}
	if attrs.MaxVisitors < slot.CurrentBookings {
		return nil, fmt.Errorf("slot %s: %w", id, errs.ErrCapacityExceeded)
	}
	slot.Date = attrs.Date
	slot.StartTime = attrs.StartTime
	slot.EndTime = attrs.EndTime
	slot.IsAvailable = attrs.IsAvailable
	slot.MaxVisitors = attrs.MaxVisitors
	slot.PricePerPerson = attrs.PricePerPerson
	slot.VisitType = attrs.VisitType
	slot.LocationType = attrs.LocationType
	slot.ActivityType = attrs.ActivityType
	slot.Notes = attrs.Notes
	s.m.slots[id] = slot
	return &slot, nil
}

func (s memSlots) Delete(ctx context.Context, id uuid.UUID) error {
	defer s.m.lock(ctx)()
	if _, ok := s.m.slots[id]; !ok {
		return fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
	}
	for _, req := range s.m.requests {
		if req.AvailabilityID != nil && *req.AvailabilityID == id && !req.Status.IsTerminal() {
			return fmt.Errorf("delete slot %s: %w", id, errs.ErrSlotInUse)
		}
	}
	for rid, req := range s.m.requests {
		if req.AvailabilityID != nil && *req.AvailabilityID == id {
			req.AvailabilityID = nil
			s.m.requests[rid] = req
		}
	}
	delete(s.m.slots, id)
	return nil
}

// ---- capacity ----

type memCapacity struct{ m *memStore }

func (c memCapacity) Increment(ctx context.Context, slotID uuid.UUID, n int) (int, bool, error) {
	defer c.m.lock(ctx)()
	slot, ok := c.m.slots[slotID]
	if !ok || !slot.IsAvailable || slot.CurrentBookings+n > slot.MaxVisitors {
		return 0, false, nil
	}
	slot.CurrentBookings += n
	c.m.slots[slotID] = slot
	return slot.CurrentBookings, true, nil
}

func (c memCapacity) Decrement(ctx context.Context, slotID uuid.UUID, n int) (int, bool, error) {
	defer c.m.lock(ctx)()
	slot, ok := c.m.slots[slotID]
	if !ok {
		return 0, false, nil
	}
	slot.CurrentBookings = max(slot.CurrentBookings-n, 0)
	c.m.slots[slotID] = slot
	return slot.CurrentBookings, true, nil
}

func (c memCapacity) Snapshot(ctx context.Context, slotID uuid.UUID) (*repository.CapacitySnapshot, error) {
	defer c.m.lock(ctx)()
	slot, ok := c.m.slots[slotID]
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", slotID, errs.ErrNotFound)
	}
	return &repository.CapacitySnapshot{
		IsAvailable:     slot.IsAvailable,
		MaxVisitors:     slot.MaxVisitors,
		CurrentBookings: slot.CurrentBookings,
	}, nil
}

// ---- visit requests ----

type memRequests struct{ m *memStore }

func (r memRequests) Create(ctx context.Context, req *entity.VisitRequest) error {
	defer r.m.lock(ctx)()
	r.m.requests[req.ID] = *req
	return nil
}

func (r memRequests) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	defer r.m.lock(ctx)()
	req, ok := r.m.requests[id]
	if !ok {
		return nil, fmt.Errorf("visit request %s: %w", id, errs.ErrNotFound)
	}
	return &req, nil
}

func (r memRequests) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	r.m.recordLock(ctx, "request")
	return r.FindByID(ctx, id)
}

func (r memRequests) filter(f repository.VisitRequestFilter) []entity.VisitRequest {
	var out []entity.VisitRequest
	for _, req := range r.m.requests {
		if f.SellerID != nil && req.SellerID != *f.SellerID {
			continue
		}
		if f.UserID != nil && (req.UserID == nil || *req.UserID != *f.UserID) {
			continue
		}
		if f.SlotID != nil && (req.AvailabilityID == nil || *req.AvailabilityID != *f.SlotID) {
			continue
		}
		if f.Status != "" && req.Status != f.Status {
			continue
		}
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r memRequests) List(ctx context.Context, f repository.VisitRequestFilter) ([]*entity.VisitRequest, error) {
	defer r.m.lock(ctx)()
	all := page(r.filter(f), f.Limit, f.Offset)
	out := make([]*entity.VisitRequest, len(all))
	for i := range all {
		out[i] = &all[i]
	}
	return out, nil
}

func (r memRequests) Count(ctx context.Context, f repository.VisitRequestFilter) (int64, error) {
	defer r.m.lock(ctx)()
	return int64(len(r.filter(f))), nil
}

func (r memRequests) UpdateStatus(ctx context.Context, req *entity.VisitRequest, from entity.VisitStatus) error {
	defer r.m.lock(ctx)()
	if err := r.m.failUpdateStatus; err != nil {
		r.m.failUpdateStatus = nil
		return err
	}
	stored, ok := r.m.requests[req.ID]
	if !ok || stored.Status != from {
		return fmt.Errorf("visit request %s is no longer %s: %w", req.ID, from, errs.ErrInvalidTransition)
	}
	r.m.requests[req.ID] = *req
	return nil
}

func (r memRequests) ListActiveBySlot(ctx context.Context, slotID uuid.UUID) ([]*entity.VisitRequest, error) {
	defer r.m.lock(ctx)()
	r.m.locked = append(r.m.locked, "request")
	var out []*entity.VisitRequest
	for _, req := range r.m.requests {
		if req.AvailabilityID != nil && *req.AvailabilityID == slotID && !req.Status.IsTerminal() {
			req := req
			out = append(out, &req)
		}
	}
	return out, nil
}

func (r memRequests) SumHeldVisitors(ctx context.Context, slotID uuid.UUID) (int, error) {
	defer r.m.lock(ctx)()
	total := 0
	for _, req := range r.m.requests {
		if req.AvailabilityID != nil && *req.AvailabilityID == slotID && req.Status.HoldsCapacity() {
			total += req.NumberOfVisitors
		}
	}
	return total, nil
}

// ---- profiles ----

type memProfiles struct{ m *memStore }

func (p memProfiles) FindBySellerID(ctx context.Context, sellerID uuid.UUID) (*entity.FarmVisitProfile, error) {
	defer p.m.lock(ctx)()
	profile, ok := p.m.profiles[sellerID]
	if !ok {
		return nil, fmt.Errorf("farm profile of seller %s: %w", sellerID, errs.ErrNotFound)
	}
	return &profile, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
