package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/dto/request"
	"farm-visit/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Publish(_ context.Context, event notify.Event, _ *entity.VisitRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}

var fixedNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

type fixture struct {
	ctx      context.Context
	store    *memStore
	svc      *reservationService
	notifier *recordingNotifier

	seller      entity.Actor
	otherSeller entity.Actor
	buyer       entity.Actor
	otherBuyer  entity.Actor
	admin       entity.Actor
	superadmin  entity.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	notifier := &recordingNotifier{}
	svc := NewReservationService(store.repository(), notifier, zap.NewNop()).(*reservationService)

	clock := func() time.Time { return fixedNow }
	svc.now = clock
	svc.workflow.(*requestWorkflow).now = clock

	f := &fixture{
		ctx:         context.Background(),
		store:       store,
		svc:         svc,
		notifier:    notifier,
		seller:      entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller},
		otherSeller: entity.Actor{UserID: uuid.New(), Role: entity.RoleSeller},
		buyer:       entity.Actor{UserID: uuid.New(), Role: entity.RoleBuyer},
		otherBuyer:  entity.Actor{UserID: uuid.New(), Role: entity.RoleBuyer},
		admin:       entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin},
		superadmin:  entity.Actor{UserID: uuid.New(), Role: entity.RoleSuperadmin},
	}
	for _, seller := range []entity.Actor{f.seller, f.otherSeller} {
		store.profiles[seller.UserID] = entity.FarmVisitProfile{
			SellerID:            seller.UserID,
			VisitBookingEnabled: true,
			PublicProfile:       true,
		}
	}
	return f
}

func slotRequest(date string, maxVisitors int) request.SlotRequest {
	return request.SlotRequest{
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "11:00",
		MaxVisitors: maxVisitors,
		VisitType:   "farm_tour",
	}
}

func (f *fixture) createSlot(t *testing.T, owner entity.Actor, maxVisitors int) uuid.UUID {
	t.Helper()
	resp, err := f.svc.CreateSlot(f.ctx, owner, &request.CreateSlotRequest{SlotRequest: slotRequest("2026-10-25", maxVisitors)})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func (f *fixture) submit(t *testing.T, requester entity.Actor, slotID uuid.UUID, visitors int) uuid.UUID {
	t.Helper()
	resp, err := f.svc.SubmitVisitRequest(f.ctx, requester, &request.SubmitVisitRequest{
		AvailabilityID:   slotID.String(),
		NumberOfVisitors: visitors,
		VisitorName:      "Rina",
		VisitorPhone:     "+62-812-0000",
	})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func (f *fixture) decide(actor entity.Actor, requestID uuid.UUID, decision Decision) error {
	_, err := f.svc.DecideVisitRequest(f.ctx, actor, requestID.String(), &request.DecisionRequest{Decision: string(decision)})
	return err
}

func (f *fixture) bookings(slotID uuid.UUID) int {
	return f.store.slot(slotID).CurrentBookings
}

// requireLedger checks the stored counter against the held requests.
func (f *fixture) requireLedger(t *testing.T, slotID uuid.UUID, want int) {
	t.Helper()
	ledger, err := f.svc.SlotLedger(f.ctx, f.admin, slotID.String())
	require.NoError(t, err)
	require.Equal(t, want, ledger.CurrentBookings)
	require.Equal(t, want, ledger.HeldVisitors)
	require.True(t, ledger.Consistent)
	require.LessOrEqual(t, ledger.CurrentBookings, ledger.MaxVisitors)
}
