package usecase

import (
	"context"
	"fmt"

	"farm-visit/internal/data/repository"
	"farm-visit/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CapacityGuard is the only path that changes a slot's current_bookings.
// Callers run it inside the transaction that writes the request status.
type CapacityGuard interface {
	Reserve(ctx context.Context, slotID uuid.UUID, visitors int) error
	Release(ctx context.Context, slotID uuid.UUID, visitors int) error
}

type capacityGuard struct {
	store repository.CapacityRepository
	log   *zap.Logger
}

func NewCapacityGuard(store repository.CapacityRepository, log *zap.Logger) CapacityGuard {
	return &capacityGuard{
		store: store,
		log:   log.With(zap.String("service", "capacity_guard")),
	}
}

func (g *capacityGuard) Reserve(ctx context.Context, slotID uuid.UUID, visitors int) error {
	if visitors < 1 {
		return errs.Invalid("number_of_visitors", "Minimum value is 1")
	}

	count, applied, err := g.store.Increment(ctx, slotID, visitors)
	if err != nil {
		return err
	}
	if applied {
		g.log.Debug("Capacity reserved",
			zap.String("slot_id", slotID.String()),
			zap.Int("visitors", visitors),
			zap.Int("current_bookings", count),
		)
		return nil
	}

	// nothing was written; find out why
	snap, err := g.store.Snapshot(ctx, slotID)
	if err != nil {
		return err
	}
	if !snap.IsAvailable {
		return fmt.Errorf("slot %s: %w", slotID, errs.ErrSlotUnavailable)
	}
	return fmt.Errorf("slot %s has %d of %d places left, %d requested: %w",
		slotID, max(snap.MaxVisitors-snap.CurrentBookings, 0), snap.MaxVisitors, visitors, errs.ErrCapacityExceeded)
}

// Release gives back capacity. A slot that no longer exists has nothing to release.
func (g *capacityGuard) Release(ctx context.Context, slotID uuid.UUID, visitors int) error {
	if visitors < 1 {
		return errs.Invalid("number_of_visitors", "Minimum value is 1")
	}

	count, applied, err := g.store.Decrement(ctx, slotID, visitors)
	if err != nil {
		return err
	}
	if !applied {
		g.log.Warn("Release on missing slot", zap.String("slot_id", slotID.String()))
		return nil
	}

	g.log.Debug("Capacity released",
		zap.String("slot_id", slotID.String()),
		zap.Int("visitors", visitors),
		zap.Int("current_bookings", count),
	)
	return nil
}
