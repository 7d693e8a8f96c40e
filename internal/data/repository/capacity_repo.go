package repository

import (
	"context"
	"errors"
	"fmt"

	"farm-visit/internal/errs"
	"farm-visit/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CapacitySnapshot is the slot state used to explain a refused reservation.
type CapacitySnapshot struct {
	IsAvailable     bool
	MaxVisitors     int
	CurrentBookings int
}

//go:generate go run github.com/golang/mock/mockgen -source=capacity_repo.go -destination=mocks/mock_capacity.go -package=mocks

// CapacityRepository is the only writer of availability_slots.current_bookings.
type CapacityRepository interface {
	// Increment adds n to current_bookings when the slot is open and has room.
	// applied is false when the condition did not hold; nothing is written then.
	Increment(ctx context.Context, slotID uuid.UUID, n int) (newCount int, applied bool, err error)
	// Decrement subtracts n, floored at zero. applied is false when the slot is gone.
	Decrement(ctx context.Context, slotID uuid.UUID, n int) (newCount int, applied bool, err error)
	Snapshot(ctx context.Context, slotID uuid.UUID) (*CapacitySnapshot, error)
}

type capacityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCapacityRepository(db database.PgxIface, log *zap.Logger) CapacityRepository {
	return &capacityRepository{
		db:  db,
		log: log.With(zap.String("repository", "capacity")),
	}
}

func (r *capacityRepository) Increment(ctx context.Context, slotID uuid.UUID, n int) (int, bool, error) {
	query := `
		UPDATE availability_slots
		SET current_bookings = current_bookings + $2, updated_at = NOW()
		WHERE id = $1
		  AND is_available
		  AND current_bookings + $2 <= max_visitors
		RETURNING current_bookings
	`

	var count int
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, slotID, n).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		r.log.Error("Failed to increment slot bookings",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
			zap.Int("visitors", n),
		)
		return 0, false, fmt.Errorf("increment bookings of slot %s: %w", slotID, storeError(err))
	}

	return count, true, nil
}

func (r *capacityRepository) Decrement(ctx context.Context, slotID uuid.UUID, n int) (int, bool, error) {
	query := `
		UPDATE availability_slots
		SET current_bookings = GREATEST(current_bookings - $2, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING current_bookings
	`

	var count int
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, slotID, n).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		r.log.Error("Failed to decrement slot bookings",
			zap.Error(err),
			zap.String("slot_id", slotID.String()),
			zap.Int("visitors", n),
		)
		return 0, false, fmt.Errorf("decrement bookings of slot %s: %w", slotID, storeError(err))
	}

	return count, true, nil
}

func (r *capacityRepository) Snapshot(ctx context.Context, slotID uuid.UUID) (*CapacitySnapshot, error) {
	query := `
		SELECT is_available, max_visitors, current_bookings
		FROM availability_slots
		WHERE id = $1
	`

	var snap CapacitySnapshot
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, slotID).Scan(
		&snap.IsAvailable,
		&snap.MaxVisitors,
		&snap.CurrentBookings,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("slot %s: %w", slotID, errs.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to read slot capacity", zap.Error(err), zap.String("slot_id", slotID.String()))
		return nil, fmt.Errorf("read capacity of slot %s: %w", slotID, storeError(err))
	}

	return &snap, nil
}
