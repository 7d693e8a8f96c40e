package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/errs"
	"farm-visit/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SlotRepository stores availability slots. It never writes current_bookings;
// that column belongs to CapacityRepository.
type SlotRepository interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error)
	List(ctx context.Context, filter SlotFilter) ([]*entity.AvailabilitySlot, error)
	Count(ctx context.Context, filter SlotFilter) (int64, error)
	Update(ctx context.Context, id uuid.UUID, attrs entity.SlotAttributes) (*entity.AvailabilitySlot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SlotFilter struct {
	SellerID      *uuid.UUID
	DateFrom      *time.Time
	DateTo        *time.Time
	VisitType     string
	OnlyAvailable bool
	// PublicOnly restricts to sellers whose farm profile is public with booking enabled.
	PublicOnly bool
	Limit      int
	Offset     int
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var slotColumns = []string{
	"s.id", "s.seller_id", "s.date",
	"to_char(s.start_time, 'HH24:MI')", "to_char(s.end_time, 'HH24:MI')",
	"s.is_available", "s.max_visitors", "s.current_bookings", "s.price_per_person::float8",
	"s.visit_type", "s.location_type", "s.activity_type", "s.notes",
	"s.created_at", "s.updated_at",
}

var slotSelect = "SELECT " + strings.Join(slotColumns, ", ") + " FROM availability_slots s"

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

func scanSlot(row pgx.Row) (*entity.AvailabilitySlot, error) {
	var slot entity.AvailabilitySlot
	err := row.Scan(
		&slot.ID,
		&slot.SellerID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsAvailable,
		&slot.MaxVisitors,
		&slot.CurrentBookings,
		&slot.PricePerPerson,
		&slot.VisitType,
		&slot.LocationType,
		&slot.ActivityType,
		&slot.Notes,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (id, seller_id, date, start_time, end_time, is_available,
		                                max_visitors, current_bookings, price_per_person,
		                                visit_type, location_type, activity_type, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, 0, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		slot.ID,
		slot.SellerID,
		slot.Date,
		slot.StartTime,
		slot.EndTime,
		slot.IsAvailable,
		slot.MaxVisitors,
		slot.PricePerPerson,
		slot.VisitType,
		slot.LocationType,
		slot.ActivityType,
		slot.Notes,
		slot.CreatedAt,
		slot.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("seller_id", slot.SellerID.String()),
			zap.Time("date", slot.Date),
		)
		return fmt.Errorf("create slot for seller %s: %w", slot.SellerID, storeError(err))
	}

	slot.CurrentBookings = 0
	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	return r.findOne(ctx, slotSelect+" WHERE s.id = $1", id)
}

// FindByIDForUpdate locks the slot row until the surrounding transaction ends.
func (r *slotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	return r.findOne(ctx, slotSelect+" WHERE s.id = $1 FOR UPDATE", id)
}

func (r *slotRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	slot, err := scanSlot(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id, storeError(err))
	}
	return slot, nil
}

func applySlotFilter(b sq.SelectBuilder, f SlotFilter) sq.SelectBuilder {
	if f.PublicOnly {
		b = b.Join("farm_visit_profiles p ON p.seller_id = s.seller_id").
			Where(sq.Eq{"p.visit_booking_enabled": true, "p.public_profile": true})
	}
	if f.SellerID != nil {
		b = b.Where(sq.Eq{"s.seller_id": *f.SellerID})
	}
	if f.DateFrom != nil {
		b = b.Where(sq.GtOrEq{"s.date": *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(sq.LtOrEq{"s.date": *f.DateTo})
	}
	if f.VisitType != "" {
		b = b.Where(sq.Eq{"s.visit_type": f.VisitType})
	}
	if f.OnlyAvailable {
		b = b.Where(sq.Eq{"s.is_available": true}).Where("s.current_bookings < s.max_visitors")
	}
	return b
}

func (r *slotRepository) List(ctx context.Context, filter SlotFilter) ([]*entity.AvailabilitySlot, error) {
	b := applySlotFilter(qb.Select(slotColumns...).From("availability_slots s"), filter).
		OrderBy("s.date", "s.start_time")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slot list query: %w", err)
	}

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list slots", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("list slots: %w", storeError(err))
	}
	defer rows.Close()

	var slots []*entity.AvailabilitySlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slot rows: %w", storeError(err))
	}

	return slots, nil
}

func (r *slotRepository) Count(ctx context.Context, filter SlotFilter) (int64, error) {
	query, args, err := applySlotFilter(qb.Select("COUNT(*)").From("availability_slots s"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build slot count query: %w", err)
	}

	var count int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count slots", zap.Error(err))
		return 0, fmt.Errorf("count slots: %w", storeError(err))
	}
	return count, nil
}

// Update writes the seller-editable fields. Shrinking max_visitors below the
// capacity already held fails with ErrCapacityExceeded.
func (r *slotRepository) Update(ctx context.Context, id uuid.UUID, attrs entity.SlotAttributes) (*entity.AvailabilitySlot, error) {
	query := `
		UPDATE availability_slots s
		SET date = $2, start_time = $3::time, end_time = $4::time, is_available = $5,
		    max_visitors = $6, price_per_person = $7, visit_type = $8, location_type = $9,
		    activity_type = $10, notes = $11, updated_at = NOW()
		WHERE s.id = $1 AND s.current_bookings <= $6
		RETURNING ` + strings.Join(slotColumns, ", ")

	conn := database.Conn(ctx, r.db)
	slot, err := scanSlot(conn.QueryRow(ctx, query,
		id,
		attrs.Date,
		attrs.StartTime,
		attrs.EndTime,
		attrs.IsAvailable,
		attrs.MaxVisitors,
		attrs.PricePerPerson,
		attrs.VisitType,
		attrs.LocationType,
		attrs.ActivityType,
		attrs.Notes,
	))
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.log.Error("Failed to update slot", zap.Error(err), zap.String("slot_id", id.String()))
		return nil, fmt.Errorf("update slot %s: %w", id, storeError(err))
	}

	exists, err := r.exists(ctx, conn, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
	}
	return nil, fmt.Errorf("max_visitors %d below held bookings of slot %s: %w",
		attrs.MaxVisitors, id, errs.ErrCapacityExceeded)
}

// Delete removes a slot that no pending or approved request references.
// Terminal requests keep their snapshot; their availability_id becomes NULL.
func (r *slotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM availability_slots s
		WHERE s.id = $1
		  AND NOT EXISTS (
		      SELECT 1 FROM visit_requests v
		      WHERE v.availability_id = s.id AND v.status IN ('pending', 'approved')
		  )
	`

	conn := database.Conn(ctx, r.db)
	result, err := conn.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete slot", zap.Error(err), zap.String("slot_id", id.String()))
		return fmt.Errorf("delete slot %s: %w", id, storeError(err))
	}

	if result.RowsAffected() == 0 {
		exists, err := r.exists(ctx, conn, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("slot %s: %w", id, errs.ErrNotFound)
		}
		return fmt.Errorf("delete slot %s: %w", id, errs.ErrSlotInUse)
	}

	r.log.Info("Slot deleted", zap.String("slot_id", id.String()))
	return nil
}

func (r *slotRepository) exists(ctx context.Context, conn database.Querier, id uuid.UUID) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM availability_slots WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot %s: %w", id, storeError(err))
	}
	return exists, nil
}
