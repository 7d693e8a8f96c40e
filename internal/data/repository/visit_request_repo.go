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

type VisitRequestRepository interface {
	Create(ctx context.Context, req *entity.VisitRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)
	List(ctx context.Context, filter VisitRequestFilter) ([]*entity.VisitRequest, error)
	Count(ctx context.Context, filter VisitRequestFilter) (int64, error)
	// UpdateStatus writes the decision fields only if the stored status is still from.
	UpdateStatus(ctx context.Context, req *entity.VisitRequest, from entity.VisitStatus) error
	ListActiveBySlot(ctx context.Context, slotID uuid.UUID) ([]*entity.VisitRequest, error)
	SumHeldVisitors(ctx context.Context, slotID uuid.UUID) (int, error)
}

type VisitRequestFilter struct {
	SellerID *uuid.UUID
	UserID   *uuid.UUID
	SlotID   *uuid.UUID
	Status   entity.VisitStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

var visitRequestColumns = []string{
	"v.id", "v.user_id", "v.seller_id", "v.availability_id",
	"v.requested_date", "to_char(v.requested_time_start, 'HH24:MI')", "to_char(v.requested_time_end, 'HH24:MI')",
	"v.number_of_visitors", "v.visitor_name", "v.visitor_phone", "v.visitor_email",
	"v.purpose", "v.special_requirements", "v.message", "v.status",
	"v.admin_notes", "v.rejection_reason", "v.reviewed_by", "v.reviewed_at",
	"v.created_at", "v.updated_at",
}

var visitRequestSelect = "SELECT " + strings.Join(visitRequestColumns, ", ") + " FROM visit_requests v"

var heldStatuses = []string{string(entity.VisitStatusApproved), string(entity.VisitStatusCompleted)}

type visitRequestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVisitRequestRepository(db database.PgxIface, log *zap.Logger) VisitRequestRepository {
	return &visitRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "visit_request")),
	}
}

func scanVisitRequest(row pgx.Row) (*entity.VisitRequest, error) {
	var (
		req    entity.VisitRequest
		status string
	)
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.SellerID,
		&req.AvailabilityID,
		&req.RequestedDate,
		&req.RequestedTimeStart,
		&req.RequestedTimeEnd,
		&req.NumberOfVisitors,
		&req.VisitorName,
		&req.VisitorPhone,
		&req.VisitorEmail,
		&req.Purpose,
		&req.SpecialRequirement,
		&req.Message,
		&status,
		&req.AdminNotes,
		&req.RejectionReason,
		&req.ReviewedBy,
		&req.ReviewedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Status = entity.VisitStatus(status)
	return &req, nil
}

func (r *visitRequestRepository) Create(ctx context.Context, req *entity.VisitRequest) error {
	query := `
		INSERT INTO visit_requests (id, user_id, seller_id, availability_id, requested_date,
		                            requested_time_start, requested_time_end, number_of_visitors,
		                            visitor_name, visitor_phone, visitor_email, purpose,
		                            special_requirements, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		req.ID,
		req.UserID,
		req.SellerID,
		req.AvailabilityID,
		req.RequestedDate,
		req.RequestedTimeStart,
		req.RequestedTimeEnd,
		req.NumberOfVisitors,
		req.VisitorName,
		req.VisitorPhone,
		req.VisitorEmail,
		req.Purpose,
		req.SpecialRequirement,
		req.Message,
		string(req.Status),
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create visit request",
			zap.Error(err),
			zap.String("seller_id", req.SellerID.String()),
		)
		return fmt.Errorf("create visit request: %w", storeError(err))
	}

	return nil
}

func (r *visitRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	return r.findOne(ctx, visitRequestSelect+" WHERE v.id = $1", id)
}

func (r *visitRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	return r.findOne(ctx, visitRequestSelect+" WHERE v.id = $1 FOR UPDATE", id)
}

func (r *visitRequestRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.VisitRequest, error) {
	req, err := scanVisitRequest(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("visit request %s: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find visit request",
			zap.Error(err),
			zap.String("request_id", id.String()),
		)
		return nil, fmt.Errorf("find visit request %s: %w", id, storeError(err))
	}
	return req, nil
}

func applyVisitRequestFilter(b sq.SelectBuilder, f VisitRequestFilter) sq.SelectBuilder {
	if f.SellerID != nil {
		b = b.Where(sq.Eq{"v.seller_id": *f.SellerID})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"v.user_id": *f.UserID})
	}
	if f.SlotID != nil {
		b = b.Where(sq.Eq{"v.availability_id": *f.SlotID})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"v.status": string(f.Status)})
	}
	if f.DateFrom != nil {
		b = b.Where(sq.GtOrEq{"v.requested_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(sq.LtOrEq{"v.requested_date": *f.DateTo})
	}
	return b
}

func (r *visitRequestRepository) List(ctx context.Context, filter VisitRequestFilter) ([]*entity.VisitRequest, error) {
	b := applyVisitRequestFilter(qb.Select(visitRequestColumns...).From("visit_requests v"), filter).
		OrderBy("v.created_at DESC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build visit request list query: %w", err)
	}

	return r.queryMany(ctx, query, args...)
}

func (r *visitRequestRepository) Count(ctx context.Context, filter VisitRequestFilter) (int64, error) {
	query, args, err := applyVisitRequestFilter(qb.Select("COUNT(*)").From("visit_requests v"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build visit request count query: %w", err)
	}

	var count int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count visit requests", zap.Error(err))
		return 0, fmt.Errorf("count visit requests: %w", storeError(err))
	}
	return count, nil
}

func (r *visitRequestRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.VisitRequest, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query visit requests", zap.Error(err))
		return nil, fmt.Errorf("query visit requests: %w", storeError(err))
	}
	defer rows.Close()

	var requests []*entity.VisitRequest
	for rows.Next() {
		req, err := scanVisitRequest(rows)
		if err != nil {
			r.log.Error("Failed to scan visit request row", zap.Error(err))
			return nil, fmt.Errorf("scan visit request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visit request rows: %w", storeError(err))
	}

	return requests, nil
}

func (r *visitRequestRepository) UpdateStatus(ctx context.Context, req *entity.VisitRequest, from entity.VisitStatus) error {
	query := `
		UPDATE visit_requests
		SET status = $3, admin_notes = $4, rejection_reason = $5,
		    reviewed_by = $6, reviewed_at = $7, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING updated_at
	`

	err := database.Conn(ctx, r.db).QueryRow(ctx, query,
		req.ID,
		string(from),
		string(req.Status),
		req.AdminNotes,
		req.RejectionReason,
		req.ReviewedBy,
		req.ReviewedAt,
	).Scan(&req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("visit request %s is no longer %s: %w", req.ID, from, errs.ErrInvalidTransition)
	}
	if err != nil {
		r.log.Error("Failed to update visit request status",
			zap.Error(err),
			zap.String("request_id", req.ID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(req.Status)),
		)
		return fmt.Errorf("update visit request %s: %w", req.ID, storeError(err))
	}

	return nil
}

// ListActiveBySlot locks the pending and approved requests of a slot.
func (r *visitRequestRepository) ListActiveBySlot(ctx context.Context, slotID uuid.UUID) ([]*entity.VisitRequest, error) {
	query := visitRequestSelect + `
		WHERE v.availability_id = $1 AND v.status IN ('pending', 'approved')
		ORDER BY v.created_at
		FOR UPDATE`

	return r.queryMany(ctx, query, slotID)
}

// SumHeldVisitors totals number_of_visitors over requests that hold capacity.
func (r *visitRequestRepository) SumHeldVisitors(ctx context.Context, slotID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(number_of_visitors), 0)::int
		FROM visit_requests
		WHERE availability_id = $1 AND status = ANY($2)
	`

	var total int
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, slotID, heldStatuses).Scan(&total); err != nil {
		r.log.Error("Failed to sum held visitors", zap.Error(err), zap.String("slot_id", slotID.String()))
		return 0, fmt.Errorf("sum held visitors of slot %s: %w", slotID, storeError(err))
	}
	return total, nil
}
