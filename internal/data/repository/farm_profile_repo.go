package repository

import (
	"context"
	"errors"
	"fmt"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/errs"
	"farm-visit/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FarmProfileRepository reads the seller's visit settings. A seller without a
// profile row has never enabled visits.
type FarmProfileRepository interface {
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) (*entity.FarmVisitProfile, error)
}

type farmProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFarmProfileRepository(db database.PgxIface, log *zap.Logger) FarmProfileRepository {
	return &farmProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "farm_profile")),
	}
}

func (r *farmProfileRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) (*entity.FarmVisitProfile, error) {
	query := `
		SELECT seller_id, visit_booking_enabled, public_profile
		FROM farm_visit_profiles
		WHERE seller_id = $1
	`

	var profile entity.FarmVisitProfile
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, sellerID).Scan(
		&profile.SellerID,
		&profile.VisitBookingEnabled,
		&profile.PublicProfile,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("farm profile of seller %s: %w", sellerID, errs.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find farm profile",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return nil, fmt.Errorf("find farm profile of seller %s: %w", sellerID, storeError(err))
	}

	return &profile, nil
}
