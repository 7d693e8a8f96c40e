package repository

import (
	"context"

	"farm-visit/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Slot         SlotRepository
	Capacity     CapacityRepository
	VisitRequest VisitRequestRepository
	FarmProfile  FarmProfileRepository
	Session      SessionRepository
	Tx           Transactor
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Slot:         NewSlotRepository(db, log),
		Capacity:     NewCapacityRepository(db, log),
		VisitRequest: NewVisitRequestRepository(db, log),
		FarmProfile:  NewFarmProfileRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Tx:           NewTransactor(db),
	}
}

// Transactor runs fn in one database transaction. Repository calls made with the
// ctx passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type pgxTransactor struct {
	db database.PgxIface
}

func NewTransactor(db database.PgxIface) Transactor {
	return &pgxTransactor{db: db}
}

func (t *pgxTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return storeError(database.RunInTx(ctx, t.db, fn))
}
