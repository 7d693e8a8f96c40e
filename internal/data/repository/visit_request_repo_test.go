package repository

import (
	"context"
	"testing"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVisitRequestRepository_UpdateStatusLostRace(t *testing.T) {
	mock := newMockPool(t)
	req := &entity.VisitRequest{Record: entity.Record{ID: uuid.New()}, Status: entity.VisitStatusApproved}

	mock.ExpectQuery(`UPDATE visit_requests`).
		WithArgs(req.ID, "pending", "approved",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

	err := NewVisitRequestRepository(mock, zap.NewNop()).
		UpdateStatus(context.Background(), req, entity.VisitStatusPending)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitRequestRepository_UpdateStatusDeadlock(t *testing.T) {
	mock := newMockPool(t)
	req := &entity.VisitRequest{Record: entity.Record{ID: uuid.New()}, Status: entity.VisitStatusCancelled}

	mock.ExpectQuery(`UPDATE visit_requests`).
		WithArgs(req.ID, "approved", "cancelled",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})

	err := NewVisitRequestRepository(mock, zap.NewNop()).
		UpdateStatus(context.Background(), req, entity.VisitStatusApproved)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	require.True(t, errs.IsRetryable(err))
}

func TestVisitRequestRepository_SumHeldVisitors(t *testing.T) {
	mock := newMockPool(t)
	slotID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(number_of_visitors\), 0\)::int`).
		WithArgs(slotID, []string{"approved", "completed"}).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(6))

	total, err := NewVisitRequestRepository(mock, zap.NewNop()).SumHeldVisitors(context.Background(), slotID)
	require.NoError(t, err)
	require.Equal(t, 6, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindActor(t *testing.T) {
	token := uuid.New()

	t.Run("unknown token", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM sessions s\s+JOIN users u`).
			WithArgs(token).
			WillReturnRows(pgxmock.NewRows([]string{"id", "role"}))

		actor, err := NewSessionRepository(mock, zap.NewNop()).FindActor(context.Background(), token)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		require.True(t, actor.IsGuest())
	})

	t.Run("store down", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM sessions s`).
			WithArgs(token).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.AdminShutdown})

		_, err := NewSessionRepository(mock, zap.NewNop()).FindActor(context.Background(), token)
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
