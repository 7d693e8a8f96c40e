package repository

import (
	"context"
	"testing"

	"farm-visit/internal/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestCapacityRepository_Increment(t *testing.T) {
	slotID := uuid.New()

	tests := []struct {
		name        string
		mock        func(m pgxmock.PgxPoolIface)
		wantCount   int
		wantApplied bool
		wantErr     error
	}{
		{
			name: "applied",
			mock: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE availability_slots\s+SET current_bookings = current_bookings \+ \$2`).
					WithArgs(slotID, 3).
					WillReturnRows(pgxmock.NewRows([]string{"current_bookings"}).AddRow(7))
			},
			wantCount:   7,
			wantApplied: true,
		},
		{
			name: "guard refused",
			mock: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE availability_slots`).
					WithArgs(slotID, 3).
					WillReturnRows(pgxmock.NewRows([]string{"current_bookings"}))
			},
		},
		{
			name: "connection lost",
			mock: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`UPDATE availability_slots`).
					WithArgs(slotID, 3).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})
			},
			wantErr: errs.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.mock(mock)

			repo := NewCapacityRepository(mock, zap.NewNop())
			count, applied, err := repo.Increment(context.Background(), slotID, 3)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantCount, count)
			require.Equal(t, tt.wantApplied, applied)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCapacityRepository_Decrement(t *testing.T) {
	slotID := uuid.New()

	t.Run("floored", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SET current_bookings = GREATEST\(current_bookings - \$2, 0\)`).
			WithArgs(slotID, 4).
			WillReturnRows(pgxmock.NewRows([]string{"current_bookings"}).AddRow(0))

		count, applied, err := NewCapacityRepository(mock, zap.NewNop()).Decrement(context.Background(), slotID, 4)
		require.NoError(t, err)
		require.True(t, applied)
		require.Zero(t, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("slot gone", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`UPDATE availability_slots`).
			WithArgs(slotID, 4).
			WillReturnRows(pgxmock.NewRows([]string{"current_bookings"}))

		_, applied, err := NewCapacityRepository(mock, zap.NewNop()).Decrement(context.Background(), slotID, 4)
		require.NoError(t, err)
		require.False(t, applied)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCapacityRepository_Snapshot(t *testing.T) {
	slotID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT is_available, max_visitors, current_bookings`).
			WithArgs(slotID).
			WillReturnRows(pgxmock.NewRows([]string{"is_available", "max_visitors", "current_bookings"}).
				AddRow(true, 10, 8))

		snap, err := NewCapacityRepository(mock, zap.NewNop()).Snapshot(context.Background(), slotID)
		require.NoError(t, err)
		require.Equal(t, &CapacitySnapshot{IsAvailable: true, MaxVisitors: 10, CurrentBookings: 8}, snap)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT is_available`).
			WithArgs(slotID).
			WillReturnRows(pgxmock.NewRows([]string{"is_available", "max_visitors", "current_bookings"}))

		_, err := NewCapacityRepository(mock, zap.NewNop()).Snapshot(context.Background(), slotID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
