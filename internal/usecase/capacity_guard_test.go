package usecase

import (
	"context"
	"errors"
	"testing"

	"farm-visit/internal/data/repository"
	repo_mocks "farm-visit/internal/data/repository/mocks"
	"farm-visit/internal/errs"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCapacityGuard_Reserve(t *testing.T) {
	slotID := uuid.New()
	ctx := context.Background()

	type mockBehavior func(r *repo_mocks.MockCapacityRepository)

	tests := []struct {
		name         string
		visitors     int
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:     "ok",
			visitors: 2,
			mockBehavior: func(r *repo_mocks.MockCapacityRepository) {
				r.EXPECT().Increment(ctx, slotID, 2).Return(5, true, nil)
			},
		},
		{
			name:     "capacity exceeded",
			visitors: 3,
			mockBehavior: func(r *repo_mocks.MockCapacityRepository) {
				r.EXPECT().Increment(ctx, slotID, 3).Return(0, false, nil)
				r.EXPECT().Snapshot(ctx, slotID).Return(&repository.CapacitySnapshot{
					IsAvailable:     true,
					MaxVisitors:     5,
					CurrentBookings: 3,
				}, nil)
			},
			wantErr: errs.ErrCapacityExceeded,
		},
		{
			name:     "slot closed",
			visitors: 1,
			mockBehavior: func(r *repo_mocks.MockCapacityRepository) {
				r.EXPECT().Increment(ctx, slotID, 1).Return(0, false, nil)
				r.EXPECT().Snapshot(ctx, slotID).Return(&repository.CapacitySnapshot{MaxVisitors: 5}, nil)
			},
			wantErr: errs.ErrSlotUnavailable,
		},
		{
			name:     "slot missing",
			visitors: 1,
			mockBehavior: func(r *repo_mocks.MockCapacityRepository) {
				r.EXPECT().Increment(ctx, slotID, 1).Return(0, false, nil)
				r.EXPECT().Snapshot(ctx, slotID).Return(nil, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "store down",
			visitors: 1,
			mockBehavior: func(r *repo_mocks.MockCapacityRepository) {
				r.EXPECT().Increment(ctx, slotID, 1).Return(0, false, errs.ErrStoreUnavailable)
			},
			wantErr: errs.ErrStoreUnavailable,
		},
		{
			name:         "zero visitors",
			visitors:     0,
			mockBehavior: func(r *repo_mocks.MockCapacityRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			store := repo_mocks.NewMockCapacityRepository(c)
			tt.mockBehavior(store)

			err := NewCapacityGuard(store, zap.NewNop()).Reserve(ctx, slotID, tt.visitors)

			switch {
			case tt.visitors < 1:
				var vErr *errs.ValidationError
				require.True(t, errors.As(err, &vErr))
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestCapacityGuard_Release(t *testing.T) {
	slotID := uuid.New()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		c := gomock.NewController(t)
		store := repo_mocks.NewMockCapacityRepository(c)
		store.EXPECT().Decrement(ctx, slotID, 2).Return(0, true, nil)

		require.NoError(t, NewCapacityGuard(store, zap.NewNop()).Release(ctx, slotID, 2))
	})

	t.Run("slot gone", func(t *testing.T) {
		c := gomock.NewController(t)
		store := repo_mocks.NewMockCapacityRepository(c)
		store.EXPECT().Decrement(ctx, slotID, 2).Return(0, false, nil)

		require.NoError(t, NewCapacityGuard(store, zap.NewNop()).Release(ctx, slotID, 2))
	})

	t.Run("store error", func(t *testing.T) {
		c := gomock.NewController(t)
		store := repo_mocks.NewMockCapacityRepository(c)
		store.EXPECT().Decrement(ctx, slotID, 2).Return(0, false, errs.ErrStoreUnavailable)

		err := NewCapacityGuard(store, zap.NewNop()).Release(ctx, slotID, 2)
		require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
