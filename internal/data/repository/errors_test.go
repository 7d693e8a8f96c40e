package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"farm-visit/internal/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestStoreError(t *testing.T) {
	plain := errors.New("syntax error")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "serialization", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: errs.ErrStoreUnavailable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: errs.ErrStoreUnavailable},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: errs.ErrStoreUnavailable},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "availability_slots_seller_id_fkey"}, want: errs.ErrNotFound},
		{name: "capacity check", err: &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: slotCapacityConstraint}, want: errs.ErrCapacityExceeded},
		{name: "taxonomy passes through", err: fmt.Errorf("slot x: %w", errs.ErrSlotInUse), want: errs.ErrSlotInUse},
		{name: "unknown", err: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeError(tt.err)
			if tt.want == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.want)
		})
	}
}

func TestStoreError_OtherCheckViolationIsNotCapacity(t *testing.T) {
	err := storeError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "visit_requests_visitors_positive"})
	require.False(t, errors.Is(err, errs.ErrCapacityExceeded))
	require.False(t, errs.IsRetryable(err))
}
