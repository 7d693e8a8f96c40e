package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"farm-visit/internal/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const slotCapacityConstraint = "availability_slots_capacity"

// storeError translates driver failures into the service error taxonomy.
// Errors that already carry a taxonomy sentinel pass through unchanged.
func storeError(err error) error {
	if err == nil || isTaxonomy(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsTransactionRollback(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", errs.ErrNotFound, pgErr.ConstraintName)
		case pgErr.Code == pgerrcode.CheckViolation && pgErr.ConstraintName == slotCapacityConstraint:
			return fmt.Errorf("%w: %w", errs.ErrCapacityExceeded, err)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", errs.ErrStoreUnavailable, err)
	}

	return err
}

func isTaxonomy(err error) bool {
	var vErr *errs.ValidationError
	return errors.As(err, &vErr) ||
		errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrStoreUnavailable) ||
		errors.Is(err, errs.ErrCapacityExceeded) ||
		errors.Is(err, errs.ErrSlotUnavailable) ||
		errors.Is(err, errs.ErrSlotExpired) ||
		errors.Is(err, errs.ErrSlotInUse) ||
		errors.Is(err, errs.ErrInvalidTransition) ||
		errors.Is(err, errs.ErrRequestTerminal) ||
		errors.Is(err, errs.ErrUnauthorized) ||
		errors.Is(err, errs.ErrUnauthenticated)
}
