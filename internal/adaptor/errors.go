package adaptor

import (
	"errors"
	"net/http"

	"farm-visit/internal/errs"
	"farm-visit/pkg/utils"

	"go.uber.org/zap"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = 2

// handleServiceError maps the error taxonomy onto HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var vErr *errs.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)

	case errors.Is(err, errs.ErrUnauthenticated):
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, errs.ErrUnauthorized):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "You are not allowed to perform this action")

	case errors.Is(err, errs.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, errs.ErrCapacityExceeded):
		utils.ResponseConflict(w, err.Error(), "capacity_exceeded")

	case errors.Is(err, errs.ErrSlotUnavailable):
		utils.ResponseConflict(w, err.Error(), "slot_unavailable")

	case errors.Is(err, errs.ErrSlotInUse):
		utils.ResponseConflict(w, err.Error(), "slot_in_use")

	case errors.Is(err, errs.ErrRequestTerminal):
		utils.ResponseConflict(w, err.Error(), "request_terminal")

	case errors.Is(err, errs.ErrInvalidTransition):
		utils.ResponseConflict(w, err.Error(), "invalid_transition")

	case errors.Is(err, errs.ErrSlotExpired):
		utils.ResponseUnprocessable(w, err.Error(), "slot_expired")

	case errors.Is(err, errs.ErrStoreUnavailable):
		log.Error(operation+" failed - store unavailable", zap.Error(err))
		utils.ResponseUnavailable(w, "Service temporarily unavailable, please retry", retryAfterSeconds)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
