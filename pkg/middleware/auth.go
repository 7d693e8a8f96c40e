package middleware

import (
	"errors"
	"net/http"
	"strings"

	"farm-visit/internal/data/entity"
	"farm-visit/internal/data/repository"
	"farm-visit/internal/errs"
	"farm-visit/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errBadTokenFormat = errors.New("invalid token format")

func bearerToken(r *http.Request) (uuid.UUID, bool, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, false, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil, true, errBadTokenFormat
	}

	token, err := uuid.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return uuid.Nil, true, errBadTokenFormat
	}
	return token, true, nil
}

// authenticate resolves the bearer token. It writes the error response itself
// and returns ok=false when the request must stop.
func authenticate(w http.ResponseWriter, r *http.Request, sessionRepo repository.SessionRepository, logger *zap.Logger, required bool) (*http.Request, bool) {
	token, present, err := bearerToken(r)
	if err != nil {
		utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
		return r, false
	}
	if !present {
		if required {
			utils.ResponseUnauthorized(w, "Missing authorization token")
			return r, false
		}
		return r, true
	}

	actor, err := sessionRepo.FindActor(r.Context(), token)
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
		utils.ResponseUnauthorized(w, "Invalid or expired session")
		return r, false
	case errors.Is(err, errs.ErrStoreUnavailable):
		logger.Error("Session store unavailable", zap.Error(err))
		utils.ResponseUnavailable(w, "Service temporarily unavailable", 1)
		return r, false
	case err != nil:
		logger.Error("Failed to validate session", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return r, false
	}

	return r.WithContext(utils.SetActorContext(r.Context(), actor)), true
}

// AuthSession requires a valid session token.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, ok := authenticate(w, r, sessionRepo, logger, true)
			if !ok {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth lets guests through; a token, when sent, must still be valid.
func OptionalAuth(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, ok := authenticate(w, r, sessionRepo, logger, false)
			if !ok {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole admits only actors with one of roles. Run after AuthSession.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := utils.GetActorFromContext(r.Context())
			if actor.IsGuest() {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role check: access denied",
				zap.String("user_id", actor.UserID.String()),
				zap.String("role", string(actor.Role)),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Insufficient role for this resource")
		})
	}
}
