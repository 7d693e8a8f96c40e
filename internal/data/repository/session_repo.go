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

// SessionRepository resolves bearer tokens issued by the marketplace auth module.
type SessionRepository interface {
	FindActor(ctx context.Context, token uuid.UUID) (entity.Actor, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

// FindActor returns ErrUnauthenticated for unknown, revoked or expired tokens
// and for deactivated users.
func (r *sessionRepository) FindActor(ctx context.Context, token uuid.UUID) (entity.Actor, error) {
	query := `
		SELECT u.id, u.role
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
		  AND s.revoked_at IS NULL
		  AND s.expires_at > NOW()
		  AND u.is_active
	`

	var (
		actor entity.Actor
		role  string
	)
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, token).Scan(&actor.UserID, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Guest(), errs.ErrUnauthenticated
	}
	if err != nil {
		r.log.Error("Failed to resolve session", zap.Error(err))
		return entity.Guest(), fmt.Errorf("resolve session: %w", storeError(err))
	}

	actor.Role = entity.UserRole(role)
	if !actor.Role.Valid() {
		r.log.Warn("Session user has unknown role",
			zap.String("user_id", actor.UserID.String()),
			zap.String("role", role),
		)
		return entity.Guest(), errs.ErrUnauthenticated
	}

	return actor, nil
}
