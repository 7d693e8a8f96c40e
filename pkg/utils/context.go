package utils

import (
	"context"

	"farm-visit/internal/data/entity"
)

type contextKey string

const ActorKey contextKey = "actor"

// GetActorFromContext returns the authenticated actor, or a guest when none was set.
func GetActorFromContext(ctx context.Context) entity.Actor {
	actor, ok := ctx.Value(ActorKey).(entity.Actor)
	if !ok {
		return entity.Guest()
	}
	return actor
}

func SetActorContext(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}
