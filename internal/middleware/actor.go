package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/google/uuid"
)

const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"
)

type actorKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

// Actor resolves the caller from the identity headers set by the gateway.
// A missing or malformed user id is rejected with 401, an unknown role with 403.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(strings.TrimSpace(r.Header.Get(UserIDHeader)))
		if err != nil {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := entities.RoleBuyer
		if v := strings.TrimSpace(r.Header.Get(UserRoleHeader)); v != "" {
			role = entities.Role(strings.ToLower(v))
		}
		if role != entities.RoleBuyer && role != entities.RoleAdmin {
			utils.WriteError(w, "unknown role", http.StatusForbidden)
			return
		}

		ctx := WithActor(r.Context(), entities.Actor{ID: id, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
