package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/plancatalog-backend/internal/auth"
	"github.com/heartmarshall/plancatalog-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Auth validates a Bearer token when one is present and stores the caller's
// identity in the context. Requests without a token continue anonymously;
// RequireAdmin decides whether that is acceptable.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), claims.UserID)
			ctx = ctxutil.WithEmail(ctx, claims.Email)
			ctx = ctxutil.WithRole(ctx, claims.Role)
			recordActor(ctx, claims.UserID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// actorHolder lets Logger learn who made the request once Auth has run.
type actorHolder struct {
	id string
}

type actorHolderKey struct{}

func withActorHolder(ctx context.Context, h *actorHolder) context.Context {
	return context.WithValue(ctx, actorHolderKey{}, h)
}

func recordActor(ctx context.Context, id string) {
	if h, ok := ctx.Value(actorHolderKey{}).(*actorHolder); ok {
		h.id = id
	}
}
