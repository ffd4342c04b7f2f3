package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/plancatalog-backend/internal/auth"
	"github.com/heartmarshall/plancatalog-backend/internal/config"
	"github.com/heartmarshall/plancatalog-backend/internal/metrics"
	"github.com/heartmarshall/plancatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/plancatalog-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

// RouterDeps groups what NewRouter needs.
type RouterDeps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Plans   *rest.PlanHandler
	Health  *rest.HealthHandler
	Tokens  tokenValidator
	Limiter *middleware.RateLimiter
}

// NewRouter registers every route and wraps the mux in the global middleware.
//
// Reads of the public feed are anonymous. Every mutation and every admin read
// goes through RequireAdmin; mutations are also rate limited per caller.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	adminRead := middleware.RequireAdmin()
	mutation := middleware.Chain(
		middleware.RequireAdmin(),
		d.Limiter.Limit(d.Config.Server.MutationRateLimit),
	)

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Config.Metrics.Enabled {
		mux.Handle("GET "+d.Config.Metrics.Path, metrics.Handler())
	}

	mux.HandleFunc("GET /api/v1/plans", d.Plans.List)
	mux.Handle("GET /api/v1/plans/{id}", adminRead(http.HandlerFunc(d.Plans.Get)))
	mux.Handle("GET /api/v1/plans/{id}/history", adminRead(http.HandlerFunc(d.Plans.History)))

	mux.Handle("POST /api/v1/plans", mutation(http.HandlerFunc(d.Plans.Create)))
	mux.Handle("PATCH /api/v1/plans/{id}", mutation(http.HandlerFunc(d.Plans.Update)))
	mux.Handle("DELETE /api/v1/plans/{id}", mutation(http.HandlerFunc(d.Plans.Delete)))
	mux.Handle("PUT /api/v1/plans/order", mutation(http.HandlerFunc(d.Plans.Reorder)))
	mux.Handle("POST /api/v1/plans/{id}/rollback", mutation(http.HandlerFunc(d.Plans.Rollback)))

	global := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.Config.CORS),
		metrics.Middleware(mux),
		middleware.Auth(d.Tokens),
	)
	return global(mux)
}
