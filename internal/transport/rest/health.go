package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaChecker reports whether embedded migrations are still unapplied.
type schemaChecker interface {
	HasPending(ctx context.Context) (bool, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaChecker
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil, in which case
// the schema component is not reported.
func NewHealthHandler(db dbPinger, schema schemaChecker, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the database answers and the schema
// is current, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now(), Components: failing(components)})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		return components, false
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	if h.schema == nil {
		return components, true
	}
	pending, err := h.schema.HasPending(ctx)
	switch {
	case err != nil:
		components["schema"] = CompStatus{Status: "down"}
		return components, false
	case pending:
		components["schema"] = CompStatus{Status: "down", Detail: "pending migrations"}
		return components, false
	}
	components["schema"] = CompStatus{Status: "ok"}
	return components, true
}

// failing keeps only unhealthy components so readiness bodies stay small.
func failing(components map[string]CompStatus) map[string]CompStatus {
	var out map[string]CompStatus
	for name, c := range components {
		if c.Status == "ok" {
			continue
		}
		if out == nil {
			out = make(map[string]CompStatus)
		}
		out[name] = c
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
