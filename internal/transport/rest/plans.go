package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
	"github.com/heartmarshall/plancatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/plancatalog-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// catalogService defines the catalog operations exposed over HTTP.
type catalogService interface {
	CreatePlan(ctx context.Context, input catalog.CreatePlanInput, actor domain.Actor) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, input catalog.UpdatePlanInput, actor domain.Actor) (*domain.Plan, error)
	SoftDeletePlan(ctx context.Context, id uuid.UUID, actor domain.Actor) error
	ReorderPlans(ctx context.Context, ids []uuid.UUID, actor domain.Actor) error
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (*domain.Plan, error)
	ListPlans(ctx context.Context, filter domain.PlanFilter) ([]*domain.Plan, error)
	GetHistory(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error)
	RollbackToEntry(ctx context.Context, planID, entryID uuid.UUID, actor domain.Actor) (*domain.Plan, error)
}

// PlanHandler serves the plan catalog REST endpoints.
type PlanHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc catalogService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plans")}
}

// ---------------------------------------------------------------------------
// Request / response types
// ---------------------------------------------------------------------------

type createPlanRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
	IsPublic    *bool    `json:"isPublic"`
	IsPopular   bool     `json:"isPopular"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	MaxUsers    *int     `json:"maxUsers"`
	MaxProjects *int     `json:"maxProjects"`
}

type updatePlanRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Currency        *string  `json:"currency"`
	Period          *string  `json:"period"`
	Features        []string `json:"features"`
	IsActive        *bool    `json:"isActive"`
	IsPublic        *bool    `json:"isPublic"`
	IsPopular       *bool    `json:"isPopular"`
	Icon            *string  `json:"icon"`
	Color           *string  `json:"color"`
	MaxUsers        *int     `json:"maxUsers"`
	MaxProjects     *int     `json:"maxProjects"`
	ClearLimits     []string `json:"clearLimits"` // "maxUsers", "maxProjects"
	ExpectedVersion *int     `json:"expectedVersion"`
}

type reorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type rollbackRequest struct {
	AuditEntryID uuid.UUID `json:"auditEntryId"`
}

type actorResponse struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

type planResponse struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	Period      string        `json:"period"`
	Features    []string      `json:"features"`
	IsActive    bool          `json:"isActive"`
	IsPublic    bool          `json:"isPublic"`
	IsPopular   bool          `json:"isPopular"`
	Order       int           `json:"order"`
	Icon        string        `json:"icon,omitempty"`
	Color       string        `json:"color,omitempty"`
	MaxUsers    *int          `json:"maxUsers,omitempty"`
	MaxProjects *int          `json:"maxProjects,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	CreatedBy   actorResponse `json:"createdBy"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	UpdatedBy   actorResponse `json:"updatedBy"`
	Version     int           `json:"version"`
	Warning     string        `json:"warning,omitempty"`
}

type auditEntryResponse struct {
	ID           string               `json:"id"`
	EntityID     string               `json:"entityId"`
	Action       string               `json:"action"`
	PerformedBy  actorResponse        `json:"performedBy"`
	Timestamp    time.Time            `json:"timestamp"`
	PreviousData *domain.PlanSnapshot `json:"previousData,omitempty"`
	NewData      *domain.PlanSnapshot `json:"newData,omitempty"`
	Details      string               `json:"details,omitempty"`
	CanRollback  bool                 `json:"canRollback"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// List handles GET /api/v1/plans. ?public=true returns the public feed to
// anyone; the full catalog requires an admin. ?slug= looks up a single plan.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("slug") {
		h.getBySlug(w, r, r.URL.Query().Get("slug"))
		return
	}

	public, err := parseBoolQuery(r, "public")
	if err != nil {
		writeError(w, http.StatusBadRequest, "public must be a boolean")
		return
	}
	if !public && !h.authorize(w, r) {
		return
	}

	plans, err := h.svc.ListPlans(r.Context(), domain.PlanFilter{OnlyPublic: public})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]planResponse, len(plans))
	for i, p := range plans {
		resp[i] = toPlanResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/plans/{id}.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	plan, err := h.svc.GetPlan(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// getBySlug serves GET /api/v1/plans?slug=. Non-admin callers only see
// plans that are active and public.
func (h *PlanHandler) getBySlug(w http.ResponseWriter, r *http.Request, slug string) {
	plan, err := h.svc.GetPlanBySlug(r.Context(), slug)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !ctxutil.IsAdminCtx(r.Context()) && !(plan.IsActive && plan.IsPublic) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// History handles GET /api/v1/plans/{id}/history?limit=N. The catalog-wide
// reorder history is served for the nil UUID.
func (h *PlanHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.svc.GetHistory(r.Context(), id, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]auditEntryResponse, len(entries))
	for i := range entries {
		resp[i] = toAuditEntryResponse(entries[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Create handles POST /api/v1/plans.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	plan, err := h.svc.CreatePlan(r.Context(), catalog.CreatePlanInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Period:      domain.PlanPeriod(req.Period),
		Features:    req.Features,
		IsActive:    boolOr(req.IsActive, true),
		IsPublic:    boolOr(req.IsPublic, false),
		IsPopular:   req.IsPopular,
		Icon:        req.Icon,
		Color:       req.Color,
		MaxUsers:    req.MaxUsers,
		MaxProjects: req.MaxProjects,
	}, actorFromCtx(r.Context()))
	h.writePlanResult(w, r, http.StatusCreated, plan, err)
}

// Update handles PATCH /api/v1/plans/{id}.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updatePlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := catalog.UpdatePlanInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Currency:        req.Currency,
		Features:        req.Features,
		IsActive:        req.IsActive,
		IsPublic:        req.IsPublic,
		IsPopular:       req.IsPopular,
		Icon:            req.Icon,
		Color:           req.Color,
		MaxUsers:        req.MaxUsers,
		MaxProjects:     req.MaxProjects,
		ExpectedVersion: req.ExpectedVersion,
	}
	if req.Period != nil {
		period := domain.PlanPeriod(*req.Period)
		input.Period = &period
	}
	for _, limit := range req.ClearLimits {
		switch limit {
		case "maxUsers":
			input.ClearMaxUsers = true
		case "maxProjects":
			input.ClearMaxProjects = true
		default:
			writeValidation(w, domain.NewValidationError("clearLimits", "must only name maxUsers or maxProjects"))
			return
		}
	}

	plan, err := h.svc.UpdatePlan(r.Context(), id, input, actorFromCtx(r.Context()))
	h.writePlanResult(w, r, http.StatusOK, plan, err)
}

// Delete handles DELETE /api/v1/plans/{id} (soft delete).
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	err := h.svc.SoftDeletePlan(r.Context(), id, actorFromCtx(r.Context()))
	h.writeEmptyResult(w, r, err)
}

// Reorder handles PUT /api/v1/plans/order.
func (h *PlanHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.svc.ReorderPlans(r.Context(), req.IDs, actorFromCtx(r.Context()))
	h.writeEmptyResult(w, r, err)
}

// Rollback handles POST /api/v1/plans/{id}/rollback.
func (h *PlanHandler) Rollback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req rollbackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AuditEntryID == uuid.Nil {
		writeValidation(w, domain.NewValidationError("auditEntryId", "required"))
		return
	}

	plan, err := h.svc.RollbackToEntry(r.Context(), id, req.AuditEntryID, actorFromCtx(r.Context()))
	h.writePlanResult(w, r, http.StatusOK, plan, err)
}

// ---------------------------------------------------------------------------
// Result and error writing
// ---------------------------------------------------------------------------

// writePlanResult writes a mutated plan. A committed mutation whose audit
// entry is missing is still a success, reported with a warning.
func (h *PlanHandler) writePlanResult(w http.ResponseWriter, r *http.Request, status int, plan *domain.Plan, err error) {
	var warn *domain.AuditWarning
	if err != nil && !errors.As(err, &warn) {
		h.handleError(w, r, err)
		return
	}
	resp := toPlanResponse(plan)
	if warn != nil {
		h.log.WarnContext(r.Context(), "mutation committed without audit entry", slog.String("error", warn.Error()))
		resp.Warning = warn.Error()
	}
	writeJSON(w, status, resp)
}

func (h *PlanHandler) writeEmptyResult(w http.ResponseWriter, r *http.Request, err error) {
	var warn *domain.AuditWarning
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.As(err, &warn):
		h.log.WarnContext(r.Context(), "mutation committed without audit entry", slog.String("error", warn.Error()))
		writeJSON(w, http.StatusOK, map[string]string{"warning": warn.Error()})
	default:
		h.handleError(w, r, err)
	}
}

func (h *PlanHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var valErr *domain.ValidationError
	var slugErr *domain.DuplicateSlugError

	switch {
	case errors.As(err, &valErr):
		writeValidation(w, valErr)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &slugErr):
		writeError(w, http.StatusConflict, slugErr.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "plan was modified concurrently, reload and retry")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrRollbackNotAvailable):
		writeError(w, http.StatusUnprocessableEntity, "audit entry has no previous state to restore")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// authorize enforces an admin caller for handlers that are only partly
// protected by routing.
func (h *PlanHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidation(w http.ResponseWriter, err *domain.ValidationError) {
	fields := make([]fieldErrorResponse, len(err.Errors))
	for i, fe := range err.Errors {
		fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation error", Fields: fields})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseBoolQuery(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func actorFromCtx(ctx context.Context) domain.Actor {
	id, _ := ctxutil.UserIDFromCtx(ctx)
	return domain.Actor{ID: id, Email: ctxutil.EmailFromCtx(ctx)}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func toActorResponse(a domain.Actor) actorResponse {
	return actorResponse{ID: a.ID.String(), Email: a.Email}
}

func toPlanResponse(p *domain.Plan) planResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return planResponse{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Period:      p.Period.String(),
		Features:    features,
		IsActive:    p.IsActive,
		IsPublic:    p.IsPublic,
		IsPopular:   p.IsPopular,
		Order:       p.Order,
		Icon:        p.Icon,
		Color:       p.Color,
		MaxUsers:    p.MaxUsers,
		MaxProjects: p.MaxProjects,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   toActorResponse(p.CreatedBy),
		UpdatedAt:   p.UpdatedAt,
		UpdatedBy:   toActorResponse(p.UpdatedBy),
		Version:     p.Version,
	}
}

func toAuditEntryResponse(e domain.AuditEntry) auditEntryResponse {
	return auditEntryResponse{
		ID:           e.ID.String(),
		EntityID:     e.EntityID.String(),
		Action:       e.Action.String(),
		PerformedBy:  toActorResponse(e.PerformedBy),
		Timestamp:    e.Timestamp,
		PreviousData: e.PreviousData,
		NewData:      e.NewData,
		Details:      e.Details,
		CanRollback:  e.CanRollback(),
	}
}
