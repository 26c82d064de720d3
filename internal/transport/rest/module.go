package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/internal/service/moduleview"
)

// moduleService defines the minimal interface needed by ModuleHandler.
type moduleService interface {
	Create(ctx context.Context, input moduleview.CreateModuleInput) (*domain.Module, error)
	Get(ctx context.Context, moduleID uuid.UUID) (*domain.Module, error)
	ListByZone(ctx context.Context, zoneID uuid.UUID) ([]domain.Module, error)
	Update(ctx context.Context, input moduleview.UpdateModuleInput) (*domain.Module, error)
	Delete(ctx context.Context, moduleID uuid.UUID) error
	Evaluate(ctx context.Context, moduleID uuid.UUID) (*moduleview.EvaluateResult, error)
	EvaluateConfig(ctx context.Context, raw json.RawMessage) (*moduleview.EvaluateResult, error)
}

// ModuleHandler serves module REST endpoints.
type ModuleHandler struct {
	svc moduleService
	log *slog.Logger
}

// NewModuleHandler creates a ModuleHandler.
func NewModuleHandler(svc moduleService, logger *slog.Logger) *ModuleHandler {
	return &ModuleHandler{svc: svc, log: logger.With("handler", "module")}
}

type createModuleRequest struct {
	ZoneID      uuid.UUID       `json:"zoneId"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	ReferenceID *string         `json:"referenceId"`
	Config      json.RawMessage `json:"config"`
	GridX       int             `json:"gridX"`
	GridY       int             `json:"gridY"`
	GridW       int             `json:"gridW"`
	GridH       int             `json:"gridH"`
}

type updateModuleRequest struct {
	Name   *string         `json:"name"`
	Kind   *string         `json:"kind"`
	Config json.RawMessage `json:"config"`
	GridX  *int            `json:"gridX"`
	GridY  *int            `json:"gridY"`
	GridW  *int            `json:"gridW"`
	GridH  *int            `json:"gridH"`
}

type evaluateRequest struct {
	Config json.RawMessage `json:"config"`
}

type evaluateResponse struct {
	Module         *moduleResponse `json:"module,omitempty"`
	Nodes          []nodeResponse  `json:"nodes"`
	Total          int             `json:"total"`
	AppliedFilters []string        `json:"appliedFilters"`
}

func toEvaluateResponse(result *moduleview.EvaluateResult) evaluateResponse {
	resp := evaluateResponse{
		Nodes:          toNodeResponses(result.Nodes),
		Total:          result.Total,
		AppliedFilters: result.AppliedFilters,
	}
	if resp.AppliedFilters == nil {
		resp.AppliedFilters = []string{}
	}
	if result.Module != nil {
		m := toModuleResponse(result.Module)
		resp.Module = &m
	}
	return resp
}

// Create handles POST /modules.
func (h *ModuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), moduleview.CreateModuleInput{
		ZoneID:      req.ZoneID,
		Name:        req.Name,
		Kind:        req.Kind,
		ReferenceID: req.ReferenceID,
		Config:      req.Config,
		GridX:       req.GridX,
		GridY:       req.GridY,
		GridW:       req.GridW,
		GridH:       req.GridH,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toModuleResponse(created))
}

// Get handles GET /modules/{id}.
func (h *ModuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	got, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toModuleResponse(got))
}

// ListByZone handles GET /zones/{id}/modules.
func (h *ModuleHandler) ListByZone(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	modules, err := h.svc.ListByZone(r.Context(), zoneID)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	out := make([]moduleResponse, len(modules))
	for i := range modules {
		out[i] = toModuleResponse(&modules[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"modules": out})
}

// Update handles PATCH /modules/{id}.
func (h *ModuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), moduleview.UpdateModuleInput{
		ModuleID: id,
		Name:     req.Name,
		Kind:     req.Kind,
		Config:   req.Config,
		GridX:    req.GridX,
		GridY:    req.GridY,
		GridW:    req.GridW,
		GridH:    req.GridH,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toModuleResponse(updated))
}

// Delete handles DELETE /modules/{id}.
func (h *ModuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Evaluate handles GET /modules/{id}/nodes. Runs the module's saved query.
func (h *ModuleHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.Evaluate(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEvaluateResponse(result))
}

// Preview handles POST /modules/preview. Runs an ad-hoc config without
// saving a module.
func (h *ModuleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.EvaluateConfig(r.Context(), req.Config)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEvaluateResponse(result))
}
