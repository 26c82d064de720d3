package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/internal/service/zone"
)

// zoneService defines the minimal interface needed by ZoneHandler.
type zoneService interface {
	Create(ctx context.Context, input zone.CreateZoneInput) (*domain.Zone, error)
	Get(ctx context.Context, zoneID uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context) ([]domain.Zone, error)
	Update(ctx context.Context, input zone.UpdateZoneInput) (*domain.Zone, error)
	SetDefault(ctx context.Context, zoneID uuid.UUID) error
	Delete(ctx context.Context, zoneID uuid.UUID) error
	Reorder(ctx context.Context, input zone.ReorderZonesInput) error
}

// ZoneHandler serves zone REST endpoints.
type ZoneHandler struct {
	svc zoneService
	log *slog.Logger
}

// NewZoneHandler creates a ZoneHandler.
func NewZoneHandler(svc zoneService, logger *slog.Logger) *ZoneHandler {
	return &ZoneHandler{svc: svc, log: logger.With("handler", "zone")}
}

type createZoneRequest struct {
	Name        string  `json:"name"`
	ReferenceID *string `json:"referenceId"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	IsDefault   bool    `json:"isDefault"`
}

type updateZoneRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

type reorderZonesRequest struct {
	Items []struct {
		ID       uuid.UUID `json:"id"`
		Position int       `json:"position"`
	} `json:"items"`
}

// Create handles POST /zones.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), zone.CreateZoneInput{
		Name:        req.Name,
		ReferenceID: req.ReferenceID,
		Color:       req.Color,
		Icon:        req.Icon,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toZoneResponse(created))
}

// Get handles GET /zones/{id}.
func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	got, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toZoneResponse(got))
}

// List handles GET /zones.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	zones, err := h.svc.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	out := make([]zoneResponse, len(zones))
	for i := range zones {
		out[i] = toZoneResponse(&zones[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"zones": out})
}

// Update handles PATCH /zones/{id}.
func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), zone.UpdateZoneInput{
		ZoneID: id,
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toZoneResponse(updated))
}

// SetDefault handles POST /zones/{id}/default.
func (h *ZoneHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.SetDefault(r.Context(), id); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /zones/{id}.
func (h *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Reorder handles POST /zones/reorder.
func (h *ZoneHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderZonesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]domain.ReorderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.ReorderItem{ID: item.ID, Position: item.Position}
	}

	if err := h.svc.Reorder(r.Context(), zone.ReorderZonesInput{Items: items}); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
