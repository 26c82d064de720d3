package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/internal/service/tag"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	Create(ctx context.Context, input tag.CreateTagInput) (*domain.Tag, error)
	Get(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, input tag.UpdateTagInput) (*domain.Tag, error)
	Delete(ctx context.Context, tagID uuid.UUID) error
	Ensure(ctx context.Context, input tag.EnsureTagsInput) ([]domain.Tag, error)
	Attach(ctx context.Context, input tag.AssociationInput) error
	Detach(ctx context.Context, input tag.AssociationInput) error
}

// TagHandler serves tag REST endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type createTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type updateTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type ensureTagsRequest struct {
	Names []string `json:"names"`
}

// Create handles POST /tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), tag.CreateTagInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(created))
}

// Get handles GET /tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	got, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(got))
}

// List handles GET /tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tags": toTagResponses(tags)})
}

// Update handles PATCH /tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), tag.UpdateTagInput{
		TagID: id,
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(updated))
}

// Delete handles DELETE /tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Ensure handles POST /tags/ensure. Returns the named tags, creating the
// missing ones.
func (h *TagHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	var req ensureTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tags, err := h.svc.Ensure(r.Context(), tag.EnsureTagsInput{Names: req.Names})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tags": toTagResponses(tags)})
}

// Attach handles PUT /nodes/{id}/tags/{tagId}.
func (h *TagHandler) Attach(w http.ResponseWriter, r *http.Request) {
	nodeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(w, r, "tagId")
	if !ok {
		return
	}

	if err := h.svc.Attach(r.Context(), tag.AssociationInput{NodeID: nodeID, TagID: tagID}); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Detach handles DELETE /nodes/{id}/tags/{tagId}.
func (h *TagHandler) Detach(w http.ResponseWriter, r *http.Request) {
	nodeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(w, r, "tagId")
	if !ok {
		return
	}

	if err := h.svc.Detach(r.Context(), tag.AssociationInput{NodeID: nodeID, TagID: tagID}); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
