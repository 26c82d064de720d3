package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/internal/service/node"
)

// nodeService defines the minimal interface needed by NodeHandler.
type nodeService interface {
	Create(ctx context.Context, input node.CreateNodeInput) (*domain.Node, error)
	Get(ctx context.Context, input node.GetNodeInput) (*domain.Node, error)
	List(ctx context.Context, input node.ListNodesInput) (*node.NodePage, error)
	Search(ctx context.Context, input node.SearchNodesInput) ([]domain.Node, error)
	Update(ctx context.Context, input node.UpdateNodeInput) (*domain.Node, error)
	Delete(ctx context.Context, input node.DeleteNodeInput) error
	SoftDelete(ctx context.Context, input node.DeleteNodeInput) (*domain.Node, error)
	Restore(ctx context.Context, input node.DeleteNodeInput) (*domain.Node, error)
	Children(ctx context.Context, input node.GetNodeInput) ([]domain.Node, error)
	Descendants(ctx context.Context, input node.GetNodeInput) ([]domain.Node, error)
	Move(ctx context.Context, input node.MoveNodeInput) (*domain.Node, error)
	Reorder(ctx context.Context, input node.ReorderNodeInput) (*domain.Node, error)
	SetTags(ctx context.Context, input node.SetNodeTagsInput) (*domain.Node, error)
	ListReferences(ctx context.Context, input node.GetNodeInput) ([]domain.Node, error)
}

// NodeHandler serves node REST endpoints.
type NodeHandler struct {
	svc nodeService
	log *slog.Logger
}

// NewNodeHandler creates a NodeHandler.
func NewNodeHandler(svc nodeService, logger *slog.Logger) *NodeHandler {
	return &NodeHandler{svc: svc, log: logger.With("handler", "node")}
}

type createNodeRequest struct {
	ParentID    *uuid.UUID     `json:"parentId"`
	Name        string         `json:"name"`
	Kind        string         `json:"kind"`
	Color       *string        `json:"color"`
	ReferenceID *string        `json:"referenceId"`
	Content     map[string]any `json:"content"`
	Metadata    map[string]any `json:"metadata"`
	CanvasX     *int           `json:"canvasX"`
	CanvasY     *int           `json:"canvasY"`
	Tags        []string       `json:"tags"`
}

type updateNodeRequest struct {
	ExpectedVersion int            `json:"expectedVersion"`
	Name            *string        `json:"name"`
	Color           *string        `json:"color"`
	Content         map[string]any `json:"content"`
	Metadata        map[string]any `json:"metadata"`
	CanvasX         *int           `json:"canvasX"`
	CanvasY         *int           `json:"canvasY"`
	Tags            *[]string      `json:"tags"`
}

type moveNodeRequest struct {
	ParentID *uuid.UUID `json:"parentId"`
	Position *int       `json:"position"`
}

type reorderNodeRequest struct {
	Position int `json:"position"`
}

type setTagsRequest struct {
	Tags []string `json:"tags"`
}

type nodePageResponse struct {
	Nodes      []nodeResponse `json:"nodes"`
	NextCursor *string        `json:"nextCursor,omitempty"`
	HasMore    bool           `json:"hasMore"`
}

// Create handles POST /nodes.
func (h *NodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), node.CreateNodeInput{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Kind:        req.Kind,
		Color:       req.Color,
		ReferenceID: req.ReferenceID,
		Content:     req.Content,
		Metadata:    req.Metadata,
		CanvasX:     req.CanvasX,
		CanvasY:     req.CanvasY,
		Tags:        req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNodeResponse(created))
}

// Get handles GET /nodes/{id}.
func (h *NodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	got, err := h.svc.Get(r.Context(), node.GetNodeInput{
		NodeID:         id,
		IncludeDeleted: r.URL.Query().Get("includeDeleted") == "true",
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(got))
}

// List handles GET /nodes.
func (h *NodeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := node.ListNodesInput{
		IncludeDeleted: q.Get("includeDeleted") == "true",
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}
	if raw := q.Get("cursor"); raw != "" {
		cursor, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cursor")
			return
		}
		input.Cursor = &cursor
	}

	page, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	resp := nodePageResponse{
		Nodes:   toNodeResponses(page.Nodes),
		HasMore: page.HasMore,
	}
	if page.NextCursor != nil {
		s := page.NextCursor.String()
		resp.NextCursor = &s
	}
	writeJSON(w, http.StatusOK, resp)
}

// Search handles GET /nodes/search.
func (h *NodeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := node.SearchNodesInput{
		Query:          q.Get("q"),
		IncludeDeleted: q.Get("includeDeleted") == "true",
	}
	if kind := q.Get("kind"); kind != "" {
		input.Kind = &kind
	}

	nodes, err := h.svc.Search(r.Context(), input)
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"nodes": toNodeResponses(nodes)})
}

// Update handles PATCH /nodes/{id}.
func (h *NodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), node.UpdateNodeInput{
		NodeID:          id,
		ExpectedVersion: req.ExpectedVersion,
		Name:            req.Name,
		Color:           req.Color,
		Content:         req.Content,
		Metadata:        req.Metadata,
		CanvasX:         req.CanvasX,
		CanvasY:         req.CanvasY,
		Tags:            req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(updated))
}

// Delete handles DELETE /nodes/{id}. Permanent removal, subtree included.
func (h *NodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), node.DeleteNodeInput{NodeID: id}); err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SoftDelete handles POST /nodes/{id}/trash.
func (h *NodeHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	trashed, err := h.svc.SoftDelete(r.Context(), node.DeleteNodeInput{NodeID: id})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(trashed))
}

// Restore handles POST /nodes/{id}/restore.
func (h *NodeHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	restored, err := h.svc.Restore(r.Context(), node.DeleteNodeInput{NodeID: id})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(restored))
}

// Children handles GET /nodes/{id}/children.
func (h *NodeHandler) Children(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	children, err := h.svc.Children(r.Context(), node.GetNodeInput{NodeID: id})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"nodes": toNodeResponses(children)})
}

// Descendants handles GET /nodes/{id}/descendants.
func (h *NodeHandler) Descendants(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	descendants, err := h.svc.Descendants(r.Context(), node.GetNodeInput{NodeID: id})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"nodes": toNodeResponses(descendants)})
}

// Move handles POST /nodes/{id}/move.
func (h *NodeHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req moveNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	moved, err := h.svc.Move(r.Context(), node.MoveNodeInput{
		NodeID:   id,
		ParentID: req.ParentID,
		Position: req.Position,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(moved))
}

// Reorder handles POST /nodes/{id}/reorder.
func (h *NodeHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reorderNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reordered, err := h.svc.Reorder(r.Context(), node.ReorderNodeInput{
		NodeID:   id,
		Position: req.Position,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(reordered))
}

// SetTags handles PUT /nodes/{id}/tags.
func (h *NodeHandler) SetTags(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req setTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetTags(r.Context(), node.SetNodeTagsInput{
		NodeID: id,
		Tags:   req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNodeResponse(updated))
}

// References handles GET /nodes/{id}/references. Lists nodes embedding this
// one.
func (h *NodeHandler) References(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	refs, err := h.svc.ListReferences(r.Context(), node.GetNodeInput{NodeID: id})
	if err != nil {
		respondError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"nodes": toNodeResponses(refs)})
}
