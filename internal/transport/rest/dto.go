package rest

import (
	"encoding/json"
	"time"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

type nodeResponse struct {
	ID          string         `json:"id"`
	ParentID    *string        `json:"parentId"`
	Name        string         `json:"name"`
	Kind        string         `json:"kind"`
	Color       *string        `json:"color,omitempty"`
	ReferenceID *string        `json:"referenceId,omitempty"`
	Content     map[string]any `json:"content"`
	Metadata    map[string]any `json:"metadata"`
	Position    int            `json:"position"`
	Version     int            `json:"version"`
	CanvasX     int            `json:"canvasX"`
	CanvasY     int            `json:"canvasY"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   *time.Time     `json:"deletedAt,omitempty"`
	Tags        []tagResponse  `json:"tags"`
}

func toNodeResponse(n *domain.Node) nodeResponse {
	var parentID *string
	if n.ParentID != nil {
		s := n.ParentID.String()
		parentID = &s
	}
	tags := make([]tagResponse, len(n.Tags))
	for i, t := range n.Tags {
		tags[i] = toTagResponse(&t)
	}
	return nodeResponse{
		ID:          n.ID.String(),
		ParentID:    parentID,
		Name:        n.Name,
		Kind:        string(n.Kind),
		Color:       n.Color,
		ReferenceID: n.ReferenceID,
		Content:     n.Content,
		Metadata:    n.Metadata,
		Position:    n.Position,
		Version:     n.Version,
		CanvasX:     n.CanvasX,
		CanvasY:     n.CanvasY,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		DeletedAt:   n.DeletedAt,
		Tags:        tags,
	}
}

func toNodeResponses(nodes []domain.Node) []nodeResponse {
	out := make([]nodeResponse, len(nodes))
	for i := range nodes {
		out[i] = toNodeResponse(&nodes[i])
	}
	return out
}

type tagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTagResponse(t *domain.Tag) tagResponse {
	return tagResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i := range tags {
		out[i] = toTagResponse(&tags[i])
	}
	return out
}

type zoneResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ReferenceID *string   `json:"referenceId,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Position    int       `json:"position"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toZoneResponse(z *domain.Zone) zoneResponse {
	return zoneResponse{
		ID:          z.ID.String(),
		Name:        z.Name,
		ReferenceID: z.ReferenceID,
		Color:       z.Color,
		Icon:        z.Icon,
		Position:    z.Position,
		IsDefault:   z.IsDefault,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

type moduleResponse struct {
	ID          string          `json:"id"`
	ZoneID      string          `json:"zoneId"`
	Name        string          `json:"name"`
	ReferenceID *string         `json:"referenceId,omitempty"`
	Kind        string          `json:"kind"`
	Config      json.RawMessage `json:"config"`
	GridX       int             `json:"gridX"`
	GridY       int             `json:"gridY"`
	GridW       int             `json:"gridW"`
	GridH       int             `json:"gridH"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toModuleResponse(m *domain.Module) moduleResponse {
	config := m.Config
	if len(config) == 0 {
		config = json.RawMessage(`{}`)
	}
	return moduleResponse{
		ID:          m.ID.String(),
		ZoneID:      m.ZoneID.String(),
		Name:        m.Name,
		ReferenceID: m.ReferenceID,
		Kind:        string(m.Kind),
		Config:      config,
		GridX:       m.GridX,
		GridY:       m.GridY,
		GridW:       m.GridW,
		GridH:       m.GridH,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
