package node

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// CreateNodeInput holds the parameters for creating a node.
type CreateNodeInput struct {
	ParentID    *uuid.UUID
	Name        string
	Kind        string
	Color       *string
	ReferenceID *string
	Content     map[string]any
	Metadata    map[string]any
	CanvasX     *int
	CanvasY     *int
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateNodeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if !domain.NodeKind(i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown node kind " + i.Kind})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetNodeInput holds the parameters for fetching a node.
type GetNodeInput struct {
	NodeID         uuid.UUID
	IncludeDeleted bool
}

// Validate checks all fields and collects all errors.
func (i GetNodeInput) Validate() error {
	if i.NodeID == uuid.Nil {
		return domain.NewValidationError("node_id", "required")
	}
	return nil
}

// UpdateNodeInput holds the parameters for a partial node update.
// ExpectedVersion is the optimistic-lock token the caller last observed.
// Tags, when non-nil, replaces the node's tag set wholesale.
type UpdateNodeInput struct {
	NodeID          uuid.UUID
	ExpectedVersion int
	Name            *string
	Color           *string
	Content         map[string]any
	Metadata        map[string]any
	CanvasX         *int
	CanvasY         *int
	Tags            *[]string
}

// Validate checks all fields and collects all errors.
func (i UpdateNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "expected_version", Message: "must be at least 1"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > MaxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}
	if i.Name == nil && i.Color == nil && i.Content == nil && i.Metadata == nil &&
		i.CanvasX == nil && i.CanvasY == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteNodeInput holds the parameters for deleting a node.
type DeleteNodeInput struct {
	NodeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteNodeInput) Validate() error {
	if i.NodeID == uuid.Nil {
		return domain.NewValidationError("node_id", "required")
	}
	return nil
}

// ListNodesInput holds the parameters for keyset-paginated listing.
type ListNodesInput struct {
	Limit          int
	Cursor         *uuid.UUID
	IncludeDeleted bool
}

// SearchNodesInput holds the parameters for full-text node search.
type SearchNodesInput struct {
	Query          string
	Kind           *string
	IncludeDeleted bool
}

// Validate checks all fields and collects all errors.
func (i SearchNodesInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}
	if i.Kind != nil && !domain.NodeKind(*i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown node kind " + *i.Kind})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveNodeInput holds the parameters for moving a node to a new parent.
// ParentID nil moves the node to the top level. Position nil appends the
// node after the existing siblings under the target parent.
type MoveNodeInput struct {
	NodeID   uuid.UUID
	ParentID *uuid.UUID
	Position *int
}

// Validate checks all fields and collects all errors.
func (i MoveNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if i.Position != nil && *i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderNodeInput holds the parameters for repositioning a node among its
// current siblings.
type ReorderNodeInput struct {
	NodeID   uuid.UUID
	Position int
}

// Validate checks all fields and collects all errors.
func (i ReorderNodeInput) Validate() error {
	var errs []domain.FieldError

	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetNodeTagsInput holds the parameters for replacing a node's tag set.
type SetNodeTagsInput struct {
	NodeID uuid.UUID
	Tags   []string
}

// Validate checks all fields and collects all errors.
func (i SetNodeTagsInput) Validate() error {
	if i.NodeID == uuid.Nil {
		return domain.NewValidationError("node_id", "required")
	}
	return nil
}
