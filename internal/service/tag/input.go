package tag

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	Name  string
	Color *string
}

// Validate checks all fields and collects all errors.
func (i CreateTagInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxTagNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTagInput holds the parameters for renaming or recoloring a tag.
type UpdateTagInput struct {
	TagID uuid.UUID
	Name  *string
	Color *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTagInput) Validate() error {
	var errs []domain.FieldError

	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "required"})
	}
	if i.Name == nil && i.Color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > MaxTagNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EnsureTagsInput holds the tag names to resolve or create.
type EnsureTagsInput struct {
	Names []string
}

// Validate checks all fields and collects all errors.
func (i EnsureTagsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Names) == 0 {
		errs = append(errs, domain.FieldError{Field: "names", Message: "at least one name required"})
	}
	if len(i.Names) > MaxBatchEnsure {
		errs = append(errs, domain.FieldError{Field: "names", Message: "max 50 names per batch"})
	}
	for _, name := range i.Names {
		if len(strings.TrimSpace(name)) > MaxTagNameLen {
			errs = append(errs, domain.FieldError{Field: "names", Message: "max 100 characters per name"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssociationInput holds a node-tag pair for attach/detach.
type AssociationInput struct {
	NodeID uuid.UUID
	TagID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AssociationInput) Validate() error {
	var errs []domain.FieldError

	if i.NodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "node_id", Message: "required"})
	}
	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tag_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
