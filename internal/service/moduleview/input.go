package moduleview

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

const MaxModuleNameLen = 255

// CreateModuleInput holds the parameters for creating a module inside a zone.
type CreateModuleInput struct {
	ZoneID      uuid.UUID
	Name        string
	Kind        string
	ReferenceID *string
	Config      json.RawMessage
	GridX       int
	GridY       int
	GridW       int
	GridH       int
}

// Validate checks all fields and collects all errors.
func (i CreateModuleInput) Validate() error {
	var errs []domain.FieldError

	if i.ZoneID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxModuleNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if !domain.ModuleKind(i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown module kind " + i.Kind})
	}

	if i.GridW < 0 || i.GridH < 0 {
		errs = append(errs, domain.FieldError{Field: "grid", Message: "width and height must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateModuleInput holds the parameters for a partial module update.
type UpdateModuleInput struct {
	ModuleID uuid.UUID
	Name     *string
	Kind     *string
	Config   json.RawMessage
	GridX    *int
	GridY    *int
	GridW    *int
	GridH    *int
}

// Validate checks all fields and collects all errors.
func (i UpdateModuleInput) Validate() error {
	var errs []domain.FieldError

	if i.ModuleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "module_id", Message: "required"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
		}
		if len(name) > MaxModuleNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}

	if i.Kind != nil && !domain.ModuleKind(*i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown module kind " + *i.Kind})
	}

	if i.Name == nil && i.Kind == nil && i.Config == nil &&
		i.GridX == nil && i.GridY == nil && i.GridW == nil && i.GridH == nil {
		errs = append(errs, domain.FieldError{Field: "update", Message: "at least one field is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
