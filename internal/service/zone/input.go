package zone

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// CreateZoneInput holds the parameters for creating a zone.
type CreateZoneInput struct {
	Name        string
	ReferenceID *string
	Color       *string
	Icon        *string
	IsDefault   bool
}

// Validate checks all fields and collects all errors.
func (i CreateZoneInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxZoneNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateZoneInput holds the parameters for a partial zone update.
type UpdateZoneInput struct {
	ZoneID uuid.UUID
	Name   *string
	Color  *string
	Icon   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateZoneInput) Validate() error {
	var errs []domain.FieldError

	if i.ZoneID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "zone_id", Message: "required"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be blank"})
		}
		if len(name) > MaxZoneNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}

	if i.Name == nil && i.Color == nil && i.Icon == nil {
		errs = append(errs, domain.FieldError{Field: "update", Message: "at least one field is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderZonesInput assigns new positions to a batch of zones.
type ReorderZonesInput struct {
	Items []domain.ReorderItem
}

// Validate checks all fields and collects all errors.
func (i ReorderZonesInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "required"})
	}
	if len(i.Items) > MaxReorderBatch {
		errs = append(errs, domain.FieldError{Field: "items", Message: "max 100 items"})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.Items))
	for _, item := range i.Items {
		if item.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "items", Message: "zone id required"})
			break
		}
		if item.Position < 0 {
			errs = append(errs, domain.FieldError{Field: "items", Message: "position must not be negative"})
			break
		}
		if _, dup := seen[item.ID]; dup {
			errs = append(errs, domain.FieldError{Field: "items", Message: "duplicate zone " + item.ID.String()})
			break
		}
		seen[item.ID] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
