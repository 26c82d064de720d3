package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is an owner-scoped label. Name is unique per owner.
type Tag struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     *string
	CreatedAt time.Time
}

// TagUpdateParams holds partial update fields for a tag.
// nil means "don't change".
type TagUpdateParams struct {
	Name  *string
	Color *string
}
