package domain

import (
	"time"

	"github.com/google/uuid"
)

// Zone is a workspace grouping container. Zones hold modules; they have no
// direct node relationships; nodes are reached through module filters.
type Zone struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	ReferenceID *string
	Color       *string
	Icon        *string
	Position    int
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReorderItem pairs an entity id with its new sibling position, used by
// batch reorder operations.
type ReorderItem struct {
	ID       uuid.UUID
	Position int
}
