package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sort fields accepted by node queries. Unknown values fall back to
// SortByCreatedAt at the compilation boundary.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByName      SortField = "name"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DateField selects which timestamp a date-range predicate applies to.
type DateField string

const (
	DateFieldCreatedAt DateField = "createdAt"
	DateFieldUpdatedAt DateField = "updatedAt"
)

// CustomFilter is one predicate over a content payload field. Key is always
// bound as a parameter, never spliced into query text. Exactly the fields
// that are non-nil apply: Eq is a text equality, GTE/LTE are inclusive bounds
// on a numeric cast of the field.
type CustomFilter struct {
	Key string
	Eq  *string
	GTE *float64
	LTE *float64
}

// NodeFilter is a compiled, safe query plan over an owner's nodes. It is
// produced by the module query compiler and executed by the node repository;
// every field is already validated and clamped.
type NodeFilter struct {
	Kinds []NodeKind

	// ParentID filters children of a specific node. TopLevelOnly selects
	// nodes without a parent; it is distinct from "no parent filter"
	// (both zero = no predicate).
	ParentID     *uuid.UUID
	TopLevelOnly bool

	DateField DateField
	DateFrom  *time.Time
	DateTo    *time.Time

	Search *string

	Custom []CustomFilter

	// TagIDs, when non-empty, requires membership in at least one of the
	// listed tags (joined through the association table).
	TagIDs []uuid.UUID

	IncludeDeleted bool

	SortBy    SortField
	SortOrder SortOrder
	Limit     int
}
