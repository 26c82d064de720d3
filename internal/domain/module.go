package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ModuleKind identifies how a module renders its node result set.
// The renderer set is open-ended; the query engine treats all kinds alike.
type ModuleKind string

const (
	ModuleKindGraph    ModuleKind = "graph"
	ModuleKindTable    ModuleKind = "table"
	ModuleKindKanban   ModuleKind = "kanban"
	ModuleKindCalendar ModuleKind = "calendar"
	ModuleKindText     ModuleKind = "text"
	ModuleKindCanvas   ModuleKind = "canvas"
)

var moduleKinds = map[ModuleKind]struct{}{
	ModuleKindGraph: {}, ModuleKindTable: {}, ModuleKindKanban: {},
	ModuleKindCalendar: {}, ModuleKindText: {}, ModuleKindCanvas: {},
}

// IsValid reports whether the kind belongs to the known renderer set.
func (k ModuleKind) IsValid() bool {
	_, ok := moduleKinds[k]
	return ok
}

// Module is a saved declarative view: a filter/sort/limit configuration plus
// rendering parameters, stored as an opaque JSON blob. The query engine reads
// Config but never writes it.
type Module struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ZoneID      uuid.UUID
	Name        string
	ReferenceID *string
	Kind        ModuleKind
	Config      json.RawMessage
	GridX       int
	GridY       int
	GridW       int
	GridH       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ModuleUpdateParams holds partial update fields for a module.
// nil means "don't change".
type ModuleUpdateParams struct {
	Name   *string
	Kind   *ModuleKind
	Config json.RawMessage
	GridX  *int
	GridY  *int
	GridW  *int
	GridH  *int
}
