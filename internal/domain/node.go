package domain

import (
	"time"

	"github.com/google/uuid"
)

// NodeKind identifies what a node represents. The set is closed; unknown
// kinds are rejected at the validation boundary.
type NodeKind string

const (
	NodeKindRoot      NodeKind = "root"
	NodeKindFolder    NodeKind = "folder"
	NodeKindDocument  NodeKind = "document"
	NodeKindParagraph NodeKind = "paragraph"
	NodeKindImage     NodeKind = "image"
	NodeKindFile      NodeKind = "file"
	NodeKindTable     NodeKind = "table"
	NodeKindTableRow  NodeKind = "table-row"
	NodeKindTableCell NodeKind = "table-cell"
	NodeKindCalendar  NodeKind = "calendar"
	NodeKindEvent     NodeKind = "event"
	NodeKindReference NodeKind = "reference"
	NodeKindWidget    NodeKind = "widget"
)

var nodeKinds = map[NodeKind]struct{}{
	NodeKindRoot: {}, NodeKindFolder: {}, NodeKindDocument: {},
	NodeKindParagraph: {}, NodeKindImage: {}, NodeKindFile: {},
	NodeKindTable: {}, NodeKindTableRow: {}, NodeKindTableCell: {},
	NodeKindCalendar: {}, NodeKindEvent: {}, NodeKindReference: {},
	NodeKindWidget: {},
}

func (k NodeKind) String() string { return string(k) }

// IsValid reports whether the kind belongs to the closed set.
func (k NodeKind) IsValid() bool {
	_, ok := nodeKinds[k]
	return ok
}

// Node is the atomic content unit. Nodes form a tree via ParentID back
// references; Position orders siblings, with ties broken by CreatedAt
// descending. Version is the optimistic-lock token: it starts at 1 and every
// successful mutation increments it by exactly 1.
type Node struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ParentID    *uuid.UUID
	Name        string
	Kind        NodeKind
	Color       *string
	ReferenceID *string
	Content     map[string]any
	Metadata    map[string]any
	Position    int
	Version     int
	CanvasX     int
	CanvasY     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	Tags []Tag
}

// IsDeleted returns true if the node has been soft-deleted.
func (n *Node) IsDeleted() bool {
	return n.DeletedAt != nil
}

// NodeUpdateParams holds partial update fields for a node. nil means "don't
// change". Color set to ptr("") clears the stored color. Content and Metadata
// replace the whole map when non-nil.
type NodeUpdateParams struct {
	Name     *string
	Color    *string
	Content  map[string]any
	Metadata map[string]any
	CanvasX  *int
	CanvasY  *int
}

// IsEmpty reports whether the patch changes nothing.
func (p NodeUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Color == nil && p.Content == nil &&
		p.Metadata == nil && p.CanvasX == nil && p.CanvasY == nil
}

// NodeReference is a directed link recording that one node embeds another.
type NodeReference struct {
	SourceNodeID uuid.UUID
	TargetNodeID uuid.UUID
	CreatedAt    time.Time
}
