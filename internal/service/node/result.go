package node

import (
	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
)

// NodePage is one page of a keyset-paginated listing. NextCursor is the id
// of the last returned node when HasMore is set.
type NodePage struct {
	Nodes      []domain.Node
	NextCursor *uuid.UUID
	HasMore    bool
}
