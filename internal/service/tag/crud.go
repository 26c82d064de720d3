package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rwalsh/lattice-backend/internal/domain"
	"github.com/rwalsh/lattice-backend/pkg/ctxutil"
)

// Create creates a new tag for the authenticated user.
// Returns ErrAlreadyExists when the name is already taken by this user.
func (s *Service) Create(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.tags.Create(ctx, &domain.Tag{
		ID:     uuid.New(),
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Color:  input.Color,
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tag.ID.String()),
		slog.String("name", tag.Name),
	)

	return tag, nil
}

// Get returns a tag by id.
func (s *Service) Get(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if tagID == uuid.Nil {
		return nil, domain.NewValidationError("tag_id", "required")
	}

	return s.tags.GetByID(ctx, userID, tagID)
}

// List returns all of the user's tags ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.tags.List(ctx, userID)
}

// Update renames or recolors a tag. A rename that collides with another tag
// of the same user returns ErrAlreadyExists.
func (s *Service) Update(ctx context.Context, input UpdateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TagUpdateParams{Color: input.Color}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	tag, err := s.tags.Update(ctx, userID, input.TagID, params)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tag updated",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tag.ID.String()),
	)

	return tag, nil
}

// Delete removes a tag. Node associations go with it; nodes stay untouched.
func (s *Service) Delete(ctx context.Context, tagID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if tagID == uuid.Nil {
		return domain.NewValidationError("tag_id", "required")
	}

	if err := s.tags.Delete(ctx, userID, tagID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tagID.String()),
	)

	return nil
}

// Ensure resolves names to tags, creating any that do not exist. The call is
// idempotent: repeated or concurrent calls with overlapping names converge
// on one tag per name.
func (s *Service) Ensure(ctx context.Context, input EnsureTagsInput) ([]domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(input.Names))
	names := make([]string, 0, len(input.Names))
	for _, name := range input.Names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		names = append(names, trimmed)
	}
	if len(names) == 0 {
		return nil, domain.NewValidationError("names", "at least one name required")
	}

	return s.tags.EnsureByNames(ctx, userID, names)
}
