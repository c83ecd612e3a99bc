package stall

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

// List returns the caller's stalls, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Stall, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stalls, err := s.stalls.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list stalls: %w", err)
	}
	return stalls, nil
}

// Get returns one of the caller's stalls.
func (s *Service) Get(ctx context.Context, stallID uuid.UUID) (*domain.Stall, error) {
	if stallID == uuid.Nil {
		return nil, domain.NewValidationError("stall_id", "required")
	}
	if _, err := s.authorize(ctx, stallID); err != nil {
		return nil, err
	}

	st, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("get stall: %w", err)
	}
	return st, nil
}
