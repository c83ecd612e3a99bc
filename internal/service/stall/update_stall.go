package stall

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// Rename changes the display name of one of the caller's stalls.
func (s *Service) Rename(ctx context.Context, input RenameStallInput) (*domain.Stall, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	callerID, err := s.authorize(ctx, input.StallID)
	if err != nil {
		return nil, err
	}

	var renamed *domain.Stall
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var renameErr error
		renamed, renameErr = s.stalls.Rename(txCtx, input.StallID, strings.TrimSpace(input.Name), s.now().UTC())
		if renameErr != nil {
			return fmt.Errorf("rename stall: %w", renameErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stall renamed",
		slog.String("user_id", callerID),
		slog.String("stall_id", input.StallID.String()),
	)

	return renamed, nil
}

// Delete removes one of the caller's stalls. Open stalls cannot be deleted.
func (s *Service) Delete(ctx context.Context, stallID uuid.UUID) error {
	if stallID == uuid.Nil {
		return domain.NewValidationError("stall_id", "required")
	}

	callerID, err := s.authorize(ctx, stallID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		st, getErr := s.stalls.GetByID(txCtx, stallID)
		if getErr != nil {
			return fmt.Errorf("get stall: %w", getErr)
		}
		if st.IsOpen() {
			return domain.ErrStallOpen
		}

		if delErr := s.stalls.Delete(txCtx, stallID); delErr != nil {
			return fmt.Errorf("delete stall: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "stall deleted",
		slog.String("user_id", callerID),
		slog.String("stall_id", stallID.String()),
	)

	return nil
}
