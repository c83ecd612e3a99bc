package stall

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

// Create registers a new closed stall owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateStallInput) (*domain.Stall, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Stall
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.stalls.Create(txCtx, domain.Stall{
			ID:           uuid.New(),
			VendorUserID: callerID,
			Name:         strings.TrimSpace(input.Name),
			Active:       true,
			CreatedAt:    s.now().UTC(),
		})
		if createErr != nil {
			return fmt.Errorf("create stall: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stall created",
		slog.String("user_id", callerID),
		slog.String("stall_id", created.ID.String()),
	)

	return created, nil
}
