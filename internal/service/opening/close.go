package opening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// Close ends the stall's active opening and clears its pointer.
func (s *Service) Close(ctx context.Context, stallID uuid.UUID) (*CloseResult, error) {
	callerID, err := s.authorize(ctx, stallID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, stallID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	st, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("get stall: %w", err)
	}
	if !st.IsOpen() {
		return nil, domain.ErrNoActiveOpening
	}

	key := *st.CurrentOpen
	now := s.now().UTC()
	closedAt := now

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		closed, closeErr := s.closeOpening(txCtx, stallID, key, now)
		if closeErr != nil {
			return closeErr
		}
		if closed != nil && closed.ClosedAt != nil {
			closedAt = *closed.ClosedAt
		}

		if _, clearErr := s.stalls.ClearOpen(txCtx, stallID, st.Version, now); clearErr != nil {
			return fmt.Errorf("clear stall open: %w", clearErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stall closed",
		slog.String("user_id", callerID),
		slog.String("stall_id", stallID.String()),
		slog.String("opening_key", key),
	)

	return &CloseResult{
		OK:         true,
		StallID:    stallID,
		OpeningKey: key,
		ClosedAt:   closedAt,
	}, nil
}

// closeOpening marks one opening closed. A missing opening row is logged
// and skipped so the stall pointer can still be cleared.
func (s *Service) closeOpening(ctx context.Context, stallID uuid.UUID, key string, now time.Time) (*domain.Opening, error) {
	closed, err := s.openings.Close(ctx, stallID, key, now)
	if err == nil {
		return closed, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "stall points at missing opening",
			slog.String("stall_id", stallID.String()),
			slog.String("opening_key", key),
		)
		return nil, nil
	}
	return nil, fmt.Errorf("close opening: %w", err)
}
