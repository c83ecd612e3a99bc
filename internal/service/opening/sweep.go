package opening

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// CloseStale closes openings that have stayed active longer than olderThan.
// Each opening is closed in its own transaction; failures are counted and
// the sweep moves on. A stall pointer is cleared only if it still refers to
// the stale opening.
func (s *Service) CloseStale(ctx context.Context, olderThan time.Duration) (SweepResult, error) {
	var res SweepResult
	if olderThan <= 0 {
		return res, domain.NewValidationError("older_than", "must be positive")
	}

	now := s.now().UTC()
	stale, err := s.openings.ListActiveOlderThan(ctx, now.Add(-olderThan), s.cfg.SweepBatch)
	if err != nil {
		return res, fmt.Errorf("list stale openings: %w", err)
	}
	res.Scanned = len(stale)

	for _, op := range stale {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		closed, closeErr := s.closeStale(ctx, op, now)
		switch {
		case closeErr != nil:
			res.Failed++
			s.log.ErrorContext(ctx, "close stale opening",
				slog.String("stall_id", op.StallID.String()),
				slog.String("opening_key", op.Key),
				slog.String("error", closeErr.Error()),
			)
		case closed:
			res.Closed++
		}
	}

	s.log.InfoContext(ctx, "stale sweep finished",
		slog.Int("scanned", res.Scanned),
		slog.Int("closed", res.Closed),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}

func (s *Service) closeStale(ctx context.Context, op domain.Opening, now time.Time) (bool, error) {
	var closed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cleared, clearErr := s.stalls.ClearOpenIfCurrent(txCtx, op.StallID, op.Key, now)
		if clearErr != nil {
			return fmt.Errorf("clear stall open: %w", clearErr)
		}
		if !cleared {
			s.log.DebugContext(txCtx, "stale opening is not current",
				slog.String("stall_id", op.StallID.String()),
				slog.String("opening_key", op.Key),
			)
		}

		if _, closeErr := s.openings.Close(txCtx, op.StallID, op.Key, now); closeErr != nil {
			return fmt.Errorf("close opening: %w", closeErr)
		}
		closed = true
		return nil
	})
	return closed, err
}
