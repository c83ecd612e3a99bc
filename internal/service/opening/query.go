package opening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

// GetCurrent returns the stall with its active opening, or its most recent
// one when the stall is closed. Opening is nil for a stall never opened.
func (s *Service) GetCurrent(ctx context.Context, stallID uuid.UUID) (*CurrentResult, error) {
	if _, err := s.authorize(ctx, stallID); err != nil {
		return nil, err
	}

	return s.current(ctx, stallID)
}

// GetMine returns the current state of the caller's first stall.
// Both fields are nil when the caller owns no stall.
func (s *Service) GetMine(ctx context.Context) (*CurrentResult, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.stalls.FirstByOwner(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &CurrentResult{}, nil
		}
		return nil, fmt.Errorf("first stall: %w", err)
	}

	return s.current(ctx, st.ID)
}

// ListOpenings returns the stall's openings, newest first. Non-positive
// limits use the default and large ones are capped.
func (s *Service) ListOpenings(ctx context.Context, stallID uuid.UUID, limit int) ([]domain.Opening, error) {
	if _, err := s.authorize(ctx, stallID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.cfg.HistoryDefault
	}
	limit = min(limit, s.cfg.HistoryMax)

	openings, err := s.openings.List(ctx, stallID, limit)
	if err != nil {
		return nil, fmt.Errorf("list openings: %w", err)
	}
	return openings, nil
}

func (s *Service) current(ctx context.Context, stallID uuid.UUID) (*CurrentResult, error) {
	st, err := s.stalls.GetByID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("get stall: %w", err)
	}

	if st.IsOpen() {
		op, getErr := s.openings.Get(ctx, stallID, *st.CurrentOpen)
		switch {
		case getErr == nil:
			return &CurrentResult{Stall: st, Opening: op}, nil
		case errors.Is(getErr, domain.ErrNotFound):
			s.log.WarnContext(ctx, "stall points at missing opening",
				slog.String("stall_id", stallID.String()),
				slog.String("opening_key", *st.CurrentOpen),
			)
		default:
			return nil, fmt.Errorf("get opening: %w", getErr)
		}
	}

	op, err := s.openings.Latest(ctx, stallID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &CurrentResult{Stall: st}, nil
		}
		return nil, fmt.Errorf("latest opening: %w", err)
	}

	return &CurrentResult{Stall: st, Opening: op}, nil
}
