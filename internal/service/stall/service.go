package stall

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

type stallRepo interface {
	Create(ctx context.Context, s domain.Stall) (*domain.Stall, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Stall, error)
	Owns(ctx context.Context, userID string, stallID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Stall, error)
	Rename(ctx context.Context, id uuid.UUID, name string, now time.Time) (*domain.Stall, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength = 80
)

// Service manages stall profiles and their owner links.
type Service struct {
	stalls stallRepo
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Stall service.
func NewService(log *slog.Logger, stalls stallRepo, tx txManager) *Service {
	return &Service{
		stalls: stalls,
		tx:     tx,
		log:    log.With("service", "stall"),
		now:    time.Now,
	}
}

// authorize resolves the caller and checks that they own stallID.
func (s *Service) authorize(ctx context.Context, stallID uuid.UUID) (string, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	owns, err := s.stalls.Owns(ctx, callerID, stallID)
	if err != nil {
		return "", fmt.Errorf("check owner: %w", err)
	}
	if !owns {
		return "", domain.ErrForbidden
	}
	return callerID, nil
}
