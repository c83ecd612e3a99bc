// Package catalog maintains the per-stall product catalog derived from
// reconciled inventories.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

type productRepo interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	List(ctx context.Context, stallID uuid.UUID, activeOnly bool) ([]domain.Product, error)
	Update(ctx context.Context, stallID uuid.UUID, productID string, patch domain.ProductPatch, now time.Time) (*domain.Product, error)
}

type ownershipChecker interface {
	Owns(ctx context.Context, userID string, stallID uuid.UUID) (bool, error)
}

// Service provides catalog projection and management.
type Service struct {
	products productRepo
	owners   ownershipChecker
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Catalog service.
func NewService(log *slog.Logger, products productRepo, owners ownershipChecker) *Service {
	return &Service{
		products: products,
		owners:   owners,
		log:      log.With("service", "catalog"),
		now:      time.Now,
	}
}

func (s *Service) authorize(ctx context.Context, stallID uuid.UUID) error {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	owns, err := s.owners.Owns(ctx, callerID, stallID)
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if !owns {
		return domain.ErrForbidden
	}
	return nil
}
