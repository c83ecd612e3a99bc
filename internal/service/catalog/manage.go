package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// List returns the catalog of one of the caller's stalls.
func (s *Service) List(ctx context.Context, stallID uuid.UUID, activeOnly bool) ([]domain.Product, error) {
	if stallID == uuid.Nil {
		return nil, domain.NewValidationError("stall_id", "required")
	}
	if err := s.authorize(ctx, stallID); err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx, stallID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Update applies an operator edit to one product of the caller's stall.
func (s *Service) Update(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, input.StallID); err != nil {
		return nil, err
	}

	p, err := s.products.Update(ctx, input.StallID, input.ProductID, input.patch(), s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.InfoContext(ctx, "product updated",
		slog.String("stall_id", input.StallID.String()),
		slog.String("product_id", input.ProductID),
	)

	return p, nil
}
