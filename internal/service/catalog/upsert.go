package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// UpsertFromInventory projects confirmed items into the stall's catalog.
// New products get every descriptive field; existing ones only refresh
// LastQty and LastSeenAt. Items whose slug is empty are skipped.
// Every item is attempted; failures are joined into the returned error.
func (s *Service) UpsertFromInventory(ctx context.Context, stallID uuid.UUID, items []domain.InventoryItem, seenAt time.Time) error {
	var errs []error
	upserted := 0

	for _, it := range items {
		id := Slugify(it.Canonical)
		if id == "" {
			continue
		}

		display := it.Display
		if display == "" {
			display = it.Canonical
		}

		qty := it.Qty
		if qty < 1 {
			qty = 1
		}

		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}

		_, err := s.products.Upsert(ctx, domain.Product{
			StallID:    stallID,
			ID:         id,
			Canonical:  it.Canonical,
			Display:    display,
			Category:   it.Category,
			Tags:       tags,
			Active:     true,
			LastQty:    qty,
			LastSeenAt: seenAt,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("upsert product %s: %w", id, err))
			continue
		}
		upserted++
	}

	s.log.DebugContext(ctx, "catalog upserted",
		slog.String("stall_id", stallID.String()),
		slog.Int("products", upserted),
		slog.Int("failed", len(errs)),
	)

	return errors.Join(errs...)
}
