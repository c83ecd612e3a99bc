package opening

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/inventory"
	"github.com/heartmarshall/encuentrame-backend/internal/vision"
)

// Open checks a stall in: it analyzes both photos, reconciles the declared
// inventory against the detected labels, records a new opening and points
// the stall at it. Catalog refresh happens after commit and never fails the call.
func (s *Service) Open(ctx context.Context, input OpenInput) (*OpenResult, error) {
	callerID, err := s.authorize(ctx, input.StallID)
	if err != nil {
		return nil, err
	}

	if !s.vision.Configured() {
		return nil, fmt.Errorf("photo bucket: %w", domain.ErrNotConfigured)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, input.StallID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	st, err := s.stalls.GetByID(ctx, input.StallID)
	if err != nil {
		return nil, fmt.Errorf("get stall: %w", err)
	}
	if st.IsOpen() && s.cfg.ReopenPolicy != ReopenSupersede {
		return nil, domain.ErrAlreadyOpen
	}

	labels, moderation, err := s.collectEvidence(ctx, input)
	if err != nil {
		return nil, err
	}

	status := domain.StatusFromModeration(moderation.Labels)

	extraction, err := s.extractor.Extract(ctx, input.InventoryText, labels.Labels)
	if err != nil {
		s.log.WarnContext(ctx, "inventory extraction fell back to parser",
			slog.String("stall_id", input.StallID.String()),
			slog.String("error", err.Error()),
		)
		extraction = inventory.ParseFallback(input.InventoryText)
	}

	inv := s.reconciler.Reconcile(extraction.Items, labels.Labels)

	now := s.now().UTC()
	op := domain.Opening{
		StallID:          input.StallID,
		Key:              domain.NewOpeningKey(now),
		Status:           status,
		Lat:              *input.Lat,
		Lng:              *input.Lng,
		Accuracy:         input.accuracy(),
		StallPhotoKey:    moderation.KeyUsed,
		ProductsPhotoKey: labels.KeyUsed,
		Labels:           labels.Labels,
		Moderation:       moderation.Labels,
		InventoryRaw:     input.InventoryText,
		Items:            inv.Items,
		VisionOnly:       inv.VisionOnly,
		OpenedAt:         now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if st.IsOpen() {
			if _, closeErr := s.closeOpening(txCtx, st.ID, *st.CurrentOpen, now); closeErr != nil {
				return closeErr
			}
		}

		if _, setErr := s.stalls.SetOpen(txCtx, st.ID, st.Version, op.Key, op.Lat, op.Lng, input.name(), now); setErr != nil {
			return fmt.Errorf("set stall open: %w", setErr)
		}
		if insErr := s.openings.Insert(txCtx, op); insErr != nil {
			return fmt.Errorf("insert opening: %w", insErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if catErr := s.catalog.UpsertFromInventory(ctx, st.ID, inv.Items, now); catErr != nil {
		s.log.WarnContext(ctx, "catalog refresh failed",
			slog.String("stall_id", st.ID.String()),
			slog.String("opening_key", op.Key),
			slog.String("error", catErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "stall opened",
		slog.String("user_id", callerID),
		slog.String("stall_id", st.ID.String()),
		slog.String("opening_key", op.Key),
		slog.String("status", status.String()),
		slog.String("extraction_source", extraction.Source),
		slog.Int("items", len(inv.Items)),
		slog.Int("vision_only", len(inv.VisionOnly)),
	)

	return &OpenResult{
		StallID:    st.ID,
		OpeningKey: op.Key,
		Status:     status.String(),
		Labels:     op.Labels,
		Moderation: op.Moderation,
		Inventory:  inv,
	}, nil
}

// collectEvidence runs label detection on the products photo and
// moderation on the stall photo concurrently.
func (s *Service) collectEvidence(ctx context.Context, input OpenInput) (labels, moderation vision.Result, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var detectErr error
		labels, detectErr = s.vision.DetectLabels(gctx, input.ProductsPhotoKey)
		return detectErr
	})
	g.Go(func() error {
		var detectErr error
		moderation, detectErr = s.vision.DetectModeration(gctx, input.StallPhotoKey)
		return detectErr
	})

	if err = g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "vision analysis failed",
			slog.String("stall_id", input.StallID.String()),
			slog.String("stall_photo_key", input.StallPhotoKey),
			slog.String("products_photo_key", input.ProductsPhotoKey),
			slog.String("error", err.Error()),
		)
		return vision.Result{}, vision.Result{}, err
	}

	return labels, moderation, nil
}
