// Package vision collects label and moderation evidence for uploaded photos,
// retrying across the normalized key candidates of each photo.
package vision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/objectkey"
	"github.com/heartmarshall/encuentrame-backend/internal/provider"
)

type labelDetector interface {
	DetectLabels(ctx context.Context, bucket, key string, maxLabels int, minConfidence float64) ([]provider.LabelResult, error)
}

type moderationDetector interface {
	DetectModeration(ctx context.Context, bucket, key string, minConfidence float64) ([]provider.LabelResult, error)
}

// Config holds detection parameters shared by both operations.
type Config struct {
	Bucket        string
	MaxLabels     int
	MinConfidence float64
}

// Result is the detections for one photo plus the key that resolved.
type Result struct {
	Labels  []domain.Label
	KeyUsed string
}

// Collector runs label and moderation detection against stored photos.
type Collector struct {
	labels     labelDetector
	moderation moderationDetector
	cfg        Config
	log        *slog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(log *slog.Logger, labels labelDetector, moderation moderationDetector, cfg Config) *Collector {
	return &Collector{
		labels:     labels,
		moderation: moderation,
		cfg:        cfg,
		log:        log.With("service", "vision"),
	}
}

// Configured reports whether the collector knows which bucket to read.
func (c *Collector) Configured() bool {
	return c.cfg.Bucket != ""
}

// DetectLabels returns object labels for the photo at key.
func (c *Collector) DetectLabels(ctx context.Context, key string) (Result, error) {
	return c.tryCandidates(ctx, "detect_labels", key, func(ctx context.Context, k string) ([]provider.LabelResult, error) {
		return c.labels.DetectLabels(ctx, c.cfg.Bucket, k, c.cfg.MaxLabels, c.cfg.MinConfidence)
	})
}

// DetectModeration returns unsafe-content labels for the photo at key.
func (c *Collector) DetectModeration(ctx context.Context, key string) (Result, error) {
	return c.tryCandidates(ctx, "detect_moderation", key, func(ctx context.Context, k string) ([]provider.LabelResult, error) {
		return c.moderation.DetectModeration(ctx, c.cfg.Bucket, k, c.cfg.MinConfidence)
	})
}

// tryCandidates calls detect for each key candidate in order. A not-found
// answer moves on to the next candidate; any other failure is returned as a
// *domain.ProviderError. When every candidate is missing, the error wraps
// both domain.ErrPhotoNotFound and the last not-found failure.
func (c *Collector) tryCandidates(
	ctx context.Context,
	op, key string,
	detect func(ctx context.Context, key string) ([]provider.LabelResult, error),
) (Result, error) {
	candidates := objectkey.Candidates(key)
	if len(candidates) == 0 {
		return Result{}, fmt.Errorf("%s: empty key: %w", op, domain.ErrPhotoNotFound)
	}

	var lastErr error
	for _, k := range candidates {
		raw, err := detect(ctx, k)
		if err == nil {
			if k != candidates[0] {
				c.log.InfoContext(ctx, "photo resolved under fallback key",
					slog.String("op", op),
					slog.String("submitted", key),
					slog.String("key", k),
				)
			}
			return Result{Labels: toLabels(raw), KeyUsed: k}, nil
		}
		if !errors.Is(err, provider.ErrObjectNotFound) {
			return Result{}, &domain.ProviderError{Provider: "vision", Op: op, Key: k, Err: err}
		}
		lastErr = err
	}

	c.log.WarnContext(ctx, "photo not found under any candidate key",
		slog.String("op", op),
		slog.String("submitted", key),
		slog.Int("candidates", len(candidates)),
	)
	return Result{}, fmt.Errorf("%s: %d keys tried: %w: %w", op, len(candidates), domain.ErrPhotoNotFound, lastErr)
}

func toLabels(raw []provider.LabelResult) []domain.Label {
	labels := make([]domain.Label, 0, len(raw))
	for _, r := range raw {
		if r.Name == "" {
			continue
		}
		labels = append(labels, domain.Label{
			Name:       r.Name,
			Confidence: math.Round(r.Confidence*10) / 10,
		})
	}
	return labels
}
