// Package opening implements the Opening log repository using PostgreSQL.
// Openings are immutable apart from their status and close timestamp.
package opening

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres"
	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// Repo provides opening persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new opening repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"stall_id", "opening_key", "status", "lat", "lng", "accuracy",
	"stall_photo_key", "products_photo_key", "labels", "moderation",
	"inventory_raw", "items", "vision_only", "opened_at", "closed_at",
}

const returningColumns = `stall_id, opening_key, status, lat, lng, accuracy,
    stall_photo_key, products_photo_key, labels, moderation,
    inventory_raw, items, vision_only, opened_at, closed_at`

type openingRow struct {
	StallID          uuid.UUID              `db:"stall_id"`
	Key              string                 `db:"opening_key"`
	Status           string                 `db:"status"`
	Lat              float64                `db:"lat"`
	Lng              float64                `db:"lng"`
	Accuracy         float64                `db:"accuracy"`
	StallPhotoKey    string                 `db:"stall_photo_key"`
	ProductsPhotoKey string                 `db:"products_photo_key"`
	Labels           []domain.Label         `db:"labels"`
	Moderation       []domain.Label         `db:"moderation"`
	InventoryRaw     string                 `db:"inventory_raw"`
	Items            []domain.InventoryItem `db:"items"`
	VisionOnly       []domain.InventoryItem `db:"vision_only"`
	OpenedAt         time.Time              `db:"opened_at"`
	ClosedAt         *time.Time             `db:"closed_at"`
}

func (r openingRow) toDomain() domain.Opening {
	return domain.Opening{
		StallID:          r.StallID,
		Key:              r.Key,
		Status:           domain.OpeningStatus(r.Status),
		Lat:              r.Lat,
		Lng:              r.Lng,
		Accuracy:         r.Accuracy,
		StallPhotoKey:    r.StallPhotoKey,
		ProductsPhotoKey: r.ProductsPhotoKey,
		Labels:           nonNil(r.Labels),
		Moderation:       nonNil(r.Moderation),
		InventoryRaw:     r.InventoryRaw,
		Items:            nonNil(r.Items),
		VisionOnly:       nonNil(r.VisionOnly),
		OpenedAt:         r.OpenedAt,
		ClosedAt:         r.ClosedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a single opening by its composite key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, stallID uuid.UUID, key string) (*domain.Opening, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("openings").
		Where(sq.Eq{"stall_id": stallID, "opening_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get opening query: %w", err)
	}

	return r.getOne(ctx, query, args, key)
}

// Latest returns the most recent opening of a stall.
// Returns domain.ErrNotFound if the stall has never opened.
func (r *Repo) Latest(ctx context.Context, stallID uuid.UUID) (*domain.Opening, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("openings").
		Where(sq.Eq{"stall_id": stallID}).
		OrderBy("opening_key DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest opening query: %w", err)
	}

	return r.getOne(ctx, query, args, "latest of "+stallID.String())
}

// List returns up to limit openings of a stall, newest first.
// Returns an empty slice (not nil) when the stall has no openings.
func (r *Repo) List(ctx context.Context, stallID uuid.UUID, limit int) ([]domain.Opening, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("openings").
		Where(sq.Eq{"stall_id": stallID}).
		OrderBy("opening_key DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list openings query: %w", err)
	}

	return r.selectMany(ctx, query, args)
}

// ListActiveOlderThan returns OPEN/REVIEW openings opened before cutoff, oldest first.
func (r *Repo) ListActiveOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.Opening, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("openings").
		Where(sq.NotEq{"status": string(domain.OpeningStatusClosed)}).
		Where(sq.Lt{"opened_at": cutoff}).
		OrderBy("opened_at").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stale openings query: %w", err)
	}

	return r.selectMany(ctx, query, args)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new opening.
// Returns domain.ErrAlreadyExists on a key collision and domain.ErrNotFound
// if the stall does not exist.
func (r *Repo) Insert(ctx context.Context, o domain.Opening) error {
	query, args, err := postgres.Builder().
		Insert("openings").
		Columns(columns...).
		Values(
			o.StallID, o.Key, string(o.Status), o.Lat, o.Lng, o.Accuracy,
			o.StallPhotoKey, o.ProductsPhotoKey, nonNil(o.Labels), nonNil(o.Moderation),
			o.InventoryRaw, nonNil(o.Items), nonNil(o.VisionOnly), o.OpenedAt, o.ClosedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert opening query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "opening", o.Key)
	}
	return nil
}

// Close marks an opening CLOSED. Closing an already closed opening keeps
// its original close timestamp.
// Returns domain.ErrNotFound if the opening does not exist.
func (r *Repo) Close(ctx context.Context, stallID uuid.UUID, key string, now time.Time) (*domain.Opening, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row openingRow
	err := pgxscan.Get(ctx, q, &row,
		`UPDATE openings
		 SET status = $3, closed_at = COALESCE(closed_at, $4)
		 WHERE stall_id = $1 AND opening_key = $2
		 RETURNING `+returningColumns,
		stallID, key, string(domain.OpeningStatusClosed), now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "opening", key)
	}

	o := row.toDomain()
	return &o, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query string, args []any, key string) (*domain.Opening, error) {
	var row openingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "opening", key)
	}

	o := row.toDomain()
	return &o, nil
}

func (r *Repo) selectMany(ctx context.Context, query string, args []any) ([]domain.Opening, error) {
	var rows []openingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select openings: %w", err)
	}

	openings := make([]domain.Opening, len(rows))
	for i, row := range rows {
		openings[i] = row.toDomain()
	}
	return openings, nil
}

// nonNil keeps jsonb columns as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
