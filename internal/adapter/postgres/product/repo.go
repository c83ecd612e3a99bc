// Package product implements the per-stall product catalog using PostgreSQL.
package product

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres"
	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"stall_id", "product_id", "canonical", "display", "category", "tags",
	"price", "active", "last_qty", "last_seen_at", "created_at", "updated_at",
}

const returningColumns = `RETURNING stall_id, product_id, canonical, display, category, tags,
    price, active, last_qty, last_seen_at, created_at, updated_at`

type productRow struct {
	StallID    uuid.UUID           `db:"stall_id"`
	ID         string              `db:"product_id"`
	Canonical  string              `db:"canonical"`
	Display    string              `db:"display"`
	Category   *string             `db:"category"`
	Tags       []string            `db:"tags"`
	Price      decimal.NullDecimal `db:"price"`
	Active     bool                `db:"active"`
	LastQty    int                 `db:"last_qty"`
	LastSeenAt time.Time           `db:"last_seen_at"`
	CreatedAt  time.Time           `db:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at"`
}

func (r productRow) toDomain() domain.Product {
	p := domain.Product{
		StallID:    r.StallID,
		ID:         r.ID,
		Canonical:  r.Canonical,
		Display:    r.Display,
		Category:   r.Category,
		Tags:       r.Tags,
		Active:     r.Active,
		LastQty:    r.LastQty,
		LastSeenAt: r.LastSeenAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if r.Price.Valid {
		price := r.Price.Decimal
		p.Price = &price
	}
	return p
}

// upsertSQL writes descriptive fields only on first insert. Later calls
// refresh the volatile last-seen fields and leave operator edits alone.
const upsertSQL = `
INSERT INTO products (stall_id, product_id, canonical, display, category, tags,
                      active, last_qty, last_seen_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $8, $8)
ON CONFLICT (stall_id, product_id) DO UPDATE
SET last_qty     = EXCLUDED.last_qty,
    last_seen_at = EXCLUDED.last_seen_at,
    updated_at   = EXCLUDED.updated_at
` + returningColumns

// Upsert creates the product on first sighting or refreshes LastQty and
// LastSeenAt on an existing one.
func (r *Repo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	var row productRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		p.StallID, p.ID, p.Canonical, p.Display, p.Category, tags, p.LastQty, p.LastSeenAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "product", p.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Get returns a single product.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, stallID uuid.UUID, productID string) (*domain.Product, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("products").
		Where(sq.Eq{"stall_id": stallID, "product_id": productID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product query: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "product", productID)
	}

	p := row.toDomain()
	return &p, nil
}

// List returns the stall's catalog ordered by display name.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context, stallID uuid.UUID, activeOnly bool) ([]domain.Product, error) {
	b := postgres.Builder().
		Select(columns...).
		From("products").
		Where(sq.Eq{"stall_id": stallID})
	if activeOnly {
		b = b.Where(sq.Eq{"active": true})
	}

	query, args, err := b.OrderBy("display", "product_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products query: %w", err)
	}

	var rows []productRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = row.toDomain()
	}
	return products, nil
}

// Update applies the non-nil fields of patch.
// Returns domain.ErrNotFound if the product does not exist and
// domain.ErrValidation if the patch is empty or violates a constraint.
func (r *Repo) Update(ctx context.Context, stallID uuid.UUID, productID string, patch domain.ProductPatch, now time.Time) (*domain.Product, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("product %s: empty patch: %w", productID, domain.ErrValidation)
	}

	b := postgres.Builder().Update("products")
	if patch.Display != nil {
		b = b.Set("display", *patch.Display)
	}
	if patch.Price != nil {
		b = b.Set("price", *patch.Price)
	}
	if patch.Active != nil {
		b = b.Set("active", *patch.Active)
	}
	if patch.Tags != nil {
		tags := *patch.Tags
		if tags == nil {
			tags = []string{}
		}
		b = b.Set("tags", tags)
	}

	query, args, err := b.
		Set("updated_at", now).
		Where(sq.Eq{"stall_id": stallID, "product_id": productID}).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update product query: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "product", productID)
	}

	p := row.toDomain()
	return &p, nil
}
