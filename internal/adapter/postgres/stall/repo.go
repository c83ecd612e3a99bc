// Package stall implements the Stall repository using PostgreSQL.
// It stores stall profiles and the owner links that gate every mutation.
package stall

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/encuentrame-backend/internal/adapter/postgres"
	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// Repo provides stall persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stall repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const stallColumns = `s.id, s.vendor_user_id, s.name, s.active, s.current_open,
    s.current_lat, s.current_lng, s.version, s.created_at, s.updated_at`

// stallRow is the scan target for stall queries.
type stallRow struct {
	ID           uuid.UUID `db:"id"`
	VendorUserID string    `db:"vendor_user_id"`
	Name         string    `db:"name"`
	Active       bool      `db:"active"`
	CurrentOpen  *string   `db:"current_open"`
	CurrentLat   *float64  `db:"current_lat"`
	CurrentLng   *float64  `db:"current_lng"`
	Version      int64     `db:"version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r stallRow) toDomain() domain.Stall {
	return domain.Stall{
		ID:           r.ID,
		VendorUserID: r.VendorUserID,
		Name:         r.Name,
		Active:       r.Active,
		CurrentOpen:  r.CurrentOpen,
		CurrentLat:   r.CurrentLat,
		CurrentLng:   r.CurrentLng,
		Version:      r.Version,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a stall by primary key.
// Returns domain.ErrNotFound if the stall does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stallRow
	err := pgxscan.Get(ctx, q, &row, `SELECT `+stallColumns+` FROM stalls s WHERE s.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "stall", id.String())
	}

	s := row.toDomain()
	return &s, nil
}

// Owns reports whether userID holds an active owner link for stallID.
func (r *Repo) Owns(ctx context.Context, userID string, stallID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var owns bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stall_owners WHERE user_id = $1 AND stall_id = $2 AND active)`,
		userID, stallID,
	).Scan(&owns)
	if err != nil {
		return false, fmt.Errorf("check stall owner: %w", err)
	}

	return owns, nil
}

// ListByOwner returns every stall linked to userID, oldest first.
// Returns an empty slice (not nil) when the user owns no stalls.
func (r *Repo) ListByOwner(ctx context.Context, userID string) ([]domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []stallRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT `+stallColumns+`
		 FROM stall_owners o
		 JOIN stalls s ON s.id = o.stall_id
		 WHERE o.user_id = $1 AND o.active
		 ORDER BY o.created_at, s.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stalls by owner: %w", err)
	}

	stalls := make([]domain.Stall, len(rows))
	for i, row := range rows {
		stalls[i] = row.toDomain()
	}
	return stalls, nil
}

// FirstByOwner returns the caller's oldest stall.
// Returns domain.ErrNotFound if the user owns no stalls.
func (r *Repo) FirstByOwner(ctx context.Context, userID string) (*domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stallRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT `+stallColumns+`
		 FROM stall_owners o
		 JOIN stalls s ON s.id = o.stall_id
		 WHERE o.user_id = $1 AND o.active
		 ORDER BY o.created_at, s.id
		 LIMIT 1`,
		userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "stall of owner", userID)
	}

	s := row.toDomain()
	return &s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the stall profile and its owner link.
// Callers should run it inside a transaction.
func (r *Repo) Create(ctx context.Context, s domain.Stall) (*domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stallRow
	err := pgxscan.Get(ctx, q, &row,
		`INSERT INTO stalls (id, vendor_user_id, name, active, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 1, $5, $5)
		 RETURNING id, vendor_user_id, name, active, current_open, current_lat, current_lng,
		           version, created_at, updated_at`,
		s.ID, s.VendorUserID, s.Name, s.Active, s.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "stall", s.ID.String())
	}

	_, err = q.Exec(ctx,
		`INSERT INTO stall_owners (user_id, stall_id, name, active, created_at)
		 VALUES ($1, $2, $3, TRUE, $4)`,
		s.VendorUserID, s.ID, s.Name, s.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "stall owner link", s.ID.String())
	}

	created := row.toDomain()
	return &created, nil
}

// Rename updates the profile name and the denormalized name on owner links.
// Returns domain.ErrNotFound if the stall does not exist.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string, now time.Time) (*domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stallRow
	err := pgxscan.Get(ctx, q, &row,
		`UPDATE stalls SET name = $2, updated_at = $3, version = version + 1
		 WHERE id = $1
		 RETURNING id, vendor_user_id, name, active, current_open, current_lat, current_lng,
		           version, created_at, updated_at`,
		id, name, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "stall", id.String())
	}

	if _, err := q.Exec(ctx, `UPDATE stall_owners SET name = $2 WHERE stall_id = $1`, id, name); err != nil {
		return nil, postgres.MapError(err, "stall owner link", id.String())
	}

	s := row.toDomain()
	return &s, nil
}

// Delete removes a closed stall. Owner links, openings and products cascade.
// Returns domain.ErrNotFound if the stall does not exist and
// domain.ErrStallOpen if it still has an active opening.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM stalls WHERE id = $1 AND current_open IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "stall", id.String())
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing stall from an open one.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("stall %s: %w", id, domain.ErrStallOpen)
}

// SetOpen points the stall at a new opening, conditional on expectedVersion.
// A nil name leaves the profile name unchanged.
// Returns domain.ErrConcurrentUpdate if the stall changed since it was read.
func (r *Repo) SetOpen(ctx context.Context, id uuid.UUID, expectedVersion int64, openingKey string, lat, lng float64, name *string, now time.Time) (*domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stallRow
	err := pgxscan.Get(ctx, q, &row,
		`UPDATE stalls
		 SET current_open = $3, current_lat = $4, current_lng = $5,
		     name = COALESCE($6, name), updated_at = $7, version = version + 1
		 WHERE id = $1 AND version = $2
		 RETURNING id, vendor_user_id, name, active, current_open, current_lat, current_lng,
		           version, created_at, updated_at`,
		id, expectedVersion, openingKey, lat, lng, name, now,
	)
	if err != nil {
		return nil, r.conditionalError(ctx, err, id)
	}

	if name != nil {
		if _, err := q.Exec(ctx, `UPDATE stall_owners SET name = $2 WHERE stall_id = $1`, id, *name); err != nil {
			return nil, postgres.MapError(err, "stall owner link", id.String())
		}
	}

	s := row.toDomain()
	return &s, nil
}

// ClearOpen removes the active-opening pointer, conditional on expectedVersion.
// Returns domain.ErrConcurrentUpdate if the stall changed since it was read.
func (r *Repo) ClearOpen(ctx context.Context, id uuid.UUID, expectedVersion int64, now time.Time) (*domain.Stall, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row stallRow
	err := pgxscan.Get(ctx, q, &row,
		`UPDATE stalls
		 SET current_open = NULL, updated_at = $3, version = version + 1
		 WHERE id = $1 AND version = $2
		 RETURNING id, vendor_user_id, name, active, current_open, current_lat, current_lng,
		           version, created_at, updated_at`,
		id, expectedVersion, now,
	)
	if err != nil {
		return nil, r.conditionalError(ctx, err, id)
	}

	s := row.toDomain()
	return &s, nil
}

// ClearOpenIfCurrent removes the pointer only while it still references openingKey.
// Reports whether the pointer was cleared.
func (r *Repo) ClearOpenIfCurrent(ctx context.Context, id uuid.UUID, openingKey string, now time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE stalls
		 SET current_open = NULL, updated_at = $3, version = version + 1
		 WHERE id = $1 AND current_open = $2`,
		id, openingKey, now,
	)
	if err != nil {
		return false, postgres.MapError(err, "stall", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// conditionalError maps a no-rows result of a versioned update to either
// ErrNotFound or ErrConcurrentUpdate.
func (r *Repo) conditionalError(ctx context.Context, err error, id uuid.UUID) error {
	if !pgxscan.NotFound(err) {
		return postgres.MapError(err, "stall", id.String())
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return getErr
	}
	// The stall exists, so its version moved on.
	return fmt.Errorf("stall %s: %w", id, domain.ErrConcurrentUpdate)
}
