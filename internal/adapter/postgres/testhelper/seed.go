package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVendorID returns a fresh caller identity.
func SeedVendorID() string {
	return "vendor-" + uniqueSuffix()
}

// SeedStall creates a closed stall and its owner link for vendorID.
// Returns a filled domain.Stall.
func SeedStall(t *testing.T, pool *pgxpool.Pool, vendorID string) domain.Stall {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	stall := domain.Stall{
		ID:           uuid.New(),
		VendorUserID: vendorID,
		Name:         "Puesto " + uniqueSuffix(),
		Active:       true,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO stalls (id, vendor_user_id, name, active, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		stall.ID, stall.VendorUserID, stall.Name, stall.Active, stall.Version, stall.CreatedAt, stall.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStall insert stall: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO stall_owners (user_id, stall_id, name, active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		vendorID, stall.ID, stall.Name, true, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStall insert owner link: %v", err)
	}

	return stall
}

// SeedOpening inserts an opening row for stallID with the given status.
// It does not touch the stall's current_open pointer.
func SeedOpening(t *testing.T, pool *pgxpool.Pool, stallID uuid.UUID, status domain.OpeningStatus, openedAt time.Time) domain.Opening {
	t.Helper()

	openedAt = openedAt.UTC().Truncate(time.Microsecond)
	o := domain.Opening{
		StallID:          stallID,
		Key:              domain.NewOpeningKey(openedAt),
		Status:           status,
		Lat:              -16.5,
		Lng:              -68.15,
		StallPhotoKey:    "public/stall.jpg",
		ProductsPhotoKey: "public/products.jpg",
		Labels:           []domain.Label{},
		Moderation:       []domain.Label{},
		InventoryRaw:     "2 botellas",
		Items:            []domain.InventoryItem{},
		VisionOnly:       []domain.InventoryItem{},
		OpenedAt:         openedAt,
	}
	if status == domain.OpeningStatusClosed {
		closed := openedAt.Add(time.Hour)
		o.ClosedAt = &closed
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO openings (stall_id, opening_key, status, lat, lng, accuracy,
		   stall_photo_key, products_photo_key, labels, moderation, inventory_raw,
		   items, vision_only, opened_at, closed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		o.StallID, o.Key, string(o.Status), o.Lat, o.Lng, o.Accuracy,
		o.StallPhotoKey, o.ProductsPhotoKey, o.Labels, o.Moderation, o.InventoryRaw,
		o.Items, o.VisionOnly, o.OpenedAt, o.ClosedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOpening insert: %v", err)
	}

	return o
}
