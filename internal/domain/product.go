package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a per-stall catalog entry derived from reconciled inventories.
// Descriptive fields are set once and then only changed by the operator;
// LastQty and LastSeenAt are refreshed on every opening.
type Product struct {
	StallID    uuid.UUID
	ID         string
	Canonical  string
	Display    string
	Category   *string
	Tags       []string
	Price      *decimal.Decimal
	Active     bool
	LastQty    int
	LastSeenAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductPatch is a partial update of operator-editable product fields.
// Nil fields are left unchanged.
type ProductPatch struct {
	Display *string
	Price   *decimal.Decimal
	Active  *bool
	Tags    *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Display == nil && p.Price == nil && p.Active == nil && p.Tags == nil
}
