package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// UpdateProductInput holds an operator edit of one product.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	StallID   uuid.UUID
	ProductID string
	Display   *string
	Price     *decimal.Decimal
	Active    *bool
	Tags      []string // nil = don't change; empty = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateProductInput) Validate() error {
	var errs []domain.FieldError

	if i.StallID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "stall_id", Message: "required"})
	}
	if strings.TrimSpace(i.ProductID) == "" {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Display != nil && strings.TrimSpace(*i.Display) == "" {
		errs = append(errs, domain.FieldError{Field: "display", Message: "must not be blank"})
	}
	if i.Price != nil && i.Price.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be non-negative"})
	}
	if i.Display == nil && i.Price == nil && i.Active == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProductInput) patch() domain.ProductPatch {
	var p domain.ProductPatch
	if i.Display != nil {
		d := strings.TrimSpace(*i.Display)
		p.Display = &d
	}
	if i.Price != nil {
		price := i.Price.Round(2)
		p.Price = &price
	}
	p.Active = i.Active
	if i.Tags != nil {
		tags := make([]string, 0, len(i.Tags))
		for _, t := range i.Tags {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		p.Tags = &tags
	}
	return p
}
