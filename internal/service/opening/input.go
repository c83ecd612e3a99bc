package opening

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/objectkey"
)

// OpenInput is a check-in submission.
type OpenInput struct {
	StallID          uuid.UUID
	StallName        *string // nil or blank keeps the current name
	Lat              *float64
	Lng              *float64
	Accuracy         float64
	StallPhotoKey    string
	ProductsPhotoKey string
	InventoryText    string
}

// Validate checks all fields and collects all errors.
func (i OpenInput) Validate() error {
	var errs []domain.FieldError

	if i.StallID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "stall_id", Message: "required"})
	}
	if objectkey.Normalize(i.StallPhotoKey) == "" {
		errs = append(errs, domain.FieldError{Field: "stall_photo_key", Message: "required"})
	}
	if objectkey.Normalize(i.ProductsPhotoKey) == "" {
		errs = append(errs, domain.FieldError{Field: "products_photo_key", Message: "required"})
	}
	if !finite(i.Lat) {
		errs = append(errs, domain.FieldError{Field: "lat", Message: "must be a finite number"})
	}
	if !finite(i.Lng) {
		errs = append(errs, domain.FieldError{Field: "lng", Message: "must be a finite number"})
	}
	if strings.TrimSpace(i.InventoryText) == "" {
		errs = append(errs, domain.FieldError{Field: "inventory_text", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// name returns the trimmed stall name, or nil when none was given.
func (i OpenInput) name() *string {
	if i.StallName == nil {
		return nil
	}
	n := strings.TrimSpace(*i.StallName)
	if n == "" {
		return nil
	}
	return &n
}

// accuracy clamps unusable accuracy readings to zero.
func (i OpenInput) accuracy() float64 {
	if math.IsNaN(i.Accuracy) || math.IsInf(i.Accuracy, 0) || i.Accuracy < 0 {
		return 0
	}
	return i.Accuracy
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
