package main

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/service/opening"
)

type stallView struct {
	StallID     uuid.UUID `json:"stallId"`
	Name        string    `json:"name"`
	Active      bool      `json:"active"`
	IsOpen      bool      `json:"isOpen"`
	CurrentOpen *string   `json:"currentOpen"`
	CurrentLat  *float64  `json:"currentLat"`
	CurrentLng  *float64  `json:"currentLng"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toStallView(s *domain.Stall) stallView {
	if s == nil {
		return stallView{}
	}
	return stallView{
		StallID:     s.ID,
		Name:        s.Name,
		Active:      s.Active,
		IsOpen:      s.IsOpen(),
		CurrentOpen: s.CurrentOpen,
		CurrentLat:  s.CurrentLat,
		CurrentLng:  s.CurrentLng,
		UpdatedAt:   s.UpdatedAt,
	}
}

type openingView struct {
	StallID          uuid.UUID        `json:"stallId"`
	OpeningKey       string           `json:"openingKey"`
	Status           string           `json:"status"`
	Lat              float64          `json:"lat"`
	Lng              float64          `json:"lng"`
	Accuracy         float64          `json:"accuracy"`
	StallPhotoKey    string           `json:"stallPhotoKey"`
	ProductsPhotoKey string           `json:"productsPhotoKey"`
	Labels           []domain.Label   `json:"labels"`
	Moderation       []domain.Label   `json:"moderation"`
	InventoryRaw     string           `json:"inventoryRaw"`
	Inventory        domain.Inventory `json:"inventory"`
	OpenedAt         time.Time        `json:"openedAt"`
	ClosedAt         *time.Time       `json:"closedAt"`
}

func toOpeningView(o *domain.Opening) openingView {
	return openingView{
		StallID:          o.StallID,
		OpeningKey:       o.Key,
		Status:           o.Status.String(),
		Lat:              o.Lat,
		Lng:              o.Lng,
		Accuracy:         o.Accuracy,
		StallPhotoKey:    o.StallPhotoKey,
		ProductsPhotoKey: o.ProductsPhotoKey,
		Labels:           o.Labels,
		Moderation:       o.Moderation,
		InventoryRaw:     o.InventoryRaw,
		Inventory:        domain.Inventory{Items: o.Items, VisionOnly: o.VisionOnly},
		OpenedAt:         o.OpenedAt,
		ClosedAt:         o.ClosedAt,
	}
}

type currentView struct {
	Stall   *stallView   `json:"stall"`
	Opening *openingView `json:"opening"`
}

func toCurrentView(r *opening.CurrentResult) currentView {
	var v currentView
	if r.Stall != nil {
		sv := toStallView(r.Stall)
		v.Stall = &sv
	}
	if r.Opening != nil {
		ov := toOpeningView(r.Opening)
		v.Opening = &ov
	}
	return v
}

type productView struct {
	ProductID  string           `json:"productId"`
	Canonical  string           `json:"canonical"`
	Display    string           `json:"display"`
	Category   *string          `json:"category"`
	Tags       []string         `json:"tags"`
	Price      *decimal.Decimal `json:"price"`
	Active     bool             `json:"active"`
	LastQty    int              `json:"lastQty"`
	LastSeenAt time.Time        `json:"lastSeenAt"`
}

func toProductView(p *domain.Product) productView {
	if p == nil {
		return productView{}
	}
	return productView{
		ProductID:  p.ID,
		Canonical:  p.Canonical,
		Display:    p.Display,
		Category:   p.Category,
		Tags:       p.Tags,
		Price:      p.Price,
		Active:     p.Active,
		LastQty:    p.LastQty,
		LastSeenAt: p.LastSeenAt,
	}
}

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeError prints the error envelope. Internal failures keep their
// message out of the output.
func writeError(w io.Writer, err error) {
	body := errorBody{Code: domain.ErrorCode(err), Message: err.Error()}
	if body.Code == domain.CodeInternal {
		body.Message = "internal error"
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, fe.Field+": "+fe.Message)
		}
	}

	_ = writeJSON(w, map[string]errorBody{"error": body})
}
