// Package inventory turns a vendor's spoken inventory into structured items
// and reconciles them against vision evidence.
package inventory

import (
	"math"
	"strings"
)

// ExtractedItem is one line item as produced by a generative model or the
// rule-based parser, before reconciliation.
type ExtractedItem struct {
	Canonical string   `json:"canonical"`
	Name      string   `json:"name,omitempty"`
	Display   string   `json:"display"`
	Qty       float64  `json:"qty"`
	Unit      *string  `json:"unit"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	Suggested bool     `json:"suggested"`
}

// Extraction is the output of one extraction path.
type Extraction struct {
	Items  []ExtractedItem
	Source string
}

// SourceFallback marks extractions produced by ParseFallback.
const SourceFallback = "fallback"

// name returns the item's best product name.
func (it ExtractedItem) name() string {
	if s := strings.TrimSpace(it.Canonical); s != "" {
		return s
	}
	return strings.TrimSpace(it.Name)
}

// quantity rounds the stated quantity and clamps it to at least one.
func (it ExtractedItem) quantity() int {
	if math.IsNaN(it.Qty) || it.Qty < 1 {
		return 1
	}
	if it.Qty > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(it.Qty))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
