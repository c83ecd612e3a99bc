package inventory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

var leadingQty = regexp.MustCompile(`^(\d+)\s+(.*)$`)

// ParseFallback is the deterministic extraction path. It splits raw on
// commas and reads an optional leading integer quantity from each segment:
// "10 poleras, gafas de sol" yields poleras x10 and gafas de sol x1.
// It never fails.
func ParseFallback(raw string) Extraction {
	unit := domain.DefaultUnit
	items := make([]ExtractedItem, 0)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, qty := part, 1
		if m := leadingQty.FindStringSubmatch(part); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				name, qty = strings.TrimSpace(m[2]), n
			}
		}

		items = append(items, ExtractedItem{
			Canonical: name,
			Display:   name,
			Qty:       float64(qty),
			Unit:      &unit,
			Tags:      []string{},
		})
	}

	return Extraction{Items: items, Source: SourceFallback}
}
