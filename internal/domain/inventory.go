package domain

// DefaultUnit is used when the vendor did not state a unit.
const DefaultUnit = "unidad"

// Label is a single vision or moderation detection.
// Confidence is on a 0..100 scale, rounded to one decimal.
type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Evidence tells which sources support an inventory item.
type Evidence struct {
	Text   bool     `json:"text"`
	Vision []string `json:"vision"`
}

// InventoryItem is one line of a reconciled inventory snapshot.
type InventoryItem struct {
	Canonical  string   `json:"canonical"`
	Display    string   `json:"display"`
	Qty        int      `json:"qty"`
	Unit       string   `json:"unit"`
	Category   *string  `json:"category"`
	Tags       []string `json:"tags"`
	Evidence   Evidence `json:"evidence"`
	Confidence float64  `json:"confidence"`
	Suggested  bool     `json:"suggested"`
}

// Inventory is the two-tier reconciliation output: vendor-confirmed items
// and unconfirmed vision-only suggestions.
type Inventory struct {
	Items      []InventoryItem `json:"items"`
	VisionOnly []InventoryItem `json:"visionOnly"`
}
