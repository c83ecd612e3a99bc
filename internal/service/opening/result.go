package opening

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

// OpenResult is returned by a successful check-in.
type OpenResult struct {
	StallID    uuid.UUID        `json:"stallId"`
	OpeningKey string           `json:"openingKey"`
	Status     string           `json:"status"`
	Labels     []domain.Label   `json:"labels"`
	Moderation []domain.Label   `json:"moderation"`
	Inventory  domain.Inventory `json:"inventory"`
}

// CloseResult is returned by a successful close.
type CloseResult struct {
	OK         bool      `json:"ok"`
	StallID    uuid.UUID `json:"stallId"`
	OpeningKey string    `json:"openingKey"`
	ClosedAt   time.Time `json:"closedAt"`
}

// CurrentResult pairs a stall with its active or most recent opening.
// Either field may be nil.
type CurrentResult struct {
	Stall   *domain.Stall
	Opening *domain.Opening
}

// SweepResult reports a CloseStale run.
type SweepResult struct {
	Scanned int
	Closed  int
	Failed  int
}
