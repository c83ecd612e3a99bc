package domain

import (
	"time"

	"github.com/google/uuid"
)

// OpeningStatus is the lifecycle state of a single check-in.
type OpeningStatus string

const (
	OpeningStatusOpen   OpeningStatus = "OPEN"
	OpeningStatusReview OpeningStatus = "REVIEW"
	OpeningStatusClosed OpeningStatus = "CLOSED"
)

func (s OpeningStatus) String() string { return string(s) }

func (s OpeningStatus) IsValid() bool {
	switch s {
	case OpeningStatusOpen, OpeningStatusReview, OpeningStatusClosed:
		return true
	}
	return false
}

// IsActive reports whether the status counts as the stall being open.
func (s OpeningStatus) IsActive() bool {
	return s == OpeningStatusOpen || s == OpeningStatusReview
}

// StatusFromModeration derives the opening status: any moderation hit
// flags the opening for human review.
func StatusFromModeration(moderation []Label) OpeningStatus {
	if len(moderation) > 0 {
		return OpeningStatusReview
	}
	return OpeningStatusOpen
}

// OpeningKeyLayout is fixed-width so keys sort chronologically as strings.
const OpeningKeyLayout = "2006-01-02T15:04:05.000000000Z"

// NewOpeningKey builds a unique, chronologically sortable opening key.
func NewOpeningKey(now time.Time) string {
	return now.UTC().Format(OpeningKeyLayout) + "#" + uuid.NewString()
}

// Opening is one immutable check-in event of a stall. Only Status and
// ClosedAt change after creation.
type Opening struct {
	StallID          uuid.UUID
	Key              string
	Status           OpeningStatus
	Lat              float64
	Lng              float64
	Accuracy         float64
	StallPhotoKey    string
	ProductsPhotoKey string
	Labels           []Label
	Moderation       []Label
	InventoryRaw     string
	Items            []InventoryItem
	VisionOnly       []InventoryItem
	OpenedAt         time.Time
	ClosedAt         *time.Time
}
