package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stall is a vendor's sales location, independent of any single opening.
// CurrentOpen holds the key of the active opening; nil means the stall is closed.
type Stall struct {
	ID           uuid.UUID
	VendorUserID string
	Name         string
	Active       bool
	CurrentOpen  *string
	CurrentLat   *float64
	CurrentLng   *float64
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen reports whether the stall has an active opening.
func (s *Stall) IsOpen() bool {
	return s.CurrentOpen != nil && *s.CurrentOpen != ""
}

// StallLink records that a caller owns a stall.
type StallLink struct {
	UserID    string
	StallID   uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
}
