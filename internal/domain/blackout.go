package domain

import "time"

// BlackoutDate represents a calendar date on which no tours may be booked,
// independent of vehicle availability. Optionally scoped to a single brand.
type BlackoutDate struct {
	ID      int64
	Date    time.Time
	BrandID *string

	// Reason is surfaced verbatim as the conflict message.
	Reason string

	CreatedAt time.Time
}

// AppliesTo returns true if the blackout applies to a request of the given
// brand. A blackout without a brand applies to everything.
func (b *BlackoutDate) AppliesTo(brandID *string) bool {
	if b.BrandID == nil {
		return true
	}
	return brandID != nil && *b.BrandID == *brandID
}
