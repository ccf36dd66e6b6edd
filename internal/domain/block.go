package domain

import (
	"time"

	"github.com/vinetours/VT-FleetService/pkg/types"
)

// BlockType represents the kind of claim a block makes on vehicle time
type BlockType string

const (
	// BlockHold is a short-lived exclusive claim created during checkout.
	// Carries an expiry; either converted to a booking or deleted.
	BlockHold BlockType = "hold"

	// BlockBooking is a confirmed reservation. Created by converting a hold
	// (or directly for bookings that skip hold semantics); deleted only
	// together with the owning booking.
	BlockBooking BlockType = "booking"

	// BlockMaintenance is a fleet-operations claim (servicing, repairs).
	BlockMaintenance BlockType = "maintenance"

	// BlockBuffer is advisory turnaround spacing around a booking.
	// Best-effort: never blocks the booking it surrounds.
	BlockBuffer BlockType = "buffer"
)

// AvailabilityBlock represents a persisted claim on a vehicle's time for one
// calendar date. The interval [StartTime, EndTime) is half-open: a block
// ending at 14:00 does not conflict with one starting at 14:00.
//
// For a fixed vehicle and date no two blocks may overlap, regardless of
// type. The store enforces this with an exclusion constraint, so the
// invariant survives concurrent inserts.
type AvailabilityBlock struct {
	ID        int64
	VehicleID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Type      BlockType

	// BookingID is set only for Type == BlockBooking (and for buffers,
	// which die together with the booking they pad).
	BookingID *int64

	// BrandID is the brand the claim was made for, if any.
	BrandID *string

	// ExpiresAt is set only for holds.
	ExpiresAt *time.Time

	// Notes carries the maintenance reason for maintenance blocks.
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHold returns true if the block is a checkout hold
func (b *AvailabilityBlock) IsHold() bool {
	return b.Type == BlockHold
}

// IsExpired returns true for a hold whose expiry has passed
func (b *AvailabilityBlock) IsExpired(now time.Time) bool {
	return b.Type == BlockHold && b.ExpiresAt != nil && b.ExpiresAt.Before(now)
}

// CanConvert returns true if the block may still be converted to a booking
func (b *AvailabilityBlock) CanConvert(now time.Time) bool {
	return b.Type == BlockHold && !b.IsExpired(now)
}

// CanDeleteDirectly returns true for block types that fleet operations may
// delete on their own. Booking blocks go through the booking deletion path,
// buffers are removed together with their booking.
func (b *AvailabilityBlock) CanDeleteDirectly() bool {
	return b.Type == BlockMaintenance || b.Type == BlockHold
}

// Overlaps reports whether two blocks' intervals overlap.
// Touching endpoints do not count as overlap.
func (b *AvailabilityBlock) Overlaps(other *AvailabilityBlock) bool {
	return b.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(b.EndTime)
}
