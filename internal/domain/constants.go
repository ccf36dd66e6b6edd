package domain

import "github.com/vinetours/VT-FleetService/pkg/types"

// Operating hours: tours may only occupy vehicle time inside this window.
// This is a hard business rule, not per-request configuration.
const (
	OperatingHoursStart types.TimeString = "08:00"
	OperatingHoursEnd   types.TimeString = "22:00"
)

// Business validation constants
const (
	MinDurationHours = 4
	MaxDurationHours = 24

	MinPartySize = 1
	MaxPartySize = 50

	MaxNotesLength = 500
)

// Scheduling defaults
const (
	// DefaultHoldTTLMinutes время жизни hold-блока до истечения
	DefaultHoldTTLMinutes = 15

	// DefaultBufferMinutes длительность буфера до/после бронирования
	DefaultBufferMinutes = 60

	// SlotStepMinutes шаг перебора кандидатов при генерации слотов
	SlotStepMinutes = 60
)

// DateFormat is the wire format for calendar dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// User-facing conflict messages produced by the availability engine
const (
	MsgNoCapacityFmt = "No vehicles available with capacity for %d guests"
	MsgAllBooked     = "All suitable vehicles are booked for this time slot"
	MsgOutsideHours  = "Requested time is outside operating hours (08:00-22:00)"
	MsgDateInPast    = "Requested date is in the past"
)
