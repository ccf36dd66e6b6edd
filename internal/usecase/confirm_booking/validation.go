package confirm_booking

import (
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// validateRequest проверяет корректность запроса
func validateRequest(req *Request) error {
	if req.HoldID <= 0 {
		return fmt.Errorf("%w: hold_id must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party_size must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}
	return nil
}
