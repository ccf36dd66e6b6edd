package create_hold

import (
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	// Hold не может претендовать на время вне рабочих часов
	if req.StartTime.IsBefore(domain.OperatingHoursStart) || req.EndTime.IsAfter(domain.OperatingHoursEnd) {
		return fmt.Errorf("%w: window must be inside operating hours %s-%s",
			ErrInvalidInput, domain.OperatingHoursStart, domain.OperatingHoursEnd)
	}

	if req.BrandID != nil && *req.BrandID == "" {
		return fmt.Errorf("%w: brandId must not be empty when provided", ErrInvalidInput)
	}

	return nil
}
