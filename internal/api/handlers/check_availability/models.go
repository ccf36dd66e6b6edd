package check_availability

import (
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	checkAvailability "github.com/vinetours/VT-FleetService/internal/usecase/check_availability"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Date          string  `json:"date"`      // "2026-06-15"
	StartTime     string  `json:"startTime"` // "10:00"
	DurationHours int     `json:"durationHours"`
	PartySize     int     `json:"partySize"`
	BrandID       *string `json:"brandId,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available   bool     `json:"available"`
	VehicleID   *int64   `json:"vehicleId,omitempty"`
	VehicleName *string  `json:"vehicleName,omitempty"`
	Conflicts   []string `json:"conflicts,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		PartySize:     r.PartySize,
		BrandID:       r.BrandID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available:   resp.Available,
		VehicleID:   resp.VehicleID,
		VehicleName: resp.VehicleName,
		Conflicts:   resp.Conflicts,
	}
}
