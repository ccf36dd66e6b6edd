package get_available_slots

import (
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	getAvailableSlots "github.com/vinetours/VT-FleetService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Available   bool    `json:"available"`
	VehicleID   *int64  `json:"vehicleId,omitempty"`
	VehicleName *string `json:"vehicleName,omitempty"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string         `json:"date"`
	DurationHours int            `json:"durationHours"`
	Slots         []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(dateStr string, durationHours, partySize int, brandID *string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:          date,
		DurationHours: durationHours,
		PartySize:     partySize,
		BrandID:       brandID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			Available:   s.Available,
			VehicleID:   s.VehicleID,
			VehicleName: s.VehicleName,
		})
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		Slots:         slots,
	}
}
