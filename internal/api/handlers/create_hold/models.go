package create_hold

import (
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	createHold "github.com/vinetours/VT-FleetService/internal/usecase/create_hold"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	VehicleID int64   `json:"vehicleId"`
	Date      string  `json:"date"`      // "2026-06-15"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "14:00"
	BrandID   *string `json:"brandId,omitempty"`
}

// HoldResponse HTTP response model
type HoldResponse struct {
	HoldID    int64  `json:"holdId"`
	VehicleID int64  `json:"vehicleId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ExpiresAt string `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateHoldRequest) ToUseCaseRequest() (*createHold.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createHold.Request{
		VehicleID: r.VehicleID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		BrandID:   r.BrandID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createHold.Response) *HoldResponse {
	return &HoldResponse{
		HoldID:    resp.HoldID,
		VehicleID: resp.VehicleID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
	}
}
