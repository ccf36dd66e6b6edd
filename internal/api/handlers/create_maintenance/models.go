package create_maintenance

import (
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	createMaintenance "github.com/vinetours/VT-FleetService/internal/usecase/create_maintenance"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// CreateMaintenanceRequest HTTP request model
type CreateMaintenanceRequest struct {
	Date      string `json:"date"`      // "2026-06-15"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Reason    string `json:"reason"`
}

// MaintenanceResponse HTTP response model
type MaintenanceResponse struct {
	BlockID   int64  `json:"blockId"`
	VehicleID int64  `json:"vehicleId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateMaintenanceRequest) ToUseCaseRequest(vehicleID int64) (*createMaintenance.Request, error) {
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

	return &createMaintenance.Request{
		VehicleID: vehicleID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createMaintenance.Response) *MaintenanceResponse {
	return &MaintenanceResponse{
		BlockID:   resp.BlockID,
		VehicleID: resp.VehicleID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
	}
}
