package get_vehicle_blocks

import (
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// BlockResponse HTTP model одного блока доступности
type BlockResponse struct {
	ID        int64   `json:"id"`
	VehicleID int64   `json:"vehicleId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Type      string  `json:"type"`
	BookingID *int64  `json:"bookingId,omitempty"`
	BrandID   *string `json:"brandId,omitempty"`
	ExpiresAt *string `json:"expiresAt,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// VehicleBlocksResponse HTTP response model
type VehicleBlocksResponse struct {
	VehicleID int64           `json:"vehicleId"`
	Date      string          `json:"date"`
	Blocks    []BlockResponse `json:"blocks"`
}

// FromDomain конвертирует доменные блоки в HTTP response
func FromDomain(vehicleID int64, date time.Time, blocks []*domain.AvailabilityBlock) *VehicleBlocksResponse {
	out := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp := BlockResponse{
			ID:        b.ID,
			VehicleID: b.VehicleID,
			Date:      b.Date.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Type:      string(b.Type),
			BookingID: b.BookingID,
			BrandID:   b.BrandID,
			Notes:     b.Notes,
		}
		if b.ExpiresAt != nil {
			expiresAt := b.ExpiresAt.Format(time.RFC3339)
			resp.ExpiresAt = &expiresAt
		}
		out = append(out, resp)
	}

	return &VehicleBlocksResponse{
		VehicleID: vehicleID,
		Date:      date.Format(domain.DateFormat),
		Blocks:    out,
	}
}
