package get_vehicle_blocks

import (
	"context"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

type BlockService interface {
	GetForVehicleOnDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.AvailabilityBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
