package create_hold

import (
	"context"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// HoldService интерфейс сервиса hold'ов
type HoldService interface {
	CreateHold(ctx context.Context, vehicleID int64, date time.Time, start, end types.TimeString, brandID *string) (*domain.AvailabilityBlock, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
