package blocks

import (
	"context"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error)
	ListForVehicleOnDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.AvailabilityBlock, error)
	Delete(ctx context.Context, id int64) error
	DeleteForBooking(ctx context.Context, bookingID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
