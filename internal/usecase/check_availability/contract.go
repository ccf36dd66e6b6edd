package check_availability

import (
	"context"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	ListOverlapping(ctx context.Context, vehicleID int64, date time.Time, start, end types.TimeString) ([]*domain.AvailabilityBlock, error)
	DeleteExpiredHolds(ctx context.Context) (int64, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	// ListCandidates возвращает рабочие автомобили с capacity >= partySize,
	// прошедшие фильтр по бренду, в порядке возрастания вместимости
	ListCandidates(ctx context.Context, partySize int, brandID *string) ([]*domain.Vehicle, error)
}

// BlackoutRepository интерфейс репозитория дат-блэкаутов
type BlackoutRepository interface {
	FindForDate(ctx context.Context, date time.Time, brandID *string) (*domain.BlackoutDate, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
