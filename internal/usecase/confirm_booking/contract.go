package confirm_booking

import (
	"context"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/internal/integrations/complianceservice"
	"github.com/vinetours/VT-FleetService/internal/integrations/pricingservice"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error)
}

// HoldService интерфейс сервиса hold'ов
type HoldService interface {
	ConvertToBooking(ctx context.Context, holdID, bookingID int64) (*domain.AvailabilityBlock, error)
}

// BufferService интерфейс сервиса буферных блоков
type BufferService interface {
	CreateBuffers(ctx context.Context, vehicleID int64, date time.Time, bookingStart, bookingEnd types.TimeString, bookingID int64)
}

// ComplianceClient интерфейс клиента ComplianceService
type ComplianceClient interface {
	CheckVehicle(ctx context.Context, vehicleID int64, date time.Time) (*complianceservice.Verdict, error)
}

// PricingClient интерфейс клиента PricingService
type PricingClient interface {
	CalculatePricingWithGracefulDegradation(ctx context.Context, date time.Time, partySize, durationHours int) (*pricingservice.Quote, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс провайдера времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
