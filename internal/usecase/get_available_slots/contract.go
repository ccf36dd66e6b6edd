package get_available_slots

import (
	"context"

	checkAvailability "github.com/vinetours/VT-FleetService/internal/usecase/check_availability"
)

// AvailabilityChecker интерфейс проверки доступности одного слота
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
