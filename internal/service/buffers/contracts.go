package buffers

import (
	"context"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// BlockRepository интерфейс репозитория блоков доступности
type BlockRepository interface {
	Create(ctx context.Context, b *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
