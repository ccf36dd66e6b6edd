package buffers

import (
	"context"
	"errors"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Service создает буферные блоки вокруг подтвержденных бронирований.
// Буферы - это best-effort времена на разворот автомобиля: они никогда не
// блокируют подтверждение бронирования, которое окружают, и пропускаются,
// если не помещаются в рабочие часы или конфликтуют с соседним блоком.
type Service struct {
	blockRepo     BlockRepository
	bufferMinutes int
	logger        Logger
}

// NewService создает новый экземпляр сервиса буферов
func NewService(blockRepo BlockRepository, bufferMinutes int, logger Logger) *Service {
	if bufferMinutes <= 0 {
		bufferMinutes = domain.DefaultBufferMinutes
	}
	return &Service{
		blockRepo:     blockRepo,
		bufferMinutes: bufferMinutes,
		logger:        logger,
	}
}

// CreateBuffers создает пре-буфер [bookingStart - buffer, bookingStart) и
// пост-буфер [bookingEnd, bookingEnd + buffer) вокруг booking-блока.
// Буфер пропускается (не ошибка), если выходит за рабочие часы;
// конфликт слота проглатывается - недостающий буфер не сообщается
// вызывающей стороне как ошибка.
func (s *Service) CreateBuffers(
	ctx context.Context,
	vehicleID int64,
	date time.Time,
	bookingStart, bookingEnd types.TimeString,
	bookingID int64,
) {
	// Пре-буфер: может не поместиться до начала рабочего дня
	if preStart, err := bookingStart.AddMinutes(-s.bufferMinutes); err == nil && !preStart.IsBefore(domain.OperatingHoursStart) {
		s.createBuffer(ctx, vehicleID, date, preStart, bookingStart, bookingID)
	} else {
		s.logger.Info("CreateBuffers: pre-buffer for booking=%d skipped, outside operating hours", bookingID)
	}

	// Пост-буфер: может не поместиться до конца рабочего дня
	if postEnd, err := bookingEnd.AddMinutes(s.bufferMinutes); err == nil && !postEnd.IsAfter(domain.OperatingHoursEnd) {
		s.createBuffer(ctx, vehicleID, date, bookingEnd, postEnd, bookingID)
	} else {
		s.logger.Info("CreateBuffers: post-buffer for booking=%d skipped, outside operating hours", bookingID)
	}
}

func (s *Service) createBuffer(
	ctx context.Context,
	vehicleID int64,
	date time.Time,
	start, end types.TimeString,
	bookingID int64,
) {
	buffer := &domain.AvailabilityBlock{
		VehicleID: vehicleID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Type:      domain.BlockBuffer,
		BookingID: &bookingID,
	}

	_, err := s.blockRepo.Create(ctx, buffer)
	if err == nil {
		s.logger.Info("CreateBuffers: buffer [%s, %s) created for booking=%d vehicle=%d",
			start, end, bookingID, vehicleID)
		return
	}

	if errors.Is(err, blockRepo.ErrSlotConflict) {
		// Соседний блок уже занимает это время - буфер уступает
		s.logger.Info("CreateBuffers: buffer [%s, %s) for booking=%d skipped, adjacent block present",
			start, end, bookingID)
		return
	}

	// Буферы best-effort: инфраструктурную ошибку логируем, но не отдаем наверх
	s.logger.Error("CreateBuffers: failed to create buffer [%s, %s) for booking=%d: %v",
		start, end, bookingID, err)
}
