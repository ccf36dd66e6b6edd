package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
)

// Service сервис чтения и обслуживания блоков доступности
type Service struct {
	blockRepo BlockRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блоков
func NewService(blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// GetForVehicleOnDate возвращает все блоки автомобиля на дату.
// Без побочных эффектов.
func (s *Service) GetForVehicleOnDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.AvailabilityBlock, error) {
	list, err := s.blockRepo.ListForVehicleOnDate(ctx, vehicleID, date)
	if err != nil {
		s.logger.Error("GetForVehicleOnDate: repository error for vehicle=%d: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: GetForVehicleOnDate - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Delete удаляет блок напрямую. Разрешено только для maintenance- и
// hold-блоков: booking-блоки идут через путь удаления бронирования,
// буферы умирают вместе со своим бронированием.
func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !b.CanDeleteDirectly() {
		s.logger.Warn("Delete: block id=%d has type=%s, direct deletion refused", id, b.Type)
		return ErrOperationNotAllowed
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: block id=%d (type=%s) deleted", id, b.Type)
	return nil
}

// DeleteForBooking удаляет booking-блок и его буферы единым действием.
// Единственный легальный путь удаления booking-блоков.
func (s *Service) DeleteForBooking(ctx context.Context, bookingID int64) (int64, error) {
	count, err := s.blockRepo.DeleteForBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("DeleteForBooking: repository error for booking=%d: %v", bookingID, err)
		return 0, fmt.Errorf("%w: DeleteForBooking - repository error: %v", ErrInternal, err)
	}

	if count == 0 {
		s.logger.Warn("DeleteForBooking: no blocks found for booking=%d", bookingID)
		return 0, ErrBlockNotFound
	}

	s.logger.Info("DeleteForBooking: removed %d blocks for booking=%d", count, bookingID)
	return count, nil
}
