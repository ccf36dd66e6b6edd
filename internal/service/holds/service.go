package holds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Service управляет жизненным циклом hold-блоков.
// Состояния: none -> held -> booked, либо held -> released (терминальное),
// либо held -> expired -> released (терминальное, через sweep).
type Service struct {
	blockRepo    BlockRepository
	holdTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса hold'ов
func NewService(blockRepo BlockRepository, holdTTL time.Duration, logger Logger) *Service {
	return &Service{
		blockRepo:    blockRepo,
		holdTTL:      holdTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateHold создает hold-блок с expires_at = now + TTL.
// ErrSlotConflict стора пробрасывается без изменений - вызывающая сторона
// должна повторить попытку с другим автомобилем или окном.
func (s *Service) CreateHold(
	ctx context.Context,
	vehicleID int64,
	date time.Time,
	start, end types.TimeString,
	brandID *string,
) (*domain.AvailabilityBlock, error) {
	expiresAt := s.timeProvider.Now().Add(s.holdTTL)

	hold := &domain.AvailabilityBlock{
		VehicleID: vehicleID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Type:      domain.BlockHold,
		BrandID:   brandID,
		ExpiresAt: &expiresAt,
	}

	created, err := s.blockRepo.Create(ctx, hold)
	if err != nil {
		if errors.Is(err, blockRepo.ErrSlotConflict) {
			s.logger.Warn("CreateHold: slot conflict for vehicle=%d date=%s [%s, %s)",
				vehicleID, date.Format(domain.DateFormat), start, end)
			return nil, err
		}
		s.logger.Error("CreateHold: repository error for vehicle=%d: %v", vehicleID, err)
		return nil, err
	}

	s.logger.Info("CreateHold: created hold id=%d vehicle=%d date=%s [%s, %s) expires_at=%s",
		created.ID, vehicleID, date.Format(domain.DateFormat), start, end,
		expiresAt.Format(time.RFC3339))

	return created, nil
}

// ConvertToBooking превращает hold в подтвержденный booking-блок: тип
// меняется, booking_id проставляется, expiry очищается. Если hold уже не
// существует (истек, отпущен или уже конвертирован), возвращает
// ErrHoldNotFound - вызывающая сторона обязана перепроверить доступность,
// а не предполагать успех.
func (s *Service) ConvertToBooking(ctx context.Context, holdID, bookingID int64) (*domain.AvailabilityBlock, error) {
	converted, err := s.blockRepo.ConvertHoldToBooking(ctx, holdID, bookingID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("ConvertToBooking: hold id=%d no longer exists", holdID)
			return nil, ErrHoldNotFound
		}
		s.logger.Error("ConvertToBooking: repository error for hold id=%d: %v", holdID, err)
		return nil, fmt.Errorf("%w: ConvertToBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ConvertToBooking: hold id=%d converted to booking block, booking_id=%d",
		holdID, bookingID)

	return converted, nil
}

// Release удаляет hold при отказе от checkout, освобождая слот немедленно
// вместо ожидания истечения TTL. Удалять можно только hold-блоки.
func (s *Service) Release(ctx context.Context, holdID int64) error {
	b, err := s.blockRepo.GetByID(ctx, holdID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Release: hold id=%d not found", holdID)
			return ErrHoldNotFound
		}
		s.logger.Error("Release: repository error for hold id=%d: %v", holdID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	if !b.IsHold() {
		s.logger.Warn("Release: block id=%d has type=%s, refusing", holdID, b.Type)
		return ErrNotAHold
	}

	if err := s.blockRepo.Delete(ctx, holdID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			// Hold успел истечь между чтением и удалением - слот уже свободен
			return ErrHoldNotFound
		}
		s.logger.Error("Release: repository error for hold id=%d: %v", holdID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Release: hold id=%d released", holdID)
	return nil
}

// SweepExpired удаляет все истекшие hold'ы. Идемпотентна; вызывается
// оппортунистически перед каждой проверкой доступности, поэтому брошенный
// hold не блокирует новые запросы дольше TTL.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.blockRepo.DeleteExpiredHolds(ctx)
	if err != nil {
		s.logger.Error("SweepExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepExpired - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("SweepExpired: removed %d expired holds", count)
	}

	return count, nil
}
