package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	"github.com/vinetours/VT-FleetService/internal/integrations/complianceservice"
	"github.com/vinetours/VT-FleetService/internal/service/holds"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// UseCase use case подтверждения бронирования: hold конвертируется в
// booking-блок после обязательной проверки соответствия. Конвертация
// выполняется в сериализуемой транзакции; буферы и котировка - best-effort
// шаги после фиксации и не влияют на результат.
type UseCase struct {
	blockRepo        BlockRepository
	holdService      HoldService
	bufferService    BufferService
	complianceClient ComplianceClient
	pricingClient    PricingClient
	txManager        TxManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepository BlockRepository,
	holdService HoldService,
	bufferService BufferService,
	complianceClient ComplianceClient,
	pricingClient PricingClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:        blockRepository,
		holdService:      holdService,
		bufferService:    bufferService,
		complianceClient: complianceClient,
		pricingClient:    pricingClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: hold=%d, booking=%d", req.HoldID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем hold: нужны автомобиль и окно для проверки соответствия
	hold, err := uc.blockRepo.GetByID(ctx, req.HoldID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			uc.logger.Warn("ConfirmBooking: hold id=%d not found", req.HoldID)
			return nil, ErrHoldNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get hold id=%d: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: failed to get hold: %v", ErrInternal, err)
	}

	// Истекший hold эквивалентен отсутствующему, даже если sweep его
	// еще не удалил
	if !hold.CanConvert(uc.timeProvider.Now()) {
		uc.logger.Warn("ConfirmBooking: block id=%d is not a live hold (type=%s)", hold.ID, hold.Type)
		return nil, ErrHoldNotFound
	}

	// 3. Обязательная проверка соответствия. Недоступность сервиса
	// блокирует подтверждение: без вердикта конвертировать нельзя.
	verdict, err := uc.complianceClient.CheckVehicle(ctx, hold.VehicleID, hold.Date)
	if err != nil {
		uc.logger.Error("ConfirmBooking: compliance check failed for vehicle=%d: %v", hold.VehicleID, err)
		return nil, fmt.Errorf("%w: compliance check failed: %v", ErrInternal, err)
	}

	if verdict.HasCritical() {
		messages := verdict.CriticalMessages()
		uc.logger.Warn("ConfirmBooking: vehicle=%d blocked by compliance: %v", hold.VehicleID, messages)
		return nil, fmt.Errorf("%w: %v", ErrComplianceViolation, messages)
	}

	// 4. Конвертируем hold в booking-блок в сериализуемой транзакции
	var converted *domain.AvailabilityBlock
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, convErr := uc.holdService.ConvertToBooking(txCtx, req.HoldID, req.BookingID)
		if convErr != nil {
			return convErr
		}
		converted = b
		return nil
	})
	if err != nil {
		if errors.Is(err, holds.ErrHoldNotFound) {
			return nil, ErrHoldNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to convert hold id=%d: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: failed to convert hold: %v", ErrInternal, err)
	}

	// 5. Буферы на разворот - best-effort после фиксации
	uc.bufferService.CreateBuffers(ctx, converted.VehicleID, converted.Date,
		converted.StartTime, converted.EndTime, req.BookingID)

	// 6. Эхо котировки - best-effort, с graceful degradation
	quote, err := uc.pricingClient.CalculatePricingWithGracefulDegradation(
		ctx, converted.Date, req.PartySize, durationHours(converted.StartTime, converted.EndTime))
	if err != nil {
		uc.logger.Warn("ConfirmBooking: pricing quote unavailable for booking=%d: %v", req.BookingID, err)
		quote = nil
	}

	uc.logger.Info("ConfirmBooking: hold=%d confirmed as booking block id=%d (booking=%d)",
		req.HoldID, converted.ID, req.BookingID)

	return &Response{
		BlockID:    converted.ID,
		VehicleID:  converted.VehicleID,
		BookingID:  req.BookingID,
		Date:       converted.Date,
		StartTime:  converted.StartTime,
		EndTime:    converted.EndTime,
		Violations: warningMessages(verdict),
		Quote:      quote,
	}, nil
}

// durationHours вычисляет длительность окна блока в часах. Времена блока
// хранятся в каноническом виде HH:MM, ошибка разбора здесь невозможна.
func durationHours(start, end types.TimeString) int {
	startMinutes, _ := start.Minutes()
	endMinutes, _ := end.Minutes()
	return (endMinutes - startMinutes) / 60
}

// warningMessages возвращает некритические нарушения: они не блокируют
// подтверждение, но отдаются вызывающей стороне для показа оператору
func warningMessages(verdict *complianceservice.Verdict) []string {
	messages := make([]string, 0)
	for _, v := range verdict.Violations {
		if v.Severity == complianceservice.SeverityWarning {
			messages = append(messages, v.Message)
		}
	}
	return messages
}
