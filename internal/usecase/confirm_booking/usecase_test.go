package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	"github.com/vinetours/VT-FleetService/internal/integrations/complianceservice"
	"github.com/vinetours/VT-FleetService/internal/integrations/pricingservice"
	"github.com/vinetours/VT-FleetService/internal/service/holds"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

type mockBlockRepo struct {
	hold *domain.AvailabilityBlock
	err  error
}

func (m *mockBlockRepo) GetByID(_ context.Context, _ int64) (*domain.AvailabilityBlock, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hold, nil
}

type mockHoldService struct {
	converted *domain.AvailabilityBlock
	err       error
}

func (m *mockHoldService) ConvertToBooking(_ context.Context, _, _ int64) (*domain.AvailabilityBlock, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.converted, nil
}

type mockBufferService struct {
	calls int
}

func (m *mockBufferService) CreateBuffers(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, _ int64) {
	m.calls++
}

type mockComplianceClient struct {
	verdict *complianceservice.Verdict
	err     error
}

func (m *mockComplianceClient) CheckVehicle(_ context.Context, _ int64, _ time.Time) (*complianceservice.Verdict, error) {
	return m.verdict, m.err
}

type mockPricingClient struct {
	quote *pricingservice.Quote
	err   error

	gotPartySize     int
	gotDurationHours int
}

func (m *mockPricingClient) CalculatePricingWithGracefulDegradation(_ context.Context, _ time.Time, partySize, durationHours int) (*pricingservice.Quote, error) {
	m.gotPartySize = partySize
	m.gotDurationHours = durationHours
	return m.quote, m.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func liveHold() *domain.AvailabilityBlock {
	expiresAt := time.Now().Add(10 * time.Minute)
	return &domain.AvailabilityBlock{
		ID:        1,
		VehicleID: 5,
		Date:      time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "14:00",
		Type:      domain.BlockHold,
		ExpiresAt: &expiresAt,
	}
}

func convertedBlock() *domain.AvailabilityBlock {
	bookingID := int64(42)
	b := liveHold()
	b.Type = domain.BlockBooking
	b.BookingID = &bookingID
	b.ExpiresAt = nil
	return b
}

func compliantVerdict() *complianceservice.Verdict {
	return &complianceservice.Verdict{Compliant: true}
}

type fixture struct {
	blocks     *mockBlockRepo
	holds      *mockHoldService
	buffers    *mockBufferService
	compliance *mockComplianceClient
	pricing    *mockPricingClient
}

func newFixture() *fixture {
	return &fixture{
		blocks:     &mockBlockRepo{hold: liveHold()},
		holds:      &mockHoldService{converted: convertedBlock()},
		buffers:    &mockBufferService{},
		compliance: &mockComplianceClient{verdict: compliantVerdict()},
		pricing:    &mockPricingClient{quote: &pricingservice.Quote{TotalPrice: 1200}},
	}
}

func (f *fixture) useCase() *UseCase {
	return NewUseCase(f.blocks, f.holds, f.buffers, f.compliance, f.pricing,
		passthroughTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{HoldID: 1, BookingID: 42, PartySize: 4}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, int64(5), resp.VehicleID)
	assert.Equal(t, 1, f.buffers.calls)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, float64(1200), resp.Quote.TotalPrice)
}

func TestExecute_PricingReceivesWindowDuration(t *testing.T) {
	f := newFixture()
	f.holds.converted.StartTime = "09:00"
	f.holds.converted.EndTime = "17:00"

	_, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Длительность считается по окну booking-блока, не по запросу
	assert.Equal(t, 8, f.pricing.gotDurationHours)
	assert.Equal(t, 4, f.pricing.gotPartySize)
}

func TestExecute_CriticalComplianceViolationBlocks(t *testing.T) {
	f := newFixture()
	f.compliance.verdict = &complianceservice.Verdict{
		Violations: []complianceservice.Violation{
			{Code: "LICENSE_EXPIRED", Severity: complianceservice.SeverityCritical, Message: "driver license expired"},
		},
	}

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrComplianceViolation)
	assert.Equal(t, 0, f.buffers.calls)
}

func TestExecute_WarningsDoNotBlock(t *testing.T) {
	f := newFixture()
	f.compliance.verdict = &complianceservice.Verdict{
		Violations: []complianceservice.Violation{
			{Code: "INSPECTION_DUE", Severity: complianceservice.SeverityWarning, Message: "inspection due in 7 days"},
		},
	}

	resp, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"inspection due in 7 days"}, resp.Violations)
}

func TestExecute_ComplianceServiceDownBlocks(t *testing.T) {
	f := newFixture()
	f.compliance.verdict = nil
	f.compliance.err = complianceservice.ErrInternal

	// Проверка соответствия обязательна: без вердикта конвертации нет
	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, f.buffers.calls)
}

func TestExecute_ExpiredHold(t *testing.T) {
	f := newFixture()
	expired := time.Now().Add(-time.Minute)
	f.blocks.hold.ExpiresAt = &expired

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestExecute_HoldMissing(t *testing.T) {
	f := newFixture()
	f.blocks.hold = nil
	f.blocks.err = blockRepo.ErrBlockNotFound

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestExecute_HoldVanishedDuringConversion(t *testing.T) {
	f := newFixture()
	f.holds.converted = nil
	f.holds.err = holds.ErrHoldNotFound

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestExecute_PricingDegradationDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.pricing.quote = nil
	f.pricing.err = pricingservice.ErrServiceDegraded

	resp, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.Quote)
	assert.Equal(t, 1, f.buffers.calls)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.useCase().Execute(context.Background(), &Request{HoldID: 0, BookingID: 42, PartySize: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_WrongBlockType(t *testing.T) {
	f := newFixture()
	f.blocks.hold = convertedBlock()

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHoldNotFound)
}
