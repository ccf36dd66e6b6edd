package create_maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	vehicleRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/vehicle"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

type mockBlockRepo struct {
	overlapping []*domain.AvailabilityBlock
	created     *domain.AvailabilityBlock
	createErr   error
}

func (m *mockBlockRepo) Create(_ context.Context, b *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *b
	created.ID = 10
	m.created = &created
	return &created, nil
}

func (m *mockBlockRepo) ListOverlapping(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString) ([]*domain.AvailabilityBlock, error) {
	return m.overlapping, nil
}

type mockVehicleRepo struct {
	err error
}

func (m *mockVehicleRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Vehicle{ID: id, Name: "Van-8", Capacity: 8, Status: domain.VehicleAvailable}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		VehicleID: 1,
		Date:      time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "12:00",
		Reason:    "замена тормозных колодок",
	}
}

func TestExecute_Success(t *testing.T) {
	blocks := &mockBlockRepo{}
	uc := NewUseCase(blocks, &mockVehicleRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.BlockID)
	require.NotNil(t, blocks.created)
	assert.Equal(t, domain.BlockMaintenance, blocks.created.Type)
	require.NotNil(t, blocks.created.Notes)
	assert.Equal(t, "замена тормозных колодок", *blocks.created.Notes)
}

func TestExecute_RejectsBookingOverlap(t *testing.T) {
	blocks := &mockBlockRepo{overlapping: []*domain.AvailabilityBlock{
		{ID: 5, Type: domain.BlockBooking, StartTime: "10:00", EndTime: "14:00"},
	}}
	uc := NewUseCase(blocks, &mockVehicleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Nil(t, blocks.created)
}

func TestExecute_HoldOverlapBecomesSlotConflict(t *testing.T) {
	// Hold не блокируется предварительной проверкой; гонку ловит exclusion
	// constraint стора и она отдается наверх как конфликт слота
	blocks := &mockBlockRepo{
		overlapping: []*domain.AvailabilityBlock{
			{ID: 6, Type: domain.BlockHold, StartTime: "10:00", EndTime: "14:00"},
		},
		createErr: blockRepo.ErrSlotConflict,
	}
	uc := NewUseCase(blocks, &mockVehicleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, blockRepo.ErrSlotConflict)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := NewUseCase(&mockBlockRepo{}, &mockVehicleRepo{err: vehicleRepo.ErrVehicleNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBlockRepo{}, &mockVehicleRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing reason", mutate: func(r *Request) { r.Reason = "" }},
		{name: "start after end", mutate: func(r *Request) { r.StartTime = "13:00" }},
		{name: "equal start and end", mutate: func(r *Request) { r.StartTime = "12:00" }},
		{name: "bad time format", mutate: func(r *Request) { r.StartTime = "9am" }},
		{name: "missing vehicle", mutate: func(r *Request) { r.VehicleID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
