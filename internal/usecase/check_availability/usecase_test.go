package check_availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

type mockBlockRepo struct {
	overlapping map[int64][]*domain.AvailabilityBlock
	sweepErr    error
}

func (m *mockBlockRepo) ListOverlapping(_ context.Context, vehicleID int64, _ time.Time, _, _ types.TimeString) ([]*domain.AvailabilityBlock, error) {
	return m.overlapping[vehicleID], nil
}

func (m *mockBlockRepo) DeleteExpiredHolds(_ context.Context) (int64, error) {
	return 0, m.sweepErr
}

type mockVehicleRepo struct {
	candidates []*domain.Vehicle
}

func (m *mockVehicleRepo) ListCandidates(_ context.Context, _ int, _ *string) ([]*domain.Vehicle, error) {
	return m.candidates, nil
}

type mockBlackoutRepo struct {
	blackout *domain.BlackoutDate
}

func (m *mockBlackoutRepo) FindForDate(_ context.Context, _ time.Time, _ *string) (*domain.BlackoutDate, error) {
	return m.blackout, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(blocks *mockBlockRepo, vehicles *mockVehicleRepo, blackouts *mockBlackoutRepo) *UseCase {
	uc := NewUseCase(blocks, vehicles, blackouts, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func fleet(capacities ...int) []*domain.Vehicle {
	vehicles := make([]*domain.Vehicle, 0, len(capacities))
	for i, c := range capacities {
		vehicles = append(vehicles, &domain.Vehicle{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("Van-%d", c),
			Capacity: c,
			Status:   domain.VehicleAvailable,
		})
	}
	return vehicles
}

func validRequest() *Request {
	return &Request{
		Date:          time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		DurationHours: 4,
		PartySize:     3,
	}
}

func TestExecute_BestFitPicksSmallestFreeVehicle(t *testing.T) {
	vehicles := &mockVehicleRepo{candidates: fleet(4, 6, 14)}
	uc := newTestUseCase(&mockBlockRepo{}, vehicles, &mockBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	require.NotNil(t, resp.VehicleID)
	assert.Equal(t, int64(1), *resp.VehicleID)
	assert.Equal(t, "Van-4", *resp.VehicleName)
}

func TestExecute_SkipsBusyVehicle(t *testing.T) {
	blocks := &mockBlockRepo{overlapping: map[int64][]*domain.AvailabilityBlock{
		1: {{ID: 100, VehicleID: 1, StartTime: "09:00", EndTime: "13:00", Type: domain.BlockBooking}},
	}}
	vehicles := &mockVehicleRepo{candidates: fleet(4, 6)}
	uc := newTestUseCase(blocks, vehicles, &mockBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	require.NotNil(t, resp.VehicleID)
	assert.Equal(t, int64(2), *resp.VehicleID)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_AllVehiclesBooked(t *testing.T) {
	blocks := &mockBlockRepo{overlapping: map[int64][]*domain.AvailabilityBlock{
		1: {{Type: domain.BlockBooking}},
		2: {{Type: domain.BlockHold}},
	}}
	vehicles := &mockVehicleRepo{candidates: fleet(4, 6)}
	uc := newTestUseCase(blocks, vehicles, &mockBlackoutRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Nil(t, resp.VehicleID)
	require.NotEmpty(t, resp.Conflicts)
	assert.Equal(t, domain.MsgAllBooked, resp.Conflicts[0])
	assert.Contains(t, resp.Conflicts, "Van-4: booking")
	assert.Contains(t, resp.Conflicts, "Van-6: hold")
}

func TestExecute_NoCapacity(t *testing.T) {
	uc := newTestUseCase(&mockBlockRepo{}, &mockVehicleRepo{}, &mockBlackoutRepo{})

	req := validRequest()
	req.PartySize = 40

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "No vehicles available with capacity for 40 guests", resp.Conflicts[0])
}

func TestExecute_OperatingHours(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		duration  int
		available bool
	}{
		{name: "starts at opening", start: "08:00", duration: 4, available: true},
		{name: "before opening", start: "07:59", duration: 4, available: false},
		{name: "ends exactly at closing", start: "18:00", duration: 4, available: true},
		{name: "ends past closing", start: "18:30", duration: 4, available: false},
		{name: "overflows past midnight", start: "21:00", duration: 24, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockBlockRepo{}, &mockVehicleRepo{candidates: fleet(8)}, &mockBlackoutRepo{})

			req := validRequest()
			req.StartTime = tt.start
			req.DurationHours = tt.duration

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tt.available, resp.Available)
			if !tt.available {
				require.Len(t, resp.Conflicts, 1)
				assert.Equal(t, domain.MsgOutsideHours, resp.Conflicts[0])
			}
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&mockBlockRepo{}, &mockVehicleRepo{candidates: fleet(8)}, &mockBlackoutRepo{})

	req := validRequest()
	req.Date = time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, domain.MsgDateInPast, resp.Conflicts[0])
}

func TestExecute_SameDayIsNotPast(t *testing.T) {
	uc := newTestUseCase(&mockBlockRepo{}, &mockVehicleRepo{candidates: fleet(8)}, &mockBlackoutRepo{})

	// Провайдер времени зафиксирован на 2026-06-01 12:00: запрос на сегодня
	// проходит независимо от времени суток
	req := validRequest()
	req.Date = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_BlackoutReasonVerbatim(t *testing.T) {
	blackouts := &mockBlackoutRepo{blackout: &domain.BlackoutDate{
		ID:     7,
		Reason: "Annual fleet inspection",
	}}
	uc := newTestUseCase(&mockBlockRepo{}, &mockVehicleRepo{candidates: fleet(8)}, blackouts)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "Annual fleet inspection", resp.Conflicts[0])
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBlockRepo{}, &mockVehicleRepo{}, &mockBlackoutRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "duration too short", mutate: func(r *Request) { r.DurationHours = 3 }},
		{name: "duration too long", mutate: func(r *Request) { r.DurationHours = 25 }},
		{name: "party size zero", mutate: func(r *Request) { r.PartySize = 0 }},
		{name: "party size too large", mutate: func(r *Request) { r.PartySize = 51 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
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
