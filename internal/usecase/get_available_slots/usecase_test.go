package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/vinetours/VT-FleetService/internal/usecase/check_availability"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

type mockChecker struct {
	fn    func(req *checkAvailability.Request) (*checkAvailability.Response, error)
	calls []types.TimeString
}

func (m *mockChecker) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	m.calls = append(m.calls, req.StartTime)
	if m.fn != nil {
		return m.fn(req)
	}
	return &checkAvailability.Response{Available: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Date:          time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		DurationHours: 4,
		PartySize:     3,
	}
}

func TestExecute_FourHourTourGeneratesElevenSlots(t *testing.T) {
	checker := &mockChecker{}
	uc := NewUseCase(checker, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// От 08:00 до 18:00 включительно с шагом в час
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[10].StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[10].EndTime)
}

func TestExecute_FullDayTourGeneratesSingleSlot(t *testing.T) {
	checker := &mockChecker{}
	uc := NewUseCase(checker, nopLogger{})

	req := validRequest()
	req.DurationHours = 14

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[0].EndTime)
}

func TestExecute_SlotsCheckedIndependently(t *testing.T) {
	vehicleID := int64(3)
	vehicleName := "Coach-14"

	// Занято все, кроме утреннего слота
	checker := &mockChecker{fn: func(req *checkAvailability.Request) (*checkAvailability.Response, error) {
		if req.StartTime == "08:00" {
			return &checkAvailability.Response{
				Available:   true,
				VehicleID:   &vehicleID,
				VehicleName: &vehicleName,
			}, nil
		}
		return &checkAvailability.Response{
			Available: false,
			Conflicts: []string{"All suitable vehicles are booked for this time slot"},
		}, nil
	}}
	uc := NewUseCase(checker, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 11)
	assert.Len(t, checker.calls, 11)

	assert.True(t, resp.Slots[0].Available)
	require.NotNil(t, resp.Slots[0].VehicleID)
	assert.Equal(t, vehicleID, *resp.Slots[0].VehicleID)

	for _, slot := range resp.Slots[1:] {
		assert.False(t, slot.Available)
		assert.Nil(t, slot.VehicleID)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockChecker{}, nopLogger{})

	req := validRequest()
	req.DurationHours = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
