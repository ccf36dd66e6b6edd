package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
)

type mockBlockRepo struct {
	blocks  map[int64]*domain.AvailabilityBlock
	byDate  []*domain.AvailabilityBlock
	deleted []int64
}

func newMockBlockRepo(blocks ...*domain.AvailabilityBlock) *mockBlockRepo {
	m := &mockBlockRepo{blocks: map[int64]*domain.AvailabilityBlock{}}
	for _, b := range blocks {
		m.blocks[b.ID] = b
	}
	return m
}

func (m *mockBlockRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityBlock, error) {
	b, ok := m.blocks[id]
	if !ok {
		return nil, blockRepo.ErrBlockNotFound
	}
	return b, nil
}

func (m *mockBlockRepo) ListForVehicleOnDate(_ context.Context, _ int64, _ time.Time) ([]*domain.AvailabilityBlock, error) {
	return m.byDate, nil
}

func (m *mockBlockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.blocks[id]; !ok {
		return blockRepo.ErrBlockNotFound
	}
	delete(m.blocks, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockBlockRepo) DeleteForBooking(_ context.Context, bookingID int64) (int64, error) {
	var count int64
	for id, b := range m.blocks {
		if b.BookingID != nil && *b.BookingID == bookingID {
			delete(m.blocks, id)
			count++
		}
	}
	return count, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDelete_AllowedTypes(t *testing.T) {
	repo := newMockBlockRepo(
		&domain.AvailabilityBlock{ID: 1, Type: domain.BlockMaintenance},
		&domain.AvailabilityBlock{ID: 2, Type: domain.BlockHold},
	)
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Empty(t, repo.blocks)
}

func TestDelete_RefusesBookingAndBuffer(t *testing.T) {
	repo := newMockBlockRepo(
		&domain.AvailabilityBlock{ID: 1, Type: domain.BlockBooking},
		&domain.AvailabilityBlock{ID: 2, Type: domain.BlockBuffer},
	)
	svc := NewService(repo, nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrOperationNotAllowed)
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrOperationNotAllowed)
	assert.Len(t, repo.blocks, 2)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newMockBlockRepo(), nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 999), ErrBlockNotFound)
}

func TestDeleteForBooking_RemovesBlockAndBuffers(t *testing.T) {
	bookingID := int64(42)
	repo := newMockBlockRepo(
		&domain.AvailabilityBlock{ID: 1, Type: domain.BlockBooking, BookingID: &bookingID},
		&domain.AvailabilityBlock{ID: 2, Type: domain.BlockBuffer, BookingID: &bookingID},
		&domain.AvailabilityBlock{ID: 3, Type: domain.BlockBuffer, BookingID: &bookingID},
		&domain.AvailabilityBlock{ID: 4, Type: domain.BlockMaintenance},
	)
	svc := NewService(repo, nopLogger{})

	count, err := svc.DeleteForBooking(context.Background(), bookingID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), count)
	assert.Len(t, repo.blocks, 1)
	assert.Contains(t, repo.blocks, int64(4))
}

func TestDeleteForBooking_NothingToDelete(t *testing.T) {
	svc := NewService(newMockBlockRepo(), nopLogger{})

	_, err := svc.DeleteForBooking(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestGetForVehicleOnDate(t *testing.T) {
	repo := newMockBlockRepo()
	repo.byDate = []*domain.AvailabilityBlock{
		{ID: 1, Type: domain.BlockBooking, StartTime: "10:00", EndTime: "14:00"},
		{ID: 2, Type: domain.BlockBuffer, StartTime: "14:00", EndTime: "15:00"},
	}
	svc := NewService(repo, nopLogger{})

	list, err := svc.GetForVehicleOnDate(context.Background(), 1, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
