package buffers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinetours/VT-FleetService/internal/domain"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

type mockBlockRepo struct {
	created []*domain.AvailabilityBlock
	err     error
}

func (m *mockBlockRepo) Create(_ context.Context, b *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, b)
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func TestCreateBuffers_BothSides(t *testing.T) {
	repo := &mockBlockRepo{}
	svc := NewService(repo, 60, nopLogger{})

	svc.CreateBuffers(context.Background(), 1, testDate, "10:00", "14:00", 42)

	require.Len(t, repo.created, 2)

	pre, post := repo.created[0], repo.created[1]
	assert.Equal(t, types.TimeString("09:00"), pre.StartTime)
	assert.Equal(t, types.TimeString("10:00"), pre.EndTime)
	assert.Equal(t, types.TimeString("14:00"), post.StartTime)
	assert.Equal(t, types.TimeString("15:00"), post.EndTime)

	for _, b := range repo.created {
		assert.Equal(t, domain.BlockBuffer, b.Type)
		require.NotNil(t, b.BookingID)
		assert.Equal(t, int64(42), *b.BookingID)
	}
}

func TestCreateBuffers_PreBufferSkippedAtOpening(t *testing.T) {
	repo := &mockBlockRepo{}
	svc := NewService(repo, 60, nopLogger{})

	// Тур с 08:00: пре-буфер лег бы на 07:00-08:00, вне рабочих часов
	svc.CreateBuffers(context.Background(), 1, testDate, "08:00", "12:00", 42)

	require.Len(t, repo.created, 1)
	assert.Equal(t, types.TimeString("12:00"), repo.created[0].StartTime)
	assert.Equal(t, types.TimeString("13:00"), repo.created[0].EndTime)
}

func TestCreateBuffers_PostBufferSkippedAtClosing(t *testing.T) {
	repo := &mockBlockRepo{}
	svc := NewService(repo, 60, nopLogger{})

	// Тур до 22:00: пост-буфер лег бы на 22:00-23:00, вне рабочих часов
	svc.CreateBuffers(context.Background(), 1, testDate, "18:00", "22:00", 42)

	require.Len(t, repo.created, 1)
	assert.Equal(t, types.TimeString("17:00"), repo.created[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), repo.created[0].EndTime)
}

func TestCreateBuffers_ConflictSwallowed(t *testing.T) {
	repo := &mockBlockRepo{err: blockRepo.ErrSlotConflict}
	svc := NewService(repo, 60, nopLogger{})

	// Соседний блок уже занимает время буфера: бронирование не страдает
	svc.CreateBuffers(context.Background(), 1, testDate, "10:00", "14:00", 42)

	assert.Empty(t, repo.created)
}

func TestCreateBuffers_InfraErrorSwallowed(t *testing.T) {
	repo := &mockBlockRepo{err: errors.New("connection reset")}
	svc := NewService(repo, 60, nopLogger{})

	svc.CreateBuffers(context.Background(), 1, testDate, "10:00", "14:00", 42)

	assert.Empty(t, repo.created)
}
