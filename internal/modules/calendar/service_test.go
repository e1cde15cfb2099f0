package calendar

import (
	"context"
	"testing"
	"time"

	"bridalbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) Create(ctx context.Context, b *domain.CalendarBlock) error {
	args := m.Called(ctx, b)
	if b != nil && b.ID == "" {
		b.ID = "blk-999"
	}
	return args.Error(0)
}

func (m *MockBlockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockRepository) ListRange(ctx context.Context, from, to time.Time, locationID string) ([]domain.CalendarBlock, error) {
	args := m.Called(ctx, from, to, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalendarBlock), args.Error(1)
}

func (m *MockBlockRepository) AnyCovering(ctx context.Context, t time.Time, locationID string) (bool, error) {
	args := m.Called(ctx, t, locationID)
	return args.Bool(0), args.Error(1)
}

type MockSlotChecker struct {
	mock.Mock
}

func (m *MockSlotChecker) SlotTaken(ctx context.Context, locationID string, date time.Time, timeOfDay, excludeID string) (bool, error) {
	args := m.Called(ctx, locationID, date, timeOfDay, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestService_CreateBlock_InvalidRange(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)
	service := NewService(mockBlocks, mockSlots)

	start := time.Date(2025, 7, 14, 13, 0, 0, 0, time.UTC)
	_, err := service.CreateBlock(context.Background(), CreateBlockRequest{
		StartAt: start,
		EndAt:   start.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
	mockBlocks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBlock_Success(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	mockBlocks.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(mockBlocks, mockSlots)

	start := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	b, err := service.CreateBlock(context.Background(), CreateBlockRequest{
		StartAt:    start,
		EndAt:      start.Add(4 * time.Hour),
		LocationID: "downtown",
		Reason:     "Chair refit",
	})

	assert.NoError(t, err)
	assert.Equal(t, "blk-999", b.ID)
	assert.Equal(t, "downtown", b.LocationID)
	mockBlocks.AssertExpectations(t)
}

func TestService_RemoveBlock_NotFound(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	mockBlocks.On("Delete", mock.Anything, "blk-404").Return(false, nil)
	service := NewService(mockBlocks, mockSlots)

	err := service.RemoveBlock(context.Background(), "blk-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_IsAvailable_BlockedSlot(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	date := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	mockBlocks.On("AnyCovering", mock.Anything, instant, "downtown").Return(true, nil)

	service := NewService(mockBlocks, mockSlots)

	available, err := service.IsAvailable(context.Background(), date, "10:00", "downtown")

	assert.NoError(t, err)
	assert.False(t, available)
	// a covering block short-circuits; the booking lookup never runs
	mockSlots.AssertNotCalled(t, "SlotTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_IsAvailable_TakenSlot(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mockBlocks.On("AnyCovering", mock.Anything, instant, "downtown").Return(false, nil)
	mockSlots.On("SlotTaken", mock.Anything, "downtown", date, "10:00", "").Return(true, nil)

	service := NewService(mockBlocks, mockSlots)

	available, err := service.IsAvailable(context.Background(), date, "10:00", "downtown")

	assert.NoError(t, err)
	assert.False(t, available)
}

func TestService_IsAvailable_FreeSlot(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mockBlocks.On("AnyCovering", mock.Anything, instant, "downtown").Return(false, nil)
	mockSlots.On("SlotTaken", mock.Anything, "downtown", date, "10:00", "").Return(false, nil)

	service := NewService(mockBlocks, mockSlots)

	available, err := service.IsAvailable(context.Background(), date, "10:00", "downtown")

	assert.NoError(t, err)
	assert.True(t, available)
}

func TestService_IsAvailableExcluding_PassesBookingID(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	instant := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mockBlocks.On("AnyCovering", mock.Anything, instant, "downtown").Return(false, nil)
	mockSlots.On("SlotTaken", mock.Anything, "downtown", date, "10:00", "bk-1").Return(false, nil)

	service := NewService(mockBlocks, mockSlots)

	available, err := service.IsAvailableExcluding(context.Background(), date, "10:00", "downtown", "bk-1")

	assert.NoError(t, err)
	assert.True(t, available)
	mockSlots.AssertExpectations(t)
}

func TestService_IsAvailable_BadTime(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)
	service := NewService(mockBlocks, mockSlots)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.IsAvailable(context.Background(), date, "noon", "downtown")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListBlocks(t *testing.T) {
	mockBlocks := new(MockBlockRepository)
	mockSlots := new(MockSlotChecker)

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	want := []domain.CalendarBlock{{ID: "blk-1", StartAt: from, EndAt: to}}
	mockBlocks.On("ListRange", mock.Anything, from, to, "downtown").Return(want, nil)

	service := NewService(mockBlocks, mockSlots)

	got, err := service.ListBlocks(context.Background(), from, to, "downtown")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
