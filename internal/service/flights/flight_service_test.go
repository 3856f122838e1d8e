package flights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sgulyaev/aviatickets/internal/domain"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, limit, offset int) ([]domain.Flight, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightService_List_Defaults(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, 10, 100)

	ctx := context.Background()
	flights := []domain.Flight{
		{ID: 1, FlightNumber: "AFL031", FromAirport: "Санкт-Петербург Пулково", ToAirport: "Москва Шереметьево", Price: 1500},
	}

	mockRepo.On("Count", ctx).Return(1, nil).Once()
	mockRepo.On("List", ctx, 10, 0).Return(flights, nil).Once()

	// page and size below the minimum fall back to defaults
	result, err := service.List(ctx, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.PageSize)
	assert.Equal(t, 1, result.TotalElements)
	assert.Equal(t, flights, result.Items)

	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_SizeCappedAndOffset(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, 10, 100)

	ctx := context.Background()

	mockRepo.On("Count", ctx).Return(250, nil).Once()
	mockRepo.On("List", ctx, 100, 200).Return([]domain.Flight{}, nil).Once()

	result, err := service.List(ctx, 3, 500)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 100, result.PageSize)
	assert.Equal(t, 250, result.TotalElements)

	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CountError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, 10, 100)

	ctx := context.Background()
	mockRepo.On("Count", ctx).Return(0, assert.AnError).Once()

	result, err := service.List(ctx, 1, 10)

	assert.Error(t, err)
	assert.Nil(t, result)

	mockRepo.AssertExpectations(t)
}

func TestFlightService_GetByNumber(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, 10, 100)

	ctx := context.Background()
	flight := &domain.Flight{ID: 1, FlightNumber: "AFL031", Price: 1500}

	mockRepo.On("GetByNumber", ctx, "AFL031").Return(flight, nil).Once()

	got, err := service.GetByNumber(ctx, "AFL031")

	assert.NoError(t, err)
	assert.Equal(t, flight, got)

	mockRepo.AssertExpectations(t)
}

func TestFlightService_GetByNumber_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, 10, 100)

	ctx := context.Background()
	mockRepo.On("GetByNumber", ctx, "XXX999").Return(nil, domain.ErrNotFound).Once()

	got, err := service.GetByNumber(ctx, "XXX999")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)

	mockRepo.AssertExpectations(t)
}
