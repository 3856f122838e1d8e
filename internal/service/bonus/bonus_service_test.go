package bonus

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sgulyaev/aviatickets/internal/domain"
)

type MockPrivilegeRepository struct {
	mock.Mock
}

func (m *MockPrivilegeRepository) GetByUsername(ctx context.Context, username string) (*domain.Privilege, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Privilege), args.Error(1)
}

func (m *MockPrivilegeRepository) History(ctx context.Context, username string) ([]domain.PrivilegeHistory, error) {
	args := m.Called(ctx, username)
	return args.Get(0).([]domain.PrivilegeHistory), args.Error(1)
}

func (m *MockPrivilegeRepository) HistoryByTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error) {
	args := m.Called(ctx, username, ticketUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrivilegeHistory), args.Error(1)
}

func (m *MockPrivilegeRepository) AddTransaction(ctx context.Context, record *domain.PrivilegeHistory) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPrivilegeRepository) DeleteTransaction(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error) {
	args := m.Called(ctx, username, ticketUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrivilegeHistory), args.Error(1)
}

func TestBonusService_AddTransaction_Success(t *testing.T) {
	mockRepo := &MockPrivilegeRepository{}
	service := NewBonusService(mockRepo)

	ctx := context.Background()
	privilege := &domain.Privilege{ID: 7, Username: "Test Max", Status: domain.PrivilegeStatusGold, Balance: 500}
	input := AddTransactionInput{
		TicketUID:     uuid.New(),
		Date:          time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		BalanceDiff:   150,
		OperationType: domain.OperationDebitTheAccount,
	}

	mockRepo.On("GetByUsername", ctx, "Test Max").Return(privilege, nil).Once()
	mockRepo.On("AddTransaction", ctx, mock.AnythingOfType("*domain.PrivilegeHistory")).Return(nil).Once()

	record, err := service.AddTransaction(ctx, "Test Max", input)

	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, int64(7), record.PrivilegeID)
	assert.Equal(t, input.TicketUID, record.TicketUID)
	assert.Equal(t, input.Date, record.Date)
	assert.Equal(t, domain.OperationDebitTheAccount, record.OperationType)

	mockRepo.AssertExpectations(t)
}

func TestBonusService_AddTransaction_InvalidOperation(t *testing.T) {
	mockRepo := &MockPrivilegeRepository{}
	service := NewBonusService(mockRepo)

	ctx := context.Background()
	input := AddTransactionInput{
		TicketUID:     uuid.New(),
		BalanceDiff:   100,
		OperationType: "INVALID_OPERATION",
	}

	record, err := service.AddTransaction(ctx, "Test Max", input)

	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Nil(t, record)
	mockRepo.AssertNotCalled(t, "AddTransaction", mock.Anything, mock.Anything)
}

func TestBonusService_AddTransaction_UnknownUser(t *testing.T) {
	mockRepo := &MockPrivilegeRepository{}
	service := NewBonusService(mockRepo)

	ctx := context.Background()
	input := AddTransactionInput{
		TicketUID:     uuid.New(),
		BalanceDiff:   100,
		OperationType: domain.OperationFillInBalance,
	}

	mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, domain.ErrNotFound).Once()

	record, err := service.AddTransaction(ctx, "nobody", input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, record)

	mockRepo.AssertExpectations(t)
}

func TestBonusService_History(t *testing.T) {
	mockRepo := &MockPrivilegeRepository{}
	service := NewBonusService(mockRepo)

	ctx := context.Background()
	privilege := &domain.Privilege{ID: 7, Username: "Test Max"}
	history := []domain.PrivilegeHistory{
		{ID: 1, PrivilegeID: 7, TicketUID: uuid.New(), BalanceDiff: 200, OperationType: domain.OperationFillInBalance},
	}

	mockRepo.On("GetByUsername", ctx, "Test Max").Return(privilege, nil).Once()
	mockRepo.On("History", ctx, "Test Max").Return(history, nil).Once()

	got, err := service.History(ctx, "Test Max")

	assert.NoError(t, err)
	assert.Equal(t, history, got)

	mockRepo.AssertExpectations(t)
}

func TestBonusService_History_UnknownUser(t *testing.T) {
	mockRepo := &MockPrivilegeRepository{}
	service := NewBonusService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, domain.ErrNotFound).Once()

	got, err := service.History(ctx, "nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
	mockRepo.AssertNotCalled(t, "History", mock.Anything, mock.Anything)
}

func TestBonusService_RevertTransaction(t *testing.T) {
	mockRepo := &MockPrivilegeRepository{}
	service := NewBonusService(mockRepo)

	ctx := context.Background()
	ticketUID := uuid.New()
	removed := &domain.PrivilegeHistory{ID: 3, PrivilegeID: 7, TicketUID: ticketUID, BalanceDiff: 150, OperationType: domain.OperationDebitTheAccount}

	mockRepo.On("DeleteTransaction", ctx, "Test Max", ticketUID).Return(removed, nil).Once()

	got, err := service.RevertTransaction(ctx, "Test Max", ticketUID)

	assert.NoError(t, err)
	assert.Equal(t, removed, got)

	mockRepo.AssertExpectations(t)
}
