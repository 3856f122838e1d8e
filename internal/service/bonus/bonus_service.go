package bonus

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sgulyaev/aviatickets/internal/domain"
	"github.com/sgulyaev/aviatickets/internal/repository"
)

var ErrInvalidOperation = errors.New("invalid operation type")

type BonusUseCase interface {
	GetByUsername(ctx context.Context, username string) (*domain.Privilege, error)
	History(ctx context.Context, username string) ([]domain.PrivilegeHistory, error)
	HistoryByTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error)
	AddTransaction(ctx context.Context, username string, input AddTransactionInput) (*domain.PrivilegeHistory, error)
	RevertTransaction(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error)
}

type AddTransactionInput struct {
	TicketUID     uuid.UUID            `json:"ticket_uid"`
	Date          time.Time            `json:"datetime"`
	BalanceDiff   int                  `json:"balance_diff"`
	OperationType domain.OperationType `json:"operation_type"`
}

type BonusService struct {
	repo repository.PrivilegeRepository
}

func NewBonusService(repo repository.PrivilegeRepository) *BonusService {
	return &BonusService{repo: repo}
}

func (s *BonusService) GetByUsername(ctx context.Context, username string) (*domain.Privilege, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *BonusService) History(ctx context.Context, username string) ([]domain.PrivilegeHistory, error) {
	if _, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, username)
}

func (s *BonusService) HistoryByTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error) {
	return s.repo.HistoryByTicket(ctx, username, ticketUID)
}

// AddTransaction appends a balance transaction to the user's account.
// FILL_IN_BALANCE raises the balance by the diff, DEBIT_THE_ACCOUNT lowers it.
func (s *BonusService) AddTransaction(ctx context.Context, username string, input AddTransactionInput) (*domain.PrivilegeHistory, error) {
	if !input.OperationType.Valid() {
		return nil, ErrInvalidOperation
	}

	privilege, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	record := &domain.PrivilegeHistory{
		PrivilegeID:   privilege.ID,
		TicketUID:     input.TicketUID,
		Date:          date,
		BalanceDiff:   input.BalanceDiff,
		OperationType: input.OperationType,
	}
	if err := s.repo.AddTransaction(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// RevertTransaction drops the transaction for the ticket and restores the
// balance it changed. Cancelling a ticket refunds spent bonuses this way.
func (s *BonusService) RevertTransaction(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error) {
	return s.repo.DeleteTransaction(ctx, username, ticketUID)
}

var _ BonusUseCase = (*BonusService)(nil)
