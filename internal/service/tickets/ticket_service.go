package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sgulyaev/aviatickets/internal/domain"
	"github.com/sgulyaev/aviatickets/internal/repository"
)

// ErrValidation marks bad input, as opposed to backend failures.
var ErrValidation = errors.New("validation failed")

type TicketUseCase interface {
	ListByUsername(ctx context.Context, username string) ([]domain.Ticket, error)
	GetByUID(ctx context.Context, ticketUID uuid.UUID) (*domain.Ticket, error)
	Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error)
	Delete(ctx context.Context, ticketUID uuid.UUID) error
}

type CreateTicketInput struct {
	TicketUID    uuid.UUID `json:"ticketUid"`
	Username     string    `json:"username"`
	FlightNumber string    `json:"flightNumber"`
	Price        int       `json:"price"`
}

type TicketService struct {
	repo repository.TicketRepository
}

func NewTicketService(repo repository.TicketRepository) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) ListByUsername(ctx context.Context, username string) ([]domain.Ticket, error) {
	return s.repo.ListByUsername(ctx, username)
}

func (s *TicketService) GetByUID(ctx context.Context, ticketUID uuid.UUID) (*domain.Ticket, error) {
	return s.repo.GetByUID(ctx, ticketUID)
}

// Create stores a new PAID ticket. The schema does not enforce ticket_uid
// uniqueness, so the collision check lives here.
func (s *TicketService) Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if input.FlightNumber == "" {
		return nil, fmt.Errorf("%w: flight number is required", ErrValidation)
	}

	existing, err := s.repo.GetByUID(ctx, input.TicketUID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ticket %s: %w", input.TicketUID, domain.ErrAlreadyExists)
	}

	ticket := &domain.Ticket{
		TicketUID:    input.TicketUID,
		Username:     input.Username,
		FlightNumber: input.FlightNumber,
		Price:        input.Price,
		Status:       domain.TicketStatusPaid,
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, ticketUID uuid.UUID) error {
	return s.repo.Delete(ctx, ticketUID)
}

var _ TicketUseCase = (*TicketService)(nil)
