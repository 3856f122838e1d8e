package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgulyaev/aviatickets/internal/domain"
)

type TicketRepository interface {
	ListByUsername(ctx context.Context, username string) ([]domain.Ticket, error)
	GetByUID(ctx context.Context, ticketUID uuid.UUID) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, ticketUID uuid.UUID) error
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) ListByUsername(ctx context.Context, username string) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, ticket_uid, username, flight_number, price, status FROM ticket WHERE username = $1 ORDER BY id`,
		username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.TicketUID, &t.Username, &t.FlightNumber, &t.Price, &t.Status); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) GetByUID(ctx context.Context, ticketUID uuid.UUID) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, ticket_uid, username, flight_number, price, status FROM ticket WHERE ticket_uid = $1 LIMIT 1`,
		ticketUID)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.TicketUID, &t.Username, &t.FlightNumber, &t.Price, &t.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO ticket (ticket_uid, username, flight_number, price, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		ticket.TicketUID, ticket.Username, ticket.FlightNumber, ticket.Price, ticket.Status).
		Scan(&ticket.ID)
}

func (r *PGTicketRepository) Delete(ctx context.Context, ticketUID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM ticket WHERE ticket_uid = $1`, ticketUID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
