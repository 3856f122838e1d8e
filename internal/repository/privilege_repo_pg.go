package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgulyaev/aviatickets/internal/domain"
)

type PrivilegeRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Privilege, error)
	History(ctx context.Context, username string) ([]domain.PrivilegeHistory, error)
	HistoryByTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error)
	AddTransaction(ctx context.Context, tx *domain.PrivilegeHistory) error
	DeleteTransaction(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error)
}

type PGPrivilegeRepository struct {
	db *pgxpool.Pool
}

func NewPrivilegeRepository(db *pgxpool.Pool) PrivilegeRepository {
	return &PGPrivilegeRepository{db: db}
}

func (r *PGPrivilegeRepository) GetByUsername(ctx context.Context, username string) (*domain.Privilege, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, status, balance FROM privilege WHERE username = $1 ORDER BY id LIMIT 1`,
		username)
	var p domain.Privilege
	if err := row.Scan(&p.ID, &p.Username, &p.Status, &p.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPrivilegeRepository) History(ctx context.Context, username string) ([]domain.PrivilegeHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT h.id, h.privilege_id, h.ticket_uid, h.datetime, h.balance_diff, h.operation_type
		 FROM privilege_history h
		 JOIN privilege p ON p.id = h.privilege_id
		 WHERE p.username = $1
		 ORDER BY h.datetime`,
		username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]domain.PrivilegeHistory, 0)
	for rows.Next() {
		var h domain.PrivilegeHistory
		if err := rows.Scan(&h.ID, &h.PrivilegeID, &h.TicketUID, &h.Date, &h.BalanceDiff, &h.OperationType); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *PGPrivilegeRepository) HistoryByTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT h.id, h.privilege_id, h.ticket_uid, h.datetime, h.balance_diff, h.operation_type
		 FROM privilege_history h
		 JOIN privilege p ON p.id = h.privilege_id
		 WHERE p.username = $1 AND h.ticket_uid = $2
		 LIMIT 1`,
		username, ticketUID)
	var h domain.PrivilegeHistory
	if err := row.Scan(&h.ID, &h.PrivilegeID, &h.TicketUID, &h.Date, &h.BalanceDiff, &h.OperationType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// AddTransaction records a balance transaction and applies its effect to the
// account in one database transaction.
func (r *PGPrivilegeRepository) AddTransaction(ctx context.Context, record *domain.PrivilegeHistory) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO privilege_history (privilege_id, ticket_uid, datetime, balance_diff, operation_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		record.PrivilegeID, record.TicketUID, record.Date, record.BalanceDiff, record.OperationType).
		Scan(&record.ID); err != nil {
		return err
	}

	delta := record.OperationType.BalanceDelta(record.BalanceDiff)
	if _, err := tx.Exec(ctx,
		`UPDATE privilege SET balance = balance + $1 WHERE id = $2`,
		delta, record.PrivilegeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteTransaction removes a transaction and reverses its balance effect.
// Returns the removed record.
func (r *PGPrivilegeRepository) DeleteTransaction(ctx context.Context, username string, ticketUID uuid.UUID) (*domain.PrivilegeHistory, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`DELETE FROM privilege_history h
		 USING privilege p
		 WHERE p.id = h.privilege_id AND p.username = $1 AND h.ticket_uid = $2
		 RETURNING h.id, h.privilege_id, h.ticket_uid, h.datetime, h.balance_diff, h.operation_type`,
		username, ticketUID)
	var h domain.PrivilegeHistory
	if err := row.Scan(&h.ID, &h.PrivilegeID, &h.TicketUID, &h.Date, &h.BalanceDiff, &h.OperationType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	delta := h.OperationType.BalanceDelta(h.BalanceDiff)
	if _, err := tx.Exec(ctx,
		`UPDATE privilege SET balance = balance - $1 WHERE id = $2`,
		delta, h.PrivilegeID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &h, nil
}

var _ PrivilegeRepository = (*PGPrivilegeRepository)(nil)
