package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sgulyaev/aviatickets/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Flight, error)
	Count(ctx context.Context) (int, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightSelect = `SELECT f.id, f.flight_number, f.datetime,
	fa.city || ' ' || fa.name AS from_airport,
	ta.city || ' ' || ta.name AS to_airport,
	f.price
FROM flight f
JOIN airport fa ON fa.id = f.from_airport_id
JOIN airport ta ON ta.id = f.to_airport_id`

func (r *PGFlightRepository) List(ctx context.Context, limit, offset int) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx,
		flightSelect+` ORDER BY f.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.Date, &f.FromAirport, &f.ToAirport, &f.Price); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM flight`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return total, nil
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx,
		flightSelect+` WHERE f.flight_number = $1 LIMIT 1`, flightNumber)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.Date, &f.FromAirport, &f.ToAirport, &f.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
