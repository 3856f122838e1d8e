package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// flightsSchema holds the airport and flight tables. Airport names, flight
// numbers and usernames deliberately carry no UNIQUE constraints: the seed
// script relies on plain inserts and documents that re-running it duplicates
// rows.
const flightsSchema = `
CREATE TABLE IF NOT EXISTS airport (
	id      SERIAL PRIMARY KEY,
	name    VARCHAR(255),
	city    VARCHAR(255),
	country VARCHAR(255)
);

CREATE TABLE IF NOT EXISTS flight (
	id              SERIAL PRIMARY KEY,
	flight_number   VARCHAR(20) NOT NULL,
	datetime        TIMESTAMP WITH TIME ZONE,
	from_airport_id INTEGER REFERENCES airport (id),
	to_airport_id   INTEGER REFERENCES airport (id),
	price           INTEGER NOT NULL
);
`

// ticketsSchema holds the privilege, privilege_history and ticket tables.
const ticketsSchema = `
CREATE TABLE IF NOT EXISTS privilege (
	id       SERIAL PRIMARY KEY,
	username VARCHAR(80) NOT NULL,
	status   VARCHAR(80) NOT NULL DEFAULT 'BRONZE'
		CHECK (status IN ('BRONZE', 'SILVER', 'GOLD')),
	balance  INTEGER
);

CREATE TABLE IF NOT EXISTS privilege_history (
	id             SERIAL PRIMARY KEY,
	privilege_id   INTEGER REFERENCES privilege (id),
	ticket_uid     UUID NOT NULL,
	datetime       TIMESTAMP WITH TIME ZONE NOT NULL,
	balance_diff   INTEGER NOT NULL,
	operation_type VARCHAR(20) NOT NULL
		CHECK (operation_type IN ('FILL_IN_BALANCE', 'DEBIT_THE_ACCOUNT'))
);

CREATE TABLE IF NOT EXISTS ticket (
	id            SERIAL PRIMARY KEY,
	ticket_uid    UUID NOT NULL,
	username      VARCHAR(80) NOT NULL,
	flight_number VARCHAR(20) NOT NULL,
	price         INTEGER NOT NULL,
	status        VARCHAR(20) NOT NULL
		CHECK (status IN ('PAID', 'CANCELED'))
);
`

// EnsureFlightsSchema creates the flights schema tables if they are absent.
func EnsureFlightsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, flightsSchema); err != nil {
		return fmt.Errorf("create flights schema: %w", err)
	}
	return nil
}

// EnsureTicketsSchema creates the tickets schema tables if they are absent.
func EnsureTicketsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, ticketsSchema); err != nil {
		return fmt.Errorf("create tickets schema: %w", err)
	}
	return nil
}
