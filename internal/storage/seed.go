package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sgulyaev/aviatickets/internal/domain"
)

// Development fixtures. Inserted with plain INSERTs on purpose: the schema
// declares no uniqueness on natural keys, so running the seed twice
// duplicates every row instead of failing.
var (
	SeedAirports = []domain.Airport{
		{Name: "Шереметьево", City: "Москва", Country: "Россия"},
		{Name: "Пулково", City: "Санкт-Петербург", Country: "Россия"},
	}

	SeedFlight = seedFlight{
		FlightNumber:    "AFL031",
		Date:            time.Date(2021, time.October, 8, 20, 0, 0, 0, time.FixedZone("MSK", 3*60*60)),
		FromAirportName: "Пулково",
		ToAirportName:   "Шереметьево",
		Price:           1500,
	}

	SeedPrivilege = domain.Privilege{
		Username: "Test Max",
		Status:   domain.PrivilegeStatusBronze,
		Balance:  1500,
	}

	SeedTicket = domain.Ticket{
		TicketUID:    uuid.MustParse("049161bb-badd-4fa8-9d90-87c9a82b0668"),
		Username:     "Test Max",
		FlightNumber: "AFL031",
		Price:        1500,
		Status:       domain.TicketStatusPaid,
	}
)

// seedFlight references its airports by name; ids are resolved at insert time.
type seedFlight struct {
	FlightNumber    string
	Date            time.Time
	FromAirportName string
	ToAirportName   string
	Price           int
}

type Seeder struct {
	flights *pgxpool.Pool
	tickets *pgxpool.Pool
	log     *zap.Logger
}

func NewSeeder(flights, tickets *pgxpool.Pool, log *zap.Logger) *Seeder {
	return &Seeder{flights: flights, tickets: tickets, log: log}
}

// Run seeds both schemas. Any failure, including an airport name that
// resolves to no row, aborts immediately.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedFlights(ctx); err != nil {
		return err
	}
	return s.seedTickets(ctx)
}

func (s *Seeder) seedFlights(ctx context.Context) error {
	for _, a := range SeedAirports {
		if _, err := s.flights.Exec(ctx,
			`INSERT INTO airport (name, city, country) VALUES ($1, $2, $3)`,
			a.Name, a.City, a.Country); err != nil {
			return fmt.Errorf("insert airport %q: %w", a.Name, err)
		}
		s.log.Info("seeded airport", zap.String("name", a.Name), zap.String("city", a.City))
	}

	f := SeedFlight
	fromID, err := s.airportIDByName(ctx, f.FromAirportName)
	if err != nil {
		return err
	}
	toID, err := s.airportIDByName(ctx, f.ToAirportName)
	if err != nil {
		return err
	}

	if _, err := s.flights.Exec(ctx,
		`INSERT INTO flight (flight_number, datetime, from_airport_id, to_airport_id, price)
		 VALUES ($1, $2, $3, $4, $5)`,
		f.FlightNumber, f.Date, fromID, toID, f.Price); err != nil {
		return fmt.Errorf("insert flight %q: %w", f.FlightNumber, err)
	}
	s.log.Info("seeded flight",
		zap.String("flight_number", f.FlightNumber),
		zap.Int64("from_airport_id", fromID),
		zap.Int64("to_airport_id", toID))

	return nil
}

func (s *Seeder) seedTickets(ctx context.Context) error {
	p := SeedPrivilege
	if _, err := s.tickets.Exec(ctx,
		`INSERT INTO privilege (username, status, balance) VALUES ($1, $2, $3)`,
		p.Username, p.Status, p.Balance); err != nil {
		return fmt.Errorf("insert privilege for %q: %w", p.Username, err)
	}
	s.log.Info("seeded privilege", zap.String("username", p.Username), zap.Int("balance", p.Balance))

	t := SeedTicket
	if _, err := s.tickets.Exec(ctx,
		`INSERT INTO ticket (ticket_uid, username, flight_number, price, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.TicketUID, t.Username, t.FlightNumber, t.Price, t.Status); err != nil {
		return fmt.Errorf("insert ticket %s: %w", t.TicketUID, err)
	}
	s.log.Info("seeded ticket",
		zap.String("ticket_uid", t.TicketUID.String()),
		zap.String("flight_number", t.FlightNumber))

	return nil
}

// airportIDByName resolves the surrogate key for an airport natural key.
// A missing row is an error: inserting the flight would violate its
// foreign keys anyway.
func (s *Seeder) airportIDByName(ctx context.Context, name string) (int64, error) {
	var id int64
	if err := s.flights.QueryRow(ctx,
		`SELECT id FROM airport WHERE name = $1`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup airport %q: %w", name, err)
	}
	return id, nil
}
