package domain

import "github.com/google/uuid"

type TicketStatus string

const (
	TicketStatusPaid     TicketStatus = "PAID"
	TicketStatusCanceled TicketStatus = "CANCELED"
)

type Ticket struct {
	ID           int64
	TicketUID    uuid.UUID
	Username     string
	FlightNumber string
	Price        int
	Status       TicketStatus
}
