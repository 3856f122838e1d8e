package domain

import "time"

type Flight struct {
	ID           int64
	FlightNumber string
	Date         time.Time
	FromAirport  string
	ToAirport    string
	Price        int
}

type FlightPage struct {
	Page          int
	PageSize      int
	TotalElements int
	Items         []Flight
}
