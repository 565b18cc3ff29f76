package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flight represents one entry of the active schedule.
type Flight struct {
	ID              string `json:"id"`
	FlightNumber    string `json:"flightNumber"`
	Airline         string `json:"airline"`
	Origin          string `json:"origin"`
	OriginCity      string `json:"originCity"`
	Destination     string `json:"destination"`
	DestinationCity string `json:"destinationCity"`
	DepartureTime   string `json:"departureTime"` // "HH:MM", zero-padded
	ArrivalTime     string `json:"arrivalTime"`   // "HH:MM", zero-padded
	TotalSeats      int    `json:"totalSeats"`
}

// Route returns the composite route key used for grouping,
// e.g. "HND (Tokyo) → CTS (Sapporo)".
func (f *Flight) Route() string {
	return fmt.Sprintf("%s (%s) → %s (%s)", f.Origin, f.OriginCity, f.Destination, f.DestinationCity)
}

// DepartureHour returns the hour component of the departure time.
func (f *Flight) DepartureHour() int {
	return hourOf(f.DepartureTime)
}

// ArrivalHour returns the hour component of the arrival time.
func (f *Flight) ArrivalHour() int {
	return hourOf(f.ArrivalTime)
}

func hourOf(hhmm string) int {
	h, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		return -1
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return -1
	}
	return hour
}

// Reservation links a passenger name to a flight reference.
// The flight reference is not guaranteed to resolve: schedule replacement
// leaves older reservations dangling, and read paths must handle that.
type Reservation struct {
	ID              string    `json:"id"`
	FlightID        string    `json:"flightId"`
	PassengerName   string    `json:"passengerName"`
	ReservationTime time.Time `json:"reservationTime"`
}

// Airport is a static reference entry used to enrich parsed flights.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// RouteStat is the per-route flight count.
type RouteStat struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// AirportActivity partitions flights by their relation to one airport.
// A flight whose origin equals its destination appears in both partitions.
type AirportActivity struct {
	Departures []Flight `json:"departures"`
	Arrivals   []Flight `json:"arrivals"`
}
