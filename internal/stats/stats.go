// Package stats computes the derived views over the in-memory flight and
// reservation collections. Everything here is pure and cheap enough to
// recompute from scratch on every call; nothing is cached.
package stats

import (
	"sort"
	"strings"

	"flightdesk/internal/models"
)

// TimeMode selects which time field a time-slot query inspects.
type TimeMode string

const (
	ByDeparture TimeMode = "departure"
	ByArrival   TimeMode = "arrival"
)

// Filter returns the flights matching query and the optional exact-match
// origin/destination codes. The query is a case-insensitive substring
// over flight number, airline, both cities and both codes; all criteria
// combine with AND, and an empty query matches everything.
func Filter(flights []models.Flight, query, origin, destination string) []models.Flight {
	q := strings.ToLower(query)
	var out []models.Flight
	for _, f := range flights {
		if !matchesQuery(&f, q) {
			continue
		}
		if origin != "" && f.Origin != origin {
			continue
		}
		if destination != "" && f.Destination != destination {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matchesQuery(f *models.Flight, q string) bool {
	if q == "" {
		return true
	}
	for _, field := range []string{
		f.FlightNumber, f.Airline, f.OriginCity, f.DestinationCity, f.Origin, f.Destination,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// BookedSeats counts reservations referencing flightID.
func BookedSeats(reservations []models.Reservation, flightID string) int {
	count := 0
	for _, r := range reservations {
		if r.FlightID == flightID {
			count++
		}
	}
	return count
}

// AvailableSeats is the flight capacity minus its booked count. Not
// clamped: overbooked flights go negative.
func AvailableSeats(f *models.Flight, reservations []models.Reservation) int {
	return f.TotalSeats - BookedSeats(reservations, f.ID)
}

// RouteStats groups flights by their composite route key and returns the
// per-route counts sorted by descending count. Tie order follows the
// first appearance of each route in the schedule.
func RouteStats(flights []models.Flight) []models.RouteStat {
	counts := make(map[string]int)
	var order []string
	for _, f := range flights {
		key := f.Route()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]models.RouteStat, 0, len(order))
	for _, key := range order {
		out = append(out, models.RouteStat{Route: key, Count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// ActivityAt partitions flights into departures from and arrivals at the
// given airport code. The partitions are independent: a flight whose
// origin equals its destination counts in both.
func ActivityAt(flights []models.Flight, code string) models.AirportActivity {
	var activity models.AirportActivity
	for _, f := range flights {
		if f.Origin == code {
			activity.Departures = append(activity.Departures, f)
		}
		if f.Destination == code {
			activity.Arrivals = append(activity.Arrivals, f)
		}
	}
	return activity
}

// InTimeSlot returns the flights whose relevant time falls in the
// one-hour bucket starting at hour. Minutes are ignored: H:00 through
// H:59 are all in bucket H.
func InTimeSlot(flights []models.Flight, hour int, mode TimeMode) []models.Flight {
	var out []models.Flight
	for _, f := range flights {
		h := f.DepartureHour()
		if mode == ByArrival {
			h = f.ArrivalHour()
		}
		if h == hour {
			out = append(out, f)
		}
	}
	return out
}

// Occupancy summarizes one flight's seat usage for the admin report.
type Occupancy struct {
	Flight    models.Flight
	Booked    int
	Available int
}

// OccupancyReport computes the occupancy of every flight in the schedule.
func OccupancyReport(flights []models.Flight, reservations []models.Reservation) []Occupancy {
	out := make([]Occupancy, 0, len(flights))
	for _, f := range flights {
		booked := BookedSeats(reservations, f.ID)
		out = append(out, Occupancy{Flight: f, Booked: booked, Available: f.TotalSeats - booked})
	}
	return out
}
