// Package export renders the administrator-facing reservation reports.
package export

import (
	"fmt"
	"io"
	"strings"

	"flightdesk/internal/models"
)

// ReportHeader is the fixed column set of the reservation report.
var ReportHeader = []string{
	"Flight Number", "Origin", "Destination", "Departure Time", "Arrival Time",
	"Passenger Name", "Reservation Timestamp",
}

// unresolved is rendered in every flight-derived column of a reservation
// whose flight reference no longer exists (schedule was replaced).
const unresolved = "N/A"

// timestampLayout renders the reservation instant human-readably; the
// machine-readable instant stays only in the persisted slot.
const timestampLayout = "02 Jan 2006 15:04:05"

// reportRow joins one reservation to its flight, or to placeholders when
// the reference dangles.
func reportRow(r models.Reservation, byID map[string]models.Flight) []string {
	flightNumber, origin, destination, departure, arrival :=
		unresolved, unresolved, unresolved, unresolved, unresolved
	if f, ok := byID[r.FlightID]; ok {
		flightNumber, origin, destination = f.FlightNumber, f.Origin, f.Destination
		departure, arrival = f.DepartureTime, f.ArrivalTime
	}
	return []string{
		flightNumber, origin, destination, departure, arrival,
		r.PassengerName, r.ReservationTime.Format(timestampLayout),
	}
}

func flightsByID(flights []models.Flight) map[string]models.Flight {
	byID := make(map[string]models.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}
	return byID
}

// WriteCSV writes the reservation report. A passenger name is quoted only
// when it contains a comma; this matches the historical report format
// byte for byte, which is why encoding/csv is not used here.
func WriteCSV(w io.Writer, flights []models.Flight, reservations []models.Reservation) error {
	if _, err := io.WriteString(w, strings.Join(ReportHeader, ",")+"\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	byID := flightsByID(flights)
	for _, r := range reservations {
		row := reportRow(r, byID)
		name := row[5]
		if strings.Contains(name, ",") {
			row[5] = `"` + name + `"`
		}
		if _, err := io.WriteString(w, strings.Join(row, ",")+"\n"); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}
