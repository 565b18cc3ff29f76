package stats

import (
	"testing"

	"flightdesk/internal/models"
)

func flight(id, number, airline, origin, originCity, dest, destCity, dep, arr string, seats int) models.Flight {
	return models.Flight{
		ID: id, FlightNumber: number, Airline: airline,
		Origin: origin, OriginCity: originCity,
		Destination: dest, DestinationCity: destCity,
		DepartureTime: dep, ArrivalTime: arr, TotalSeats: seats,
	}
}

func testFlights() []models.Flight {
	return []models.Flight{
		flight("1", "ANA987", "All Nippon Airways", "HND", "Tokyo", "CTS", "Sapporo", "06:20", "07:50", 150),
		flight("2", "JAL501", "Japan Airlines", "HND", "Tokyo", "CTS", "Sapporo", "06:35", "08:05", 160),
		flight("3", "SKY703", "Skymark Airlines", "HND", "Tokyo", "OKA", "Okinawa", "08:20", "10:55", 120),
		flight("4", "ANA055", "All Nippon Airways", "KIX", "Osaka", "HND", "Tokyo", "10:30", "11:35", 180),
	}
}

func TestFilter(t *testing.T) {
	flights := testFlights()

	tests := []struct {
		name        string
		query       string
		origin      string
		destination string
		expectedIDs []string
	}{
		{"empty query matches everything", "", "", "", []string{"1", "2", "3", "4"}},
		{"flight number substring", "987", "", "", []string{"1"}},
		{"airline case-insensitive", "nippon", "", "", []string{"1", "4"}},
		{"city", "sapporo", "", "", []string{"1", "2"}},
		{"airport code", "oka", "", "", []string{"3"}},
		{"origin filter", "", "HND", "", []string{"1", "2", "3"}},
		{"destination filter", "", "", "CTS", []string{"1", "2"}},
		{"query and filters combine with AND", "ana", "HND", "CTS", []string{"1"}},
		{"no match", "nonexistent", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(flights, tt.query, tt.origin, tt.destination)
			if len(got) != len(tt.expectedIDs) {
				t.Fatalf("expected %d flights, got %d", len(tt.expectedIDs), len(got))
			}
			for i, f := range got {
				if f.ID != tt.expectedIDs[i] {
					t.Errorf("position %d: expected id %s, got %s", i, tt.expectedIDs[i], f.ID)
				}
			}
		})
	}
}

func TestBookedSeats(t *testing.T) {
	if got := BookedSeats(nil, "f1"); got != 0 {
		t.Errorf("no reservations: expected 0, got %d", got)
	}

	var reservations []models.Reservation
	for i := 0; i < 5; i++ {
		reservations = append(reservations, models.Reservation{ID: string(rune('a' + i)), FlightID: "f1"})
		reservations = append(reservations, models.Reservation{ID: string(rune('A' + i)), FlightID: "f2"})
	}
	if got := BookedSeats(reservations, "f1"); got != 5 {
		t.Errorf("expected 5 regardless of interleaving, got %d", got)
	}
}

func TestAvailableSeats_NotClamped(t *testing.T) {
	f := flight("f1", "ANA987", "All Nippon Airways", "HND", "Tokyo", "CTS", "Sapporo", "06:20", "07:50", 2)
	reservations := []models.Reservation{
		{ID: "1", FlightID: "f1"},
		{ID: "2", FlightID: "f1"},
		{ID: "3", FlightID: "f1"},
	}
	if got := AvailableSeats(&f, reservations); got != -1 {
		t.Errorf("overbooked flight must go negative, got %d", got)
	}
}

func TestRouteStats(t *testing.T) {
	flights := testFlights()
	routeStats := RouteStats(flights)

	total := 0
	for _, s := range routeStats {
		total += s.Count
	}
	if total != len(flights) {
		t.Errorf("group counts must sum to total flights: %d != %d", total, len(flights))
	}

	for i := 1; i < len(routeStats); i++ {
		if routeStats[i].Count > routeStats[i-1].Count {
			t.Errorf("counts not non-increasing at %d: %v", i, routeStats)
		}
	}

	if routeStats[0].Route != "HND (Tokyo) → CTS (Sapporo)" || routeStats[0].Count != 2 {
		t.Errorf("unexpected top route: %+v", routeStats[0])
	}
}

func TestActivityAt(t *testing.T) {
	flights := testFlights()

	activity := ActivityAt(flights, "HND")
	if len(activity.Departures) != 3 {
		t.Errorf("expected 3 departures, got %d", len(activity.Departures))
	}
	if len(activity.Arrivals) != 1 {
		t.Errorf("expected 1 arrival, got %d", len(activity.Arrivals))
	}

	// origin == destination counts in both partitions
	loop := []models.Flight{flight("l1", "XX1", "Unknown Airline", "HND", "Tokyo", "HND", "Tokyo", "09:00", "10:00", 150)}
	activity = ActivityAt(loop, "HND")
	if len(activity.Departures) != 1 || len(activity.Arrivals) != 1 {
		t.Errorf("loop flight must appear in both partitions: %d/%d",
			len(activity.Departures), len(activity.Arrivals))
	}
}

func TestInTimeSlot_Boundaries(t *testing.T) {
	flights := []models.Flight{
		flight("a", "F1", "", "HND", "", "CTS", "", "15:00", "16:00", 150),
		flight("b", "F2", "", "HND", "", "CTS", "", "15:59", "17:00", 150),
		flight("c", "F3", "", "HND", "", "CTS", "", "16:00", "18:00", 150),
		flight("d", "F4", "", "HND", "", "CTS", "", "14:59", "15:30", 150),
	}

	slot := InTimeSlot(flights, 15, ByDeparture)
	if len(slot) != 2 {
		t.Fatalf("expected H:00 and H:59 in the bucket, got %d flights", len(slot))
	}
	if slot[0].ID != "a" || slot[1].ID != "b" {
		t.Errorf("unexpected bucket contents: %v", slot)
	}

	arrivals := InTimeSlot(flights, 15, ByArrival)
	if len(arrivals) != 1 || arrivals[0].ID != "d" {
		t.Errorf("arrival mode must inspect arrival times: %v", arrivals)
	}
}

func TestOccupancyReport(t *testing.T) {
	flights := testFlights()[:2]
	reservations := []models.Reservation{
		{ID: "1", FlightID: "1"},
		{ID: "2", FlightID: "1"},
	}

	report := OccupancyReport(flights, reservations)
	if len(report) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report))
	}
	if report[0].Booked != 2 || report[0].Available != 148 {
		t.Errorf("flight 1: booked %d available %d", report[0].Booked, report[0].Available)
	}
	if report[1].Booked != 0 || report[1].Available != 160 {
		t.Errorf("flight 2: booked %d available %d", report[1].Booked, report[1].Available)
	}
}
