package models

import "testing"

func TestFlight_Route(t *testing.T) {
	f := Flight{Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo"}
	if got := f.Route(); got != "HND (Tokyo) → CTS (Sapporo)" {
		t.Errorf("unexpected route key: %q", got)
	}
}

func TestFlight_Hours(t *testing.T) {
	tests := []struct {
		departure string
		arrival   string
		depHour   int
		arrHour   int
	}{
		{"06:20", "07:50", 6, 7},
		{"15:00", "15:59", 15, 15},
		{"23:30", "00:10", 23, 0}, // overnight flights are not rejected
		{"", "garbage", -1, -1},
	}

	for _, tt := range tests {
		f := Flight{DepartureTime: tt.departure, ArrivalTime: tt.arrival}
		if got := f.DepartureHour(); got != tt.depHour {
			t.Errorf("DepartureHour(%q): expected %d, got %d", tt.departure, tt.depHour, got)
		}
		if got := f.ArrivalHour(); got != tt.arrHour {
			t.Errorf("ArrivalHour(%q): expected %d, got %d", tt.arrival, tt.arrHour, got)
		}
	}
}
