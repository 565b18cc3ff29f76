// Package airports holds the static airport directory and the built-in
// seed schedule used before an administrator loads a schedule file.
package airports

import "flightdesk/internal/models"

// Directory resolves airport codes to their reference entries.
type Directory struct {
	byCode map[string]models.Airport
	list   []models.Airport
}

// NewDirectory builds a directory from the given airports.
func NewDirectory(airports []models.Airport) *Directory {
	d := &Directory{byCode: make(map[string]models.Airport, len(airports))}
	for _, ap := range airports {
		d.byCode[ap.Code] = ap
		d.list = append(d.list, ap)
	}
	return d
}

// Default returns the directory of the built-in airports.
func Default() *Directory {
	return NewDirectory(builtinAirports)
}

// Lookup returns the airport for code, if known.
func (d *Directory) Lookup(code string) (models.Airport, bool) {
	ap, ok := d.byCode[code]
	return ap, ok
}

// CityOf returns the city for code, or fallback when the code is unknown.
func (d *Directory) CityOf(code, fallback string) string {
	if ap, ok := d.byCode[code]; ok {
		return ap.City
	}
	return fallback
}

// All returns the airports in declaration order.
func (d *Directory) All() []models.Airport {
	out := make([]models.Airport, len(d.list))
	copy(out, d.list)
	return out
}

var builtinAirports = []models.Airport{
	{Code: "HND", Name: "Haneda Airport", City: "Tokyo"},
	{Code: "CTS", Name: "New Chitose Airport", City: "Sapporo"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo"},
	{Code: "KIX", Name: "Kansai International Airport", City: "Osaka"},
	{Code: "FUK", Name: "Fukuoka Airport", City: "Fukuoka"},
	{Code: "OKA", Name: "Naha Airport", City: "Okinawa"},
}

// SeedFlights returns a fresh copy of the built-in schedule.
func SeedFlights() []models.Flight {
	out := make([]models.Flight, len(seedFlights))
	copy(out, seedFlights)
	return out
}

var seedFlights = []models.Flight{
	{ID: "1", FlightNumber: "ANA987", Airline: "All Nippon Airways", Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "06:20", ArrivalTime: "07:50", TotalSeats: 150},
	{ID: "2", FlightNumber: "JAL501", Airline: "Japan Airlines", Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "06:35", ArrivalTime: "08:05", TotalSeats: 160},
	{ID: "3", FlightNumber: "SKY703", Airline: "Skymark Airlines", Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "06:45", ArrivalTime: "08:20", TotalSeats: 120},
	{ID: "4", FlightNumber: "ANA4711", Airline: "All Nippon Airways", Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "06:55", ArrivalTime: "08:25", TotalSeats: 150},
	{ID: "5", FlightNumber: "ADO11", Airline: "Air Do", Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "06:55", ArrivalTime: "08:25", TotalSeats: 130},
	{ID: "6", FlightNumber: "JAL503", Airline: "Japan Airlines", Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "07:20", ArrivalTime: "08:50", TotalSeats: 160},
	{ID: "7", FlightNumber: "ANA053", Airline: "All Nippon Airways", Origin: "NRT", OriginCity: "Tokyo", Destination: "KIX", DestinationCity: "Osaka", DepartureTime: "08:00", ArrivalTime: "09:30", TotalSeats: 180},
	{ID: "8", FlightNumber: "JAL505", Airline: "Japan Airlines", Origin: "HND", OriginCity: "Tokyo", Destination: "FUK", DestinationCity: "Fukuoka", DepartureTime: "08:15", ArrivalTime: "09:50", TotalSeats: 200},
	{ID: "9", FlightNumber: "SKY705", Airline: "Skymark Airlines", Origin: "HND", OriginCity: "Tokyo", Destination: "OKA", DestinationCity: "Okinawa", DepartureTime: "08:20", ArrivalTime: "10:55", TotalSeats: 120},
	{ID: "10", FlightNumber: "ANA055", Airline: "All Nippon Airways", Origin: "KIX", OriginCity: "Osaka", Destination: "HND", DestinationCity: "Tokyo", DepartureTime: "10:30", ArrivalTime: "11:35", TotalSeats: 180},
	{ID: "11", FlightNumber: "JAL507", Airline: "Japan Airlines", Origin: "FUK", OriginCity: "Fukuoka", Destination: "HND", DestinationCity: "Tokyo", DepartureTime: "10:30", ArrivalTime: "12:00", TotalSeats: 200},
	{ID: "12", FlightNumber: "ANA057", Airline: "All Nippon Airways", Origin: "HND", OriginCity: "Tokyo", Destination: "FUK", DestinationCity: "Fukuoka", DepartureTime: "15:00", ArrivalTime: "16:35", TotalSeats: 150},
	{ID: "13", FlightNumber: "JAL3005", Airline: "Japan Airlines", Origin: "CTS", OriginCity: "Sapporo", Destination: "HND", DestinationCity: "Tokyo", DepartureTime: "15:30", ArrivalTime: "17:05", TotalSeats: 160},
	{ID: "14", FlightNumber: "SKY176", Airline: "Skymark Airlines", Origin: "OKA", OriginCity: "Okinawa", Destination: "HND", DestinationCity: "Tokyo", DepartureTime: "15:45", ArrivalTime: "18:00", TotalSeats: 120},
	{ID: "15", FlightNumber: "ANA600", Airline: "All Nippon Airways", Origin: "KIX", OriginCity: "Osaka", Destination: "CTS", DestinationCity: "Sapporo", DepartureTime: "16:00", ArrivalTime: "17:50", TotalSeats: 140},
}
