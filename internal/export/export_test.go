package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"flightdesk/internal/models"
)

var reportTime = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

func reportFixtures() ([]models.Flight, []models.Reservation) {
	flights := []models.Flight{
		{
			ID: "f1", FlightNumber: "ANA987", Airline: "All Nippon Airways",
			Origin: "HND", OriginCity: "Tokyo", Destination: "CTS", DestinationCity: "Sapporo",
			DepartureTime: "06:20", ArrivalTime: "07:50", TotalSeats: 150,
		},
	}
	reservations := []models.Reservation{
		{ID: "r1", FlightID: "f1", PassengerName: "Tanaka Hanako", ReservationTime: reportTime},
		{ID: "r2", FlightID: "gone", PassengerName: "Suzuki, Ichiro", ReservationTime: reportTime},
	}
	return flights, reservations
}

func TestWriteCSV(t *testing.T) {
	flights, reservations := reportFixtures()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, flights, reservations))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"Flight Number,Origin,Destination,Departure Time,Arrival Time,Passenger Name,Reservation Timestamp",
		lines[0])
	assert.Equal(t, "ANA987,HND,CTS,06:20,07:50,Tanaka Hanako,31 Aug 2026 14:30:00", lines[1])

	// dangling flight reference renders N/A in every flight-derived column,
	// and a passenger name containing a comma is quoted
	assert.Equal(t, `N/A,N/A,N/A,N/A,N/A,"Suzuki, Ichiro",31 Aug 2026 14:30:00`, lines[2])
}

func TestWriteCSV_NameWithoutCommaNotQuoted(t *testing.T) {
	flights, _ := reportFixtures()
	reservations := []models.Reservation{
		{ID: "r1", FlightID: "f1", PassengerName: "Plain Name", ReservationTime: reportTime},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, flights, reservations))
	assert.NotContains(t, buf.String(), `"`)
}

func TestWriteWorkbook(t *testing.T) {
	flights, reservations := reportFixtures()

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, flights, reservations))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Reservations", "Occupancy"}, file.GetSheetList())

	rows, err := file.GetRows("Reservations")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ReportHeader, rows[0])
	assert.Equal(t, "ANA987", rows[1][0])
	assert.Equal(t, "N/A", rows[2][0])
	assert.Equal(t, "Suzuki, Ichiro", rows[2][5], "no CSV quoting inside the workbook")

	occ, err := file.GetRows("Occupancy")
	require.NoError(t, err)
	require.Len(t, occ, 2)
	assert.Equal(t, []string{"ANA987", "HND (Tokyo) → CTS (Sapporo)", "1", "150", "149"}, occ[1])
}
