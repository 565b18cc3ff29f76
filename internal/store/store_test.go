package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/internal/airports"
	"flightdesk/internal/models"
	"flightdesk/internal/schedule"
)

func openTestBackend(t *testing.T, dir string) *SQLiteBackend {
	t.Helper()
	logger := zerolog.Nop()
	backend, err := OpenSQLite(filepath.Join(dir, "test.db"), &logger)
	require.NoError(t, err)
	return backend
}

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	backend := openTestBackend(t, dir)
	t.Cleanup(func() { backend.Close() })

	logger := zerolog.Nop()
	s, err := Open(context.Background(), backend, &logger)
	require.NoError(t, err)
	return s
}

func testReservation(flightID, name string) models.Reservation {
	return models.Reservation{
		ID:              name + "-" + flightID,
		FlightID:        flightID,
		PassengerName:   name,
		ReservationTime: time.Now(),
	}
}

func TestOpen_FallsBackToSeed(t *testing.T) {
	s := openTestStore(t, t.TempDir())

	assert.Len(t, s.Schedule(), 15, "fresh store starts on the seed schedule")
	assert.Empty(t, s.Reservations())
}

func TestOpen_CorruptSlotFallsBack(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend := openTestBackend(t, dir)
	defer backend.Close()

	require.NoError(t, backend.Put(ctx, SlotSchedules, []byte("{not json")))
	require.NoError(t, backend.Put(ctx, SlotReservations, []byte("also not json")))

	logger := zerolog.Nop()
	s, err := Open(ctx, backend, &logger)
	require.NoError(t, err, "corrupt slots must never fail startup")
	assert.Len(t, s.Schedule(), 15)
	assert.Empty(t, s.Reservations())
}

func TestReplaceSchedule_IsTotal(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, t.TempDir())

	next := []models.Flight{{ID: "n1", FlightNumber: "ANA987", TotalSeats: 150}}
	require.NoError(t, s.ReplaceSchedule(ctx, next))

	got := s.Schedule()
	require.Len(t, got, 1, "replacement discards the entire prior schedule")
	assert.Equal(t, "n1", got[0].ID)
}

func TestReplaceSchedule_LeavesReservationsDangling(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, t.TempDir())

	seedID := s.Schedule()[0].ID
	require.NoError(t, s.AddReservation(ctx, testReservation(seedID, "Tanaka")))
	require.NoError(t, s.ReplaceSchedule(ctx, []models.Flight{{ID: "n1", FlightNumber: "JAL1"}}))

	rs := s.Reservations()
	require.Len(t, rs, 1, "replacement must not touch reservations")
	assert.Equal(t, seedID, rs[0].FlightID, "dangling reference is kept as-is")
}

func TestAddReservation_AppendOnlyAndPersisted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger := zerolog.Nop()

	backend := openTestBackend(t, dir)
	s, err := Open(ctx, backend, &logger)
	require.NoError(t, err)

	require.NoError(t, s.AddReservation(ctx, testReservation("f1", "Tanaka")))
	require.NoError(t, s.AddReservation(ctx, testReservation("f2", "Suzuki")))
	require.NoError(t, s.AddReservation(ctx, testReservation("f1", "Sato")))
	require.NoError(t, backend.Close())

	// reopen: both slots must come back from disk
	backend2 := openTestBackend(t, dir)
	defer backend2.Close()
	s2, err := Open(ctx, backend2, &logger)
	require.NoError(t, err)

	rs := s2.Reservations()
	require.Len(t, rs, 3)
	assert.Equal(t, "Tanaka", rs[0].PassengerName)
	assert.Equal(t, "Suzuki", rs[1].PassengerName)
	assert.Equal(t, "Sato", rs[2].PassengerName)
}

func TestReadsReturnCopies(t *testing.T) {
	s := openTestStore(t, t.TempDir())

	flights := s.Schedule()
	flights[0].FlightNumber = "MUTATED"
	assert.NotEqual(t, "MUTATED", s.Schedule()[0].FlightNumber,
		"callers must not be able to reach into the store's collections")
}

func TestUploadReplacesSeedSchedule(t *testing.T) {
	// seed schedule plus a one-line upload: the store ends up with exactly
	// that one flight, enriched with airline and cities.
	ctx := context.Background()
	s := openTestStore(t, t.TempDir())
	require.Len(t, s.Schedule(), 15)

	logger := zerolog.Nop()
	parser := schedule.NewParser(airports.Default(), &logger)
	flights, skipped := parser.Parse("HND\t06:20\tCTS\t07:50\tANA987")
	require.Empty(t, skipped)
	require.NoError(t, s.ReplaceSchedule(ctx, flights))

	got := s.Schedule()
	require.Len(t, got, 1)
	assert.Equal(t, "All Nippon Airways", got[0].Airline)
	assert.Equal(t, "Tokyo", got[0].OriginCity)
	assert.Equal(t, "Sapporo", got[0].DestinationCity)
}
