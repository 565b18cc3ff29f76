package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"flightdesk/internal/airports"
	"flightdesk/internal/models"
)

// Slot keys. Fixed names, each holding the full serialized collection.
const (
	SlotSchedules    = "flightSchedules"
	SlotReservations = "flightReservations"
)

// Store is the single owner of the schedule and reservation collections.
// Every mutation re-serializes and rewrites the affected slot in full; all
// other components get copies or go through the narrow contract below.
type Store struct {
	mu           sync.Mutex
	backend      Backend
	logger       *zerolog.Logger
	flights      []models.Flight
	reservations []models.Reservation
}

// Open loads both slots from the backend. A missing or corrupt slot is
// logged and falls back to its default (the seed schedule, an empty
// reservation list); it never fails startup.
func Open(ctx context.Context, backend Backend, logger *zerolog.Logger) (*Store, error) {
	s := &Store{backend: backend, logger: logger}

	if !s.loadSlot(ctx, SlotSchedules, &s.flights) {
		s.flights = airports.SeedFlights()
	}
	if !s.loadSlot(ctx, SlotReservations, &s.reservations) {
		s.reservations = nil
	}

	logger.Info().
		Int("flights", len(s.flights)).
		Int("reservations", len(s.reservations)).
		Msg("store loaded")
	return s, nil
}

// loadSlot reads and decodes one slot into out. Returns false when the
// slot is absent or fails to deserialize.
func (s *Store) loadSlot(ctx context.Context, key string, out any) bool {
	data, err := s.backend.Get(ctx, key)
	if err == ErrNotFound {
		return false
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("slot", key).Msg("slot unreadable, using default")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn().Err(err).Str("slot", key).Msg("slot corrupt, using default")
		return false
	}
	return true
}

// Schedule returns a copy of the active flight schedule.
func (s *Store) Schedule() []models.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

// Reservations returns a copy of the reservation list.
func (s *Store) Reservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// ReplaceSchedule discards the entire prior schedule in favor of flights.
// Reservations referencing old flight ids are left dangling on purpose;
// read paths render them as unresolved.
func (s *Store) ReplaceSchedule(ctx context.Context, flights []models.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, SlotSchedules, flights); err != nil {
		return err
	}
	s.flights = flights
	s.logger.Info().Int("flights", len(flights)).Msg("schedule replaced")
	return nil
}

// AddReservation appends one reservation. This is the only mutation of
// the reservation slot; prior entries are never edited or removed.
func (s *Store) AddReservation(ctx context.Context, r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]models.Reservation(nil), s.reservations...), r)
	if err := s.persist(ctx, SlotReservations, next); err != nil {
		return err
	}
	s.reservations = next
	return nil
}

func (s *Store) persist(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
