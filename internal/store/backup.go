package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flightdesk/internal/models"
)

// snapshot is the on-disk form of a store backup: both slots together.
type snapshot struct {
	TakenAt      time.Time            `json:"takenAt"`
	Flights      []models.Flight      `json:"flights"`
	Reservations []models.Reservation `json:"reservations"`
}

// Snapshot writes both collections to a timestamped JSON file in dir and
// returns the path. Admin-triggered; there is no scheduled backup.
func (s *Store) Snapshot(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	snap := snapshot{
		TakenAt:      time.Now(),
		Flights:      s.Schedule(),
		Reservations: s.Reservations(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize snapshot: %w", err)
	}

	name := fmt.Sprintf("flightdesk_%s.json", snap.TakenAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("snapshot written")
	return path, nil
}

// CleanupSnapshots removes snapshot files older than retentionDays.
func (s *Store) CleanupSnapshots(dir string, retentionDays int) {
	if retentionDays <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Error().Err(err).Msg("read backup directory for cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "flightdesk_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			s.logger.Info().Str("file", entry.Name()).Msg("deleting old snapshot")
			os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}
