// Package schedule turns administrator-supplied delimited text into
// validated flight records.
package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"flightdesk/internal/airports"
	"flightdesk/internal/models"
)

// DefaultSeats is assigned to every parsed flight; the ingestion format
// carries no capacity column.
const DefaultSeats = 150

// UnknownAirline is used when no prefix in the airline table matches.
const UnknownAirline = "Unknown Airline"

// UnknownCity is used when an airport code is not in the directory.
const UnknownCity = "Unknown City"

// airlinePrefixes maps flight-number prefixes to carriers. Evaluated in
// declared order, first match wins. The order is load-bearing: BC and HD
// map to carriers that already own earlier prefixes, so this must stay a
// slice, not a map.
var airlinePrefixes = []struct {
	prefix  string
	airline string
}{
	{"NH", "All Nippon Airways"},
	{"ANA", "All Nippon Airways"},
	{"JL", "Japan Airlines"},
	{"JAL", "Japan Airlines"},
	{"SKY", "Skymark Airlines"},
	{"ADO", "Air Do"},
	{"BC", "Skymark Airlines"},
	{"HD", "Air Do"},
}

// AirlineForFlightNumber resolves the carrier from the flight-number
// prefix, case-insensitively.
func AirlineForFlightNumber(flightNumber string) string {
	upper := strings.ToUpper(flightNumber)
	for _, e := range airlinePrefixes {
		if strings.HasPrefix(upper, e.prefix) {
			return e.airline
		}
	}
	return UnknownAirline
}

// timePattern accepts a 1-or-2 digit hour and an exactly-2 digit minute.
var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// idCounter is process-wide so ids stay distinct across repeated parses
// within the same clock tick.
var idCounter atomic.Int64

// Skip kinds, one per row-level failure mode.
const (
	SkipColumnCount       = "column_count"
	SkipEmptyFlightNumber = "empty_flight_number"
	SkipTimeFormat        = "time_format"
)

// SkipDiag describes one skipped input row.
type SkipDiag struct {
	Row    int    // 1-based, counted over non-blank lines
	Line   string // raw line content
	Kind   string
	Reason string
}

func (d SkipDiag) String() string {
	return fmt.Sprintf("row %d: %s (content: %q)", d.Row, d.Reason, d.Line)
}

// Parser converts raw delimited text into flight records. It never
// mutates shared state; a row that fails validation is skipped with a
// diagnostic, never fatal to the batch.
type Parser struct {
	dir    *airports.Directory
	logger *zerolog.Logger
}

// NewParser creates a parser over the given airport directory.
func NewParser(dir *airports.Directory, logger *zerolog.Logger) *Parser {
	return &Parser{dir: dir, logger: logger}
}

// Parse splits raw into lines, validates each row and returns the flights
// in input order plus the diagnostics for every skipped row. Zero valid
// rows is a valid, empty result.
func (p *Parser) Parse(raw string) ([]models.Flight, []SkipDiag) {
	batch := uuid.NewString()
	log := p.logger.With().Str("batch", batch).Logger()

	var flights []models.Flight
	var skipped []SkipDiag

	skip := func(row int, line, kind, reason string) {
		d := SkipDiag{Row: row, Line: line, Kind: kind, Reason: reason}
		skipped = append(skipped, d)
		log.Warn().Int("row", row).Str("content", line).Msg(reason)
	}

	for i, line := range splitLines(raw) {
		row := i + 1
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			skip(row, line, SkipColumnCount, fmt.Sprintf("incorrect column count: expected 5, got %d", len(fields)))
			continue
		}

		origin := strings.ToUpper(strings.TrimSpace(fields[0]))
		departure := strings.TrimSpace(fields[1])
		destination := strings.ToUpper(strings.TrimSpace(fields[2]))
		arrival := strings.TrimSpace(fields[3])
		flightNumber := strings.TrimSpace(fields[4])

		if flightNumber == "" {
			skip(row, line, SkipEmptyFlightNumber, "empty flight number")
			continue
		}
		if !timePattern.MatchString(departure) || !timePattern.MatchString(arrival) {
			skip(row, line, SkipTimeFormat, fmt.Sprintf("invalid time format: %q or %q", departure, arrival))
			continue
		}

		flights = append(flights, models.Flight{
			ID:              nextID(flightNumber),
			FlightNumber:    flightNumber,
			Airline:         AirlineForFlightNumber(flightNumber),
			Origin:          origin,
			OriginCity:      p.dir.CityOf(origin, UnknownCity),
			Destination:     destination,
			DestinationCity: p.dir.CityOf(destination, UnknownCity),
			DepartureTime:   normalizeTime(departure),
			ArrivalTime:     normalizeTime(arrival),
			TotalSeats:      DefaultSeats,
		})
	}

	log.Info().Int("flights", len(flights)).Int("skipped", len(skipped)).Msg("schedule parsed")
	return flights, skipped
}

// splitLines splits raw on any line-ending convention and drops blank
// lines. Row numbers in diagnostics are 1-based over what remains.
func splitLines(raw string) []string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// normalizeTime zero-pads a validated H:MM or HH:MM value to HH:MM.
func normalizeTime(t string) string {
	h, m, _ := strings.Cut(t, ":")
	if len(h) == 1 {
		h = "0" + h
	}
	return h + ":" + m
}

// nextID generates an identifier unique across the batch and across
// repeated parses in this process: the wall clock alone is not distinct
// enough, hence the monotonic counter component.
func nextID(flightNumber string) string {
	return fmt.Sprintf("csv-%s-%d-%d", flightNumber, time.Now().UnixMilli(), idCounter.Add(1))
}
