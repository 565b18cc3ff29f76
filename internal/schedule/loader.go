package schedule

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"flightdesk/internal/airports"
	"flightdesk/internal/models"
)

// ResultKind classifies the outcome of a schedule file load. The operator
// must be able to tell "no file given", "file unreadable" and "file read
// but contained no valid rows" apart.
type ResultKind int

const (
	KindLoaded ResultKind = iota
	KindNoFile
	KindUnreadable
	KindEmpty
)

// Result is the outcome of one load attempt.
type Result struct {
	Kind    ResultKind
	Flights []models.Flight
	Skipped []SkipDiag
	Err     error
}

// Message renders the operator-facing summary for this result.
func (r Result) Message() string {
	switch r.Kind {
	case KindNoFile:
		return "Error: no file selected."
	case KindUnreadable:
		return fmt.Sprintf("Error: failed to read file: %v.", r.Err)
	case KindEmpty:
		return "Warning: file parsed, but no valid flight data was found. Check file format and content."
	default:
		return fmt.Sprintf("Successfully loaded %d flights.", len(r.Flights))
	}
}

// Loader reads a schedule file and parses it. One blocking call produces
// exactly one Result.
type Loader struct {
	parser *Parser
	logger *zerolog.Logger
}

// NewLoader creates a loader over the given airport directory.
func NewLoader(dir *airports.Directory, logger *zerolog.Logger) *Loader {
	return &Loader{parser: NewParser(dir, logger), logger: logger}
}

// Load reads path and parses its contents. Nothing here is fatal: every
// failure mode is reported through the Result.
func (l *Loader) Load(path string) Result {
	if path == "" {
		return Result{Kind: KindNoFile}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("path", path).Msg("schedule file unreadable")
		return Result{Kind: KindUnreadable, Err: err}
	}

	flights, skipped := l.parser.Parse(string(data))
	if len(flights) == 0 {
		return Result{Kind: KindEmpty, Skipped: skipped}
	}
	return Result{Kind: KindLoaded, Flights: flights, Skipped: skipped}
}
