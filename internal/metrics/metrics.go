package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	rowsParsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "schedule_rows_parsed_total",
			Help:      "Count of schedule rows parsed into flights.",
		},
	)

	rowsSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "schedule_rows_skipped_total",
			Help:      "Count of schedule rows skipped by reason.",
		},
		[]string{"reason"},
	)

	schedulesLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "schedules_loaded_total",
			Help:      "Count of schedule replacements.",
		},
	)

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "reservations_created_total",
			Help:      "Count of reservations appended.",
		},
	)

	exportsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "exports_written_total",
			Help:      "Count of reservation reports written by format.",
		},
		[]string{"format"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(rowsParsed, rowsSkipped, schedulesLoaded, reservationsCreated, exportsWritten)
	})
}

func AddRowsParsed(n int) {
	rowsParsed.Add(float64(n))
}

func IncRowSkipped(reason string) {
	rowsSkipped.WithLabelValues(reason).Inc()
}

func IncScheduleLoaded() {
	schedulesLoaded.Inc()
}

func IncReservationCreated() {
	reservationsCreated.Inc()
}

func IncExportWritten(format string) {
	exportsWritten.WithLabelValues(format).Inc()
}
