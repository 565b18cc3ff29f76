package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"flightdesk/internal/airports"
	"flightdesk/internal/booking"
	"flightdesk/internal/config"
	"flightdesk/internal/events"
	"flightdesk/internal/export"
	"flightdesk/internal/metrics"
	"flightdesk/internal/models"
	"flightdesk/internal/schedule"
	"flightdesk/internal/stats"
	"flightdesk/internal/store"
)

// app is the CLI glue over the core packages. Nothing below holds state
// of its own; every command reads from and writes through the store.
type app struct {
	cfg    *config.Config
	store  *store.Store
	bus    *events.Bus
	dir    *airports.Directory
	logger *zerolog.Logger
}

const usageText = `Usage: flightdesk <command> [flags]

User commands:
  flights    list and search the schedule (-q, -from, -to)
  book       reserve a seat (-flight, -name)
  stats      derived statistics (routes | airport -code | timeslot -hour -mode)

Admin commands:
  load       replace the schedule from a tab-delimited file
  occupancy  per-flight booked/total seats (-q)
  export     reservation report (-format csv|xlsx, -out)
  snapshot   write a backup of both collections
`

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "flights":
		return a.cmdFlights(args[1:])
	case "book":
		return a.cmdBook(ctx, args[1:])
	case "stats":
		return a.cmdStats(args[1:])
	case "load":
		return a.cmdLoad(ctx, args[1:])
	case "occupancy":
		return a.cmdOccupancy(args[1:])
	case "export":
		return a.cmdExport(args[1:])
	case "snapshot":
		return a.cmdSnapshot(args[1:])
	default:
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) cmdFlights(args []string) error {
	fs := flag.NewFlagSet("flights", flag.ContinueOnError)
	query := fs.String("q", "", "substring search over number, airline, city, code")
	from := fs.String("from", "", "exact origin airport code")
	to := fs.String("to", "", "exact destination airport code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flights := stats.Filter(a.store.Schedule(), *query, *from, *to)
	if len(flights) == 0 {
		fmt.Println("No flights match your criteria.")
		return nil
	}

	reservations := a.store.Reservations()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFLIGHT\tAIRLINE\tROUTE\tDEP\tARR\tSEATS LEFT")
	for _, f := range flights {
		left := stats.AvailableSeats(&f, reservations)
		status := fmt.Sprintf("%d", left)
		if left <= 0 {
			status = "fully booked"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.FlightNumber, f.Airline, f.Route(), f.DepartureTime, f.ArrivalTime, status)
	}
	return w.Flush()
}

func (a *app) cmdBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	flightRef := fs.String("flight", "", "flight id or flight number")
	name := fs.String("name", "", "passenger name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *flightRef == "" {
		return fmt.Errorf("-flight is required")
	}

	flight, ok := a.findFlight(*flightRef)
	if !ok {
		return fmt.Errorf("no flight %q in the active schedule", *flightRef)
	}

	wf := booking.NewWorkflow(a.store)
	if err := wf.SelectFlight(flight); err != nil {
		return err
	}
	r, err := wf.Confirm(ctx, *name)
	if err != nil {
		wf.Cancel()
		return err
	}
	a.bus.Publish(events.Event{Type: events.TopicReservationCreated, Subject: r.FlightID})

	fmt.Printf("Booking confirmed for %s on flight %s (%s).\n",
		r.PassengerName, flight.FlightNumber, flight.Route())
	return nil
}

// findFlight resolves a flight by id first, then by flight number.
func (a *app) findFlight(ref string) (models.Flight, bool) {
	flights := a.store.Schedule()
	for _, f := range flights {
		if f.ID == ref {
			return f, true
		}
	}
	for _, f := range flights {
		if f.FlightNumber == ref {
			return f, true
		}
	}
	return models.Flight{}, false
}

func (a *app) cmdStats(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("stats needs a subcommand: routes, airport or timeslot")
	}

	flights := a.store.Schedule()
	switch args[0] {
	case "routes":
		for _, s := range stats.RouteStats(flights) {
			fmt.Printf("%s: %d\n", s.Route, s.Count)
		}
		return nil

	case "airport":
		fs := flag.NewFlagSet("stats airport", flag.ContinueOnError)
		code := fs.String("code", "", "airport code")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *code == "" {
			return fmt.Errorf("-code is required")
		}
		activity := stats.ActivityAt(flights, *code)
		fmt.Printf("Departures: %d\n", len(activity.Departures))
		fmt.Printf("Arrivals: %d\n", len(activity.Arrivals))
		return nil

	case "timeslot":
		fs := flag.NewFlagSet("stats timeslot", flag.ContinueOnError)
		hour := fs.Int("hour", 15, "hour of day, 0-23")
		mode := fs.String("mode", "departure", "departure or arrival")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *hour < 0 || *hour > 23 {
			return fmt.Errorf("-hour must be 0-23")
		}
		timeMode := stats.ByDeparture
		if *mode == "arrival" {
			timeMode = stats.ByArrival
		}
		slot := stats.InTimeSlot(flights, *hour, timeMode)
		fmt.Printf("Flights at %02d:00-%02d:59: %d\n", *hour, *hour, len(slot))
		for _, f := range slot {
			t := f.DepartureTime
			if timeMode == stats.ByArrival {
				t = f.ArrivalTime
			}
			fmt.Printf("  %s (%s → %s) - %s\n", f.FlightNumber, f.Origin, f.Destination, t)
		}
		return nil

	default:
		return fmt.Errorf("unknown stats subcommand %q", args[0])
	}
}

func (a *app) cmdLoad(ctx context.Context, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	loader := schedule.NewLoader(a.dir, a.logger)
	result := loader.Load(path)
	for _, d := range result.Skipped {
		a.bus.Publish(events.Event{Type: events.TopicRowsSkipped, Subject: d.Kind})
	}

	if result.Kind != schedule.KindLoaded {
		fmt.Println(result.Message())
		return nil
	}

	if err := a.store.ReplaceSchedule(ctx, result.Flights); err != nil {
		return err
	}
	a.bus.Publish(events.Event{Type: events.TopicScheduleReplaced, Count: len(result.Flights)})
	fmt.Println(result.Message())
	return nil
}

func (a *app) cmdOccupancy(args []string) error {
	fs := flag.NewFlagSet("occupancy", flag.ContinueOnError)
	query := fs.String("q", "", "substring search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flights := stats.Filter(a.store.Schedule(), *query, "", "")
	if len(flights) == 0 {
		fmt.Println("No flights loaded. Load a schedule file to see flight occupancy.")
		return nil
	}

	reservations := a.store.Reservations()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FLIGHT\tROUTE\tOCCUPANCY")
	for _, o := range stats.OccupancyReport(flights, reservations) {
		fmt.Fprintf(w, "%s\t%s\t%d / %d\n", o.Flight.FlightNumber, o.Flight.Route(), o.Booked, o.Flight.TotalSeats)
	}
	return w.Flush()
}

func (a *app) cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "csv", "csv or xlsx")
	out := fs.String("out", "", "output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reservations := a.store.Reservations()
	if len(reservations) == 0 {
		fmt.Println("No reservations to export.")
		return nil
	}

	if *out == "" {
		if err := os.MkdirAll(a.cfg.Export.Dir, 0o755); err != nil {
			return err
		}
		*out = filepath.Join(a.cfg.Export.Dir, "flight_reservations."+*format)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	flights := a.store.Schedule()
	switch *format {
	case "csv":
		err = export.WriteCSV(f, flights, reservations)
	case "xlsx":
		err = export.WriteWorkbook(f, flights, reservations)
	default:
		return fmt.Errorf("unknown export format %q", *format)
	}
	if err != nil {
		return err
	}

	metrics.IncExportWritten(*format)
	fmt.Printf("Wrote %d reservations to %s.\n", len(reservations), *out)
	return nil
}

func (a *app) cmdSnapshot(args []string) error {
	path, err := a.store.Snapshot(a.cfg.Backup.Path)
	if err != nil {
		return err
	}
	a.store.CleanupSnapshots(a.cfg.Backup.Path, a.cfg.Backup.RetentionDays)
	fmt.Printf("Snapshot written to %s.\n", path)
	return nil
}
