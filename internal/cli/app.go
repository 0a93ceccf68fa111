// Package cli is the interactive and one-shot terminal front end.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"vehicleinfo/internal/lookup"
	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/report"
)

// Service defines the lookup operations the CLI needs.
type Service interface {
	ResolveVehicle(ctx context.Context, raw string) (lookup.VehicleResolution, error)
	ResolveChallans(ctx context.Context, raw string) (lookup.ChallanResolution, error)
}

// Mode selects which records a lookup fetches.
type Mode string

const (
	ModeVehicle Mode = "vehicle"
	ModeChallan Mode = "challan"
	ModeBoth    Mode = "both"
)

var ErrUnknownMode = errors.New("mode must be vehicle, challan or both")

func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case ModeVehicle, ModeChallan, ModeBoth:
		return m, nil
	case "challans":
		return ModeChallan, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

func (m Mode) vehicle() bool { return m == ModeVehicle || m == ModeBoth }
func (m Mode) challan() bool { return m == ModeChallan || m == ModeBoth }

const banner = `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║            INDIAN VEHICLE INFORMATION & CHALLAN              ║
║                      VERIFICATION TOOL                       ║
║                                                              ║
║                 Version 2.0 | Enhanced Edition               ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝
`

// App drives lookups from a terminal.
type App struct {
	service   Service
	in        *bufio.Reader
	out       io.Writer
	printer   *Printer
	reportDir string
	now       func() time.Time
}

type Option func(*App)

// WithReportDir sets where saved reports go.
func WithReportDir(dir string) Option {
	return func(a *App) { a.reportDir = dir }
}

// WithClock sets the clock used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func New(service Service, in io.Reader, out io.Writer, printer *Printer, opts ...Option) *App {
	a := &App{
		service:   service,
		in:        bufio.NewReader(in),
		out:       out,
		printer:   printer,
		reportDir: ".",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lookup fetches what mode asks for, prints the tables and returns the
// assembled report.
func (a *App) Lookup(ctx context.Context, plate string, mode Mode) (report.Report, error) {
	rep := report.Report{GeneratedOn: a.now()}

	if mode.vehicle() {
		a.printer.Info("Fetching vehicle information...")
		res, err := a.service.ResolveVehicle(ctx, plate)
		if err != nil {
			return rep, err
		}
		if res.Synthetic {
			a.printer.Fail("No source returned a record; showing generated data for demonstration purposes.")
		}
		rep.Vehicle = &res.Record
		a.showVehicle(res.Record)
	}

	if mode.challan() {
		a.printer.Info("Fetching challan information...")
		res, err := a.service.ResolveChallans(ctx, plate)
		if err != nil {
			return rep, err
		}
		if res.Synthetic {
			a.printer.Fail("No source returned challans; showing generated data for demonstration purposes.")
		}
		rep.Challans = res.Record
		a.showChallans(res.Record)
	}
	return rep, nil
}

func (a *App) showVehicle(v models.VehicleRecord) {
	fmt.Fprintln(a.out)
	a.printer.Heading("[+] VEHICLE INFORMATION")
	a.printer.Heading(strings.Repeat("=", 50))
	if err := report.VehicleTable(a.out, v); err != nil {
		a.printer.Fail("Could not display vehicle table: %v", err)
	}
	a.printer.Heading(strings.Repeat("=", 50))
	fmt.Fprintln(a.out)
}

func (a *App) showChallans(challans []models.ChallanRecord) {
	if len(challans) == 0 {
		a.printer.Success("No challans found for this vehicle!")
		return
	}
	fmt.Fprintln(a.out)
	a.printer.Heading("[+] CHALLAN INFORMATION")
	a.printer.Heading(strings.Repeat("=", 120))
	if err := report.ChallanTable(a.out, challans); err != nil {
		a.printer.Fail("Could not display challan table: %v", err)
	}
	a.printer.Heading(strings.Repeat("=", 120))
	fmt.Fprintln(a.out)
}

// Save writes rep to the report directory and reports where it went.
func (a *App) Save(rep report.Report, f report.Format) (string, error) {
	path, err := report.Save(a.reportDir, f, rep)
	if err != nil {
		a.printer.Fail("Error saving report: %v", err)
		return "", err
	}
	a.printer.Success("Report saved to %s", path)
	return path, nil
}

// RunOnce performs a single non-interactive lookup. A nil format skips saving.
func (a *App) RunOnce(ctx context.Context, plate string, mode Mode, format *report.Format) error {
	if _, err := models.ParsePlate(plate); err != nil {
		a.printer.Fail("Invalid vehicle number format!")
		return err
	}
	rep, err := a.Lookup(ctx, plate, mode)
	if err != nil {
		a.printer.Fail("Failed to retrieve information: %v", err)
		return err
	}
	if format == nil {
		return nil
	}
	_, err = a.Save(rep, *format)
	return err
}

var menuModes = map[string]Mode{"1": ModeVehicle, "2": ModeChallan, "3": ModeBoth}

// Interactive runs the menu loop until the user exits, input ends or ctx is
// cancelled.
func (a *App) Interactive(ctx context.Context) error {
	a.printer.Heading(banner)

	for {
		fmt.Fprintln(a.out)
		a.printer.Heading("[+] Main Menu")
		fmt.Fprintln(a.out, "1. Check Vehicle Information")
		fmt.Fprintln(a.out, "2. Check Challan Information")
		fmt.Fprintln(a.out, "3. Check Both Vehicle & Challan Information")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := a.ask(ctx, "Enter your choice (1-4): ")
		if err != nil {
			return a.stopped(err)
		}
		if choice == "4" {
			a.printer.Success("Thank you for using the Indian Vehicle Information & Challan Verification Tool!")
			return nil
		}
		mode, ok := menuModes[choice]
		if !ok {
			a.printer.Fail("Invalid choice! Please try again.")
			continue
		}
		if err := a.session(ctx, mode); err != nil {
			return a.stopped(err)
		}
	}
}

// session handles one menu pick. Lookup failures are reported and the menu
// continues; only input and cancellation errors end the loop.
func (a *App) session(ctx context.Context, mode Mode) error {
	plate, err := a.ask(ctx, "Enter Vehicle Registration Number: ")
	if err != nil {
		return err
	}
	if _, err := models.ParsePlate(plate); err != nil {
		a.printer.Fail("Invalid vehicle number format! Please try again.")
		return nil
	}

	rep, err := a.Lookup(ctx, plate, mode)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.printer.Fail("Failed to retrieve information: %v", err)
		return nil
	}

	answer, err := a.ask(ctx, "Do you want to save this information? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}
	pick, err := a.ask(ctx, "Choose format (1. Text, 2. CSV, 3. JSON, 4. PDF): ")
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(pick)
	if err != nil {
		a.printer.Fail("Invalid choice!")
		return nil
	}
	_, _ = a.Save(rep, format)
	return nil
}

type readResult struct {
	line string
	err  error
}

// ask prompts and reads one trimmed line. A cancelled ctx abandons the read.
func (a *App) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a.printer.Prompt(prompt)

	ch := make(chan readResult, 1)
	go func() {
		line, err := a.in.ReadString('\n')
		ch <- readResult{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && (r.line == "" || !errors.Is(r.err, io.EOF)) {
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

func (a *App) stopped(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(a.out)
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(a.out)
		a.printer.Info("Operation cancelled by user!")
		return nil
	}
	return err
}
