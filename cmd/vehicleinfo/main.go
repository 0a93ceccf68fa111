package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"vehicleinfo/internal/cli"
	"vehicleinfo/internal/lookup"
	"vehicleinfo/internal/platform/config"
	"vehicleinfo/internal/platform/logger"
	"vehicleinfo/internal/report"
)

func main() {
	cfg := config.FromEnv()

	plate := flag.String("plate", "", "registration number to look up; omit for the interactive menu")
	modeFlag := flag.String("mode", string(cli.ModeBoth), "what to fetch: vehicle, challan or both")
	formatFlag := flag.String("format", "", "save a report as text, csv, json or pdf")
	out := flag.String("out", cfg.ReportDir, "directory for saved reports")
	verbose := flag.Bool("v", false, "log source attempts to stderr")
	flag.Parse()

	// Status lines already narrate the chain, so logs stay quiet unless asked.
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(level, cfg.LogFormat)

	color := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	printer := cli.NewPrinter(os.Stdout, color)

	svc, release := lookup.NewFromConfig(cfg.Sources,
		lookup.WithLogger(log),
		lookup.WithNotifier(cli.Progress{Printer: printer}),
	)
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.New(svc, os.Stdin, os.Stdout, printer, cli.WithReportDir(*out))

	if *plate == "" {
		if err := app.Interactive(ctx); err != nil {
			printer.Fail("An unexpected error occurred: %v", err)
			release()
			os.Exit(1)
		}
		return
	}

	mode, err := cli.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	var format *report.Format
	if *formatFlag != "" {
		f, err := report.ParseFormat(*formatFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		format = &f
	}

	if err := app.RunOnce(ctx, *plate, mode, format); err != nil {
		release()
		os.Exit(1)
	}
}
