package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"vehicleinfo/internal/lookup"
	"vehicleinfo/internal/lookup/orchestrator"
	"vehicleinfo/internal/platform/config"
	"vehicleinfo/internal/platform/httpserver"
	"vehicleinfo/internal/platform/logger"
	"vehicleinfo/internal/platform/metrics"
	httptransport "vehicleinfo/internal/transport/http"
)

// main wires the lookup service behind the HTTP API and keeps the server
// lifecycle small. Retrieval logic lives in internal/lookup.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc, release := lookup.NewFromConfig(cfg.Sources,
		lookup.WithLogger(log),
		lookup.WithMetrics(metrics.New(reg)),
		lookup.WithNotifier(orchestrator.LogNotifier{Logger: log}),
	)
	defer release()

	// A report resolves both domains back to back.
	requestTimeout := 2 * cfg.Sources.WorstCaseLookup()
	handler := httptransport.NewHandler(svc, log)
	router := httptransport.NewRouter(handler, log, reg, requestTimeout)
	srv := httpserver.New(cfg.Addr, router, requestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting vehicleinfo server", "addr", cfg.Addr, "fetcher", cfg.Sources.Fetcher)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		release()
		os.Exit(1)
	}
}
