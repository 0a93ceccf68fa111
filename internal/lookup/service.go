// Package lookup is the entry point for plate lookups. It validates the plate,
// pins one clock for the whole lookup and runs the vehicle or challan chain.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/orchestrator"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/platform/logger"
	"vehicleinfo/internal/platform/metrics"
	dErrors "vehicleinfo/pkg/domain-errors"
	"vehicleinfo/pkg/requestcontext"
)

type (
	VehicleResolution = orchestrator.Resolution[models.VehicleRecord]
	ChallanResolution = orchestrator.Resolution[[]models.ChallanRecord]
)

// Service resolves vehicle and challan records for plates.
type Service struct {
	vehicles *orchestrator.Chain[models.VehicleRecord]
	challans *orchestrator.Chain[[]models.ChallanRecord]
	logger   *slog.Logger
}

type options struct {
	logger         *slog.Logger
	metrics        *metrics.Metrics
	notifier       orchestrator.Notifier
	tracerProvider trace.TracerProvider
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithNotifier receives progress for every source attempt.
func WithNotifier(n orchestrator.Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return o
}

// New wires the two chains. Sources are tried in the given order.
func New(
	vehicleSources []providers.VehicleSource,
	vehicleGenerator providers.VehicleGenerator,
	challanSources []providers.ChallanSource,
	challanGenerator providers.ChallanGenerator,
	opts ...Option,
) *Service {
	o := buildOptions(opts)

	chainOpts := []orchestrator.Option{
		orchestrator.WithLogger(o.logger),
		orchestrator.WithMetrics(o.metrics),
		orchestrator.WithNotifier(o.notifier),
	}
	if o.tracerProvider != nil {
		chainOpts = append(chainOpts, orchestrator.WithTracerProvider(o.tracerProvider))
	}

	vs := make([]orchestrator.Source[models.VehicleRecord], 0, len(vehicleSources))
	for _, src := range vehicleSources {
		vs = append(vs, src)
	}
	cs := make([]orchestrator.Source[[]models.ChallanRecord], 0, len(challanSources))
	for _, src := range challanSources {
		cs = append(cs, src)
	}

	return &Service{
		vehicles: orchestrator.New[models.VehicleRecord](providers.DomainVehicle, vs, vehicleGenerator, chainOpts...),
		challans: orchestrator.New[[]models.ChallanRecord](providers.DomainChallan, cs, challanGenerator, chainOpts...),
		logger:   o.logger,
	}
}

// ResolveVehicle returns the registration record for raw. Any input is
// accepted after normalization; format checks belong to the caller. Unknown
// plates and unreachable sources both end in generated data flagged Synthetic.
func (s *Service) ResolveVehicle(ctx context.Context, raw string) (VehicleResolution, error) {
	res, err := s.vehicles.Resolve(pinClock(ctx), models.NormalizePlate(raw))
	if err != nil {
		return VehicleResolution{}, s.translate(ctx, err, "vehicle lookup failed")
	}
	res.Record = res.Record.Complete()
	return res, nil
}

// ResolveChallans returns the challans for raw in retrieval order. An empty
// list from a real source means the vehicle has no challans.
func (s *Service) ResolveChallans(ctx context.Context, raw string) (ChallanResolution, error) {
	res, err := s.challans.Resolve(pinClock(ctx), models.NormalizePlate(raw))
	if err != nil {
		return ChallanResolution{}, s.translate(ctx, err, "challan lookup failed")
	}
	list := make([]models.ChallanRecord, 0, len(res.Record))
	for _, c := range res.Record {
		list = append(list, c.Complete())
	}
	res.Record = list
	return res, nil
}

// ComputeVehicleAge returns whole years between registrationDate and now, or
// N/A when the date is missing, unparseable or in the future.
func ComputeVehicleAge(now time.Time, registrationDate string) models.VehicleAge {
	return models.ComputeVehicleAge(now, registrationDate)
}

func (s *Service) translate(ctx context.Context, err error, msg string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "lookup timed out")
	case errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "lookup cancelled")
	default:
		s.logger.ErrorContext(ctx, msg, "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}

// pinClock fixes the lookup time so every source and the generator compute
// ages against the same instant.
func pinClock(ctx context.Context) context.Context {
	return requestcontext.WithTime(ctx, requestcontext.Now(ctx))
}
