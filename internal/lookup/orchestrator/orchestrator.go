// Package orchestrator resolves a plate by trying an ordered list of sources
// and falling back to a generator when every source misses.
//
// A Chain is generic over the record it produces; the lookup service builds
// one for vehicle records and one for challan lists. Attempts are sequential
// and never retried. Every attempt is logged, traced, measured and reported to
// the Notifier, and recorded on the Resolution so callers can show where the
// answer came from.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/internal/platform/logger"
	"vehicleinfo/internal/platform/metrics"
)

const tracerName = "vehicleinfo/internal/lookup/orchestrator"

// ErrNoRecord means neither the sources nor the generator produced a record.
var ErrNoRecord = errors.New("no record produced")

// Source is one step of the chain.
type Source[T any] interface {
	ID() string
	Tier() providers.Tier
	Lookup(ctx context.Context, plate models.Plate) (T, error)
}

// Generator is the final step of the chain. It is only reached when every
// source missed.
type Generator[T any] interface {
	ID() string
	Generate(ctx context.Context, plate models.Plate) (T, error)
}

// Attempt is the log entry for one step of a resolution.
type Attempt struct {
	Source   string                  `json:"source"`
	Tier     providers.Tier          `json:"tier"`
	Outcome  string                  `json:"outcome"`
	Category providers.ErrorCategory `json:"category,omitempty"`
	Error    string                  `json:"error,omitempty"`
	Duration time.Duration           `json:"-"`
}

// Resolution is the answer of a chain together with its provenance.
type Resolution[T any] struct {
	LookupID  string         `json:"lookup_id"`
	Plate     models.Plate   `json:"plate"`
	Record    T              `json:"record"`
	Source    string         `json:"source"`
	Tier      providers.Tier `json:"tier"`
	Synthetic bool           `json:"synthetic"`
	Attempts  []Attempt      `json:"attempts"`
}

// Chain tries sources in order, then the generator.
type Chain[T any] struct {
	domain    providers.Domain
	sources   []Source[T]
	generator Generator[T]

	logger   *slog.Logger
	metrics  *metrics.Metrics
	notifier Notifier
	tracer   trace.Tracer
}

type options struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	notifier Notifier
	tracer   trace.Tracer
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

func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracer = tp.Tracer(tracerName)
	}
}

// New builds a chain for domain. generator must not be nil.
func New[T any](domain providers.Domain, sources []Source[T], generator Generator[T], opts ...Option) *Chain[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	if o.notifier == nil {
		o.notifier = NopNotifier{}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	return &Chain[T]{
		domain:    domain,
		sources:   sources,
		generator: generator,
		logger:    o.logger,
		metrics:   o.metrics,
		notifier:  o.notifier,
		tracer:    o.tracer,
	}
}

// Resolve walks the chain for plate. Source failures are recorded on the
// resolution and never returned. The only errors are cancellation of ctx and
// ErrNoRecord when the generator itself fails.
func (c *Chain[T]) Resolve(ctx context.Context, plate models.Plate) (Resolution[T], error) {
	res := Resolution[T]{
		LookupID: uuid.NewString(),
		Plate:    plate,
		Attempts: make([]Attempt, 0, len(c.sources)+1),
	}
	log := c.logger.With("lookup_id", res.LookupID, "domain", string(c.domain), "plate", plate.String())
	start := time.Now()

	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return Resolution[T]{}, c.aborted(ctx, log, err)
		}

		record, attempt := c.attempt(ctx, log, src.ID(), src.Tier(), func(ctx context.Context) (T, error) {
			return src.Lookup(ctx, plate)
		})
		res.Attempts = append(res.Attempts, attempt)
		if attempt.Outcome == metrics.OutcomeHit {
			return c.resolved(ctx, log, res, record, attempt, start), nil
		}
		if err := ctx.Err(); err != nil {
			return Resolution[T]{}, c.aborted(ctx, log, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return Resolution[T]{}, c.aborted(ctx, log, err)
	}

	var genErr error
	record, attempt := c.attempt(ctx, log, c.generator.ID(), providers.TierSynthetic, func(ctx context.Context) (T, error) {
		r, err := c.generator.Generate(ctx, plate)
		genErr = err
		return r, err
	})
	res.Attempts = append(res.Attempts, attempt)
	if genErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Resolution[T]{}, c.aborted(ctx, log, ctxErr)
		}
		log.ErrorContext(ctx, "generator failed", "error", genErr)
		return Resolution[T]{}, fmt.Errorf("%s %s: %w: %w: %w",
			c.domain, plate, ErrNoRecord, providers.ErrAllProvidersFailed, genErr)
	}
	return c.resolved(ctx, log, res, record, attempt, start), nil
}

// attempt runs one step inside a span and reports it.
func (c *Chain[T]) attempt(
	ctx context.Context,
	log *slog.Logger,
	id string,
	tier providers.Tier,
	call func(context.Context) (T, error),
) (T, Attempt) {
	c.notifier.Notify(ctx, Event{Domain: c.domain, Source: id, Tier: tier, Stage: StageAttempt})

	ctx, span := c.tracer.Start(ctx, "lookup."+string(c.domain)+"."+id,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("lookup.domain", string(c.domain)),
			attribute.String("lookup.source", id),
			attribute.String("lookup.tier", string(tier)),
		),
	)
	defer span.End()

	begin := time.Now()
	record, err := call(ctx)
	elapsed := time.Since(begin)

	a := Attempt{Source: id, Tier: tier, Duration: elapsed}
	if err == nil {
		a.Outcome = metrics.OutcomeHit
		span.SetStatus(codes.Ok, "")
		c.metrics.ObserveAttempt(string(c.domain), id, a.Outcome, elapsed)
		c.notifier.Notify(ctx, Event{Domain: c.domain, Source: id, Tier: tier, Stage: StageHit})
		log.InfoContext(ctx, "source answered",
			"source", id,
			"duration_ms", elapsed.Milliseconds(),
		)
		return record, a
	}

	a.Outcome = metrics.OutcomeMiss
	a.Category = providers.GetCategory(err)
	a.Error = err.Error()
	span.RecordError(err)
	span.SetStatus(codes.Error, string(a.Category))
	span.SetAttributes(attribute.String("lookup.category", string(a.Category)))
	c.metrics.ObserveAttempt(string(c.domain), id, a.Outcome, elapsed)
	c.notifier.Notify(ctx, Event{Domain: c.domain, Source: id, Tier: tier, Stage: StageMiss, Err: err})
	log.InfoContext(ctx, "source missed",
		"source", id,
		"category", a.Category,
		"duration_ms", elapsed.Milliseconds(),
		"error", err,
	)
	var zero T
	return zero, a
}

func (c *Chain[T]) resolved(ctx context.Context, log *slog.Logger, res Resolution[T], record T, a Attempt, start time.Time) Resolution[T] {
	res.Record = record
	res.Source = a.Source
	res.Tier = a.Tier
	res.Synthetic = a.Tier == providers.TierSynthetic

	c.metrics.IncrementResolution(string(c.domain), res.Source, res.Synthetic)
	if res.Synthetic {
		c.notifier.Notify(ctx, Event{Domain: c.domain, Source: a.Source, Tier: a.Tier, Stage: StageGenerated})
		log.WarnContext(ctx, "all sources missed, returning generated data",
			"attempts", len(res.Attempts),
		)
	}
	log.InfoContext(ctx, "lookup resolved",
		"source", res.Source,
		"synthetic", res.Synthetic,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res
}

func (c *Chain[T]) aborted(ctx context.Context, log *slog.Logger, err error) error {
	log.WarnContext(ctx, "lookup aborted", "error", err)
	return fmt.Errorf("%s lookup aborted: %w", c.domain, err)
}
